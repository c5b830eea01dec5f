package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// order_day はタイムスタンプではなく暦日で返すこと
func TestDate_MarshalsAsCalendarDay(t *testing.T) {
	d := Date{Time: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)}

	b, err := json.Marshal(OrderStatsRow{Status: OrderStatusPending, OrderDay: d})
	require.NoError(t, err)

	assert.Contains(t, string(b), `"order_day":"2026-09-01"`)
	assert.NotContains(t, string(b), "T00:00:00")
}

func TestDate_ScanFromStore(t *testing.T) {
	var d Date

	//DATE()はドライバ次第でtime.Timeか文字列で来る
	require.NoError(t, d.Scan(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2026-09-01", d.Format("2006-01-02"))

	require.NoError(t, d.Scan("2025-12-31"))
	assert.Equal(t, "2025-12-31", d.Format("2006-01-02"))

	require.NoError(t, d.Scan([]byte("2024-02-29")))
	assert.Equal(t, "2024-02-29", d.Format("2006-01-02"))

	assert.Error(t, d.Scan(42))
}

func TestDate_RoundTripJSON(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2026-09-01"`), &d))

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-09-01"`, string(b))
}
