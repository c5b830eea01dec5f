package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// UserOrderRow は orders / order_items / products を結合した平坦な1行。
// 明細がN件ある注文はN行になる。
type UserOrderRow struct {
	OrderID     int64           `json:"order_id"`
	UserID      int64           `json:"user_id"`
	OrderDate   time.Time       `json:"order_date"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Status      OrderStatus     `json:"status"`
	OrderItemID int64           `json:"order_item_id"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	Description string          `json:"description"`
}

// Date はDATE()の結果用。JSONでは時刻なしの暦日で返す。
type Date struct {
	time.Time
}

const dateLayout = "2006-01-02"

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	t, err := time.Parse(`"`+dateLayout+`"`, string(b))
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d *Date) Scan(value interface{}) error {
	switch v := value.(type) {
	case time.Time:
		d.Time = v
		return nil
	case string:
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			return err
		}
		d.Time = t
		return nil
	case []byte:
		t, err := time.Parse(dateLayout, string(v))
		if err != nil {
			return err
		}
		d.Time = t
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Date", value)
	}
}

// OrderStatsRow は (status, 注文日) ごとの集計。
type OrderStatsRow struct {
	Status        OrderStatus     `json:"status"`
	OrderDay      Date            `json:"order_day"`
	TotalOrders   int64           `json:"total_orders"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	AvgOrderValue decimal.Decimal `json:"avg_order_value"`
	MinOrderValue decimal.Decimal `json:"min_order_value"`
	MaxOrderValue decimal.Decimal `json:"max_order_value"`
}
