package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(KindInfrastructure, "db error", cause)

	assert.ErrorIs(t, err, cause)

	ae, ok := As(err)
	require.True(t, ok)
	assert.Equal(t, KindInfrastructure, ae.Kind)
	assert.Equal(t, "db error", ae.Message)
}

func TestAsThroughWrapping(t *testing.T) {
	inner := New(KindReference, "product not found")
	outer := fmt.Errorf("create order: %w", inner)

	ae, ok := As(outer)
	require.True(t, ok)
	assert.Equal(t, KindReference, ae.Kind)
}

func TestKindOfUnclassified(t *testing.T) {
	assert.Equal(t, KindInfrastructure, KindOf(errors.New("boom")))
	assert.Equal(t, KindConflict, KindOf(New(KindConflict, "dup")))
}
