package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPricingMarshalsAsNumbers(t *testing.T) {
	old := decimal.RequireFromString("5999")
	p := Pricing{
		Price:    decimal.RequireFromString("4499.99"),
		OldPrice: &old,
	}

	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"price":4499.99,"oldPrice":5999}`, string(data))
}

func TestPricingOmitsMissingOldPrice(t *testing.T) {
	data, err := json.Marshal(Pricing{Price: decimal.NewFromInt(100)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"price":100}`, string(data))
}

func TestPricingDecodesExactly(t *testing.T) {
	var p Pricing
	require.NoError(t, json.Unmarshal([]byte(`{"price":4499.99,"oldPrice":5999}`), &p))

	assert.True(t, p.Price.Equal(decimal.RequireFromString("4499.99")))
	require.NotNil(t, p.OldPrice)
	assert.True(t, p.OldPrice.Equal(decimal.NewFromInt(5999)))
}
