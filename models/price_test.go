package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceUnmarshalCoercion(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{`{"price": 49.99}`, 49.99},
		{`{"price": "49.99"}`, 49.99},
		{`{"price": " 12 "}`, 12},
		{`{"price": null}`, 0},
		{`{"price": "free"}`, 0},
		{`{"price": true}`, 0},
		{`{"price": {}}`, 0},
		{`{}`, 0},
	}

	for _, tc := range cases {
		var p Product
		err := json.Unmarshal([]byte(tc.in), &p)
		require.NoError(t, err, "input %s must never fail", tc.in)
		assert.Equal(t, tc.want, p.Price.Float64(), "input %s", tc.in)
	}
}

func TestPriceScan(t *testing.T) {
	var p Price

	require.NoError(t, p.Scan(float64(19.5)))
	assert.Equal(t, 19.5, p.Float64())

	require.NoError(t, p.Scan([]byte("42.50")))
	assert.Equal(t, 42.5, p.Float64())

	require.NoError(t, p.Scan("17"))
	assert.Equal(t, 17.0, p.Float64())

	require.NoError(t, p.Scan(nil))
	assert.Equal(t, 0.0, p.Float64())

	require.NoError(t, p.Scan([]byte("not a number")))
	assert.Equal(t, 0.0, p.Float64())
}

func TestPriceMarshal(t *testing.T) {
	out, err := json.Marshal(Price(10.5))
	require.NoError(t, err)
	assert.Equal(t, "10.5", string(out))
}
