package entity

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMoney(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"₹2,400", 240000},
		{"₹1,899", 189900},
		{"INR 1,899.50", 189950},
		{"Rs. 250", 25000},
		{"0", 0},
		{"₹1,00,000", 10000000},
		{" ₹ 99.5 ", 9950},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			m, err := ParseMoney(tt.in, "INR")
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.Amount)
			assert.Equal(t, "INR", m.Currency)
		})
	}
}

func TestParseMoney_RejectsMalformed(t *testing.T) {
	for _, in := range []string{"", "₹", "free", "₹2,4OO", "-₹100", "₹-100", "₹10.999", "1e3x", "₹99,999,999,999,999,999,999", "92233720368547758.08"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseMoney(in, "INR")
			assert.ErrorIs(t, err, ErrInvalidPrice)
		})
	}
}

func TestMoneyFormat(t *testing.T) {
	tests := []struct {
		m    Money
		want string
	}{
		{NewMoney(2400, "INR"), "₹2,400"},
		{NewMoney(999, "INR"), "₹999"},
		{NewMoney(100000, "INR"), "₹1,00,000"},
		{NewMoney(12345678, "INR"), "₹1,23,45,678"},
		{Money{Amount: 189950, Currency: "INR"}, "₹1,899.50"},
		{Money{Amount: -5000, Currency: "INR"}, "-₹50"},
		{NewMoney(10, "USD"), "$10"},
		{NewMoney(10, "JPY"), "JPY 10"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.m.Format())
	}
}

func TestMoneyFormatParseRoundTrip(t *testing.T) {
	for _, m := range []Money{NewMoney(2400, "INR"), {Amount: 189950, Currency: "INR"}, NewMoney(1234567, "INR")} {
		parsed, err := ParseMoney(m.Format(), "INR")
		require.NoError(t, err)
		assert.Equal(t, m, parsed)
	}
}

func TestMoneyUnmarshalJSON_LegacyString(t *testing.T) {
	var item CartItem
	err := json.Unmarshal([]byte(`{"productId":1,"name":"Eternal Bloom Box","price":"₹2,400","image":"x","quantity":2}`), &item)
	require.NoError(t, err)
	assert.Equal(t, NewMoney(2400, "INR"), item.Price)

	err = json.Unmarshal([]byte(`{"price":"n/a"}`), &item)
	assert.ErrorIs(t, err, ErrInvalidPrice)
}

func TestMoneyUnmarshalJSON_Structured(t *testing.T) {
	var m Money
	require.NoError(t, json.Unmarshal([]byte(`{"amount":189950,"currency":"INR"}`), &m))
	assert.Equal(t, Money{Amount: 189950, Currency: "INR"}, m)
}

func TestParseMoney_LargestAmount(t *testing.T) {
	m, err := ParseMoney("92233720368547758.07", "INR")
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), m.Amount)
}

func TestMoneyUnmarshalJSON_LegacyNumber(t *testing.T) {
	var m Money
	require.NoError(t, json.Unmarshal([]byte(`4800`), &m))
	assert.Equal(t, NewMoney(4800, "INR"), m)

	assert.Error(t, json.Unmarshal([]byte(`-5`), &m))
	assert.Error(t, json.Unmarshal([]byte(`1e30`), &m))
}

func TestMoneyArithmeticSaturates(t *testing.T) {
	big := Money{Amount: math.MaxInt64 / 2, Currency: "INR"}
	assert.Equal(t, int64(math.MaxInt64), big.Mul(3).Amount)
	assert.Equal(t, int64(math.MinInt64), big.Mul(-3).Amount)
	assert.Equal(t, int64(math.MaxInt64), big.Add(big).Add(big).Amount)
	assert.Equal(t, NewMoney(7200, "INR"), NewMoney(2400, "INR").Mul(3))
}
