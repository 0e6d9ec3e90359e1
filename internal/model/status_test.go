package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActiveStatus(t *testing.T) {
	assert.True(t, StatusActive.Valid())
	assert.True(t, StatusInactive.Valid())
	assert.False(t, ActiveStatus("archived").Valid())
	assert.False(t, ActiveStatus("").Valid())

	_, err := ActiveStatus("Active").Value()
	assert.Error(t, err, "the domain is case sensitive")

	v, err := StatusInactive.Value()
	require.NoError(t, err)
	assert.Equal(t, "inactive", v)
}

func TestTestStatus(t *testing.T) {
	for _, s := range []TestStatus{TestPending, TestCompleted, TestFailed} {
		assert.True(t, s.Valid(), s)
	}
	assert.False(t, TestStatus("passed").Valid())
}

func TestSaleStatus(t *testing.T) {
	for _, s := range []SaleStatus{SaleCompleted, SalePending, SaleCancelled} {
		assert.True(t, s.Valid(), s)
	}
	assert.False(t, SaleStatus("refunded").Valid())

	_, err := SaleStatus("refunded").Value()
	assert.Error(t, err)
}

func TestStatusScan(t *testing.T) {
	var s SaleStatus
	require.NoError(t, s.Scan([]byte("cancelled")))
	assert.Equal(t, SaleCancelled, s)

	var a ActiveStatus
	require.NoError(t, a.Scan("active"))
	assert.Equal(t, StatusActive, a)

	var ts TestStatus
	assert.Error(t, ts.Scan(42))
}

func TestMoney(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"3500.99", "3500.99"},
		{"5001.5", "5001.5"},
		{"0.005", "0.01"},
		{"10.994", "10.99"},
	}
	for _, tt := range tests {
		got := Money(decimal.RequireFromString(tt.in))
		assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "%s -> %s", tt.in, got)
	}
}
