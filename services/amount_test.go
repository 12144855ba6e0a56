package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmountToMinorUnits(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"$19.99", 1999, false},
		{"$0.00", 0, false},
		{"$10.00", 1000, false},
		{"$5", 500, false},
		{"$5.5", 550, false},
		{"5.00", 500, false},
		{"$1,250.75", 125075, false},
		{" $3.00 ", 300, false},
		{"", 0, true},
		{"$", 0, true},
		{"free", 0, true},
		{"$abc", 0, true},
		{"$10.999", 0, true},
		{"$-5.00", 0, true},
	}

	for _, tt := range tests {
		got, err := AmountToMinorUnits(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidAmount, "input %q", tt.in)
			continue
		}
		assert.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestMinorUnitsToAmount(t *testing.T) {
	assert.Equal(t, "$19.99", MinorUnitsToAmount(1999))
	assert.Equal(t, "$0.00", MinorUnitsToAmount(0))
	assert.Equal(t, "$0.05", MinorUnitsToAmount(5))
	assert.Equal(t, "$10.00", MinorUnitsToAmount(1000))
	assert.Equal(t, "$1,250.75", MinorUnitsToAmount(125075))
	assert.Equal(t, "$1,000,000.00", MinorUnitsToAmount(100000000))
	assert.Equal(t, "$999.99", MinorUnitsToAmount(99999))
}

func TestAmountRoundTrip(t *testing.T) {
	for _, amount := range []string{"$5.00", "$1,250.75", "$999.99"} {
		minor, err := AmountToMinorUnits(amount)
		assert.NoError(t, err)
		assert.Equal(t, amount, MinorUnitsToAmount(minor), "input %q", amount)
	}
}
