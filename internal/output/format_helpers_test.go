package output

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		in   decimal.Decimal
		want string
	}{
		{decimal.NewFromFloat(1234567.4), "¥1,234,567"},
		{decimal.NewFromInt(-30000), "-¥30,000"},
		{decimal.Zero, "¥0"},
	}
	for _, tt := range tests {
		if got := FormatCurrency(tt.in); got != tt.want {
			t.Errorf("FormatCurrency(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatTenMillions(t *testing.T) {
	if got, want := FormatTenMillions(decimal.NewFromInt(15000000)), "1.5"; got != want {
		t.Errorf("FormatTenMillions = %q, want %q", got, want)
	}
}

func TestFormatPercentage(t *testing.T) {
	if got, want := FormatPercentage(decimal.NewFromFloat(0.02)), "2.0%"; got != want {
		t.Errorf("FormatPercentage = %q, want %q", got, want)
	}
}
