//go:build unit

package output

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestIntToString(t *testing.T) {
	if got, want := intToString(42), "42"; got != want {
		t.Errorf("intToString(42) = %q, want %q", got, want)
	}
}

func TestBoolToString(t *testing.T) {
	if got, want := boolToString(true), "true"; got != want {
		t.Errorf("boolToString(true) = %q, want %q", got, want)
	}
}

func TestYenString(t *testing.T) {
	if got, want := yenString(decimal.NewFromFloat(1499.5)), "1500"; got != want {
		t.Errorf("yenString = %q, want %q", got, want)
	}
}
