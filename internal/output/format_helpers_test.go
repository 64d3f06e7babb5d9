package output

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatCurrency(t *testing.T) {
	if got := FormatCurrency(decimal.NewFromFloat(1234.5)); got != "$1234.50" {
		t.Fatalf("got %q", got)
	}
	if got := FormatCurrency(decimal.NewFromInt(-50)); got != "$-50.00" {
		t.Fatalf("got %q", got)
	}
}

func TestFormatPercentage(t *testing.T) {
	if got := FormatPercentage(decimal.NewFromFloat(84.2)); got != "84.20%" {
		t.Fatalf("got %q", got)
	}
}

func TestSmallHelpers(t *testing.T) {
	if intToString(42) != "42" {
		t.Fatal("intToString")
	}
	if boolToString(true) != "true" || boolToString(false) != "false" {
		t.Fatal("boolToString")
	}
}
