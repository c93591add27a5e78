package util

import "testing"

func TestFormatCurrency(t *testing.T) {
	if got := FormatCurrency(54.56); got != "$54.56" {
		t.Fatalf("got %q", got)
	}
	if got := FormatCurrency(-100); got != "-$100.00" {
		t.Fatalf("got %q", got)
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(1.9047); got != "1.90%" {
		t.Fatalf("got %q", got)
	}
}

func TestParseFloatDefault(t *testing.T) {
	if got := ParseFloatDefault("", 3.5); got != 3.5 {
		t.Fatalf("got %v", got)
	}
	if got := ParseFloatDefault("x", 3.5); got != 3.5 {
		t.Fatalf("got %v", got)
	}
	if got := ParseFloatDefault("7.4", 0); got != 7.4 {
		t.Fatalf("got %v", got)
	}
}
