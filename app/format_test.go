package app

import "testing"

func TestFormatCurrencyTick(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{1_500_000, "$1.5M"},
		{45_000, "$45K"},
		{750, "$750"},
		{-2_000_000, "$-2.0M"},
		{-45_000, "$-45K"},
		{1_000, "$1K"},
		{999, "$999"},
		{1_234_567, "$1.2M"},
		{0, "$0"},
	}
	for _, c := range cases {
		if got := FormatCurrencyTick(c.in); got != c.want {
			t.Errorf("FormatCurrencyTick(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatCurrencyWhole(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{1234.9, "$1,235"},
		{999, "$999"},
		{1_000_000, "$1,000,000"},
		{-1234.9, "$-1,235"},
		{0, "$0"},
		{45_000, "$45,000"},
	}
	for _, c := range cases {
		if got := FormatCurrencyWhole(c.in); got != c.want {
			t.Errorf("FormatCurrencyWhole(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestTooltipLine(t *testing.T) {
	got := TooltipLine("Buy (Net Worth)", 1234.9)
	want := "Buy (Net Worth): $1,235"
	if got != want {
		t.Errorf("TooltipLine = %q, want %q", got, want)
	}
}
