package invoice

import "testing"

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "₹0.00"},
		{5, "₹5.00"},
		{1234.5, "₹1234.50"},
		{99999.99, "₹99999.99"},
	}
	for _, tt := range tests {
		if got := FormatAmount(tt.in); got != tt.want {
			t.Fatalf("FormatAmount(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatAmountGrouped(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "₹0.00"},
		{999, "₹999.00"},
		{1234.5, "₹1,234.50"},
		{1234567.89, "₹1,234,567.89"},
	}
	for _, tt := range tests {
		if got := FormatAmountGrouped(tt.in); got != tt.want {
			t.Fatalf("FormatAmountGrouped(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// Per-item rows stay ungrouped while the breakdown block groups. The two
// formatters must keep diverging above 999.
func TestFormattingDivergesAboveThousand(t *testing.T) {
	if FormatAmount(1500) == FormatAmountGrouped(1500) {
		t.Fatalf("plain and grouped formatting should differ at 1500, both %q", FormatAmount(1500))
	}
	if FormatAmount(500) != FormatAmountGrouped(500) {
		t.Fatalf("formats should agree below 1000: %q vs %q",
			FormatAmount(500), FormatAmountGrouped(500))
	}
}
