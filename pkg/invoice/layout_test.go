package invoice

import "testing"

func TestCanvasHeight(t *testing.T) {
	tests := []struct {
		name              string
		itemCount         int
		hasCurrentPayment bool
		want              int
	}{
		{"no items", 0, false, 650},
		{"one item", 1, false, 760},
		{"three items", 3, false, 980},
		{"current payment adds one row", 0, true, 675},
		{"items plus current payment", 2, true, 895},
		{"negative count clamps to zero", -3, false, 650},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanvasHeight(tt.itemCount, tt.hasCurrentPayment); got != tt.want {
				t.Fatalf("CanvasHeight(%d, %v) = %d, want %d",
					tt.itemCount, tt.hasCurrentPayment, got, tt.want)
			}
		})
	}
}

func TestCanvasHeightMonotonic(t *testing.T) {
	prev := CanvasHeight(0, false)
	for n := 1; n <= 20; n++ {
		h := CanvasHeight(n, false)
		if h <= prev {
			t.Fatalf("CanvasHeight(%d) = %d, not greater than CanvasHeight(%d) = %d",
				n, h, n-1, prev)
		}
		prev = h
	}
}

func TestCanvasHeightCoversDrawnContent(t *testing.T) {
	// The computed height must leave room for the cards, the breakdown block
	// and the 110px footer band at every item count.
	for n := 0; n <= 10; n++ {
		for _, hasCurrent := range []bool{false, true} {
			h := CanvasHeight(n, hasCurrent)
			contentBottom := itemsTop + float64(n*itemCardPitch) + 20 +
				float64(BreakdownBlockHeight(hasCurrent))
			if float64(h)-110 < contentBottom {
				t.Fatalf("CanvasHeight(%d, %v) = %d leaves footer overlapping content ending at %v",
					n, hasCurrent, h, contentBottom)
			}
		}
	}
}

func TestBreakdownBlockHeight(t *testing.T) {
	if got := BreakdownBlockHeight(false); got != 210 {
		t.Fatalf("BreakdownBlockHeight(false) = %d, want 210", got)
	}
	if got := BreakdownBlockHeight(true); got != 235 {
		t.Fatalf("BreakdownBlockHeight(true) = %d, want 235", got)
	}
}
