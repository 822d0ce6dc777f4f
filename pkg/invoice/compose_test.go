package invoice

import (
	"image"
	"strings"
	"testing"
	"time"
)

var frozenNow = time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)

func sampleInvoice() Invoice {
	return Invoice{
		OrderID:       "65f1a2b3c4d5e6f7a8b9c0d1",
		OrderType:     "Stitching",
		CustomerName:  "Asha Verma",
		CustomerPhone: "+91 98765 43210",
		Billing: Billing{
			Price:          2500,
			Discount:       AmountOf(100),
			AdvancePayment: AmountOf(500),
		},
		Items: []Item{
			{GarmentType: "Kurta", Quantity: 2, TotalPrice: 1600},
			{GarmentType: "Blouse", Quantity: 1, TotalPrice: 900},
		},
		Shop: Shop{
			Name:   "Silver Needle Tailors",
			Phone:  "+91 80 4123 4567",
			Street: "14 MG Road",
			City:   "Bengaluru",
		},
	}
}

func textCommands(doc *Document) []string {
	var out []string
	for _, cmd := range doc.Commands {
		if cmd.Op == OpText {
			out = append(out, cmd.Text)
		}
	}
	return out
}

func containsText(doc *Document, s string) bool {
	for _, got := range textCommands(doc) {
		if got == s {
			return true
		}
	}
	return false
}

func TestBuildDocumentDimensions(t *testing.T) {
	doc := BuildDocument(sampleInvoice(), nil, frozenNow)
	if doc.Width != CanvasWidth {
		t.Fatalf("Width = %d, want %d", doc.Width, CanvasWidth)
	}
	if want := CanvasHeight(2, false); doc.Height != want {
		t.Fatalf("Height = %d, want %d", doc.Height, want)
	}
}

func TestBuildDocumentContents(t *testing.T) {
	doc := BuildDocument(sampleInvoice(), nil, frozenNow)

	for _, want := range []string{
		"Silver Needle Tailors",
		"INVOICE",
		"Asha Verma",
		"Invoice No: #B9C0D1",
		"Date: 14 Mar 2025",
		"Kurta",
		"2 Unit",
		"Unit Price: ₹800.00",
		"₹1600.00",
		"Blouse",
		"Tax: --",
		"Total Amount",
		"₹2,500.00",
		"Partial Payment",
	} {
		if !containsText(doc, want) {
			t.Fatalf("document missing text %q\nhave: %v", want, textCommands(doc))
		}
	}
}

func TestBuildDocumentSyntheticItem(t *testing.T) {
	inv := sampleInvoice()
	inv.Items = nil
	inv.OrderType = "Custom Order"
	inv.Billing = Billing{Price: 1200}

	doc := BuildDocument(inv, nil, frozenNow)

	if want := CanvasHeight(1, false); doc.Height != want {
		t.Fatalf("Height = %d, want %d for single synthetic item", doc.Height, want)
	}
	if !containsText(doc, "Custom Order") {
		t.Fatalf("synthetic item garment name missing")
	}
	if !containsText(doc, "1 Unit") {
		t.Fatalf("synthetic item quantity missing")
	}
	if !containsText(doc, "₹1200.00") {
		t.Fatalf("synthetic item total missing")
	}
}

func TestBuildDocumentCurrentPaymentRow(t *testing.T) {
	inv := sampleInvoice()

	without := BuildDocument(inv, nil, frozenNow)
	inv.Billing.CurrentPayment = AmountOf(300)
	with := BuildDocument(inv, nil, frozenNow)

	if with.Height != without.Height+breakdownRowH {
		t.Fatalf("current payment should add %d px: %d vs %d",
			breakdownRowH, with.Height, without.Height)
	}
	if !containsText(with, "Current Payment") {
		t.Fatalf("current payment row missing")
	}
	if containsText(without, "Current Payment") {
		t.Fatalf("current payment row present without a current payment")
	}
}

func TestBuildDocumentWordmarkFallback(t *testing.T) {
	doc := BuildDocument(sampleInvoice(), nil, frozenNow)
	if !containsText(doc, "SN") {
		t.Fatalf("wordmark initials missing when logo is nil")
	}
	for _, cmd := range doc.Commands {
		if cmd.Op == OpImage {
			t.Fatalf("image command emitted without a logo")
		}
	}
}

func TestBuildDocumentWithLogo(t *testing.T) {
	logo := image.NewRGBA(image.Rect(0, 0, 64, 64))
	doc := BuildDocument(sampleInvoice(), logo, frozenNow)

	var images int
	for _, cmd := range doc.Commands {
		if cmd.Op == OpImage {
			images++
		}
	}
	if images != 1 {
		t.Fatalf("got %d image commands, want 1", images)
	}
	if containsText(doc, "SN") {
		t.Fatalf("wordmark drawn even though logo was supplied")
	}
}

func TestBuildDocumentDefaultsMissingFields(t *testing.T) {
	doc := BuildDocument(Invoice{}, nil, frozenNow)
	if doc.Height != CanvasHeight(1, false) {
		t.Fatalf("empty invoice Height = %d, want %d", doc.Height, CanvasHeight(1, false))
	}
	// A zero price leaves nothing outstanding, so the zero balance wins
	if !containsText(doc, StatusPaidInFull) {
		t.Fatalf("zero-price invoice should render as %q", StatusPaidInFull)
	}

	doc = BuildDocument(Invoice{Billing: Billing{Price: 500}}, nil, frozenNow)
	if !containsText(doc, StatusUnpaid) {
		t.Fatalf("unpaid invoice should render as %q", StatusUnpaid)
	}
}

func TestInvoiceNumber(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"65f1a2b3c4d5e6f7a8b9c0d1", "B9C0D1"},
		{"abc", "ABC"},
		{"", ""},
	}
	for _, tt := range tests {
		inv := Invoice{OrderID: tt.id}
		if got := inv.Number(); got != tt.want {
			t.Fatalf("Number(%q) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestBreakdownRowsOrdered(t *testing.T) {
	doc := BuildDocument(sampleInvoice(), nil, frozenNow)

	labels := []string{"Total Amount", "Discount", "Advance Paid", "Amount Paid", "Remaining Balance", "Status"}
	var found []string
	for _, text := range textCommands(doc) {
		for _, label := range labels {
			if text == label {
				found = append(found, text)
			}
		}
	}
	if strings.Join(found, ",") != strings.Join(labels, ",") {
		t.Fatalf("breakdown labels out of order: %v", found)
	}
}
