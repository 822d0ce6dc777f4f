package invoice

import "strings"

// PaymentStatus mirrors the payment state recorded on an order. The calculator
// only uses it as a hint for the status label; monetary figures always win.
type PaymentStatus string

const (
	PaymentStatusUnset     PaymentStatus = ""
	PaymentStatusPaid      PaymentStatus = "paid"
	PaymentStatusPartial   PaymentStatus = "partial"
	PaymentStatusScheduled PaymentStatus = "scheduled"
)

// Item is a single garment line on the invoice.
type Item struct {
	GarmentType string
	Quantity    int
	TotalPrice  float64
}

// Shop is the tailor-shop header block.
type Shop struct {
	Name      string
	Phone     string
	Street    string
	City      string
	TermsText string
}

// Billing carries the monetary inputs for one invoice. Optional fields use
// Amount so that "absent" and "zero" stay distinguishable where it matters
// (Remaining is trusted verbatim when set, derived otherwise).
type Billing struct {
	Price          float64
	Discount       Amount
	AdvancePayment Amount
	CurrentPayment Amount
	Remaining      Amount
	Status         PaymentStatus
}

// ResolveDiscount picks the discount source for an order that carries both the
// current discount_amount column and the legacy discount column. The newer
// field wins when both are present.
func ResolveDiscount(discountAmount, legacyDiscount *float64) Amount {
	if discountAmount != nil {
		return AmountOf(*discountAmount)
	}
	return AmountPtr(legacyDiscount)
}

// Invoice is everything the layout pass needs for one render. It is composed
// from order and tailor records at render time and never persisted.
type Invoice struct {
	OrderID       string
	OrderType     string
	CustomerName  string
	CustomerPhone string
	Billing       Billing
	Items         []Item
	Shop          Shop
}

// Number derives the human-readable invoice number: the last six characters of
// the order ID, upper-cased.
func (inv Invoice) Number() string {
	id := inv.OrderID
	if len(id) > 6 {
		id = id[len(id)-6:]
	}
	return strings.ToUpper(id)
}

// LineItems returns the items to render. Orders without an itemized breakdown
// get a single synthetic line built from the order type and total price.
func (inv Invoice) LineItems() []Item {
	if len(inv.Items) > 0 {
		return inv.Items
	}
	return []Item{{
		GarmentType: inv.OrderType,
		Quantity:    1,
		TotalPrice:  inv.Billing.Price,
	}}
}
