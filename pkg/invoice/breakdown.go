package invoice

// Payment status labels rendered on the invoice.
const (
	StatusPaidInFull       = "Paid in Full"
	StatusPartialPayment   = "Partial Payment"
	StatusPaymentScheduled = "Payment Scheduled"
	StatusUnpaid           = "Unpaid"
)

// Breakdown is the computed set of monetary figures for one order. It is
// rebuilt from scratch on every invoice render.
type Breakdown struct {
	Total          float64
	Discount       float64
	FinalAmount    float64
	AdvancePaid    float64
	CurrentPayment float64
	PaidSoFar      float64
	Remaining      float64
	StatusText     string
}

// HasCurrentPayment reports whether this render records an in-flight payment,
// which adds a row to the breakdown block.
func (b Breakdown) HasCurrentPayment() bool {
	return b.CurrentPayment > 0
}

// ComputeBreakdown derives the invoice totals from a billing record. The
// function is total: missing fields count as zero, negative intermediate
// results are floored at zero rather than rejected, and no combination of
// inputs produces an error.
//
// Remaining is trusted verbatim when the order carries it (the backend may
// override the derivation for manual adjustments); PaidSoFar is always derived
// so it stays consistent with FinalAmount and Remaining.
func ComputeBreakdown(b Billing) Breakdown {
	discount := b.Discount.OrZero()
	advance := b.AdvancePayment.OrZero()
	current := b.CurrentPayment.OrZero()

	final := b.Price - discount
	if final < 0 {
		final = 0
	}

	remaining := b.Remaining.OrZero()
	if !b.Remaining.Valid() {
		remaining = final - advance - current
	}
	if remaining < 0 {
		remaining = 0
	}

	paid := final - remaining
	if paid < 0 {
		paid = 0
	}

	return Breakdown{
		Total:          b.Price,
		Discount:       discount,
		FinalAmount:    final,
		AdvancePaid:    advance,
		CurrentPayment: current,
		PaidSoFar:      paid,
		Remaining:      remaining,
		StatusText:     statusText(b.Status, remaining, paid),
	}
}

// statusText picks the label by priority: a paid status or a zero balance
// always reads "Paid in Full"; explicit partial/scheduled statuses are taken
// at face value; otherwise any recorded payment makes it partial.
func statusText(status PaymentStatus, remaining, paid float64) string {
	switch {
	case status == PaymentStatusPaid || remaining == 0:
		return StatusPaidInFull
	case status == PaymentStatusPartial:
		return StatusPartialPayment
	case status == PaymentStatusScheduled:
		return StatusPaymentScheduled
	case paid > 0:
		return StatusPartialPayment
	default:
		return StatusUnpaid
	}
}
