package invoice

// Amount is an optional monetary value. The zero value is "unset", which every
// calculation treats as zero: orders coming off the wire frequently omit
// discount and advance fields, and absence is never an error. An unset Amount
// means "derive", a set Amount is authoritative.
type Amount struct {
	value float64
	valid bool
}

// AmountOf returns a set Amount carrying v.
func AmountOf(v float64) Amount {
	return Amount{value: v, valid: true}
}

// AmountPtr converts an optional decimal (as stored on the order entity) into
// an Amount. A nil pointer maps to the unset Amount.
func AmountPtr(v *float64) Amount {
	if v == nil {
		return Amount{}
	}
	return AmountOf(*v)
}

// Valid reports whether the amount was explicitly provided.
func (a Amount) Valid() bool {
	return a.valid
}

// OrZero returns the value, or 0 when unset.
func (a Amount) OrZero() float64 {
	if !a.valid {
		return 0
	}
	return a.value
}
