package invoice

import "testing"

func TestComputeBreakdownDerivation(t *testing.T) {
	tests := []struct {
		name          string
		billing       Billing
		wantFinal     float64
		wantPaid      float64
		wantRemaining float64
		wantStatus    string
	}{
		{
			name:          "plain order with no payments",
			billing:       Billing{Price: 1000},
			wantFinal:     1000,
			wantPaid:      0,
			wantRemaining: 1000,
			wantStatus:    StatusUnpaid,
		},
		{
			name: "discount and advance derive remaining",
			billing: Billing{
				Price:          2000,
				Discount:       AmountOf(200),
				AdvancePayment: AmountOf(500),
			},
			wantFinal:     1800,
			wantPaid:      500,
			wantRemaining: 1300,
			wantStatus:    StatusPartialPayment,
		},
		{
			name: "current payment joins the derivation",
			billing: Billing{
				Price:          1500,
				AdvancePayment: AmountOf(300),
				CurrentPayment: AmountOf(200),
			},
			wantFinal:     1500,
			wantPaid:      500,
			wantRemaining: 1000,
			wantStatus:    StatusPartialPayment,
		},
		{
			name: "stored remaining is trusted verbatim",
			billing: Billing{
				Price:          1000,
				AdvancePayment: AmountOf(900),
				Remaining:      AmountOf(700),
			},
			wantFinal:     1000,
			wantPaid:      300,
			wantRemaining: 700,
			wantStatus:    StatusPartialPayment,
		},
		{
			name: "stored remaining of zero is paid in full",
			billing: Billing{
				Price:     1000,
				Remaining: AmountOf(0),
			},
			wantFinal:     1000,
			wantPaid:      1000,
			wantRemaining: 0,
			wantStatus:    StatusPaidInFull,
		},
		{
			name: "discount larger than price floors final at zero",
			billing: Billing{
				Price:    300,
				Discount: AmountOf(999),
			},
			wantFinal:     0,
			wantPaid:      0,
			wantRemaining: 0,
			wantStatus:    StatusPaidInFull,
		},
		{
			name: "overpayment floors remaining at zero",
			billing: Billing{
				Price:          500,
				AdvancePayment: AmountOf(800),
			},
			wantFinal:     500,
			wantPaid:      500,
			wantRemaining: 0,
			wantStatus:    StatusPaidInFull,
		},
		{
			name: "stored remaining above final floors paid at zero",
			billing: Billing{
				Price:     400,
				Remaining: AmountOf(600),
			},
			wantFinal:     400,
			wantPaid:      0,
			wantRemaining: 600,
			wantStatus:    StatusUnpaid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeBreakdown(tt.billing)
			if got.FinalAmount != tt.wantFinal {
				t.Fatalf("FinalAmount = %v, want %v", got.FinalAmount, tt.wantFinal)
			}
			if got.PaidSoFar != tt.wantPaid {
				t.Fatalf("PaidSoFar = %v, want %v", got.PaidSoFar, tt.wantPaid)
			}
			if got.Remaining != tt.wantRemaining {
				t.Fatalf("Remaining = %v, want %v", got.Remaining, tt.wantRemaining)
			}
			if got.StatusText != tt.wantStatus {
				t.Fatalf("StatusText = %q, want %q", got.StatusText, tt.wantStatus)
			}
		})
	}
}

func TestComputeBreakdownConsistency(t *testing.T) {
	// Whenever remaining is derived (not stored), paid + remaining must equal
	// the final amount.
	billings := []Billing{
		{Price: 1000},
		{Price: 1000, Discount: AmountOf(150)},
		{Price: 1000, AdvancePayment: AmountOf(400)},
		{Price: 1000, Discount: AmountOf(150), AdvancePayment: AmountOf(400), CurrentPayment: AmountOf(100)},
		{Price: 500, AdvancePayment: AmountOf(800)},
	}
	for _, b := range billings {
		bd := ComputeBreakdown(b)
		if got := bd.PaidSoFar + bd.Remaining; got != bd.FinalAmount {
			t.Fatalf("paid %v + remaining %v = %v, want final %v (billing %+v)",
				bd.PaidSoFar, bd.Remaining, got, bd.FinalAmount, b)
		}
	}
}

func TestComputeBreakdownNeverNegative(t *testing.T) {
	bd := ComputeBreakdown(Billing{
		Price:          100,
		Discount:       AmountOf(500),
		AdvancePayment: AmountOf(500),
		CurrentPayment: AmountOf(500),
	})
	for name, v := range map[string]float64{
		"FinalAmount": bd.FinalAmount,
		"PaidSoFar":   bd.PaidSoFar,
		"Remaining":   bd.Remaining,
	} {
		if v < 0 {
			t.Fatalf("%s = %v, want >= 0", name, v)
		}
	}
}

func TestStatusTextPriority(t *testing.T) {
	tests := []struct {
		name      string
		status    PaymentStatus
		remaining float64
		paid      float64
		want      string
	}{
		{"paid status wins over balance", PaymentStatusPaid, 500, 0, StatusPaidInFull},
		{"zero balance wins over partial status", PaymentStatusPartial, 0, 100, StatusPaidInFull},
		{"partial status with balance", PaymentStatusPartial, 300, 100, StatusPartialPayment},
		{"scheduled status with balance", PaymentStatusScheduled, 300, 0, StatusPaymentScheduled},
		{"unset status with payments", PaymentStatusUnset, 300, 100, StatusPartialPayment},
		{"unset status without payments", PaymentStatusUnset, 300, 0, StatusUnpaid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := statusText(tt.status, tt.remaining, tt.paid); got != tt.want {
				t.Fatalf("statusText(%q, %v, %v) = %q, want %q",
					tt.status, tt.remaining, tt.paid, got, tt.want)
			}
		})
	}
}

func TestResolveDiscountPrecedence(t *testing.T) {
	amount := 50.0
	legacy := 500.0

	got := ResolveDiscount(&amount, &legacy)
	if !got.Valid() || got.OrZero() != 50 {
		t.Fatalf("ResolveDiscount with both set = %v, want 50", got.OrZero())
	}

	got = ResolveDiscount(nil, &legacy)
	if !got.Valid() || got.OrZero() != 500 {
		t.Fatalf("ResolveDiscount with legacy only = %v, want 500", got.OrZero())
	}

	got = ResolveDiscount(nil, nil)
	if got.Valid() {
		t.Fatalf("ResolveDiscount with neither set should be unset, got %v", got.OrZero())
	}
}
