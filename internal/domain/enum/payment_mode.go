package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// PaymentMode categorizes how a customer chose to pay for an order
type PaymentMode int

const (
	PaymentModePayNow   PaymentMode = 0
	PaymentModePartial  PaymentMode = 1
	PaymentModePayLater PaymentMode = 2
)

func (m PaymentMode) String() string {
	return [...]string{"pay_now", "partial", "pay_later"}[m]
}

func (m PaymentMode) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *PaymentMode) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Try unmarshaling as int
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*m = PaymentMode(i)
		return nil
	}
	switch str {
	case "pay_now":
		*m = PaymentModePayNow
	case "partial":
		*m = PaymentModePartial
	case "pay_later":
		*m = PaymentModePayLater
	}
	return nil
}

func (m PaymentMode) Value() (driver.Value, error) {
	return int64(m), nil
}

func (m *PaymentMode) Scan(value interface{}) error {
	if value == nil {
		*m = PaymentModePayNow
		return nil
	}
	switch v := value.(type) {
	case int64:
		*m = PaymentMode(v)
	case int:
		*m = PaymentMode(v)
	}
	return nil
}

// ParsePaymentMode maps an API mode string to its enum value, defaulting to
// pay_now for unknown or empty input
func ParsePaymentMode(s string) PaymentMode {
	switch s {
	case "partial":
		return PaymentModePartial
	case "pay_later":
		return PaymentModePayLater
	default:
		return PaymentModePayNow
	}
}
