package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// PaymentStatus tracks how much of an order has been settled
type PaymentStatus int

const (
	PaymentStatusUnset     PaymentStatus = 0
	PaymentStatusPaid      PaymentStatus = 1
	PaymentStatusPartial   PaymentStatus = 2
	PaymentStatusScheduled PaymentStatus = 3
)

func (s PaymentStatus) String() string {
	return [...]string{"unset", "paid", "partial", "scheduled"}[s]
}

func (s PaymentStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *PaymentStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Try unmarshaling as int
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = PaymentStatus(i)
		return nil
	}
	switch str {
	case "paid":
		*s = PaymentStatusPaid
	case "partial":
		*s = PaymentStatusPartial
	case "scheduled":
		*s = PaymentStatusScheduled
	default:
		*s = PaymentStatusUnset
	}
	return nil
}

func (s PaymentStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *PaymentStatus) Scan(value interface{}) error {
	if value == nil {
		*s = PaymentStatusUnset
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = PaymentStatus(v)
	case int:
		*s = PaymentStatus(v)
	}
	return nil
}
