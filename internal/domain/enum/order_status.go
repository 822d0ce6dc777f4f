package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// OrderStatus represents the lifecycle state of a tailoring order
type OrderStatus int

const (
	OrderStatusReceived   OrderStatus = 0
	OrderStatusInProgress OrderStatus = 1
	OrderStatusReady      OrderStatus = 2
	OrderStatusDelivered  OrderStatus = 3
	OrderStatusCancelled  OrderStatus = 4
)

func (s OrderStatus) String() string {
	return [...]string{"Received", "In Progress", "Ready", "Delivered", "Cancelled"}[s]
}

func (s OrderStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *OrderStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Try unmarshaling as int
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = OrderStatus(i)
		return nil
	}
	switch str {
	case "Received":
		*s = OrderStatusReceived
	case "In Progress":
		*s = OrderStatusInProgress
	case "Ready":
		*s = OrderStatusReady
	case "Delivered":
		*s = OrderStatusDelivered
	case "Cancelled":
		*s = OrderStatusCancelled
	}
	return nil
}

func (s OrderStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *OrderStatus) Scan(value interface{}) error {
	if value == nil {
		*s = OrderStatusReceived
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = OrderStatus(v)
	case int:
		*s = OrderStatus(v)
	}
	return nil
}

// ParseOrderStatus maps an API status string to its enum value
func ParseOrderStatus(s string) (OrderStatus, bool) {
	switch s {
	case "received":
		return OrderStatusReceived, true
	case "in_progress":
		return OrderStatusInProgress, true
	case "ready":
		return OrderStatusReady, true
	case "delivered":
		return OrderStatusDelivered, true
	case "cancelled":
		return OrderStatusCancelled, true
	}
	return OrderStatusReceived, false
}
