package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/darzee-app/darzee-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Measurements holds garment measurements as a free-form name -> value map,
// stored as jsonb.
type Measurements map[string]float64

func (m Measurements) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

func (m *Measurements) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	}
	return fmt.Errorf("cannot scan %T into Measurements", value)
}

// Order represents a tailoring order placed by a customer with a shop
type Order struct {
	ID              uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID      uuid.UUID          `gorm:"type:uuid;not null;index" json:"customer_id"`
	TailorID        uuid.UUID          `gorm:"type:uuid;not null;index" json:"tailor_id"`
	OrderType       string             `gorm:"size:100;not null" json:"order_type"`
	InvoiceNo       string             `gorm:"size:100;unique;not null" json:"invoice_no"`
	OrderDate       time.Time          `gorm:"type:date;not null" json:"order_date"`
	DeliveryDate    *time.Time         `gorm:"type:date" json:"delivery_date,omitempty"`
	OrderStatus     enum.OrderStatus   `gorm:"default:0" json:"order_status"`
	PaymentStatus   enum.PaymentStatus `gorm:"default:0" json:"payment_status"`
	Price           int64              `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	DiscountAmount  *int64             `json:"-"`                  // Stored in cents, excluded from JSON
	Discount        *int64             `json:"-"`                  // Legacy column, cents; DiscountAmount wins
	AdvancePayment  *int64             `json:"-"`                  // Stored in cents, excluded from JSON
	RemainingAmount *int64             `json:"-"`                  // Authoritative when non-nil, cents
	CustomerName    string             `gorm:"size:255" json:"customer_name"`
	CustomerPhone   string             `gorm:"size:50" json:"customer_phone"`
	Measurements    Measurements       `gorm:"type:jsonb" json:"measurements,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
	DeletedAt       gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	Customer User        `gorm:"foreignKey:CustomerID" json:"-"`
	Tailor   Tailor      `gorm:"foreignKey:TailorID" json:"-"`
	Items    []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
	Payments []Payment   `gorm:"foreignKey:OrderID" json:"payments,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (o Order) MarshalJSON() ([]byte, error) {
	type Alias Order
	return json.Marshal(&struct {
		Alias
		Price           float64  `json:"price"`
		DiscountAmount  *float64 `json:"discount_amount,omitempty"`
		AdvancePayment  *float64 `json:"advance_payment,omitempty"`
		RemainingAmount *float64 `json:"remaining_amount,omitempty"`
	}{
		Alias:           Alias(o),
		Price:           float64(o.Price) / 100,
		DiscountAmount:  centsToDecimal(o.DiscountAmount),
		AdvancePayment:  centsToDecimal(o.AdvancePayment),
		RemainingAmount: centsToDecimal(o.RemainingAmount),
	})
}

func centsToDecimal(v *int64) *float64 {
	if v == nil {
		return nil
	}
	d := float64(*v) / 100
	return &d
}

// BeforeCreate generates a UUID before creating a new order
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// GetPriceDecimal returns the order price as a decimal
func (o *Order) GetPriceDecimal() float64 {
	return float64(o.Price) / 100
}

// EffectiveDiscountCents resolves the discount column pair; the newer
// discount_amount column wins when both are set.
func (o *Order) EffectiveDiscountCents() *int64 {
	if o.DiscountAmount != nil {
		return o.DiscountAmount
	}
	return o.Discount
}

// OrderItem represents a garment line in an order
type OrderItem struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	OrderID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"order_id"`
	GarmentType string         `gorm:"size:100;not null" json:"garment_type"`
	Quantity    int            `gorm:"not null;default:1" json:"quantity"`
	TotalPrice  int64          `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Order Order `gorm:"foreignKey:OrderID" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (oi OrderItem) MarshalJSON() ([]byte, error) {
	type Alias OrderItem
	return json.Marshal(&struct {
		Alias
		TotalPrice float64 `json:"total_price"`
	}{
		Alias:      Alias(oi),
		TotalPrice: float64(oi.TotalPrice) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new order item
func (oi *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if oi.ID == uuid.Nil {
		oi.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OrderItem model
func (OrderItem) TableName() string {
	return "order_items"
}
