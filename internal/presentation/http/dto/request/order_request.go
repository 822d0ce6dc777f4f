package request

import (
	"time"

	"github.com/google/uuid"
)

// OrderItemRequest represents one garment line in a new order
type OrderItemRequest struct {
	GarmentType string  `json:"garment_type" binding:"required"`
	Quantity    int     `json:"quantity"`
	TotalPrice  float64 `json:"total_price"`
}

// CreateOrderRequest represents the create order request body
type CreateOrderRequest struct {
	TailorID       uuid.UUID          `json:"tailor_id" binding:"required"`
	OrderType      string             `json:"order_type" binding:"required"`
	Price          float64            `json:"price" binding:"required"`
	DiscountAmount *float64           `json:"discount_amount"`
	AdvancePayment *float64           `json:"advance_payment"`
	PaymentMode    string             `json:"payment_mode" binding:"omitempty,oneof=pay_now partial pay_later"`
	DeliveryDate   *time.Time         `json:"delivery_date"`
	Measurements   map[string]float64 `json:"measurements"`
	// Items may be empty; itemless orders render a single synthetic line
	// built from the order type and price.
	Items []OrderItemRequest `json:"items" binding:"dive"`
}

// RecordPaymentRequest represents the record payment request body
type RecordPaymentRequest struct {
	Amount float64 `json:"amount" binding:"required"`
	Mode   string  `json:"mode" binding:"omitempty,oneof=pay_now partial pay_later"`
	Note   *string `json:"note"`
}

// UpdateOrderStatusRequest represents the update order status request body
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=received in_progress ready delivered cancelled"`
}
