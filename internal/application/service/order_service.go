package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/darzee-app/darzee-api/internal/domain/entity"
	"github.com/darzee-app/darzee-api/internal/domain/enum"
	"github.com/darzee-app/darzee-api/internal/domain/repository"
	"github.com/darzee-app/darzee-api/pkg/apperror"
	"github.com/darzee-app/darzee-api/pkg/email"
	"github.com/darzee-app/darzee-api/pkg/pagination"
	"github.com/darzee-app/darzee-api/pkg/utils"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// OrderService handles order-related operations
type OrderService struct {
	orderRepo     repository.OrderRepository
	orderItemRepo repository.OrderItemRepository
	paymentRepo   repository.PaymentRepository
	tailorRepo    repository.TailorRepository
	userRepo      repository.UserRepository
	emailService  *email.EmailService
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo repository.OrderRepository,
	orderItemRepo repository.OrderItemRepository,
	paymentRepo repository.PaymentRepository,
	tailorRepo repository.TailorRepository,
	userRepo repository.UserRepository,
	emailService *email.EmailService,
) *OrderService {
	return &OrderService{
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
		paymentRepo:   paymentRepo,
		tailorRepo:    tailorRepo,
		userRepo:      userRepo,
		emailService:  emailService,
	}
}

// OrderItemInput represents a garment line in a new order
type OrderItemInput struct {
	GarmentType string
	Quantity    int
	TotalPrice  float64
}

// CreateOrderInput represents the create order input
type CreateOrderInput struct {
	CustomerID     uuid.UUID
	TailorID       uuid.UUID
	OrderType      string
	Price          float64
	DiscountAmount *float64
	AdvancePayment *float64
	PaymentMode    enum.PaymentMode
	DeliveryDate   *time.Time
	Measurements   entity.Measurements
	Items          []OrderItemInput
}

// CreateOrder creates a new order with its items and, when an advance was
// paid, the opening payment record.
func (s *OrderService) CreateOrder(ctx context.Context, input *CreateOrderInput) (*entity.Order, error) {
	tailor, err := s.tailorRepo.GetByID(ctx, input.TailorID)
	if err != nil {
		return nil, err
	}
	if tailor == nil {
		return nil, apperror.NewNotFoundError("Tailor")
	}

	customer, err := s.userRepo.GetByID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	if input.Price < 0 {
		return nil, apperror.NewBadRequestError("Price cannot be negative")
	}

	priceCents := int64(input.Price * 100)
	order := &entity.Order{
		CustomerID:    input.CustomerID,
		TailorID:      input.TailorID,
		OrderType:     input.OrderType,
		InvoiceNo:     utils.GenerateInvoiceNo("ORD-"),
		OrderDate:     time.Now(),
		DeliveryDate:  input.DeliveryDate,
		OrderStatus:   enum.OrderStatusReceived,
		Price:         priceCents,
		CustomerName:  customer.Name,
		Measurements:  input.Measurements,
		PaymentStatus: paymentStatusForMode(input.PaymentMode),
	}
	if customer.Phone != nil {
		order.CustomerPhone = *customer.Phone
	}
	if input.DiscountAmount != nil {
		cents := int64(*input.DiscountAmount * 100)
		order.DiscountAmount = &cents
	}

	var advanceCents int64
	if input.AdvancePayment != nil {
		advanceCents = int64(*input.AdvancePayment * 100)
		order.AdvancePayment = &advanceCents
	}

	final := priceCents
	if d := order.EffectiveDiscountCents(); d != nil {
		final -= *d
	}
	if final < 0 {
		final = 0
	}
	if advanceCents >= final && final > 0 {
		order.PaymentStatus = enum.PaymentStatusPaid
	} else if advanceCents > 0 {
		order.PaymentStatus = enum.PaymentStatusPartial
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	if len(input.Items) > 0 {
		items := make([]entity.OrderItem, 0, len(input.Items))
		for _, item := range input.Items {
			if item.Quantity < 1 {
				item.Quantity = 1
			}
			items = append(items, entity.OrderItem{
				OrderID:     order.ID,
				GarmentType: item.GarmentType,
				Quantity:    item.Quantity,
				TotalPrice:  int64(item.TotalPrice * 100),
			})
		}
		if err := s.orderItemRepo.CreateBatch(ctx, items); err != nil {
			return nil, err
		}
	}

	if advanceCents > 0 {
		payment := &entity.Payment{
			OrderID: order.ID,
			Amount:  advanceCents,
			Mode:    input.PaymentMode,
		}
		if err := s.paymentRepo.Create(ctx, payment); err != nil {
			return nil, err
		}
	}

	if s.emailService != nil {
		if err := s.emailService.SendOrderConfirmationEmail(customer.Email, customer.Name, tailor.ShopName, order.InvoiceNo); err != nil {
			log.Printf("Warning: failed to send order confirmation for %s: %v", order.InvoiceNo, err)
		}
	}

	return s.orderRepo.GetWithDetails(ctx, order.ID)
}

func paymentStatusForMode(mode enum.PaymentMode) enum.PaymentStatus {
	if mode == enum.PaymentModePayLater {
		return enum.PaymentStatusScheduled
	}
	return enum.PaymentStatusUnset
}

// GetOrder retrieves an order with its items and payments
func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetWithDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// ListOrders lists orders with filtering
func (s *OrderService) ListOrders(ctx context.Context, params *repository.OrderFilterParams) (*pagination.PaginatedResult[entity.Order], error) {
	orders, total, err := s.orderRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(orders, pag), nil
}

// ListOrdersWithCursor lists orders with cursor-based pagination
func (s *OrderService) ListOrdersWithCursor(ctx context.Context, params *repository.OrderCursorFilterParams) (*pagination.CursorPaginatedResult[entity.Order], error) {
	orders, err := s.orderRepo.ListWithCursor(ctx, params)
	if err != nil {
		return nil, err
	}

	hasPrev := params.Cursor.Cursor != ""

	cursorPag, items := pagination.NewCursorPagination(orders, params.Cursor.Limit,
		func(o entity.Order) string { return o.ID.String() },
		func(o entity.Order) time.Time { return o.CreatedAt },
	)
	cursorPag.HasPrev = hasPrev

	return pagination.NewCursorPaginatedResult(items, cursorPag), nil
}

// UpdateOrderStatus updates the lifecycle status of an order
func (s *OrderService) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status enum.OrderStatus) error {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return apperror.NewNotFoundError("Order")
	}

	if order.OrderStatus == enum.OrderStatusCancelled {
		return apperror.NewBadRequestError("Cancelled orders cannot change status")
	}

	return s.orderRepo.UpdateStatus(ctx, orderID, status)
}

// CancelOrder cancels an order
func (s *OrderService) CancelOrder(ctx context.Context, orderID uuid.UUID) error {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return apperror.NewNotFoundError("Order")
	}

	if order.OrderStatus == enum.OrderStatusCancelled {
		return apperror.NewBadRequestError("Order is already cancelled")
	}
	if order.OrderStatus == enum.OrderStatusDelivered {
		return apperror.NewBadRequestError("Delivered orders cannot be cancelled")
	}

	return s.orderRepo.UpdateStatus(ctx, orderID, enum.OrderStatusCancelled)
}

// RecordPaymentInput represents a payment recorded against an order
type RecordPaymentInput struct {
	OrderID uuid.UUID
	Amount  float64
	Mode    enum.PaymentMode
	Note    *string
}

// RecordPayment stores a payment audit record and settles it against the
// order's remaining balance.
func (s *OrderService) RecordPayment(ctx context.Context, input *RecordPaymentInput) (*entity.Order, error) {
	if input.Amount <= 0 {
		return nil, apperror.NewBadRequestError("Payment amount must be positive")
	}

	order, err := s.orderRepo.GetByID(ctx, input.OrderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	if order.OrderStatus == enum.OrderStatusCancelled {
		return nil, apperror.NewBadRequestError("Cannot record payments on a cancelled order")
	}

	amountCents := int64(input.Amount * 100)
	payment := &entity.Payment{
		OrderID: order.ID,
		Amount:  amountCents,
		Mode:    input.Mode,
		Note:    input.Note,
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	remaining := s.remainingCents(order) - amountCents
	if remaining < 0 {
		remaining = 0
	}
	order.RemainingAmount = &remaining

	if remaining == 0 {
		order.PaymentStatus = enum.PaymentStatusPaid
	} else {
		order.PaymentStatus = enum.PaymentStatusPartial
	}

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	return s.orderRepo.GetWithDetails(ctx, order.ID)
}

// remainingCents resolves the order's balance before a new payment: the stored
// remaining amount when present, otherwise derived from price, discount and
// advance, floored at zero.
func (s *OrderService) remainingCents(order *entity.Order) int64 {
	if order.RemainingAmount != nil {
		return *order.RemainingAmount
	}

	remaining := order.Price
	if d := order.EffectiveDiscountCents(); d != nil {
		remaining -= *d
	}
	if order.AdvancePayment != nil {
		remaining -= *order.AdvancePayment
	}
	if remaining < 0 {
		remaining = 0
	}
	return remaining
}

// ExportOrders builds an .xlsx ledger of a tailor shop's orders
func (s *OrderService) ExportOrders(ctx context.Context, tailorID uuid.UUID) (*excelize.File, error) {
	orders, err := s.orderRepo.ListAllForExport(ctx, tailorID)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheet := "Orders"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Invoice No", "Order Date", "Customer", "Order Type", "Status", "Payment Status", "Price", "Discount", "Advance", "Remaining"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, order := range orders {
		values := []interface{}{
			order.InvoiceNo,
			order.OrderDate.Format("2006-01-02"),
			order.CustomerName,
			order.OrderType,
			order.OrderStatus.String(),
			order.PaymentStatus.String(),
			float64(order.Price) / 100,
			optionalCentsValue(order.EffectiveDiscountCents()),
			optionalCentsValue(order.AdvancePayment),
			optionalCentsValue(order.RemainingAmount),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	return f, nil
}

func optionalCentsValue(v *int64) interface{} {
	if v == nil {
		return ""
	}
	return float64(*v) / 100
}

// ExportFileName returns the attachment name for an orders export
func ExportFileName(now time.Time) string {
	return fmt.Sprintf("orders-%s.xlsx", now.Format("2006-01-02"))
}
