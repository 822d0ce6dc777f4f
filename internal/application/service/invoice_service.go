package service

import (
	"context"
	"image"
	"log"
	"time"

	"github.com/darzee-app/darzee-api/internal/domain/entity"
	"github.com/darzee-app/darzee-api/internal/domain/enum"
	"github.com/darzee-app/darzee-api/internal/domain/repository"
	"github.com/darzee-app/darzee-api/pkg/apperror"
	"github.com/darzee-app/darzee-api/pkg/invoice"
	"github.com/google/uuid"
)

// InvoiceService turns an order and its tailor's shop profile into a rendered
// PNG invoice.
type InvoiceService struct {
	orderRepo  repository.OrderRepository
	tailorRepo repository.TailorRepository
	renderer   *invoice.Renderer
	logoLoader invoice.LogoLoader
	now        func() time.Time
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(
	orderRepo repository.OrderRepository,
	tailorRepo repository.TailorRepository,
	renderer *invoice.Renderer,
	logoLoader invoice.LogoLoader,
) *InvoiceService {
	return &InvoiceService{
		orderRepo:  orderRepo,
		tailorRepo: tailorRepo,
		renderer:   renderer,
		logoLoader: logoLoader,
		now:        time.Now,
	}
}

// RenderInvoiceInput represents the render request
type RenderInvoiceInput struct {
	OrderID uuid.UUID
	// CurrentPayment is the amount being settled in the transaction that
	// triggered this render, if any; it adds a row to the breakdown.
	CurrentPayment *float64
}

// RenderInvoice fetches the order, builds the layout and rasterizes it. The
// logo load is the only fallible step and degrades to the wordmark fallback.
func (s *InvoiceService) RenderInvoice(ctx context.Context, input *RenderInvoiceInput) ([]byte, error) {
	order, err := s.orderRepo.GetWithDetails(ctx, input.OrderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}

	tailor, err := s.tailorRepo.GetByID(ctx, order.TailorID)
	if err != nil {
		return nil, err
	}
	if tailor == nil {
		return nil, apperror.NewNotFoundError("Tailor")
	}

	inv := buildInvoiceInput(order, tailor, input.CurrentPayment)

	var logo image.Image
	if tailor.LogoPath != nil && *tailor.LogoPath != "" {
		logo, err = s.logoLoader.Load(ctx, *tailor.LogoPath)
		if err != nil {
			log.Printf("invoice %s: logo load failed, using wordmark: %v", inv.Number(), err)
			logo = nil
		}
	}

	doc := invoice.BuildDocument(inv, logo, s.now())
	return s.renderer.RenderPNG(doc)
}

// buildInvoiceInput maps persisted cents-based records onto the engine's
// decimal value objects.
func buildInvoiceInput(order *entity.Order, tailor *entity.Tailor, currentPayment *float64) invoice.Invoice {
	billing := invoice.Billing{
		Price:          float64(order.Price) / 100,
		Discount:       centsAmount(order.EffectiveDiscountCents()),
		AdvancePayment: centsAmount(order.AdvancePayment),
		CurrentPayment: invoice.AmountPtr(currentPayment),
		Remaining:      centsAmount(order.RemainingAmount),
		Status:         enginePaymentStatus(order.PaymentStatus),
	}

	items := make([]invoice.Item, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, invoice.Item{
			GarmentType: item.GarmentType,
			Quantity:    item.Quantity,
			TotalPrice:  float64(item.TotalPrice) / 100,
		})
	}

	shop := invoice.Shop{
		Name: tailor.ShopName,
	}
	if tailor.Phone != nil {
		shop.Phone = *tailor.Phone
	}
	if tailor.Street != nil {
		shop.Street = *tailor.Street
	}
	if tailor.City != nil {
		shop.City = *tailor.City
	}
	if tailor.TermsText != nil {
		shop.TermsText = *tailor.TermsText
	}

	return invoice.Invoice{
		OrderID:       order.ID.String(),
		OrderType:     order.OrderType,
		CustomerName:  order.CustomerName,
		CustomerPhone: order.CustomerPhone,
		Billing:       billing,
		Items:         items,
		Shop:          shop,
	}
}

func centsAmount(v *int64) invoice.Amount {
	if v == nil {
		return invoice.Amount{}
	}
	return invoice.AmountOf(float64(*v) / 100)
}

func enginePaymentStatus(status enum.PaymentStatus) invoice.PaymentStatus {
	switch status {
	case enum.PaymentStatusPaid:
		return invoice.PaymentStatusPaid
	case enum.PaymentStatusPartial:
		return invoice.PaymentStatusPartial
	case enum.PaymentStatusScheduled:
		return invoice.PaymentStatusScheduled
	default:
		return invoice.PaymentStatusUnset
	}
}
