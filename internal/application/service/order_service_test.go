package service

import (
	"context"
	"testing"
	"time"

	"github.com/darzee-app/darzee-api/internal/domain/entity"
	"github.com/darzee-app/darzee-api/internal/domain/enum"
	"github.com/darzee-app/darzee-api/internal/domain/repository"
	"github.com/darzee-app/darzee-api/pkg/pagination"
	"github.com/google/uuid"
)

type fakeOrderRepo struct {
	orders map[uuid.UUID]*entity.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[uuid.UUID]*entity.Order)}
}

func (r *fakeOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	r.orders[order.ID] = order
	return nil
}

func (r *fakeOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return r.orders[id], nil
}

func (r *fakeOrderRepo) GetByInvoiceNo(ctx context.Context, invoiceNo string) (*entity.Order, error) {
	for _, o := range r.orders {
		if o.InvoiceNo == invoiceNo {
			return o, nil
		}
	}
	return nil, nil
}

func (r *fakeOrderRepo) GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return r.orders[id], nil
}

func (r *fakeOrderRepo) Update(ctx context.Context, order *entity.Order) error {
	r.orders[order.ID] = order
	return nil
}

func (r *fakeOrderRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.orders, id)
	return nil
}

func (r *fakeOrderRepo) List(ctx context.Context, params *repository.OrderFilterParams) ([]entity.Order, int64, error) {
	out := make([]entity.Order, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, *o)
	}
	return out, int64(len(out)), nil
}

func (r *fakeOrderRepo) ListWithCursor(ctx context.Context, params *repository.OrderCursorFilterParams) ([]entity.Order, error) {
	out := make([]entity.Order, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, *o)
	}
	return out, nil
}

func (r *fakeOrderRepo) ListAllForExport(ctx context.Context, tailorID uuid.UUID) ([]entity.Order, error) {
	var out []entity.Order
	for _, o := range r.orders {
		if o.TailorID == tailorID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.OrderStatus) error {
	if o, ok := r.orders[id]; ok {
		o.OrderStatus = status
	}
	return nil
}

type fakeOrderItemRepo struct {
	items []entity.OrderItem
}

func (r *fakeOrderItemRepo) CreateBatch(ctx context.Context, items []entity.OrderItem) error {
	r.items = append(r.items, items...)
	return nil
}

func (r *fakeOrderItemRepo) GetByOrderID(ctx context.Context, orderID uuid.UUID) ([]entity.OrderItem, error) {
	var out []entity.OrderItem
	for _, it := range r.items {
		if it.OrderID == orderID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *fakeOrderItemRepo) DeleteByOrderID(ctx context.Context, orderID uuid.UUID) error {
	return nil
}

type fakePaymentRepo struct {
	payments []entity.Payment
}

func (r *fakePaymentRepo) Create(ctx context.Context, payment *entity.Payment) error {
	r.payments = append(r.payments, *payment)
	return nil
}

func (r *fakePaymentRepo) GetByOrderID(ctx context.Context, orderID uuid.UUID) ([]entity.Payment, error) {
	var out []entity.Payment
	for _, p := range r.payments {
		if p.OrderID == orderID {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeTailorRepo struct {
	tailors map[uuid.UUID]*entity.Tailor
}

func newFakeTailorRepo() *fakeTailorRepo {
	return &fakeTailorRepo{tailors: make(map[uuid.UUID]*entity.Tailor)}
}

func (r *fakeTailorRepo) Create(ctx context.Context, tailor *entity.Tailor) error {
	if tailor.ID == uuid.Nil {
		tailor.ID = uuid.New()
	}
	r.tailors[tailor.ID] = tailor
	return nil
}

func (r *fakeTailorRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Tailor, error) {
	return r.tailors[id], nil
}

func (r *fakeTailorRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.Tailor, error) {
	for _, t := range r.tailors {
		if t.UserID == userID {
			return t, nil
		}
	}
	return nil, nil
}

func (r *fakeTailorRepo) Update(ctx context.Context, tailor *entity.Tailor) error {
	r.tailors[tailor.ID] = tailor
	return nil
}

func (r *fakeTailorRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.tailors, id)
	return nil
}

func (r *fakeTailorRepo) Search(ctx context.Context, params *repository.TailorFilterParams) ([]entity.Tailor, int64, error) {
	return nil, 0, nil
}

func (r *fakeTailorRepo) SearchWithCursor(ctx context.Context, params *repository.TailorCursorFilterParams) ([]entity.Tailor, error) {
	return nil, nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByProviderID(ctx context.Context, provider, providerID string) (*entity.User, error) {
	return nil, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.users, id)
	return nil
}

type orderServiceFixture struct {
	svc        *OrderService
	orderRepo  *fakeOrderRepo
	payments   *fakePaymentRepo
	customerID uuid.UUID
	tailorID   uuid.UUID
}

func newOrderServiceFixture(t *testing.T) *orderServiceFixture {
	t.Helper()

	orderRepo := newFakeOrderRepo()
	itemRepo := &fakeOrderItemRepo{}
	paymentRepo := &fakePaymentRepo{}
	tailorRepo := newFakeTailorRepo()
	userRepo := newFakeUserRepo()

	phone := "+91-9000000000"
	customer := &entity.User{Name: "Asha Rao", Email: "asha@example.com", Phone: &phone}
	if err := userRepo.Create(context.Background(), customer); err != nil {
		t.Fatalf("seeding customer: %v", err)
	}

	owner := &entity.User{Name: "Ravi", Email: "ravi@example.com", Role: enum.RoleTailor}
	if err := userRepo.Create(context.Background(), owner); err != nil {
		t.Fatalf("seeding owner: %v", err)
	}
	tailor := &entity.Tailor{UserID: owner.ID, ShopName: "Silver Needle Tailors"}
	if err := tailorRepo.Create(context.Background(), tailor); err != nil {
		t.Fatalf("seeding tailor: %v", err)
	}

	return &orderServiceFixture{
		svc:        NewOrderService(orderRepo, itemRepo, paymentRepo, tailorRepo, userRepo, nil),
		orderRepo:  orderRepo,
		payments:   paymentRepo,
		customerID: customer.ID,
		tailorID:   tailor.ID,
	}
}

func (f *orderServiceFixture) createOrder(t *testing.T, input *CreateOrderInput) *entity.Order {
	t.Helper()
	input.CustomerID = f.customerID
	input.TailorID = f.tailorID
	order, err := f.svc.CreateOrder(context.Background(), input)
	if err != nil {
		t.Fatalf("CreateOrder failed: %v", err)
	}
	return order
}

func floatPtr(v float64) *float64 { return &v }

func TestCreateOrderPaymentStatus(t *testing.T) {
	tests := []struct {
		name    string
		input   *CreateOrderInput
		status  enum.PaymentStatus
		advance int64
	}{
		{
			name:   "no advance pay_now stays unset",
			input:  &CreateOrderInput{OrderType: "Kurta", Price: 50, PaymentMode: enum.PaymentModePayNow},
			status: enum.PaymentStatusUnset,
		},
		{
			name:   "pay_later is scheduled",
			input:  &CreateOrderInput{OrderType: "Kurta", Price: 50, PaymentMode: enum.PaymentModePayLater},
			status: enum.PaymentStatusScheduled,
		},
		{
			name:    "partial advance marks partial",
			input:   &CreateOrderInput{OrderType: "Kurta", Price: 50, AdvancePayment: floatPtr(20), PaymentMode: enum.PaymentModePartial},
			status:  enum.PaymentStatusPartial,
			advance: 2000,
		},
		{
			name:    "advance covering the bill marks paid",
			input:   &CreateOrderInput{OrderType: "Kurta", Price: 50, AdvancePayment: floatPtr(50), PaymentMode: enum.PaymentModePayNow},
			status:  enum.PaymentStatusPaid,
			advance: 5000,
		},
		{
			name: "discount lowers the bar for paid",
			input: &CreateOrderInput{
				OrderType: "Kurta", Price: 50,
				DiscountAmount: floatPtr(20), AdvancePayment: floatPtr(30),
				PaymentMode: enum.PaymentModePayNow,
			},
			status:  enum.PaymentStatusPaid,
			advance: 3000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newOrderServiceFixture(t)
			order := f.createOrder(t, tt.input)

			if order.PaymentStatus != tt.status {
				t.Errorf("PaymentStatus = %v, want %v", order.PaymentStatus, tt.status)
			}
			if order.OrderStatus != enum.OrderStatusReceived {
				t.Errorf("OrderStatus = %v, want Received", order.OrderStatus)
			}
			if order.InvoiceNo == "" {
				t.Error("InvoiceNo should be generated")
			}

			if tt.advance > 0 {
				if len(f.payments.payments) != 1 {
					t.Fatalf("expected 1 opening payment record, got %d", len(f.payments.payments))
				}
				if f.payments.payments[0].Amount != tt.advance {
					t.Errorf("opening payment = %d cents, want %d", f.payments.payments[0].Amount, tt.advance)
				}
			} else if len(f.payments.payments) != 0 {
				t.Errorf("expected no payment records, got %d", len(f.payments.payments))
			}
		})
	}
}

func TestCreateOrderRejectsNegativePrice(t *testing.T) {
	f := newOrderServiceFixture(t)
	_, err := f.svc.CreateOrder(context.Background(), &CreateOrderInput{
		CustomerID: f.customerID,
		TailorID:   f.tailorID,
		OrderType:  "Kurta",
		Price:      -1,
	})
	if err == nil {
		t.Fatal("expected error for negative price")
	}
}

func TestCreateOrderItemQuantityFloor(t *testing.T) {
	f := newOrderServiceFixture(t)
	order := f.createOrder(t, &CreateOrderInput{
		OrderType: "Kurta",
		Price:     50,
		Items: []OrderItemInput{
			{GarmentType: "Kurta", Quantity: 0, TotalPrice: 50},
		},
	})

	items, err := f.svc.orderItemRepo.GetByOrderID(context.Background(), order.ID)
	if err != nil {
		t.Fatalf("GetByOrderID failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Quantity != 1 {
		t.Errorf("Quantity = %d, want floor of 1", items[0].Quantity)
	}
}

func TestRecordPaymentTransitions(t *testing.T) {
	f := newOrderServiceFixture(t)
	order := f.createOrder(t, &CreateOrderInput{
		OrderType:      "Lehenga",
		Price:          100,
		AdvancePayment: floatPtr(30),
		PaymentMode:    enum.PaymentModePartial,
	})

	// First settlement: 100 - 30 advance - 50 payment = 20 remaining
	updated, err := f.svc.RecordPayment(context.Background(), &RecordPaymentInput{
		OrderID: order.ID,
		Amount:  50,
		Mode:    enum.PaymentModePartial,
	})
	if err != nil {
		t.Fatalf("RecordPayment failed: %v", err)
	}
	if updated.RemainingAmount == nil || *updated.RemainingAmount != 2000 {
		t.Fatalf("RemainingAmount = %v, want 2000 cents", updated.RemainingAmount)
	}
	if updated.PaymentStatus != enum.PaymentStatusPartial {
		t.Errorf("PaymentStatus = %v, want Partial", updated.PaymentStatus)
	}

	// Second settlement overpays; remaining clamps to zero and status flips to paid
	updated, err = f.svc.RecordPayment(context.Background(), &RecordPaymentInput{
		OrderID: order.ID,
		Amount:  25,
		Mode:    enum.PaymentModePartial,
	})
	if err != nil {
		t.Fatalf("RecordPayment failed: %v", err)
	}
	if updated.RemainingAmount == nil || *updated.RemainingAmount != 0 {
		t.Fatalf("RemainingAmount = %v, want 0", updated.RemainingAmount)
	}
	if updated.PaymentStatus != enum.PaymentStatusPaid {
		t.Errorf("PaymentStatus = %v, want Paid", updated.PaymentStatus)
	}

	if len(f.payments.payments) != 3 {
		t.Errorf("expected 3 payment records (advance + 2 settlements), got %d", len(f.payments.payments))
	}
}

func TestRecordPaymentGuards(t *testing.T) {
	f := newOrderServiceFixture(t)
	order := f.createOrder(t, &CreateOrderInput{OrderType: "Kurta", Price: 50})

	if _, err := f.svc.RecordPayment(context.Background(), &RecordPaymentInput{
		OrderID: order.ID,
		Amount:  0,
	}); err == nil {
		t.Error("expected error for non-positive amount")
	}

	if err := f.svc.CancelOrder(context.Background(), order.ID); err != nil {
		t.Fatalf("CancelOrder failed: %v", err)
	}
	if _, err := f.svc.RecordPayment(context.Background(), &RecordPaymentInput{
		OrderID: order.ID,
		Amount:  10,
	}); err == nil {
		t.Error("expected error for payment on a cancelled order")
	}
}

func TestOrderStatusGuards(t *testing.T) {
	f := newOrderServiceFixture(t)
	order := f.createOrder(t, &CreateOrderInput{OrderType: "Kurta", Price: 50})

	if err := f.svc.UpdateOrderStatus(context.Background(), order.ID, enum.OrderStatusInProgress); err != nil {
		t.Fatalf("UpdateOrderStatus failed: %v", err)
	}

	if err := f.svc.CancelOrder(context.Background(), order.ID); err != nil {
		t.Fatalf("CancelOrder failed: %v", err)
	}
	if err := f.svc.CancelOrder(context.Background(), order.ID); err == nil {
		t.Error("expected error cancelling an already cancelled order")
	}
	if err := f.svc.UpdateOrderStatus(context.Background(), order.ID, enum.OrderStatusReady); err == nil {
		t.Error("expected error changing status of a cancelled order")
	}

	delivered := f.createOrder(t, &CreateOrderInput{OrderType: "Blouse", Price: 20})
	if err := f.svc.UpdateOrderStatus(context.Background(), delivered.ID, enum.OrderStatusDelivered); err != nil {
		t.Fatalf("UpdateOrderStatus failed: %v", err)
	}
	if err := f.svc.CancelOrder(context.Background(), delivered.ID); err == nil {
		t.Error("expected error cancelling a delivered order")
	}
}

func TestListOrdersPagination(t *testing.T) {
	f := newOrderServiceFixture(t)
	for i := 0; i < 3; i++ {
		f.createOrder(t, &CreateOrderInput{OrderType: "Kurta", Price: 10})
	}

	result, err := f.svc.ListOrders(context.Background(), &repository.OrderFilterParams{
		Pagination: &pagination.PaginationParams{Page: 1, PerPage: 15},
	})
	if err != nil {
		t.Fatalf("ListOrders failed: %v", err)
	}
	if len(result.Items) != 3 {
		t.Errorf("len(Items) = %d, want 3", len(result.Items))
	}
	if result.Pagination.Total != 3 {
		t.Errorf("Total = %d, want 3", result.Pagination.Total)
	}
}

func TestExportFileName(t *testing.T) {
	now := time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)
	if got := ExportFileName(now); got != "orders-2025-03-14.xlsx" {
		t.Errorf("ExportFileName = %q", got)
	}
}
