package service

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"printflow/internal/lifecycle"
	"printflow/internal/models"
	"printflow/internal/repository"
	"printflow/pkg/pdfmeta"
	"printflow/pkg/razorpay"
	"printflow/pkg/storage"
)

// OrderService runs each step of the order lifecycle: document intake,
// payment order creation, record persistence, and payment verification.
// Every step advances the caller's lifecycle.Flow before doing any work, so
// out-of-order calls fail without touching storage or the gateway.
type OrderService struct {
	store   storage.BlobStore
	gateway razorpay.Gateway
	orders  *repository.PrintOrderRepository

	// PageCount is swappable so tests can count pages without real PDFs.
	PageCount func([]byte) int
}

func NewOrderService(store storage.BlobStore, gateway razorpay.Gateway, orders *repository.PrintOrderRepository) *OrderService {
	return &OrderService{
		store:     store,
		gateway:   gateway,
		orders:    orders,
		PageCount: pdfmeta.PageCount,
	}
}

type IntakeResult struct {
	PageCount int
	FilePath  string
}

// Intake validates and stores an uploaded document and reports its page
// count. The suffix check is case-sensitive, as the original frontend
// expects; documents that store fine but fail to parse come back with a page
// count of zero rather than an error.
func (s *OrderService) Intake(ctx context.Context, flow *lifecycle.Flow, data []byte, originalName string) (*IntakeResult, error) {
	if err := flow.Advance(lifecycle.StateUploaded); err != nil {
		return nil, err
	}
	if len(data) == 0 || !strings.HasSuffix(originalName, ".pdf") {
		return nil, ErrInvalidDocument
	}
	ref, err := s.store.Save(ctx, bytes.NewReader(data), originalName)
	if err != nil {
		return nil, fmt.Errorf("store document: %w", err)
	}
	return &IntakeResult{
		PageCount: s.PageCount(data),
		FilePath:  ref,
	}, nil
}

// CreatePaymentOrder asks the gateway to reserve the amount (rupees) and
// returns the gateway's order ID. The receipt token exists only for gateway
// bookkeeping and is not persisted here.
func (s *OrderService) CreatePaymentOrder(ctx context.Context, flow *lifecycle.Flow, amount float64) (string, error) {
	if amount <= 0 {
		return "", ErrInvalidAmount
	}
	if err := flow.Advance(lifecycle.StateOrderCreated); err != nil {
		return "", err
	}
	paise := int64(math.Round(amount * 100))
	receipt := fmt.Sprintf("receipt_%d", time.Now().UnixMilli())
	order, err := s.gateway.CreateOrder(ctx, paise, "INR", receipt)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGateway, err)
	}
	return order.ID, nil
}

// CreateOrderInput carries the six required order fields. TotalPrice is a
// pointer so an absent field is distinguishable from an explicit zero.
type CreateOrderInput struct {
	Name       string
	FilePath   string
	PrintColor string
	Copies     int
	TotalPrice *float64
	OrderID    string
}

func (in *CreateOrderInput) validate() error {
	var missing []string
	if in.Name == "" {
		missing = append(missing, "name")
	}
	if in.FilePath == "" {
		missing = append(missing, "filePath")
	}
	if in.PrintColor == "" {
		missing = append(missing, "printColor")
	}
	if in.Copies < 1 {
		missing = append(missing, "copies")
	}
	if in.TotalPrice == nil || *in.TotalPrice < 0 {
		missing = append(missing, "totalPrice")
	}
	if in.OrderID == "" {
		missing = append(missing, "orderId")
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}

// CreateOrderDetails validates the input and performs exactly one insert.
// Nothing is written when validation fails.
func (s *OrderService) CreateOrderDetails(ctx context.Context, flow *lifecycle.Flow, in CreateOrderInput) (*models.PrintOrder, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	if err := flow.Advance(lifecycle.StateRecordPersisted); err != nil {
		return nil, err
	}
	order := &models.PrintOrder{
		Name:       in.Name,
		FilePath:   in.FilePath,
		PrintColor: in.PrintColor,
		Copies:     in.Copies,
		TotalPrice: *in.TotalPrice,
		OrderID:    in.OrderID,
	}
	if err := s.orders.Create(order); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return order, nil
}

// VerifyPayment reports whether the gateway captured the payment. A
// non-captured status is a negative answer, not an error; a failed gateway
// query is an error, because verification never happened at all. Nothing is
// written back to the order record either way.
func (s *OrderService) VerifyPayment(ctx context.Context, flow *lifecycle.Flow, paymentID string) (bool, error) {
	if err := flow.Advance(lifecycle.StatePaymentVerified); err != nil {
		return false, err
	}
	payment, err := s.gateway.FetchPayment(ctx, paymentID)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrGateway, err)
	}
	return payment.Status == razorpay.StatusCaptured, nil
}
