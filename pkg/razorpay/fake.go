package razorpay

import (
	"context"
	"fmt"
	"sync"
)

// Fake is an in-memory Gateway for tests. It records every created order and
// serves payment statuses seeded through SetPaymentStatus.
type Fake struct {
	mu        sync.Mutex
	seq       int
	Orders    []*Order
	payments  map[string]*Payment
	CreateErr error
	FetchErr  error
}

func NewFake() *Fake {
	return &Fake{payments: make(map[string]*Payment)}
}

func (f *Fake) CreateOrder(ctx context.Context, amountPaise int64, currency, receipt string) (*Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.CreateErr != nil {
		return nil, f.CreateErr
	}
	f.seq++
	o := &Order{
		ID:       fmt.Sprintf("order_fake%03d", f.seq),
		Amount:   amountPaise,
		Currency: currency,
		Receipt:  receipt,
		Status:   "created",
	}
	f.Orders = append(f.Orders, o)
	return o, nil
}

func (f *Fake) FetchPayment(ctx context.Context, paymentID string) (*Payment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.FetchErr != nil {
		return nil, f.FetchErr
	}
	p, ok := f.payments[paymentID]
	if !ok {
		return nil, fmt.Errorf("payment %s not found", paymentID)
	}
	cp := *p
	return &cp, nil
}

func (f *Fake) SetPaymentStatus(paymentID, status string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.payments[paymentID] = &Payment{
		ID:       paymentID,
		Status:   status,
		Captured: status == StatusCaptured,
	}
}
