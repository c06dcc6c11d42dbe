package service

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidDocument: the upload is missing or not a .pdf.
	ErrInvalidDocument = errors.New("only PDF files are allowed")
	// ErrInvalidAmount: a payment order was requested for a non-positive amount.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrGateway: Razorpay was unreachable or rejected the call. Distinct from
	// a payment that simply was not captured.
	ErrGateway = errors.New("payment gateway error")
	// ErrPersistence: the order record could not be written.
	ErrPersistence = errors.New("persistence error")
)

// ValidationError lists the required order fields a request left out.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Missing, ", "))
}
