// Package lifecycle names the states an order passes through and enforces
// their order. The steps used to be implicit in the sequence of endpoints a
// well-behaved client was expected to call; here each step is an explicit
// transition that refuses to run out of turn.
package lifecycle

import (
	"errors"
	"fmt"
)

type State string

const (
	// StateReceived is the zero state before any document arrives.
	StateReceived State = "received"
	// StateUploaded: document stored, page count known.
	StateUploaded State = "uploaded"
	// StatePriceQuoted: the client computed a price from the page count.
	// Pricing itself lives outside this service.
	StatePriceQuoted State = "price_quoted"
	// StateOrderCreated: the gateway acknowledged a payment order.
	StateOrderCreated State = "order_created"
	// StateRecordPersisted: the order record is stored.
	StateRecordPersisted State = "record_persisted"
	// StatePaymentVerified: the gateway reported the payment as captured.
	// Terminal.
	StatePaymentVerified State = "payment_verified"
)

var ErrInvalidTransition = errors.New("invalid lifecycle transition")

var next = map[State]State{
	StateReceived:        StateUploaded,
	StateUploaded:        StatePriceQuoted,
	StatePriceQuoted:     StateOrderCreated,
	StateOrderCreated:    StateRecordPersisted,
	StateRecordPersisted: StatePaymentVerified,
}

// Next returns the successor of s, or false if s is terminal or unknown.
func Next(s State) (State, bool) {
	n, ok := next[s]
	return n, ok
}

// Flow tracks one order's progress. A failed step leaves the flow in that
// step's state; there is no rollback, matching the no-compensation policy of
// the endpoints.
type Flow struct {
	state State
}

func NewFlow() *Flow {
	return &Flow{state: StateReceived}
}

// Resume returns a flow positioned at s, for steps that pick up a
// client-driven sequence mid-way (each HTTP request starts a fresh flow at
// its step's precondition).
func Resume(s State) *Flow {
	return &Flow{state: s}
}

func (f *Flow) State() State {
	return f.state
}

// Advance moves the flow to target, which must be the direct successor of
// the current state.
func (f *Flow) Advance(target State) error {
	n, ok := next[f.state]
	if !ok || n != target {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, f.state, target)
	}
	f.state = target
	return nil
}
