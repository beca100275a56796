package service

import (
	"sync"

	"smartqr-ordering/ordering-svc/internal/backend"
	"smartqr-ordering/ordering-svc/internal/domain"
)

type SubmissionState string

const (
	SubmissionIdle       SubmissionState = "idle"
	SubmissionSubmitting SubmissionState = "submitting"
	SubmissionSucceeded  SubmissionState = "succeeded"
	SubmissionFailed     SubmissionState = "failed"
)

type CheckoutStatus struct {
	State        SubmissionState           `json:"state"`
	Confirmation *domain.OrderConfirmation `json:"confirmation,omitempty"`
	Error        string                    `json:"error,omitempty"`
}

// Checkout tracks one submission at a time:
// idle -> submitting -> succeeded | failed -> idle.
type Checkout struct {
	mu           sync.Mutex
	state        SubmissionState
	confirmation *domain.OrderConfirmation
	err          error
}

func NewCheckout() *Checkout {
	return &Checkout{state: SubmissionIdle}
}

// Begin moves to submitting. A finished outcome that was never acknowledged
// is dropped.
func (c *Checkout) Begin() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == SubmissionSubmitting {
		return ErrSubmitInProgress
	}
	c.state = SubmissionSubmitting
	c.confirmation = nil
	c.err = nil
	return nil
}

// Abort returns to idle when a submission was refused before any request
// went out.
func (c *Checkout) Abort() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == SubmissionSubmitting {
		c.state = SubmissionIdle
	}
}

func (c *Checkout) Succeed(confirmation *domain.OrderConfirmation) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = SubmissionSucceeded
	c.confirmation = confirmation
	c.err = nil
}

func (c *Checkout) Fail(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = SubmissionFailed
	c.confirmation = nil
	c.err = err
}

// Acknowledge returns a finished checkout to idle. It never interrupts a
// submission in flight.
func (c *Checkout) Acknowledge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == SubmissionSubmitting {
		return
	}
	c.state = SubmissionIdle
	c.confirmation = nil
	c.err = nil
}

func (c *Checkout) State() SubmissionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Checkout) Status() CheckoutStatus {
	c.mu.Lock()
	defer c.mu.Unlock()

	status := CheckoutStatus{State: c.state, Confirmation: c.confirmation}
	if c.err != nil {
		status.Error = userMessage(c.err)
	}
	return status
}

// userMessage prefers the text the backend sent over the wrapped chain.
func userMessage(err error) string {
	if msg := backend.Message(err); msg != "" {
		return msg
	}
	return err.Error()
}
