package tests

import (
	"context"
	"sync"

	"smartqr-ordering/ordering-svc/internal/domain"

	"github.com/shopspring/decimal"
)

// fakeBackend serves a fixed restaurant and records what it was asked.
type fakeBackend struct {
	mu sync.Mutex

	menu    []domain.MenuItem
	menuErr error

	tokens   map[string]string
	tokenErr error

	total      decimal.Decimal
	totalErr   error
	totalCalls int
	totalTable []string

	submitGate  chan struct{}
	submitErr   error
	submitted   []domain.OrderPayload
	orderNumber string
}

func newFakeBackend(menu ...domain.MenuItem) *fakeBackend {
	return &fakeBackend{
		menu:        menu,
		tokens:      map[string]string{},
		orderNumber: "A-1",
	}
}

func (f *fakeBackend) FetchMenu(_ context.Context, _ string) ([]domain.MenuItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.menuErr != nil {
		return nil, f.menuErr
	}
	return append([]domain.MenuItem(nil), f.menu...), nil
}

func (f *fakeBackend) ResolveTableToken(_ context.Context, _ string, token string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.tokenErr != nil {
		return "", f.tokenErr
	}
	return f.tokens[token], nil
}

func (f *fakeBackend) CurrentTotal(_ context.Context, _ string, table string) (decimal.Decimal, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.totalCalls++
	f.totalTable = append(f.totalTable, table)
	if f.totalErr != nil {
		return decimal.Zero, f.totalErr
	}
	return f.total, nil
}

func (f *fakeBackend) SubmitOrder(ctx context.Context, _ string, payload domain.OrderPayload) (*domain.OrderConfirmation, error) {
	f.mu.Lock()
	gate := f.submitGate
	f.mu.Unlock()
	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitted = append(f.submitted, payload)
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	return &domain.OrderConfirmation{OrderNumber: f.orderNumber}, nil
}

func (f *fakeBackend) setTotal(total string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.total = decimal.RequireFromString(total)
	f.totalErr = nil
}

func (f *fakeBackend) failTotals(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.totalErr = err
}

func (f *fakeBackend) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.totalCalls
}

func (f *fakeBackend) submissions() []domain.OrderPayload {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.OrderPayload(nil), f.submitted...)
}

func menuItem(id int, name, price string) domain.MenuItem {
	return domain.MenuItem{
		ID:        id,
		Name:      name,
		Price:     decimal.RequireFromString(price),
		Available: true,
	}
}

func (f *fakeBackend) tables() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.totalTable...)
}
