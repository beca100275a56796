package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"smartqr-ordering/ordering-svc/internal/backend"
	"smartqr-ordering/ordering-svc/internal/domain"

	"github.com/shopspring/decimal"
)

type DeskView struct {
	Slug         string           `json:"slug"`
	TableNumber  string           `json:"table_number"`
	Orders       []domain.Order   `json:"orders"`
	ActiveOrders int              `json:"active_orders"`
	Total        *decimal.Decimal `json:"total,omitempty"`
	OrdersError  string           `json:"orders_error,omitempty"`
	PollError    string           `json:"poll_error,omitempty"`
}

// Desk is the staff view of one restaurant. While a table is selected its
// orders and current total are polled in the background.
type Desk struct {
	backend  StaffBackend
	slug     string
	interval time.Duration
	parent   context.Context

	// selecting serializes Select, Deselect and Close.
	selecting sync.Mutex
	closed    bool

	mu         sync.RWMutex
	table      string
	orders     []domain.Order
	ordersErr  error
	reconciler *TotalReconciler
	cancel     context.CancelFunc
	wg         sync.WaitGroup
	lastUsed   time.Time
}

func NewDesk(parent context.Context, staff StaffBackend, slug string, interval time.Duration) *Desk {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Desk{
		backend:  staff,
		slug:     slug,
		interval: interval,
		parent:   parent,
		lastUsed: time.Now(),
	}
}

// Select switches the desk to table, loading its orders before returning.
// Selecting the current table again is a no-op.
func (d *Desk) Select(ctx context.Context, table string) error {
	table = strings.TrimSpace(table)
	if table == "" {
		return ErrNoTableSelected
	}

	d.selecting.Lock()
	defer d.selecting.Unlock()

	if d.closed {
		return ErrDeskClosed
	}
	if d.Selected() == table {
		return nil
	}
	d.deselect()

	runCtx, cancel := context.WithCancel(d.parent)
	reconciler := NewTotalReconciler(d.backend, d.slug, table, d.interval)

	d.mu.Lock()
	d.table = table
	d.cancel = cancel
	d.reconciler = reconciler
	d.mu.Unlock()

	reconciler.Start(runCtx)
	err := d.loadOrders(ctx, runCtx, table)

	d.wg.Add(1)
	go d.pollOrders(runCtx, table)

	return err
}

func (d *Desk) Selected() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.table
}

// Deselect stops polling and forgets the selected table.
func (d *Desk) Deselect() {
	d.selecting.Lock()
	defer d.selecting.Unlock()
	d.deselect()
}

// Close deselects and keeps the desk from polling again.
func (d *Desk) Close() {
	d.selecting.Lock()
	defer d.selecting.Unlock()
	d.closed = true
	d.deselect()
}

func (d *Desk) touch() {
	d.mu.Lock()
	d.lastUsed = time.Now()
	d.mu.Unlock()
}

func (d *Desk) idleSince() time.Time {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.lastUsed
}

func (d *Desk) deselect() {
	d.mu.Lock()
	cancel := d.cancel
	reconciler := d.reconciler
	d.cancel = nil
	d.reconciler = nil
	d.table = ""
	d.orders = nil
	d.ordersErr = nil
	d.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if reconciler != nil {
		reconciler.Stop()
	}
	d.wg.Wait()
}

func (d *Desk) Orders() []domain.Order {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]domain.Order(nil), d.orders...)
}

func (d *Desk) Total() (decimal.Decimal, bool) {
	d.mu.RLock()
	reconciler := d.reconciler
	d.mu.RUnlock()
	if reconciler == nil {
		return decimal.Zero, false
	}
	return reconciler.Total()
}

func (d *Desk) SetStatus(ctx context.Context, orderID int, status string) error {
	if !domain.ValidOrderStatus(status) {
		return fmt.Errorf("%w: order status %q", ErrInvalidStatus, status)
	}
	if err := d.backend.UpdateOrderStatus(ctx, d.slug, orderID, status); err != nil {
		return err
	}
	d.Reload(ctx)
	return nil
}

func (d *Desk) SetPayment(ctx context.Context, orderID int, status, method string) error {
	if !domain.ValidPaymentStatus(status) {
		return fmt.Errorf("%w: payment status %q", ErrInvalidStatus, status)
	}
	if err := d.backend.UpdatePaymentStatus(ctx, d.slug, orderID, status, method); err != nil {
		return err
	}
	d.Reload(ctx)
	return nil
}

// MarkPaid frees the selected table on the backend.
func (d *Desk) MarkPaid(ctx context.Context) error {
	table := d.Selected()
	if table == "" {
		return ErrNoTableSelected
	}
	if err := d.backend.FreeTable(ctx, d.slug, table); err != nil {
		return err
	}
	log.Printf("[desk] table %s of %s marked paid", table, d.slug)
	d.Reload(ctx)
	return nil
}

// Reload refreshes orders and total of the selected table right away.
func (d *Desk) Reload(ctx context.Context) {
	d.mu.RLock()
	table := d.table
	reconciler := d.reconciler
	d.mu.RUnlock()
	if table == "" {
		return
	}

	_ = d.loadOrders(ctx, ctx, table)
	if reconciler != nil {
		_ = reconciler.Refresh(ctx)
	}
}

func (d *Desk) View() DeskView {
	d.mu.RLock()
	view := DeskView{
		Slug:        d.slug,
		TableNumber: d.table,
		Orders:      append([]domain.Order(nil), d.orders...),
	}
	if d.ordersErr != nil {
		view.OrdersError = userMessage(d.ordersErr)
	}
	reconciler := d.reconciler
	d.mu.RUnlock()

	for _, order := range view.Orders {
		if order.Active() {
			view.ActiveOrders++
		}
	}
	if reconciler != nil {
		if total, known := reconciler.Total(); known {
			view.Total = &total
		}
		if err := reconciler.Err(); err != nil {
			view.PollError = userMessage(err)
		}
	}
	return view
}

func (d *Desk) pollOrders(ctx context.Context, table string) {
	defer d.wg.Done()

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_ = d.loadOrders(ctx, ctx, table)
		}
	}
}

// loadOrders fetches with ctx and stores the result only if table is still
// selected and gen has not been cancelled.
func (d *Desk) loadOrders(ctx, gen context.Context, table string) error {
	orders, err := d.backend.ListOrders(ctx, d.slug, table)

	d.mu.Lock()
	defer d.mu.Unlock()
	if gen.Err() != nil || d.table != table {
		return nil
	}
	if err != nil {
		d.ordersErr = err
		log.Printf("[desk] WARNING: orders for %s table %s not refreshed: %v", d.slug, table, err)
		return err
	}
	d.orders = orders
	d.ordersErr = nil
	return nil
}

type deskKey struct {
	slug  string
	token string
}

// DeskService keeps one Desk per restaurant and staff token, so staff
// members browsing different tables do not switch each other's selection.
// Each desk polls with the token of the staff member who opened it.
type DeskService struct {
	ctx      context.Context
	backend  StaffBackend
	interval time.Duration

	mu    sync.Mutex
	desks map[deskKey]*Desk
}

func NewDeskService(ctx context.Context, staff StaffBackend, interval time.Duration) *DeskService {
	return &DeskService{
		ctx:      ctx,
		backend:  staff,
		interval: interval,
		desks:    make(map[deskKey]*Desk),
	}
}

// Desk returns the desk of slug for the staff token carried by ctx.
func (s *DeskService) Desk(ctx context.Context, slug string) *Desk {
	token := backend.StaffToken(ctx)
	key := deskKey{slug: slug, token: token}

	s.mu.Lock()
	defer s.mu.Unlock()

	desk, ok := s.desks[key]
	if !ok {
		desk = NewDesk(backend.WithStaffToken(s.ctx, token), s.backend, slug, s.interval)
		s.desks[key] = desk
	}
	desk.touch()
	return desk
}

func (s *DeskService) Tables(ctx context.Context, slug string) ([]domain.TableRow, error) {
	if strings.TrimSpace(slug) == "" {
		return nil, ErrMissingRestaurant
	}
	return s.backend.ListTables(ctx, slug)
}

func (s *DeskService) TableView(ctx context.Context, slug, table string) (*DeskView, error) {
	if strings.TrimSpace(slug) == "" {
		return nil, ErrMissingRestaurant
	}
	desk, err := s.selectTable(ctx, slug, table)
	if err != nil {
		return nil, err
	}
	view := desk.View()
	return &view, nil
}

func (s *DeskService) SetStatus(ctx context.Context, slug string, orderID int, status string) error {
	return s.Desk(ctx, slug).SetStatus(ctx, orderID, status)
}

func (s *DeskService) SetPayment(ctx context.Context, slug string, orderID int, status, method string) error {
	return s.Desk(ctx, slug).SetPayment(ctx, orderID, status, method)
}

func (s *DeskService) FreeTable(ctx context.Context, slug, table string) error {
	desk, err := s.selectTable(ctx, slug, table)
	if err != nil {
		return err
	}
	return desk.MarkPaid(ctx)
}

// selectTable selects table on the caller's desk. A failed orders fetch is
// reported through the view and is not an error here.
func (s *DeskService) selectTable(ctx context.Context, slug, table string) (*Desk, error) {
	desk := s.Desk(ctx, slug)
	err := desk.Select(ctx, table)
	if errors.Is(err, ErrDeskClosed) {
		// Closed by the janitor between lookup and select.
		desk = s.Desk(ctx, slug)
		err = desk.Select(ctx, table)
	}
	if errors.Is(err, ErrNoTableSelected) || errors.Is(err, ErrDeskClosed) {
		return nil, err
	}
	return desk, nil
}

// CloseIdle closes desks nobody looked at for maxIdle and returns how many
// were closed.
func (s *DeskService) CloseIdle(maxIdle time.Duration) int {
	cutoff := time.Now().Add(-maxIdle)

	s.mu.Lock()
	var idle []*Desk
	for key, desk := range s.desks {
		if desk.idleSince().Before(cutoff) {
			idle = append(idle, desk)
			delete(s.desks, key)
		}
	}
	s.mu.Unlock()

	for _, desk := range idle {
		desk.Close()
	}
	return len(idle)
}

// RunJanitor closes idle desks every interval until ctx is done.
func (s *DeskService) RunJanitor(ctx context.Context, interval, maxIdle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if closed := s.CloseIdle(maxIdle); closed > 0 {
				log.Printf("[desk] closed %d idle desks", closed)
			}
		}
	}
}

func (s *DeskService) StopAll() {
	s.mu.Lock()
	desks := s.desks
	s.desks = make(map[deskKey]*Desk)
	s.mu.Unlock()

	for _, desk := range desks {
		desk.Close()
	}
}
