package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"smartqr-ordering/ordering-svc/internal/domain"

	"github.com/shopspring/decimal"
)

const OrderSubmittedEvent = "order_submitted"

type SessionSettings struct {
	PollInterval    time.Duration
	PostSubmitDelay time.Duration
}

type SessionDeps struct {
	Backend   OrderingBackend
	Persister CartPersister
	Publisher OrderPublisher
}

type SessionView struct {
	SessionID   string              `json:"session_id"`
	Slug        string              `json:"slug"`
	TableNumber string              `json:"table_number,omitempty"`
	TableToken  string              `json:"table_token,omitempty"`
	Menu        []domain.MenuItem   `json:"menu"`
	Lines       []domain.CartLine   `json:"lines"`
	ItemCount   int                 `json:"item_count"`
	Subtotal    decimal.Decimal     `json:"subtotal"`
	TableTotal  *decimal.Decimal    `json:"table_total,omitempty"`
	AmountDue   decimal.Decimal     `json:"amount_due"`
	Customer    domain.CustomerInfo `json:"customer"`
	MenuError   string              `json:"menu_error,omitempty"`
	TokenError  string              `json:"token_error,omitempty"`
	Checkout    CheckoutStatus      `json:"checkout"`
}

// Session is one mounted customer view of a table: its menu, its cart and
// the reconciled table total.
type Session struct {
	id       string
	slug     string
	identity domain.TableIdentity
	deps     SessionDeps
	settings SessionSettings

	lifetime context.Context
	cancel   context.CancelFunc

	mu          sync.Mutex
	menu        []domain.MenuItem
	menuErr     error
	tableNumber string
	tokenErr    error
	cart        *CartStore
	customer    domain.CustomerInfo
	reconciler  *TotalReconciler
	lastSeen    time.Time

	checkout *Checkout
}

func NewSession(parent context.Context, id, slug string, identity domain.TableIdentity, deps SessionDeps, settings SessionSettings) *Session {
	if settings.PostSubmitDelay <= 0 {
		settings.PostSubmitDelay = DefaultPostSubmitDelay
	}
	lifetime, cancel := context.WithCancel(parent)
	return &Session{
		id:       id,
		slug:     slug,
		identity: identity,
		deps:     deps,
		settings: settings,
		lifetime: lifetime,
		cancel:   cancel,
		checkout: NewCheckout(),
		lastSeen: time.Now(),
	}
}

func (s *Session) ID() string {
	return s.id
}

// Mount opens the persisted cart, resolves the table token and starts
// reconciling the table total, then loads the menu. A menu failure is
// returned but leaves the session usable so ReloadMenu can retry.
func (s *Session) Mount(ctx context.Context) error {
	s.mu.Lock()
	s.cart = OpenCartStore(ctx, s.deps.Persister, CartKey(s.slug, s.identity))

	s.tableNumber = s.identity.Number
	if s.identity.Token != "" {
		number, err := s.deps.Backend.ResolveTableToken(ctx, s.slug, s.identity.Token)
		if err != nil {
			s.tokenErr = fmt.Errorf("%w: %w", ErrTokenResolutionFailed, err)
			log.Printf("[ordering-svc] WARNING: token for %s not resolved, using table %q: %v", s.slug, s.identity.Number, err)
		} else {
			s.tableNumber = number
		}
	}

	if s.tableNumber != "" {
		s.reconciler = NewTotalReconciler(s.deps.Backend, s.slug, s.tableNumber, s.settings.PollInterval)
		s.reconciler.Start(s.lifetime)
	}
	s.mu.Unlock()

	return s.ReloadMenu(ctx)
}

// ReloadMenu replaces the menu wholesale. On failure the previous menu is
// kept and the error is reported in the view.
func (s *Session) ReloadMenu(ctx context.Context) error {
	items, err := s.deps.Backend.FetchMenu(ctx, s.slug)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if err != nil {
		s.menuErr = fmt.Errorf("%w: %w", ErrMenuLoadFailed, err)
		log.Printf("[ordering-svc] ERROR: menu for %s not loaded: %v", s.slug, err)
		return s.menuErr
	}
	s.menu = items
	s.menuErr = nil
	return nil
}

func (s *Session) Add(ctx context.Context, itemID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	item, ok := s.lookup(itemID)
	if !ok || !item.Available {
		return fmt.Errorf("%w: %d", ErrItemUnavailable, itemID)
	}
	s.cart.Add(ctx, itemID)
	s.checkout.Acknowledge()
	return nil
}

// Decrement and Remove accept ids the menu no longer lists so stale entries
// can still be taken out of the cart.
func (s *Session) Decrement(ctx context.Context, itemID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	s.cart.Decrement(ctx, itemID)
	s.checkout.Acknowledge()
}

func (s *Session) Remove(ctx context.Context, itemID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	s.cart.Remove(ctx, itemID)
	s.checkout.Acknowledge()
}

func (s *Session) SetCustomer(info domain.CustomerInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	s.customer = info
}

func (s *Session) Acknowledge() {
	s.mu.Lock()
	s.touch()
	s.mu.Unlock()
	s.checkout.Acknowledge()
}

// Submit sends the current cart as one order. Nothing is retried. Only after
// the backend accepted the order are the submitted quantities taken out of
// the cart and the customer details cleared.
func (s *Session) Submit(ctx context.Context) (*domain.OrderConfirmation, error) {
	if err := s.checkout.Begin(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.touch()
	table := s.tableNumber
	menu := s.menu
	lines := s.cart.Snapshot(menu)
	customer := s.customer
	s.mu.Unlock()

	if table == "" {
		s.checkout.Abort()
		return nil, ErrMissingTableIdentity
	}
	if len(lines) == 0 {
		s.checkout.Abort()
		return nil, ErrEmptyCart
	}

	payload := BuildOrderPayload(table, s.identity.Token, lines, customer)
	confirmation, err := s.deps.Backend.SubmitOrder(ctx, s.slug, payload)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrSubmissionFailed, err)
		s.checkout.Fail(err)
		log.Printf("[ordering-svc] ERROR: order for %s table %s failed: %v", s.slug, table, err)
		return nil, err
	}

	confirmation.Subtotal = SumLines(lines)
	confirmation.PlacedAt = time.Now()

	// The order exists now; a client that went away must not leave the cart
	// behind to be sent twice.
	persistCtx := context.WithoutCancel(ctx)

	s.mu.Lock()
	s.cart.Settle(persistCtx, lines, menu)
	s.customer = domain.CustomerInfo{}
	reconciler := s.reconciler
	s.mu.Unlock()

	s.checkout.Succeed(confirmation)
	log.Printf("[ordering-svc] order %s placed for %s table %s", confirmation.OrderNumber, s.slug, table)

	if reconciler != nil {
		reconciler.RefreshAfter(s.settings.PostSubmitDelay)
	}
	s.publish(persistCtx, table, lines, confirmation)

	return confirmation, nil
}

func (s *Session) publish(ctx context.Context, table string, lines []domain.CartLine, confirmation *domain.OrderConfirmation) {
	if s.deps.Publisher == nil {
		return
	}
	count := 0
	for _, line := range lines {
		count += line.Quantity
	}
	event := domain.OrderEvent{
		Type:        OrderSubmittedEvent,
		Restaurant:  s.slug,
		TableNumber: table,
		OrderNumber: confirmation.OrderNumber,
		ItemCount:   count,
		Subtotal:    confirmation.Subtotal,
		Timestamp:   confirmation.PlacedAt,
	}
	if err := s.deps.Publisher.PublishOrder(ctx, event); err != nil {
		log.Printf("[ordering-svc] WARNING: order event for %s not published: %v", confirmation.OrderNumber, err)
	}
}

// Unmount stops all background work for the session.
func (s *Session) Unmount() {
	s.cancel()

	s.mu.Lock()
	reconciler := s.reconciler
	s.mu.Unlock()

	if reconciler != nil {
		reconciler.Stop()
	}
}

func (s *Session) View() SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()

	view := SessionView{
		SessionID:   s.id,
		Slug:        s.slug,
		TableNumber: s.tableNumber,
		TableToken:  s.identity.Token,
		Menu:        make([]domain.MenuItem, 0, len(s.menu)),
		Customer:    s.customer,
		Checkout:    s.checkout.Status(),
	}
	for _, item := range s.menu {
		if item.Available {
			view.Menu = append(view.Menu, item)
		}
	}

	if s.cart != nil {
		view.Lines = s.cart.Snapshot(s.menu)
	}
	for _, line := range view.Lines {
		view.ItemCount += line.Quantity
	}
	view.Subtotal = SumLines(view.Lines)
	view.AmountDue = view.Subtotal

	if s.reconciler != nil {
		if total, known := s.reconciler.Total(); known {
			view.TableTotal = &total
			view.AmountDue = total.Add(view.Subtotal)
		}
	}
	if s.menuErr != nil {
		view.MenuError = userMessage(s.menuErr)
	}
	if s.tokenErr != nil {
		view.TokenError = userMessage(s.tokenErr)
	}
	return view
}

// AmountDue is the server total plus the current cart, computed from one
// consistent read of both.
func (s *Session) AmountDue() decimal.Decimal {
	return s.View().AmountDue
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// lookup and touch must be called with s.mu held.
func (s *Session) lookup(itemID int) (domain.MenuItem, bool) {
	for _, item := range s.menu {
		if item.ID == itemID {
			return item, true
		}
	}
	return domain.MenuItem{}, false
}

func (s *Session) touch() {
	s.lastSeen = time.Now()
}

// BuildOrderPayload turns a cart snapshot into the backend order body.
// Customer fields that are blank after trimming are sent as null.
func BuildOrderPayload(table, token string, lines []domain.CartLine, customer domain.CustomerInfo) domain.OrderPayload {
	items := make([]domain.OrderLine, 0, len(lines))
	for _, line := range lines {
		items = append(items, domain.OrderLine{MenuItemID: line.Item.ID, Quantity: line.Quantity})
	}
	return domain.OrderPayload{
		TableNumber:   table,
		TableToken:    token,
		Items:         items,
		CustomerName:  optional(customer.Name),
		CustomerPhone: optional(customer.Phone),
		CustomerNotes: optional(customer.Notes),
	}
}

func optional(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
