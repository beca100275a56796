package tests

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"smartqr-ordering/ordering-svc/internal/backend"
	"smartqr-ordering/ordering-svc/internal/domain"
	"smartqr-ordering/ordering-svc/internal/mocks"
	"smartqr-ordering/ordering-svc/internal/service"
	"smartqr-ordering/ordering-svc/internal/storage"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func mountSession(t *testing.T, fake *fakeBackend, identity domain.TableIdentity, deps service.SessionDeps) *service.Session {
	t.Helper()
	deps.Backend = fake
	if deps.Persister == nil {
		deps.Persister = storage.NewMemoryCartStore()
	}
	session := service.NewSession(context.Background(), "s1", "cafe", identity, deps, service.SessionSettings{
		PollInterval:    time.Hour,
		PostSubmitDelay: 10 * time.Millisecond,
	})
	t.Cleanup(session.Unmount)
	_ = session.Mount(context.Background())
	return session
}

func pizzaBackend() *fakeBackend {
	fake := newFakeBackend(menuItem(1, "Pizza", "9.50"), menuItem(2, "Soda", "2.25"))
	fake.setTotal("42.00")
	return fake
}

func TestSession_AmountDueCombinesTableTotalAndCart(t *testing.T) {
	fake := pizzaBackend()
	session := mountSession(t, fake, domain.NewTableIdentity("", "12"), service.SessionDeps{})
	ctx := context.Background()

	require.NoError(t, session.Add(ctx, 1))
	require.NoError(t, session.Add(ctx, 1))

	assert.Eventually(t, func() bool {
		return session.AmountDue().Equal(dec("61.00"))
	}, waitFor, tick)

	view := session.View()
	require.NotNil(t, view.TableTotal)
	assert.True(t, view.TableTotal.Equal(dec("42.00")))
	assert.True(t, view.Subtotal.Equal(dec("19.00")))
	assert.Equal(t, 2, view.ItemCount)
}

func TestSession_AmountDueWithoutKnownTotal(t *testing.T) {
	fake := pizzaBackend()
	fake.failTotals(errors.New("backend down"))
	session := mountSession(t, fake, domain.NewTableIdentity("", "12"), service.SessionDeps{})

	require.NoError(t, session.Add(context.Background(), 2))
	require.Eventually(t, func() bool { return fake.calls() >= 1 }, waitFor, tick)

	view := session.View()
	assert.Nil(t, view.TableTotal)
	assert.True(t, view.AmountDue.Equal(dec("2.25")))

	// A failed poll stays out of the customer view.
	payload, err := json.Marshal(view)
	require.NoError(t, err)
	assert.NotContains(t, string(payload), "backend down")
	assert.NotContains(t, string(payload), "total_error")
}

func TestSession_TokenResolution(t *testing.T) {
	t.Run("resolved", func(t *testing.T) {
		fake := pizzaBackend()
		fake.tokens["tok-9"] = "9"
		session := mountSession(t, fake, domain.NewTableIdentity("tok-9", ""), service.SessionDeps{})

		view := session.View()
		assert.Equal(t, "9", view.TableNumber)
		assert.Equal(t, "tok-9", view.TableToken)
		assert.Empty(t, view.TokenError)
		assert.Eventually(t, func() bool { return len(fake.tables()) > 0 && fake.tables()[0] == "9" }, waitFor, tick)
	})

	t.Run("failure_falls_back_to_number", func(t *testing.T) {
		fake := pizzaBackend()
		fake.tokenErr = errors.New("lookup failed")
		session := mountSession(t, fake, domain.NewTableIdentity("tok-x", "12"), service.SessionDeps{})

		view := session.View()
		assert.Equal(t, "12", view.TableNumber)
		assert.NotEmpty(t, view.TokenError)
		assert.Eventually(t, func() bool { return len(fake.tables()) > 0 && fake.tables()[0] == "12" }, waitFor, tick)

		require.NoError(t, session.Add(context.Background(), 1))
		_, err := session.Submit(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "12", fake.submissions()[0].TableNumber)
		assert.Equal(t, "tok-x", fake.submissions()[0].TableToken)
	})

	t.Run("failure_without_number", func(t *testing.T) {
		fake := pizzaBackend()
		fake.tokenErr = errors.New("lookup failed")
		session := mountSession(t, fake, domain.NewTableIdentity("tok-x", ""), service.SessionDeps{})

		view := session.View()
		assert.Empty(t, view.TableNumber)
		assert.Nil(t, view.TableTotal)
		assert.Equal(t, 0, fake.calls())
	})
}

func TestSession_SubmitPlacesOrder(t *testing.T) {
	fake := pizzaBackend()
	publisher := mocks.NewOrderPublisher(t)
	publisher.On("PublishOrder", mock.Anything, mock.MatchedBy(func(event domain.OrderEvent) bool {
		return event.Type == service.OrderSubmittedEvent &&
			event.Restaurant == "cafe" &&
			event.TableNumber == "12" &&
			event.OrderNumber == "A-1" &&
			event.ItemCount == 2 &&
			event.Subtotal.Equal(dec("19.00"))
	})).Return(nil).Once()

	session := mountSession(t, fake, domain.NewTableIdentity("", "12"), service.SessionDeps{Publisher: publisher})
	ctx := context.Background()

	require.NoError(t, session.Add(ctx, 1))
	require.NoError(t, session.Add(ctx, 1))
	session.SetCustomer(domain.CustomerInfo{Name: "  Ana ", Phone: "   ", Notes: "no onions"})
	require.Eventually(t, func() bool { return session.View().TableTotal != nil }, waitFor, tick)

	fake.setTotal("61.00")
	confirmation, err := session.Submit(ctx)
	require.NoError(t, err)
	assert.Equal(t, "A-1", confirmation.OrderNumber)
	assert.True(t, confirmation.Subtotal.Equal(dec("19.00")))
	assert.False(t, confirmation.PlacedAt.IsZero())

	submitted := fake.submissions()
	require.Len(t, submitted, 1)
	assert.Equal(t, "12", submitted[0].TableNumber)
	assert.Equal(t, []domain.OrderLine{{MenuItemID: 1, Quantity: 2}}, submitted[0].Items)
	require.NotNil(t, submitted[0].CustomerName)
	assert.Equal(t, "Ana", *submitted[0].CustomerName)
	assert.Nil(t, submitted[0].CustomerPhone)
	require.NotNil(t, submitted[0].CustomerNotes)
	assert.Equal(t, "no onions", *submitted[0].CustomerNotes)

	view := session.View()
	assert.Empty(t, view.Lines)
	assert.Equal(t, domain.CustomerInfo{}, view.Customer)
	assert.Equal(t, service.SubmissionSucceeded, view.Checkout.State)
	require.NotNil(t, view.Checkout.Confirmation)
	assert.Equal(t, "A-1", view.Checkout.Confirmation.OrderNumber)

	// The post-submit refresh picks up the new server total.
	assert.Eventually(t, func() bool {
		total := session.View().TableTotal
		return total != nil && total.Equal(dec("61.00"))
	}, waitFor, tick)
	assert.True(t, session.AmountDue().Equal(dec("61.00")))
}

func TestSession_SubmitClearsPersistedCart(t *testing.T) {
	fake := pizzaBackend()
	persister := storage.NewMemoryCartStore()
	identity := domain.NewTableIdentity("", "12")
	session := mountSession(t, fake, identity, service.SessionDeps{Persister: persister})

	require.NoError(t, session.Add(context.Background(), 2))
	_, err := session.Submit(context.Background())
	require.NoError(t, err)

	stored, err := persister.Load(context.Background(), service.CartKey("cafe", identity))
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestSession_SubmitFailureKeepsCart(t *testing.T) {
	fake := pizzaBackend()
	fake.submitErr = &backend.APIError{Status: http.StatusUnprocessableEntity, Message: "Kitchen is closed"}
	session := mountSession(t, fake, domain.NewTableIdentity("", "12"), service.SessionDeps{})
	ctx := context.Background()

	require.NoError(t, session.Add(ctx, 1))
	customer := domain.CustomerInfo{Name: "Ana"}
	session.SetCustomer(customer)

	_, err := session.Submit(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrSubmissionFailed)
	assert.Equal(t, "Kitchen is closed", backend.Message(err))

	view := session.View()
	require.Len(t, view.Lines, 1)
	assert.Equal(t, 1, view.Lines[0].Quantity)
	assert.Equal(t, customer, view.Customer)
	assert.Equal(t, service.SubmissionFailed, view.Checkout.State)
	assert.Equal(t, "Kitchen is closed", view.Checkout.Error)

	// Editing the cart dismisses the failure.
	require.NoError(t, session.Add(ctx, 1))
	assert.Equal(t, service.SubmissionIdle, session.View().Checkout.State)
}

func TestSession_SubmitPreconditions(t *testing.T) {
	t.Run("missing_table", func(t *testing.T) {
		fake := pizzaBackend()
		session := mountSession(t, fake, domain.TableIdentity{}, service.SessionDeps{})
		require.NoError(t, session.Add(context.Background(), 1))

		_, err := session.Submit(context.Background())
		assert.ErrorIs(t, err, service.ErrMissingTableIdentity)
		assert.Empty(t, fake.submissions())
		assert.Equal(t, service.SubmissionIdle, session.View().Checkout.State)
	})

	t.Run("empty_cart", func(t *testing.T) {
		fake := pizzaBackend()
		session := mountSession(t, fake, domain.NewTableIdentity("", "12"), service.SessionDeps{})

		_, err := session.Submit(context.Background())
		assert.ErrorIs(t, err, service.ErrEmptyCart)
		assert.Empty(t, fake.submissions())
	})

	t.Run("only_stale_items", func(t *testing.T) {
		fake := pizzaBackend()
		persister := storage.NewMemoryCartStore()
		identity := domain.NewTableIdentity("", "12")
		require.NoError(t, persister.Save(context.Background(), service.CartKey("cafe", identity), []byte(`{"7":3}`)))

		session := mountSession(t, fake, identity, service.SessionDeps{Persister: persister})

		_, err := session.Submit(context.Background())
		assert.ErrorIs(t, err, service.ErrEmptyCart)
		assert.Empty(t, fake.submissions())
	})
}

func TestSession_StaleItemsAreNotSubmitted(t *testing.T) {
	fake := pizzaBackend()
	persister := storage.NewMemoryCartStore()
	identity := domain.NewTableIdentity("", "12")
	require.NoError(t, persister.Save(context.Background(), service.CartKey("cafe", identity), []byte(`{"7":3,"1":1}`)))

	session := mountSession(t, fake, identity, service.SessionDeps{Persister: persister})

	view := session.View()
	require.Len(t, view.Lines, 1)
	assert.True(t, view.Subtotal.Equal(dec("9.50")))

	_, err := session.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.OrderLine{{MenuItemID: 1, Quantity: 1}}, fake.submissions()[0].Items)

	// Ids the menu does not offer go with the accepted order.
	stored, err := persister.Load(context.Background(), service.CartKey("cafe", identity))
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestSession_BasicOrderWithZeroTableTotal(t *testing.T) {
	fake := newFakeBackend(menuItem(1, "Pizza", "9.50"))
	fake.setTotal("0")
	session := mountSession(t, fake, domain.NewTableIdentity("", "3"), service.SessionDeps{})
	ctx := context.Background()

	require.NoError(t, session.Add(ctx, 1))
	require.NoError(t, session.Add(ctx, 1))

	view := session.View()
	require.Len(t, view.Lines, 1)
	assert.Equal(t, 1, view.Lines[0].Item.ID)
	assert.Equal(t, 2, view.Lines[0].Quantity)
	assert.True(t, view.Subtotal.Equal(dec("19.00")))

	confirmation, err := session.Submit(ctx)
	require.NoError(t, err)
	assert.Equal(t, "A-1", confirmation.OrderNumber)
	assert.Empty(t, session.View().Lines)
}

func TestSession_MenuReloadDropsStaleItemFromSnapshot(t *testing.T) {
	fake := newFakeBackend(menuItem(1, "Pizza", "9.50"), menuItem(7, "Special", "12.00"))
	persister := storage.NewMemoryCartStore()
	identity := domain.NewTableIdentity("", "12")
	session := mountSession(t, fake, identity, service.SessionDeps{Persister: persister})
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, session.Add(ctx, 7))
	}
	require.Len(t, session.View().Lines, 1)

	fake.mu.Lock()
	fake.menu = []domain.MenuItem{menuItem(1, "Pizza", "9.50")}
	fake.mu.Unlock()
	require.NoError(t, session.ReloadMenu(ctx))

	view := session.View()
	assert.Empty(t, view.Lines)
	assert.True(t, view.Subtotal.IsZero())

	stored, err := persister.Load(ctx, service.CartKey("cafe", identity))
	require.NoError(t, err)
	assert.JSONEq(t, `{"7":3}`, string(stored))

	// Stale ids can still be taken out.
	session.Decrement(ctx, 7)
	stored, err = persister.Load(ctx, service.CartKey("cafe", identity))
	require.NoError(t, err)
	assert.JSONEq(t, `{"7":2}`, string(stored))
}

func TestSession_SubmitInProgress(t *testing.T) {
	fake := pizzaBackend()
	fake.submitGate = make(chan struct{})
	session := mountSession(t, fake, domain.NewTableIdentity("", "12"), service.SessionDeps{})
	require.NoError(t, session.Add(context.Background(), 1))

	done := make(chan error, 1)
	go func() {
		_, err := session.Submit(context.Background())
		done <- err
	}()
	require.Eventually(t, func() bool {
		return session.View().Checkout.State == service.SubmissionSubmitting
	}, waitFor, tick)

	_, err := session.Submit(context.Background())
	assert.ErrorIs(t, err, service.ErrSubmitInProgress)

	session.Acknowledge()
	assert.Equal(t, service.SubmissionSubmitting, session.View().Checkout.State)

	close(fake.submitGate)
	require.NoError(t, <-done)
	assert.Len(t, fake.submissions(), 1)
	assert.Equal(t, service.SubmissionSucceeded, session.View().Checkout.State)

	session.Acknowledge()
	assert.Equal(t, service.SubmissionIdle, session.View().Checkout.State)
}

func TestSession_SubmitKeepsItemsAddedInFlight(t *testing.T) {
	fake := pizzaBackend()
	fake.submitGate = make(chan struct{})
	persister := storage.NewMemoryCartStore()
	identity := domain.NewTableIdentity("", "12")
	session := mountSession(t, fake, identity, service.SessionDeps{Persister: persister})
	ctx := context.Background()

	require.NoError(t, session.Add(ctx, 1))
	require.NoError(t, session.Add(ctx, 1))

	done := make(chan error, 1)
	go func() {
		_, err := session.Submit(ctx)
		done <- err
	}()
	require.Eventually(t, func() bool {
		return session.View().Checkout.State == service.SubmissionSubmitting
	}, waitFor, tick)

	require.NoError(t, session.Add(ctx, 1))
	require.NoError(t, session.Add(ctx, 2))

	close(fake.submitGate)
	require.NoError(t, <-done)
	assert.Equal(t, []domain.OrderLine{{MenuItemID: 1, Quantity: 2}}, fake.submissions()[0].Items)

	view := session.View()
	require.Len(t, view.Lines, 2)
	assert.Equal(t, 1, view.Lines[0].Item.ID)
	assert.Equal(t, 1, view.Lines[0].Quantity)
	assert.Equal(t, 2, view.Lines[1].Item.ID)
	assert.Equal(t, 1, view.Lines[1].Quantity)

	stored, err := persister.Load(ctx, service.CartKey("cafe", identity))
	require.NoError(t, err)
	assert.JSONEq(t, `{"1":1,"2":1}`, string(stored))
}

func TestSession_AddRejectsUnknownAndUnavailableItems(t *testing.T) {
	soldOut := menuItem(3, "Cake", "5.00")
	soldOut.Available = false
	fake := newFakeBackend(menuItem(1, "Pizza", "9.50"), soldOut)
	session := mountSession(t, fake, domain.NewTableIdentity("", "12"), service.SessionDeps{})

	assert.ErrorIs(t, session.Add(context.Background(), 3), service.ErrItemUnavailable)
	assert.ErrorIs(t, session.Add(context.Background(), 99), service.ErrItemUnavailable)

	view := session.View()
	assert.Empty(t, view.Lines)
	require.Len(t, view.Menu, 1)
	assert.Equal(t, "Pizza", view.Menu[0].Name)
}

func TestSession_MenuFailureThenReload(t *testing.T) {
	fake := pizzaBackend()
	fake.menuErr = &backend.APIError{Status: http.StatusNotFound, Message: "Restaurant not found"}

	session := service.NewSession(context.Background(), "s1", "cafe", domain.NewTableIdentity("", "12"),
		service.SessionDeps{Backend: fake, Persister: storage.NewMemoryCartStore()},
		service.SessionSettings{PollInterval: time.Hour})
	t.Cleanup(session.Unmount)

	err := session.Mount(context.Background())
	assert.ErrorIs(t, err, service.ErrMenuLoadFailed)

	view := session.View()
	assert.Empty(t, view.Menu)
	assert.Equal(t, "Restaurant not found", view.MenuError)
	assert.ErrorIs(t, session.Add(context.Background(), 1), service.ErrItemUnavailable)

	fake.mu.Lock()
	fake.menuErr = nil
	fake.mu.Unlock()

	require.NoError(t, session.ReloadMenu(context.Background()))
	view = session.View()
	assert.Len(t, view.Menu, 2)
	assert.Empty(t, view.MenuError)

	// A failed reload keeps the menu already shown.
	fake.mu.Lock()
	fake.menuErr = errors.New("timeout")
	fake.mu.Unlock()

	assert.Error(t, session.ReloadMenu(context.Background()))
	assert.Len(t, session.View().Menu, 2)
}

func TestSession_UnmountStopsPolling(t *testing.T) {
	fake := pizzaBackend()
	session := service.NewSession(context.Background(), "s1", "cafe", domain.NewTableIdentity("", "12"),
		service.SessionDeps{Backend: fake, Persister: storage.NewMemoryCartStore()},
		service.SessionSettings{PollInterval: 10 * time.Millisecond})
	require.NoError(t, session.Mount(context.Background()))
	require.Eventually(t, func() bool { return fake.calls() >= 2 }, waitFor, tick)

	session.Unmount()
	calls := fake.calls()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, calls, fake.calls())
}

func TestBuildOrderPayload(t *testing.T) {
	lines := []domain.CartLine{
		{Item: menuItem(1, "Pizza", "9.50"), Quantity: 2},
		{Item: menuItem(4, "Tea", "2.00"), Quantity: 1},
	}

	tests := []struct {
		name      string
		customer  domain.CustomerInfo
		wantName  *string
		wantPhone *string
		wantNotes *string
	}{
		{name: "all_blank", customer: domain.CustomerInfo{Name: " ", Phone: "", Notes: "\t"}},
		{
			name:      "trimmed",
			customer:  domain.CustomerInfo{Name: " Ana ", Phone: "555-0100", Notes: " extra napkins"},
			wantName:  strPtr("Ana"),
			wantPhone: strPtr("555-0100"),
			wantNotes: strPtr("extra napkins"),
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			payload := service.BuildOrderPayload("12", "tok", lines, testCase.customer)

			assert.Equal(t, "12", payload.TableNumber)
			assert.Equal(t, "tok", payload.TableToken)
			assert.Equal(t, []domain.OrderLine{{MenuItemID: 1, Quantity: 2}, {MenuItemID: 4, Quantity: 1}}, payload.Items)
			assert.Equal(t, testCase.wantName, payload.CustomerName)
			assert.Equal(t, testCase.wantPhone, payload.CustomerPhone)
			assert.Equal(t, testCase.wantNotes, payload.CustomerNotes)
		})
	}
}

func strPtr(value string) *string {
	return &value
}

func TestCheckout_StateMachine(t *testing.T) {
	checkout := service.NewCheckout()
	assert.Equal(t, service.SubmissionIdle, checkout.State())

	require.NoError(t, checkout.Begin())
	assert.ErrorIs(t, checkout.Begin(), service.ErrSubmitInProgress)

	checkout.Fail(&backend.APIError{Status: http.StatusBadGateway, Message: "Try again later"})
	status := checkout.Status()
	assert.Equal(t, service.SubmissionFailed, status.State)
	assert.Equal(t, "Try again later", status.Error)

	// A new attempt drops the unacknowledged failure.
	require.NoError(t, checkout.Begin())
	assert.Empty(t, checkout.Status().Error)

	checkout.Succeed(&domain.OrderConfirmation{OrderNumber: "B-7"})
	status = checkout.Status()
	assert.Equal(t, service.SubmissionSucceeded, status.State)
	require.NotNil(t, status.Confirmation)
	assert.Equal(t, "B-7", status.Confirmation.OrderNumber)

	checkout.Acknowledge()
	assert.Equal(t, service.CheckoutStatus{State: service.SubmissionIdle}, checkout.Status())

	require.NoError(t, checkout.Begin())
	checkout.Abort()
	assert.Equal(t, service.SubmissionIdle, checkout.State())
}

func TestSessionRegistry(t *testing.T) {
	ctx := context.Background()
	fake := pizzaBackend()
	registry := service.NewSessionRegistry(ctx, service.SessionDeps{
		Backend:   fake,
		Persister: storage.NewMemoryCartStore(),
	}, service.SessionSettings{PollInterval: time.Hour})
	t.Cleanup(registry.CloseAll)

	t.Run("missing_restaurant", func(t *testing.T) {
		_, err := registry.Open(ctx, "  ", domain.NewTableIdentity("", "12"))
		assert.ErrorIs(t, err, service.ErrMissingRestaurant)
	})

	t.Run("unknown_session", func(t *testing.T) {
		_, err := registry.View("nope")
		assert.ErrorIs(t, err, service.ErrSessionNotFound)
		_, err = registry.AddItem(ctx, "nope", 1)
		assert.ErrorIs(t, err, service.ErrSessionNotFound)
		assert.ErrorIs(t, registry.Close("nope"), service.ErrSessionNotFound)
	})

	t.Run("lifecycle", func(t *testing.T) {
		view, err := registry.Open(ctx, "cafe", domain.NewTableIdentity("", "12"))
		require.NoError(t, err)
		require.NotEmpty(t, view.SessionID)
		assert.Len(t, view.Menu, 2)

		view, err = registry.AddItem(ctx, view.SessionID, 1)
		require.NoError(t, err)
		assert.Equal(t, 1, view.ItemCount)

		view, err = registry.AddItem(ctx, view.SessionID, 2)
		require.NoError(t, err)
		view, err = registry.DecrementItem(ctx, view.SessionID, 1)
		require.NoError(t, err)
		assert.Equal(t, 1, view.ItemCount)

		view, err = registry.SetCustomer(view.SessionID, domain.CustomerInfo{Name: "Ana"})
		require.NoError(t, err)
		assert.Equal(t, "Ana", view.Customer.Name)

		view, err = registry.Submit(ctx, view.SessionID)
		require.NoError(t, err)
		assert.Equal(t, service.SubmissionSucceeded, view.Checkout.State)
		assert.Empty(t, view.Lines)

		view, err = registry.Acknowledge(view.SessionID)
		require.NoError(t, err)
		assert.Equal(t, service.SubmissionIdle, view.Checkout.State)

		require.NoError(t, registry.Close(view.SessionID))
		_, err = registry.View(view.SessionID)
		assert.ErrorIs(t, err, service.ErrSessionNotFound)
	})

	t.Run("menu_failure_still_opens", func(t *testing.T) {
		fake.mu.Lock()
		fake.menuErr = errors.New("timeout")
		fake.mu.Unlock()
		defer func() {
			fake.mu.Lock()
			fake.menuErr = nil
			fake.mu.Unlock()
		}()

		view, err := registry.Open(ctx, "cafe", domain.NewTableIdentity("", "3"))
		require.NoError(t, err)
		assert.NotEmpty(t, view.MenuError)

		fake.mu.Lock()
		fake.menuErr = nil
		fake.mu.Unlock()

		view, err = registry.ReloadMenu(ctx, view.SessionID)
		require.NoError(t, err)
		assert.Empty(t, view.MenuError)
		assert.Len(t, view.Menu, 2)
	})

	t.Run("close_idle", func(t *testing.T) {
		view, err := registry.Open(ctx, "cafe", domain.NewTableIdentity("", "4"))
		require.NoError(t, err)

		assert.Equal(t, 0, registry.CloseIdle(time.Hour))
		time.Sleep(5 * time.Millisecond)
		assert.GreaterOrEqual(t, registry.CloseIdle(time.Millisecond), 1)

		_, err = registry.View(view.SessionID)
		assert.ErrorIs(t, err, service.ErrSessionNotFound)
	})
}
