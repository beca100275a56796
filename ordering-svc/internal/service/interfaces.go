package service

import (
	"context"

	"smartqr-ordering/ordering-svc/internal/backend"
	"smartqr-ordering/ordering-svc/internal/domain"

	"github.com/shopspring/decimal"
)

type SessionServiceInterface interface {
	Open(ctx context.Context, slug string, identity domain.TableIdentity) (*SessionView, error)
	View(id string) (*SessionView, error)
	Close(id string) error
	ReloadMenu(ctx context.Context, id string) (*SessionView, error)
	AddItem(ctx context.Context, id string, itemID int) (*SessionView, error)
	DecrementItem(ctx context.Context, id string, itemID int) (*SessionView, error)
	RemoveItem(ctx context.Context, id string, itemID int) (*SessionView, error)
	SetCustomer(id string, info domain.CustomerInfo) (*SessionView, error)
	Submit(ctx context.Context, id string) (*SessionView, error)
	Acknowledge(id string) (*SessionView, error)
}

type DeskServiceInterface interface {
	Tables(ctx context.Context, slug string) ([]domain.TableRow, error)
	TableView(ctx context.Context, slug, table string) (*DeskView, error)
	SetStatus(ctx context.Context, slug string, orderID int, status string) error
	SetPayment(ctx context.Context, slug string, orderID int, status, method string) error
	FreeTable(ctx context.Context, slug, table string) error
}

// TotalSource is the read side of the backend used for table totals.
type TotalSource interface {
	CurrentTotal(ctx context.Context, slug, tableNumber string) (decimal.Decimal, error)
}

// OrderingBackend is everything a customer session needs from the backend.
type OrderingBackend interface {
	TotalSource
	FetchMenu(ctx context.Context, slug string) ([]domain.MenuItem, error)
	ResolveTableToken(ctx context.Context, slug, token string) (string, error)
	SubmitOrder(ctx context.Context, slug string, payload domain.OrderPayload) (*domain.OrderConfirmation, error)
}

type StaffBackend interface {
	TotalSource
	ListTables(ctx context.Context, slug string) ([]domain.TableRow, error)
	ListOrders(ctx context.Context, slug, tableNumber string) ([]domain.Order, error)
	UpdateOrderStatus(ctx context.Context, slug string, orderID int, status string) error
	UpdatePaymentStatus(ctx context.Context, slug string, orderID int, status, method string) error
	FreeTable(ctx context.Context, slug, tableNumber string) error
}

// CartPersister stores encoded carts by key. Load returns a nil payload and
// a nil error when nothing is stored under key.
type CartPersister interface {
	Save(ctx context.Context, key string, payload []byte) error
	Load(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}

type OrderPublisher interface {
	PublishOrder(ctx context.Context, event domain.OrderEvent) error
}

var (
	_ OrderingBackend         = (*backend.Client)(nil)
	_ StaffBackend            = (*backend.Client)(nil)
	_ SessionServiceInterface = (*SessionRegistry)(nil)
	_ DeskServiceInterface    = (*DeskService)(nil)
)
