package service

import (
	"context"
	"encoding/json"
	"log"
	"strconv"
	"sync"

	"smartqr-ordering/ordering-svc/internal/domain"

	"github.com/shopspring/decimal"
)

// CartStore holds the quantities for one table. Every key it holds maps to a
// quantity of at least one, and each mutation is persisted before it returns.
type CartStore struct {
	key       string
	persister CartPersister

	mu    sync.Mutex
	items map[int]int
}

// OpenCartStore loads the cart stored under key. A missing, unreadable or
// corrupt record yields an empty cart.
func OpenCartStore(ctx context.Context, persister CartPersister, key string) *CartStore {
	store := &CartStore{
		key:       key,
		persister: persister,
		items:     make(map[int]int),
	}
	if persister == nil {
		return store
	}

	payload, err := persister.Load(ctx, key)
	if err != nil {
		log.Printf("[cart] WARNING: failed to load %s, starting empty: %v", key, err)
		return store
	}
	if payload == nil {
		return store
	}

	items, err := decodeCart(payload)
	if err != nil {
		log.Printf("[cart] WARNING: discarding corrupt record %s: %v", key, err)
		return store
	}
	store.items = items
	return store
}

func (c *CartStore) Key() string {
	return c.key
}

// Add increments the quantity of id, creating the entry when absent.
func (c *CartStore) Add(ctx context.Context, id int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[id]++
	c.persist(ctx)
}

// Decrement lowers the quantity of id and drops the entry at zero. An absent
// id is left absent.
func (c *CartStore) Decrement(ctx context.Context, id int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	qty, ok := c.items[id]
	if !ok {
		return
	}
	if qty <= 1 {
		delete(c.items, id)
	} else {
		c.items[id] = qty - 1
	}
	c.persist(ctx)
}

func (c *CartStore) Remove(ctx context.Context, id int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.items[id]; !ok {
		return
	}
	delete(c.items, id)
	c.persist(ctx)
}

func (c *CartStore) Clear(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[int]int)
	c.persist(ctx)
}

// Settle removes what an accepted order contained. Quantities added after
// the order was taken stay in the cart. Ids that menu does not offer are
// dropped with it since they could never be ordered.
func (c *CartStore) Settle(ctx context.Context, submitted []domain.CartLine, menu []domain.MenuItem) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, line := range submitted {
		if remaining := c.items[line.Item.ID] - line.Quantity; remaining > 0 {
			c.items[line.Item.ID] = remaining
		} else {
			delete(c.items, line.Item.ID)
		}
	}

	orderable := make(map[int]bool, len(menu))
	for _, item := range menu {
		if item.Available {
			orderable[item.ID] = true
		}
	}
	for id := range c.items {
		if !orderable[id] {
			delete(c.items, id)
		}
	}
	c.persist(ctx)
}

func (c *CartStore) Quantity(id int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.items[id]
}

// Items returns a copy of the raw mapping, including ids the current menu
// no longer knows.
func (c *CartStore) Items() map[int]int {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make(map[int]int, len(c.items))
	for id, qty := range c.items {
		out[id] = qty
	}
	return out
}

// Snapshot joins the cart against menu, in menu order. Entries whose item is
// missing from the menu or not available are left out of the result but stay
// in the cart.
func (c *CartStore) Snapshot(menu []domain.MenuItem) []domain.CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()

	lines := make([]domain.CartLine, 0, len(c.items))
	for _, item := range menu {
		if !item.Available {
			continue
		}
		if qty := c.items[item.ID]; qty > 0 {
			lines = append(lines, domain.CartLine{Item: item, Quantity: qty})
		}
	}
	return lines
}

func (c *CartStore) Subtotal(menu []domain.MenuItem) decimal.Decimal {
	return SumLines(c.Snapshot(menu))
}

func (c *CartStore) Count(menu []domain.MenuItem) int {
	count := 0
	for _, line := range c.Snapshot(menu) {
		count += line.Quantity
	}
	return count
}

func SumLines(lines []domain.CartLine) decimal.Decimal {
	sum := decimal.Zero
	for _, line := range lines {
		sum = sum.Add(line.Subtotal())
	}
	return sum
}

// persist must be called with c.mu held. Write failures only cost durability,
// so they are logged and swallowed.
func (c *CartStore) persist(ctx context.Context) {
	if c.persister == nil {
		return
	}
	if len(c.items) == 0 {
		if err := c.persister.Delete(ctx, c.key); err != nil {
			log.Printf("[cart] WARNING: failed to delete %s: %v", c.key, err)
		}
		return
	}
	payload, err := encodeCart(c.items)
	if err != nil {
		log.Printf("[cart] ERROR: failed to encode %s: %v", c.key, err)
		return
	}
	if err := c.persister.Save(ctx, c.key, payload); err != nil {
		log.Printf("[cart] WARNING: failed to save %s: %v", c.key, err)
	}
}

func encodeCart(items map[int]int) ([]byte, error) {
	return json.Marshal(items)
}

// decodeCart reads {"<id>": qty}. Entries with a non-integer id or a
// quantity that is not a positive integer are dropped.
func decodeCart(payload []byte) (map[int]int, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, err
	}

	items := make(map[int]int, len(raw))
	for key, value := range raw {
		id, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		var qty json.Number
		if err := json.Unmarshal(value, &qty); err != nil {
			continue
		}
		n, err := qty.Int64()
		if err != nil || n < 1 {
			continue
		}
		items[id] = int(n)
	}
	return items, nil
}
