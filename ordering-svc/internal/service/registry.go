package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"smartqr-ordering/ordering-svc/internal/domain"

	"github.com/google/uuid"
)

// SessionRegistry owns every mounted Session, keyed by a random id handed to
// the browser.
type SessionRegistry struct {
	ctx      context.Context
	deps     SessionDeps
	settings SessionSettings
	newID    func() string

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewSessionRegistry ties every session's background polling to ctx.
func NewSessionRegistry(ctx context.Context, deps SessionDeps, settings SessionSettings) *SessionRegistry {
	return &SessionRegistry{
		ctx:      ctx,
		deps:     deps,
		settings: settings,
		newID:    uuid.NewString,
		sessions: make(map[string]*Session),
	}
}

func (r *SessionRegistry) Open(ctx context.Context, slug string, identity domain.TableIdentity) (*SessionView, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, ErrMissingRestaurant
	}

	session := NewSession(r.ctx, r.newID(), slug, identity, r.deps, r.settings)
	if err := session.Mount(ctx); err != nil && !errors.Is(err, ErrMenuLoadFailed) {
		session.Unmount()
		return nil, err
	}

	r.mu.Lock()
	r.sessions[session.ID()] = session
	total := len(r.sessions)
	r.mu.Unlock()

	log.Printf("[ordering-svc] session %s opened for %s (%d active)", session.ID(), slug, total)
	view := session.View()
	return &view, nil
}

func (r *SessionRegistry) Get(id string) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return session, nil
}

func (r *SessionRegistry) View(id string) (*SessionView, error) {
	session, err := r.Get(id)
	if err != nil {
		return nil, err
	}
	view := session.View()
	return &view, nil
}

func (r *SessionRegistry) Close(id string) error {
	r.mu.Lock()
	session, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	session.Unmount()
	return nil
}

// CloseAll unmounts every session; used on shutdown.
func (r *SessionRegistry) CloseAll() {
	r.mu.Lock()
	sessions := r.sessions
	r.sessions = make(map[string]*Session)
	r.mu.Unlock()

	for _, session := range sessions {
		session.Unmount()
	}
}

// CloseIdle unmounts sessions that saw no activity for maxIdle and returns
// how many were closed.
func (r *SessionRegistry) CloseIdle(maxIdle time.Duration) int {
	cutoff := time.Now().Add(-maxIdle)

	r.mu.Lock()
	var idle []*Session
	for id, session := range r.sessions {
		if session.idleSince().Before(cutoff) {
			idle = append(idle, session)
			delete(r.sessions, id)
		}
	}
	r.mu.Unlock()

	for _, session := range idle {
		session.Unmount()
	}
	return len(idle)
}

// RunJanitor closes idle sessions every interval until ctx is done.
func (r *SessionRegistry) RunJanitor(ctx context.Context, interval, maxIdle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if closed := r.CloseIdle(maxIdle); closed > 0 {
				log.Printf("[ordering-svc] closed %d idle sessions", closed)
			}
		}
	}
}

func (r *SessionRegistry) ReloadMenu(ctx context.Context, id string) (*SessionView, error) {
	return r.apply(id, func(session *Session) error {
		// A failed reload is reported through the view.
		_ = session.ReloadMenu(ctx)
		return nil
	})
}

func (r *SessionRegistry) AddItem(ctx context.Context, id string, itemID int) (*SessionView, error) {
	return r.apply(id, func(session *Session) error {
		return session.Add(ctx, itemID)
	})
}

func (r *SessionRegistry) DecrementItem(ctx context.Context, id string, itemID int) (*SessionView, error) {
	return r.apply(id, func(session *Session) error {
		session.Decrement(ctx, itemID)
		return nil
	})
}

func (r *SessionRegistry) RemoveItem(ctx context.Context, id string, itemID int) (*SessionView, error) {
	return r.apply(id, func(session *Session) error {
		session.Remove(ctx, itemID)
		return nil
	})
}

func (r *SessionRegistry) SetCustomer(id string, info domain.CustomerInfo) (*SessionView, error) {
	return r.apply(id, func(session *Session) error {
		session.SetCustomer(info)
		return nil
	})
}

func (r *SessionRegistry) Submit(ctx context.Context, id string) (*SessionView, error) {
	return r.apply(id, func(session *Session) error {
		_, err := session.Submit(ctx)
		return err
	})
}

func (r *SessionRegistry) Acknowledge(id string) (*SessionView, error) {
	return r.apply(id, func(session *Session) error {
		session.Acknowledge()
		return nil
	})
}

func (r *SessionRegistry) apply(id string, op func(*Session) error) (*SessionView, error) {
	session, err := r.Get(id)
	if err != nil {
		return nil, err
	}
	if err := op(session); err != nil {
		return nil, err
	}
	view := session.View()
	return &view, nil
}
