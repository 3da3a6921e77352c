// Package sessions keeps the per-user engine state alive between HTTP
// requests. Each user owns at most one session holding their cart store and,
// once begun, their checkout flow. Sessions idle past a configurable age are
// pruned by a background job.
package sessions

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"garments/internal/core/application/cartstore"
	"garments/internal/core/domain/model/checkout"
	"garments/internal/core/domain/model/kernel"
	"garments/internal/core/ports"
)

// Session bundles the state one user carries across requests.
//
// The cart store synchronizes itself, but the checkout aggregate does not.
// Callers hold Lock for the whole read-modify sequence on the flow, so two
// concurrent requests from the same user cannot both observe the same stage
// and act on it.
type Session struct {
	mu       sync.Mutex
	store    *cartstore.Store
	checkout *checkout.Checkout
	role     kernel.Role
}

// Lock serializes access to the session's checkout flow.
func (s *Session) Lock() {
	s.mu.Lock()
}

// Unlock releases the session after a checkout flow sequence.
func (s *Session) Unlock() {
	s.mu.Unlock()
}

// Store returns the session's cart store.
func (s *Session) Store() *cartstore.Store {
	return s.store
}

// Checkout returns the session's active checkout flow, or nil when no flow
// has been begun since the session was created or last confirmed.
// Callers hold Lock while reading or mutating the returned flow.
func (s *Session) Checkout() *checkout.Checkout {
	return s.checkout
}

// Role returns the role the session was opened under.
func (s *Session) Role() kernel.Role {
	return s.role
}

type entry struct {
	session    *Session
	lastActive time.Time
}

// Registry owns all live sessions, keyed by user identifier.
type Registry struct {
	cartClient ports.CartClient
	logger     *slog.Logger

	mu      sync.Mutex
	entries map[kernel.UUID]*entry
}

// NewRegistry creates an empty session registry backed by the given cart collaborator.
func NewRegistry(cartClient ports.CartClient, logger *slog.Logger) *Registry {
	return &Registry{
		cartClient: cartClient,
		logger:     logger.With("component", "session_registry"),
		entries:    make(map[kernel.UUID]*entry),
	}
}

// GetOrCreate returns the live session for a user, creating one with a freshly
// loaded cart store on first use. Every call refreshes the session's idle timer.
func (r *Registry) GetOrCreate(ctx context.Context, userID kernel.UUID, role kernel.Role) *Session {
	r.mu.Lock()
	e, ok := r.entries[userID]
	if ok {
		e.lastActive = time.Now()
		session := e.session
		r.mu.Unlock()
		return session
	}

	session := &Session{
		store: cartstore.NewStore(userID, r.cartClient, r.logger),
		role:  role,
	}
	r.entries[userID] = &entry{session: session, lastActive: time.Now()}
	r.mu.Unlock()

	session.store.Load(ctx)
	return session
}

// BeginCheckout starts a fresh checkout flow for the user over the current
// cart contents. The cart is reloaded first so the snapshot reflects the
// remote source, and any previous flow is discarded.
func (r *Registry) BeginCheckout(ctx context.Context, userID kernel.UUID, role kernel.Role) (*Session, error) {
	session := r.GetOrCreate(ctx, userID, role)
	session.store.Load(ctx)

	flow, err := checkout.NewCheckout(session.store.Items())
	if err != nil {
		return nil, err
	}

	session.mu.Lock()
	session.checkout = flow
	session.mu.Unlock()

	return session, nil
}

// EndCheckout drops the user's active checkout flow, if any.
// Called after confirmation so a later flow starts from a fresh snapshot.
func (r *Registry) EndCheckout(userID kernel.UUID) {
	r.mu.Lock()
	e, ok := r.entries[userID]
	r.mu.Unlock()
	if !ok {
		return
	}

	e.session.mu.Lock()
	e.session.checkout = nil
	e.session.mu.Unlock()
}

// PruneStale removes sessions idle for longer than maxAge and returns how
// many were dropped.
func (r *Registry) PruneStale(maxAge time.Duration) int {
	cutoff := time.Now().Add(-maxAge)

	r.mu.Lock()
	defer r.mu.Unlock()

	pruned := 0
	for userID, e := range r.entries {
		if e.lastActive.Before(cutoff) {
			delete(r.entries, userID)
			pruned++
		}
	}

	if pruned > 0 {
		r.logger.Info("Pruned stale sessions", "count", pruned)
	}
	return pruned
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
