// Package registry remembers the platform identities of people who have used
// the service, so reviewer names can be turned into mentions.
package registry

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"prassign/internal/domain"
)

// Store loads and saves the whole member list.
type Store interface {
	Load(ctx context.Context) ([]domain.Member, error)
	Save(ctx context.Context, members []domain.Member) error
}

// Register returns members with m added: an entry with the same id is
// replaced in place, otherwise m is appended. The input is not modified.
func Register(members []domain.Member, m domain.Member) []domain.Member {
	out := slices.Clone(members)
	for i := range out {
		if out[i].ID == m.ID {
			out[i] = m
			return out
		}
	}
	return append(out, m)
}

type Registry struct {
	mu      sync.RWMutex
	store   Store
	members []domain.Member
	logger  *slog.Logger
}

func New(store Store, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		store:  store,
		logger: logger,
	}
}

// Load replaces the in-memory list with the stored one. On error the current
// list is kept.
func (r *Registry) Load(ctx context.Context) error {
	members, err := r.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load members: %w", err)
	}

	r.mu.Lock()
	r.members = members
	r.mu.Unlock()

	r.logger.Info("member registry loaded", "members", len(members))
	return nil
}

// Register adds or updates a member and persists the full list. Writers are
// serialized; if saving fails the in-memory list is left unchanged.
func (r *Registry) Register(ctx context.Context, m domain.Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := Register(r.members, m)
	if err := r.store.Save(ctx, next); err != nil {
		r.logger.Error("failed to save member registry",
			"member_id", m.ID,
			"members", len(next),
			"error", err)

		return fmt.Errorf("save members: %w", err)
	}

	r.members = next
	return nil
}

func (r *Registry) Lookup(id string) (domain.Member, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, m := range r.members {
		if m.ID == id {
			return m, true
		}
	}
	return domain.Member{}, false
}

// IDForName returns the id of the only member with exactly this display name.
func (r *Registry) IDForName(name string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var (
		id   string
		hits int
	)
	for _, m := range r.members {
		if m.Name != name {
			continue
		}
		hits++
		id = m.ID
	}
	if hits != 1 {
		return "", false
	}
	return id, true
}

func (r *Registry) All() []domain.Member {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.members)
}
