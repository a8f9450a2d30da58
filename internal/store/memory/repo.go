package memory

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"hospitalflow/internal/store"
)

type record[T any] interface {
	*T
	store.Entity
	Clone() T
}

// Repo is an in-memory store.Repository. Values are cloned on the way in and
// out so callers never share state with the collection.
type Repo[T any, P record[T]] struct {
	mu     sync.Mutex
	kind   string
	items  []T
	nextID int
	log    *slog.Logger
}

func New[T any, P record[T]](kind string, log *slog.Logger) *Repo[T, P] {
	if log == nil {
		log = slog.Default()
	}
	return &Repo[T, P]{
		kind: kind,
		log:  log.With(slog.String("component", "store."+kind)),
	}
}

func (r *Repo[T, P]) Add(_ context.Context, entity T) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	stored := P(&entity).Clone()
	P(&stored).SetEntityID(r.nextID)
	r.items = append(r.items, stored)

	r.logChange("added", P(&stored))
	return P(&stored).Clone(), nil
}

func (r *Repo[T, P]) GetByID(_ context.Context, id int) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i := r.indexOf(id); i >= 0 {
		return P(&r.items[i]).Clone(), nil
	}
	var zero T
	return zero, fmt.Errorf("%s %d: %w", r.kind, id, store.ErrNotFound)
}

func (r *Repo[T, P]) List(_ context.Context) ([]T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]T, 0, len(r.items))
	for i := range r.items {
		out = append(out, P(&r.items[i]).Clone())
	}
	return out, nil
}

func (r *Repo[T, P]) Update(_ context.Context, entity T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(P(&entity).EntityID())
	if i < 0 {
		return nil
	}
	r.items[i] = P(&entity).Clone()
	r.logChange("updated", P(&r.items[i]))
	return nil
}

func (r *Repo[T, P]) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil
	}
	removed := r.items[i]
	r.items = slices.Delete(r.items, i, i+1)
	r.logChange("deleted", P(&removed))
	return nil
}

func (r *Repo[T, P]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

func (r *Repo[T, P]) indexOf(id int) int {
	for i := range r.items {
		if P(&r.items[i]).EntityID() == id {
			return i
		}
	}
	return -1
}

func (r *Repo[T, P]) logChange(action string, e P) {
	r.log.Info(
		r.kind+" "+action,
		slog.Int("id", e.EntityID()),
		slog.String("name", e.DisplayName()),
	)
}
