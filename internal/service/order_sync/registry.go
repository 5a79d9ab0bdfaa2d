package order_sync

import (
	"sync"
	"time"
)

// Registry хранит представления по id сессии.
type Registry struct {
	mu    sync.Mutex
	views map[string]*View
	now   func() time.Time
}

type RegistryOption func(*Registry)

func WithClock(now func() time.Time) RegistryOption {
	return func(r *Registry) {
		r.now = now
	}
}

func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		views: make(map[string]*View),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// View возвращает представление сессии, создавая его при первом обращении.
func (r *Registry) View(sessionID string) *View {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	view, ok := r.views[sessionID]
	if !ok {
		view = NewView()
		r.views[sessionID] = view
		ActiveViews.Set(float64(len(r.views)))
	}
	view.touch(now)
	return view
}

// Drop закрывает представление: поздние ответы после выхода становятся no-op.
func (r *Registry) Drop(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	view, ok := r.views[sessionID]
	if !ok {
		return
	}
	view.Close()
	delete(r.views, sessionID)
	ActiveViews.Set(float64(len(r.views)))
}

// EvictIdle закрывает представления без обращений дольше ttl и возвращает их количество.
func (r *Registry) EvictIdle(ttl time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	evicted := 0
	for id, view := range r.views {
		if view.idleSince(now) < ttl {
			continue
		}
		view.Close()
		delete(r.views, id)
		evicted++
	}

	EvictedViewsTotal.Add(float64(evicted))
	ActiveViews.Set(float64(len(r.views)))
	return evicted
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.views)
}
