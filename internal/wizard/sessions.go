package wizard

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"paypage_ai_server/internal/types"
)

// Registry keeps live wizards keyed by session id.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Wizard
	onSubmit Submitter
}

// Submitter receives every submission of every wizard in the registry.
type Submitter func(ctx context.Context, id string, run uint64, data types.BusinessData)

// NewRegistry creates an empty registry. onSubmit is invoked with the session
// id whenever one of its wizards submits; it may be nil.
func NewRegistry(onSubmit Submitter) *Registry {
	return &Registry{
		sessions: make(map[string]*Wizard),
		onSubmit: onSubmit,
	}
}

// Create starts a new wizard and returns its id.
func (r *Registry) Create() (string, *Wizard) {
	id := uuid.New().String()

	var submit SubmitFunc
	if r.onSubmit != nil {
		submit = func(ctx context.Context, run uint64, data types.BusinessData) {
			r.onSubmit(ctx, id, run, data)
		}
	}
	w := New(submit)

	r.mu.Lock()
	r.sessions[id] = w
	r.mu.Unlock()
	return id, w
}

func (r *Registry) Get(id string) (*Wizard, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.sessions[id]
	return w, ok
}

// Delete removes the session, cancels its pending generation and reports
// whether it existed.
func (r *Registry) Delete(id string) bool {
	r.mu.Lock()
	w, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()
	if !ok {
		return false
	}
	w.Cancel()
	return true
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
