package request

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/aliskhannn/notification-service/internal/model"
)

var (
	ErrRequestNotFound = errors.New("request not found")
	ErrNoRequestsFound = errors.New("no requests found")
	ErrDuplicateID     = errors.New("duplicate request id")
)

// record pairs a request with its own mutex so that status transitions on
// one request never contend with transitions on another.
type record struct {
	mu  sync.Mutex
	req model.Request
}

// Repository is the authoritative in-memory holder of request state.
//
// The outer lock only guards the map itself; every status read and
// mutation goes through the per-record lock.
type Repository struct {
	mu       sync.RWMutex
	requests map[uuid.UUID]*record
}

// NewRepository creates an empty request repository.
func NewRepository() *Repository {
	return &Repository{
		requests: make(map[uuid.UUID]*record),
	}
}

func (r *Repository) lookup(id uuid.UUID) (*record, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.requests[id]
	return rec, ok
}

// Create inserts a new request. The request is stored as given, so callers
// are expected to set status to queued themselves.
func (r *Repository) Create(ctx context.Context, req model.Request) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.requests[req.ID]; ok {
		return fmt.Errorf("create request %s: %w", req.ID, ErrDuplicateID)
	}

	r.requests[req.ID] = &record{req: req}

	return nil
}

// Get returns a snapshot of the request with the given id.
func (r *Repository) Get(ctx context.Context, id uuid.UUID) (model.Request, error) {
	rec, ok := r.lookup(id)
	if !ok {
		return model.Request{}, ErrRequestNotFound
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()

	return rec.req, nil
}

// GetAll returns snapshots of all known requests, newest first.
func (r *Repository) GetAll(ctx context.Context) ([]model.Request, error) {
	r.mu.RLock()
	recs := make([]*record, 0, len(r.requests))
	for _, rec := range r.requests {
		recs = append(recs, rec)
	}
	r.mu.RUnlock()

	if len(recs) == 0 {
		return nil, ErrNoRequestsFound
	}

	requests := make([]model.Request, 0, len(recs))
	for _, rec := range recs {
		rec.mu.Lock()
		requests = append(requests, rec.req)
		rec.mu.Unlock()
	}

	sort.Slice(requests, func(i, j int) bool {
		return requests[i].CreatedAt.After(requests[j].CreatedAt)
	})

	return requests, nil
}

// CompareAndTransition atomically moves the request from one status to
// another. It reports whether the transition happened; false means the
// current status no longer matched from, which is how racing callers lose.
func (r *Repository) CompareAndTransition(ctx context.Context, id uuid.UUID, from, to model.Status) (bool, error) {
	rec, ok := r.lookup(id)
	if !ok {
		return false, ErrRequestNotFound
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()

	if rec.req.Status != from {
		return false, nil
	}

	rec.req.Status = to
	rec.req.UpdatedAt = time.Now()

	return true, nil
}

// SetTerminal resolves the request to sent or failed. Calling it on a
// request that is already terminal is a no-op, so a late or duplicate
// completion never regresses the state.
func (r *Repository) SetTerminal(ctx context.Context, id uuid.UUID, status model.Status) error {
	if !status.Terminal() {
		return fmt.Errorf("set terminal %s: status %q is not terminal", id, status)
	}

	rec, ok := r.lookup(id)
	if !ok {
		return ErrRequestNotFound
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()

	if rec.req.Status.Terminal() {
		return nil
	}

	rec.req.Status = status
	rec.req.UpdatedAt = time.Now()

	return nil
}
