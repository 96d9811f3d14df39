package dispatch

import (
	"context"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/notification-service/internal/model"
)

type deliverer interface {
	Deliver(ctx context.Context, strategy retry.Strategy, req model.Request) error
}

type requestStore interface {
	SetTerminal(ctx context.Context, id uuid.UUID, status model.Status) error
}

// Handler resolves a single owned dispatch: it calls the provider and writes
// the terminal status back through the store. Nothing that happens downstream
// is allowed to escape; a request that started processing always ends up
// sent or failed.
type Handler struct {
	provider deliverer
	store    requestStore
}

func NewHandler(p deliverer, s requestStore) *Handler {
	return &Handler{
		provider: p,
		store:    s,
	}
}

// HandleDispatch delivers the request and records the outcome. Panics from
// the provider path are recovered and counted as delivery failure.
func (h *Handler) HandleDispatch(ctx context.Context, req model.Request, strategy retry.Strategy) {
	defer func() {
		if rec := recover(); rec != nil {
			zlog.Logger.Error().Interface("panic", rec).Msgf("dispatch of request %s panicked", req.ID)
			h.resolve(ctx, req.ID, model.StatusFailed)
		}
	}()

	if err := h.provider.Deliver(ctx, strategy, req); err != nil {
		zlog.Logger.Printf("request %s failed: %v", req.ID, err)
		h.resolve(ctx, req.ID, model.StatusFailed)
		return
	}

	zlog.Logger.Printf("request %s sent", req.ID)
	h.resolve(ctx, req.ID, model.StatusSent)
}

func (h *Handler) resolve(ctx context.Context, id uuid.UUID, status model.Status) {
	if err := h.store.SetTerminal(ctx, id, status); err != nil {
		zlog.Logger.Printf("failed to set status %s for request %s: %v", status, id, err)
	}
}
