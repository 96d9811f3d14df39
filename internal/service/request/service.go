package request

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/aliskhannn/notification-service/internal/model"
)

type requestRepo interface {
	Create(ctx context.Context, req model.Request) error
	Get(ctx context.Context, id uuid.UUID) (model.Request, error)
	GetAll(ctx context.Context) ([]model.Request, error)
	CompareAndTransition(ctx context.Context, id uuid.UUID, from, to model.Status) (bool, error)
}

type dispatcher interface {
	Enqueue(req model.Request)
}

// ProcessResult tells a trigger caller whether it started a new dispatch.
type ProcessResult int

const (
	// ResultAccepted means this call won the queued -> processing
	// transition and a dispatch has been handed to the worker pool.
	ResultAccepted ProcessResult = iota
	// ResultAlreadyHandled means the request was already processing or
	// terminal; no new dispatch was started.
	ResultAlreadyHandled
)

// Service drives each request through its lifecycle exactly once.
type Service struct {
	repo       requestRepo
	dispatcher dispatcher
}

func NewService(repo requestRepo, d dispatcher) *Service {
	return &Service{repo: repo, dispatcher: d}
}

// CreateRequest registers a new notification request in queued status and
// returns its generated id.
func (s *Service) CreateRequest(ctx context.Context, to, message string, channel model.Channel) (uuid.UUID, error) {
	now := time.Now()
	req := model.Request{
		ID:        uuid.New(),
		To:        to,
		Message:   message,
		Channel:   channel,
		Status:    model.StatusQueued,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, req); err != nil {
		return uuid.Nil, fmt.Errorf("create request: %w", err)
	}

	return req.ID, nil
}

// GetRequestStatusByID returns the current status of a request.
func (s *Service) GetRequestStatusByID(ctx context.Context, id uuid.UUID) (model.Status, error) {
	req, err := s.repo.Get(ctx, id)
	if err != nil {
		return "", fmt.Errorf("get request status: %w", err)
	}

	return req.Status, nil
}

// GetAllRequests returns all known requests, newest first.
func (s *Service) GetAllRequests(ctx context.Context) ([]model.Request, error) {
	requests, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get all requests: %w", err)
	}

	return requests, nil
}

// Process triggers asynchronous delivery of the request. Only the caller
// that wins the queued -> processing transition enqueues a dispatch;
// repeated triggers for the same id report AlreadyHandled and never restart
// delivery. The call returns as soon as the dispatch is handed off, not
// when delivery completes.
func (s *Service) Process(ctx context.Context, id uuid.UUID) (ProcessResult, error) {
	req, err := s.repo.Get(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("process request: %w", err)
	}

	ok, err := s.repo.CompareAndTransition(ctx, id, model.StatusQueued, model.StatusProcessing)
	if err != nil {
		return 0, fmt.Errorf("process request: %w", err)
	}

	if !ok {
		return ResultAlreadyHandled, nil
	}

	req.Status = model.StatusProcessing
	s.dispatcher.Enqueue(req)

	return ResultAccepted, nil
}
