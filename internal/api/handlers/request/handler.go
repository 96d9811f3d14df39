package request

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/notification-service/internal/api/dto"
	"github.com/aliskhannn/notification-service/internal/api/respond"
	"github.com/aliskhannn/notification-service/internal/model"
	"github.com/aliskhannn/notification-service/internal/repository/request"
	requestsvc "github.com/aliskhannn/notification-service/internal/service/request"
)

type requestService interface {
	CreateRequest(ctx context.Context, to, message string, channel model.Channel) (uuid.UUID, error)
	GetRequestStatusByID(ctx context.Context, id uuid.UUID) (model.Status, error)
	GetAllRequests(ctx context.Context) ([]model.Request, error)
	Process(ctx context.Context, id uuid.UUID) (requestsvc.ProcessResult, error)
}

type Handler struct {
	service   requestService
	validator *validator.Validate
}

func NewHandler(s requestService, v *validator.Validate) *Handler {
	return &Handler{service: s, validator: v}
}

func (h *Handler) Create(c *ginext.Context) {
	var req dto.CreateRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	id, err := h.service.CreateRequest(c.Request.Context(), req.To, req.Message, model.Channel(req.Type))
	if err != nil {
		zlog.Logger.Error().Err(err).Str("to", req.To).Msg("failed to create request")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.Created(c.Writer, dto.CreateResponse{ID: id.String()})
}

func (h *Handler) GetStatus(c *ginext.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	status, err := h.service.GetRequestStatusByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, request.ErrRequestNotFound) {
			zlog.Logger.Warn().Stringer("id", id).Msg("request not found")
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("request not found"))
			return
		}

		zlog.Logger.Error().Err(err).Stringer("id", id).Msg("failed to get request status")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, dto.StatusResponse{ID: id.String(), Status: string(status)})
}

func (h *Handler) GetAll(c *ginext.Context) {
	requests, err := h.service.GetAllRequests(c.Request.Context())
	if err != nil {
		if errors.Is(err, request.ErrNoRequestsFound) {
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("no requests found"))
			return
		}

		zlog.Logger.Error().Err(err).Msg("failed to get requests")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, requests)
}

// Process triggers asynchronous delivery: 202 when this call started a new
// dispatch, 200 when the request was already processing or terminal.
func (h *Handler) Process(c *ginext.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	result, err := h.service.Process(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, request.ErrRequestNotFound) {
			zlog.Logger.Warn().Stringer("id", id).Msg("request not found")
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("request not found"))
			return
		}

		zlog.Logger.Error().Err(err).Stringer("id", id).Msg("failed to process request")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	if result == requestsvc.ResultAccepted {
		respond.Accepted(c.Writer, dto.StatusResponse{ID: id.String(), Status: string(model.StatusProcessing)})
		return
	}

	// Repeated trigger: report the current status without restarting delivery.
	status, err := h.service.GetRequestStatusByID(c.Request.Context(), id)
	if err != nil {
		zlog.Logger.Error().Err(err).Stringer("id", id).Msg("failed to get request status")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, dto.StatusResponse{ID: id.String(), Status: string(status)})
}

func parseID(c *ginext.Context) (uuid.UUID, bool) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		zlog.Logger.Warn().Err(err).Str("id", idStr).Msg("failed to parse id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
		return uuid.Nil, false
	}

	return id, true
}
