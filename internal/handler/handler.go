package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/adnanhb/MarqueeBooker/internal/domain"
	"github.com/adnanhb/MarqueeBooker/internal/handler/dto"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

type CatalogSvc interface {
	Halls(ctx context.Context) ([]domain.Hall, error)
	MenuItems(ctx context.Context) ([]domain.MenuItem, error)
}

type WorkflowSvc interface {
	Create(ctx context.Context) (*domain.WorkflowState, error)
	Get(ctx context.Context, id string) (*domain.WorkflowState, error)
	UpdateDraft(ctx context.Context, id string, upd domain.DraftUpdate) (*domain.WorkflowState, error)
	Next(ctx context.Context, id string) (*domain.WorkflowState, error)
	Previous(ctx context.Context, id string) (*domain.WorkflowState, error)
	Submit(ctx context.Context, id string) (*domain.WorkflowState, error)
	Abandon(ctx context.Context, id string) error
}

type Handler struct {
	catalogService  CatalogSvc
	workflowService WorkflowSvc
}

func NewHandler(catalogService CatalogSvc, workflowService WorkflowSvc) *Handler {
	return &Handler{
		catalogService:  catalogService,
		workflowService: workflowService,
	}
}

// Catalog

func (h *Handler) ListHalls(c *ginext.Context) {
	halls, err := h.catalogService.Halls(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.HallResponse, 0, len(halls))
	for _, hall := range halls {
		resp = append(resp, dto.ToHallResponse(&hall))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ListMenuItems(c *ginext.Context) {
	items, err := h.catalogService.MenuItems(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.MenuItemResponse, 0, len(items))
	for _, it := range items {
		resp = append(resp, dto.ToMenuItemResponse(&it))
	}

	c.JSON(http.StatusOK, resp)
}

// Sessions

func (h *Handler) CreateSession(c *ginext.Context) {
	state, err := h.workflowService.Create(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToSessionResponse(state))
}

func (h *Handler) GetSession(c *ginext.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	state, err := h.workflowService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSessionResponse(state))
}

func (h *Handler) UpdateDraft(c *ginext.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	var req dto.UpdateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	upd, err := req.ToDomain()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	state, err := h.workflowService.UpdateDraft(c.Request.Context(), id, upd)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSessionResponse(state))
}

func (h *Handler) NextStep(c *ginext.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	state, err := h.workflowService.Next(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSessionResponse(state))
}

func (h *Handler) PreviousStep(c *ginext.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	state, err := h.workflowService.Previous(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSessionResponse(state))
}

func (h *Handler) SubmitSession(c *ginext.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	state, err := h.workflowService.Submit(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSessionResponse(state))
}

func (h *Handler) AbandonSession(c *ginext.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	if err := h.workflowService.Abandon(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "abandoned"})
}

func sessionID(c *ginext.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid session id"})
		return "", false
	}
	return id, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation failed",
			Reasons: vErr.Reasons,
		})
		return
	}

	switch {
	case errors.Is(err, domain.ErrSessionNotFound),
		errors.Is(err, domain.ErrHallNotFound),
		errors.Is(err, domain.ErrMenuItemNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrSubmissionInFlight),
		errors.Is(err, domain.ErrSessionFinished),
		errors.Is(err, domain.ErrNotAtReview):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrSubmissionRejected):
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrCatalogUnavailable):
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrNetworkFailure):
		c.JSON(http.StatusGatewayTimeout, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrServerFailure):
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
