package todos

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"todo-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc Service
}

// NewHandler constructs a Handler.
func NewHandler(svc Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches todo routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/todo", h.list)
	rg.POST("/todo", h.create)
	rg.GET("/todo/:id", h.get)
	rg.PATCH("/todo/:id", h.update)
}

type todoResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

func toResponse(t Todo) todoResponse {
	return todoResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
	}
}

func (h *Handler) list(c *gin.Context) {
	list, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	resp := make([]todoResponse, 0, len(list))
	for _, t := range list {
		resp = append(resp, toResponse(t))
	}
	respond.OK(c, resp)
}

func (h *Handler) get(c *gin.Context) {
	t, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respond.OK(c, toResponse(t))
}

type createRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
}

func (h *Handler) create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error")
		return
	}

	t, err := h.Svc.Create(c.Request.Context(), CreateInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respond.OK(c, toResponse(t))
}

type updateRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

func (h *Handler) update(c *gin.Context) {
	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error")
		return
	}

	t, err := h.Svc.Update(c.Request.Context(), c.Param("id"), UpdateInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respond.OK(c, toResponse(t))
}

// respondServiceError maps the service vocabulary onto HTTP status codes.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found")
	case errors.Is(err, ErrBadInput):
		respond.Error(c, http.StatusBadRequest, "bad_input")
	default:
		respond.Error(c, http.StatusServiceUnavailable, "unknown")
	}
}
