package users

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

// RegisterRoutes attaches user routes to the router group. There is no
// user listing and no delete.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/user", h.create)
	rg.GET("/user/:id", h.get)
	rg.PATCH("/user/:id", h.update)
}

type userResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
}

func toResponse(u User) userResponse {
	return userResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
	}
}

func (h *Handler) get(c *gin.Context) {
	u, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respond.OK(c, toResponse(u))
}

type createRequest struct {
	Email     string `json:"email" binding:"required"`
	FirstName string `json:"first_name" binding:"required"`
}

func (h *Handler) create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error")
		return
	}

	u, err := h.Svc.Create(c.Request.Context(), CreateInput{
		Email:     req.Email,
		FirstName: req.FirstName,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respond.OK(c, toResponse(u))
}

type updateRequest struct {
	Email     *string `json:"email"`
	FirstName *string `json:"first_name"`
}

func (h *Handler) update(c *gin.Context) {
	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error")
		return
	}

	u, err := h.Svc.Update(c.Request.Context(), c.Param("id"), UpdateInput{
		Email:     req.Email,
		FirstName: req.FirstName,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respond.OK(c, toResponse(u))
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
