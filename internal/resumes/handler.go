package resumes

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"resumeai-backend/internal/shared/server/respond"
	"resumeai-backend/resume/model"
)

const maxBodySize = 1 << 20 // 1MB

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resumes", h.create)
	rg.GET("/resumes/:id", h.get)
	rg.PUT("/resumes/:id", h.update)
	rg.DELETE("/resumes/:id", h.remove)
	rg.GET("/users/:id/resumes", h.listByUser)
}

type createRequest struct {
	UserID string           `json:"userId"`
	Title  string           `json:"title"`
	Data   model.ResumeData `json:"data"`
}

func (h *Handler) create(c *gin.Context) {
	raw, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodySize))
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read request body", nil)
		return
	}

	if details, err := ValidateCreatePayload(raw); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "resume payload is invalid", details)
		return
	}

	var req createRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	resume, err := h.Svc.Create(c.Request.Context(), req.UserID, req.Title, req.Data)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, ErrUserNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "user not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create resume", nil)
		}
		return
	}

	c.Set("resumeId", resume.ID)
	respond.JSON(c, http.StatusCreated, resume)
}

func (h *Handler) get(c *gin.Context) {
	resume, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err, "failed to load resume")
		return
	}
	respond.JSON(c, http.StatusOK, resume)
}

type updateRequest struct {
	Title *string           `json:"title"`
	Data  *model.ResumeData `json:"data"`
}

func (h *Handler) update(c *gin.Context) {
	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	resume, err := h.Svc.Update(c.Request.Context(), c.Param("id"), req.Title, req.Data)
	if err != nil {
		h.respondError(c, err, "failed to update resume")
		return
	}

	c.Set("resumeId", resume.ID)
	respond.JSON(c, http.StatusOK, resume)
}

func (h *Handler) remove(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err, "failed to delete resume")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) listByUser(c *gin.Context) {
	list, err := h.Svc.ListByUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err, "failed to list resumes")
		return
	}
	respond.JSON(c, http.StatusOK, list)
}

func (h *Handler) respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
	case errors.Is(err, ErrUserNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "user not found", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}
