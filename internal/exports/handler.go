package exports

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"resumeai-backend/internal/resumes"
	"resumeai-backend/internal/shared/server/respond"
)

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resumes/:id/export", h.export)
	rg.GET("/resumes/:id/exports", h.history)
	rg.GET("/exports/:id/download", h.download)
}

func (h *Handler) export(c *gin.Context) {
	record, pdf, err := h.Svc.Export(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.Set("exportId", record.ID)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", record.FileName))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func (h *Handler) history(c *gin.Context) {
	list, err := h.Svc.History(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	respond.JSON(c, http.StatusOK, list)
}

func (h *Handler) download(c *gin.Context) {
	record, body, err := h.Svc.Download(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	defer body.Close()

	c.Set("exportId", record.ID)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", record.FileName))
	c.DataFromReader(http.StatusOK, record.SizeBytes, "application/pdf", body, nil)
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrIncompleteResume):
		respond.Error(c, http.StatusUnprocessableEntity, "incomplete_resume", "add a full name before exporting", nil)
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "export not found", nil)
	case errors.Is(err, resumes.ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
	case errors.Is(err, resumes.ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "export failed", nil)
	}
}
