package ats

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resumeai-backend/internal/resumes"
	"resumeai-backend/internal/shared/metrics"
	"resumeai-backend/internal/shared/server/respond"
	"resumeai-backend/resume/ats"
	"resumeai-backend/resume/model"
)

// Handler scores resume payloads and stored resumes.
type Handler struct {
	Resumes *resumes.Service
	Config  ats.Config
}

func NewHandler(resumeSvc *resumes.Service, cfg ats.Config) *Handler {
	return &Handler{Resumes: resumeSvc, Config: cfg}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/ats/score", h.scorePayload)
	rg.GET("/resumes/:id/ats", h.scoreStored)
}

func (h *Handler) scorePayload(c *gin.Context) {
	var data model.ResumeData
	if err := c.ShouldBindJSON(&data); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid resume payload", nil)
		return
	}
	data.Normalize()

	report := ats.Score(data, h.Config)
	metrics.IncScore()
	respond.JSON(c, http.StatusOK, report)
}

func (h *Handler) scoreStored(c *gin.Context) {
	resume, err := h.Resumes.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, resumes.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
		case errors.Is(err, resumes.ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load resume", nil)
		}
		return
	}

	report := ats.Score(resume.Data, h.Config)
	metrics.IncScore()
	c.Set("resumeId", resume.ID)
	respond.JSON(c, http.StatusOK, report)
}
