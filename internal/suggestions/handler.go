package suggestions

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resumeai-backend/internal/shared/metrics"
	"resumeai-backend/internal/shared/server/respond"
	"resumeai-backend/internal/shared/telemetry"
	"resumeai-backend/resume/suggest"
)

// Handler exposes the suggestion provider over HTTP. Provider failures
// are reported as 502 with a generic message; the cause is only logged.
type Handler struct {
	Provider suggest.Provider
}

func NewHandler(provider suggest.Provider) *Handler {
	return &Handler{Provider: provider}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/suggestions/summary", h.summary)
	rg.POST("/suggestions/description", h.description)
	rg.POST("/suggestions/skills", h.skills)
}

type summaryRequest struct {
	JobTitle        string   `json:"jobTitle"`
	YearsExperience int      `json:"yearsExperience"`
	Skills          []string `json:"skills"`
}

func (h *Handler) summary(c *gin.Context) {
	var req summaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if strings.TrimSpace(req.JobTitle) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "jobTitle is required", nil)
		return
	}

	summary, err := h.Provider.GenerateSummary(c.Request.Context(), suggest.SummaryInput{
		JobTitle:        req.JobTitle,
		YearsExperience: req.YearsExperience,
		Skills:          req.Skills,
	})
	if err != nil {
		h.providerError(c, "summary", err)
		return
	}
	metrics.IncSuggestion()
	respond.JSON(c, http.StatusOK, gin.H{"summary": summary})
}

type descriptionRequest struct {
	Description string `json:"description"`
	JobTitle    string `json:"jobTitle"`
}

func (h *Handler) description(c *gin.Context) {
	var req descriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if strings.TrimSpace(req.Description) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "description is required", nil)
		return
	}

	optimized, err := h.Provider.OptimizeDescription(c.Request.Context(), req.Description, req.JobTitle)
	if err != nil {
		h.providerError(c, "description", err)
		return
	}
	metrics.IncSuggestion()
	respond.JSON(c, http.StatusOK, gin.H{"description": optimized})
}

type skillsRequest struct {
	JobTitle string   `json:"jobTitle"`
	Skills   []string `json:"skills"`
}

func (h *Handler) skills(c *gin.Context) {
	var req skillsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if strings.TrimSpace(req.JobTitle) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "jobTitle is required", nil)
		return
	}

	skills, err := h.Provider.SuggestSkills(c.Request.Context(), req.JobTitle, req.Skills)
	if err != nil {
		h.providerError(c, "skills", err)
		return
	}
	if skills == nil {
		skills = []string{}
	}
	metrics.IncSuggestion()
	respond.JSON(c, http.StatusOK, gin.H{"skills": skills})
}

func (h *Handler) providerError(c *gin.Context, kind string, err error) {
	metrics.IncSuggestionFailed()
	telemetry.Error("suggestion.failed", map[string]any{
		"kind":       kind,
		"error":      err.Error(),
		"request_id": c.GetString("requestId"),
	})
	respond.Error(c, http.StatusBadGateway, "suggestion_failed", "suggestion provider is unavailable", nil)
}
