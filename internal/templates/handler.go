package templates

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resumeai-backend/internal/shared/server/respond"
)

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/templates", h.list)
	rg.GET("/templates/:name", h.getByName)
}

func (h *Handler) list(c *gin.Context) {
	filter := Filter{
		Category: c.Query("category"),
		Featured: c.Query("featured") == "true",
	}
	list, err := h.Svc.List(c.Request.Context(), filter)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list templates", nil)
		return
	}
	respond.JSON(c, http.StatusOK, list)
}

func (h *Handler) getByName(c *gin.Context) {
	tpl, err := h.Svc.GetByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		if IsNotFound(err) {
			respond.Error(c, http.StatusNotFound, "not_found", "template not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load template", nil)
		return
	}
	respond.JSON(c, http.StatusOK, tpl)
}
