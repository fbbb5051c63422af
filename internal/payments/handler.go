package payments

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"resumeai-backend/internal/shared/server/respond"
)

const maxWebhookSize = 64 << 10 // 64KB

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/payments/create-checkout-session", h.createCheckoutSession)
	rg.POST("/payments/webhook", h.webhook)
	rg.GET("/users/:id/subscription", h.subscriptionForUser)
	rg.POST("/subscriptions/:id/cancel", h.cancel)
	rg.POST("/subscriptions/:id/resume", h.resume)
}

type checkoutRequest struct {
	UserID string `json:"userId"`
	Plan   string `json:"plan"`
}

func (h *Handler) createCheckoutSession(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	session, err := h.Svc.CreateCheckoutSession(c.Request.Context(), req.UserID, req.Plan)
	if err != nil {
		h.respondError(c, err, "failed to create checkout session")
		return
	}
	respond.JSON(c, http.StatusOK, session)
}

func (h *Handler) webhook(c *gin.Context) {
	payload, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookSize))
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read webhook payload", nil)
		return
	}

	if err := h.Svc.HandleWebhook(c.Request.Context(), payload); err != nil {
		h.respondError(c, err, "failed to process webhook")
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{"received": true})
}

func (h *Handler) subscriptionForUser(c *gin.Context) {
	sub, err := h.Svc.GetActiveForUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err, "failed to load subscription")
		return
	}
	respond.JSON(c, http.StatusOK, sub)
}

func (h *Handler) cancel(c *gin.Context) {
	sub, err := h.Svc.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err, "failed to cancel subscription")
		return
	}
	respond.JSON(c, http.StatusOK, sub)
}

func (h *Handler) resume(c *gin.Context) {
	sub, err := h.Svc.Resume(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err, "failed to resume subscription")
		return
	}
	respond.JSON(c, http.StatusOK, sub)
}

func (h *Handler) respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "subscription not found", nil)
	case errors.Is(err, ErrConflict):
		respond.Error(c, http.StatusConflict, "conflict", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}
