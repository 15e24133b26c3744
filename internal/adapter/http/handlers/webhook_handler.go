package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/renatoambrosi/quizbacken/internal/adapter/http/dto/request"
	"github.com/renatoambrosi/quizbacken/internal/adapter/http/dto/response"
	"github.com/renatoambrosi/quizbacken/internal/usecase"

	"github.com/gin-gonic/gin"
)

// Upper bound on the background reconciliation kicked off per notification.
const webhookProcessTimeout = 30 * time.Second

// WebhookHandler receives Mercado Pago notifications.
//
// The contract is acknowledge-first: the 200 response never depends on the
// downstream work, so the processor stops redelivering even when our side is
// degraded. Reconciliation runs detached from the request context.

type WebhookHandler struct {
	reconciler usecase.IReconciliationUseCase
}

func NewWebhookHandler(reconciler usecase.IReconciliationUseCase) *WebhookHandler {
	return &WebhookHandler{reconciler: reconciler}
}

// Receive acknowledges a Mercado Pago notification and processes it in the
// background.
//
// @Summary     Receive a payment notification
// @Tags        webhooks
// @Accept      json
// @Produce     json
// @Success     200 {object} response.WebhookAckResponse
// @Router      /webhook [post]
func (h *WebhookHandler) Receive(c *gin.Context) {
	var n request.WebhookNotification
	if err := c.ShouldBindJSON(&n); err != nil {
		log.Printf("[webhook][handler] unparseable notification err=%v", err)
		c.JSON(http.StatusOK, response.NewWebhookAck())
		return
	}

	log.Printf("[webhook][handler] received action=%s type=%s data_id=%s", n.Action, n.Type, n.Data.ID)
	c.JSON(http.StatusOK, response.NewWebhookAck())

	go func(action, eventType, dataID string) {
		ctx, cancel := context.WithTimeout(context.Background(), webhookProcessTimeout)
		defer cancel()
		h.reconciler.ProcessWebhook(ctx, action, eventType, dataID)
	}(n.Action, n.Type, n.Data.ID)
}
