package routes

import (
	"github.com/renatoambrosi/quizbacken/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addPaymentRoutes(rg *gin.RouterGroup, payment *handlers.PaymentHandler, webhook *handlers.WebhookHandler, callback *handlers.CallbackHandler) {
	rg.POST("/process_payment", payment.ProcessPayment)
	rg.GET("/payment/:id", payment.GetPaymentStatus)
	rg.POST("/webhook", webhook.Receive)
	rg.GET("/callback", callback.Redirect)
}
