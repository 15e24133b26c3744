package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/renatoambrosi/quizbacken/internal/adapter/http/dto/request"
	"github.com/renatoambrosi/quizbacken/internal/adapter/http/dto/response"
	"github.com/renatoambrosi/quizbacken/internal/usecase"
	"github.com/renatoambrosi/quizbacken/internal/usecase/interfaces"
	"github.com/renatoambrosi/quizbacken/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles checkout and status-consultation requests.

type PaymentHandler struct {
	checkout   usecase.ICheckoutUseCase
	reconciler usecase.IReconciliationUseCase
	resultURL  string
}

func NewPaymentHandler(checkout usecase.ICheckoutUseCase, reconciler usecase.IReconciliationUseCase, resultURL string) *PaymentHandler {
	return &PaymentHandler{checkout: checkout, reconciler: reconciler, resultURL: resultURL}
}

// ProcessPayment creates a payment from the Payment Brick payload.
//
// @Summary     Process a payment
// @Description Creates a card or PIX payment at Mercado Pago and stores the intent
// @Tags        payments
// @Accept      json
// @Produce     json
// @Param       payment body request.ProcessPaymentRequest true "Checkout payload"
// @Success     201 {object} response.ProcessPaymentResponse
// @Failure     400 {object} pkg.HTTPError
// @Failure     503 {object} pkg.HTTPError
// @Router      /process_payment [post]
func (h *PaymentHandler) ProcessPayment(c *gin.Context) {
	var req request.ProcessPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[payment][handler] invalid payload err=%v", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Dados inválidos",
			"message": "Corpo da requisição não é um JSON válido",
		})
		return
	}

	log.Printf("[payment][handler] checkout start uid=%s method=%s amount=%.2f", req.UID, req.PaymentMethodID, req.TransactionAmount)

	intent, result, err := h.checkout.ProcessPayment(c.Request.Context(), req)
	if err != nil {
		h.writeCheckoutError(c, err)
		return
	}

	log.Printf("[payment][handler] checkout success uid=%s payment_id=%s status=%s", intent.ExternalReference, result.PaymentID, result.Status)
	c.JSON(http.StatusCreated, response.FromCheckout(intent, result, h.resultURL))
}

// GetPaymentStatus re-fetches the payment from the processor and returns the
// reconciled view. Any lookup failure is reported as not found.
//
// @Summary     Consult payment status
// @Tags        payments
// @Produce     json
// @Param       id path string true "Mercado Pago payment id"
// @Success     200 {object} response.ProcessPaymentResponse
// @Failure     404 {object} pkg.HTTPError
// @Router      /payment/{id} [get]
func (h *PaymentHandler) GetPaymentStatus(c *gin.Context) {
	paymentID := c.Param("id")
	log.Printf("[payment][handler] status start payment_id=%s", paymentID)

	intent, result, err := h.reconciler.ObserveByProcessorPaymentID(c.Request.Context(), paymentID)
	if err != nil {
		log.Printf("[payment][handler] status failed payment_id=%s err=%v", paymentID, err)
		c.JSON(http.StatusNotFound, gin.H{
			"error":      "Pagamento não encontrado",
			"message":    "Verifique o ID do pagamento",
			"payment_id": paymentID,
		})
		return
	}

	log.Printf("[payment][handler] status success payment_id=%s status=%s", paymentID, result.Status)
	c.JSON(http.StatusOK, response.FromPolling(intent, result))
}

func (h *PaymentHandler) writeCheckoutError(c *gin.Context, err error) {
	var verr *usecase.ValidationError
	var rejected *interfaces.ProcessorRejectedError

	switch {
	case errors.As(err, &verr):
		log.Printf("[payment][handler] validation failed: %v", verr.Details)
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Dados inválidos",
			"message": verr.Error(),
			"details": verr.Details,
		})

	case errors.Is(err, usecase.ErrUnsupportedPaymentMethod):
		log.Printf("[payment][handler] unsupported payment method")
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Método de pagamento não suportado",
			"message": "Use cartão de crédito ou PIX",
		})

	case errors.As(err, &rejected):
		log.Printf("[payment][handler] processor rejected code=%s description=%s", rejected.Code, rejected.Description)
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Erro do Mercado Pago",
			"message": rejected.Description,
			"code":    rejected.Code,
		})

	case errors.Is(err, interfaces.ErrProcessorUnavailable):
		log.Printf("[payment][handler] processor unavailable err=%v", err)
		appErr := pkg.NewDomainErrorSimple("PROCESSOR_UNAVAILABLE", "Serviço de pagamento temporariamente indisponível", http.StatusServiceUnavailable)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())

	default:
		log.Printf("[payment][handler] checkout failed err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INTERNAL_ERROR", "Erro interno do servidor", http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
	}
}
