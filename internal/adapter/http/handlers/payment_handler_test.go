package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/renatoambrosi/quizbacken/internal/adapter/http/handlers/mocks"
	"github.com/renatoambrosi/quizbacken/internal/domain/entities"
	"github.com/renatoambrosi/quizbacken/internal/usecase"
	"github.com/renatoambrosi/quizbacken/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const testResultURL = "https://frontend.test/resultado"

func newPaymentRouter(checkout *mocks.MockICheckoutUseCase, reconciler *mocks.MockIReconciliationUseCase) *gin.Engine {
	h := NewPaymentHandler(checkout, reconciler, testResultURL)
	r := gin.New()
	r.POST("/api/process_payment", h.ProcessPayment)
	r.GET("/api/payment/:id", h.GetPaymentStatus)
	return r
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	return body
}

func TestPaymentHandler_ProcessPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("malformed json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newPaymentRouter(mocks.NewMockICheckoutUseCase(ctrl), mocks.NewMockIReconciliationUseCase(ctrl))

		req := httptest.NewRequest(http.MethodPost, "/api/process_payment", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["error"] != "Dados inválidos" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("validation details returned together", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		checkout := mocks.NewMockICheckoutUseCase(ctrl)
		r := newPaymentRouter(checkout, mocks.NewMockIReconciliationUseCase(ctrl))

		verr := &usecase.ValidationError{Details: []string{
			"Email do pagador é obrigatório",
			"Valor da transação deve ser maior que zero",
		}}
		checkout.EXPECT().ProcessPayment(gomock.Any(), gomock.Any()).Return(entities.PaymentIntent{}, interfaces.ProcessorResult{}, verr)

		req := httptest.NewRequest(http.MethodPost, "/api/process_payment", bytes.NewBufferString(`{"payment_method_id":"pix"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		body := decodeBody(t, w)
		details, _ := body["details"].([]any)
		if body["error"] != "Dados inválidos" || len(details) != 2 {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("unsupported payment method", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		checkout := mocks.NewMockICheckoutUseCase(ctrl)
		r := newPaymentRouter(checkout, mocks.NewMockIReconciliationUseCase(ctrl))

		checkout.EXPECT().ProcessPayment(gomock.Any(), gomock.Any()).Return(entities.PaymentIntent{}, interfaces.ProcessorResult{}, usecase.ErrUnsupportedPaymentMethod)

		req := httptest.NewRequest(http.MethodPost, "/api/process_payment", bytes.NewBufferString(`{"payment_method_id":"boleto"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["error"] != "Método de pagamento não suportado" || body["message"] != "Use cartão de crédito ou PIX" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("processor decline", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		checkout := mocks.NewMockICheckoutUseCase(ctrl)
		r := newPaymentRouter(checkout, mocks.NewMockIReconciliationUseCase(ctrl))

		rejected := &interfaces.ProcessorRejectedError{Code: "cc_rejected_insufficient_amount", Description: "Saldo insuficiente"}
		checkout.EXPECT().ProcessPayment(gomock.Any(), gomock.Any()).Return(entities.PaymentIntent{}, interfaces.ProcessorResult{}, rejected)

		req := httptest.NewRequest(http.MethodPost, "/api/process_payment", bytes.NewBufferString(`{"payment_method_id":"master","token":"tok"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["error"] != "Erro do Mercado Pago" || body["code"] != "cc_rejected_insufficient_amount" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("processor unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		checkout := mocks.NewMockICheckoutUseCase(ctrl)
		r := newPaymentRouter(checkout, mocks.NewMockIReconciliationUseCase(ctrl))

		checkout.EXPECT().ProcessPayment(gomock.Any(), gomock.Any()).Return(entities.PaymentIntent{}, interfaces.ProcessorResult{}, interfaces.ErrProcessorUnavailable)

		req := httptest.NewRequest(http.MethodPost, "/api/process_payment", bytes.NewBufferString(`{"payment_method_id":"pix"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("pix created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		checkout := mocks.NewMockICheckoutUseCase(ctrl)
		r := newPaymentRouter(checkout, mocks.NewMockIReconciliationUseCase(ctrl))

		intent := entities.PaymentIntent{
			ExternalReference: "uid-1",
			Method:            entities.PaymentMethodPix,
			Status:            entities.IntentStatusPending,
		}
		result := interfaces.ProcessorResult{
			PaymentID:         "123456",
			Status:            "pending",
			StatusDetail:      "pending_waiting_transfer",
			PaymentMethodID:   "pix",
			TransactionAmount: 15.5,
			QRCode:            "qr-data",
			QRCodeBase64:      "cXItZGF0YQ==",
			TicketURL:         "https://mp.test/ticket",
			DateOfExpiration:  "2026-03-10T12:30:00.000-03:00",
		}
		checkout.EXPECT().ProcessPayment(gomock.Any(), gomock.Any()).Return(intent, result, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/process_payment", bytes.NewBufferString(`{"payment_method_id":"pix","transaction_amount":15.5,"description":"Teste","payer":{"email":"x@test.com"},"uid":"uid-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["id"] != "123456" || body["status"] != "pending" || body["uid"] != "uid-1" {
			t.Fatalf("unexpected body: %v", body)
		}
		if body["qr_code"] != "qr-data" || body["ticket_url"] != "https://mp.test/ticket" {
			t.Fatalf("missing pix fields: %v", body)
		}
		if _, ok := body["redirect_url"]; ok {
			t.Fatal("pending pix must not carry redirect_url")
		}
	})

	t.Run("approved card redirects", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		checkout := mocks.NewMockICheckoutUseCase(ctrl)
		r := newPaymentRouter(checkout, mocks.NewMockIReconciliationUseCase(ctrl))

		intent := entities.PaymentIntent{
			ExternalReference: "uid-1",
			Method:            entities.PaymentMethodCard,
			Status:            entities.IntentStatusApproved,
		}
		result := interfaces.ProcessorResult{PaymentID: "123456", Status: "approved", StatusDetail: "accredited", TransactionAmount: 15.5}
		checkout.EXPECT().ProcessPayment(gomock.Any(), gomock.Any()).Return(intent, result, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/process_payment", bytes.NewBufferString(`{"payment_method_id":"master","token":"tok","transaction_amount":15.5,"description":"Teste","payer":{"email":"x@test.com"},"uid":"uid-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["redirect_url"] != testResultURL+"?uid=uid-1" {
			t.Fatalf("unexpected redirect_url: %v", body["redirect_url"])
		}
	})
}

func TestPaymentHandler_GetPaymentStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		reconciler := mocks.NewMockIReconciliationUseCase(ctrl)
		r := newPaymentRouter(mocks.NewMockICheckoutUseCase(ctrl), reconciler)

		intent := entities.PaymentIntent{ExternalReference: "uid-1", Status: entities.IntentStatusApproved}
		result := interfaces.ProcessorResult{PaymentID: "123456", Status: "approved", TransactionAmount: 15.5}
		reconciler.EXPECT().ObserveByProcessorPaymentID(gomock.Any(), "123456").Return(intent, result, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/payment/123456", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["source"] != "polling_consultation" || body["status"] != "approved" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		reconciler := mocks.NewMockIReconciliationUseCase(ctrl)
		r := newPaymentRouter(mocks.NewMockICheckoutUseCase(ctrl), reconciler)

		reconciler.EXPECT().ObserveByProcessorPaymentID(gomock.Any(), "999").Return(entities.PaymentIntent{}, interfaces.ProcessorResult{}, interfaces.ErrPaymentNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/payment/999", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["error"] != "Pagamento não encontrado" || body["payment_id"] != "999" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}
