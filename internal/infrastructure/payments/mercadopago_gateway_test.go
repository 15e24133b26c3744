package payments

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/renatoambrosi/quizbacken/internal/usecase/interfaces"
)

func TestNewMercadoPagoGateway(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		t.Setenv("MERCADOPAGO_MOCK", "")
		if _, err := NewMercadoPagoGateway(""); !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
			t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
		}
	})

	t.Run("mock mode needs no token", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "1")
		g, err := NewMercadoPagoGateway("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !g.mockMode {
			t.Fatal("expected mock mode")
		}
	})
}

func TestMercadoPagoGateway_MockMode(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "1")
	g, err := NewMercadoPagoGateway("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("pix create pends with qr code", func(t *testing.T) {
		payload := json.RawMessage(`{"payment_method_id":"pix","transaction_amount":15.5,"external_reference":"uid-1"}`)
		result, err := g.CreatePayment(context.Background(), payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Status != "pending" || result.QRCode == "" || result.TicketURL == "" {
			t.Fatalf("unexpected pix result: %+v", result)
		}
		if result.ExternalReference != "uid-1" {
			t.Fatalf("external reference lost: %+v", result)
		}
	})

	t.Run("card create approves", func(t *testing.T) {
		payload := json.RawMessage(`{"payment_method_id":"master","token":"tok","transaction_amount":15.5}`)
		result, err := g.CreatePayment(context.Background(), payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Status != "approved" || result.StatusDetail != "accredited" {
			t.Fatalf("unexpected card result: %+v", result)
		}
		if result.PaymentID == "" || result.DateApproved == "" {
			t.Fatalf("missing identifiers: %+v", result)
		}
	})

	t.Run("get by numeric id", func(t *testing.T) {
		result, err := g.GetPayment(context.Background(), "123456")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.PaymentID != "123456" || result.Status != "approved" {
			t.Fatalf("unexpected result: %+v", result)
		}
	})

	t.Run("get by non-numeric id", func(t *testing.T) {
		if _, err := g.GetPayment(context.Background(), "abc"); !errors.Is(err, interfaces.ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})
}

func TestDecodeProcessorPaymentRaw(t *testing.T) {
	raw := json.RawMessage(`{
		"id": 123456789,
		"status": "pending",
		"status_detail": "pending_waiting_transfer",
		"payment_method_id": "pix",
		"payment_type_id": "bank_transfer",
		"transaction_amount": 15.5,
		"external_reference": "uid-1",
		"date_created": "2026-03-10T12:00:00.000-03:00",
		"date_approved": "0001-01-01T00:00:00Z",
		"metadata": {"customer_email": "cliente@test.com", "user_uid": "uid-1"},
		"point_of_interaction": {
			"transaction_data": {
				"qr_code": "qr-data",
				"qr_code_base64": "cXItZGF0YQ==",
				"ticket_url": "https://mp.test/ticket"
			}
		}
	}`)

	result, err := decodeProcessorPaymentRaw(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.PaymentID != "123456789" {
		t.Fatalf("numeric id not normalized: %q", result.PaymentID)
	}
	if result.DateApproved != "" {
		t.Fatalf("zero-time date not sanitized: %q", result.DateApproved)
	}
	if result.QRCode != "qr-data" || result.TicketURL != "https://mp.test/ticket" {
		t.Fatalf("transaction data lost: %+v", result)
	}
	if result.CustomerEmail() != "cliente@test.com" {
		t.Fatalf("metadata email lost: %v", result.Metadata)
	}
}

func TestMapProcessorError(t *testing.T) {
	t.Run("deadline exceeded", func(t *testing.T) {
		if got := mapProcessorError(context.DeadlineExceeded); !errors.Is(got, interfaces.ErrProcessorUnavailable) {
			t.Fatalf("expected ErrProcessorUnavailable, got %v", got)
		}
	})

	t.Run("api 404", func(t *testing.T) {
		err := errors.New(`error getting payment: {"message":"Payment not found","error":"not_found","status":404,"cause":[]}`)
		if got := mapProcessorError(err); !errors.Is(got, interfaces.ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", got)
		}
	})

	t.Run("api 400 with cause", func(t *testing.T) {
		err := errors.New(`error creating payment: {"message":"Invalid card","error":"bad_request","status":400,"cause":[{"code":3034,"description":"Invalid card number"}]}`)
		got := mapProcessorError(err)

		var rejected *interfaces.ProcessorRejectedError
		if !errors.As(got, &rejected) {
			t.Fatalf("expected ProcessorRejectedError, got %v", got)
		}
		if rejected.Code != "3034" || rejected.Description != "Invalid card number" {
			t.Fatalf("unexpected rejection: %+v", rejected)
		}
	})

	t.Run("api 500", func(t *testing.T) {
		err := errors.New(`error creating payment: {"message":"internal","error":"server_error","status":500}`)
		if got := mapProcessorError(err); !errors.Is(got, interfaces.ErrProcessorUnavailable) {
			t.Fatalf("expected ErrProcessorUnavailable, got %v", got)
		}
	})

	t.Run("connection refused fallback", func(t *testing.T) {
		err := errors.New("dial tcp 127.0.0.1:443: connection refused")
		if got := mapProcessorError(err); !errors.Is(got, interfaces.ErrProcessorUnavailable) {
			t.Fatalf("expected ErrProcessorUnavailable, got %v", got)
		}
	})

	t.Run("unmapped error passes through", func(t *testing.T) {
		err := errors.New("something else")
		if got := mapProcessorError(err); got != err {
			t.Fatalf("expected passthrough, got %v", got)
		}
	})
}
