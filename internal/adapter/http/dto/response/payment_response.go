package response

import (
	"time"

	"github.com/renatoambrosi/quizbacken/internal/domain/entities"
	"github.com/renatoambrosi/quizbacken/internal/usecase/interfaces"
)

// ProcessPaymentResponse is the body returned by both checkout and polling.
// Field names follow the Payment Brick front-end contract.

type ProcessPaymentResponse struct {
	ID                string  `json:"id"`
	Status            string  `json:"status"`
	StatusDetail      string  `json:"status_detail"`
	PaymentMethodID   string  `json:"payment_method_id,omitempty"`
	PaymentTypeID     string  `json:"payment_type_id,omitempty"`
	TransactionAmount float64 `json:"transaction_amount"`
	UID               string  `json:"uid,omitempty"`
	DateCreated       string  `json:"date_created,omitempty"`
	DateApproved      string  `json:"date_approved,omitempty"`

	// PIX only.
	QRCode           string `json:"qr_code,omitempty"`
	QRCodeBase64     string `json:"qr_code_base64,omitempty"`
	TicketURL        string `json:"ticket_url,omitempty"`
	DateOfExpiration string `json:"date_of_expiration,omitempty"`

	// Set for approved card payments so the front-end can forward the
	// buyer straight to the result page.
	RedirectURL string `json:"redirect_url,omitempty"`

	// Identifies the polling path on status consultations.
	Source string `json:"source,omitempty"`
}

// WebhookAckResponse is always returned with HTTP 200, before any
// reconciliation work happens.

type WebhookAckResponse struct {
	Received  bool   `json:"received"`
	Source    string `json:"source"`
	Timestamp string `json:"timestamp"`
}

func NewWebhookAck() WebhookAckResponse {
	return WebhookAckResponse{
		Received:  true,
		Source:    "mercadopago_webhook",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// FromCheckout builds the 201 body for a freshly created payment.
func FromCheckout(intent entities.PaymentIntent, result interfaces.ProcessorResult, resultURL string) ProcessPaymentResponse {
	resp := fromObservation(intent, result)
	if intent.Method == entities.PaymentMethodCard && intent.Status == entities.IntentStatusApproved && resultURL != "" {
		resp.RedirectURL = resultURL + "?uid=" + intent.ExternalReference
	}
	return resp
}

// FromPolling builds the status-consultation body.
func FromPolling(intent entities.PaymentIntent, result interfaces.ProcessorResult) ProcessPaymentResponse {
	resp := fromObservation(intent, result)
	resp.Source = "polling_consultation"
	return resp
}

func fromObservation(intent entities.PaymentIntent, result interfaces.ProcessorResult) ProcessPaymentResponse {
	resp := ProcessPaymentResponse{
		ID:                result.PaymentID,
		Status:            result.Status,
		StatusDetail:      result.StatusDetail,
		PaymentMethodID:   result.PaymentMethodID,
		PaymentTypeID:     result.PaymentTypeID,
		TransactionAmount: result.TransactionAmount,
		UID:               intent.ExternalReference,
		DateCreated:       result.DateCreated,
		DateApproved:      result.DateApproved,
	}

	if result.QRCode != "" || result.QRCodeBase64 != "" {
		resp.QRCode = result.QRCode
		resp.QRCodeBase64 = result.QRCodeBase64
		resp.TicketURL = result.TicketURL
		resp.DateOfExpiration = result.DateOfExpiration
		if resp.DateOfExpiration == "" && intent.ExpiresAt != nil {
			resp.DateOfExpiration = intent.ExpiresAt.UTC().Format(time.RFC3339)
		}
	}

	return resp
}
