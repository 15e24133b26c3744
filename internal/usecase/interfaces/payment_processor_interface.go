package interfaces

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrProcessorUnavailable is a transport-level failure (timeout,
	// connection refused). Checkout callers see a 5xx; webhook and
	// background paths log and absorb it.
	ErrProcessorUnavailable = errors.New("payment processor unavailable")

	// ErrPaymentNotFound means the processor does not know the identifier.
	ErrPaymentNotFound = errors.New("payment not found")
)

// ProcessorRejectedError is a business decline reported by the processor
// (invalid card, insufficient funds). Distinct from transport failure: the
// call itself succeeded.

type ProcessorRejectedError struct {
	Code        string
	Description string
}

func (e *ProcessorRejectedError) Error() string {
	return fmt.Sprintf("payment rejected by processor: %s (%s)", e.Description, e.Code)
}

// ProcessorResult is the processor-normalized view of a payment, decoded
// from the provider response. Raw keeps the full payload untouched.

type ProcessorResult struct {
	PaymentID         string
	Status            string
	StatusDetail      string
	PaymentMethodID   string
	PaymentTypeID     string
	TransactionAmount float64
	ExternalReference string
	Installments      int
	DateCreated       string
	DateApproved      string
	DateOfExpiration  string
	Metadata          map[string]any

	// PIX transaction data, empty for card payments.
	QRCode       string
	QRCodeBase64 string
	TicketURL    string

	Raw json.RawMessage
}

// CustomerEmail resolves the buyer email recorded in the create-call
// metadata, the only trustworthy source once the payment comes back through
// a webhook.
func (r ProcessorResult) CustomerEmail() string {
	if r.Metadata == nil {
		return ""
	}
	if email, ok := r.Metadata["customer_email"].(string); ok {
		return email
	}
	return ""
}

// OrderResult is the processor-normalized view of a merchant order.

type OrderResult struct {
	OrderID      string
	Status       string
	OrderStatus  string
	PaymentCount int
	Raw          json.RawMessage
}

// IPaymentProcessor abstracts the external payment processor (Mercado Pago).
//
// CreatePayment takes the already-built provider request payload as raw JSON
// (the caller owns the schema) and must attach a fresh single-use idempotency
// key per call. Every operation is bounded by the adapter's fixed timeout.

type IPaymentProcessor interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (ProcessorResult, error)
	GetPayment(ctx context.Context, paymentID string) (ProcessorResult, error)
	GetMerchantOrder(ctx context.Context, orderID string) (OrderResult, error)
}
