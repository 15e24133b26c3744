package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod is the checkout variant selected once at normalization time.

type PaymentMethod string

const (
	PaymentMethodCard PaymentMethod = "card"
	PaymentMethodPix  PaymentMethod = "pix"
)

// IntentStatus is the normalized lifecycle status of a PaymentIntent.
//
// It mirrors the Mercado Pago status vocabulary collapsed into the five
// values the reconciliation engine cares about. Approved, rejected and
// expired are terminal: once reached, later observations never move the
// intent to a different terminal status.

type IntentStatus string

const (
	IntentStatusPending  IntentStatus = "pending"
	IntentStatusApproved IntentStatus = "approved"
	IntentStatusRejected IntentStatus = "rejected"
	IntentStatusExpired  IntentStatus = "expired"
	IntentStatusUnknown  IntentStatus = "unknown"
)

// PixExpirationWindow is the fixed PIX payment window: a PIX intent expires
// exactly 30 minutes after creation.
const PixExpirationWindow = 30 * time.Minute

// StatusFromProcessor maps a raw Mercado Pago payment status onto the
// normalized vocabulary. Statuses outside the known set map to unknown and
// never drive a transition.
func StatusFromProcessor(raw string) IntentStatus {
	switch raw {
	case "pending", "in_process", "in_mediation", "authorized":
		return IntentStatusPending
	case "approved":
		return IntentStatusApproved
	case "rejected":
		return IntentStatusRejected
	case "cancelled", "expired":
		return IntentStatusExpired
	default:
		return IntentStatusUnknown
	}
}

// IsTerminal reports whether the status admits no further transition.
func (s IntentStatus) IsTerminal() bool {
	return s == IntentStatusApproved || s == IntentStatusRejected || s == IntentStatusExpired
}

type Identification struct {
	Type   string `json:"type"`
	Number string `json:"number"`
}

type Phone struct {
	AreaCode string `json:"area_code"`
	Number   string `json:"number"`
}

// Payer carries the buyer data sent to the processor. Every field except
// Email may be a documented default filled in by the normalizer.

type Payer struct {
	Email            string         `json:"email"`
	FirstName        string         `json:"first_name"`
	LastName         string         `json:"last_name"`
	Identification   Identification `json:"identification"`
	Phone            Phone          `json:"phone"`
	RegistrationDate time.Time      `json:"registration_date"`
	FirstPurchase    bool           `json:"first_purchase"`
}

// CardDetails holds the card-variant fields. Present only when
// Method == PaymentMethodCard.

type CardDetails struct {
	Token           string `json:"token"`
	PaymentMethodID string `json:"payment_method_id"`
	Installments    int    `json:"installments"`
	IssuerID        string `json:"issuer_id,omitempty"`
}

// PaymentIntent is the canonical record of one checkout attempt and its
// observed lifecycle.
//
// Identity and correlation:
//   - ExternalReference is assigned before the processor create call and
//     never changes; it correlates every later observation of this payment.
//   - ProcessorPaymentID is set at most once, right after a successful
//     create response, and is the sole key for status lookups afterwards.
//
// NotifiedApproved flips false->true at most once; the flip is guarded by a
// conditional write in the store so concurrent observers cannot both win.

type PaymentIntent struct {
	ExternalReference  string          `json:"external_reference"`
	Method             PaymentMethod   `json:"method"`
	Amount             decimal.Decimal `json:"amount"`
	Description        string          `json:"description"`
	Payer              Payer           `json:"payer"`
	Card               *CardDetails    `json:"card,omitempty"`
	Status             IntentStatus    `json:"status"`
	StatusDetail       string          `json:"status_detail,omitempty"`
	ProcessorPaymentID string          `json:"processor_payment_id,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
	ExpiresAt          *time.Time      `json:"expires_at,omitempty"`
	NotifiedApproved   bool            `json:"notified_approved"`

	// MPPayloadRaw keeps the last raw processor payload (JSON) for
	// traceability/audit.
	MPPayloadRaw json.RawMessage `json:"mp_payload_raw,omitempty"`
}

// ApprovedNotification is the payload handed to the notification dispatcher
// when an intent first reaches approved.

type ApprovedNotification struct {
	ExternalReference  string
	ProcessorPaymentID string
	CustomerEmail      string
	Amount             decimal.Decimal
	Method             PaymentMethod
}
