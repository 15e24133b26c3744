package request

import "encoding/json"

// ProcessPaymentRequest is the checkout payload posted by the Payment Brick
// front-end. Card payments carry token/installments/issuer_id; PIX payments
// carry payment_method_id "pix" only.

type ProcessPaymentRequest struct {
	Token             string                 `json:"token,omitempty"`
	PaymentMethodID   string                 `json:"payment_method_id"`
	TransactionAmount float64                `json:"transaction_amount"`
	Installments      int                    `json:"installments,omitempty"`
	Description       string                 `json:"description"`
	Payer             PayerRequest           `json:"payer"`
	UID               string                 `json:"uid,omitempty"`
	IssuerID          any                    `json:"issuer_id,omitempty"`
	AdditionalInfo    *AdditionalInfoRequest `json:"additional_info,omitempty"`
}

type PayerRequest struct {
	Email          string                 `json:"email"`
	Identification *IdentificationRequest `json:"identification,omitempty"`
}

type IdentificationRequest struct {
	Type   string `json:"type"`
	Number string `json:"number"`
}

// AdditionalInfoRequest mirrors the optional additional_info block sent by
// some Brick configurations; every field is defaulted when absent.

type AdditionalInfoRequest struct {
	Payer *AdditionalInfoPayerRequest `json:"payer,omitempty"`
}

type AdditionalInfoPayerRequest struct {
	FirstName             string        `json:"first_name,omitempty"`
	LastName              string        `json:"last_name,omitempty"`
	Phone                 *PhoneRequest `json:"phone,omitempty"`
	RegistrationDate      string        `json:"registration_date,omitempty"`
	IsPrimeUser           string        `json:"is_prime_user,omitempty"`
	IsFirstPurchaseOnline string        `json:"is_first_purchase_online,omitempty"`
	AuthenticationType    string        `json:"authentication_type,omitempty"`
}

type PhoneRequest struct {
	AreaCode string `json:"area_code,omitempty"`
	Number   string `json:"number,omitempty"`
}

// WebhookNotification is the processor-initiated notification body. Only
// the identifier is read from it; payment state is always re-fetched from
// the processor before any reconciliation.

type WebhookNotification struct {
	Action string                  `json:"action,omitempty"`
	Type   string                  `json:"type,omitempty"`
	Data   WebhookNotificationData `json:"data,omitempty"`
}

type WebhookNotificationData struct {
	ID string `json:"-"`
}

// Mercado Pago sends data.id as a string for payment events and as a number
// for some merchant_order events; accept both.
func (d *WebhookNotificationData) UnmarshalJSON(b []byte) error {
	var asString struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(b, &asString); err == nil && asString.ID != "" {
		d.ID = asString.ID
		return nil
	}

	var asNumber struct {
		ID json.Number `json:"id"`
	}
	if err := json.Unmarshal(b, &asNumber); err != nil {
		return err
	}
	d.ID = asNumber.ID.String()
	return nil
}
