package usecase

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/renatoambrosi/quizbacken/internal/adapter/http/dto/request"
	"github.com/renatoambrosi/quizbacken/internal/domain/entities"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrUnsupportedPaymentMethod is returned when the payload is neither a card
// payment (token + payment_method_id) nor PIX.
var ErrUnsupportedPaymentMethod = errors.New("unsupported payment method")

// Defaults applied by the normalizer when the checkout payload omits
// optional payer data. Values follow the Payment Brick integration contract.
const (
	defaultIdentificationType   = "CPF"
	defaultIdentificationNumber = "12345678909"
	defaultPayerFirstName       = "Cliente"
	defaultPayerLastName        = "Teste"
	defaultPhoneAreaCode        = "11"
	defaultPhoneNumber          = "999999999"
)

// ValidationError aggregates every missing/invalid business field of a
// checkout request. The caller receives the complete list in one response.

type ValidationError struct {
	Details []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Details, ", ")
}

// NormalizeIntent maps an inbound checkout payload into a canonical
// PaymentIntent. It is a pure transformation: no I/O, no mutation of the
// input, and deterministic output except for a freshly generated external
// reference when the payload carries no uid.
//
// Required business fields: payer email, positive amount, non-empty
// description. Everything optional is filled with documented defaults.
//
// Returns *ValidationError when business fields are missing or invalid, and
// ErrUnsupportedPaymentMethod when the payload is neither card nor PIX.
func NormalizeIntent(req request.ProcessPaymentRequest, now time.Time) (entities.PaymentIntent, error) {
	var details []string

	if strings.TrimSpace(req.Payer.Email) == "" {
		details = append(details, "Email do pagador é obrigatório")
	}

	amount := decimal.NewFromFloat(req.TransactionAmount).Round(2)
	if !amount.IsPositive() {
		details = append(details, "Valor da transação deve ser maior que zero")
	}

	if strings.TrimSpace(req.Description) == "" {
		details = append(details, "Descrição do pagamento é obrigatória")
	}

	if len(details) > 0 {
		return entities.PaymentIntent{}, &ValidationError{Details: details}
	}

	externalReference := strings.TrimSpace(req.UID)
	if externalReference == "" {
		externalReference = uuid.NewString()
	}

	intent := entities.PaymentIntent{
		ExternalReference: externalReference,
		Amount:            amount,
		Description:       strings.TrimSpace(req.Description),
		Payer:             normalizePayer(req, now),
		Status:            entities.IntentStatusPending,
		CreatedAt:         now,
	}

	switch {
	case req.PaymentMethodID != "" && req.Token != "":
		intent.Method = entities.PaymentMethodCard
		installments := req.Installments
		if installments <= 0 {
			installments = 1
		}
		intent.Card = &entities.CardDetails{
			Token:           req.Token,
			PaymentMethodID: req.PaymentMethodID,
			Installments:    installments,
			IssuerID:        normalizeIssuerID(req.IssuerID),
		}
	case req.PaymentMethodID == "pix":
		intent.Method = entities.PaymentMethodPix
		expiresAt := now.Add(entities.PixExpirationWindow)
		intent.ExpiresAt = &expiresAt
	default:
		return entities.PaymentIntent{}, ErrUnsupportedPaymentMethod
	}

	return intent, nil
}

func normalizePayer(req request.ProcessPaymentRequest, now time.Time) entities.Payer {
	payer := entities.Payer{
		Email:     strings.TrimSpace(req.Payer.Email),
		FirstName: defaultPayerFirstName,
		LastName:  defaultPayerLastName,
		Identification: entities.Identification{
			Type:   defaultIdentificationType,
			Number: defaultIdentificationNumber,
		},
		Phone: entities.Phone{
			AreaCode: defaultPhoneAreaCode,
			Number:   defaultPhoneNumber,
		},
		RegistrationDate: now,
		FirstPurchase:    true,
	}

	if req.Payer.Identification != nil {
		if t := strings.TrimSpace(req.Payer.Identification.Type); t != "" {
			payer.Identification.Type = t
		}
		if n := strings.TrimSpace(req.Payer.Identification.Number); n != "" {
			payer.Identification.Number = n
		}
	}

	if req.AdditionalInfo == nil || req.AdditionalInfo.Payer == nil {
		return payer
	}

	extra := req.AdditionalInfo.Payer
	if extra.FirstName != "" {
		payer.FirstName = extra.FirstName
	}
	if extra.LastName != "" {
		payer.LastName = extra.LastName
	}
	if extra.Phone != nil {
		if extra.Phone.AreaCode != "" {
			payer.Phone.AreaCode = extra.Phone.AreaCode
		}
		if extra.Phone.Number != "" {
			payer.Phone.Number = extra.Phone.Number
		}
	}
	if extra.RegistrationDate != "" {
		if ts, err := time.Parse(time.RFC3339, extra.RegistrationDate); err == nil {
			payer.RegistrationDate = ts
		}
	}
	if extra.IsFirstPurchaseOnline == "0" {
		payer.FirstPurchase = false
	}

	return payer
}

// Brick front-ends send issuer_id sometimes as a JSON string and sometimes
// as a number.
func normalizeIssuerID(raw any) string {
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case float64:
		return fmt.Sprintf("%.0f", v)
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", v))
	}
}
