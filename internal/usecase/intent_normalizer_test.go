package usecase

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/renatoambrosi/quizbacken/internal/adapter/http/dto/request"
	"github.com/renatoambrosi/quizbacken/internal/domain/entities"
)

func validCardRequest() request.ProcessPaymentRequest {
	return request.ProcessPaymentRequest{
		Token:             "tok-123",
		PaymentMethodID:   "master",
		TransactionAmount: 15.5,
		Installments:      3,
		Description:       "Teste de Prosperidade",
		Payer:             request.PayerRequest{Email: "cliente@test.com"},
		UID:               "uid-1",
	}
}

func validPixRequest() request.ProcessPaymentRequest {
	return request.ProcessPaymentRequest{
		PaymentMethodID:   "pix",
		TransactionAmount: 15.5,
		Description:       "Teste de Prosperidade",
		Payer:             request.PayerRequest{Email: "cliente@test.com"},
		UID:               "uid-1",
	}
}

func TestNormalizeIntent_Validations(t *testing.T) {
	now := time.Now().UTC()

	t.Run("all missing fields reported together", func(t *testing.T) {
		req := request.ProcessPaymentRequest{PaymentMethodID: "pix"}
		_, err := NormalizeIntent(req, now)

		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if len(verr.Details) != 3 {
			t.Fatalf("expected 3 details, got %d: %v", len(verr.Details), verr.Details)
		}
		for _, want := range []string{
			"Email do pagador é obrigatório",
			"Valor da transação deve ser maior que zero",
			"Descrição do pagamento é obrigatória",
		} {
			if !strings.Contains(verr.Error(), want) {
				t.Fatalf("expected %q in %q", want, verr.Error())
			}
		}
	})

	t.Run("zero amount rejected", func(t *testing.T) {
		req := validPixRequest()
		req.TransactionAmount = 0
		_, err := NormalizeIntent(req, now)

		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if len(verr.Details) != 1 || verr.Details[0] != "Valor da transação deve ser maior que zero" {
			t.Fatalf("unexpected details: %v", verr.Details)
		}
	})

	t.Run("negative amount rejected", func(t *testing.T) {
		req := validPixRequest()
		req.TransactionAmount = -10
		if _, err := NormalizeIntent(req, now); err == nil {
			t.Fatal("expected error for negative amount")
		}
	})

	t.Run("neither card nor pix", func(t *testing.T) {
		req := validCardRequest()
		req.Token = ""
		req.PaymentMethodID = "boleto"
		_, err := NormalizeIntent(req, now)
		if !errors.Is(err, ErrUnsupportedPaymentMethod) {
			t.Fatalf("expected ErrUnsupportedPaymentMethod, got %v", err)
		}
	})
}

func TestNormalizeIntent_Card(t *testing.T) {
	now := time.Now().UTC()

	intent, err := NormalizeIntent(validCardRequest(), now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if intent.Method != entities.PaymentMethodCard {
		t.Fatalf("expected card method, got %s", intent.Method)
	}
	if intent.Status != entities.IntentStatusPending {
		t.Fatalf("expected pending, got %s", intent.Status)
	}
	if intent.ExternalReference != "uid-1" {
		t.Fatalf("expected uid-1, got %s", intent.ExternalReference)
	}
	if intent.Amount.StringFixed(2) != "15.50" {
		t.Fatalf("expected 15.50, got %s", intent.Amount.StringFixed(2))
	}
	if intent.Card == nil || intent.Card.Token != "tok-123" || intent.Card.PaymentMethodID != "master" || intent.Card.Installments != 3 {
		t.Fatalf("unexpected card details: %+v", intent.Card)
	}
	if intent.ExpiresAt != nil {
		t.Fatal("card intent must not carry an expiration")
	}

	t.Run("installments default to 1", func(t *testing.T) {
		req := validCardRequest()
		req.Installments = 0
		intent, err := NormalizeIntent(req, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if intent.Card.Installments != 1 {
			t.Fatalf("expected 1 installment, got %d", intent.Card.Installments)
		}
	})

	t.Run("numeric issuer id normalized", func(t *testing.T) {
		req := validCardRequest()
		req.IssuerID = float64(24)
		intent, err := NormalizeIntent(req, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if intent.Card.IssuerID != "24" {
			t.Fatalf("expected issuer 24, got %q", intent.Card.IssuerID)
		}
	})
}

func TestNormalizeIntent_Pix(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	intent, err := NormalizeIntent(validPixRequest(), now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if intent.Method != entities.PaymentMethodPix {
		t.Fatalf("expected pix method, got %s", intent.Method)
	}
	if intent.Card != nil {
		t.Fatal("pix intent must not carry card details")
	}
	if intent.ExpiresAt == nil {
		t.Fatal("pix intent must carry an expiration")
	}
	if want := now.Add(30 * time.Minute); !intent.ExpiresAt.Equal(want) {
		t.Fatalf("expected expiration %v, got %v", want, intent.ExpiresAt)
	}
}

func TestNormalizeIntent_Defaults(t *testing.T) {
	now := time.Now().UTC()

	t.Run("external reference generated when uid missing", func(t *testing.T) {
		req := validPixRequest()
		req.UID = ""
		a, err := NormalizeIntent(req, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		b, err := NormalizeIntent(req, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if a.ExternalReference == "" || a.ExternalReference == b.ExternalReference {
			t.Fatalf("expected distinct generated references, got %q and %q", a.ExternalReference, b.ExternalReference)
		}
	})

	t.Run("payer defaults filled", func(t *testing.T) {
		intent, err := NormalizeIntent(validPixRequest(), now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		p := intent.Payer
		if p.Identification.Type != "CPF" || p.Identification.Number != "12345678909" {
			t.Fatalf("unexpected identification: %+v", p.Identification)
		}
		if p.FirstName != "Cliente" || p.LastName != "Teste" {
			t.Fatalf("unexpected name: %s %s", p.FirstName, p.LastName)
		}
		if p.Phone.AreaCode != "11" || p.Phone.Number != "999999999" {
			t.Fatalf("unexpected phone: %+v", p.Phone)
		}
		if !p.FirstPurchase {
			t.Fatal("expected first purchase default true")
		}
	})

	t.Run("additional info overrides defaults", func(t *testing.T) {
		req := validPixRequest()
		req.AdditionalInfo = &request.AdditionalInfoRequest{
			Payer: &request.AdditionalInfoPayerRequest{
				FirstName:             "Maria",
				LastName:              "Silva",
				Phone:                 &request.PhoneRequest{AreaCode: "21", Number: "888888888"},
				IsFirstPurchaseOnline: "0",
			},
		}
		intent, err := NormalizeIntent(req, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		p := intent.Payer
		if p.FirstName != "Maria" || p.LastName != "Silva" {
			t.Fatalf("unexpected name: %s %s", p.FirstName, p.LastName)
		}
		if p.Phone.AreaCode != "21" {
			t.Fatalf("unexpected area code: %s", p.Phone.AreaCode)
		}
		if p.FirstPurchase {
			t.Fatal("expected first purchase false")
		}
	})

	t.Run("input not mutated", func(t *testing.T) {
		req := validCardRequest()
		if _, err := NormalizeIntent(req, now); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if req.Payer.Email != "cliente@test.com" || req.Installments != 3 {
			t.Fatalf("request mutated: %+v", req)
		}
	})
}

func TestStatusFromProcessor(t *testing.T) {
	cases := map[string]entities.IntentStatus{
		"pending":      entities.IntentStatusPending,
		"in_process":   entities.IntentStatusPending,
		"in_mediation": entities.IntentStatusPending,
		"authorized":   entities.IntentStatusPending,
		"approved":     entities.IntentStatusApproved,
		"rejected":     entities.IntentStatusRejected,
		"cancelled":    entities.IntentStatusExpired,
		"expired":      entities.IntentStatusExpired,
		"charged_back": entities.IntentStatusUnknown,
		"":             entities.IntentStatusUnknown,
	}
	for raw, want := range cases {
		if got := entities.StatusFromProcessor(raw); got != want {
			t.Fatalf("StatusFromProcessor(%q) = %s, want %s", raw, got, want)
		}
	}
}
