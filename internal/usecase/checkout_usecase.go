package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/renatoambrosi/quizbacken/internal/adapter/http/dto/request"
	"github.com/renatoambrosi/quizbacken/internal/domain/entities"
	"github.com/renatoambrosi/quizbacken/internal/metrics"
	"github.com/renatoambrosi/quizbacken/internal/usecase/interfaces"
)

type ICheckoutUseCase interface {
	ProcessPayment(ctx context.Context, req request.ProcessPaymentRequest) (entities.PaymentIntent, interfaces.ProcessorResult, error)
}

// CheckoutConfig carries the deployment-specific pieces of the create
// payload. Everything here comes from the environment at wiring time.
type CheckoutConfig struct {
	BaseURL             string
	StatementDescriptor string
	ProductID           string
	ProductTitle        string
	ProductDescription  string
	ProductCategoryID   string
	ProductPictureURL   string
}

type CheckoutUseCase struct {
	repo       interfaces.IPaymentIntentRepository
	gateway    interfaces.IPaymentProcessor
	reconciler IReconciliationUseCase
	metrics    *metrics.PaymentMetrics
	cfg        CheckoutConfig
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(
	repo interfaces.IPaymentIntentRepository,
	gateway interfaces.IPaymentProcessor,
	reconciler IReconciliationUseCase,
	m *metrics.PaymentMetrics,
	cfg CheckoutConfig,
) *CheckoutUseCase {
	return &CheckoutUseCase{repo: repo, gateway: gateway, reconciler: reconciler, metrics: m, cfg: cfg}
}

// ProcessPayment normalizes the request, creates the payment at the
// processor, persists the intent and folds the create response in as the
// first observation. Validation failures return *ValidationError so the
// handler can report every problem at once.
func (u *CheckoutUseCase) ProcessPayment(ctx context.Context, req request.ProcessPaymentRequest) (entities.PaymentIntent, interfaces.ProcessorResult, error) {
	intent, err := NormalizeIntent(req, time.Now().UTC())
	if err != nil {
		return entities.PaymentIntent{}, interfaces.ProcessorResult{}, err
	}

	payload, err := u.buildCreatePayload(intent)
	if err != nil {
		return entities.PaymentIntent{}, interfaces.ProcessorResult{}, fmt.Errorf("building create payload: %w", err)
	}

	log.Printf("[checkout] creating payment external_reference=%s method=%s amount=%s", intent.ExternalReference, intent.Method, intent.Amount.StringFixed(2))
	result, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		u.metrics.IncPaymentCreated(string(intent.Method), "error")
		return entities.PaymentIntent{}, interfaces.ProcessorResult{}, err
	}

	intent.ProcessorPaymentID = result.PaymentID
	intent.MPPayloadRaw = result.Raw

	persisted, err := u.repo.Create(ctx, intent)
	if err != nil {
		// Payment exists at the processor but the intent was not stored.
		// Surfacing the failure beats acknowledging state we cannot track.
		log.Printf("[checkout] intent store failed after create external_reference=%s payment_id=%s err=%v", intent.ExternalReference, result.PaymentID, err)
		return entities.PaymentIntent{}, interfaces.ProcessorResult{}, err
	}
	u.metrics.IncPaymentCreated(string(intent.Method), result.Status)

	updated, err := u.reconciler.ApplyObservation(ctx, persisted.ExternalReference, result)
	if err != nil {
		// The intent is stored as pending; webhooks and polling will catch
		// it up, so the checkout itself still succeeds.
		log.Printf("[checkout] first observation failed external_reference=%s err=%v", persisted.ExternalReference, err)
		return persisted, result, nil
	}
	return updated, result, nil
}

func (u *CheckoutUseCase) buildCreatePayload(intent entities.PaymentIntent) (json.RawMessage, error) {
	payer := map[string]any{
		"email": intent.Payer.Email,
		"identification": map[string]any{
			"type":   intent.Payer.Identification.Type,
			"number": intent.Payer.Identification.Number,
		},
	}

	body := map[string]any{
		"transaction_amount": intent.Amount.InexactFloat64(),
		"description":        intent.Description,
		"payer":              payer,
		"external_reference": intent.ExternalReference,
		"notification_url":   u.cfg.BaseURL + "/api/webhook",
		"additional_info":    u.buildAdditionalInfo(intent),
		"metadata": map[string]any{
			"user_uid":         intent.ExternalReference,
			"integration_type": "checkout_bricks",
			"version":          "2.0",
		},
	}

	switch intent.Method {
	case entities.PaymentMethodCard:
		body["token"] = intent.Card.Token
		body["installments"] = intent.Card.Installments
		body["payment_method_id"] = intent.Card.PaymentMethodID
		if intent.Card.IssuerID != "" {
			body["issuer_id"] = intent.Card.IssuerID
		}
		body["statement_descriptor"] = u.cfg.StatementDescriptor
		body["binary_mode"] = false
	case entities.PaymentMethodPix:
		body["payment_method_id"] = "pix"
		if intent.ExpiresAt != nil {
			body["date_of_expiration"] = intent.ExpiresAt.UTC().Format(time.RFC3339)
		}
		body["metadata"].(map[string]any)["customer_email"] = intent.Payer.Email
	}

	return json.Marshal(body)
}

func (u *CheckoutUseCase) buildAdditionalInfo(intent entities.PaymentIntent) map[string]any {
	infoPayer := map[string]any{
		"first_name": intent.Payer.FirstName,
		"last_name":  intent.Payer.LastName,
		"phone": map[string]any{
			"area_code": intent.Payer.Phone.AreaCode,
			"number":    intent.Payer.Phone.Number,
		},
		"registration_date":        intent.Payer.RegistrationDate.UTC().Format(time.RFC3339),
		"is_first_purchase_online": intent.Payer.FirstPurchase,
		"authentication_type":      "Native web",
	}

	return map[string]any{
		"items": []map[string]any{
			{
				"id":          u.cfg.ProductID,
				"title":       u.cfg.ProductTitle,
				"description": u.cfg.ProductDescription,
				"category_id": u.cfg.ProductCategoryID,
				"quantity":    1,
				"unit_price":  intent.Amount.InexactFloat64(),
				"picture_url": u.cfg.ProductPictureURL,
			},
		},
		"payer": infoPayer,
		"shipments": map[string]any{
			"receiver_address": map[string]any{
				"zip_code":    "01234-567",
				"state_name":  "SP",
				"city_name":   "São Paulo",
				"street_name": "Entrega Digital",
			},
		},
	}
}
