package usecase

import (
	"context"
	"errors"
	"log"

	"github.com/renatoambrosi/quizbacken/internal/domain/entities"
	"github.com/renatoambrosi/quizbacken/internal/metrics"
	"github.com/renatoambrosi/quizbacken/internal/usecase/interfaces"
)

var ErrIntentNotFound = errors.New("payment intent not found")

// Webhook actions/types the engine acts on.
const (
	WebhookActionPaymentUpdated = "payment.updated"
	WebhookActionPaymentCreated = "payment.created"
	WebhookTypeMerchantOrder    = "merchant_order"
)

// IReconciliationUseCase is the state machine correlating processor
// observations back to a PaymentIntent. All three trigger paths (create
// response, webhook, polling) converge on ApplyObservation.

type IReconciliationUseCase interface {
	ApplyObservation(ctx context.Context, externalReference string, result interfaces.ProcessorResult) (entities.PaymentIntent, error)
	ProcessWebhook(ctx context.Context, action, eventType, dataID string)
	ObserveByProcessorPaymentID(ctx context.Context, paymentID string) (entities.PaymentIntent, interfaces.ProcessorResult, error)
}

type ReconciliationUseCase struct {
	repo       interfaces.IPaymentIntentRepository
	gateway    interfaces.IPaymentProcessor
	dispatcher interfaces.IApprovedNotificationDispatcher
	metrics    *metrics.PaymentMetrics
}

var _ IReconciliationUseCase = (*ReconciliationUseCase)(nil)

func NewReconciliationUseCase(
	repo interfaces.IPaymentIntentRepository,
	gateway interfaces.IPaymentProcessor,
	dispatcher interfaces.IApprovedNotificationDispatcher,
	m *metrics.PaymentMetrics,
) *ReconciliationUseCase {
	return &ReconciliationUseCase{repo: repo, gateway: gateway, dispatcher: dispatcher, metrics: m}
}

// ApplyObservation folds one processor-reported status into the intent.
//
// Rules:
//   - unknown statuses are recorded and change nothing;
//   - pending observations are a no-op (nothing moved yet);
//   - a terminal observation matching the stored terminal status is an
//     idempotent replay (webhooks redeliver);
//   - a terminal observation conflicting with a different stored terminal
//     status is an anomaly: logged, counted, existing status kept;
//   - pending -> terminal transitions go through the store's conditional
//     write, so exactly one of two racing observers applies it.
//
// The approved notification is dispatched at most once per intent, guarded
// by the notified_approved conditional flip rather than by who applied the
// transition, so a crash between transition and dispatch still heals on
// replay without ever double-firing.
func (u *ReconciliationUseCase) ApplyObservation(ctx context.Context, externalReference string, result interfaces.ProcessorResult) (entities.PaymentIntent, error) {
	intent, err := u.repo.GetByExternalReference(ctx, externalReference)
	if err != nil {
		return entities.PaymentIntent{}, err
	}
	if intent.ExternalReference == "" {
		return entities.PaymentIntent{}, ErrIntentNotFound
	}

	observed := entities.StatusFromProcessor(result.Status)
	log.Printf("[reconcile] observation external_reference=%s current=%s observed=%s raw_status=%s", externalReference, intent.Status, observed, result.Status)

	switch {
	case observed == entities.IntentStatusUnknown:
		log.Printf("[reconcile] unrecognized status external_reference=%s raw_status=%s detail=%s", externalReference, result.Status, result.StatusDetail)
		u.metrics.IncUnknownStatus()
		return intent, nil

	case observed == entities.IntentStatusPending:
		return intent, nil

	case intent.Status == observed:
		// Idempotent replay of a terminal observation.
		if observed == entities.IntentStatusApproved {
			u.maybeNotify(ctx, intent, result)
		}
		return intent, nil

	case intent.Status.IsTerminal():
		log.Printf("[reconcile] anomaly: conflicting terminal observation external_reference=%s current=%s observed=%s, keeping current", externalReference, intent.Status, observed)
		u.metrics.IncAnomaly()
		return intent, nil

	default:
		updated, applied, err := u.repo.TransitionStatus(ctx, externalReference, intent.Status, observed, result.StatusDetail, result.Raw)
		if err != nil {
			return entities.PaymentIntent{}, err
		}
		if applied {
			log.Printf("[reconcile] transition applied external_reference=%s %s->%s", externalReference, intent.Status, observed)
			u.metrics.IncTransition(string(observed))
		} else if updated.Status != observed {
			log.Printf("[reconcile] anomaly: lost transition race external_reference=%s stored=%s observed=%s, keeping stored", externalReference, updated.Status, observed)
			u.metrics.IncAnomaly()
		}
		if observed == entities.IntentStatusApproved && updated.Status == entities.IntentStatusApproved {
			u.maybeNotify(ctx, updated, result)
		}
		return updated, nil
	}
}

// ProcessWebhook is the webhook trigger path. The notification body is never
// trusted as source of truth: the payment is re-fetched by id before any
// observation is applied. Every failure here is logged and absorbed; the
// HTTP acknowledgment has already been sent by the handler.
func (u *ReconciliationUseCase) ProcessWebhook(ctx context.Context, action, eventType, dataID string) {
	event := action
	if event == "" {
		event = eventType
	}
	u.metrics.IncWebhookEvent(event)

	if (action == WebhookActionPaymentUpdated || action == WebhookActionPaymentCreated) && dataID != "" {
		result, err := u.gateway.GetPayment(ctx, dataID)
		if err != nil {
			log.Printf("[reconcile][webhook] payment fetch failed payment_id=%s err=%v", dataID, err)
			return
		}

		ref, err := u.resolveExternalReference(ctx, dataID, result)
		if err != nil {
			log.Printf("[reconcile][webhook] reference lookup failed payment_id=%s err=%v", dataID, err)
			return
		}
		if ref == "" {
			log.Printf("[reconcile][webhook] payment without external reference payment_id=%s status=%s", dataID, result.Status)
			return
		}

		if _, err := u.ApplyObservation(ctx, ref, result); err != nil {
			if errors.Is(err, ErrIntentNotFound) {
				log.Printf("[reconcile][webhook] no intent for external_reference=%s payment_id=%s", ref, dataID)
				return
			}
			log.Printf("[reconcile][webhook] observation failed external_reference=%s err=%v", ref, err)
		}
		return
	}

	if eventType == WebhookTypeMerchantOrder && dataID != "" {
		order, err := u.gateway.GetMerchantOrder(ctx, dataID)
		if err != nil {
			log.Printf("[reconcile][webhook] merchant order fetch failed order_id=%s err=%v", dataID, err)
			return
		}
		log.Printf("[reconcile][webhook] merchant order order_id=%s status=%s order_status=%s payments=%d", order.OrderID, order.Status, order.OrderStatus, order.PaymentCount)
	}
}

// ObserveByProcessorPaymentID is the polling trigger path: fetch, apply the
// observation, and return the current state to the caller. A payment the
// processor knows but the store does not (created before this service kept
// intents) is served from the processor view without side effects.
func (u *ReconciliationUseCase) ObserveByProcessorPaymentID(ctx context.Context, paymentID string) (entities.PaymentIntent, interfaces.ProcessorResult, error) {
	result, err := u.gateway.GetPayment(ctx, paymentID)
	if err != nil {
		return entities.PaymentIntent{}, interfaces.ProcessorResult{}, err
	}

	ref, err := u.resolveExternalReference(ctx, paymentID, result)
	if err != nil {
		return entities.PaymentIntent{}, interfaces.ProcessorResult{}, err
	}

	if ref != "" {
		intent, err := u.ApplyObservation(ctx, ref, result)
		if err == nil {
			return intent, result, nil
		}
		if !errors.Is(err, ErrIntentNotFound) {
			return entities.PaymentIntent{}, interfaces.ProcessorResult{}, err
		}
	}

	log.Printf("[reconcile][poll] serving processor view without stored intent payment_id=%s status=%s", paymentID, result.Status)
	return transientIntentFromResult(result), result, nil
}

func (u *ReconciliationUseCase) resolveExternalReference(ctx context.Context, paymentID string, result interfaces.ProcessorResult) (string, error) {
	if result.ExternalReference != "" {
		return result.ExternalReference, nil
	}
	intent, err := u.repo.GetByProcessorPaymentID(ctx, paymentID)
	if err != nil {
		return "", err
	}
	return intent.ExternalReference, nil
}

func (u *ReconciliationUseCase) maybeNotify(ctx context.Context, intent entities.PaymentIntent, result interfaces.ProcessorResult) {
	if intent.NotifiedApproved {
		return
	}

	won, err := u.repo.MarkNotifiedApproved(ctx, intent.ExternalReference)
	if err != nil {
		log.Printf("[reconcile] notified flag flip failed external_reference=%s err=%v", intent.ExternalReference, err)
		return
	}
	if !won {
		return
	}

	email := result.CustomerEmail()
	if email == "" {
		email = intent.Payer.Email
	}

	u.dispatcher.Dispatch(entities.ApprovedNotification{
		ExternalReference:  intent.ExternalReference,
		ProcessorPaymentID: intent.ProcessorPaymentID,
		CustomerEmail:      email,
		Amount:             intent.Amount,
		Method:             intent.Method,
	})
}

// transientIntentFromResult builds an unsaved read-only view for payments
// absent from the store.
func transientIntentFromResult(result interfaces.ProcessorResult) entities.PaymentIntent {
	method := entities.PaymentMethodCard
	if result.PaymentMethodID == "pix" {
		method = entities.PaymentMethodPix
	}
	return entities.PaymentIntent{
		ExternalReference:  result.ExternalReference,
		ProcessorPaymentID: result.PaymentID,
		Method:             method,
		Status:             entities.StatusFromProcessor(result.Status),
		StatusDetail:       result.StatusDetail,
		MPPayloadRaw:       result.Raw,
	}
}
