package interfaces

import (
	"context"
	"encoding/json"

	"github.com/renatoambrosi/quizbacken/internal/domain/entities"
)

// IPaymentIntentRepository abstracts the keyed PaymentIntent store.
//
// The store is addressed by external_reference (primary key) and by
// processor_payment_id (secondary index). TransitionStatus and
// MarkNotifiedApproved must be conditional writes: the reconciliation engine
// relies on them to serialize concurrent observations of the same intent
// without any in-process locking.

type IPaymentIntentRepository interface {
	Create(ctx context.Context, intent entities.PaymentIntent) (entities.PaymentIntent, error)
	GetByExternalReference(ctx context.Context, externalReference string) (entities.PaymentIntent, error)
	GetByProcessorPaymentID(ctx context.Context, processorPaymentID string) (entities.PaymentIntent, error)

	// TransitionStatus moves the intent from `from` to `to` only when its
	// stored status still equals `from`. The returned bool reports whether
	// the write applied; false means another observer transitioned first.
	TransitionStatus(ctx context.Context, externalReference string, from, to entities.IntentStatus, statusDetail string, rawPayload json.RawMessage) (entities.PaymentIntent, bool, error)

	// MarkNotifiedApproved flips notified_approved false->true. The returned
	// bool reports whether this caller won the flip; exactly one caller ever
	// does.
	MarkNotifiedApproved(ctx context.Context, externalReference string) (bool, error)
}
