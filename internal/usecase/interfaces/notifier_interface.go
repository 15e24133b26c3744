package interfaces

import (
	"context"

	"github.com/renatoambrosi/quizbacken/internal/domain/entities"
)

// INotifier is one best-effort notification channel (customer email,
// operator push). A returned error is logged by the dispatcher and goes no
// further.

type INotifier interface {
	Name() string
	NotifyApproved(ctx context.Context, n entities.ApprovedNotification) error
}

// IApprovedNotificationDispatcher decouples the reconciliation transition
// from delivery: Dispatch enqueues and returns immediately, so a channel
// outage is structurally incapable of failing the transition.

type IApprovedNotificationDispatcher interface {
	Dispatch(n entities.ApprovedNotification)
}
