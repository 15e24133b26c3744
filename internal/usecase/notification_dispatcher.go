package usecase

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/renatoambrosi/quizbacken/internal/domain/entities"
	"github.com/renatoambrosi/quizbacken/internal/metrics"
	"github.com/renatoambrosi/quizbacken/internal/usecase/interfaces"
)

const (
	dispatchQueueSize = 256
	notifyTimeout     = 10 * time.Second
)

// NotificationDispatcher fans approved-payment notifications out to every
// configured channel from a single background worker. Dispatch never blocks
// and never reports failure: delivery is best-effort by contract, so a
// channel outage cannot reach back into the reconciliation transition or
// delay a webhook acknowledgment.
//
// Channels are independent: one failing channel is logged and the rest are
// still attempted.

type NotificationDispatcher struct {
	notifiers []interfaces.INotifier
	queue     chan entities.ApprovedNotification
	metrics   *metrics.PaymentMetrics

	closeOnce sync.Once
	done      chan struct{}
}

var _ interfaces.IApprovedNotificationDispatcher = (*NotificationDispatcher)(nil)

func NewNotificationDispatcher(m *metrics.PaymentMetrics, notifiers ...interfaces.INotifier) *NotificationDispatcher {
	d := &NotificationDispatcher{
		notifiers: notifiers,
		queue:     make(chan entities.ApprovedNotification, dispatchQueueSize),
		metrics:   m,
		done:      make(chan struct{}),
	}
	go d.worker()
	return d
}

// Dispatch enqueues and returns immediately. A full queue drops the
// notification with a log line rather than blocking the caller.
func (d *NotificationDispatcher) Dispatch(n entities.ApprovedNotification) {
	select {
	case d.queue <- n:
		log.Printf("[notify][dispatch] enqueued external_reference=%s payment_id=%s", n.ExternalReference, n.ProcessorPaymentID)
	default:
		log.Printf("[notify][dispatch] queue full, dropping external_reference=%s", n.ExternalReference)
	}
}

// Close drains the queue and stops the worker. Used by tests and shutdown;
// Dispatch after Close panics, so callers stop dispatching first.
func (d *NotificationDispatcher) Close() {
	d.closeOnce.Do(func() {
		close(d.queue)
		<-d.done
	})
}

func (d *NotificationDispatcher) worker() {
	defer close(d.done)
	for n := range d.queue {
		d.deliver(n)
	}
}

func (d *NotificationDispatcher) deliver(n entities.ApprovedNotification) {
	for _, notifier := range d.notifiers {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		err := notifier.NotifyApproved(ctx, n)
		cancel()

		if err != nil {
			log.Printf("[notify][dispatch] channel failed channel=%s external_reference=%s err=%v", notifier.Name(), n.ExternalReference, err)
			d.metrics.IncNotification(notifier.Name(), "error")
			continue
		}
		log.Printf("[notify][dispatch] channel ok channel=%s external_reference=%s", notifier.Name(), n.ExternalReference)
		d.metrics.IncNotification(notifier.Name(), "ok")
	}
}
