package notifications

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/renatoambrosi/quizbacken/internal/domain/entities"
	"github.com/renatoambrosi/quizbacken/internal/usecase/interfaces"
)

const defaultPushoverAPIURL = "https://api.pushover.net/1/messages.json"

// PushoverNotifier pushes a "sale approved" alert to the operator's devices.
// Like the email channel, missing credentials make it a configured no-op.

type PushoverNotifier struct {
	appToken   string
	userKey    string
	apiURL     string
	httpClient *http.Client
}

var _ interfaces.INotifier = (*PushoverNotifier)(nil)

func NewPushoverNotifier(appToken, userKey string, httpClient *http.Client) *PushoverNotifier {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &PushoverNotifier{
		appToken:   appToken,
		userKey:    userKey,
		apiURL:     defaultPushoverAPIURL,
		httpClient: httpClient,
	}
}

func (n *PushoverNotifier) Name() string { return "pushover" }

func (n *PushoverNotifier) NotifyApproved(ctx context.Context, notification entities.ApprovedNotification) error {
	if n.appToken == "" || n.userKey == "" {
		log.Printf("[notify][pushover] skipped, tokens not configured external_reference=%s", notification.ExternalReference)
		return nil
	}

	form := url.Values{}
	form.Set("token", n.appToken)
	form.Set("user", n.userKey)
	form.Set("title", "Venda Aprovada!")
	form.Set("message", fmt.Sprintf("Valor: R$ %s", formatBRL(notification.Amount.StringFixed(2))))
	form.Set("priority", "1")
	form.Set("sound", "cash")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.apiURL, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("pushover returned %d: %s", resp.StatusCode, string(detail))
	}

	log.Printf("[notify][pushover] sent external_reference=%s", notification.ExternalReference)
	return nil
}
