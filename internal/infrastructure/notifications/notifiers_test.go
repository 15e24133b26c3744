package notifications

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/renatoambrosi/quizbacken/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func approvedNotification() entities.ApprovedNotification {
	return entities.ApprovedNotification{
		ExternalReference:  "uid-1",
		ProcessorPaymentID: "123456",
		CustomerEmail:      "cliente@test.com",
		Amount:             decimal.NewFromFloat(15.5),
		Method:             entities.PaymentMethodPix,
	}
}

func TestBrevoEmailNotifier(t *testing.T) {
	t.Run("sends transactional email", func(t *testing.T) {
		var gotPath, gotKey string
		var gotPayload map[string]any
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotKey = r.Header.Get("api-key")
			if err := json.NewDecoder(r.Body).Decode(&gotPayload); err != nil {
				t.Errorf("invalid payload: %v", err)
			}
			w.WriteHeader(http.StatusCreated)
		}))
		defer srv.Close()

		n := NewBrevoEmailNotifier("key-1", "sistema@test.com", "https://frontend.test/resultado", srv.Client())
		n.baseURL = srv.URL

		if err := n.NotifyApproved(context.Background(), approvedNotification()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotPath != "/smtp/email" || gotKey != "key-1" {
			t.Fatalf("unexpected request: path=%s key=%s", gotPath, gotKey)
		}
		html, _ := gotPayload["htmlContent"].(string)
		if !strings.Contains(html, "https://frontend.test/resultado?uid=uid-1") {
			t.Fatal("result link missing from email body")
		}
		if !strings.Contains(html, "R$ 15,50") {
			t.Fatal("formatted amount missing from email body")
		}
	})

	t.Run("api error surfaces", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"code":"unauthorized"}`, http.StatusUnauthorized)
		}))
		defer srv.Close()

		n := NewBrevoEmailNotifier("bad-key", "sistema@test.com", "https://frontend.test/resultado", srv.Client())
		n.baseURL = srv.URL

		if err := n.NotifyApproved(context.Background(), approvedNotification()); err == nil {
			t.Fatal("expected error on 401")
		}
	})

	t.Run("no-op without api key", func(t *testing.T) {
		n := NewBrevoEmailNotifier("", "sistema@test.com", "https://frontend.test/resultado", nil)
		if err := n.NotifyApproved(context.Background(), approvedNotification()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("no-op without customer email", func(t *testing.T) {
		n := NewBrevoEmailNotifier("key-1", "sistema@test.com", "https://frontend.test/resultado", nil)
		note := approvedNotification()
		note.CustomerEmail = ""
		if err := n.NotifyApproved(context.Background(), note); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestPushoverNotifier(t *testing.T) {
	t.Run("sends push", func(t *testing.T) {
		var gotForm map[string][]string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := r.ParseForm(); err != nil {
				t.Errorf("invalid form: %v", err)
			}
			gotForm = r.PostForm
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		n := NewPushoverNotifier("app-token", "user-key", srv.Client())
		n.apiURL = srv.URL

		if err := n.NotifyApproved(context.Background(), approvedNotification()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := gotForm["title"]; len(got) != 1 || got[0] != "Venda Aprovada!" {
			t.Fatalf("unexpected title: %v", got)
		}
		if got := gotForm["message"]; len(got) != 1 || got[0] != "Valor: R$ 15,50" {
			t.Fatalf("unexpected message: %v", got)
		}
		if got := gotForm["sound"]; len(got) != 1 || got[0] != "cash" {
			t.Fatalf("unexpected sound: %v", got)
		}
	})

	t.Run("no-op without tokens", func(t *testing.T) {
		n := NewPushoverNotifier("", "", nil)
		if err := n.NotifyApproved(context.Background(), approvedNotification()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
