package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/renatoambrosi/quizbacken/internal/domain/entities"
	"github.com/renatoambrosi/quizbacken/internal/usecase/interfaces"
)

const defaultBrevoBaseURL = "https://api.brevo.com/v3"

// BrevoEmailNotifier sends the customer "payment approved" email through the
// Brevo transactional API. Without an API key it is a configured no-op, so
// local environments run without email credentials.

type BrevoEmailNotifier struct {
	apiKey      string
	senderEmail string
	resultURL   string
	baseURL     string
	httpClient  *http.Client
}

var _ interfaces.INotifier = (*BrevoEmailNotifier)(nil)

func NewBrevoEmailNotifier(apiKey, senderEmail, resultURL string, httpClient *http.Client) *BrevoEmailNotifier {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &BrevoEmailNotifier{
		apiKey:      apiKey,
		senderEmail: senderEmail,
		resultURL:   resultURL,
		baseURL:     defaultBrevoBaseURL,
		httpClient:  httpClient,
	}
}

func (n *BrevoEmailNotifier) Name() string { return "brevo_email" }

func (n *BrevoEmailNotifier) NotifyApproved(ctx context.Context, notification entities.ApprovedNotification) error {
	if n.apiKey == "" || notification.CustomerEmail == "" {
		log.Printf("[notify][email] skipped, missing api key or customer email external_reference=%s", notification.ExternalReference)
		return nil
	}

	resultLink := fmt.Sprintf("%s?uid=%s", n.resultURL, notification.ExternalReference)
	amount := formatBRL(notification.Amount.StringFixed(2))

	payload := map[string]any{
		"sender": map[string]string{
			"name":  "Suellen Seragi - Teste de Prosperidade",
			"email": n.senderEmail,
		},
		"to": []map[string]string{
			{"email": notification.CustomerEmail, "name": "Cliente"},
		},
		"subject":     "🎉 Acesse seu Resultado do Teste de Prosperidade!",
		"htmlContent": successEmailHTML(resultLink, amount),
		"tags":        []string{"pix-aprovado", "resultado-liberado"},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.baseURL+"/smtp/email", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("api-key", n.apiKey)
	req.Header.Set("content-type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("brevo returned %d: %s", resp.StatusCode, string(detail))
	}

	log.Printf("[notify][email] sent to=%s external_reference=%s", notification.CustomerEmail, notification.ExternalReference)
	return nil
}

func formatBRL(fixed string) string {
	return strings.Replace(fixed, ".", ",", 1)
}

func successEmailHTML(resultLink, amount string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>PIX Aprovado - Teste de Prosperidade</title></head>
<body style="font-family: Arial, sans-serif; color: #333; background-color: #f5f5f5; margin: 0; padding: 0;">
  <div style="max-width: 600px; margin: 0 auto; background: white; border-radius: 8px; overflow: hidden;">
    <div style="background: linear-gradient(135deg, #52c41a, #389e0d); color: white; padding: 40px 20px; text-align: center;">
      <div style="font-size: 64px;">🎉</div>
      <h1>PIX Aprovado!</h1>
      <p>Seu pagamento foi confirmado com sucesso</p>
    </div>
    <div style="padding: 40px 30px; text-align: center;">
      <h2>Parabéns! Seu acesso foi liberado</h2>
      <div style="font-size: 24px; color: #52c41a; font-weight: bold; margin: 20px 0;">R$ %s</div>
      <p>Seu pagamento via PIX foi processado e confirmado. Agora você pode acessar seu resultado personalizado do <strong>Teste de Prosperidade</strong>.</p>
      <a href="%s" style="display: inline-block; background: #1890ff; color: white; padding: 18px 40px; text-decoration: none; border-radius: 8px; font-weight: bold; font-size: 18px; margin: 30px 0;">✨ Ver Meu Resultado Agora ✨</a>
      <p style="margin-top: 30px; font-size: 14px; color: #666;"><strong>Link direto:</strong><br><a href="%s" style="color: #1890ff;">%s</a></p>
    </div>
    <div style="background: #f8f9fa; padding: 20px; text-align: center; font-size: 14px; color: #666;">
      <p><strong>Suellen Seragi - Teste de Prosperidade</strong></p>
      <p>Este é um email automático de confirmação de pagamento</p>
    </div>
  </div>
</body>
</html>`, amount, resultLink, resultLink, resultLink)
}
