package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/renatoambrosi/quizbacken/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/merchantorder"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// requestTimeout bounds every processor call. On expiry the caller gets
// ErrProcessorUnavailable; the gateway never retries on its own.
const requestTimeout = 5 * time.Second

// MercadoPagoGateway implements interfaces.IPaymentProcessor on top of the
// official SDK. Requests travel through the boundary as raw JSON so varying
// integration schemas never require a gateway change.

type MercadoPagoGateway struct {
	client      payment.Client
	orderClient merchantorder.Client
	mockMode    bool
}

var _ interfaces.IPaymentProcessor = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	// The custom client owns the timeout ceiling and stamps a fresh
	// single-use idempotency key on every outbound write.
	httpClient := &http.Client{
		Timeout:   requestTimeout,
		Transport: &idempotencyKeyTransport{next: http.DefaultTransport},
	}

	cfg, err := config.New(accessToken, config.WithHTTPClient(httpClient))
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{
		client:      payment.NewClient(cfg),
		orderClient: merchantorder.NewClient(cfg),
	}, nil
}

// idempotencyKeyTransport sets X-Idempotency-Key to a random single-use
// value per outbound write, so a processor-side retry of the same HTTP
// request is duplicate-suppressed while distinct create attempts never
// share a key.

type idempotencyKeyTransport struct {
	next http.RoundTripper
}

func (t *idempotencyKeyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Method == http.MethodPost || req.Method == http.MethodPut {
		req.Header.Set("X-Idempotency-Key", uuid.NewString())
	}
	return t.next.RoundTrip(req)
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (interfaces.ProcessorResult, error) {
	if g != nil && g.mockMode {
		return g.mockCreate(requestPayload)
	}

	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return interfaces.ProcessorResult{}, ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[payment][gateway] create start payload_len=%d", len(requestPayload))

	var req payment.Request
	if err := json.Unmarshal(requestPayload, &req); err != nil {
		log.Printf("[payment][gateway] payload unmarshal failed err=%v", err)
		return interfaces.ProcessorResult{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Printf("[payment][gateway] sdk create failed err=%v", err)
		return interfaces.ProcessorResult{}, mapProcessorError(err)
	}

	result, err := decodeProcessorPayment(resp)
	if err != nil {
		log.Printf("[payment][gateway] response decode failed err=%v", err)
		return interfaces.ProcessorResult{}, err
	}
	log.Printf("[payment][gateway] create success provider_payment_id=%s provider_status=%s", result.PaymentID, result.Status)

	return result, nil
}

func (g *MercadoPagoGateway) GetPayment(ctx context.Context, paymentID string) (interfaces.ProcessorResult, error) {
	if g != nil && g.mockMode {
		return g.mockGet(paymentID)
	}

	if g == nil || g.client == nil {
		return interfaces.ProcessorResult{}, ErrMercadoPagoGatewayNotConfigured
	}

	id, err := strconv.Atoi(strings.TrimSpace(paymentID))
	if err != nil {
		log.Printf("[payment][gateway] non-numeric payment id id=%q", paymentID)
		return interfaces.ProcessorResult{}, interfaces.ErrPaymentNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	resp, err := g.client.Get(ctx, id)
	if err != nil {
		log.Printf("[payment][gateway] sdk get failed payment_id=%d err=%v", id, err)
		return interfaces.ProcessorResult{}, mapProcessorError(err)
	}

	result, err := decodeProcessorPayment(resp)
	if err != nil {
		return interfaces.ProcessorResult{}, err
	}
	log.Printf("[payment][gateway] get success payment_id=%s status=%s", result.PaymentID, result.Status)

	return result, nil
}

func (g *MercadoPagoGateway) GetMerchantOrder(ctx context.Context, orderID string) (interfaces.OrderResult, error) {
	if g != nil && g.mockMode {
		return interfaces.OrderResult{OrderID: orderID, Status: "closed", OrderStatus: "paid"}, nil
	}

	if g == nil || g.orderClient == nil {
		return interfaces.OrderResult{}, ErrMercadoPagoGatewayNotConfigured
	}

	id, err := strconv.Atoi(strings.TrimSpace(orderID))
	if err != nil {
		return interfaces.OrderResult{}, interfaces.ErrPaymentNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	resp, err := g.orderClient.Get(ctx, id)
	if err != nil {
		log.Printf("[payment][gateway] sdk merchant order get failed order_id=%d err=%v", id, err)
		return interfaces.OrderResult{}, mapProcessorError(err)
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		return interfaces.OrderResult{}, err
	}

	var decoded struct {
		ID          json.Number       `json:"id"`
		Status      string            `json:"status"`
		OrderStatus string            `json:"order_status"`
		Payments    []json.RawMessage `json:"payments"`
	}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return interfaces.OrderResult{}, err
	}

	return interfaces.OrderResult{
		OrderID:      decoded.ID.String(),
		Status:       decoded.Status,
		OrderStatus:  decoded.OrderStatus,
		PaymentCount: len(decoded.Payments),
		Raw:          raw,
	}, nil
}

// decodeProcessorPayment flattens the SDK response through its JSON form
// into the processor-agnostic result, keeping the gateway independent of
// SDK struct details beyond the wire contract.
func decodeProcessorPayment(resp any) (interfaces.ProcessorResult, error) {
	raw, err := json.Marshal(resp)
	if err != nil {
		return interfaces.ProcessorResult{}, err
	}
	return decodeProcessorPaymentRaw(raw)
}

func decodeProcessorPaymentRaw(raw json.RawMessage) (interfaces.ProcessorResult, error) {
	var p struct {
		ID                 json.Number    `json:"id"`
		Status             string         `json:"status"`
		StatusDetail       string         `json:"status_detail"`
		PaymentMethodID    string         `json:"payment_method_id"`
		PaymentTypeID      string         `json:"payment_type_id"`
		TransactionAmount  float64        `json:"transaction_amount"`
		ExternalReference  string         `json:"external_reference"`
		Installments       int            `json:"installments"`
		DateCreated        string         `json:"date_created"`
		DateApproved       string         `json:"date_approved"`
		DateOfExpiration   string         `json:"date_of_expiration"`
		Metadata           map[string]any `json:"metadata"`
		PointOfInteraction struct {
			TransactionData struct {
				QRCode       string `json:"qr_code"`
				QRCodeBase64 string `json:"qr_code_base64"`
				TicketURL    string `json:"ticket_url"`
			} `json:"transaction_data"`
		} `json:"point_of_interaction"`
	}
	if err := json.Unmarshal(raw, &p); err != nil {
		return interfaces.ProcessorResult{}, err
	}

	return interfaces.ProcessorResult{
		PaymentID:         p.ID.String(),
		Status:            p.Status,
		StatusDetail:      p.StatusDetail,
		PaymentMethodID:   p.PaymentMethodID,
		PaymentTypeID:     p.PaymentTypeID,
		TransactionAmount: p.TransactionAmount,
		ExternalReference: p.ExternalReference,
		Installments:      p.Installments,
		DateCreated:       sanitizeDate(p.DateCreated),
		DateApproved:      sanitizeDate(p.DateApproved),
		DateOfExpiration:  sanitizeDate(p.DateOfExpiration),
		Metadata:          p.Metadata,
		QRCode:            p.PointOfInteraction.TransactionData.QRCode,
		QRCodeBase64:      p.PointOfInteraction.TransactionData.QRCodeBase64,
		TicketURL:         p.PointOfInteraction.TransactionData.TicketURL,
		Raw:               raw,
	}, nil
}

// Zero time.Time values marshal as year-one timestamps; treat them as absent.
func sanitizeDate(s string) string {
	if strings.HasPrefix(s, "0001-01-01") {
		return ""
	}
	return s
}

// mapProcessorError folds SDK errors into the adapter taxonomy: transport
// problems become ErrProcessorUnavailable, a 404 becomes ErrPaymentNotFound
// and a 4xx API response becomes ProcessorRejectedError.
func mapProcessorError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return interfaces.ErrProcessorUnavailable
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return interfaces.ErrProcessorUnavailable
	}

	if apiErr, ok := parseAPIError(err.Error()); ok {
		switch {
		case apiErr.Status == http.StatusNotFound:
			return interfaces.ErrPaymentNotFound
		case apiErr.Status >= 400 && apiErr.Status < 500:
			code, description := apiErr.causeCodeAndDescription()
			return &interfaces.ProcessorRejectedError{Code: code, Description: description}
		default:
			return interfaces.ErrProcessorUnavailable
		}
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "not found") || strings.Contains(msg, "\"status\":404") {
		return interfaces.ErrPaymentNotFound
	}
	if strings.Contains(msg, "connection refused") || strings.Contains(msg, "timeout") {
		return interfaces.ErrProcessorUnavailable
	}
	return err
}

type mpAPIError struct {
	Message string `json:"message"`
	Error   string `json:"error"`
	Status  int    `json:"status"`
	Cause   []struct {
		Code        json.Number `json:"code"`
		Description string      `json:"description"`
	} `json:"cause"`
}

func (e *mpAPIError) causeCodeAndDescription() (string, string) {
	if len(e.Cause) > 0 {
		description := e.Cause[0].Description
		if description == "" {
			description = e.Message
		}
		return e.Cause[0].Code.String(), description
	}
	if e.Message != "" {
		return e.Error, e.Message
	}
	return e.Error, e.Error
}

// The SDK embeds the raw API response body in the error string; recover it.
func parseAPIError(msg string) (*mpAPIError, bool) {
	start := strings.Index(msg, "{")
	if start < 0 {
		return nil, false
	}

	var apiErr mpAPIError
	if err := json.Unmarshal([]byte(msg[start:]), &apiErr); err != nil {
		return nil, false
	}
	if apiErr.Status == 0 {
		return nil, false
	}
	return &apiErr, true
}

func (g *MercadoPagoGateway) mockCreate(requestPayload json.RawMessage) (interfaces.ProcessorResult, error) {
	log.Printf("[payment][gateway] mock create start payload_len=%d", len(requestPayload))

	resp := map[string]any{}
	if len(requestPayload) > 0 && json.Valid(requestPayload) {
		_ = json.Unmarshal(requestPayload, &resp)
	}

	now := time.Now().UTC()
	id := now.UnixNano()
	resp["id"] = id
	resp["date_created"] = now.Format(time.RFC3339Nano)

	if method, _ := resp["payment_method_id"].(string); method == "pix" {
		resp["status"] = "pending"
		resp["status_detail"] = "pending_waiting_transfer"
		resp["payment_type_id"] = "bank_transfer"
		resp["point_of_interaction"] = map[string]any{
			"transaction_data": map[string]any{
				"qr_code":        fmt.Sprintf("00020126MOCKQR%d", id),
				"qr_code_base64": "bW9jay1xci1jb2Rl",
				"ticket_url":     fmt.Sprintf("https://mock.mercadopago.local/ticket/%d", id),
			},
		}
	} else {
		resp["status"] = "approved"
		resp["status_detail"] = "accredited"
		resp["payment_type_id"] = "credit_card"
		resp["date_approved"] = now.Format(time.RFC3339Nano)
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[payment][gateway] mock response marshal failed err=%v", err)
		return interfaces.ProcessorResult{}, err
	}

	result, err := decodeProcessorPaymentRaw(raw)
	if err != nil {
		return interfaces.ProcessorResult{}, err
	}
	log.Printf("[payment][gateway] mock create success provider_payment_id=%s provider_status=%s", result.PaymentID, result.Status)
	return result, nil
}

func (g *MercadoPagoGateway) mockGet(paymentID string) (interfaces.ProcessorResult, error) {
	if _, err := strconv.ParseInt(strings.TrimSpace(paymentID), 10, 64); err != nil {
		return interfaces.ProcessorResult{}, interfaces.ErrPaymentNotFound
	}

	raw, _ := json.Marshal(map[string]any{
		"id":                json.Number(strings.TrimSpace(paymentID)),
		"status":            "approved",
		"status_detail":     "accredited",
		"payment_method_id": "pix",
		"payment_type_id":   "bank_transfer",
		"date_approved":     time.Now().UTC().Format(time.RFC3339Nano),
	})
	return decodeProcessorPaymentRaw(raw)
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
