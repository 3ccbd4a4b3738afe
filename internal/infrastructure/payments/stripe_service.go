package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/seabasket/seabasket-api/domain"
)

// StripeServiceImpl implements domain.PaymentService against the
// Stripe checkout-sessions API. The request is form-encoded and
// authenticated with the secret key; the response carries the hosted
// payment page URL.
type StripeServiceImpl struct {
	apiURL     string
	secretKey  string
	successURL string
	cancelURL  string
	currency   string
	httpClient *http.Client
}

// NewStripeService creates a new payment-session client. apiURL is
// normally https://api.stripe.com; tests point it at a local server.
func NewStripeService(apiURL, secretKey, successURL, cancelURL string) domain.PaymentService {
	return &StripeServiceImpl{
		apiURL:     strings.TrimRight(apiURL, "/"),
		secretKey:  secretKey,
		successURL: successURL,
		cancelURL:  cancelURL,
		currency:   "usd",
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

type checkoutSessionResponse struct {
	ID    string `json:"id"`
	URL   string `json:"url"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// CreateCheckoutSession implements domain.PaymentService
func (s *StripeServiceImpl) CreateCheckoutSession(ctx context.Context, ref string, items []domain.PaymentLineItem) (string, error) {
	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("client_reference_id", ref)
	form.Set("success_url", s.successURL)
	form.Set("cancel_url", s.cancelURL)
	for i, item := range items {
		prefix := fmt.Sprintf("line_items[%d]", i)
		form.Set(prefix+"[price_data][currency]", s.currency)
		form.Set(prefix+"[price_data][product_data][name]", item.Title)
		form.Set(prefix+"[price_data][unit_amount]", strconv.FormatInt(toMinorUnits(item.UnitPrice), 10))
		form.Set(prefix+"[quantity]", strconv.Itoa(item.Quantity))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		s.apiURL+"/v1/checkout/sessions", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to build payment request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+s.secretKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to reach payment provider: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read payment response: %w", err)
	}

	var session checkoutSessionResponse
	if err := json.Unmarshal(body, &session); err != nil {
		return "", fmt.Errorf("failed to parse payment response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		if session.Error != nil {
			return "", fmt.Errorf("payment provider error: %s", session.Error.Message)
		}
		return "", fmt.Errorf("payment provider error (%d): %s", resp.StatusCode, string(body))
	}
	if session.URL == "" {
		return "", fmt.Errorf("payment provider returned empty checkout URL")
	}
	return session.URL, nil
}

// toMinorUnits converts a price in major units to cents
func toMinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}
