package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultBaseURL = "https://api.stripe.com"

// StripeClient talks to the Stripe PaymentIntents REST API. Calls are
// bounded by the client timeout and never retried automatically: a
// timed-out create must surface to the user rather than risk a
// duplicate charge.
type StripeClient struct {
	BaseURL string

	secretKey string
	http      *resty.Client
}

func NewStripeClient(secretKey string) *StripeClient {
	return &StripeClient{
		BaseURL:   defaultBaseURL,
		secretKey: secretKey,
		http:      resty.New().SetTimeout(30 * time.Second),
	}
}

type intentResponse struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Status       string `json:"status"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
	Error        *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *StripeClient) CreateIntent(ctx context.Context, amountCents int64, currency, idempotencyKey string) (Intent, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(c.secretKey).
		SetHeader("Idempotency-Key", idempotencyKey).
		SetFormData(map[string]string{
			"amount":   strconv.FormatInt(amountCents, 10),
			"currency": currency,
		}).
		Post(c.BaseURL + "/v1/payment_intents")

	if err != nil {
		return Intent{}, fmt.Errorf("payment intent request failed: %w", err)
	}

	return parseIntent(resp)
}

func (c *StripeClient) ConfirmIntent(ctx context.Context, intentID, paymentMethod string) (Intent, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(c.secretKey).
		SetFormData(map[string]string{
			"payment_method": paymentMethod,
		}).
		Post(c.BaseURL + "/v1/payment_intents/" + intentID + "/confirm")

	if err != nil {
		return Intent{}, fmt.Errorf("payment confirm request failed: %w", err)
	}

	return parseIntent(resp)
}

func parseIntent(resp *resty.Response) (Intent, error) {
	var body intentResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return Intent{}, fmt.Errorf("failed to parse provider response: %w", err)
	}

	if body.Error != nil {
		return Intent{}, &ProviderError{Message: body.Error.Message}
	}

	if resp.StatusCode() != 200 {
		return Intent{}, &ProviderError{Message: fmt.Sprintf("provider returned status %d", resp.StatusCode())}
	}

	return Intent{
		ID:           body.ID,
		ClientSecret: body.ClientSecret,
		Status:       body.Status,
		AmountCents:  body.Amount,
		Currency:     body.Currency,
	}, nil
}
