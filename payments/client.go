package payments

import "context"

// Intent is the provider-side record of an in-progress charge attempt.
type Intent struct {
	ID           string
	ClientSecret string
	Status       string
	AmountCents  int64
	Currency     string
}

const StatusSucceeded = "succeeded"

// Client is the payment-provider boundary. Constructed once at startup
// and injected into the checkout flow.
type Client interface {
	CreateIntent(ctx context.Context, amountCents int64, currency, idempotencyKey string) (Intent, error)
	ConfirmIntent(ctx context.Context, intentID, paymentMethod string) (Intent, error)
}

// ProviderError carries only the provider's human-readable message,
// never internal response state.
type ProviderError struct {
	Message string
}

func (e *ProviderError) Error() string {
	return "payment provider error: " + e.Message
}
