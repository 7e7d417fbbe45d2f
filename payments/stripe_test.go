package payments

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCreateIntentSendsFormAndIdempotencyKey(t *testing.T) {
	var gotPath, gotKey, gotAmount, gotCurrency, gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("Idempotency-Key")
		gotAuth = r.Header.Get("Authorization")
		r.ParseForm()
		gotAmount = r.FormValue("amount")
		gotCurrency = r.FormValue("currency")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"pi_123","client_secret":"pi_123_secret","status":"requires_payment_method","amount":2498,"currency":"usd"}`))
	}))
	defer srv.Close()

	client := NewStripeClient("sk_test_abc")
	client.BaseURL = srv.URL

	intent, err := client.CreateIntent(context.Background(), 2498, "usd", "key-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/v1/payment_intents" {
		t.Fatalf("unexpected path %q", gotPath)
	}
	if gotKey != "key-1" {
		t.Fatalf("expected idempotency key, got %q", gotKey)
	}
	if gotAuth != "Bearer sk_test_abc" {
		t.Fatalf("unexpected auth header %q", gotAuth)
	}
	if gotAmount != "2498" || gotCurrency != "usd" {
		t.Fatalf("unexpected form values amount=%q currency=%q", gotAmount, gotCurrency)
	}
	if intent.ID != "pi_123" || intent.ClientSecret != "pi_123_secret" {
		t.Fatalf("unexpected intent %+v", intent)
	}
}

func TestConfirmIntentPostsPaymentMethod(t *testing.T) {
	var gotPath, gotMethod string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		r.ParseForm()
		gotMethod = r.FormValue("payment_method")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"pi_123","status":"succeeded","amount":2498,"currency":"usd"}`))
	}))
	defer srv.Close()

	client := NewStripeClient("sk_test_abc")
	client.BaseURL = srv.URL

	intent, err := client.ConfirmIntent(context.Background(), "pi_123", "pm_card")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/v1/payment_intents/pi_123/confirm" {
		t.Fatalf("unexpected path %q", gotPath)
	}
	if gotMethod != "pm_card" {
		t.Fatalf("unexpected payment method %q", gotMethod)
	}
	if intent.Status != StatusSucceeded {
		t.Fatalf("unexpected status %q", intent.Status)
	}
}

func TestProviderErrorCarriesOnlyMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte(`{"error":{"type":"card_error","code":"card_declined","message":"Your card was declined."}}`))
	}))
	defer srv.Close()

	client := NewStripeClient("sk_test_abc")
	client.BaseURL = srv.URL

	_, err := client.ConfirmIntent(context.Background(), "pi_123", "pm_card")
	var providerErr *ProviderError
	if !errors.As(err, &providerErr) {
		t.Fatalf("expected ProviderError, got %v", err)
	}
	if providerErr.Message != "Your card was declined." {
		t.Fatalf("unexpected message %q", providerErr.Message)
	}
}

func TestNon200WithoutErrorBodyIsProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewStripeClient("sk_test_abc")
	client.BaseURL = srv.URL

	_, err := client.CreateIntent(context.Background(), 100, "usd", "key-1")
	var providerErr *ProviderError
	if !errors.As(err, &providerErr) {
		t.Fatalf("expected ProviderError, got %v", err)
	}
}
