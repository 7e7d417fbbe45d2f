package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/hineshmeraka/epharmacy-api/models"
	"github.com/hineshmeraka/epharmacy-api/payments"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CartReader is the slice of the cart store checkout needs.
type CartReader interface {
	Total(userID uint) (decimal.Decimal, error)
}

type IntentStore interface {
	LatestOpen(userID uint) (models.CheckoutIntent, error)
	Supersede(userID uint) error
	Save(intent *models.CheckoutIntent) error
	FindBySecret(userID uint, clientSecret string) (models.CheckoutIntent, error)
	SetStatus(id uint, status string) error
}

type OrderCommitter interface {
	CommitPaid(userID uint) ([]models.Order, error)
}

// CheckoutService drives the payment flow: compute the cart total,
// open a payment intent with the provider, and on confirmed success
// materialize orders and clear the cart.
type CheckoutService struct {
	cart     CartReader
	intents  IntentStore
	orders   OrderCommitter
	provider payments.Client

	intentTTL time.Duration
	currency  string
}

func NewCheckoutService(db *gorm.DB, cart *CartService, provider payments.Client) *CheckoutService {
	return &CheckoutService{
		cart:      cart,
		intents:   &gormIntentStore{db: db},
		orders:    &gormOrderStore{db: db},
		provider:  provider,
		intentTTL: time.Hour,
		currency:  "usd",
	}
}

type ConfirmResult struct {
	Confirmed bool
	Orders    []models.Order
}

// Begin computes the cart total and returns an open payment intent for
// it. An existing open intent is reused when it is younger than the
// TTL and still matches the cart amount; otherwise it is superseded
// and a fresh intent is created, so a user never accumulates parallel
// charges.
func (s *CheckoutService) Begin(ctx context.Context, userID uint) (models.CheckoutIntent, error) {
	if userID == 0 {
		return models.CheckoutIntent{}, ErrNotAuthenticated
	}

	total, err := s.cart.Total(userID)
	if err != nil {
		return models.CheckoutIntent{}, err
	}
	if total.Sign() <= 0 {
		return models.CheckoutIntent{}, ErrEmptyCart
	}
	amountCents := total.Shift(2).Round(0).IntPart()

	existing, err := s.intents.LatestOpen(userID)
	switch {
	case err == nil:
		if existing.AmountCents == amountCents && time.Since(existing.CreatedAt) < s.intentTTL {
			return existing, nil
		}
		if err := s.intents.Supersede(userID); err != nil {
			return models.CheckoutIntent{}, err
		}
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return models.CheckoutIntent{}, err
	}

	created, err := s.provider.CreateIntent(ctx, amountCents, s.currency, uuid.NewString())
	if err != nil {
		return models.CheckoutIntent{}, err
	}

	intent := models.CheckoutIntent{
		UserID:       userID,
		IntentID:     created.ID,
		ClientSecret: created.ClientSecret,
		AmountCents:  amountCents,
		Currency:     s.currency,
		Status:       models.IntentStatusOpen,
	}
	if err := s.intents.Save(&intent); err != nil {
		return models.CheckoutIntent{}, err
	}
	return intent, nil
}

// Confirm drives an open intent to its terminal state. On provider
// success the user's cart becomes Paid orders and is cleared; if that
// commit fails after the charge was captured, the confirmation still
// succeeds and the inconsistency is logged for reconciliation. A
// terminal intent cannot be confirmed again.
func (s *CheckoutService) Confirm(ctx context.Context, userID uint, clientSecret, paymentMethod string) (ConfirmResult, error) {
	if userID == 0 {
		return ConfirmResult{}, ErrNotAuthenticated
	}

	intent, err := s.intents.FindBySecret(userID, clientSecret)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ConfirmResult{}, ErrIntentNotFound
		}
		return ConfirmResult{}, err
	}
	if intent.Status != models.IntentStatusOpen {
		return ConfirmResult{}, ErrIntentClosed
	}

	confirmed, err := s.provider.ConfirmIntent(ctx, intent.IntentID, paymentMethod)
	if err != nil {
		if statusErr := s.intents.SetStatus(intent.ID, models.IntentStatusFailed); statusErr != nil {
			log.Println("Failed to mark intent as failed:", statusErr)
		}
		return ConfirmResult{}, err
	}

	if confirmed.Status != payments.StatusSucceeded {
		if statusErr := s.intents.SetStatus(intent.ID, models.IntentStatusFailed); statusErr != nil {
			log.Println("Failed to mark intent as failed:", statusErr)
		}
		return ConfirmResult{Confirmed: false}, nil
	}

	if err := s.intents.SetStatus(intent.ID, models.IntentStatusConfirmed); err != nil {
		log.Printf("RECONCILE: intent %s confirmed by provider but not marked locally: %v", intent.IntentID, err)
	}

	orders, err := s.orders.CommitPaid(userID)
	if err != nil {
		// Payment is already captured; never fail the user here.
		log.Printf("RECONCILE: intent %s paid but cart commit failed for user %d: %v", intent.IntentID, userID, err)
		return ConfirmResult{Confirmed: true}, nil
	}

	return ConfirmResult{Confirmed: true, Orders: orders}, nil
}
