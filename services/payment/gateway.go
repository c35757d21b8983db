package payment

import (
	"context"
	"errors"

	"legalassist/models"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// ErrGatewayNotConfigured is returned when no payment provider key is set.
var ErrGatewayNotConfigured = errors.New("payment gateway not configured")

// Intent is a provider-side payment awaiting confirmation by the client.
type Intent struct {
	ID           string
	ClientSecret string
	Status       string
}

// PaymentGateway creates and inspects card payments.
type PaymentGateway interface {
	CreateIntent(ctx context.Context, amountCents int64, currency string, metadata map[string]string) (*Intent, error)
	GetIntent(ctx context.Context, id string) (*Intent, error)
}

// StripeGateway talks to Stripe using the package-level stripe.Key.
type StripeGateway struct{}

func NewStripeGateway(key string) *StripeGateway {
	stripe.Key = key
	return &StripeGateway{}
}

func (g *StripeGateway) CreateIntent(ctx context.Context, amountCents int64, currency string, metadata map[string]string) (*Intent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountCents),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, err
	}
	return &Intent{ID: pi.ID, ClientSecret: pi.ClientSecret, Status: string(pi.Status)}, nil
}

func (g *StripeGateway) GetIntent(ctx context.Context, id string) (*Intent, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	pi, err := paymentintent.Get(id, params)
	if err != nil {
		return nil, err
	}
	return &Intent{ID: pi.ID, Status: string(pi.Status)}, nil
}

// UnconfiguredGateway rejects every call.
type UnconfiguredGateway struct{}

func (UnconfiguredGateway) CreateIntent(context.Context, int64, string, map[string]string) (*Intent, error) {
	return nil, ErrGatewayNotConfigured
}

func (UnconfiguredGateway) GetIntent(context.Context, string) (*Intent, error) {
	return nil, ErrGatewayNotConfigured
}

// transactionStatus maps a provider intent status onto a transaction status.
func transactionStatus(intentStatus string) string {
	switch stripe.PaymentIntentStatus(intentStatus) {
	case stripe.PaymentIntentStatusSucceeded:
		return models.TransactionCompleted
	case stripe.PaymentIntentStatusCanceled, stripe.PaymentIntentStatusRequiresPaymentMethod:
		return models.TransactionFailed
	default:
		return models.TransactionPending
	}
}
