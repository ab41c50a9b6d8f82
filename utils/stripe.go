package utils

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/checkout/session"
)

// CheckoutClient creates hosted subscription checkout sessions. The
// session itself lives entirely on the payment provider's side; we only
// hold the plan-to-price mapping and the redirect base URL.
type CheckoutClient interface {
	CreateSubscriptionSession(ctx context.Context, plan string) (string, error)
}

type stripeClient struct {
	baseURL      string
	priceMonthly string
	priceYearly  string
}

func NewStripeClient() (CheckoutClient, error) {
	key := os.Getenv("STRIPE_SECRET_KEY")
	if key == "" {
		return nil, errors.New("STRIPE_SECRET_KEY is not set")
	}
	stripe.Key = key

	baseURL := os.Getenv("PUBLIC_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:3000"
	}

	monthly := os.Getenv("STRIPE_PRICE_MONTHLY")
	yearly := os.Getenv("STRIPE_PRICE_YEARLY")
	if monthly == "" || yearly == "" {
		return nil, errors.New("STRIPE_PRICE_MONTHLY and STRIPE_PRICE_YEARLY must be set")
	}

	return &stripeClient{
		baseURL:      baseURL,
		priceMonthly: monthly,
		priceYearly:  yearly,
	}, nil
}

func (s *stripeClient) CreateSubscriptionSession(ctx context.Context, plan string) (string, error) {
	var priceID string
	switch plan {
	case "monthly":
		priceID = s.priceMonthly
	case "yearly":
		priceID = s.priceYearly
	default:
		return "", fmt.Errorf("unknown plan %q", plan)
	}

	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{Price: stripe.String(priceID), Quantity: stripe.Int64(1)},
		},
		// session_id comes back on success so the subscription can be verified later
		SuccessURL: stripe.String(s.baseURL + "/success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:  stripe.String(s.baseURL + "/subscribe"),
	}
	params.Context = ctx

	sess, err := session.New(params)
	if err != nil {
		return "", err
	}
	return sess.URL, nil
}
