package payments

import (
	"context"

	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/client"

	"github.com/gamingleague/tournaments-web/internal/model"
)

// CheckoutParams describes one hosted-checkout redirect: a single one-time
// payment for the configured price.
type CheckoutParams struct {
	PriceID    string
	Quantity   int64
	SuccessURL string
	CancelURL  string
}

// CheckoutCreator starts a hosted checkout and returns its URL. Control
// leaves the application once the browser is redirected there; the provider
// redirects back to the success/cancel URLs out-of-band and no webhook is
// consumed by this layer.
type CheckoutCreator interface {
	CreateCheckout(ctx context.Context, params CheckoutParams) (string, error)
}

// StripeCheckout creates Stripe Checkout Sessions in payment mode.
type StripeCheckout struct {
	api *client.API
}

var _ CheckoutCreator = (*StripeCheckout)(nil)

// NewStripeCheckout creates a checkout client with the given secret key.
func NewStripeCheckout(secretKey string) *StripeCheckout {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeCheckout{api: api}
}

func (s *StripeCheckout) CreateCheckout(ctx context.Context, params CheckoutParams) (string, error) {
	quantity := params.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	sessionParams := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(params.PriceID),
				Quantity: stripe.Int64(quantity),
			},
		},
		SuccessURL: stripe.String(params.SuccessURL),
		CancelURL:  stripe.String(params.CancelURL),
	}
	sessionParams.Context = ctx

	sess, err := s.api.CheckoutSessions.New(sessionParams)
	if err != nil {
		return "", asRemote(err)
	}
	return sess.URL, nil
}

// asRemote converts a Stripe error into the shared RemoteError taxonomy,
// keeping the provider's message for the user.
func asRemote(err error) error {
	if stripeErr, ok := err.(*stripe.Error); ok {
		return &model.RemoteError{
			Message: stripeErr.Msg,
			Status:  stripeErr.HTTPStatusCode,
		}
	}
	return &model.RemoteError{Message: err.Error()}
}
