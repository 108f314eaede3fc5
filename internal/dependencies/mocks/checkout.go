package mocks

import (
	"context"

	"github.com/gamingleague/tournaments-web/internal/payments"
)

// MockCheckout records checkout creations instead of calling the provider.
type MockCheckout struct {
	URL   string
	Err   error
	Calls []payments.CheckoutParams
}

var _ payments.CheckoutCreator = (*MockCheckout)(nil)

// NewMockCheckout creates a MockCheckout returning the given hosted URL.
func NewMockCheckout(url string) *MockCheckout {
	return &MockCheckout{URL: url}
}

func (c *MockCheckout) CreateCheckout(_ context.Context, params payments.CheckoutParams) (string, error) {
	c.Calls = append(c.Calls, params)
	if c.Err != nil {
		return "", c.Err
	}
	return c.URL, nil
}
