package services

import (
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// PaymentService wraps the Stripe client for the one call this API makes.
type PaymentService struct{}

func NewPaymentService(secretKey string) *PaymentService {
	stripe.Key = secretKey
	return &PaymentService{}
}

// MinorUnits converts a decimal price to an integer amount of cents,
// truncating any sub-cent remainder.
func MinorUnits(price float64) int64 {
	return int64(price * 100)
}

// CreatePaymentIntent requests a card-only USD payment intent for the given
// amount in cents and returns the client secret the frontend needs to
// complete the charge.
func (s *PaymentService) CreatePaymentIntent(amount int64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", err
	}

	return intent.ClientSecret, nil
}
