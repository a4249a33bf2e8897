package payment

import "context"

// Provider abstracts the payment gateway. The production implementation
// talks to Razorpay; tests swap in a fake.
type Provider interface {
	// CreateIntent registers an order with the provider. amount is in
	// currency subunits.
	CreateIntent(ctx context.Context, amount int64, currency, receipt string) (*Intent, error)
	// VerifySignature checks the checkout callback signature against the
	// provider order and payment ids.
	VerifySignature(providerOrderID, paymentID, signature string) error
	// Key returns the public key id the checkout widget is opened with.
	Key() string
}
