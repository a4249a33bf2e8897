package payment

import "shopcore-be/internal/order"

// Intent is a payment order registered with the provider before the
// customer is sent to checkout.
type Intent struct {
	ProviderOrderID string
	Amount          int64
	Currency        string
	Receipt         string
}

// Prefill seeds the provider checkout widget with customer details.
type Prefill struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Contact string `json:"contact"`
}

// IntentDescriptor is what the frontend needs to open the checkout
// widget: the provider-side order id, the public key and the amount in
// currency subunits.
type IntentDescriptor struct {
	OrderID     string  `json:"order_id"`
	RazorpayKey string  `json:"razorpay_key"`
	Amount      int64   `json:"amount"`
	Currency    string  `json:"currency"`
	Name        string  `json:"name"`
	Prefill     Prefill `json:"prefill"`
}

// SuccessParams is the callback payload posted by the checkout widget
// after the customer pays.
type SuccessParams struct {
	ProviderOrderID string
	PaymentID       string
	Signature       string
	Shipping        order.ShippingInfo
}
