package payment

import "errors"

var (
	// ErrNoActiveCart is returned when payment is started without an open cart.
	ErrNoActiveCart = errors.New("no active cart to pay for")

	// ErrVerificationFailed covers every fault in the success callback:
	// bad signature, unknown provider order, storage failure. Callers get
	// one opaque failure and the cause stays in the logs.
	ErrVerificationFailed = errors.New("payment verification failed")
)
