package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"shopcore-be/internal/logger"
	"shopcore-be/internal/order"
	"shopcore-be/internal/payment"
	"shopcore-be/internal/product"
	"shopcore-be/internal/user"
	"shopcore-be/internal/wishlist"

	"go.uber.org/zap"
)

type errorBody struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, details string) {
	writeJSON(w, status, errorBody{Error: code, Details: details})
}

// respondError maps domain sentinels onto the API error taxonomy. Anything
// unrecognized is a 500 with the underlying message.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, user.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "unauthorized", "invalid username or password")
	case errors.Is(err, user.ErrUsernameExists):
		writeError(w, http.StatusBadRequest, "bad_request", "username already taken")
	case errors.Is(err, user.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "not_found", "user not found")
	case errors.Is(err, product.ErrProductNotFound):
		writeError(w, http.StatusNotFound, "not_found", "product not found")
	case errors.Is(err, order.ErrNoActiveOrder), errors.Is(err, payment.ErrNoActiveCart):
		writeError(w, http.StatusNotFound, "not_found", "no active cart")
	case errors.Is(err, order.ErrOrderNotFound):
		writeError(w, http.StatusNotFound, "not_found", "order not found")
	case errors.Is(err, order.ErrShippingRequired):
		writeError(w, http.StatusBadRequest, "bad_request", "shipping address is required")
	case errors.Is(err, wishlist.ErrAlreadySaved):
		writeError(w, http.StatusBadRequest, "bad_request", "product already in wishlist")
	case errors.Is(err, wishlist.ErrNotSaved):
		writeError(w, http.StatusNotFound, "not_found", "product not in wishlist")
	case errors.Is(err, payment.ErrVerificationFailed):
		// The cause stays in the logs; the client learns nothing useful.
		writeError(w, http.StatusBadRequest, "payment_verification_failed", "payment verification failed")
	default:
		logger.FromCtx(r.Context()).Error("request failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
	}
}
