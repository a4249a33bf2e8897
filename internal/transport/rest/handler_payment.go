package rest

import (
	"encoding/json"
	"net/http"

	"shopcore-be/internal/order"
	"shopcore-be/internal/payment"
)

func (s *Server) handleStartPayment(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	desc, err := s.payments.StartPayment(r.Context(), uid)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, desc)
}

type paymentSuccessRequest struct {
	RazorpayOrderID   string             `json:"razorpay_order_id"`
	RazorpayPaymentID string             `json:"razorpay_payment_id"`
	RazorpaySignature string             `json:"razorpay_signature"`
	ShippingAddress   order.ShippingInfo `json:"shipping_address"`
}

func (s *Server) handlePaymentSuccess(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	var req paymentSuccessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}
	if req.RazorpayOrderID == "" || req.RazorpayPaymentID == "" || req.RazorpaySignature == "" {
		writeError(w, http.StatusBadRequest, "bad_request", "missing payment callback fields")
		return
	}

	o, err := s.payments.HandleSuccess(r.Context(), uid, payment.SuccessParams{
		ProviderOrderID: req.RazorpayOrderID,
		PaymentID:       req.RazorpayPaymentID,
		Signature:       req.RazorpaySignature,
		Shipping:        req.ShippingAddress,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":   "success",
		"order_id": o.ID,
	})
}
