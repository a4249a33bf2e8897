package rest

import (
	"encoding/json"
	"net/http"

	"shopcore-be/internal/order"
)

type processOrderRequest struct {
	Shipping *order.ShippingInfo `json:"shipping"`
}

func (s *Server) handleProcessOrder(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	var req processOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}

	o, err := s.orders.ProcessOrder(r.Context(), uid, req.Shipping)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, order.ToOrderView(o))
}

func (s *Server) handleListOrders(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	orders, err := s.orders.ListCompleted(r.Context(), uid)
	if err != nil {
		respondError(w, r, err)
		return
	}

	views := make([]order.OrderView, 0, len(orders))
	for i := range orders {
		views = append(views, order.ToOrderView(&orders[i]))
	}

	writeJSON(w, http.StatusOK, views)
}
