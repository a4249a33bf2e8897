package rest

import (
	"encoding/json"
	"net/http"

	"shopcore-be/internal/order"
	"shopcore-be/internal/utils"
)

// userID pulls the authenticated user out of the context. The auth
// middleware guarantees it is set on protected routes.
func userID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "missing user context")
	}
	return id, ok
}

func (s *Server) handleGetCart(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	cart, err := s.orders.GetOrCreateCart(r.Context(), uid)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, order.ToOrderView(cart))
}

type updateCartRequest struct {
	ProductID *int   `json:"productId"`
	Action    string `json:"action"`
}

func (s *Server) handleUpdateCart(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	var req updateCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}
	if req.ProductID == nil || req.Action == "" {
		writeError(w, http.StatusBadRequest, "bad_request", "productId and action are required")
		return
	}

	if err := s.orders.UpdateItem(r.Context(), uid, *req.ProductID, req.Action); err != nil {
		respondError(w, r, err)
		return
	}

	cart, err := s.orders.GetOrCreateCart(r.Context(), uid)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, order.ToOrderView(cart))
}
