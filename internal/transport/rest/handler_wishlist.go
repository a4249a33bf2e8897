package rest

import (
	"encoding/json"
	"net/http"

	"shopcore-be/internal/wishlist"
)

func (s *Server) handleListWishlist(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	items, err := s.wishes.List(r.Context(), uid)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, wishlist.ToItemViews(items))
}

type wishlistRequest struct {
	ProductID *int `json:"productId"`
}

func decodeWishlistRequest(w http.ResponseWriter, r *http.Request) (int, bool) {
	var req wishlistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid request body")
		return 0, false
	}
	if req.ProductID == nil {
		writeError(w, http.StatusBadRequest, "bad_request", "productId is required")
		return 0, false
	}
	return *req.ProductID, true
}

func (s *Server) handleAddWishlist(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	productID, ok := decodeWishlistRequest(w, r)
	if !ok {
		return
	}

	if _, err := s.wishes.Add(r.Context(), uid, productID); err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"status": "added"})
}

func (s *Server) handleRemoveWishlist(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	productID, ok := decodeWishlistRequest(w, r)
	if !ok {
		return
	}

	if err := s.wishes.Remove(r.Context(), uid, productID); err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "removed"})
}
