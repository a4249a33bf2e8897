package rest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"shopcore-be/internal/order"
	"shopcore-be/internal/payment"
	"shopcore-be/internal/product"
	"shopcore-be/internal/user"
	"shopcore-be/internal/utils"
	"shopcore-be/internal/wishlist"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func authedRequest(method, target string, body []byte, uid int) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	ctx := utils.SetUserContext(req.Context(), uid, "ravi@example.com")
	return req.WithContext(ctx)
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestHandleRegister(t *testing.T) {
	srv, users, _, _, _, _ := newTestServer()

	users.On("Register", mock.Anything, user.RegisterParams{
		Username: "ravi", Email: "ravi@example.com", Phone: "9876543210", Password: "secret",
	}).Return("tok123", user.User{ID: 1, Username: "ravi", Email: "ravi@example.com"}, nil)

	body := []byte(`{"username":"ravi","email":"ravi@example.com","phone":"9876543210","password":"secret"}`)
	rec := httptest.NewRecorder()
	srv.handleRegister(rec, httptest.NewRequest("POST", "/api/register", bytes.NewReader(body)))

	assert.Equal(t, http.StatusCreated, rec.Code)
	var resp authResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "tok123", resp.Token)
	assert.Equal(t, "ravi", resp.User.Username)
}

func TestHandleRegister_MissingFields(t *testing.T) {
	srv, _, _, _, _, _ := newTestServer()

	rec := httptest.NewRecorder()
	srv.handleRegister(rec, httptest.NewRequest("POST", "/api/register", bytes.NewReader([]byte(`{"username":"ravi"}`))))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "bad_request", decodeError(t, rec).Error)
}

func TestHandleRegister_DuplicateUsername(t *testing.T) {
	srv, users, _, _, _, _ := newTestServer()

	users.On("Register", mock.Anything, mock.Anything).
		Return("", user.User{}, user.ErrUsernameExists)

	body := []byte(`{"username":"ravi","password":"secret"}`)
	rec := httptest.NewRecorder()
	srv.handleRegister(rec, httptest.NewRequest("POST", "/api/register", bytes.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "bad_request", decodeError(t, rec).Error)
}

func TestHandleLogin_InvalidCredentials(t *testing.T) {
	srv, users, _, _, _, _ := newTestServer()

	users.On("Login", mock.Anything, "ravi", "wrong").
		Return("", user.User{}, user.ErrInvalidCredentials)

	body := []byte(`{"username":"ravi","password":"wrong"}`)
	rec := httptest.NewRecorder()
	srv.handleLogin(rec, httptest.NewRequest("POST", "/api/login", bytes.NewReader(body)))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "unauthorized", decodeError(t, rec).Error)
}

func TestProtectedRoutes_RejectMissingToken(t *testing.T) {
	srv, _, _, _, _, _ := newTestServer()
	router := srv.Routes()

	for _, target := range []string{"/api/cart", "/api/orders", "/api/wishlist"} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("GET", target, nil)
		req.RemoteAddr = "203.0.113.9:1234"
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, target)
		assert.Equal(t, "unauthorized", decodeError(t, rec).Error, target)
	}
}

func TestHandleGetCart(t *testing.T) {
	srv, _, _, orders, _, _ := newTestServer()

	orders.On("GetOrCreateCart", mock.Anything, 1).Return(&order.Order{
		ID:           7,
		CustomerName: "ravi",
		Items: []order.LineItem{{
			ID:       1,
			Quantity: 2,
			Product:  &product.Product{ID: 1, Name: "Headphones", Price: decimal.RequireFromString("19.99")},
		}},
	}, nil)

	rec := httptest.NewRecorder()
	srv.handleGetCart(rec, authedRequest("GET", "/api/cart", nil, 1))

	assert.Equal(t, http.StatusOK, rec.Code)
	var view order.OrderView
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&view))
	assert.Equal(t, 7, view.ID)
	assert.Equal(t, "39.98", view.CartTotal)
	assert.Equal(t, 2, view.CartItems)
	assert.False(t, view.Completed)
}

func TestHandleUpdateCart_MissingFields(t *testing.T) {
	srv, _, _, _, _, _ := newTestServer()

	for _, body := range []string{`{}`, `{"productId":1}`, `{"action":"add"}`} {
		rec := httptest.NewRecorder()
		srv.handleUpdateCart(rec, authedRequest("POST", "/api/cart/update", []byte(body), 1))

		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}
}

func TestHandleUpdateCart_UnknownProduct(t *testing.T) {
	srv, _, _, orders, _, _ := newTestServer()

	orders.On("UpdateItem", mock.Anything, 1, 99, "add").Return(product.ErrProductNotFound)

	rec := httptest.NewRecorder()
	srv.handleUpdateCart(rec, authedRequest("POST", "/api/cart/update", []byte(`{"productId":99,"action":"add"}`), 1))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", decodeError(t, rec).Error)
}

func TestHandleUpdateCart(t *testing.T) {
	srv, _, _, orders, _, _ := newTestServer()

	orders.On("UpdateItem", mock.Anything, 1, 2, "remove").Return(nil)
	orders.On("GetOrCreateCart", mock.Anything, 1).Return(&order.Order{ID: 7}, nil)

	rec := httptest.NewRecorder()
	srv.handleUpdateCart(rec, authedRequest("POST", "/api/cart/update", []byte(`{"productId":2,"action":"remove"}`), 1))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleProcessOrder_NoActiveOrder(t *testing.T) {
	srv, _, _, orders, _, _ := newTestServer()

	orders.On("ProcessOrder", mock.Anything, 1, mock.Anything).Return(nil, order.ErrNoActiveOrder)

	rec := httptest.NewRecorder()
	srv.handleProcessOrder(rec, authedRequest("POST", "/api/process-order", []byte(`{"shipping":{"address":"x"}}`), 1))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleProcessOrder_ShippingRequired(t *testing.T) {
	srv, _, _, orders, _, _ := newTestServer()

	orders.On("ProcessOrder", mock.Anything, 1, (*order.ShippingInfo)(nil)).
		Return(nil, order.ErrShippingRequired)

	rec := httptest.NewRecorder()
	srv.handleProcessOrder(rec, authedRequest("POST", "/api/process-order", []byte(`{}`), 1))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "bad_request", decodeError(t, rec).Error)
}

func TestHandleStartPayment(t *testing.T) {
	srv, _, _, _, payments, _ := newTestServer()

	payments.On("StartPayment", mock.Anything, 1).Return(&payment.IntentDescriptor{
		OrderID:     "order_Mx9z1",
		RazorpayKey: "rzp_test_key",
		Amount:      19999,
		Currency:    "INR",
	}, nil)

	rec := httptest.NewRecorder()
	srv.handleStartPayment(rec, authedRequest("POST", "/api/payment/start", nil, 1))

	assert.Equal(t, http.StatusOK, rec.Code)
	var desc payment.IntentDescriptor
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&desc))
	assert.Equal(t, "order_Mx9z1", desc.OrderID)
	assert.Equal(t, int64(19999), desc.Amount)
}

func TestHandleStartPayment_EmptyCart(t *testing.T) {
	srv, _, _, _, payments, _ := newTestServer()

	payments.On("StartPayment", mock.Anything, 1).Return(nil, payment.ErrNoActiveCart)

	rec := httptest.NewRecorder()
	srv.handleStartPayment(rec, authedRequest("POST", "/api/payment/start", nil, 1))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandlePaymentSuccess(t *testing.T) {
	srv, _, _, _, payments, _ := newTestServer()

	payments.On("HandleSuccess", mock.Anything, 1, payment.SuccessParams{
		ProviderOrderID: "order_Mx9z1",
		PaymentID:       "pay_123",
		Signature:       "sig",
		Shipping:        order.ShippingInfo{Address: "12 MG Road", City: "Pune", State: "MH", Zipcode: "411001"},
	}).Return(&order.Order{ID: 7, Completed: true}, nil)

	body := []byte(`{
		"razorpay_order_id": "order_Mx9z1",
		"razorpay_payment_id": "pay_123",
		"razorpay_signature": "sig",
		"shipping_address": {"address":"12 MG Road","city":"Pune","state":"MH","zipcode":"411001"}
	}`)
	rec := httptest.NewRecorder()
	srv.handlePaymentSuccess(rec, authedRequest("POST", "/api/payment/success", body, 1))

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "success", resp["status"])
	assert.Equal(t, float64(7), resp["order_id"])
}

func TestHandlePaymentSuccess_MissingFields(t *testing.T) {
	srv, _, _, _, _, _ := newTestServer()

	rec := httptest.NewRecorder()
	srv.handlePaymentSuccess(rec, authedRequest("POST", "/api/payment/success", []byte(`{"razorpay_order_id":"x"}`), 1))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlePaymentSuccess_VerificationFailed(t *testing.T) {
	srv, _, _, _, payments, _ := newTestServer()

	payments.On("HandleSuccess", mock.Anything, 1, mock.Anything).
		Return(nil, payment.ErrVerificationFailed)

	body := []byte(`{"razorpay_order_id":"o","razorpay_payment_id":"p","razorpay_signature":"forged"}`)
	rec := httptest.NewRecorder()
	srv.handlePaymentSuccess(rec, authedRequest("POST", "/api/payment/success", body, 1))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeError(t, rec)
	assert.Equal(t, "payment_verification_failed", resp.Error)
	// The response must not leak why verification failed.
	assert.Equal(t, "payment verification failed", resp.Details)
}

func TestHandleListOrders(t *testing.T) {
	srv, _, _, orders, _, _ := newTestServer()

	txn := "pay_123"
	orders.On("ListCompleted", mock.Anything, 1).Return([]order.Order{
		{ID: 9, Completed: true, TransactionID: &txn, CustomerName: "ravi"},
	}, nil)

	rec := httptest.NewRecorder()
	srv.handleListOrders(rec, authedRequest("GET", "/api/orders", nil, 1))

	assert.Equal(t, http.StatusOK, rec.Code)
	var views []order.OrderView
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&views))
	require.Len(t, views, 1)
	assert.True(t, views[0].Completed)
	assert.Equal(t, "pay_123", *views[0].TransactionID)
}

func TestHandleGetProduct_InvalidID(t *testing.T) {
	srv, _, _, _, _, _ := newTestServer()
	router := srv.Routes()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/products/abc", nil)
	req.RemoteAddr = "203.0.113.9:1234"
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleListProducts(t *testing.T) {
	srv, _, products, _, _, _ := newTestServer()

	products.On("List", mock.Anything).Return([]product.Product{
		{ID: 1, Name: "Headphones", Price: decimal.RequireFromString("49.99")},
	}, nil)

	rec := httptest.NewRecorder()
	srv.handleListProducts(rec, httptest.NewRequest("GET", "/api/products", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Headphones")
}

func TestHandleAddWishlist_Duplicate(t *testing.T) {
	srv, _, _, _, _, wishes := newTestServer()

	wishes.On("Add", mock.Anything, 1, 5).Return(nil, wishlist.ErrAlreadySaved)

	rec := httptest.NewRecorder()
	srv.handleAddWishlist(rec, authedRequest("POST", "/api/wishlist/add", []byte(`{"productId":5}`), 1))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleRemoveWishlist_NotSaved(t *testing.T) {
	srv, _, _, _, _, wishes := newTestServer()

	wishes.On("Remove", mock.Anything, 1, 99).Return(wishlist.ErrNotSaved)

	rec := httptest.NewRecorder()
	srv.handleRemoveWishlist(rec, authedRequest("POST", "/api/wishlist/remove", []byte(`{"productId":99}`), 1))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleListWishlist(t *testing.T) {
	srv, _, _, _, _, wishes := newTestServer()

	wishes.On("List", mock.Anything, 1).Return([]wishlist.Item{
		{ID: 1, Product: &product.Product{ID: 5, Name: "Headphones"}},
	}, nil)

	rec := httptest.NewRecorder()
	srv.handleListWishlist(rec, authedRequest("GET", "/api/wishlist", nil, 1))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Headphones")
}
