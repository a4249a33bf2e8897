package payment

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"shopcore-be/internal/logger"

	"go.uber.org/zap"
)

const razorpayBaseURL = "https://api.razorpay.com"

type razorpayProvider struct {
	keyID      string
	keySecret  string
	baseURL    string
	httpClient *http.Client
}

func NewRazorpayProvider(keyID, keySecret string) Provider {
	if keyID == "" || keySecret == "" {
		logger.L().Warn("Razorpay credentials are empty")
	}

	return &razorpayProvider{
		keyID:     keyID,
		keySecret: keySecret,
		baseURL:   razorpayBaseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (r *razorpayProvider) Key() string {
	return r.keyID
}

type razorpayOrderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

func (r *razorpayProvider) CreateIntent(ctx context.Context, amount int64, currency, receipt string) (*Intent, error) {
	log := logger.FromCtx(ctx).With(
		zap.Int64("amount", amount),
		zap.String("currency", currency),
		zap.String("receipt", receipt),
	)

	body := map[string]interface{}{
		"amount":          amount,
		"currency":        currency,
		"receipt":         receipt,
		"payment_capture": 1,
	}
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", r.baseURL+"/v1/orders", bytes.NewBuffer(jsonBody))
	if err != nil {
		log.Error("failed building razorpay request", zap.Error(err))
		return nil, err
	}

	req.SetBasicAuth(r.keyID, r.keySecret)
	req.Header.Add("Content-Type", "application/json")

	log.Info("creating razorpay order")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		log.Error("razorpay request failed", zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read razorpay response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		log.Error("razorpay returned non-success status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("response", bodyBytes),
		)
		return nil, fmt.Errorf("razorpay error: %s", string(bodyBytes))
	}

	var res razorpayOrderResponse
	if err := json.Unmarshal(bodyBytes, &res); err != nil {
		log.Error("failed decoding razorpay response", zap.Error(err))
		return nil, err
	}

	log.Info("razorpay order created",
		zap.String("provider_order_id", res.ID),
		zap.String("status", res.Status),
	)

	return &Intent{
		ProviderOrderID: res.ID,
		Amount:          res.Amount,
		Currency:        res.Currency,
		Receipt:         res.Receipt,
	}, nil
}

// VerifySignature recomputes HMAC-SHA256(secret, orderID|paymentID) and
// compares it to the signature from the checkout callback in constant time.
func (r *razorpayProvider) VerifySignature(providerOrderID, paymentID, signature string) error {
	mac := hmac.New(sha256.New, []byte(r.keySecret))
	mac.Write([]byte(providerOrderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return fmt.Errorf("signature mismatch for order %s", providerOrderID)
	}
	return nil
}
