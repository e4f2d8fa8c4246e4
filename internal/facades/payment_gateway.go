package facades

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
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/sbilibin2017/gw-template-studio/internal/logger"
)

// PaymentGatewayClient creates orders on the payment gateway and verifies its signatures.
type PaymentGatewayClient struct {
	baseURL       string
	keyID         string
	keySecret     string
	webhookSecret string
	httpClient    *http.Client
}

func NewPaymentGatewayClient(baseURL, keyID, keySecret, webhookSecret string, timeout time.Duration) *PaymentGatewayClient {
	return &PaymentGatewayClient{
		baseURL:       strings.TrimSuffix(baseURL, "/"),
		keyID:         keyID,
		keySecret:     keySecret,
		webhookSecret: webhookSecret,
		httpClient:    &http.Client{Timeout: timeout},
	}
}

// KeyID is the public key the client passes to the checkout widget.
func (c *PaymentGatewayClient) KeyID() string {
	return c.keyID
}

// CreateOrder registers an order for amount minor units and returns the gateway order id.
func (c *PaymentGatewayClient) CreateOrder(ctx context.Context, amount int64, currency, receipt string) (string, error) {
	jsonData, err := json.Marshal(map[string]any{
		"amount":   amount,
		"currency": currency,
		"receipt":  receipt,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal order: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/orders", bytes.NewReader(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.SetBasicAuth(c.keyID, c.keySecret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.FromContext(ctx).Errorw("payment gateway request failed", "receipt", receipt, "error", err)
		return "", fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("failed to create order: status %d, body: %s", resp.StatusCode, string(body))
	}

	orderID := gjson.GetBytes(body, "id").String()
	if orderID == "" {
		return "", fmt.Errorf("order id is empty in response, body: %s", string(body))
	}

	logger.FromContext(ctx).Infow("payment order created", "receipt", receipt, "order_id", orderID, "amount", amount)
	return orderID, nil
}

// VerifyPaymentSignature checks the checkout signature over "order_id|payment_id".
func (c *PaymentGatewayClient) VerifyPaymentSignature(orderID, paymentID, signature string) bool {
	return validHMAC([]byte(orderID+"|"+paymentID), c.keySecret, signature)
}

// VerifyWebhookSignature checks the signature of a raw webhook body.
func (c *PaymentGatewayClient) VerifyWebhookSignature(body []byte, signature string) bool {
	return validHMAC(body, c.webhookSecret, signature)
}

// Sign computes the hex HMAC-SHA256 of message with secret.
func Sign(message []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(message)
	return hex.EncodeToString(mac.Sum(nil))
}

func validHMAC(message []byte, secret, signature string) bool {
	if secret == "" || signature == "" {
		return false
	}
	expected := Sign(message, secret)
	return hmac.Equal([]byte(expected), []byte(strings.ToLower(signature)))
}
