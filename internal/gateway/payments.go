package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"order-amendment-service/internal/config"
	"order-amendment-service/internal/entities"

	"github.com/shopspring/decimal"
)

// Client talks to the payment provider that captured the original order.
// It is only used to push money back to the customer, capture and
// settlement stay with the platform.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(cfg config.Gateway) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.URL,
	}
}

type refundRequest struct {
	OrderID int64           `json:"order_id"`
	Amount  decimal.Decimal `json:"amount"`
}

type gatewayError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Refund asks the gateway to return amount to the payment method of the
// given order. A non-2xx response with a structured body comes back as an
// entities.ErrGatewayRefund wrap.
func (c *Client) Refund(ctx context.Context, orderID int64, amount decimal.Decimal) error {
	body, err := json.Marshal(refundRequest{OrderID: orderID, Amount: amount})
	if err != nil {
		return fmt.Errorf("failed to marshal refund request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/refunds", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build refund request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("refund request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var gwErr gatewayError
	if err := json.NewDecoder(resp.Body).Decode(&gwErr); err != nil || gwErr.Message == "" {
		return fmt.Errorf("%w: status %d", entities.ErrGatewayRefund, resp.StatusCode)
	}
	return fmt.Errorf("%w: %s (%s)", entities.ErrGatewayRefund, gwErr.Message, gwErr.Code)
}
