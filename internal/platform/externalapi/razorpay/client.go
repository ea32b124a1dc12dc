package razorpay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"net/http"

	"shop_backend/internal/feature/orders/usecase"
)

// Client はRazorpay外部APIで決済を作成するPaymentGateway実装です。
type Client struct {
	cfg    Config
	client *http.Client
}

// ClientがPaymentGatewayを実装していることをコンパイル時に検証します。
var _ usecase.PaymentGateway = (*Client)(nil)

// NewClient は指定された設定とHTTPクライアントでClientの新しいインスタンスを生成します。
func NewClient(cfg Config, client *http.Client) *Client {
	return &Client{cfg: cfg, client: client}
}

// createOrderRequest はRazorpayのOrders APIへのリクエストボディです。
// Amountは最小通貨単位（INRの場合パイサ）で指定します。
type createOrderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

// createOrderResponse はRazorpayのOrders APIのレスポンスボディです。
type createOrderResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Error  struct {
		Description string `json:"description"`
	} `json:"error"`
}

// CreatePayment は注文金額の決済オーダーをRazorpayに作成し、参照IDを返します。
// 拒否やタイムアウトはエラーとして返し、呼び出し元（orders usecase）が
// payment_statusに反映します。
func (c *Client) CreatePayment(ctx context.Context, orderNumber string, amount float64) (string, error) {
	// 最小通貨単位に変換
	body := createOrderRequest{
		Amount:   int64(math.Round(amount * 100)),
		Currency: c.cfg.Currency,
		Receipt:  orderNumber,
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	u := fmt.Sprintf("%s/v1/orders", c.cfg.BaseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.cfg.KeyID, c.cfg.KeySecret)

	res, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	var out createOrderResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return "", err
	}
	if res.StatusCode >= 400 {
		if out.Error.Description != "" {
			return "", fmt.Errorf("razorpay: %s", out.Error.Description)
		}
		return "", fmt.Errorf("razorpay http %d", res.StatusCode)
	}
	if out.ID == "" {
		return "", fmt.Errorf("razorpay: empty order id in response")
	}
	return out.ID, nil
}
