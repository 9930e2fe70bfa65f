package processor

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/merchantkit/checkout-service/internal/models"
	"github.com/merchantkit/checkout-service/internal/telemetry"
)

const generateTokenPath = "/GenerateToken"

// tokenRequest is the fixed JSON shape of the processor's tokenization
// endpoint. Field names are part of the external contract.
type tokenRequest struct {
	MerchantKey  string `json:"MerchantKey"`
	PaymentType  string `json:"PaymentType"`
	EmailAddress string `json:"EmailAddress"`
	CardNumber   string `json:"CardNumber"`
	ExpDate      string `json:"ExpDate"`
	CVV          string `json:"CVV"`
}

// Client exchanges raw card details for a single-use payment token. It makes
// exactly one call per Tokenize invocation and never retries. Card data is
// never cached or logged here.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

func NewClient(baseURL string, logger *zap.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
		logger:     logger,
	}
}

// Tokenize sends the card details to the processor's tokenization endpoint
// and folds every failure mode (transport error, non-2xx, non-success
// discriminant) into a failure result carrying the processor's message.
func (c *Client) Tokenize(ctx context.Context, req models.CheckoutRequest) models.TokenizationResult {
	start := time.Now()
	result := c.tokenize(ctx, req)
	telemetry.ProcessorDuration.WithLabelValues("generate_token").Observe(time.Since(start).Seconds())
	telemetry.TokenizationsTotal.WithLabelValues(result.Status).Inc()

	if result.Succeeded() {
		c.logger.Info("Token exchange succeeded",
			zap.String("card_brand", result.CardBrand),
			zap.String("last4", result.Last4),
		)
	} else {
		c.logger.Warn("Token exchange failed", zap.String("message", result.Message))
	}
	return result
}

func (c *Client) tokenize(ctx context.Context, req models.CheckoutRequest) models.TokenizationResult {
	body, err := json.Marshal(tokenRequest{
		MerchantKey:  req.MerchantKey,
		PaymentType:  "CreditCard",
		EmailAddress: req.Email,
		CardNumber:   FormatCardNumber(req.CardNumber),
		ExpDate:      FormatExpiry(req.ExpiryDate),
		CVV:          req.CVC,
	})
	if err != nil {
		return failure(err.Error())
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+generateTokenPath, bytes.NewReader(body))
	if err != nil {
		return failure(err.Error())
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return failure(err.Error())
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return failure(err.Error())
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Opaque pass-through of whatever the processor returned.
		return failure(strings.TrimSpace(string(respBody)))
	}

	var result models.TokenizationResult
	if err := json.Unmarshal(respBody, &result); err != nil {
		return failure("invalid processor response: " + err.Error())
	}

	if !result.Succeeded() {
		return failure(result.Message)
	}
	return result
}

func failure(message string) models.TokenizationResult {
	return models.TokenizationResult{
		Status:  models.StatusFailure,
		Message: message,
	}
}
