package actions

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/merchantkit/checkout-service/internal/models"
	"github.com/merchantkit/checkout-service/internal/telemetry"
)

// ActionSubmitToken is the only action name this runner dispatches.
const ActionSubmitToken = "submit_token"

const submitTokenPath = "/SubmitTokenPayment"

// redemptionBody is the fixed JSON shape of the processor's redemption
// endpoint. Field names are part of the external contract.
type redemptionBody struct {
	MerchantID            string `json:"MerchantID"`
	Login                 string `json:"Login"`
	Password              string `json:"Password"`
	Token                 string `json:"Token"`
	Amount                string `json:"Amount"`
	SecondaryAmount       string `json:"SecondaryAmount"`
	FirstName             string `json:"FirstName"`
	LastName              string `json:"LastName"`
	Address1              string `json:"Address1"`
	City                  string `json:"City"`
	State                 string `json:"State"`
	Zip                   string `json:"Zip"`
	CheckNegativeAccount  bool   `json:"CheckNegativeAccount"`
	AuthOnly              bool   `json:"AuthOnly"`
	DisableDuplicateCheck bool   `json:"DisableDuplicateCheck"`
}

// Runner redeems single-use payment tokens for charges. It is invoked by
// action name with a parameter bag and merchant credentials, makes at most
// one call to the processor, and never retries.
type Runner struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

func NewRunner(baseURL string, logger *zap.Logger) *Runner {
	return &Runner{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
		logger:     logger,
	}
}

// Run dispatches a named action. Any name other than "submit_token" and any
// missing credential is a ConfigurationError with no network call made.
// Processor-level failures come back as a failure result, not an error.
func (r *Runner) Run(ctx context.Context, actionName string, params map[string]string, creds models.Credentials) (*models.RedemptionResult, error) {
	if actionName != ActionSubmitToken {
		return nil, configErrorf("unsupported action name: %s", actionName)
	}

	req, err := ParseParams(params)
	if err != nil {
		return nil, err
	}

	if creds.MerchantID == "" {
		return nil, configErrorf("No Merchant ID provided")
	}
	if creds.Login == "" {
		return nil, configErrorf("No processor login provided")
	}
	if creds.Password == "" {
		return nil, configErrorf("No processor password provided")
	}

	body := redemptionBody{
		MerchantID:            creds.MerchantID,
		Login:                 creds.Login,
		Password:              creds.Password,
		Token:                 req.Token,
		Amount:                req.Amount,
		SecondaryAmount:       req.SecondaryAmount,
		FirstName:             req.FirstName,
		LastName:              req.LastName,
		Address1:              req.Address,
		City:                  req.City,
		State:                 req.State,
		Zip:                   req.Zip,
		CheckNegativeAccount:  false,
		AuthOnly:              false,
		DisableDuplicateCheck: false,
	}

	r.logRequest(&body)

	start := time.Now()
	result := r.redeem(ctx, &body)
	telemetry.ProcessorDuration.WithLabelValues("submit_token_payment").Observe(time.Since(start).Seconds())
	telemetry.RedemptionsTotal.WithLabelValues(result.Status).Inc()

	return result, nil
}

func (r *Runner) redeem(ctx context.Context, body *redemptionBody) *models.RedemptionResult {
	payload, err := json.Marshal(body)
	if err != nil {
		return redemptionFailure(err.Error())
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+submitTokenPath, bytes.NewReader(payload))
	if err != nil {
		return redemptionFailure(err.Error())
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := r.httpClient.Do(httpReq)
	if err != nil {
		return redemptionFailure("Error Making Request: " + err.Error())
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return redemptionFailure("Error Making Request: " + err.Error())
	}

	if resp.StatusCode != http.StatusOK {
		return redemptionFailure(fmt.Sprintf("Error Making Request: %d %s", resp.StatusCode, string(respBody)))
	}

	var result models.RedemptionResult
	if err := json.Unmarshal(respBody, &result); err != nil {
		return redemptionFailure("invalid processor response: " + err.Error())
	}

	switch result.Status {
	case models.StatusSuccess:
		r.logger.Info("Token redemption succeeded",
			zap.String("confirmation", result.Confirmation),
		)
		return &result
	case models.StatusFailure:
		r.logger.Warn("Token redemption failed", zap.String("message", result.Message))
		return &result
	default:
		return redemptionFailure("Unexpected status")
	}
}

// logRequest records the outbound body for diagnostics with the secret
// fields redacted before they reach any log sink.
func (r *Runner) logRequest(body *redemptionBody) {
	r.logger.Info("Redemption request",
		zap.String("merchant_id", body.MerchantID),
		zap.String("login", body.Login),
		zap.String("password", telemetry.RedactSecret(body.Password)),
		zap.String("token", telemetry.RedactSecret(body.Token)),
		zap.String("amount", body.Amount),
		zap.String("secondary_amount", body.SecondaryAmount),
		zap.String("first_name", body.FirstName),
		zap.String("last_name", body.LastName),
		zap.String("city", body.City),
		zap.String("state", body.State),
		zap.String("zip", body.Zip),
	)
}

func redemptionFailure(message string) *models.RedemptionResult {
	return &models.RedemptionResult{
		Status:  models.StatusFailure,
		Message: message,
	}
}
