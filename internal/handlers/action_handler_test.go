package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/merchantkit/checkout-service/internal/actions"
	"github.com/merchantkit/checkout-service/internal/models"
	"github.com/merchantkit/checkout-service/internal/telemetry"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	telemetry.Logger = zap.NewNop()
	m.Run()
}

type stubRunner struct {
	result   *models.RedemptionResult
	err      error
	gotName  string
	gotCreds models.Credentials
}

func (s *stubRunner) Run(ctx context.Context, actionName string, params map[string]string, creds models.Credentials) (*models.RedemptionResult, error) {
	s.gotName = actionName
	s.gotCreds = creds
	return s.result, s.err
}

func actionRouter(runner *stubRunner, defaultCreds models.Credentials) *gin.Engine {
	r := gin.New()
	handler := NewActionHandler(runner, defaultCreds)
	r.POST("/actions/:name", handler.RunAction)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRunActionSuccess(t *testing.T) {
	runner := &stubRunner{result: &models.RedemptionResult{
		Status:       models.StatusSuccess,
		Message:      "approved",
		Confirmation: "ABC123",
	}}
	r := actionRouter(runner, models.Credentials{})

	w := postJSON(t, r, "/actions/submit_token", gin.H{
		"params":      map[string]string{"token": "tok-1"},
		"credentials": models.Credentials{MerchantID: "m-1", Login: "l", Password: "p"},
	})

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp["status"])
	assert.Equal(t, "ABC123", resp["confirmation"])
	assert.Equal(t, "submit_token", runner.gotName)
	assert.Equal(t, "m-1", runner.gotCreds.MerchantID)
}

func TestRunActionConfigurationErrorIs400(t *testing.T) {
	runner := &stubRunner{err: &actions.ConfigurationError{Reason: "unsupported action name: refund_token"}}
	r := actionRouter(runner, models.Credentials{})

	w := postJSON(t, r, "/actions/refund_token", gin.H{
		"params": map[string]string{"token": "tok-1"},
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unsupported action name")
}

func TestRunActionBusinessFailure(t *testing.T) {
	runner := &stubRunner{result: &models.RedemptionResult{
		Status:  models.StatusFailure,
		Message: "insufficient funds",
	}}
	r := actionRouter(runner, models.Credentials{})

	w := postJSON(t, r, "/actions/submit_token", gin.H{
		"params": map[string]string{"token": "tok-1"},
	})

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "failure", resp["status"])
	assert.Equal(t, "insufficient funds", resp["error"])
}

func TestRunActionFallsBackToConfiguredCredentials(t *testing.T) {
	runner := &stubRunner{result: &models.RedemptionResult{Status: models.StatusSuccess}}
	r := actionRouter(runner, models.Credentials{MerchantID: "default-merchant", Login: "l", Password: "p"})

	w := postJSON(t, r, "/actions/submit_token", gin.H{
		"params": map[string]string{"token": "tok-1"},
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "default-merchant", runner.gotCreds.MerchantID)
}
