package processor

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/merchantkit/checkout-service/internal/models"
)

func checkoutRequest() models.CheckoutRequest {
	return models.CheckoutRequest{
		MerchantKey: "mk-123",
		Email:       "jo@example.com",
		CardNumber:  "4111 1111 1111 1111",
		ExpiryDate:  "04 / 27",
		CVC:         "123",
	}
}

func TestTokenizeSendsFixedWireShape(t *testing.T) {
	var got map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/GenerateToken", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &got))

		w.Write([]byte(`{"status":"success","token":"tok-1","last4":"1111","cardBrand":"visa","expDate":"042027","paymentType":"CreditCard","emailAddress":"jo@example.com"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, zap.NewNop())
	result := client.Tokenize(context.Background(), checkoutRequest())

	require.True(t, result.Succeeded())
	assert.Equal(t, "tok-1", result.Token)
	assert.Equal(t, "1111", result.Last4)
	assert.Equal(t, "visa", result.CardBrand)

	assert.Equal(t, map[string]interface{}{
		"MerchantKey":  "mk-123",
		"PaymentType":  "CreditCard",
		"EmailAddress": "jo@example.com",
		"CardNumber":   "4111111111111111",
		"ExpDate":      "042027",
		"CVV":          "123",
	}, got)
}

func TestTokenizeFailurePassesMessageThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"failure","message":"card declined"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, zap.NewNop())
	result := client.Tokenize(context.Background(), checkoutRequest())

	require.False(t, result.Succeeded())
	assert.Equal(t, models.StatusFailure, result.Status)
	assert.Equal(t, "card declined", result.Message)
	assert.Empty(t, result.Token)
}

func TestTokenizeUnknownDiscriminantIsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"pending","message":"try later"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, zap.NewNop())
	result := client.Tokenize(context.Background(), checkoutRequest())

	require.False(t, result.Succeeded())
	assert.Equal(t, "try later", result.Message)
}

func TestTokenizeNon2xxIsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream unavailable"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, zap.NewNop())
	result := client.Tokenize(context.Background(), checkoutRequest())

	require.False(t, result.Succeeded())
	assert.Equal(t, "upstream unavailable", result.Message)
}

func TestTokenizeTransportErrorIsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewClient(srv.URL, zap.NewNop())
	result := client.Tokenize(context.Background(), checkoutRequest())

	require.False(t, result.Succeeded())
	assert.NotEmpty(t, result.Message)
}

func TestTokenizeMakesExactlyOneCall(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, zap.NewNop())
	result := client.Tokenize(context.Background(), checkoutRequest())

	require.False(t, result.Succeeded())
	assert.Equal(t, 1, calls, "a failed exchange must not be retried")
}
