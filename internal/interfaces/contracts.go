package interfaces

import (
	"context"

	"github.com/merchantkit/checkout-service/internal/models"
)

// Tokenizer exchanges raw card details for a single-use payment token.
type Tokenizer interface {
	Tokenize(ctx context.Context, req models.CheckoutRequest) models.TokenizationResult
}

// ActionRunner dispatches a named server-side action with a parameter bag
// and merchant credentials.
type ActionRunner interface {
	Run(ctx context.Context, actionName string, params map[string]string, creds models.Credentials) (*models.RedemptionResult, error)
}

// ReceiptStore persists redemption outcomes.
type ReceiptStore interface {
	Save(ctx context.Context, receipt *models.Receipt) error
	GetByConfirmation(ctx context.Context, confirmation string) (*models.Receipt, error)
}

// AttemptLock serializes redemption of a single token across submits.
type AttemptLock interface {
	Acquire(ctx context.Context, key string) (bool, error)
	Release(ctx context.Context, key string) error
}
