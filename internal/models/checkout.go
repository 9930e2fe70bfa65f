package models

import "time"

// SubmitState tracks a checkout attempt through its lifecycle. Submission is
// only allowed when the controller is not already submitting.
type SubmitState string

const (
	StateIdle       SubmitState = "IDLE"
	StateSubmitting SubmitState = "SUBMITTING"
	StateSucceeded  SubmitState = "SUCCEEDED"
	StateFailed     SubmitState = "FAILED"
)

const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

// CheckoutRequest holds the raw card details for a single token exchange.
// It is built fresh on each submit and discarded as soon as the exchange
// attempt completes; card data must not outlive the call.
type CheckoutRequest struct {
	MerchantKey string
	Email       string
	CardNumber  string // raw display format, may contain spaces
	ExpiryDate  string // "MM / YY" display format
	CVC         string
}

// TokenizationResult is the outcome of a token exchange. Status is the
// processor's discriminant; the token is opaque, single-use and time-bounded
// by the processor.
type TokenizationResult struct {
	Status       string `json:"status"`
	Message      string `json:"message"`
	PaymentType  string `json:"paymentType"`
	Token        string `json:"token"`
	Last4        string `json:"last4"`
	ExpDate      string `json:"expDate"`
	CardBrand    string `json:"cardBrand"`
	EmailAddress string `json:"emailAddress"`
}

func (r *TokenizationResult) Succeeded() bool {
	return r.Status == StatusSuccess
}

// RedemptionRequest carries the token plus the billing fields needed to
// redeem it for a charge. Amounts are decimal strings; range validation is
// delegated to upstream field validation.
type RedemptionRequest struct {
	Token           string `json:"token"`
	Amount          string `json:"amount"`
	SecondaryAmount string `json:"secondaryAmount"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Address         string `json:"address"`
	City            string `json:"city"`
	State           string `json:"state"`
	Zip             string `json:"zip"`
}

// Credentials identify the merchant to the processor's redemption endpoint.
// They come from the credential store and are never logged in cleartext.
type Credentials struct {
	MerchantID string `json:"merchantId"`
	Login      string `json:"login"`
	Password   string `json:"password"`
}

// RedemptionResult is the outcome of presenting a token for a charge.
// Confirmation is an opaque receipt identifier.
type RedemptionResult struct {
	Status       string `json:"status"`
	Message      string `json:"message"`
	Confirmation string `json:"confirmation"`
}

func (r *RedemptionResult) Succeeded() bool {
	return r.Status == StatusSuccess
}

// Receipt is the persisted record of a redemption attempt.
type Receipt struct {
	Confirmation    string    `json:"confirmation"`
	Status          string    `json:"status"`
	Message         string    `json:"message"`
	Amount          string    `json:"amount"`
	SecondaryAmount string    `json:"secondary_amount"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	City            string    `json:"city"`
	State           string    `json:"state"`
	Zip             string    `json:"zip"`
	CreatedAt       time.Time `json:"created_at"`
}
