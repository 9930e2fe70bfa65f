package service

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/merchantkit/checkout-service/internal/actions"
	"github.com/merchantkit/checkout-service/internal/interfaces"
	"github.com/merchantkit/checkout-service/internal/models"
	"github.com/merchantkit/checkout-service/internal/signals"
	"github.com/merchantkit/checkout-service/internal/telemetry"
)

// ErrSubmitInFlight is returned when Submit is called while a previous
// attempt is still running. Submission is only allowed outside the
// Submitting state.
var ErrSubmitInFlight = errors.New("a submit attempt is already in flight")

// OutputFrameName is the name under which the redemption result frame is
// exposed to follow-up steps.
const OutputFrameName = "checkout"

// ControllerConfig carries the collaborators and defaults for a checkout
// controller. Defaults are explicit construction-time values, never ambient
// package state.
type ControllerConfig struct {
	MerchantKey string
	Credentials models.Credentials

	Tokenizer  interfaces.Tokenizer
	Actions    interfaces.ActionRunner
	Lock       interfaces.AttemptLock
	Receipts   interfaces.ReceiptStore
	Propagator signals.Propagator

	// OnSuccess runs with the result frame after a successful redemption.
	OnSuccess []signals.Step

	Logger *zap.Logger
}

// Controller owns the hosted form's mutable field state and runs the
// two-step tokenize-then-redeem flow on submit. One controller serves one
// form render; field edits and submits are serialized through its mutex.
type Controller struct {
	mu           sync.Mutex
	state        models.SubmitState
	errMsg       string
	confirmation string

	firstName       string
	lastName        string
	email           string
	cardNumber      string
	expiryDate      string
	cvc             string
	address         string
	city            string
	region          string
	zip             string
	amount          string
	secondaryAmount string

	cfg ControllerConfig
}

func NewController(cfg ControllerConfig) *Controller {
	return &Controller{
		state: models.StateIdle,
		cfg:   cfg,
	}
}

func (c *Controller) SetFirstName(v string)  { c.setField(&c.firstName, v) }
func (c *Controller) SetLastName(v string)   { c.setField(&c.lastName, v) }
func (c *Controller) SetEmail(v string)      { c.setField(&c.email, v) }
func (c *Controller) SetCardNumber(v string) { c.setField(&c.cardNumber, v) }
func (c *Controller) SetExpiryDate(v string) { c.setField(&c.expiryDate, v) }
func (c *Controller) SetCVC(v string)        { c.setField(&c.cvc, v) }
func (c *Controller) SetAddress(v string)    { c.setField(&c.address, v) }
func (c *Controller) SetCity(v string)       { c.setField(&c.city, v) }
func (c *Controller) SetState(v string)      { c.setField(&c.region, v) }
func (c *Controller) SetZip(v string)        { c.setField(&c.zip, v) }

// SetAmount and SetSecondaryAmount are deliberately independent inputs; see
// DESIGN.md for the open question around secondary amounts.
func (c *Controller) SetAmount(v string)          { c.setField(&c.amount, v) }
func (c *Controller) SetSecondaryAmount(v string) { c.setField(&c.secondaryAmount, v) }

func (c *Controller) setField(field *string, v string) {
	c.mu.Lock()
	*field = v
	c.mu.Unlock()
}

func (c *Controller) State() models.SubmitState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Error returns the single user-visible error string. Last write wins; it is
// cleared at the start of every attempt and on success.
func (c *Controller) Error() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errMsg
}

func (c *Controller) Confirmation() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.confirmation
}

// Submit runs one tokenize-then-redeem attempt. Field edits stay possible
// while a submit is in flight, but a second Submit is refused until the
// current attempt finishes. Redemption is never attempted before the
// tokenization result is known.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.state == models.StateSubmitting {
		c.mu.Unlock()
		return ErrSubmitInFlight
	}
	c.state = models.StateSubmitting
	c.errMsg = ""
	c.confirmation = ""

	checkout := models.CheckoutRequest{
		MerchantKey: c.cfg.MerchantKey,
		Email:       c.email,
		CardNumber:  c.cardNumber,
		ExpiryDate:  c.expiryDate,
		CVC:         c.cvc,
	}
	redemption := models.RedemptionRequest{
		Amount:          c.amount,
		SecondaryAmount: c.secondaryAmount,
		FirstName:       c.firstName,
		LastName:        c.lastName,
		Address:         c.address,
		City:            c.city,
		State:           c.region,
		Zip:             c.zip,
	}
	c.mu.Unlock()

	attemptID := uuid.NewString()
	logger := c.cfg.Logger.With(zap.String("attempt_id", attemptID))

	tokenResult := c.cfg.Tokenizer.Tokenize(ctx, checkout)
	// The checkout request, and with it the raw card data, is discarded
	// here regardless of outcome.
	checkout = models.CheckoutRequest{}

	if !tokenResult.Succeeded() {
		logger.Warn("Tokenization failed", zap.String("message", tokenResult.Message))
		return c.fail(tokenResult.Message)
	}
	redemption.Token = tokenResult.Token

	if c.cfg.Lock != nil {
		acquired, err := c.cfg.Lock.Acquire(ctx, redemption.Token)
		if err != nil {
			logger.Error("Attempt lock failed", zap.Error(err))
			return c.fail("payment could not be processed, please try again")
		}
		if !acquired {
			return c.fail("a charge for this payment is already in progress")
		}
		defer c.cfg.Lock.Release(ctx, redemption.Token)
	}

	result, err := c.cfg.Actions.Run(ctx, actions.ActionSubmitToken, paramsFrom(&redemption), c.cfg.Credentials)
	if err != nil {
		logger.Error("Redemption action failed", zap.Error(err))
		return c.fail(err.Error())
	}

	c.saveReceipt(ctx, logger, &redemption, result)

	frame := actions.BuildOutputFrame(OutputFrameName, &redemption, result)
	if c.cfg.Propagator != nil {
		if err := c.cfg.Propagator.Propagate(ctx, frame); err != nil {
			// Propagation is best-effort; the charge outcome stands.
			logger.Warn("Frame propagation failed", zap.Error(err))
		}
	}

	if !result.Succeeded() {
		logger.Warn("Redemption failed", zap.String("message", result.Message))
		return c.fail(result.Message)
	}

	c.mu.Lock()
	c.state = models.StateSucceeded
	c.errMsg = ""
	c.confirmation = result.Confirmation
	c.mu.Unlock()

	logger.Info("Checkout succeeded",
		zap.String("confirmation", result.Confirmation),
		zap.String("token", telemetry.RedactSecret(redemption.Token)),
	)

	for _, step := range c.cfg.OnSuccess {
		if err := step.Run(ctx, frame); err != nil {
			logger.Warn("Follow-up step failed", zap.Error(err))
		}
	}

	return nil
}

func (c *Controller) fail(message string) error {
	c.mu.Lock()
	c.state = models.StateFailed
	c.errMsg = message
	c.mu.Unlock()
	return errors.New(message)
}

func (c *Controller) saveReceipt(ctx context.Context, logger *zap.Logger, req *models.RedemptionRequest, res *models.RedemptionResult) {
	if c.cfg.Receipts == nil {
		return
	}
	receipt := &models.Receipt{
		Confirmation:    res.Confirmation,
		Status:          res.Status,
		Message:         res.Message,
		Amount:          req.Amount,
		SecondaryAmount: req.SecondaryAmount,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		City:            req.City,
		State:           req.State,
		Zip:             req.Zip,
	}
	if err := c.cfg.Receipts.Save(ctx, receipt); err != nil {
		logger.Error("Failed to save receipt", zap.Error(err))
	}
}

func paramsFrom(req *models.RedemptionRequest) map[string]string {
	return map[string]string{
		"token":           req.Token,
		"amount":          req.Amount,
		"secondaryAmount": req.SecondaryAmount,
		"firstName":       req.FirstName,
		"lastName":        req.LastName,
		"address":         req.Address,
		"city":            req.City,
		"state":           req.State,
		"zip":             req.Zip,
	}
}
