package actions

import (
	"github.com/merchantkit/checkout-service/internal/models"
	"github.com/merchantkit/checkout-service/internal/signals"
)

// BuildOutputFrame assembles the named signal-output frame for a redemption
// attempt: the fields of whichever result variant occurred plus the billing
// inputs that follow-up steps may reference.
func BuildOutputFrame(name string, req *models.RedemptionRequest, res *models.RedemptionResult) *signals.Frame {
	frame := signals.NewFrame(name)

	// Keys are fixed and distinct, so appends cannot collide.
	_ = frame.Append("status", res.Status)
	_ = frame.Append("message", res.Message)
	if res.Succeeded() {
		_ = frame.Append("confirmation", res.Confirmation)
	}

	_ = frame.Append("amount", req.Amount)
	_ = frame.Append("secondaryAmount", req.SecondaryAmount)
	_ = frame.Append("firstName", req.FirstName)
	_ = frame.Append("lastName", req.LastName)
	_ = frame.Append("address", req.Address)
	_ = frame.Append("city", req.City)
	_ = frame.Append("state", req.State)
	_ = frame.Append("zip", req.Zip)

	return frame
}
