package actions

import (
	"github.com/merchantkit/checkout-service/internal/models"
)

// ParseParams validates the host-supplied parameter bag once at the action
// boundary and produces a typed redemption request. Unknown keys are rejected
// explicitly rather than dropped.
func ParseParams(params map[string]string) (*models.RedemptionRequest, error) {
	req := &models.RedemptionRequest{}

	for key, value := range params {
		switch key {
		case "token":
			req.Token = value
		case "amount":
			req.Amount = value
		case "secondaryAmount":
			req.SecondaryAmount = value
		case "firstName":
			req.FirstName = value
		case "lastName":
			req.LastName = value
		case "address":
			req.Address = value
		case "city":
			req.City = value
		case "state":
			req.State = value
		case "zip":
			req.Zip = value
		default:
			return nil, configErrorf("unknown parameter: %s", key)
		}
	}

	if req.Token == "" {
		return nil, configErrorf("No token provided")
	}

	return req, nil
}
