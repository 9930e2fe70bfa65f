package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/merchantkit/checkout-service/internal/service"
	"github.com/merchantkit/checkout-service/internal/telemetry"
)

// ControllerFactory builds a fresh controller per form render, so card data
// and error state never leak between checkout sessions.
type ControllerFactory func() *service.Controller

type CheckoutHandler struct {
	newController ControllerFactory
}

func NewCheckoutHandler(factory ControllerFactory) *CheckoutHandler {
	return &CheckoutHandler{newController: factory}
}

type checkoutForm struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	CardNumber      string `json:"cardNumber"`
	ExpiryDate      string `json:"expiryDate"`
	CVC             string `json:"cvc"`
	Address         string `json:"address"`
	City            string `json:"city"`
	State           string `json:"state"`
	Zip             string `json:"zip"`
	Amount          string `json:"amount"`
	SecondaryAmount string `json:"secondaryAmount"`
}

func (h *CheckoutHandler) Submit(c *gin.Context) {
	var form checkoutForm
	if err := c.ShouldBindJSON(&form); err != nil {
		telemetry.Logger.Error("Error decoding checkout form", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	ctrl := h.newController()
	ctrl.SetFirstName(form.FirstName)
	ctrl.SetLastName(form.LastName)
	ctrl.SetEmail(form.Email)
	ctrl.SetCardNumber(form.CardNumber)
	ctrl.SetExpiryDate(form.ExpiryDate)
	ctrl.SetCVC(form.CVC)
	ctrl.SetAddress(form.Address)
	ctrl.SetCity(form.City)
	ctrl.SetState(form.State)
	ctrl.SetZip(form.Zip)
	ctrl.SetAmount(form.Amount)
	ctrl.SetSecondaryAmount(form.SecondaryAmount)

	if err := ctrl.Submit(c.Request.Context()); err != nil {
		if errors.Is(err, service.ErrSubmitInFlight) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusPaymentRequired, gin.H{
			"state": ctrl.State(),
			"error": ctrl.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"state":        ctrl.State(),
		"confirmation": ctrl.Confirmation(),
	})
}
