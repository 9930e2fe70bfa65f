package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/merchantkit/checkout-service/internal/actions"
	"github.com/merchantkit/checkout-service/internal/interfaces"
	"github.com/merchantkit/checkout-service/internal/models"
	"github.com/merchantkit/checkout-service/internal/telemetry"
)

// ActionHandler is the action-host boundary: it dispatches named actions
// with a parameter bag and credentials. Hosts that do not carry their own
// credentials get the service's configured ones.
type ActionHandler struct {
	runner       interfaces.ActionRunner
	defaultCreds models.Credentials
}

func NewActionHandler(runner interfaces.ActionRunner, defaultCreds models.Credentials) *ActionHandler {
	return &ActionHandler{runner: runner, defaultCreds: defaultCreds}
}

type actionInvocation struct {
	Params      map[string]string   `json:"params"`
	Credentials *models.Credentials `json:"credentials"`
}

func (h *ActionHandler) RunAction(c *gin.Context) {
	actionName := c.Param("name")

	var invocation actionInvocation
	if err := c.ShouldBindJSON(&invocation); err != nil {
		telemetry.Logger.Error("Error decoding action invocation", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	creds := h.defaultCreds
	if invocation.Credentials != nil {
		creds = *invocation.Credentials
	}

	result, err := h.runner.Run(c.Request.Context(), actionName, invocation.Params, creds)
	if err != nil {
		var cfgErr *actions.ConfigurationError
		if errors.As(err, &cfgErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": cfgErr.Reason})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if !result.Succeeded() {
		c.JSON(http.StatusOK, gin.H{
			"status": result.Status,
			"error":  result.Message,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":       result.Status,
		"confirmation": result.Confirmation,
	})
}
