package handlers

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/merchantkit/checkout-service/internal/interfaces"
)

type ReceiptHandler struct {
	store interfaces.ReceiptStore
}

func NewReceiptHandler(store interfaces.ReceiptStore) *ReceiptHandler {
	return &ReceiptHandler{store: store}
}

func (h *ReceiptHandler) GetReceipt(c *gin.Context) {
	confirmation := c.Param("confirmation")

	receipt, err := h.store.GetByConfirmation(c.Request.Context(), confirmation)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Receipt not found"})
		return
	}

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch receipt"})
		return
	}

	c.JSON(http.StatusOK, receipt)
}
