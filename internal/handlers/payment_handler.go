package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nahid-mahmud/diacare-server/internal/services"
)

// CreatePaymentIntent asks Stripe for a card payment intent over the given
// price and hands the client secret back. The price is forwarded as-is; a
// nonsensical value fails at Stripe and surfaces as a generic error.
func (h *Handler) CreatePaymentIntent(c *gin.Context) {
	var req struct {
		Price float64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	amount := services.MinorUnits(req.Price)

	clientSecret, err := h.Payments.CreatePaymentIntent(amount)
	if err != nil {
		log.Printf("Error creating payment intent for amount %d: %v", amount, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"clientSecret": clientSecret})
}
