package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nahid-mahmud/diacare-server/internal/utils"
)

// IssueToken signs the request body as token claims. The frontend sends the
// logged-in user's email here after authenticating upstream.
func (h *Handler) IssueToken(c *gin.Context) {
	var claims map[string]interface{}
	if err := c.ShouldBindJSON(&claims); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	token, err := utils.SignClaims(claims, h.TokenSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
