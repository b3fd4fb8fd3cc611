package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/learncards-backend/internal/apierr"
	"github.com/yungbote/learncards-backend/internal/types"
)

const codeInvalidCardType = "invalid_card_type"

// respondServiceError maps a service error onto the wire format. Typed
// API errors keep their status and message; anything else is a store or
// transaction failure and surfaces as a bare 500.
func respondServiceError(c *gin.Context, err error) {
	var ae *apierr.Error
	if errors.As(err, &ae) {
		payload := gin.H{"error": ae.Error()}
		if ae.Code == codeInvalidCardType {
			payload["allowed_types"] = types.AllowedCardTypes()
		}
		c.JSON(ae.Status, payload)
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}

func respondInvalidCardType(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":         message,
		"allowed_types": types.AllowedCardTypes(),
	})
}
