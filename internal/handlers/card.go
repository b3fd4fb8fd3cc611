package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/learncards-backend/internal/services"
)

type CardHandler struct {
	cardService services.CardService
}

func NewCardHandler(cardService services.CardService) *CardHandler {
	return &CardHandler{cardService: cardService}
}

// GET /cards?type=
func (ch *CardHandler) List(c *gin.Context) {
	var cardType *string
	if t := c.Query("type"); t != "" {
		cardType = &t
	}

	cards, err := ch.cardService.List(c.Request.Context(), cardType)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cards)
}

// PUT /cards/:id
// body: { "card_type": "...", "content": "..." } — both optional
func (ch *CardHandler) Update(c *gin.Context) {
	cardID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Card not found"})
		return
	}

	// An absent or malformed body means "no changes"; the request still
	// 404s on an unknown card and otherwise returns the card as-is.
	var req struct {
		CardType *string `json:"card_type"`
		Content  *string `json:"content"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		req.CardType = nil
		req.Content = nil
	}

	card, err := ch.cardService.Update(c.Request.Context(), cardID, req.CardType, req.Content)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, card)
}

// DELETE /cards/:id
func (ch *CardHandler) Delete(c *gin.Context) {
	cardID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Card not found"})
		return
	}

	if err := ch.cardService.Delete(c.Request.Context(), cardID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted", "id": cardID})
}
