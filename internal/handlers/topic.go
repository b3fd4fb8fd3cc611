package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/learncards-backend/internal/services"
	"github.com/yungbote/learncards-backend/internal/types"
)

type TopicHandler struct {
	topicService services.TopicService
}

func NewTopicHandler(topicService services.TopicService) *TopicHandler {
	return &TopicHandler{topicService: topicService}
}

// GET /topics
func (th *TopicHandler) List(c *gin.Context) {
	topics, err := th.topicService.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, topics)
}

// POST /topics
// body: { "topic": "Docker volumes", "formats": ["flashcard", "summary"] }
func (th *TopicHandler) Create(c *gin.Context) {
	var req struct {
		Topic   *string  `json:"topic"`
		Formats []string `json:"formats"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Topic == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing 'topic' in request body"})
		return
	}

	name := strings.TrimSpace(*req.Topic)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Topic name cannot be empty"})
		return
	}
	if len(req.Formats) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Formats must be a non-empty list"})
		return
	}
	for _, f := range req.Formats {
		if !types.IsValidCardType(f) {
			respondInvalidCardType(c, fmt.Sprintf("Invalid card_type in formats: '%s'", f))
			return
		}
	}

	topic, cards, err := th.topicService.CreateWithCards(c.Request.Context(), name, req.Formats)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"topic": topic,
		"cards": cards,
	})
}

// GET /topics/:id/cards?type=
func (th *TopicHandler) ListCards(c *gin.Context) {
	topicID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Topic not found"})
		return
	}

	var cardType *string
	if t := c.Query("type"); t != "" {
		cardType = &t
	}

	cards, err := th.topicService.ListCards(c.Request.Context(), topicID, cardType)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cards)
}
