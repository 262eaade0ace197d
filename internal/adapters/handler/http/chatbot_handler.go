package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/lifesync/internal/core/domain"
	"github.com/comitanigiacomo/lifesync/internal/core/services"
)

type ChatbotHandler struct {
	chat     *services.ChatbotService
	wellness *services.WellnessService
}

func NewChatbotHandler(chat *services.ChatbotService, wellness *services.WellnessService) *ChatbotHandler {
	return &ChatbotHandler{
		chat:     chat,
		wellness: wellness,
	}
}

type chatRequest struct {
	Message string `json:"message" binding:"required"`
}

func (h *ChatbotHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/chatbot/messages", h.Message)
	r.POST("/wellness/assessment", h.Assess)
	r.GET("/wellness/history", h.History)
}

// Message godoc
// @Summary  Talk to the mood companion
// @Tags     chatbot
// @Accept   json
// @Produce  json
// @Param    message  body  chatRequest  true  "Message"
// @Success  200  {object}  services.ChatReply
// @Router   /chatbot/messages [post]
func (h *ChatbotHandler) Message(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.chat.Reply(req.Message))
}

// Assess godoc
// @Summary  Keyword-based wellness hints
// @Tags     wellness
// @Accept   json
// @Produce  json
// @Param    history  body  domain.HealthHistory  true  "Health history"
// @Success  200  {object}  services.WellnessAssessment
// @Failure  400  {object}  map[string]string
// @Router   /wellness/assessment [post]
func (h *ChatbotHandler) Assess(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req domain.HealthHistory
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	result, err := h.wellness.Assess(c.Request.Context(), userID, req)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// History godoc
// @Summary  Last submitted health history
// @Tags     wellness
// @Produce  json
// @Success  200  {object}  domain.HealthHistory
// @Router   /wellness/history [get]
func (h *ChatbotHandler) History(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	history, err := h.wellness.History(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}
