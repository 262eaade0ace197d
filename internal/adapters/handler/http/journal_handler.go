package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/lifesync/internal/core/services"
)

type JournalHandler struct {
	svc *services.JournalService
}

func NewJournalHandler(svc *services.JournalService) *JournalHandler {
	return &JournalHandler{svc: svc}
}

type writeJournalRequest struct {
	Text string `json:"text"`
}

func (h *JournalHandler) RegisterRoutes(router *gin.RouterGroup) {
	journal := router.Group("/journal")
	{
		journal.GET("", h.List)
		journal.POST("", h.Write)
	}
}

// Write godoc
// @Summary  Append a private journal entry for today
// @Tags     journal
// @Accept   json
// @Produce  json
// @Param    entry  body  writeJournalRequest  true  "Entry"
// @Success  201  {object}  map[string]string
// @Failure  400  {object}  map[string]string
// @Router   /journal [post]
func (h *JournalHandler) Write(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req writeJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	msg, err := h.svc.Write(c.Request.Context(), userID, req.Text)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": msg})
}

// List godoc
// @Summary  Journal entries, newest day first
// @Tags     journal
// @Produce  json
// @Success  200  {array}  domain.JournalEntry
// @Router   /journal [get]
func (h *JournalHandler) List(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	entries, err := h.svc.List(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}
