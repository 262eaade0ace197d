package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/lifesync/internal/core/domain"
	"github.com/comitanigiacomo/lifesync/internal/core/services"
)

type RoutineHandler struct {
	svc *services.RoutineService
}

func NewRoutineHandler(svc *services.RoutineService) *RoutineHandler {
	return &RoutineHandler{
		svc: svc,
	}
}

type addItemRequest struct {
	Task string `json:"task" binding:"required"`
	Time string `json:"time"`
}

type setItemStatusRequest struct {
	Completed *bool `json:"completed" binding:"required"`
}

type routineResponse struct {
	Date           string               `json:"date"`
	Items          []domain.RoutineItem `json:"items"`
	CompletedCount int                  `json:"completed_count"`
	Completion     float64              `json:"completion"`
	FullyCompleted bool                 `json:"fully_completed"`
}

func newRoutineResponse(r *domain.DailyRoutine) routineResponse {
	return routineResponse{
		Date:           r.Key(),
		Items:          r.Items(),
		CompletedCount: r.CompletedCount(),
		Completion:     r.CompletionPercentage(),
		FullyCompleted: r.FullyCompleted(),
	}
}

func (h *RoutineHandler) RegisterRoutes(router *gin.RouterGroup) {
	routines := router.Group("/routines/:date")
	{
		routines.GET("", h.Get)
		routines.POST("/items", h.AddItem)
		routines.PUT("/items/:task", h.SetItemStatus)
		routines.DELETE("/items/:task", h.DeleteItem)
	}
}

// Get godoc
// @Summary  Routine of one day
// @Tags     routines
// @Produce  json
// @Param    date  path  string  true  "ISO date (YYYY-MM-DD)"
// @Success  200  {object}  routineResponse
// @Failure  400  {object}  map[string]string
// @Router   /routines/{date} [get]
func (h *RoutineHandler) Get(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	date, err := domain.ParseDate(c.Param("date"))
	if err != nil {
		handleError(c, err)
		return
	}

	routine, err := h.svc.GetRoutine(c.Request.Context(), userID, date)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, newRoutineResponse(routine))
}

// AddItem godoc
// @Summary  Append a task to a day
// @Tags     routines
// @Accept   json
// @Produce  json
// @Param    date  path  string          true  "ISO date (YYYY-MM-DD)"
// @Param    item  body  addItemRequest  true  "Task"
// @Success  201  {object}  routineResponse
// @Failure  409  {object}  map[string]string
// @Router   /routines/{date}/items [post]
func (h *RoutineHandler) AddItem(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	date, err := domain.ParseDate(c.Param("date"))
	if err != nil {
		handleError(c, err)
		return
	}

	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	routine, err := h.svc.AddItem(c.Request.Context(), services.AddItemInput{
		UserID: userID,
		Date:   date,
		Task:   req.Task,
		Time:   req.Time,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newRoutineResponse(routine))
}

// SetItemStatus godoc
// @Summary  Mark a task complete or not complete
// @Tags     routines
// @Accept   json
// @Produce  json
// @Param    date    path  string                true  "ISO date (YYYY-MM-DD)"
// @Param    task    path  string                true  "Task name"
// @Param    status  body  setItemStatusRequest  true  "Completion"
// @Success  200  {object}  routineResponse
// @Failure  404  {object}  map[string]string
// @Router   /routines/{date}/items/{task} [put]
func (h *RoutineHandler) SetItemStatus(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	date, err := domain.ParseDate(c.Param("date"))
	if err != nil {
		handleError(c, err)
		return
	}

	var req setItemStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	routine, err := h.svc.SetItemStatus(c.Request.Context(), services.SetItemStatusInput{
		UserID:    userID,
		Date:      date,
		Task:      c.Param("task"),
		Completed: *req.Completed,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, newRoutineResponse(routine))
}

// DeleteItem godoc
// @Summary  Remove a task from a day
// @Tags     routines
// @Param    date  path  string  true  "ISO date (YYYY-MM-DD)"
// @Param    task  path  string  true  "Task name"
// @Success  204
// @Failure  404  {object}  map[string]string
// @Router   /routines/{date}/items/{task} [delete]
func (h *RoutineHandler) DeleteItem(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	date, err := domain.ParseDate(c.Param("date"))
	if err != nil {
		handleError(c, err)
		return
	}

	err = h.svc.DeleteItem(c.Request.Context(), services.DeleteItemInput{
		UserID: userID,
		Date:   date,
		Task:   c.Param("task"),
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
