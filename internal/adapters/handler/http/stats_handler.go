package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/lifesync/internal/core/domain"
	"github.com/comitanigiacomo/lifesync/internal/core/services"
)

type StatsHandler struct {
	svc *services.StatsService
	now func() time.Time
}

func NewStatsHandler(svc *services.StatsService, now func() time.Time) *StatsHandler {
	if now == nil {
		now = time.Now
	}
	return &StatsHandler{svc: svc, now: now}
}

func (h *StatsHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/stats/weekly", h.GetWeeklyStats)
	r.GET("/stats/streak", h.GetStreak)
}

// GetWeeklyStats godoc
// @Summary  Per-task completion over a date range
// @Tags     stats
// @Produce  json
// @Param    start_date  query  string  false  "YYYY-MM-DD, defaults to six days before end_date"
// @Param    end_date    query  string  false  "YYYY-MM-DD, defaults to today"
// @Success  200  {object}  domain.RangeStats
// @Failure  400  {object}  map[string]string
// @Router   /stats/weekly [get]
func (h *StatsHandler) GetWeeklyStats(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var endDate, startDate time.Time
	var err error

	if v := c.Query("end_date"); v == "" {
		endDate = h.now().UTC()
	} else if endDate, err = domain.ParseDate(v); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end_date format, expected YYYY-MM-DD"})
		return
	}

	if v := c.Query("start_date"); v == "" {
		startDate = endDate.AddDate(0, 0, -6)
	} else if startDate, err = domain.ParseDate(v); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_date format, expected YYYY-MM-DD"})
		return
	}

	stats, err := h.svc.GetWeeklyStats(c.Request.Context(), domain.StatsInput{
		UserID:    userID,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetStreak godoc
// @Summary  Current and longest run of fully completed days
// @Tags     stats
// @Produce  json
// @Success  200  {object}  domain.Streak
// @Router   /stats/streak [get]
func (h *StatsHandler) GetStreak(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	streak, err := h.svc.GetStreak(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, streak)
}
