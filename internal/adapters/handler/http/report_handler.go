package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/lifesync/internal/core/services"
)

type ReportHandler struct {
	svc *services.RoutineService
	now func() time.Time
}

func NewReportHandler(svc *services.RoutineService, now func() time.Time) *ReportHandler {
	if now == nil {
		now = time.Now
	}
	return &ReportHandler{svc: svc, now: now}
}

func (h *ReportHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/reports/monthly", h.Monthly)
}

// Monthly godoc
// @Summary  Monthly routine report
// @Tags     reports
// @Produce  json
// @Param    year   query  int  false  "Year, defaults to the current one"
// @Param    month  query  int  false  "Month 1-12, defaults to the current one"
// @Success  200  {object}  domain.MonthlyReportData
// @Failure  400  {object}  map[string]string
// @Router   /reports/monthly [get]
func (h *ReportHandler) Monthly(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	now := h.now()
	year, month := now.Year(), int(now.Month())

	if v := c.Query("year"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "year must be an integer"})
			return
		}
		year = parsed
	}
	if v := c.Query("month"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "month must be an integer"})
			return
		}
		month = parsed
	}

	report, err := h.svc.MonthlyReport(c.Request.Context(), userID, year, month)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}
