package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/lifesync/internal/core/services"
)

type AttractionHandler struct {
	svc *services.AttractionService
}

func NewAttractionHandler(svc *services.AttractionService) *AttractionHandler {
	return &AttractionHandler{svc: svc}
}

func (h *AttractionHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/attractions", h.List)
	r.GET("/attractions/categories", h.Categories)
	r.GET("/attractions/nearest", h.Nearest)
}

// List godoc
// @Summary  Nearby wellness places
// @Tags     attractions
// @Produce  json
// @Param    category  query  string  false  "Category filter, case-insensitive"
// @Success  200  {array}  domain.Attraction
// @Router   /attractions [get]
func (h *AttractionHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.ByCategory(c.Query("category")))
}

// Categories godoc
// @Summary  Known attraction categories
// @Tags     attractions
// @Produce  json
// @Success  200  {array}  string
// @Router   /attractions/categories [get]
func (h *AttractionHandler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Categories())
}

type nearestQuery struct {
	Lat   *float64 `form:"lat" binding:"required"`
	Lon   *float64 `form:"lon" binding:"required"`
	Limit int      `form:"limit"`
}

// Nearest godoc
// @Summary  Places closest to a point
// @Tags     attractions
// @Produce  json
// @Param    lat    query  number   true   "Latitude"
// @Param    lon    query  number   true   "Longitude"
// @Param    limit  query  integer  false  "Maximum results, default 5"
// @Success  200  {array}   domain.Attraction
// @Failure  400  {object}  map[string]string
// @Router   /attractions/nearest [get]
func (h *AttractionHandler) Nearest(c *gin.Context) {
	var q nearestQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query", "details": err.Error()})
		return
	}

	places, err := h.svc.Nearest(*q.Lat, *q.Lon, q.Limit)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, places)
}
