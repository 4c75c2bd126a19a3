package handlers

import (
	"context"
	"net/http"
	"time"

	"salonbook/models"
	"salonbook/services/availability"

	"github.com/gin-gonic/gin"
)

type AvailabilityService interface {
	GetAvailability(ctx context.Context, q availability.Query) (*models.AvailabilityResponse, error)
	Schedule() availability.Schedule
	Location() *time.Location
}

type AvailabilityHandler struct {
	Service AvailabilityService
	Now     func() time.Time
}

func NewAvailabilityHandler(svc AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc, Now: time.Now}
}

// GetAvailability serves GET /api/availability?month=YYYY-MM&date=YYYY-MM-DD&durationMinutes=N.
// Malformed parameters fall back to defaults instead of failing.
func (h *AvailabilityHandler) GetAvailability(c *gin.Context) {
	rawDuration := c.Query("durationMinutes")
	if rawDuration == "" {
		rawDuration = c.Query("duration")
	}

	q := availability.ParseQuery(
		c.Query("month"),
		c.Query("date"),
		rawDuration,
		h.Now(),
		h.Service.Location(),
		h.Service.Schedule(),
	)

	resp, err := h.Service.GetAvailability(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
