// controllers/availability_controller.go
package controllers

import (
	"log"
	"net/http"

	"hotel-pms/services"
	"hotel-pms/utils"

	"github.com/gin-gonic/gin"
)

type AvailabilityController struct {
	AvailabilitySvc *services.AvailabilityService
}

func NewAvailabilityController(svc *services.AvailabilityService) *AvailabilityController {
	return &AvailabilityController{AvailabilitySvc: svc}
}

// CheckAvailability is the advisory pre-flight check for the booking UI. The
// admission workflow re-validates on its own; this answer is never binding.
func (ctrl *AvailabilityController) CheckAvailability(c *gin.Context) {
	propertyID := parseUintQuery(c, "property_id")
	roomTypeID := parseUintQuery(c, "room_type_id")
	arrival, okA := parseDateQuery(c, "arrival")
	departure, okD := parseDateQuery(c, "departure")
	if propertyID == 0 || roomTypeID == 0 || !okA || !okD {
		utils.JSONError(c, http.StatusBadRequest, "property_id, room_type_id, arrival and departure are required")
		return
	}
	if utils.NightsBetween(arrival, departure) <= 0 {
		utils.JSONError(c, http.StatusBadRequest, "departure must be after arrival")
		return
	}

	result, err := ctrl.AvailabilitySvc.CheckAvailability(propertyID, roomTypeID, arrival, departure)
	if err != nil {
		log.Printf("CheckAvailability error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to check availability")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, result)
}

// GetCalendar returns per-date occupancy and restriction facts over [from, to).
func (ctrl *AvailabilityController) GetCalendar(c *gin.Context) {
	propertyID := parseUintQuery(c, "property_id")
	roomTypeID := parseUintQuery(c, "room_type_id")
	from, okF := parseDateQuery(c, "from")
	to, okT := parseDateQuery(c, "to")
	if propertyID == 0 || roomTypeID == 0 || !okF || !okT {
		utils.JSONError(c, http.StatusBadRequest, "property_id, room_type_id, from and to are required")
		return
	}
	if utils.NightsBetween(from, to) <= 0 {
		utils.JSONError(c, http.StatusBadRequest, "to must be after from")
		return
	}

	days, err := ctrl.AvailabilitySvc.Calendar(propertyID, roomTypeID, from, to)
	if err != nil {
		log.Printf("GetCalendar error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to build availability calendar")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, days)
}
