// controllers/rate_controller.go
package controllers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"hotel-pms/models"
	"hotel-pms/services"
	"hotel-pms/utils"

	"github.com/gin-gonic/gin"
)

type CreateRatePlanRequest struct {
	PropertyID      uint   `json:"property_id" binding:"required"`
	Name            string `json:"name" binding:"required"`
	Description     string `json:"description"`
	MinLengthOfStay *int   `json:"min_length_of_stay"`
	MaxLengthOfStay *int   `json:"max_length_of_stay"`
	IsActive        *bool  `json:"is_active"`
}

type BulkDailyRatesRequest struct {
	PropertyID uint   `json:"property_id" binding:"required"`
	RoomTypeID uint   `json:"room_type_id" binding:"required"`
	RatePlanID uint   `json:"rate_plan_id" binding:"required"`
	From       string `json:"from" binding:"required"`
	To         string `json:"to" binding:"required"`

	Rate             float64 `json:"rate" binding:"required"`
	StopSell         bool    `json:"stop_sell"`
	CloseToArrival   bool    `json:"close_to_arrival"`
	CloseToDeparture bool    `json:"close_to_departure"`
}

type RateController struct {
	RateSvc     *services.RateService
	RatePlanSvc *services.RatePlanService
}

func NewRateController(rates *services.RateService, plans *services.RatePlanService) *RateController {
	return &RateController{RateSvc: rates, RatePlanSvc: plans}
}

// GetBestRate quotes the cheapest complete stay across active rate plans.
func (ctrl *RateController) GetBestRate(c *gin.Context) {
	propertyID := parseUintQuery(c, "property_id")
	roomTypeID := parseUintQuery(c, "room_type_id")
	arrival, okA := parseDateQuery(c, "arrival")
	departure, okD := parseDateQuery(c, "departure")
	if propertyID == 0 || roomTypeID == 0 || !okA || !okD {
		utils.JSONError(c, http.StatusBadRequest, "property_id, room_type_id, arrival and departure are required")
		return
	}

	nights := utils.NightsBetween(arrival, departure)
	if nights <= 0 {
		utils.JSONError(c, http.StatusBadRequest, "departure must be after arrival")
		return
	}

	quote, err := ctrl.RateSvc.BestRate(nil, propertyID, roomTypeID, arrival, departure, nights)
	if err != nil {
		if errors.Is(err, services.ErrNoRatesAvailable) {
			utils.JSONDenied(c, http.StatusUnprocessableEntity, services.DenialNoRates,
				"No available rates for the selected dates", nil)
			return
		}
		log.Printf("GetBestRate error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to calculate rates")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, quote)
}

func (ctrl *RateController) CreateRatePlan(c *gin.Context) {
	var payload CreateRatePlanRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}

	isActive := true
	if payload.IsActive != nil {
		isActive = *payload.IsActive
	}

	plan := models.RatePlan{
		PropertyID:      payload.PropertyID,
		Name:            payload.Name,
		Description:     payload.Description,
		MinLengthOfStay: payload.MinLengthOfStay,
		MaxLengthOfStay: payload.MaxLengthOfStay,
		IsActive:        isActive,
	}
	if err := ctrl.RatePlanSvc.Create(&plan); err != nil {
		if strings.HasPrefix(err.Error(), "validation:") {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("CreateRatePlan error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to create rate plan")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, plan)
}

func (ctrl *RateController) GetRatePlans(c *gin.Context) {
	plans, err := ctrl.RatePlanSvc.ListByProperty(parseUintQuery(c, "property_id"))
	if err != nil {
		log.Printf("GetRatePlans error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to retrieve rate plans")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, plans)
}

func (ctrl *RateController) UpdateRatePlan(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid rate plan id")
		return
	}

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	if err := ctrl.RatePlanSvc.Update(id, updates); err != nil {
		if errors.Is(err, services.ErrRatePlanNotFound) {
			utils.JSONError(c, http.StatusNotFound, "rate plan not found")
			return
		}
		if strings.HasPrefix(err.Error(), "validation:") {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("UpdateRatePlan %d error: %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to update rate plan")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "rate plan updated"})
}

func (ctrl *RateController) DeleteRatePlan(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid rate plan id")
		return
	}
	if err := ctrl.RatePlanSvc.Delete(id); err != nil {
		log.Printf("DeleteRatePlan %d error: %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete rate plan")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "rate plan deleted"})
}

// SetDailyRates bulk-writes nightly rate rows, one per date in [from, to).
func (ctrl *RateController) SetDailyRates(c *gin.Context) {
	var payload BulkDailyRatesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}

	from, err := utils.ParseDate(payload.From)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid from date format")
		return
	}
	to, err := utils.ParseDate(payload.To)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid to date format")
		return
	}

	written, err := ctrl.RatePlanSvc.SetDailyRates(services.DailyRateSpec{
		PropertyID:       payload.PropertyID,
		RoomTypeID:       payload.RoomTypeID,
		RatePlanID:       payload.RatePlanID,
		From:             from,
		To:               to,
		Rate:             payload.Rate,
		StopSell:         payload.StopSell,
		CloseToArrival:   payload.CloseToArrival,
		CloseToDeparture: payload.CloseToDeparture,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRatePlanNotFound):
			utils.JSONError(c, http.StatusNotFound, "rate plan not found")
		case strings.HasPrefix(err.Error(), "validation:"):
			utils.JSONError(c, http.StatusBadRequest, err.Error())
		default:
			log.Printf("SetDailyRates error: %v", err)
			utils.JSONError(c, http.StatusInternalServerError, "failed to set daily rates")
		}
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"dates_written": written})
}

func (ctrl *RateController) GetDailyRates(c *gin.Context) {
	propertyID := parseUintQuery(c, "property_id")
	roomTypeID := parseUintQuery(c, "room_type_id")
	from, okF := parseDateQuery(c, "from")
	to, okT := parseDateQuery(c, "to")
	if propertyID == 0 || roomTypeID == 0 || !okF || !okT {
		utils.JSONError(c, http.StatusBadRequest, "property_id, room_type_id, from and to are required")
		return
	}

	rows, err := ctrl.RatePlanSvc.ListDailyRates(propertyID, roomTypeID, parseUintQuery(c, "rate_plan_id"), from, to)
	if err != nil {
		log.Printf("GetDailyRates error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to retrieve daily rates")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rows)
}
