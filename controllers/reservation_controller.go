// controllers/reservation_controller.go
package controllers

import (
	"errors"
	"log"
	"net/http"

	"hotel-pms/services"
	"hotel-pms/utils"

	"github.com/gin-gonic/gin"
)

// CreateReservationRequest is the admission payload. validate_availability
// defaults to true; imports from an external channel manager set it false.
type CreateReservationRequest struct {
	PropertyID uint  `json:"property_id" binding:"required"`
	GuestID    uint  `json:"guest_id" binding:"required"`
	RoomTypeID uint  `json:"room_type_id" binding:"required"`
	RatePlanID *uint `json:"rate_plan_id"`

	Arrival   string `json:"arrival" binding:"required"`
	Departure string `json:"departure" binding:"required"`

	Adults   int `json:"adults"`
	Children int `json:"children"`

	TotalAmount          *float64 `json:"total_amount"`
	ValidateAvailability *bool    `json:"validate_availability"`
}

type AssignRoomRequest struct {
	RoomID uint `json:"room_id" binding:"required"`
}

type ReservationController struct {
	ReservationSvc *services.ReservationService
}

func NewReservationController(svc *services.ReservationService) *ReservationController {
	return &ReservationController{ReservationSvc: svc}
}

// CreateReservation runs the admission workflow. Every denial keeps its
// machine code so the frontend can tell "full" from "restricted" from a bad
// request.
func (ctrl *ReservationController) CreateReservation(c *gin.Context) {
	var payload CreateReservationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}

	arrival, err := utils.ParseDate(payload.Arrival)
	if err != nil {
		utils.JSONDenied(c, http.StatusBadRequest, services.DenialValidation, "invalid arrival date format", nil)
		return
	}
	departure, err := utils.ParseDate(payload.Departure)
	if err != nil {
		utils.JSONDenied(c, http.StatusBadRequest, services.DenialValidation, "invalid departure date format", nil)
		return
	}

	validateAvailability := true
	if payload.ValidateAvailability != nil {
		validateAvailability = *payload.ValidateAvailability
	}

	result, err := ctrl.ReservationSvc.Admit(services.AdmissionRequest{
		PropertyID:  payload.PropertyID,
		GuestID:     payload.GuestID,
		RoomTypeID:  payload.RoomTypeID,
		RatePlanID:  payload.RatePlanID,
		Arrival:     arrival,
		Departure:   departure,
		Adults:      payload.Adults,
		Children:    payload.Children,
		TotalAmount: payload.TotalAmount,
	}, validateAvailability)
	if err != nil {
		log.Printf("CreateReservation storage error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to process reservation")
		return
	}

	if !result.Success {
		extra := gin.H{}
		if result.Availability != nil {
			extra["availability"] = result.Availability
			extra["restrictions"] = result.Availability.Restrictions
		}
		status := http.StatusBadRequest
		switch result.DenialCode {
		case services.DenialNoRates:
			status = http.StatusUnprocessableEntity
		case services.DenialNoRooms, services.DenialRestrictions:
			status = http.StatusConflict
		}
		utils.JSONDenied(c, status, result.DenialCode, result.Message, extra)
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, result.Reservation)
}

func (ctrl *ReservationController) GetReservations(c *gin.Context) {
	list, err := ctrl.ReservationSvc.ListByProperty(parseUintQuery(c, "property_id"))
	if err != nil {
		log.Printf("GetReservations error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to retrieve reservations")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

func (ctrl *ReservationController) GetReservation(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid reservation id")
		return
	}

	reservation, err := ctrl.ReservationSvc.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrReservationNotFound) {
			utils.JSONError(c, http.StatusNotFound, "reservation not found")
			return
		}
		log.Printf("GetReservation %d error: %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to retrieve reservation")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reservation)
}

func (ctrl *ReservationController) CancelReservation(c *gin.Context) {
	ctrl.applyTransition(c, ctrl.ReservationSvc.Cancel, "reservation cancelled")
}

func (ctrl *ReservationController) MarkNoShow(c *gin.Context) {
	ctrl.applyTransition(c, ctrl.ReservationSvc.MarkNoShow, "reservation marked as no-show")
}

func (ctrl *ReservationController) CheckOutReservation(c *gin.Context) {
	ctrl.applyTransition(c, ctrl.ReservationSvc.CheckOut, "reservation checked out")
}

func (ctrl *ReservationController) CheckInReservation(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid reservation id")
		return
	}

	var payload AssignRoomRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: room_id is required")
		return
	}

	if err := ctrl.ReservationSvc.CheckIn(id, payload.RoomID); err != nil {
		switch {
		case errors.Is(err, services.ErrReservationNotFound):
			utils.JSONError(c, http.StatusNotFound, "reservation not found")
		case errors.Is(err, services.ErrInvalidTransition):
			utils.JSONError(c, http.StatusConflict, "reservation is not in a checkable-in state")
		case errors.Is(err, services.ErrRoomNotAssignable):
			utils.JSONError(c, http.StatusConflict, "room cannot be assigned to this reservation")
		default:
			log.Printf("CheckInReservation %d error: %v", id, err)
			utils.JSONError(c, http.StatusInternalServerError, "failed to check in reservation")
		}
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "reservation checked in"})
}

func (ctrl *ReservationController) applyTransition(c *gin.Context, transition func(uint) error, message string) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid reservation id")
		return
	}

	if err := transition(id); err != nil {
		switch {
		case errors.Is(err, services.ErrReservationNotFound):
			utils.JSONError(c, http.StatusNotFound, "reservation not found")
		case errors.Is(err, services.ErrInvalidTransition):
			utils.JSONError(c, http.StatusConflict, "status transition not allowed")
		default:
			log.Printf("reservation transition %d error: %v", id, err)
			utils.JSONError(c, http.StatusInternalServerError, "failed to update reservation")
		}
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": message})
}
