package controllers

import (
	"errors"
	"log"
	"net/http"

	"hotel-pms/models"
	"hotel-pms/services"
	"hotel-pms/utils"

	"github.com/gin-gonic/gin"
)

type CreateRoomRequest struct {
	PropertyID  uint   `json:"property_id" binding:"required"`
	RoomTypeID  *uint  `json:"room_type_id"`
	RoomNumber  string `json:"roomNumber" binding:"required"`
	Floor       string `json:"floor"`
	Status      string `json:"status"`
	Description string `json:"description"`

	// Omitted means active; only an explicit false creates the room out of
	// inventory.
	Active *bool `json:"active"`
}

type RoomController struct {
	RoomSvc *services.RoomService
}

func NewRoomController(svc *services.RoomService) *RoomController {
	return &RoomController{RoomSvc: svc}
}

func (ctrl *RoomController) GetRooms(c *gin.Context) {
	rooms, err := ctrl.RoomSvc.GetAll(parseUintQuery(c, "property_id"))
	if err != nil {
		log.Printf("GetRooms error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to retrieve rooms")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

func (ctrl *RoomController) CreateRoom(c *gin.Context) {
	var payload CreateRoomRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}

	active := true
	if payload.Active != nil {
		active = *payload.Active
	}

	room := models.Room{
		PropertyID:  payload.PropertyID,
		RoomTypeID:  payload.RoomTypeID,
		RoomNumber:  payload.RoomNumber,
		Floor:       payload.Floor,
		Status:      payload.Status,
		Description: payload.Description,
		Active:      active,
	}

	if err := ctrl.RoomSvc.Create(&room); err != nil {
		log.Printf("CreateRoom error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to create room")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, room)
}

func (ctrl *RoomController) UpdateRoom(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid room id")
		return
	}

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	if err := ctrl.RoomSvc.Update(id, updates); err != nil {
		if errors.Is(err, services.ErrRoomNotFound) {
			utils.JSONError(c, http.StatusNotFound, "room not found")
			return
		}
		log.Printf("UpdateRoom %d error: %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to update room")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "room updated"})
}

// DeactivateRoom pulls the room out of sellable inventory. Inventory counts
// pick the change up on the next availability check.
func (ctrl *RoomController) DeactivateRoom(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid room id")
		return
	}
	if err := ctrl.RoomSvc.Deactivate(id); err != nil {
		if errors.Is(err, services.ErrRoomNotFound) {
			utils.JSONError(c, http.StatusNotFound, "room not found")
			return
		}
		log.Printf("DeactivateRoom %d error: %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to deactivate room")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "room deactivated"})
}

func (ctrl *RoomController) DeleteRoom(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid room id")
		return
	}
	if err := ctrl.RoomSvc.Delete(id); err != nil {
		log.Printf("DeleteRoom %d error: %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete room")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "room deleted"})
}
