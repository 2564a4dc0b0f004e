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

type GuestController struct {
	GuestSvc *services.GuestService
}

func NewGuestController(svc *services.GuestService) *GuestController {
	return &GuestController{GuestSvc: svc}
}

func (ctrl *GuestController) GetGuests(c *gin.Context) {
	guests, err := ctrl.GuestSvc.GetAll(parseUintQuery(c, "property_id"))
	if err != nil {
		log.Printf("GetGuests error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to retrieve guests")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, guests)
}

func (ctrl *GuestController) GetGuestByID(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid guest id")
		return
	}

	guest, err := ctrl.GuestSvc.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrGuestNotFound) {
			utils.JSONError(c, http.StatusNotFound, "guest not found")
			return
		}
		log.Printf("GetGuestByID %d error: %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to retrieve guest")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, guest)
}

func (ctrl *GuestController) CreateGuest(c *gin.Context) {
	var guest models.Guest
	if err := c.ShouldBindJSON(&guest); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}

	if err := ctrl.GuestSvc.Create(&guest); err != nil {
		log.Printf("CreateGuest error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to create guest")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, guest)
}

func (ctrl *GuestController) UpdateGuest(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid guest id")
		return
	}

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	if err := ctrl.GuestSvc.Update(id, updates); err != nil {
		if errors.Is(err, services.ErrGuestNotFound) {
			utils.JSONError(c, http.StatusNotFound, "guest not found")
			return
		}
		log.Printf("UpdateGuest %d error: %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to update guest")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "guest updated"})
}

func (ctrl *GuestController) DeleteGuest(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid guest id")
		return
	}
	if err := ctrl.GuestSvc.Delete(id); err != nil {
		log.Printf("DeleteGuest %d error: %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete guest")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "guest deleted"})
}
