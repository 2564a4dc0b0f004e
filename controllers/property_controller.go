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

type PropertyController struct {
	PropertySvc *services.PropertyService
}

func NewPropertyController(svc *services.PropertyService) *PropertyController {
	return &PropertyController{PropertySvc: svc}
}

func (ctrl *PropertyController) GetProperties(c *gin.Context) {
	properties, err := ctrl.PropertySvc.GetAll()
	if err != nil {
		log.Printf("GetProperties error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to retrieve properties")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, properties)
}

func (ctrl *PropertyController) GetPropertyByID(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid property id")
		return
	}

	property, err := ctrl.PropertySvc.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrPropertyNotFound) {
			utils.JSONError(c, http.StatusNotFound, "property not found")
			return
		}
		log.Printf("GetPropertyByID %d error: %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to retrieve property")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, property)
}

func (ctrl *PropertyController) CreateProperty(c *gin.Context) {
	var property models.Property
	if err := c.ShouldBindJSON(&property); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}

	if err := ctrl.PropertySvc.Create(&property); err != nil {
		log.Printf("CreateProperty error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to create property")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, property)
}

func (ctrl *PropertyController) UpdateProperty(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid property id")
		return
	}

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	if err := ctrl.PropertySvc.Update(id, updates); err != nil {
		if errors.Is(err, services.ErrPropertyNotFound) {
			utils.JSONError(c, http.StatusNotFound, "property not found")
			return
		}
		log.Printf("UpdateProperty %d error: %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to update property")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "property updated"})
}
