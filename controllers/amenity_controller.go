package controllers

import (
	"net/http"

	"hotel-reservation/models"
	"hotel-reservation/services"
	"hotel-reservation/utils"

	"github.com/gin-gonic/gin"
)

type amenityPayload struct {
	Name string  `json:"name" binding:"required"`
	Fee  float64 `json:"fee" binding:"min=0"`
}

type AmenityController struct {
	AmenitySvc *services.AmenityService
}

func NewAmenityController(svc *services.AmenityService) *AmenityController {
	return &AmenityController{AmenitySvc: svc}
}

func (ctrl *AmenityController) GetAmenities(c *gin.Context) {
	amenities, err := ctrl.AmenitySvc.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load amenities")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, amenities)
}

func (ctrl *AmenityController) GetAmenity(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	a, err := ctrl.AmenitySvc.GetByID(id)
	if err != nil {
		if services.Code(err) == services.ErrNotFound {
			utils.JSONError(c, http.StatusNotFound, err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to load amenity")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, a)
}

func (ctrl *AmenityController) CreateAmenity(c *gin.Context) {
	var payload amenityPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	a := models.Amenity{Name: payload.Name, Fee: payload.Fee}
	if err := ctrl.AmenitySvc.Create(&a); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create amenity")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, a)
}

func (ctrl *AmenityController) UpdateAmenity(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var payload amenityPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	a, err := ctrl.AmenitySvc.GetByID(id)
	if err != nil {
		if services.Code(err) == services.ErrNotFound {
			utils.JSONError(c, http.StatusNotFound, err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to load amenity")
		return
	}

	a.Name = payload.Name
	a.Fee = payload.Fee
	if err := ctrl.AmenitySvc.Update(a); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update amenity")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, a)
}

// DeleteAmenity detaches the amenity from all rooms before removing it;
// snapshotted reservation prices are unaffected.
func (ctrl *AmenityController) DeleteAmenity(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := ctrl.AmenitySvc.Delete(id); err != nil {
		if services.Code(err) == services.ErrNotFound {
			utils.JSONError(c, http.StatusNotFound, err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete amenity")
		return
	}
	utils.JSONMessage(c, http.StatusOK, "amenity deleted")
}
