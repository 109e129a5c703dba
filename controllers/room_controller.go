// controllers/room_controller.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"hotel-reservation/models"
	"hotel-reservation/services"
	"hotel-reservation/utils"

	"github.com/gin-gonic/gin"
	mysql "github.com/go-sql-driver/mysql"
)

type roomPayload struct {
	Type        string  `json:"type" binding:"required"`
	BasePrice   float64 `json:"basePrice" binding:"min=0"`
	Capacity    int     `json:"capacity" binding:"required,min=1"`
	Description string  `json:"description"`
	Image       string  `json:"image"` // optional base64 upload
	AmenityIDs  []uint  `json:"amenityIds"`
}

type roomAmenitiesPayload struct {
	AmenityIDs []uint `json:"amenityIds"`
}

type RoomController struct {
	RoomSvc *services.RoomService
}

func NewRoomController(svc *services.RoomService) *RoomController {
	return &RoomController{RoomSvc: svc}
}

func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return uint(id), true
}

func isForeignKeyError(err error) bool {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		// 1451/1452: row is referenced / references a missing row
		return me.Number == 1451 || me.Number == 1452
	}
	return false
}

// GET /api/rooms
func (ctrl *RoomController) GetRooms(c *gin.Context) {
	rooms, err := ctrl.RoomSvc.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load rooms")
		return
	}

	out := make([]gin.H, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, gin.H{
			"room":      r,
			"unitPrice": r.UnitPrice(),
		})
	}
	utils.JSONSuccess(c, http.StatusOK, out)
}

// GET /api/rooms/:id
func (ctrl *RoomController) GetRoom(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	room, err := ctrl.RoomSvc.GetByID(id)
	if err != nil {
		if services.Code(err) == services.ErrNotFound {
			utils.JSONError(c, http.StatusNotFound, err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to load room")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"room": room, "unitPrice": room.UnitPrice()})
}

// POST /api/rooms
func (ctrl *RoomController) CreateRoom(c *gin.Context) {
	var payload roomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	room := models.Room{
		Type:        payload.Type,
		BasePrice:   payload.BasePrice,
		Capacity:    payload.Capacity,
		Description: payload.Description,
		IsAvailable: true,
	}

	if payload.Image != "" {
		path, err := services.SaveBase64Image(payload.Image, "room_images")
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid image: "+err.Error())
			return
		}
		room.Image = path
	}

	if err := ctrl.RoomSvc.Create(&room); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create room")
		return
	}

	if len(payload.AmenityIDs) > 0 {
		updated, err := ctrl.RoomSvc.SetAmenities(room.ID, payload.AmenityIDs)
		if err != nil {
			if services.Code(err) == services.ErrNotFound {
				utils.JSONError(c, http.StatusBadRequest, err.Error())
				return
			}
			utils.JSONError(c, http.StatusInternalServerError, "failed to attach amenities")
			return
		}
		room = *updated
	}

	utils.JSONSuccess(c, http.StatusCreated, gin.H{"room": room, "unitPrice": room.UnitPrice()})
}

// PUT /api/rooms/:id
func (ctrl *RoomController) UpdateRoom(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var payload roomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	room, err := ctrl.RoomSvc.GetByID(id)
	if err != nil {
		if services.Code(err) == services.ErrNotFound {
			utils.JSONError(c, http.StatusNotFound, err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to load room")
		return
	}

	room.Type = payload.Type
	room.BasePrice = payload.BasePrice
	room.Capacity = payload.Capacity
	room.Description = payload.Description
	if payload.Image != "" {
		path, err := services.SaveBase64Image(payload.Image, "room_images")
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid image: "+err.Error())
			return
		}
		room.Image = path
	}

	if err := ctrl.RoomSvc.Update(room); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update room")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"room": room, "unitPrice": room.UnitPrice()})
}

// PUT /api/rooms/:id/amenities
func (ctrl *RoomController) SetRoomAmenities(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var payload roomAmenitiesPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	room, err := ctrl.RoomSvc.SetAmenities(id, payload.AmenityIDs)
	if err != nil {
		if services.Code(err) == services.ErrNotFound {
			utils.JSONError(c, http.StatusNotFound, err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to update amenities")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"room": room, "unitPrice": room.UnitPrice()})
}

// DELETE /api/rooms/:id — removes the room and its reservations.
func (ctrl *RoomController) DeleteRoom(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := ctrl.RoomSvc.Delete(id); err != nil {
		if services.Code(err) == services.ErrNotFound {
			utils.JSONError(c, http.StatusNotFound, err.Error())
			return
		}
		if isForeignKeyError(err) {
			utils.JSONError(c, http.StatusConflict, "room is still referenced")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete room")
		return
	}
	utils.JSONMessage(c, http.StatusOK, "room deleted")
}
