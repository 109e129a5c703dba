// controllers/reservation_controller.go
package controllers

import (
	"net/http"

	"hotel-reservation/middleware"
	"hotel-reservation/services"
	"hotel-reservation/utils"

	"github.com/gin-gonic/gin"
)

type createReservationPayload struct {
	RoomID        uint   `json:"room_id" binding:"required"`
	DateBookFrom  string `json:"date_bookfrom" binding:"required"`
	DateBookUntil string `json:"date_bookuntil" binding:"required"`
}

type updateReservationPayload struct {
	DateBookFrom  string `json:"date_bookfrom" binding:"required"`
	DateBookUntil string `json:"date_bookuntil" binding:"required"`
}

type ReservationController struct {
	ReservationSvc *services.ReservationService
}

func NewReservationController(svc *services.ReservationService) *ReservationController {
	return &ReservationController{ReservationSvc: svc}
}

// respondReservationError maps domain rejections onto HTTP statuses:
// range validation -> 400, overlap conflicts -> 409.
func respondReservationError(c *gin.Context, err error) {
	switch {
	case services.IsValidation(err):
		utils.JSONError(c, http.StatusBadRequest, err.Error())
	case services.IsConflict(err):
		utils.JSONError(c, http.StatusConflict, err.Error())
	case services.Code(err) == services.ErrNotFound:
		utils.JSONError(c, http.StatusNotFound, err.Error())
	case services.Code(err) == services.ErrNotOwner:
		utils.JSONError(c, http.StatusForbidden, err.Error())
	case services.Code(err) == services.ErrAlreadyIn,
		services.Code(err) == services.ErrAlreadyOut:
		utils.JSONError(c, http.StatusConflict, err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
	}
}

// POST /api/reservations
func (ctrl *ReservationController) CreateReservation(c *gin.Context) {
	var payload createReservationPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	userID := middleware.CurrentUserID(c)
	res, err := ctrl.ReservationSvc.Create(userID, payload.RoomID, payload.DateBookFrom, payload.DateBookUntil)
	if err != nil {
		respondReservationError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, res)
}

// PUT /api/reservations/:id — edit the stay range; the reservation's own
// prior range is excluded from the overlap check so an unchanged
// re-submission goes through.
func (ctrl *ReservationController) UpdateReservation(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var payload updateReservationPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	res, err := ctrl.ReservationSvc.UpdateDates(
		id,
		middleware.CurrentUserID(c),
		middleware.CurrentUserIsStaff(c),
		payload.DateBookFrom,
		payload.DateBookUntil,
	)
	if err != nil {
		respondReservationError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, res)
}

// GET /api/reservations
func (ctrl *ReservationController) GetReservations(c *gin.Context) {
	list, err := ctrl.ReservationSvc.ListForUser(
		middleware.CurrentUserID(c),
		middleware.CurrentUserIsStaff(c),
	)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load reservations")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

// GET /api/reservations/:id
func (ctrl *ReservationController) GetReservation(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	res, err := ctrl.ReservationSvc.GetByID(id)
	if err != nil {
		respondReservationError(c, err)
		return
	}
	if res.UserID != middleware.CurrentUserID(c) && !middleware.CurrentUserIsStaff(c) {
		utils.JSONError(c, http.StatusForbidden, "reservation belongs to another user")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, res)
}

// DELETE /api/reservations/:id
func (ctrl *ReservationController) DeleteReservation(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	err := ctrl.ReservationSvc.Delete(id, middleware.CurrentUserID(c), middleware.CurrentUserIsStaff(c))
	if err != nil {
		respondReservationError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "reservation deleted")
}

// POST /api/reservations/:id/checkin
func (ctrl *ReservationController) CheckIn(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	res, err := ctrl.ReservationSvc.CheckIn(id, middleware.CurrentUserID(c), middleware.CurrentUserIsStaff(c))
	if err != nil {
		respondReservationError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, res)
}

// POST /api/reservations/:id/checkout
func (ctrl *ReservationController) CheckOut(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	res, err := ctrl.ReservationSvc.CheckOut(id, middleware.CurrentUserID(c), middleware.CurrentUserIsStaff(c))
	if err != nil {
		respondReservationError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, res)
}
