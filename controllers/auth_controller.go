// controllers/auth_controller.go
package controllers

import (
	"net/http"

	"hotel-reservation/middleware"
	"hotel-reservation/services"
	"hotel-reservation/utils"

	"github.com/gin-gonic/gin"
)

type signupPayload struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type signinPayload struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type profileUpdatePayload struct {
	Image string `json:"image" binding:"required"` // base64 or data URI
}

type AuthController struct {
	AuthSvc *services.AuthService
}

func NewAuthController(svc *services.AuthService) *AuthController {
	return &AuthController{AuthSvc: svc}
}

func (ctrl *AuthController) Signup(c *gin.Context) {
	var payload signupPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}

	user, err := ctrl.AuthSvc.SignUp(payload.Username, payload.Email, payload.Password)
	if err != nil {
		if services.Code(err) == services.ErrUsernameTaken {
			utils.JSONError(c, http.StatusConflict, err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to create user")
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, user)
}

func (ctrl *AuthController) Signin(c *gin.Context) {
	var payload signinPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "username and password required")
		return
	}

	token, user, err := ctrl.AuthSvc.SignIn(payload.Username, payload.Password)
	if err != nil {
		if services.Code(err) == services.ErrInvalidCredentials {
			utils.JSONError(c, http.StatusUnauthorized, "invalid credentials")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "sign-in failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
			"is_staff": user.IsStaff,
		},
	})
}

func (ctrl *AuthController) GetProfile(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	user, err := ctrl.AuthSvc.GetProfile(userID)
	if err != nil {
		if services.Code(err) == services.ErrNotFound {
			utils.JSONError(c, http.StatusNotFound, err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to load profile")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, user)
}

func (ctrl *AuthController) UpdateProfile(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	var payload profileUpdatePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "image required")
		return
	}

	path, err := services.SaveBase64Image(payload.Image, "profile_images")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid image: "+err.Error())
		return
	}

	user, err := ctrl.AuthSvc.UpdateProfileImage(userID, path)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update profile")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, user)
}
