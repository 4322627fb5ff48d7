package handlers

import (
	"github.com/Brahim-Amzil/3arida-sub000/helper"
	"github.com/Brahim-Amzil/3arida-sub000/middleware"
	"github.com/Brahim-Amzil/3arida-sub000/models"
	"github.com/Brahim-Amzil/3arida-sub000/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService services.AuthService
	Helper      *helper.HTTPHelper
}

func NewAuthHandler(authService services.AuthService, h *helper.HTTPHelper) *AuthHandler {
	return &AuthHandler{authService: authService, Helper: h}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Invalid request payload")
		return
	}
	if errs := h.Helper.ValidateRequest(req); errs != nil {
		h.Helper.SendValidationError(c, "Invalid registration data", errs)
		return
	}

	response, err := h.authService.Register(req)
	if err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	h.Helper.SendCreated(c, response)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Invalid request payload")
		return
	}
	if errs := h.Helper.ValidateRequest(req); errs != nil {
		h.Helper.SendValidationError(c, "Invalid login data", errs)
		return
	}

	response, err := h.authService.Login(req)
	if err != nil {
		h.Helper.SendUnauthorizedError(c, err.Error())
		return
	}

	h.Helper.SendSuccess(c, response)
}

func (h *AuthHandler) GetProfile(c *gin.Context) {
	auth := middleware.GetAuthContext(c)
	if auth == nil {
		h.Helper.SendUnauthorizedError(c, "Authentication required")
		return
	}

	user, err := h.authService.GetUserByID(auth.UserID)
	if err != nil {
		h.Helper.SendBusinessError(c, err)
		return
	}

	h.Helper.SendSuccess(c, user)
}

func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	auth := middleware.GetAuthContext(c)
	if auth == nil {
		h.Helper.SendUnauthorizedError(c, "Authentication required")
		return
	}

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Invalid request payload")
		return
	}
	if errs := h.Helper.ValidateRequest(req); errs != nil {
		h.Helper.SendValidationError(c, "Invalid profile data", errs)
		return
	}

	user, err := h.authService.UpdateProfile(auth.UserID, req)
	if err != nil {
		h.Helper.SendBusinessError(c, err)
		return
	}

	h.Helper.SendSuccess(c, user)
}
