package handlers

import (
	"strconv"

	"github.com/Brahim-Amzil/3arida-sub000/helper"
	"github.com/Brahim-Amzil/3arida-sub000/middleware"
	"github.com/Brahim-Amzil/3arida-sub000/models"
	"github.com/Brahim-Amzil/3arida-sub000/services"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	moderatorService services.ModeratorService
	Helper           *helper.HTTPHelper
}

func NewAdminHandler(moderatorService services.ModeratorService, h *helper.HTTPHelper) *AdminHandler {
	return &AdminHandler{moderatorService: moderatorService, Helper: h}
}

// ModeratePetition is reachable by moderators and admins; the per-action
// permission check happens in the service.
func (h *AdminHandler) ModeratePetition(c *gin.Context) {
	auth := middleware.GetAuthContext(c)

	var req models.ModeratePetitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Invalid request payload")
		return
	}
	if errs := h.Helper.ValidateRequest(req); errs != nil {
		h.Helper.SendValidationError(c, "Invalid moderation request", errs)
		return
	}

	petition, err := h.moderatorService.ModeratePetition(req, auth)
	if err != nil {
		h.Helper.SendBusinessError(c, err)
		return
	}

	h.Helper.SendSuccess(c, petition)
}

func (h *AdminHandler) GetUsers(c *gin.Context) {
	var params models.UserListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, "Invalid query parameters")
		return
	}
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 || params.Limit > 100 {
		params.Limit = 20
	}

	users, total, err := h.moderatorService.GetUsers(params)
	if err != nil {
		h.Helper.SendInternalServerError(c, err)
		return
	}

	h.Helper.SendSuccess(c, gin.H{
		"users":      users,
		"pagination": h.Helper.GeneratePaging(c, params.Limit, params.Page, total),
	})
}

func (h *AdminHandler) UpdateUser(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.Helper.SendBadRequest(c, "Invalid user ID")
		return
	}

	var req models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Invalid request payload")
		return
	}
	if errs := h.Helper.ValidateRequest(req); errs != nil {
		h.Helper.SendValidationError(c, "Invalid user data", errs)
		return
	}

	user, err := h.moderatorService.UpdateUser(id, req)
	if err != nil {
		h.Helper.SendBusinessError(c, err)
		return
	}

	h.Helper.SendSuccess(c, user)
}

func (h *AdminHandler) GetModerators(c *gin.Context) {
	moderators, err := h.moderatorService.GetModerators()
	if err != nil {
		h.Helper.SendInternalServerError(c, err)
		return
	}

	h.Helper.SendSuccess(c, moderators)
}

func (h *AdminHandler) AssignModerator(c *gin.Context) {
	auth := middleware.GetAuthContext(c)

	var req models.AssignModeratorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Invalid request payload")
		return
	}
	if errs := h.Helper.ValidateRequest(req); errs != nil {
		h.Helper.SendValidationError(c, "Invalid moderator assignment", errs)
		return
	}

	moderator, err := h.moderatorService.AssignModerator(req, auth)
	if err != nil {
		h.Helper.SendBusinessError(c, err)
		return
	}

	h.Helper.SendCreated(c, moderator)
}

func (h *AdminHandler) RevokeModerator(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid user ID")
		return
	}

	if err := h.moderatorService.RevokeModerator(uint(userID)); err != nil {
		h.Helper.SendBusinessError(c, err)
		return
	}

	h.Helper.SendSuccess(c, gin.H{"message": "Moderator revoked"})
}
