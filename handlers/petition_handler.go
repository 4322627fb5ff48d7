package handlers

import (
	"strconv"

	"github.com/Brahim-Amzil/3arida-sub000/config"
	"github.com/Brahim-Amzil/3arida-sub000/helper"
	"github.com/Brahim-Amzil/3arida-sub000/middleware"
	"github.com/Brahim-Amzil/3arida-sub000/models"
	"github.com/Brahim-Amzil/3arida-sub000/services"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"
)

type PetitionHandler struct {
	petitionService services.PetitionService
	Helper          *helper.HTTPHelper
}

func NewPetitionHandler(petitionService services.PetitionService, h *helper.HTTPHelper) *PetitionHandler {
	return &PetitionHandler{petitionService: petitionService, Helper: h}
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func (h *PetitionHandler) CreatePetition(c *gin.Context) {
	auth := middleware.GetAuthContext(c)

	var req models.CreatePetitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Invalid request payload")
		return
	}
	if errs := h.Helper.ValidateRequest(req); errs != nil {
		h.Helper.SendValidationError(c, models.ErrInvalidPetitionData.Error(), errs)
		return
	}

	petition, err := h.petitionService.CreatePetition(req, auth)
	if err != nil {
		h.Helper.SendBusinessError(c, err)
		return
	}

	h.Helper.SendCreated(c, gin.H{
		"petition": petition,
		"pricing":  models.PricingInfo{Tier: petition.PricingTier, Price: petition.Price},
	})
}

func (h *PetitionHandler) GetPetitions(c *gin.Context) {
	auth := middleware.GetAuthContext(c)

	var params models.PetitionListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, "Invalid query parameters")
		return
	}
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 || params.Limit > 100 {
		params.Limit = 10
	}

	petitions, total, err := h.petitionService.GetPetitions(params, auth)
	if err != nil {
		h.Helper.SendInternalServerError(c, err)
		return
	}

	h.Helper.SendSuccess(c, gin.H{
		"petitions":  petitions,
		"pagination": h.Helper.GeneratePaging(c, params.Limit, params.Page, total),
	})
}

func (h *PetitionHandler) GetPetition(c *gin.Context) {
	auth := middleware.GetAuthContext(c)
	id, ok := parseIDParam(c)
	if !ok {
		h.Helper.SendBadRequest(c, "Invalid petition ID")
		return
	}

	petition, err := h.petitionService.GetPetition(id, auth)
	if err != nil {
		h.Helper.SendBusinessError(c, err)
		return
	}

	h.Helper.SendSuccess(c, petition)
}

func (h *PetitionHandler) UpdatePetition(c *gin.Context) {
	auth := middleware.GetAuthContext(c)
	id, ok := parseIDParam(c)
	if !ok {
		h.Helper.SendBadRequest(c, "Invalid petition ID")
		return
	}

	var req models.UpdatePetitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Invalid request payload")
		return
	}
	if errs := h.Helper.ValidateRequest(req); errs != nil {
		h.Helper.SendValidationError(c, models.ErrInvalidPetitionData.Error(), errs)
		return
	}

	petition, err := h.petitionService.UpdatePetition(id, req, auth)
	if err != nil {
		h.Helper.SendBusinessError(c, err)
		return
	}

	h.Helper.SendSuccess(c, petition)
}

func (h *PetitionHandler) DeletePetition(c *gin.Context) {
	auth := middleware.GetAuthContext(c)
	id, ok := parseIDParam(c)
	if !ok {
		h.Helper.SendBadRequest(c, "Invalid petition ID")
		return
	}

	if err := h.petitionService.DeletePetition(id, c.Query("reason"), auth); err != nil {
		h.Helper.SendBusinessError(c, err)
		return
	}

	h.Helper.SendSuccess(c, gin.H{"message": "Petition deleted successfully"})
}

func (h *PetitionHandler) SubmitPetition(c *gin.Context) {
	auth := middleware.GetAuthContext(c)
	id, ok := parseIDParam(c)
	if !ok {
		h.Helper.SendBadRequest(c, "Invalid petition ID")
		return
	}

	petition, err := h.petitionService.SubmitPetition(id, auth)
	if err != nil {
		h.Helper.SendBusinessError(c, err)
		return
	}

	h.Helper.SendSuccess(c, petition)
}

// GetPricing previews the tier for a signature target before creation.
func (h *PetitionHandler) GetPricing(c *gin.Context) {
	target, err := strconv.ParseUint(c.Query("target"), 10, 32)
	if err != nil || target == 0 {
		h.Helper.SendBadRequest(c, "Invalid signature target")
		return
	}

	h.Helper.SendSuccess(c, services.CalculatePricingTier(uint(target)))
}

// GetPetitionQR renders a PNG QR code pointing at the petition share URL.
func (h *PetitionHandler) GetPetitionQR(c *gin.Context) {
	auth := middleware.GetAuthContext(c)
	id, ok := parseIDParam(c)
	if !ok {
		h.Helper.SendBadRequest(c, "Invalid petition ID")
		return
	}

	petition, err := h.petitionService.GetPetition(id, auth)
	if err != nil {
		h.Helper.SendBusinessError(c, err)
		return
	}

	size := 256
	if s, err := strconv.Atoi(c.Query("size")); err == nil && s >= 64 && s <= 1024 {
		size = s
	}

	png, err := qrcode.Encode(config.ShareBaseURL+petition.ShareCode, qrcode.Medium, size)
	if err != nil {
		h.Helper.SendInternalServerError(c, err)
		return
	}

	c.Data(200, "image/png", png)
}
