package handlers

import (
	"github.com/Brahim-Amzil/3arida-sub000/helper"
	"github.com/Brahim-Amzil/3arida-sub000/metrics"
	"github.com/Brahim-Amzil/3arida-sub000/middleware"
	"github.com/Brahim-Amzil/3arida-sub000/models"
	"github.com/Brahim-Amzil/3arida-sub000/services"

	"github.com/gin-gonic/gin"
)

type SignatureHandler struct {
	signatureService services.SignatureService
	Helper           *helper.HTTPHelper
}

func NewSignatureHandler(signatureService services.SignatureService, h *helper.HTTPHelper) *SignatureHandler {
	return &SignatureHandler{signatureService: signatureService, Helper: h}
}

func (h *SignatureHandler) SignPetition(c *gin.Context) {
	auth := middleware.GetAuthContext(c)

	var req models.SignPetitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Invalid request payload")
		return
	}
	if errs := h.Helper.ValidateRequest(req); errs != nil {
		h.Helper.SendValidationError(c, "Invalid signature data", errs)
		return
	}

	signature, petition, err := h.signatureService.SignPetition(req, auth, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		h.Helper.SendBusinessError(c, err)
		return
	}

	metrics.CountSignature()

	h.Helper.SendCreated(c, gin.H{
		"signature": signature,
		"petition":  petition,
	})
}

func (h *SignatureHandler) GetPetitionSignatures(c *gin.Context) {
	auth := middleware.GetAuthContext(c)
	id, ok := parseIDParam(c)
	if !ok {
		h.Helper.SendBadRequest(c, "Invalid petition ID")
		return
	}

	var params models.SignatureListParams
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

	signatures, total, err := h.signatureService.GetPetitionSignatures(id, params, auth)
	if err != nil {
		h.Helper.SendBusinessError(c, err)
		return
	}

	h.Helper.SendSuccess(c, gin.H{
		"signatures": signatures,
		"pagination": h.Helper.GeneratePaging(c, params.Limit, params.Page, total),
	})
}

func (h *SignatureHandler) GetPetitionStats(c *gin.Context) {
	auth := middleware.GetAuthContext(c)
	id, ok := parseIDParam(c)
	if !ok {
		h.Helper.SendBadRequest(c, "Invalid petition ID")
		return
	}

	stats, err := h.signatureService.GetPetitionStats(id, auth)
	if err != nil {
		h.Helper.SendBusinessError(c, err)
		return
	}

	h.Helper.SendSuccess(c, stats)
}
