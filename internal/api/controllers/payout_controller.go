package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"payhub/internal/models/request_models"
	"payhub/internal/services"
	"payhub/pkg/utils"
)

type PayoutController struct {
	payoutService services.PayoutServiceInterface
}

func NewPayoutController(payoutService services.PayoutServiceInterface) *PayoutController {
	return &PayoutController{payoutService: payoutService}
}

// InitiatePayout godoc
// @Summary Initiate a payout
// @Description Create a payout with a single-use completion token
// @Tags Payouts
// @Accept json
// @Produce json
// @Param request body request_models.CreatePayoutRequest true "Payout request"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /payouts [post]
func (p *PayoutController) InitiatePayout(c *gin.Context) {
	var req request_models.CreatePayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	accountID, ok := requestAccountID(c)
	if !ok {
		return
	}

	resp, err := p.payoutService.InitiatePayout(c.Request.Context(), accountID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccessWithCode(c, http.StatusCreated, resp, "Payout initiated successfully")
}

// GetPayout godoc
// @Summary Get a payout by its token
// @Description The token is the capability; no authentication is required
// @Tags Payouts
// @Produce json
// @Param token path string true "Payout token"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /payouts/{token} [get]
func (p *PayoutController) GetPayout(c *gin.Context) {
	resp, err := p.payoutService.GetPayoutByToken(c.Request.Context(), c.Param("token"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Payout retrieved successfully")
}

// SubmitUpi godoc
// @Summary Complete a payout by submitting a UPI ID
// @Description Consumes the payout token; each token completes at most one payout
// @Tags Payouts
// @Accept json
// @Produce json
// @Param request body request_models.SubmitPayoutUpiRequest true "UPI submission"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /payouts/submit-upi [post]
func (p *PayoutController) SubmitUpi(c *gin.Context) {
	var req request_models.SubmitPayoutUpiRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	resp, err := p.payoutService.SubmitPayoutUpi(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Payout completed successfully")
}
