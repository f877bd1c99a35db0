package controllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"payhub/internal/models/request_models"
	"payhub/internal/services"
	"payhub/pkg/utils"
)

type PaymentController struct {
	paymentService services.PaymentServiceInterface
	webhookService services.WebhookServiceInterface
}

func NewPaymentController(paymentService services.PaymentServiceInterface, webhookService services.WebhookServiceInterface) *PaymentController {
	return &PaymentController{
		paymentService: paymentService,
		webhookService: webhookService,
	}
}

// CreatePayment godoc
// @Summary Create a new payment
// @Description Create a transaction and dispatch it to the selected gateway
// @Tags Payments
// @Accept json
// @Produce json
// @Param request body request_models.CreatePaymentRequest true "Payment request"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /payments [post]
func (p *PaymentController) CreatePayment(c *gin.Context) {
	var req request_models.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	accountID, ok := requestAccountID(c)
	if !ok {
		return
	}

	resp, err := p.paymentService.CreatePayment(c.Request.Context(), accountID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	if !resp.Success {
		// Gateway-reported rejection: the transaction is recorded as failed
		// and the raw gateway response is passed through.
		c.JSON(http.StatusBadRequest, utils.APIResponse{
			Status:  "error",
			Code:    http.StatusBadRequest,
			Message: "Payment initiation failed",
			TraceID: c.GetString("trace_id"),
			Data:    resp,
		})
		return
	}

	utils.RespondSuccessWithCode(c, http.StatusCreated, resp, "Payment initiated successfully")
}

// GetTransaction godoc
// @Summary Get a specific transaction
// @Description Fetch one transaction, scoped to the requesting owner unless admin
// @Tags Payments
// @Produce json
// @Param transactionId path string true "Transaction ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /payments/transactions/{transactionId} [get]
func (p *PaymentController) GetTransaction(c *gin.Context) {
	txnID, err := uuid.Parse(c.Param("transactionId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "transactionId must be a valid UUID")
		return
	}

	accountID, ok := requestAccountID(c)
	if !ok {
		return
	}

	resp, err := p.paymentService.GetTransaction(c.Request.Context(), accountID, c.GetString("Role"), txnID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"transaction": resp}, "Transaction retrieved successfully")
}

// ListTransactions godoc
// @Summary List transactions with pagination
// @Description Page through transactions, newest first, with optional status/gateway filters
// @Tags Payments
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size (max 100)"
// @Param status query string false "Filter by status"
// @Param gateway query string false "Filter by gateway"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /payments/transactions [get]
func (p *PaymentController) ListTransactions(c *gin.Context) {
	var query request_models.ListTransactionsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	accountID, ok := requestAccountID(c)
	if !ok {
		return
	}

	resp, err := p.paymentService.ListTransactions(c.Request.Context(), accountID, c.GetString("Role"), query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Transactions retrieved successfully")
}

// HandleWebhook godoc
// @Summary Handle payment gateway webhooks
// @Description Reconcile an asynchronous gateway notification; always acknowledges no-op and orphan deliveries
// @Tags Payments
// @Accept json
// @Produce json
// @Param gateway path string true "Gateway identifier"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /payments/webhooks/{gateway} [post]
func (p *PaymentController) HandleWebhook(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Failed to read request body")
		return
	}

	if err := p.webhookService.HandleWebhook(c.Request.Context(), c.Param("gateway"), payload); err != nil {
		if errors.Is(err, utils.ErrUnsupportedGateway) {
			utils.RespondError(c, http.StatusBadRequest, err.Error())
			return
		}
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Webhook processed")
}

func requestAccountID(c *gin.Context) (uuid.UUID, bool) {
	accountID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return uuid.Nil, false
	}
	return accountID, true
}
