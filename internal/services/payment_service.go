package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"payhub/internal/gateways"
	"payhub/internal/models/db_models"
	"payhub/internal/models/request_models"
	"payhub/internal/models/response_models"
	"payhub/internal/repositories"
	"payhub/pkg/utils"
)

// Gateway calls are blocking I/O; a dispatch that outlives this window is
// treated as adapter failure, never left pending indefinitely.
const gatewayCallTimeout = 15 * time.Second

const maxPageSize = 100

var minAmount = decimal.New(1, -2) // 0.01

type PaymentServiceInterface interface {
	CreatePayment(ctx context.Context, accountID uuid.UUID, req request_models.CreatePaymentRequest) (*response_models.CreatePaymentResponse, error)
	GetTransaction(ctx context.Context, accountID uuid.UUID, role string, txnID uuid.UUID) (*response_models.TransactionResponse, error)
	ListTransactions(ctx context.Context, accountID uuid.UUID, role string, query request_models.ListTransactionsQuery) (*response_models.TransactionListResponse, error)
}

type PaymentService struct {
	txnRepo repositories.TransactionRepositoryInterface
	router  *gateways.Router
}

func NewPaymentService(txnRepo repositories.TransactionRepositoryInterface, router *gateways.Router) PaymentServiceInterface {
	return &PaymentService{
		txnRepo: txnRepo,
		router:  router,
	}
}

func (p *PaymentService) CreatePayment(ctx context.Context, accountID uuid.UUID, req request_models.CreatePaymentRequest) (*response_models.CreatePaymentResponse, error) {
	amount, currency, err := normalizeMoney(req.Amount, req.Currency)
	if err != nil {
		return nil, err
	}

	// Resolve before writing anything so a bad gateway id leaves no record.
	adapter, err := p.router.Resolve(req.Gateway)
	if err != nil {
		return nil, err
	}

	txn := &db_models.Transaction{
		AccountID:   accountID,
		Amount:      amount,
		Currency:    currency,
		Status:      db_models.TxnStatusPending,
		Gateway:     adapter.Name(),
		Description: req.Description,
		Metadata:    jsonRaw(req.Metadata),
	}

	// The pending row must commit before dispatch; a store failure here is a
	// system fault and nothing has reached the provider yet.
	if err := p.txnRepo.Create(txn, ctx); err != nil {
		log.Printf("payment: create transaction failed: %v", err)
		return nil, utils.ErrDatabaseError
	}

	// Merge our id into the metadata handed to the adapter so providers with
	// passthrough custom fields can correlate webhooks early.
	adapterMeta := make(map[string]interface{}, len(req.Metadata)+1)
	for k, v := range req.Metadata {
		adapterMeta[k] = v
	}
	adapterMeta["transactionId"] = txn.ID.String()

	callCtx, cancel := context.WithTimeout(ctx, gatewayCallTimeout)
	defer cancel()

	outcome := adapter.CreatePayment(callCtx, gateways.PaymentParams{
		Amount:        amount,
		Currency:      currency,
		Description:   req.Description,
		CustomerEmail: req.CustomerEmail,
		CustomerName:  req.CustomerName,
		Metadata:      adapterMeta,
	})

	if outcome.Success {
		// Accepted for processing, not captured: the transaction stays
		// pending until the gateway webhook reconciles it.
		if err := p.txnRepo.SetGatewayReference(txn.ID, outcome.ExternalReference, ctx); err != nil {
			log.Printf("payment: record gateway reference for %s failed: %v", txn.ID, err)
			return nil, utils.ErrDatabaseError
		}
	} else {
		log.Printf("payment: gateway %s rejected transaction %s: %s",
			adapter.Name(), txn.ID, outcome.ErrorDetail)
		if _, err := p.txnRepo.FinalizeFromPending(txn.ID, db_models.TxnStatusFailed, ctx); err != nil {
			log.Printf("payment: mark transaction %s failed errored: %v", txn.ID, err)
			return nil, utils.ErrDatabaseError
		}
	}

	return &response_models.CreatePaymentResponse{
		Success:         outcome.Success,
		TransactionID:   txn.ID.String(),
		PaymentURL:      outcome.PaymentURL,
		GatewayResponse: outcome.RawResponse,
	}, nil
}

func (p *PaymentService) GetTransaction(ctx context.Context, accountID uuid.UUID, role string, txnID uuid.UUID) (*response_models.TransactionResponse, error) {
	txn, err := p.txnRepo.GetByID(txnID, ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	// Not owned reads the same as absent.
	if txn == nil || (role != db_models.RoleAdmin && txn.AccountID != accountID) {
		return nil, utils.ErrTransactionNotFound
	}

	resp := toTransactionResponse(txn)
	return &resp, nil
}

func (p *PaymentService) ListTransactions(ctx context.Context, accountID uuid.UUID, role string, query request_models.ListTransactionsQuery) (*response_models.TransactionListResponse, error) {
	if query.Page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if query.Limit < 1 || query.Limit > maxPageSize {
		return nil, utils.ErrInvalidPageSize
	}

	filter := repositories.TransactionFilter{
		Status:   query.Status,
		Gateway:  query.Gateway,
		Page:     query.Page,
		PageSize: query.Limit,
	}
	if role != db_models.RoleAdmin {
		filter.AccountID = &accountID
	}

	txns, total, err := p.txnRepo.List(filter, ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	items := make([]response_models.TransactionResponse, 0, len(txns))
	for i := range txns {
		items = append(items, toTransactionResponse(&txns[i]))
	}

	totalPages := int((total + int64(query.Limit) - 1) / int64(query.Limit))

	return &response_models.TransactionListResponse{
		Transactions: items,
		Pagination: response_models.Pagination{
			Total:      total,
			Page:       query.Page,
			Limit:      query.Limit,
			TotalPages: totalPages,
		},
	}, nil
}

func toTransactionResponse(txn *db_models.Transaction) response_models.TransactionResponse {
	var meta map[string]interface{}
	if len(txn.Metadata) > 0 {
		_ = json.Unmarshal(txn.Metadata, &meta)
	}

	return response_models.TransactionResponse{
		ID:                   txn.ID.String(),
		Amount:               txn.Amount.StringFixed(2),
		Currency:             txn.Currency,
		Status:               string(txn.Status),
		Gateway:              txn.Gateway,
		GatewayTransactionID: txn.GatewayTransactionID,
		Description:          txn.Description,
		Metadata:             meta,
		CreatedAt:            txn.CreatedAt,
		UpdatedAt:            txn.UpdatedAt,
	}
}

func jsonRaw(v map[string]interface{}) []byte {
	if len(v) == 0 {
		return []byte("{}")
	}
	b, err := json.Marshal(v)
	if err != nil {
		return []byte("{}")
	}
	return b
}
