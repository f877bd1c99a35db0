package services

import (
	"context"
	"log"
	"regexp"
	"time"

	"github.com/google/uuid"

	"payhub/internal/models/db_models"
	"payhub/internal/models/request_models"
	"payhub/internal/models/response_models"
	"payhub/internal/repositories"
	"payhub/pkg/utils"
)

const (
	payoutTokenTTL        = 30 * time.Minute
	payoutTokenBytes      = 32 // 64 hex chars
	defaultPayoutCurrency = "INR"
)

var upiIDPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z]+$`)

type PayoutServiceInterface interface {
	InitiatePayout(ctx context.Context, accountID uuid.UUID, req request_models.CreatePayoutRequest) (*response_models.PayoutResponse, error)
	GetPayoutByToken(ctx context.Context, token string) (*response_models.PayoutResponse, error)
	SubmitPayoutUpi(ctx context.Context, req request_models.SubmitPayoutUpiRequest) (*response_models.PayoutResponse, error)
}

// PayoutService manages outbound money. A payout is completed through its
// single-use token, which acts as the capability in place of authentication.
type PayoutService struct {
	payoutRepo repositories.PayoutRepositoryInterface
}

func NewPayoutService(payoutRepo repositories.PayoutRepositoryInterface) PayoutServiceInterface {
	return &PayoutService{payoutRepo: payoutRepo}
}

func (p *PayoutService) InitiatePayout(ctx context.Context, accountID uuid.UUID, req request_models.CreatePayoutRequest) (*response_models.PayoutResponse, error) {
	currency := req.Currency
	if currency == "" {
		currency = defaultPayoutCurrency
	}
	amount, currency, err := normalizeMoney(req.Amount, currency)
	if err != nil {
		return nil, err
	}

	token, err := utils.GenerateSecureToken(payoutTokenBytes)
	if err != nil {
		log.Printf("payout: token generation failed: %v", err)
		return nil, utils.ErrDatabaseError
	}

	payout := &db_models.Payout{
		AccountID:   accountID,
		Amount:      amount,
		Currency:    currency,
		Status:      db_models.PayoutStatusInitiated,
		Token:       token,
		Description: req.Description,
		Metadata:    jsonRaw(req.Metadata),
		ExpiresAt:   time.Now().Add(payoutTokenTTL).Unix(),
	}

	if err := p.payoutRepo.Create(payout, ctx); err != nil {
		log.Printf("payout: create failed: %v", err)
		return nil, utils.ErrDatabaseError
	}

	resp := toPayoutResponse(payout, true)
	return &resp, nil
}

func (p *PayoutService) GetPayoutByToken(ctx context.Context, token string) (*response_models.PayoutResponse, error) {
	payout, err := p.payoutRepo.GetByToken(token, ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if payout == nil {
		return nil, utils.ErrPayoutNotFound
	}

	p.expireIfStale(ctx, payout)

	resp := toPayoutResponse(payout, false)
	return &resp, nil
}

func (p *PayoutService) SubmitPayoutUpi(ctx context.Context, req request_models.SubmitPayoutUpiRequest) (*response_models.PayoutResponse, error) {
	if !upiIDPattern.MatchString(req.UpiID) {
		return nil, utils.ErrInvalidUpiID
	}

	payout, err := p.payoutRepo.GetByToken(req.Token, ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if payout == nil {
		return nil, utils.ErrPayoutNotFound
	}

	now := time.Now().Unix()
	applied, err := p.payoutRepo.CompleteInitiated(payout.ID, req.UpiID, now, ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if !applied {
		switch payout.Status {
		case db_models.PayoutStatusCompleted:
			return nil, utils.ErrPayoutAlreadyCompleted
		case db_models.PayoutStatusExpired:
			return nil, utils.ErrPayoutExpired
		default:
			// Was INITIATED when read, so the guard that failed is either
			// the expiry window or a concurrent completion.
			if now >= payout.ExpiresAt {
				p.expireIfStale(ctx, payout)
				return nil, utils.ErrPayoutExpired
			}
			return nil, utils.ErrPayoutAlreadyCompleted
		}
	}

	payout.Status = db_models.PayoutStatusCompleted
	payout.UpiID = req.UpiID

	resp := toPayoutResponse(payout, false)
	return &resp, nil
}

func (p *PayoutService) expireIfStale(ctx context.Context, payout *db_models.Payout) {
	if payout.Status != db_models.PayoutStatusInitiated || time.Now().Unix() < payout.ExpiresAt {
		return
	}
	if _, err := p.payoutRepo.MarkExpired(payout.ID, ctx); err != nil {
		log.Printf("payout: mark %s expired errored: %v", payout.ID, err)
		return
	}
	payout.Status = db_models.PayoutStatusExpired
}

func toPayoutResponse(payout *db_models.Payout, includeToken bool) response_models.PayoutResponse {
	resp := response_models.PayoutResponse{
		ID:          payout.ID.String(),
		Amount:      payout.Amount.StringFixed(2),
		Currency:    payout.Currency,
		Status:      string(payout.Status),
		UpiID:       payout.UpiID,
		Description: payout.Description,
		ExpiresAt:   payout.ExpiresAt,
		CreatedAt:   payout.CreatedAt,
	}
	if includeToken {
		resp.Token = payout.Token
	}
	return resp
}
