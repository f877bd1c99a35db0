package services

import (
	"context"

	"github.com/google/uuid"

	"payhub/internal/models/db_models"
	"payhub/internal/models/request_models"
	"payhub/internal/models/response_models"
	"payhub/internal/repositories"
	"payhub/pkg/utils"
)

type AccountServiceInterface interface {
	Register(ctx context.Context, req request_models.SignUpRequest) (*response_models.AuthResponse, error)
	Login(ctx context.Context, req request_models.LoginRequest) (*response_models.AuthResponse, error)
	GetProfile(ctx context.Context, accountID uuid.UUID) (*response_models.AccountResponse, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepositoryInterface
}

func NewAccountService(accountRepo repositories.AccountRepositoryInterface) AccountServiceInterface {
	return &AccountService{accountRepo: accountRepo}
}

func (a *AccountService) Register(ctx context.Context, req request_models.SignUpRequest) (*response_models.AuthResponse, error) {
	existing, err := a.accountRepo.FindByEmail(req.Email, ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	account := &db_models.Account{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hashed,
		Role:         db_models.RoleUser,
		IsActive:     true,
	}

	if err := a.accountRepo.Insert(account, ctx); err != nil {
		return nil, utils.ErrDatabaseError
	}

	token, err := utils.CreateToken(account.ID, account.Role)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.AuthResponse{
		Account: toAccountResponse(account),
		Token:   token,
	}, nil
}

func (a *AccountService) Login(ctx context.Context, req request_models.LoginRequest) (*response_models.AuthResponse, error) {
	account, err := a.accountRepo.FindByEmail(req.Email, ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrInvalidCredentials
	}
	if !account.IsActive {
		return nil, utils.ErrAccountDisabled
	}

	if err := utils.ComparePasswords(account.PasswordHash, req.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID, account.Role)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	return &response_models.AuthResponse{
		Account: toAccountResponse(account),
		Token:   token,
	}, nil
}

func (a *AccountService) GetProfile(ctx context.Context, accountID uuid.UUID) (*response_models.AccountResponse, error) {
	account, err := a.accountRepo.FindByID(accountID, ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	resp := toAccountResponse(account)
	return &resp, nil
}

func toAccountResponse(account *db_models.Account) response_models.AccountResponse {
	return response_models.AccountResponse{
		ID:       account.ID.String(),
		Email:    account.Email,
		Username: account.Username,
		Role:     account.Role,
	}
}
