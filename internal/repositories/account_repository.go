package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"payhub/internal/models/db_models"
)

type AccountRepositoryInterface interface {
	Insert(account *db_models.Account, ctx context.Context) error
	FindByID(id uuid.UUID, ctx context.Context) (*db_models.Account, error)
	FindByEmail(email string, ctx context.Context) (*db_models.Account, error)
}

func NewAccountRepository(db *gorm.DB) AccountRepositoryInterface {
	return &AccountRepository{db: db}
}

type AccountRepository struct {
	db *gorm.DB
}

func (a AccountRepository) Insert(account *db_models.Account, ctx context.Context) error {
	return a.db.WithContext(ctx).Create(account).Error
}

func (a AccountRepository) FindByID(id uuid.UUID, ctx context.Context) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (a AccountRepository) FindByEmail(email string, ctx context.Context) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}
