package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"payhub/internal/models/db_models"
)

type TransactionRepositoryInterface interface {
	Create(txn *db_models.Transaction, ctx context.Context) error
	GetByID(id uuid.UUID, ctx context.Context) (*db_models.Transaction, error)
	GetByGatewayReference(gateway string, reference string, ctx context.Context) (*db_models.Transaction, error)
	SetGatewayReference(id uuid.UUID, reference string, ctx context.Context) error
	FinalizeFromPending(id uuid.UUID, to db_models.TransactionStatus, ctx context.Context) (bool, error)
	List(filter TransactionFilter, ctx context.Context) ([]db_models.Transaction, int64, error)
}

// TransactionFilter narrows List. A nil AccountID means all owners (admin).
type TransactionFilter struct {
	AccountID *uuid.UUID
	Status    string
	Gateway   string
	Page      int
	PageSize  int
}

func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &TransactionRepository{db: db}
}

type TransactionRepository struct {
	db *gorm.DB
}

func (t TransactionRepository) Create(txn *db_models.Transaction, ctx context.Context) error {
	return t.db.WithContext(ctx).Create(txn).Error
}

func (t TransactionRepository) GetByID(id uuid.UUID, ctx context.Context) (*db_models.Transaction, error) {
	var txn db_models.Transaction
	err := t.db.WithContext(ctx).Where("id = ?", id).First(&txn).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &txn, nil
}

func (t TransactionRepository) GetByGatewayReference(gateway string, reference string, ctx context.Context) (*db_models.Transaction, error) {
	var txn db_models.Transaction
	err := t.db.WithContext(ctx).
		Where("gateway = ? AND gateway_transaction_id = ?", gateway, reference).
		First(&txn).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &txn, nil
}

// SetGatewayReference records the provider-assigned reference. The guard on
// an empty existing value keeps the reference set-once.
func (t TransactionRepository) SetGatewayReference(id uuid.UUID, reference string, ctx context.Context) error {
	return t.db.WithContext(ctx).
		Model(&db_models.Transaction{}).
		Where("id = ? AND gateway_transaction_id = ''", id).
		Update("gateway_transaction_id", reference).Error
}

// FinalizeFromPending applies a pending -> terminal transition as a
// compare-and-set. It returns false when the row was no longer pending, so
// concurrent or replayed webhook deliveries resolve to exactly one winner.
func (t TransactionRepository) FinalizeFromPending(id uuid.UUID, to db_models.TransactionStatus, ctx context.Context) (bool, error) {
	result := t.db.WithContext(ctx).
		Model(&db_models.Transaction{}).
		Where("id = ? AND status = ?", id, db_models.TxnStatusPending).
		Update("status", to)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

func (t TransactionRepository) List(filter TransactionFilter, ctx context.Context) ([]db_models.Transaction, int64, error) {
	query := t.db.WithContext(ctx).Model(&db_models.Transaction{})

	if filter.AccountID != nil {
		query = query.Where("account_id = ?", *filter.AccountID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Gateway != "" {
		query = query.Where("gateway = ?", filter.Gateway)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var txns []db_models.Transaction
	offset := (filter.Page - 1) * filter.PageSize
	err := query.Order("created_at DESC").
		Offset(offset).
		Limit(filter.PageSize).
		Find(&txns).Error
	if err != nil {
		return nil, 0, err
	}
	return txns, total, nil
}
