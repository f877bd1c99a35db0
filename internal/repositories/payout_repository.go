package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"payhub/internal/models/db_models"
)

type PayoutRepositoryInterface interface {
	Create(payout *db_models.Payout, ctx context.Context) error
	GetByID(id uuid.UUID, ctx context.Context) (*db_models.Payout, error)
	GetByToken(token string, ctx context.Context) (*db_models.Payout, error)
	CompleteInitiated(id uuid.UUID, upiID string, now int64, ctx context.Context) (bool, error)
	MarkExpired(id uuid.UUID, ctx context.Context) (bool, error)
}

func NewPayoutRepository(db *gorm.DB) PayoutRepositoryInterface {
	return &PayoutRepository{db: db}
}

type PayoutRepository struct {
	db *gorm.DB
}

func (p PayoutRepository) Create(payout *db_models.Payout, ctx context.Context) error {
	return p.db.WithContext(ctx).Create(payout).Error
}

func (p PayoutRepository) GetByID(id uuid.UUID, ctx context.Context) (*db_models.Payout, error) {
	var payout db_models.Payout
	err := p.db.WithContext(ctx).Where("id = ?", id).First(&payout).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &payout, nil
}

func (p PayoutRepository) GetByToken(token string, ctx context.Context) (*db_models.Payout, error) {
	var payout db_models.Payout
	err := p.db.WithContext(ctx).Where("token = ?", token).First(&payout).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &payout, nil
}

// CompleteInitiated consumes the payout token: the compare-and-set on
// INITIATED plus the expiry guard makes the token single-use.
func (p PayoutRepository) CompleteInitiated(id uuid.UUID, upiID string, now int64, ctx context.Context) (bool, error) {
	result := p.db.WithContext(ctx).
		Model(&db_models.Payout{}).
		Where("id = ? AND status = ? AND expires_at > ?", id, db_models.PayoutStatusInitiated, now).
		Updates(map[string]interface{}{
			"status": db_models.PayoutStatusCompleted,
			"upi_id": upiID,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

func (p PayoutRepository) MarkExpired(id uuid.UUID, ctx context.Context) (bool, error) {
	result := p.db.WithContext(ctx).
		Model(&db_models.Payout{}).
		Where("id = ? AND status = ?", id, db_models.PayoutStatusInitiated).
		Update("status", db_models.PayoutStatusExpired)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}
