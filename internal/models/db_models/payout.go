package db_models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type PayoutStatus string

const (
	PayoutStatusInitiated PayoutStatus = "INITIATED"
	PayoutStatusCompleted PayoutStatus = "COMPLETED"
	PayoutStatusExpired   PayoutStatus = "EXPIRED"
)

// Payout represents money sent out rather than collected. Completion is
// keyed by the single-use token, not by authentication.
type Payout struct {
	BaseModel
	AccountID   uuid.UUID       `gorm:"type:uuid;index"`
	Amount      decimal.Decimal `gorm:"type:numeric(10,2)"`
	Currency    string          `gorm:"size:3"`
	Status      PayoutStatus    `gorm:"size:16;index"`
	Token       string          `gorm:"size:64;uniqueIndex"`
	UpiID       string          `gorm:"size:100"`
	Description string          `gorm:"size:500"`
	Metadata    datatypes.JSON  `gorm:"type:jsonb;default:'{}'"`

	// Unix seconds after which the token is no longer usable.
	ExpiresAt int64

	Account Account `gorm:"foreignKey:AccountID"`
}
