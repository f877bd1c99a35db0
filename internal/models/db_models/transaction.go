package db_models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type TransactionStatus string

const (
	TxnStatusPending   TransactionStatus = "pending"
	TxnStatusCompleted TransactionStatus = "completed"
	TxnStatusFailed    TransactionStatus = "failed"
	TxnStatusCancelled TransactionStatus = "cancelled"
)

// IsTerminal reports whether no further status transition is permitted.
func (s TransactionStatus) IsTerminal() bool {
	return s == TxnStatusCompleted || s == TxnStatusFailed || s == TxnStatusCancelled
}

type Transaction struct {
	BaseModel
	AccountID uuid.UUID         `gorm:"type:uuid;index"`
	Amount    decimal.Decimal   `gorm:"type:numeric(10,2)"`
	Currency  string            `gorm:"size:3"` // ISO 4217 shaped (e.g. "USD","INR")
	Status    TransactionStatus `gorm:"size:16;index"`

	// Gateway fields. The (gateway, gateway_transaction_id) pair is the
	// reconciliation key for webhooks; references are unique per gateway,
	// not globally, and are set exactly once.
	Gateway              string `gorm:"size:16;index;uniqueIndex:uniq_gateway_txn_ref,where:gateway_transaction_id <> ''"`
	GatewayTransactionID string `gorm:"uniqueIndex:uniq_gateway_txn_ref,where:gateway_transaction_id <> ''"`

	Description string `gorm:"type:text"`

	// Opaque client payload, never interpreted here.
	Metadata datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	Account Account `gorm:"foreignKey:AccountID"`
}
