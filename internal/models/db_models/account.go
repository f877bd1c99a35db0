package db_models

const (
	RoleAdmin    = "admin"
	RoleMerchant = "merchant"
	RoleVendor   = "vendor"
	RoleUser     = "user"
)

type Account struct {
	BaseModel
	Username     string `gorm:"size:50"`
	Email        string `gorm:"unique"`
	PasswordHash string
	Role         string `gorm:"size:16;default:user"`
	IsActive     bool   `gorm:"default:true"`

	Transactions []Transaction
	Payouts      []Payout
}
