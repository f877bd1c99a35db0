package request_models

type CreatePayoutRequest struct {
	Amount      float64                `json:"amount" binding:"required,gt=0"`
	Currency    string                 `json:"currency" binding:"omitempty,len=3"`
	Description string                 `json:"description" binding:"max=500"`
	Metadata    map[string]interface{} `json:"metadata"`
}

type SubmitPayoutUpiRequest struct {
	Token string `json:"token" binding:"required,len=64"`
	UpiID string `json:"upiId" binding:"required"`
}
