package response_models

type PayoutResponse struct {
	ID          string `json:"id"`
	Amount      string `json:"amount"`
	Currency    string `json:"currency"`
	Status      string `json:"status"`
	Token       string `json:"token,omitempty"`
	UpiID       string `json:"upiId,omitempty"`
	Description string `json:"description,omitempty"`
	ExpiresAt   int64  `json:"expiresAt"`
	CreatedAt   int64  `json:"createdAt"`
}
