package response_models

type CreatePaymentResponse struct {
	Success         bool                   `json:"success"`
	TransactionID   string                 `json:"transactionId"`
	PaymentURL      string                 `json:"paymentUrl,omitempty"`
	GatewayResponse map[string]interface{} `json:"gatewayResponse,omitempty"`
}

type TransactionResponse struct {
	ID                   string                 `json:"id"`
	Amount               string                 `json:"amount"`
	Currency             string                 `json:"currency"`
	Status               string                 `json:"status"`
	Gateway              string                 `json:"gateway"`
	GatewayTransactionID string                 `json:"gatewayTransactionId,omitempty"`
	Description          string                 `json:"description"`
	Metadata             map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt            int64                  `json:"createdAt"`
	UpdatedAt            int64                  `json:"updatedAt"`
}

type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Pagination   Pagination            `json:"pagination"`
}
