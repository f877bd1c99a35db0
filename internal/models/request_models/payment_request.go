package request_models

type CreatePaymentRequest struct {
	Amount        float64                `json:"amount" binding:"required,gt=0"`
	Currency      string                 `json:"currency" binding:"required,len=3"`
	Description   string                 `json:"description" binding:"required,max=500"`
	CustomerEmail string                 `json:"customerEmail" binding:"required,email"`
	CustomerName  string                 `json:"customerName"`
	Gateway       string                 `json:"gateway" binding:"required"`
	Metadata      map[string]interface{} `json:"metadata"`
}

type ListTransactionsQuery struct {
	Page    int    `form:"page,default=1"`
	Limit   int    `form:"limit,default=10"`
	Status  string `form:"status"`
	Gateway string `form:"gateway"`
}
