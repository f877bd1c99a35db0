package response_models

type AccountResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type AuthResponse struct {
	Account AccountResponse `json:"user"`
	Token   string          `json:"token"`
}
