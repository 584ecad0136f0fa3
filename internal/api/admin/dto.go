package admin

import "CompetitionHub/internal/entity"

type LoginRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required,max=72"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresAt   int64  `json:"expires_at"`
	Username    string `json:"username"`
}

type AdminResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

func ToAdminResponse(a entity.AdminLoginData) AdminResponse {
	return AdminResponse{ID: a.ID, Username: a.Username, Role: a.Role}
}
