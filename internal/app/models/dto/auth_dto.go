package dto

// LoginRequest represents admin login data
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"admin"`
	Password string `json:"password" binding:"required" example:"secret"`
}

// TokenResponse is returned after a successful login
type TokenResponse struct {
	Success     bool   `json:"success" example:"true"`
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType" example:"Bearer"`
	ExpiresIn   int    `json:"expiresIn" example:"28800"`
}
