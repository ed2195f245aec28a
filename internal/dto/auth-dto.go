package dto

// LoginResponseDTO - ответ POST /auth/login удалённого API.
type LoginResponseDTO struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Username    string `json:"username"`
	Role        string `json:"role"`
}
