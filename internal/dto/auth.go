package dto

type TokenResponseDTO struct {
	AccessToken string `json:"access_token" example:"eyJhbGciOiJIUzI1NiJ9..."`
	TokenType   string `json:"token_type" example:"bearer"`
	Role        string `json:"role" example:"staff"`
}
