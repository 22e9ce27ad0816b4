package auth

import (
	"context"
	"net/http"

	"github.com/sokha-dev/staffportal/internal/domain"
	"github.com/sokha-dev/staffportal/internal/dto"
	"github.com/sokha-dev/staffportal/pkg/utils"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=auth

type Service interface {
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
	GenerateToken(user *domain.User) (string, error)
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Token godoc
//
//	@Summary		Issue an access token
//	@Description	Exchange form credentials for a bearer token and the account role
//	@Tags			Auth
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			username	formData	string	true	"Username"
//	@Param			password	formData	string	true	"Password"
//	@Success		200			{object}	dto.TokenResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid form data"
//	@Failure		401			{object}	utils.Response	"Incorrect username or password"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/token [post]
func (h *AuthHandler) Token(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid form data")
		return
	}
	username := r.FormValue("username")
	password := r.FormValue("password")
	if username == "" || password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Username and password are required")
		return
	}
	user, err := h.authService.Authenticate(r.Context(), username, password)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Incorrect username or password")
		return
	}
	token, err := h.authService.GenerateToken(user)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.TokenResponseDTO{
		AccessToken: token,
		TokenType:   "bearer",
		Role:        string(user.Role),
	})
}
