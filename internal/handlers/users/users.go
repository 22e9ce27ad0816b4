package users

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sokha-dev/staffportal/internal/domain"
	"github.com/sokha-dev/staffportal/internal/dto"
	"github.com/sokha-dev/staffportal/internal/service/authservice"
	pkgauth "github.com/sokha-dev/staffportal/pkg/auth"
	"github.com/sokha-dev/staffportal/pkg/utils"
)

//go:generate mockgen -source=users.go -destination=users_mock.go -package=users

type Service interface {
	CreateUser(ctx context.Context, username, password string, role domain.Role) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	DeleteUser(ctx context.Context, actor *domain.User, username string) error
}

type UserHandler struct {
	authService Service
}

func New(authService Service) *UserHandler {
	return &UserHandler{
		authService: authService,
	}
}

// Create godoc
//
//	@Summary		Create a user account
//	@Description	Create a staff or admin account (admin only)
//	@Tags			Users
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			username	formData	string	true	"Username"
//	@Param			password	formData	string	true	"Password"
//	@Param			role		formData	string	true	"Role: staff or admin"
//	@Success		200			{object}	utils.Response	"User created"
//	@Failure		400			{object}	utils.Response	"Invalid role or duplicate username"
//	@Failure		401			{object}	utils.Response	"Unauthorized"
//	@Failure		403			{object}	utils.Response	"Admins only"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/create_user [post]
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid form data")
		return
	}
	username := r.FormValue("username")
	password := r.FormValue("password")
	role := r.FormValue("role")
	if username == "" || password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	_, err := h.authService.CreateUser(r.Context(), username, password, domain.Role(role))
	switch {
	case errors.Is(err, authservice.ErrInvalidRole):
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid role")
	case errors.Is(err, authservice.ErrUsernameTaken):
		utils.RespondWithError(w, http.StatusBadRequest, "Username already exists")
	case err != nil:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	default:
		utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "User created"})
	}
}

// List godoc
//
//	@Summary		List user accounts
//	@Description	List every account without password hashes (admin only)
//	@Tags			Users
//	@Produce		json
//	@Success		200	{array}		dto.UserDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		403	{object}	utils.Response	"Admins only"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/admin/users [get]
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.authService.ListUsers(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewUserListDTO(users))
}

// Delete godoc
//
//	@Summary		Delete a user account
//	@Description	Delete an account by username; self-deletion is rejected (admin only)
//	@Tags			Users
//	@Produce		json
//	@Param			username	path		string	true	"Username"
//	@Success		200			{object}	utils.Response
//	@Failure		400			{object}	utils.Response	"Cannot delete yourself"
//	@Failure		401			{object}	utils.Response	"Unauthorized"
//	@Failure		403			{object}	utils.Response	"Admins only"
//	@Failure		404			{object}	utils.Response	"User not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/admin/users/{username} [delete]
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	actor := pkgauth.CurrentUser(r.Context())

	err := h.authService.DeleteUser(r.Context(), actor, username)
	switch {
	case errors.Is(err, authservice.ErrSelfDelete):
		utils.RespondWithError(w, http.StatusBadRequest, "Cannot delete yourself")
	case errors.Is(err, domain.ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
	case err != nil:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	default:
		utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: fmt.Sprintf("User '%s' deleted", username)})
	}
}
