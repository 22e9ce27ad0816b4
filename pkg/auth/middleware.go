package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/sokha-dev/staffportal/internal/domain"
	"github.com/sokha-dev/staffportal/pkg/utils"
)

//go:generate mockgen -source=middleware.go -destination=middleware_mock.go -package=auth

type ContextKey string

const UserKey ContextKey = "user"

// UserSource resolves the live user record behind a token subject, so a token
// issued before a role change is rejected instead of trusted.
type UserSource interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}

type Middleware struct {
	jwtService JWTServiceInterface
	users      UserSource
}

func NewMiddleware(jwtService JWTServiceInterface, users UserSource) *Middleware {
	return &Middleware{
		jwtService: jwtService,
		users:      users,
	}
}

// tokenFromRequest accepts the Authorization header or a token query
// parameter. The query form exists for inline attachment previews, which
// cannot set headers.
func tokenFromRequest(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return r.URL.Query().Get("token")
}

func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := tokenFromRequest(r)
		if token == "" {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		claims, err := m.jwtService.ValidateToken(token)
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		user, err := m.users.FindByUsername(r.Context(), claims.Username())
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		if user == nil || string(user.Role) != claims.Role {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), UserKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middleware) RequireRole(role domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := CurrentUser(r.Context())
			if user == nil {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			if user.Role != role {
				utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func CurrentUser(ctx context.Context) *domain.User {
	user, _ := ctx.Value(UserKey).(*domain.User)
	return user
}
