package dto

import (
	"time"

	"github.com/sokha-dev/staffportal/internal/domain"
)

type UserDTO struct {
	ID        int       `json:"id" example:"1"`
	Username  string    `json:"username" example:"somchai"`
	Role      string    `json:"role" example:"staff"`
	CreatedAt time.Time `json:"created_at" example:"2024-05-01T08:30:00Z"`
}

func NewUserDTO(u domain.User) UserDTO {
	return UserDTO{
		ID:        u.ID,
		Username:  u.Username,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

func NewUserListDTO(users []domain.User) []UserDTO {
	out := make([]UserDTO, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserDTO(u))
	}
	return out
}
