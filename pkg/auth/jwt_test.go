package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateJWT(t *testing.T) {
	jwtService := NewJWTService("test-secret", time.Hour)

	token, err := jwtService.GenerateJWT("someone", "staff")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestValidateToken(t *testing.T) {
	jwtService := NewJWTService("test-secret", time.Hour)

	tests := []struct {
		name        string
		setup       func() string
		expectError bool
		username    string
		role        string
	}{
		{
			name: "Valid token",
			setup: func() string {
				token, _ := jwtService.GenerateJWT("someone", "staff")
				return token
			},
			username: "someone",
			role:     "staff",
		},
		{
			name: "Admin token round trip",
			setup: func() string {
				token, _ := jwtService.GenerateJWT("boss", "admin")
				return token
			},
			username: "boss",
			role:     "admin",
		},
		{
			name: "Expired token",
			setup: func() string {
				expired := NewJWTService("test-secret", -time.Hour)
				token, _ := expired.GenerateJWT("someone", "staff")
				return token
			},
			expectError: true,
		},
		{
			name: "Wrong secret",
			setup: func() string {
				other := NewJWTService("other-secret", time.Hour)
				token, _ := other.GenerateJWT("someone", "staff")
				return token
			},
			expectError: true,
		},
		{
			name: "Garbage token",
			setup: func() string {
				return "not.a.token"
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := jwtService.ValidateToken(tt.setup())
			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, claims)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.username, claims.Username())
			assert.Equal(t, tt.role, claims.Role)
		})
	}
}
