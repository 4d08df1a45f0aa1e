package response

import (
	"gocery/internal/usecase/queries"

	"github.com/google/uuid"
)

type LoginResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type RegisterResponse struct {
	ID uuid.UUID `json:"id"`
}

type MeResponse struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"isActive"`
}

func FromAuthorizedUser(v *queries.AuthorizedUserView) *MeResponse {
	return &MeResponse{
		ID:       v.ID,
		Email:    v.Email,
		Role:     v.Role,
		IsActive: v.IsActive,
	}
}
