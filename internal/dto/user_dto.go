package dto

import (
	"time"

	"github.com/google/uuid"
)

type UserResponse struct {
	Id        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Role      string    `json:"role"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// UpdateProfileRequest carries partial updates. Empty fields are left
// untouched.
type UpdateProfileRequest struct {
	FullName string `json:"full_name" validate:"omitempty,min=3"`
	Username string `json:"username" validate:"omitempty,min=3,max=32"`
	Email    string `json:"email" validate:"omitempty,email"`
}

type AvatarUploadResponse struct {
	AvatarURL string `json:"avatar_url"`
}
