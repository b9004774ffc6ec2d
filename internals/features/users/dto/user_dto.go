package dto

import (
	"time"

	"sabeel_backend/internals/features/users/model"
)

/* ===============================
   REQUEST DTO
================================*/

type RegisterRequest struct {
	UserName string `json:"user_name" validate:"required,min=3,max=100"`
	Email    string `json:"email" validate:"required,email,max=150"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role,omitempty" validate:"omitempty,oneof=admin logistics_supervisor mosque_admin driver donor"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

/* ===============================
   RESPONSE DTO
================================*/

type UserResponse struct {
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type AuthResponse struct {
	Token        string       `json:"token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

func FromModelUser(m *model.UserModel) UserResponse {
	return UserResponse{
		UserID:    m.UserID.String(),
		UserName:  m.UserName,
		Email:     m.UserEmail,
		Role:      m.UserRole,
		IsActive:  m.UserIsActive,
		CreatedAt: m.UserCreatedAt,
	}
}
