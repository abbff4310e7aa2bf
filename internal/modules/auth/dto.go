package auth

import "wheelstreet/internal/domain"

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type SessionResponse struct {
	User  *domain.User `json:"user"`
	Token string       `json:"token,omitempty"`
}
