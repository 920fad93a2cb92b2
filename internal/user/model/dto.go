// Package model provides domain models and DTOs for the user module.
package model

// CreateUserRequest represents the request to create an admin user.
type CreateUserRequest struct {
	Username    string `json:"username" binding:"required"`
	DisplayName string `json:"display_name"`
	Role        Role   `json:"role" binding:"required"`
}

// UpdateUserRequest represents the request to update an admin user.
// Nil fields are left unchanged.
type UpdateUserRequest struct {
	DisplayName *string `json:"display_name"`
	Role        *Role   `json:"role"`
	IsActive    *bool   `json:"is_active"`
}

// UserResponse represents an admin user in API responses.
type UserResponse struct {
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name,omitempty"`
	Role        Role   `json:"role"`
	IsActive    bool   `json:"is_active"`
}

// ToResponse converts a user entity to its API representation.
func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		UserID:      u.UserID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		Role:        u.Role,
		IsActive:    u.IsActive,
	}
}
