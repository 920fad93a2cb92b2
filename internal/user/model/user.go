package model

import (
	"time"

	"gorm.io/gorm"
)

// Role is an admin user's permission level.
type Role string

// Supported roles.
const (
	RoleAdmin    Role = "admin"
	RoleOperator Role = "operator"
	RoleViewer   Role = "viewer"
)

// IsValid reports whether r is a known role.
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleOperator || r == RoleViewer
}

// User represents an admin user account. Credentials and session handling
// live in the external auth service; this module only manages the roster.
// Matches the users table schema.
type User struct {
	UserID      string    `gorm:"primaryKey;column:user_id;type:varchar(36)"                json:"user_id"`
	Username    string    `gorm:"column:username;type:varchar(255);not null;uniqueIndex"    json:"username"`
	DisplayName string    `gorm:"column:display_name;type:varchar(255)"                     json:"display_name,omitempty"`
	Role        Role      `gorm:"column:role;type:varchar(16);not null"                     json:"role"`
	IsActive    bool      `gorm:"column:is_active;not null;default:true"                    json:"is_active"`
	CreatedAt   time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()" json:"-"`
	UpdatedAt   time.Time `gorm:"column:updated_at;type:timestamptz;not null;default:now()" json:"-"`
}

// TableName specifies the table name for GORM.
func (User) TableName() string {
	return "users"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (u *User) BeforeUpdate(tx *gorm.DB) error {
	u.UpdatedAt = time.Now()
	return nil
}
