// file: internals/features/users/auth/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel merepresentasikan tabel users (admin dashboard)
type UserModel struct {
	UserID       uuid.UUID `json:"user_id" gorm:"type:uuid;primaryKey;column:user_id;default:gen_random_uuid()"`
	UserName     string    `json:"user_name" gorm:"type:text;not null;column:user_name"`
	UserEmail    string    `json:"user_email" gorm:"type:text;not null;uniqueIndex;column:user_email"`
	UserPassword string    `json:"-" gorm:"type:text;not null;column:user_password"`
	UserRole     string    `json:"user_role" gorm:"type:varchar(20);not null;default:'staff';column:user_role"`

	UserCreatedAt time.Time      `json:"user_created_at" gorm:"column:user_created_at;autoCreateTime"`
	UserUpdatedAt time.Time      `json:"user_updated_at" gorm:"column:user_updated_at;autoUpdateTime"`
	UserDeletedAt gorm.DeletedAt `json:"user_deleted_at,omitempty" gorm:"column:user_deleted_at;index"`
}

func (UserModel) TableName() string { return "users" }
