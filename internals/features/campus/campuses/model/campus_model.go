// file: internals/features/campus/campuses/model/campus_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CampusModel merepresentasikan tabel campuses
type CampusModel struct {
	CampusID       uuid.UUID `json:"campus_id" gorm:"type:uuid;primaryKey;column:campus_id;default:gen_random_uuid()"`
	CampusName     string    `json:"campus_name" gorm:"type:text;not null;column:campus_name"`
	CampusLocation *string   `json:"campus_location,omitempty" gorm:"type:text;column:campus_location"`

	CampusCreatedAt time.Time      `json:"campus_created_at" gorm:"column:campus_created_at;autoCreateTime"`
	CampusUpdatedAt time.Time      `json:"campus_updated_at" gorm:"column:campus_updated_at;autoUpdateTime"`
	CampusDeletedAt gorm.DeletedAt `json:"campus_deleted_at,omitempty" gorm:"column:campus_deleted_at;index"`
}

func (CampusModel) TableName() string { return "campuses" }
