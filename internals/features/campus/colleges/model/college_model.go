// file: internals/features/campus/colleges/model/college_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CollegeModel merepresentasikan tabel colleges.
// Nama college unik per campus (case-insensitive, dijaga di level upsert).
type CollegeModel struct {
	CollegeID       uuid.UUID  `json:"college_id" gorm:"type:uuid;primaryKey;column:college_id;default:gen_random_uuid()"`
	CollegeName     string     `json:"college_name" gorm:"type:text;not null;column:college_name"`
	CollegeCampusID *uuid.UUID `json:"college_campus_id,omitempty" gorm:"type:uuid;column:college_campus_id;index"`

	CollegeCreatedAt time.Time      `json:"college_created_at" gorm:"column:college_created_at;autoCreateTime"`
	CollegeUpdatedAt time.Time      `json:"college_updated_at" gorm:"column:college_updated_at;autoUpdateTime"`
	CollegeDeletedAt gorm.DeletedAt `json:"college_deleted_at,omitempty" gorm:"column:college_deleted_at;index"`
}

func (CollegeModel) TableName() string { return "colleges" }
