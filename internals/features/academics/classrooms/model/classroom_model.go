// file: internals/features/academics/classrooms/model/classroom_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tipe ruangan
type ClassroomType string

const (
	ClassroomLectureHall ClassroomType = "lecture_hall"
	ClassroomLab         ClassroomType = "lab"
)

// ClassroomModel merepresentasikan tabel classrooms.
// Natural key upsert: (classroom_name, classroom_campus_id).
type ClassroomModel struct {
	ClassroomID       uuid.UUID     `json:"classroom_id" gorm:"type:uuid;primaryKey;column:classroom_id;default:gen_random_uuid()"`
	ClassroomName     string        `json:"classroom_name" gorm:"type:text;not null;column:classroom_name"`
	ClassroomCapacity int           `json:"classroom_capacity" gorm:"not null;column:classroom_capacity"`
	ClassroomType     ClassroomType `json:"classroom_type" gorm:"type:varchar(20);not null;default:'lecture_hall';column:classroom_type"`
	ClassroomCampusID *uuid.UUID    `json:"classroom_campus_id,omitempty" gorm:"type:uuid;column:classroom_campus_id;index"`

	ClassroomCreatedAt time.Time      `json:"classroom_created_at" gorm:"column:classroom_created_at;autoCreateTime"`
	ClassroomUpdatedAt time.Time      `json:"classroom_updated_at" gorm:"column:classroom_updated_at;autoUpdateTime"`
	ClassroomDeletedAt gorm.DeletedAt `json:"classroom_deleted_at,omitempty" gorm:"column:classroom_deleted_at;index"`
}

func (ClassroomModel) TableName() string { return "classrooms" }
