// file: internals/features/academics/courses/model/course_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tipe course
type CourseType string

const (
	CourseTheory    CourseType = "theory"
	CoursePractical CourseType = "practical"
)

// CourseModel merepresentasikan tabel courses.
// Natural key upsert: course_code (unik global).
type CourseModel struct {
	CourseID   uuid.UUID  `json:"course_id" gorm:"type:uuid;primaryKey;column:course_id;default:gen_random_uuid()"`
	CourseCode string     `json:"course_code" gorm:"type:varchar(40);not null;uniqueIndex;column:course_code"`
	CourseName string     `json:"course_name" gorm:"type:text;not null;column:course_name"`
	CourseType CourseType `json:"course_type" gorm:"type:varchar(20);not null;default:'theory';column:course_type"`

	CourseDaysPerWeek int `json:"course_days_per_week" gorm:"not null;default:0;column:course_days_per_week"`
	CourseHoursPerDay int `json:"course_hours_per_day" gorm:"not null;default:0;column:course_hours_per_day"`
	CourseYear        int `json:"course_year" gorm:"not null;default:1;column:course_year"`

	CourseDepartmentID uuid.UUID  `json:"course_department_id" gorm:"type:uuid;not null;column:course_department_id;index"`
	CourseCollegeID    uuid.UUID  `json:"course_college_id" gorm:"type:uuid;not null;column:course_college_id;index"`
	CourseInstructorID *uuid.UUID `json:"course_instructor_id,omitempty" gorm:"type:uuid;column:course_instructor_id"`

	CourseCreatedAt time.Time      `json:"course_created_at" gorm:"column:course_created_at;autoCreateTime"`
	CourseUpdatedAt time.Time      `json:"course_updated_at" gorm:"column:course_updated_at;autoUpdateTime"`
	CourseDeletedAt gorm.DeletedAt `json:"course_deleted_at,omitempty" gorm:"column:course_deleted_at;index"`
}

func (CourseModel) TableName() string { return "courses" }
