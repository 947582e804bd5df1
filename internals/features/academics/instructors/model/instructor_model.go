// file: internals/features/academics/instructors/model/instructor_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InstructorModel merepresentasikan tabel instructors.
// Satu baris = satu slot assignment mingguan, BUKAN satu orang —
// dosen yang sama boleh punya banyak baris dengan slot berbeda.
// Natural key upsert: (instructor_name, instructor_department_id, day, start, end).
type InstructorModel struct {
	InstructorID           uuid.UUID `json:"instructor_id" gorm:"type:uuid;primaryKey;column:instructor_id;default:gen_random_uuid()"`
	InstructorName         string    `json:"instructor_name" gorm:"type:text;not null;column:instructor_name"`
	InstructorDepartmentID uuid.UUID `json:"instructor_department_id" gorm:"type:uuid;not null;column:instructor_department_id;index"`
	InstructorEmail        *string   `json:"instructor_email,omitempty" gorm:"type:text;column:instructor_email"`

	// Slot mingguan (opsional)
	InstructorDay       *string `json:"instructor_day,omitempty" gorm:"type:varchar(10);column:instructor_day"`
	InstructorStartTime *string `json:"instructor_start_time,omitempty" gorm:"type:varchar(8);column:instructor_start_time"`
	InstructorEndTime   *string `json:"instructor_end_time,omitempty" gorm:"type:varchar(8);column:instructor_end_time"`

	InstructorCreatedAt time.Time      `json:"instructor_created_at" gorm:"column:instructor_created_at;autoCreateTime"`
	InstructorUpdatedAt time.Time      `json:"instructor_updated_at" gorm:"column:instructor_updated_at;autoUpdateTime"`
	InstructorDeletedAt gorm.DeletedAt `json:"instructor_deleted_at,omitempty" gorm:"column:instructor_deleted_at;index"`
}

func (InstructorModel) TableName() string { return "instructors" }
