// file: internals/features/schedules/model/session_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SessionModel merepresentasikan tabel sessions — satu slot hasil rekonsiliasi.
// Invariant: session_course_id NOT NULL. Baris optimizer yang course-nya tidak
// ketemu TIDAK pernah sampai ke tabel ini (di-drop oleh reconciler).
// Instructor/classroom boleh NULL (partial linkage).
type SessionModel struct {
	SessionID         uuid.UUID  `json:"session_id" gorm:"type:uuid;primaryKey;column:session_id;default:gen_random_uuid()"`
	SessionScheduleID uuid.UUID  `json:"session_schedule_id" gorm:"type:uuid;not null;column:session_schedule_id;index"`
	SessionCourseID   uuid.UUID  `json:"session_course_id" gorm:"type:uuid;not null;column:session_course_id;index"`
	SessionInstructorID *uuid.UUID `json:"session_instructor_id,omitempty" gorm:"type:uuid;column:session_instructor_id"`
	SessionClassroomID  *uuid.UUID `json:"session_classroom_id,omitempty" gorm:"type:uuid;column:session_classroom_id"`

	SessionDay          string `json:"session_day" gorm:"type:varchar(10);not null;column:session_day"`
	SessionStartTime    string `json:"session_start_time" gorm:"type:varchar(8);not null;column:session_start_time"`
	SessionEndTime      string `json:"session_end_time" gorm:"type:varchar(8);not null;column:session_end_time"`
	SessionStudentCount int    `json:"session_student_count" gorm:"not null;default:0;column:session_student_count"`

	SessionCreatedAt time.Time      `json:"session_created_at" gorm:"column:session_created_at;autoCreateTime"`
	SessionUpdatedAt time.Time      `json:"session_updated_at" gorm:"column:session_updated_at;autoUpdateTime"`
	SessionDeletedAt gorm.DeletedAt `json:"session_deleted_at,omitempty" gorm:"column:session_deleted_at;index"`
}

func (SessionModel) TableName() string { return "sessions" }
