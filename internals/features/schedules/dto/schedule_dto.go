// file: internals/features/schedules/dto/schedule_dto.go
package dto

import (
	"github.com/google/uuid"

	scheduleModel "kampusku_backend/internals/features/schedules/model"
	service "kampusku_backend/internals/features/schedules/service"
)

/* ========== GENERATE (panggil optimizer eksternal) ========== */

type GenerateScheduleRequest struct {
	Semester string     `json:"semester" validate:"required,max=40"`
	CampusID *uuid.UUID `json:"campus_id" validate:"omitempty"`
}

/* ========== RECONCILE (hasil optimizer disetor langsung) ========== */

type ReconcileScheduleRequest struct {
	Semester    string                   `json:"semester" validate:"required,max=40"`
	CampusID    *uuid.UUID               `json:"campus_id" validate:"omitempty"`
	Assignments []service.AssignmentLine `json:"assignments" validate:"required,min=1"`
}

/* ========== RESPONSES ========== */

// SessionSummary = session + nama entity hasil resolve (buat dashboard)
type SessionSummary struct {
	scheduleModel.SessionModel
	CourseName     string  `json:"course_name"`
	InstructorName *string `json:"instructor_name,omitempty"`
	ClassroomName  *string `json:"classroom_name,omitempty"`
}

type ScheduleWithSessions struct {
	Schedule scheduleModel.ScheduleModel `json:"schedule"`
	Sessions []SessionSummary            `json:"sessions"`
	Skipped  []service.AssignmentLine    `json:"skipped,omitempty"`
}
