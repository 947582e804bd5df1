// file: internals/features/academics/instructors/dto/instructor_dto.go
package dto

import (
	"github.com/google/uuid"

	model "kampusku_backend/internals/features/academics/instructors/model"
)

/* ========== CREATE ========== */

type CreateInstructorRequest struct {
	InstructorName         string    `json:"instructor_name" validate:"required,max=200"`
	InstructorDepartmentID uuid.UUID `json:"instructor_department_id" validate:"required"`
	InstructorEmail        *string   `json:"instructor_email" validate:"omitempty,email"`
	InstructorDay          *string   `json:"instructor_day" validate:"omitempty,max=10"`
	InstructorStartTime    *string   `json:"instructor_start_time" validate:"omitempty,max=8"`
	InstructorEndTime      *string   `json:"instructor_end_time" validate:"omitempty,max=8"`
}

func (r CreateInstructorRequest) ToModel() model.InstructorModel {
	return model.InstructorModel{
		InstructorName:         r.InstructorName,
		InstructorDepartmentID: r.InstructorDepartmentID,
		InstructorEmail:        r.InstructorEmail,
		InstructorDay:          r.InstructorDay,
		InstructorStartTime:    r.InstructorStartTime,
		InstructorEndTime:      r.InstructorEndTime,
	}
}

/* ========== PATCH ========== */

type UpdateInstructorRequest struct {
	InstructorName         *string    `json:"instructor_name" validate:"omitempty,max=200"`
	InstructorDepartmentID *uuid.UUID `json:"instructor_department_id" validate:"omitempty"`
	InstructorEmail        *string    `json:"instructor_email" validate:"omitempty,email"`
	InstructorDay          *string    `json:"instructor_day" validate:"omitempty,max=10"`
	InstructorStartTime    *string    `json:"instructor_start_time" validate:"omitempty,max=8"`
	InstructorEndTime      *string    `json:"instructor_end_time" validate:"omitempty,max=8"`
}

func (r UpdateInstructorRequest) Apply(m *model.InstructorModel) {
	if r.InstructorName != nil {
		m.InstructorName = *r.InstructorName
	}
	if r.InstructorDepartmentID != nil {
		m.InstructorDepartmentID = *r.InstructorDepartmentID
	}
	if r.InstructorEmail != nil {
		m.InstructorEmail = r.InstructorEmail
	}
	if r.InstructorDay != nil {
		m.InstructorDay = r.InstructorDay
	}
	if r.InstructorStartTime != nil {
		m.InstructorStartTime = r.InstructorStartTime
	}
	if r.InstructorEndTime != nil {
		m.InstructorEndTime = r.InstructorEndTime
	}
}
