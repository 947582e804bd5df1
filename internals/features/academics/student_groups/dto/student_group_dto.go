// file: internals/features/academics/student_groups/dto/student_group_dto.go
package dto

import (
	"github.com/google/uuid"

	model "kampusku_backend/internals/features/academics/student_groups/model"
)

/* ========== CREATE ========== */

type CreateStudentGroupRequest struct {
	StudentGroupName         string    `json:"student_group_name" validate:"required,max=200"`
	StudentGroupYear         int       `json:"student_group_year" validate:"omitempty,min=1,max=4"`
	StudentGroupStudentCount int       `json:"student_group_student_count" validate:"omitempty,min=0"`
	StudentGroupDepartmentID uuid.UUID `json:"student_group_department_id" validate:"required"`
}

func (r CreateStudentGroupRequest) ToModel() model.StudentGroupModel {
	year := r.StudentGroupYear
	if year < 1 {
		year = 1
	}
	return model.StudentGroupModel{
		StudentGroupName:         r.StudentGroupName,
		StudentGroupYear:         year,
		StudentGroupStudentCount: r.StudentGroupStudentCount,
		StudentGroupDepartmentID: r.StudentGroupDepartmentID,
	}
}

/* ========== PATCH ========== */

type UpdateStudentGroupRequest struct {
	StudentGroupName         *string    `json:"student_group_name" validate:"omitempty,max=200"`
	StudentGroupYear         *int       `json:"student_group_year" validate:"omitempty,min=1,max=4"`
	StudentGroupStudentCount *int       `json:"student_group_student_count" validate:"omitempty,min=0"`
	StudentGroupDepartmentID *uuid.UUID `json:"student_group_department_id" validate:"omitempty"`
}

func (r UpdateStudentGroupRequest) Apply(m *model.StudentGroupModel) {
	if r.StudentGroupName != nil {
		m.StudentGroupName = *r.StudentGroupName
	}
	if r.StudentGroupYear != nil {
		m.StudentGroupYear = *r.StudentGroupYear
	}
	if r.StudentGroupStudentCount != nil {
		m.StudentGroupStudentCount = *r.StudentGroupStudentCount
	}
	if r.StudentGroupDepartmentID != nil {
		m.StudentGroupDepartmentID = *r.StudentGroupDepartmentID
	}
}
