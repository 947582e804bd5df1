// file: internals/features/campus/departments/dto/department_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	model "kampusku_backend/internals/features/campus/departments/model"
)

/* ========== CREATE ========== */

type CreateDepartmentRequest struct {
	DepartmentName      string    `json:"department_name" validate:"required,max=200"`
	DepartmentCode      string    `json:"department_code" validate:"required,max=20"`
	DepartmentCollegeID uuid.UUID `json:"department_college_id" validate:"required"`
}

func (r CreateDepartmentRequest) ToModel() model.DepartmentModel {
	return model.DepartmentModel{
		DepartmentName:      r.DepartmentName,
		DepartmentCode:      strings.ToUpper(strings.TrimSpace(r.DepartmentCode)),
		DepartmentCollegeID: r.DepartmentCollegeID,
	}
}

/* ========== PATCH ========== */

type UpdateDepartmentRequest struct {
	DepartmentName      *string    `json:"department_name" validate:"omitempty,max=200"`
	DepartmentCode      *string    `json:"department_code" validate:"omitempty,max=20"`
	DepartmentCollegeID *uuid.UUID `json:"department_college_id" validate:"omitempty"`
}

func (r UpdateDepartmentRequest) Apply(m *model.DepartmentModel) {
	if r.DepartmentName != nil {
		m.DepartmentName = *r.DepartmentName
	}
	if r.DepartmentCode != nil {
		m.DepartmentCode = strings.ToUpper(strings.TrimSpace(*r.DepartmentCode))
	}
	if r.DepartmentCollegeID != nil {
		m.DepartmentCollegeID = *r.DepartmentCollegeID
	}
}
