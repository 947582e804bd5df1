// file: internals/features/campus/colleges/dto/college_dto.go
package dto

import (
	"github.com/google/uuid"

	model "kampusku_backend/internals/features/campus/colleges/model"
)

/* ========== CREATE ========== */

type CreateCollegeRequest struct {
	CollegeName     string     `json:"college_name" validate:"required,max=200"`
	CollegeCampusID *uuid.UUID `json:"college_campus_id" validate:"omitempty"`
}

func (r CreateCollegeRequest) ToModel() model.CollegeModel {
	return model.CollegeModel{
		CollegeName:     r.CollegeName,
		CollegeCampusID: r.CollegeCampusID,
	}
}

/* ========== PATCH ========== */

type UpdateCollegeRequest struct {
	CollegeName     *string    `json:"college_name" validate:"omitempty,max=200"`
	CollegeCampusID *uuid.UUID `json:"college_campus_id" validate:"omitempty"`
}

func (r UpdateCollegeRequest) Apply(m *model.CollegeModel) {
	if r.CollegeName != nil {
		m.CollegeName = *r.CollegeName
	}
	if r.CollegeCampusID != nil {
		m.CollegeCampusID = r.CollegeCampusID
	}
}
