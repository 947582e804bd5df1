// file: internals/features/campus/campuses/dto/campus_dto.go
package dto

import (
	model "kampusku_backend/internals/features/campus/campuses/model"
)

/* ========== CREATE ========== */

type CreateCampusRequest struct {
	CampusName     string  `json:"campus_name" validate:"required,max=200"`
	CampusLocation *string `json:"campus_location" validate:"omitempty,max=500"`
}

func (r CreateCampusRequest) ToModel() model.CampusModel {
	return model.CampusModel{
		CampusName:     r.CampusName,
		CampusLocation: r.CampusLocation,
	}
}

/* ========== PATCH ========== */

type UpdateCampusRequest struct {
	CampusName     *string `json:"campus_name" validate:"omitempty,max=200"`
	CampusLocation *string `json:"campus_location" validate:"omitempty,max=500"`
}

func (r UpdateCampusRequest) Apply(m *model.CampusModel) {
	if r.CampusName != nil {
		m.CampusName = *r.CampusName
	}
	if r.CampusLocation != nil {
		m.CampusLocation = r.CampusLocation
	}
}
