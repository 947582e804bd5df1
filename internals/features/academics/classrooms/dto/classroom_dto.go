// file: internals/features/academics/classrooms/dto/classroom_dto.go
package dto

import (
	"github.com/google/uuid"

	model "kampusku_backend/internals/features/academics/classrooms/model"
)

/* ========== CREATE ========== */

type CreateClassroomRequest struct {
	ClassroomName     string     `json:"classroom_name" validate:"required,max=200"`
	ClassroomCapacity int        `json:"classroom_capacity" validate:"required,min=1"`
	ClassroomType     string     `json:"classroom_type" validate:"omitempty,oneof=lecture_hall lab"`
	ClassroomCampusID *uuid.UUID `json:"classroom_campus_id" validate:"omitempty"`
}

func (r CreateClassroomRequest) ToModel() model.ClassroomModel {
	t := model.ClassroomLectureHall
	if r.ClassroomType != "" {
		t = model.ClassroomType(r.ClassroomType)
	}
	return model.ClassroomModel{
		ClassroomName:     r.ClassroomName,
		ClassroomCapacity: r.ClassroomCapacity,
		ClassroomType:     t,
		ClassroomCampusID: r.ClassroomCampusID,
	}
}

/* ========== PATCH ========== */

type UpdateClassroomRequest struct {
	ClassroomName     *string    `json:"classroom_name" validate:"omitempty,max=200"`
	ClassroomCapacity *int       `json:"classroom_capacity" validate:"omitempty,min=1"`
	ClassroomType     *string    `json:"classroom_type" validate:"omitempty,oneof=lecture_hall lab"`
	ClassroomCampusID *uuid.UUID `json:"classroom_campus_id" validate:"omitempty"`
}

func (r UpdateClassroomRequest) Apply(m *model.ClassroomModel) {
	if r.ClassroomName != nil {
		m.ClassroomName = *r.ClassroomName
	}
	if r.ClassroomCapacity != nil {
		m.ClassroomCapacity = *r.ClassroomCapacity
	}
	if r.ClassroomType != nil {
		m.ClassroomType = model.ClassroomType(*r.ClassroomType)
	}
	if r.ClassroomCampusID != nil {
		m.ClassroomCampusID = r.ClassroomCampusID
	}
}
