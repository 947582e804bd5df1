// file: internals/features/academics/courses/dto/course_dto.go
package dto

import (
	"github.com/google/uuid"

	model "kampusku_backend/internals/features/academics/courses/model"
)

/* ========== CREATE ========== */

type CreateCourseRequest struct {
	CourseCode string `json:"course_code" validate:"required,max=40"`
	CourseName string `json:"course_name" validate:"required,max=200"`
	CourseType string `json:"course_type" validate:"omitempty,oneof=theory practical"`

	CourseDaysPerWeek int `json:"course_days_per_week" validate:"omitempty,min=0,max=7"`
	CourseHoursPerDay int `json:"course_hours_per_day" validate:"omitempty,min=0,max=12"`
	CourseYear        int `json:"course_year" validate:"omitempty,min=1,max=4"`

	CourseDepartmentID uuid.UUID  `json:"course_department_id" validate:"required"`
	CourseCollegeID    uuid.UUID  `json:"course_college_id" validate:"required"`
	CourseInstructorID *uuid.UUID `json:"course_instructor_id" validate:"omitempty"`
}

func (r CreateCourseRequest) ToModel() model.CourseModel {
	ct := model.CourseType(r.CourseType)
	if ct == "" {
		ct = model.CourseTheory
	}
	year := r.CourseYear
	if year < 1 {
		year = 1
	}
	return model.CourseModel{
		CourseCode:         r.CourseCode,
		CourseName:         r.CourseName,
		CourseType:         ct,
		CourseDaysPerWeek:  r.CourseDaysPerWeek,
		CourseHoursPerDay:  r.CourseHoursPerDay,
		CourseYear:         year,
		CourseDepartmentID: r.CourseDepartmentID,
		CourseCollegeID:    r.CourseCollegeID,
		CourseInstructorID: r.CourseInstructorID,
	}
}

/* ========== PATCH ========== */

type UpdateCourseRequest struct {
	CourseCode *string `json:"course_code" validate:"omitempty,max=40"`
	CourseName *string `json:"course_name" validate:"omitempty,max=200"`
	CourseType *string `json:"course_type" validate:"omitempty,oneof=theory practical"`

	CourseDaysPerWeek *int `json:"course_days_per_week" validate:"omitempty,min=0,max=7"`
	CourseHoursPerDay *int `json:"course_hours_per_day" validate:"omitempty,min=0,max=12"`
	CourseYear        *int `json:"course_year" validate:"omitempty,min=1,max=4"`

	CourseDepartmentID *uuid.UUID `json:"course_department_id" validate:"omitempty"`
	CourseCollegeID    *uuid.UUID `json:"course_college_id" validate:"omitempty"`
	CourseInstructorID *uuid.UUID `json:"course_instructor_id" validate:"omitempty"`
}

func (r UpdateCourseRequest) Apply(m *model.CourseModel) {
	if r.CourseCode != nil {
		m.CourseCode = *r.CourseCode
	}
	if r.CourseName != nil {
		m.CourseName = *r.CourseName
	}
	if r.CourseType != nil {
		m.CourseType = model.CourseType(*r.CourseType)
	}
	if r.CourseDaysPerWeek != nil {
		m.CourseDaysPerWeek = *r.CourseDaysPerWeek
	}
	if r.CourseHoursPerDay != nil {
		m.CourseHoursPerDay = *r.CourseHoursPerDay
	}
	if r.CourseYear != nil {
		m.CourseYear = *r.CourseYear
	}
	if r.CourseDepartmentID != nil {
		m.CourseDepartmentID = *r.CourseDepartmentID
	}
	if r.CourseCollegeID != nil {
		m.CourseCollegeID = *r.CourseCollegeID
	}
	if r.CourseInstructorID != nil {
		m.CourseInstructorID = r.CourseInstructorID
	}
}
