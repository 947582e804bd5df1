// file: internals/features/schedules/service/store.go
package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	classroomModel "kampusku_backend/internals/features/academics/classrooms/model"
	courseModel "kampusku_backend/internals/features/academics/courses/model"
	instructorModel "kampusku_backend/internals/features/academics/instructors/model"
	scheduleModel "kampusku_backend/internals/features/schedules/model"
)

// ReconcileStore = port persistence reconciler. Entity kandidat dimuat sekali
// per batch (match-nya in-memory), session ditulis per baris.
type ReconcileStore interface {
	ListCourses() ([]courseModel.CourseModel, error)
	ListInstructors() ([]instructorModel.InstructorModel, error)
	ListClassrooms(campusID *uuid.UUID) ([]classroomModel.ClassroomModel, error)
	CreateSession(m *scheduleModel.SessionModel) error
}

// GormReconcileStore implementasi di atas PostgreSQL.
type GormReconcileStore struct {
	DB *gorm.DB
}

func NewGormReconcileStore(db *gorm.DB) *GormReconcileStore { return &GormReconcileStore{DB: db} }

func (s *GormReconcileStore) ListCourses() ([]courseModel.CourseModel, error) {
	var out []courseModel.CourseModel
	if err := s.DB.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *GormReconcileStore) ListInstructors() ([]instructorModel.InstructorModel, error) {
	var out []instructorModel.InstructorModel
	if err := s.DB.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *GormReconcileStore) ListClassrooms(campusID *uuid.UUID) ([]classroomModel.ClassroomModel, error) {
	q := s.DB
	if campusID != nil {
		q = q.Where("classroom_campus_id = ?", *campusID)
	}
	var out []classroomModel.ClassroomModel
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *GormReconcileStore) CreateSession(m *scheduleModel.SessionModel) error {
	if m.SessionCourseID == uuid.Nil {
		return errors.New("session tanpa course tidak boleh dipersist")
	}
	return s.DB.Create(m).Error
}
