// file: internals/features/imports/service/store_gorm.go
package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	classroomModel "kampusku_backend/internals/features/academics/classrooms/model"
	courseModel "kampusku_backend/internals/features/academics/courses/model"
	instructorModel "kampusku_backend/internals/features/academics/instructors/model"
	groupModel "kampusku_backend/internals/features/academics/student_groups/model"
	campusModel "kampusku_backend/internals/features/campus/campuses/model"
	collegeModel "kampusku_backend/internals/features/campus/colleges/model"
	departmentModel "kampusku_backend/internals/features/campus/departments/model"
)

// GormStore implementasi Store di atas PostgreSQL.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore { return &GormStore{DB: db} }

// first jalankan query dan petakan gorm.ErrRecordNotFound ke (nil, nil)
func first[T any](q *gorm.DB) (*T, error) {
	var m T
	if err := q.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

/* ============================ CAMPUSES ============================ */

func (s *GormStore) AnyCampus() (*campusModel.CampusModel, error) {
	return first[campusModel.CampusModel](s.DB.Order("campus_created_at ASC"))
}

func (s *GormStore) FindCampusByName(name string) (*campusModel.CampusModel, error) {
	return first[campusModel.CampusModel](s.DB.Where("LOWER(campus_name) = LOWER(?)", name))
}

/* ============================ COLLEGES ============================ */

func (s *GormStore) FindCollegeExact(name string, campusID *uuid.UUID) (*collegeModel.CollegeModel, error) {
	q := s.DB.Where("LOWER(college_name) = LOWER(?)", name)
	if campusID != nil {
		q = q.Where("college_campus_id = ?", *campusID)
	}
	return first[collegeModel.CollegeModel](q)
}

func (s *GormStore) FindCollegeContains(name string, campusID *uuid.UUID) (*collegeModel.CollegeModel, error) {
	q := s.DB.Where("college_name ILIKE ?", "%"+name+"%")
	if campusID != nil {
		q = q.Where("college_campus_id = ?", *campusID)
	}
	return first[collegeModel.CollegeModel](q)
}

func (s *GormStore) AnyCollege(campusID *uuid.UUID) (*collegeModel.CollegeModel, error) {
	q := s.DB.Order("college_created_at ASC")
	if campusID != nil {
		q = q.Where("college_campus_id = ?", *campusID)
	}
	return first[collegeModel.CollegeModel](q)
}

func (s *GormStore) CreateCollege(m *collegeModel.CollegeModel) error {
	return s.DB.Create(m).Error
}

func (s *GormStore) UpdateCollegeCampus(id uuid.UUID, campusID *uuid.UUID) error {
	return s.DB.Model(&collegeModel.CollegeModel{}).
		Where("college_id = ?", id).
		Update("college_campus_id", campusID).Error
}

/* ============================ DEPARTMENTS ============================ */

func (s *GormStore) FindDepartmentExact(name string, collegeID *uuid.UUID) (*departmentModel.DepartmentModel, error) {
	q := s.DB.Where("LOWER(department_name) = LOWER(?)", name)
	if collegeID != nil {
		q = q.Where("department_college_id = ?", *collegeID)
	}
	return first[departmentModel.DepartmentModel](q)
}

func (s *GormStore) FindDepartmentContains(name string, collegeID *uuid.UUID) (*departmentModel.DepartmentModel, error) {
	q := s.DB.Where("department_name ILIKE ?", "%"+name+"%")
	if collegeID != nil {
		q = q.Where("department_college_id = ?", *collegeID)
	}
	return first[departmentModel.DepartmentModel](q)
}

func (s *GormStore) CreateDepartment(m *departmentModel.DepartmentModel) error {
	return s.DB.Create(m).Error
}

func (s *GormStore) UpdateDepartmentCollege(id uuid.UUID, collegeID uuid.UUID) error {
	return s.DB.Model(&departmentModel.DepartmentModel{}).
		Where("department_id = ?", id).
		Update("department_college_id", collegeID).Error
}

/* ============================ STUDENT GROUPS ============================ */

func (s *GormStore) FindStudentGroupByKey(name string, departmentID uuid.UUID, year int) (*groupModel.StudentGroupModel, error) {
	return first[groupModel.StudentGroupModel](s.DB.
		Where("LOWER(student_group_name) = LOWER(?)", name).
		Where("student_group_department_id = ?", departmentID).
		Where("student_group_year = ?", year))
}

func (s *GormStore) CreateStudentGroup(m *groupModel.StudentGroupModel) error {
	return s.DB.Create(m).Error
}

func (s *GormStore) UpdateStudentGroup(m *groupModel.StudentGroupModel) error {
	return s.DB.Save(m).Error
}

/* ============================ CLASSROOMS ============================ */

func (s *GormStore) FindClassroomByKey(name string, campusID *uuid.UUID) (*classroomModel.ClassroomModel, error) {
	q := s.DB.Where("LOWER(classroom_name) = LOWER(?)", name)
	if campusID != nil {
		q = q.Where("classroom_campus_id = ?", *campusID)
	} else {
		q = q.Where("classroom_campus_id IS NULL")
	}
	return first[classroomModel.ClassroomModel](q)
}

func (s *GormStore) CreateClassroom(m *classroomModel.ClassroomModel) error {
	return s.DB.Create(m).Error
}

func (s *GormStore) UpdateClassroom(m *classroomModel.ClassroomModel) error {
	return s.DB.Save(m).Error
}

/* ============================ INSTRUCTORS ============================ */

func (s *GormStore) FindInstructorByKey(name string, departmentID uuid.UUID, day, start, end *string) (*instructorModel.InstructorModel, error) {
	q := s.DB.
		Where("LOWER(instructor_name) = LOWER(?)", name).
		Where("instructor_department_id = ?", departmentID)
	q = whereNullable(q, "instructor_day", day)
	q = whereNullable(q, "instructor_start_time", start)
	q = whereNullable(q, "instructor_end_time", end)
	return first[instructorModel.InstructorModel](q)
}

func (s *GormStore) FindInstructorExact(name string, departmentID *uuid.UUID) (*instructorModel.InstructorModel, error) {
	q := s.DB.Where("LOWER(instructor_name) = LOWER(?)", name)
	if departmentID != nil {
		q = q.Where("instructor_department_id = ?", *departmentID)
	}
	return first[instructorModel.InstructorModel](q)
}

func (s *GormStore) FindInstructorContains(name string, departmentID *uuid.UUID) (*instructorModel.InstructorModel, error) {
	q := s.DB.Where("instructor_name ILIKE ?", "%"+name+"%")
	if departmentID != nil {
		q = q.Where("instructor_department_id = ?", *departmentID)
	}
	return first[instructorModel.InstructorModel](q)
}

func (s *GormStore) CreateInstructor(m *instructorModel.InstructorModel) error {
	return s.DB.Create(m).Error
}

func (s *GormStore) UpdateInstructor(m *instructorModel.InstructorModel) error {
	return s.DB.Save(m).Error
}

/* ============================ COURSES ============================ */

func (s *GormStore) FindCourseByCode(code string) (*courseModel.CourseModel, error) {
	return first[courseModel.CourseModel](s.DB.Where("LOWER(course_code) = LOWER(?)", code))
}

func (s *GormStore) CreateCourse(m *courseModel.CourseModel) error {
	return s.DB.Create(m).Error
}

func (s *GormStore) UpdateCourse(m *courseModel.CourseModel) error {
	return s.DB.Save(m).Error
}

func whereNullable(q *gorm.DB, col string, v *string) *gorm.DB {
	if v == nil {
		return q.Where(col + " IS NULL")
	}
	return q.Where(col+" = ?", *v)
}
