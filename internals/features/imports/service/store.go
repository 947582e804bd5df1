// file: internals/features/imports/service/store.go
package service

import (
	"github.com/google/uuid"

	classroomModel "kampusku_backend/internals/features/academics/classrooms/model"
	courseModel "kampusku_backend/internals/features/academics/courses/model"
	instructorModel "kampusku_backend/internals/features/academics/instructors/model"
	groupModel "kampusku_backend/internals/features/academics/student_groups/model"
	campusModel "kampusku_backend/internals/features/campus/campuses/model"
	collegeModel "kampusku_backend/internals/features/campus/colleges/model"
	departmentModel "kampusku_backend/internals/features/campus/departments/model"
)

// Store = port persistence untuk resolver + upserter.
// Konvensi: lookup mengembalikan (nil, nil) kalau tidak ketemu — error hanya
// untuk kegagalan storage betulan. Test pakai fake in-memory, production
// pakai GormStore.
type Store interface {
	// campuses
	AnyCampus() (*campusModel.CampusModel, error)
	FindCampusByName(name string) (*campusModel.CampusModel, error)

	// colleges
	FindCollegeExact(name string, campusID *uuid.UUID) (*collegeModel.CollegeModel, error)
	FindCollegeContains(name string, campusID *uuid.UUID) (*collegeModel.CollegeModel, error)
	AnyCollege(campusID *uuid.UUID) (*collegeModel.CollegeModel, error)
	CreateCollege(m *collegeModel.CollegeModel) error
	UpdateCollegeCampus(id uuid.UUID, campusID *uuid.UUID) error

	// departments
	FindDepartmentExact(name string, collegeID *uuid.UUID) (*departmentModel.DepartmentModel, error)
	FindDepartmentContains(name string, collegeID *uuid.UUID) (*departmentModel.DepartmentModel, error)
	CreateDepartment(m *departmentModel.DepartmentModel) error
	UpdateDepartmentCollege(id uuid.UUID, collegeID uuid.UUID) error

	// student groups
	FindStudentGroupByKey(name string, departmentID uuid.UUID, year int) (*groupModel.StudentGroupModel, error)
	CreateStudentGroup(m *groupModel.StudentGroupModel) error
	UpdateStudentGroup(m *groupModel.StudentGroupModel) error

	// classrooms
	FindClassroomByKey(name string, campusID *uuid.UUID) (*classroomModel.ClassroomModel, error)
	CreateClassroom(m *classroomModel.ClassroomModel) error
	UpdateClassroom(m *classroomModel.ClassroomModel) error

	// instructors
	FindInstructorByKey(name string, departmentID uuid.UUID, day, start, end *string) (*instructorModel.InstructorModel, error)
	FindInstructorExact(name string, departmentID *uuid.UUID) (*instructorModel.InstructorModel, error)
	FindInstructorContains(name string, departmentID *uuid.UUID) (*instructorModel.InstructorModel, error)
	CreateInstructor(m *instructorModel.InstructorModel) error
	UpdateInstructor(m *instructorModel.InstructorModel) error

	// courses
	FindCourseByCode(code string) (*courseModel.CourseModel, error)
	CreateCourse(m *courseModel.CourseModel) error
	UpdateCourse(m *courseModel.CourseModel) error
}
