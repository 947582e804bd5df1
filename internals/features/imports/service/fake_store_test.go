// file: internals/features/imports/service/fake_store_test.go
package service

import (
	"strings"

	"github.com/google/uuid"

	classroomModel "kampusku_backend/internals/features/academics/classrooms/model"
	courseModel "kampusku_backend/internals/features/academics/courses/model"
	instructorModel "kampusku_backend/internals/features/academics/instructors/model"
	groupModel "kampusku_backend/internals/features/academics/student_groups/model"
	campusModel "kampusku_backend/internals/features/campus/campuses/model"
	collegeModel "kampusku_backend/internals/features/campus/colleges/model"
	departmentModel "kampusku_backend/internals/features/campus/departments/model"
)

// fakeStore = Store in-memory untuk test, meniru semantik GormStore:
// exact = equality case-insensitive, contains = substring case-insensitive,
// lookup nihil = (nil, nil).
type fakeStore struct {
	campuses    []*campusModel.CampusModel
	colleges    []*collegeModel.CollegeModel
	departments []*departmentModel.DepartmentModel
	groups      []*groupModel.StudentGroupModel
	classrooms  []*classroomModel.ClassroomModel
	instructors []*instructorModel.InstructorModel
	courses     []*courseModel.CourseModel
}

func newFakeStore() *fakeStore { return &fakeStore{} }

func (f *fakeStore) addCampus(name string) *campusModel.CampusModel {
	m := &campusModel.CampusModel{CampusID: uuid.New(), CampusName: name}
	f.campuses = append(f.campuses, m)
	return m
}

func (f *fakeStore) addCollege(name string, campusID *uuid.UUID) *collegeModel.CollegeModel {
	m := &collegeModel.CollegeModel{CollegeID: uuid.New(), CollegeName: name, CollegeCampusID: campusID}
	f.colleges = append(f.colleges, m)
	return m
}

func (f *fakeStore) addDepartment(name string, collegeID uuid.UUID) *departmentModel.DepartmentModel {
	m := &departmentModel.DepartmentModel{
		DepartmentID:        uuid.New(),
		DepartmentName:      name,
		DepartmentCode:      DeriveDepartmentCode(name),
		DepartmentCollegeID: collegeID,
	}
	f.departments = append(f.departments, m)
	return m
}

func eqFold(a, b string) bool { return strings.EqualFold(a, b) }

func containsFoldStr(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func sameUUIDPtr(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func sameStrPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

/* ===== campuses ===== */

func (f *fakeStore) AnyCampus() (*campusModel.CampusModel, error) {
	if len(f.campuses) == 0 {
		return nil, nil
	}
	return f.campuses[0], nil
}

func (f *fakeStore) FindCampusByName(name string) (*campusModel.CampusModel, error) {
	for _, m := range f.campuses {
		if eqFold(m.CampusName, name) {
			return m, nil
		}
	}
	return nil, nil
}

/* ===== colleges ===== */

func (f *fakeStore) FindCollegeExact(name string, campusID *uuid.UUID) (*collegeModel.CollegeModel, error) {
	for _, m := range f.colleges {
		if !eqFold(m.CollegeName, name) {
			continue
		}
		if campusID != nil && !sameUUIDPtr(m.CollegeCampusID, campusID) {
			continue
		}
		return m, nil
	}
	return nil, nil
}

func (f *fakeStore) FindCollegeContains(name string, campusID *uuid.UUID) (*collegeModel.CollegeModel, error) {
	for _, m := range f.colleges {
		if !containsFoldStr(m.CollegeName, name) {
			continue
		}
		if campusID != nil && !sameUUIDPtr(m.CollegeCampusID, campusID) {
			continue
		}
		return m, nil
	}
	return nil, nil
}

func (f *fakeStore) AnyCollege(campusID *uuid.UUID) (*collegeModel.CollegeModel, error) {
	for _, m := range f.colleges {
		if campusID != nil && !sameUUIDPtr(m.CollegeCampusID, campusID) {
			continue
		}
		return m, nil
	}
	return nil, nil
}

func (f *fakeStore) CreateCollege(m *collegeModel.CollegeModel) error {
	if m.CollegeID == uuid.Nil {
		m.CollegeID = uuid.New()
	}
	f.colleges = append(f.colleges, m)
	return nil
}

func (f *fakeStore) UpdateCollegeCampus(id uuid.UUID, campusID *uuid.UUID) error {
	for _, m := range f.colleges {
		if m.CollegeID == id {
			m.CollegeCampusID = campusID
		}
	}
	return nil
}

/* ===== departments ===== */

func (f *fakeStore) FindDepartmentExact(name string, collegeID *uuid.UUID) (*departmentModel.DepartmentModel, error) {
	for _, m := range f.departments {
		if !eqFold(m.DepartmentName, name) {
			continue
		}
		if collegeID != nil && m.DepartmentCollegeID != *collegeID {
			continue
		}
		return m, nil
	}
	return nil, nil
}

func (f *fakeStore) FindDepartmentContains(name string, collegeID *uuid.UUID) (*departmentModel.DepartmentModel, error) {
	for _, m := range f.departments {
		if !containsFoldStr(m.DepartmentName, name) {
			continue
		}
		if collegeID != nil && m.DepartmentCollegeID != *collegeID {
			continue
		}
		return m, nil
	}
	return nil, nil
}

func (f *fakeStore) CreateDepartment(m *departmentModel.DepartmentModel) error {
	if m.DepartmentCollegeID == uuid.Nil {
		// jaga invariant schema NOT NULL di level fake juga
		panic("department tanpa college")
	}
	if m.DepartmentID == uuid.Nil {
		m.DepartmentID = uuid.New()
	}
	f.departments = append(f.departments, m)
	return nil
}

func (f *fakeStore) UpdateDepartmentCollege(id uuid.UUID, collegeID uuid.UUID) error {
	for _, m := range f.departments {
		if m.DepartmentID == id {
			m.DepartmentCollegeID = collegeID
		}
	}
	return nil
}

/* ===== student groups ===== */

func (f *fakeStore) FindStudentGroupByKey(name string, departmentID uuid.UUID, year int) (*groupModel.StudentGroupModel, error) {
	for _, m := range f.groups {
		if eqFold(m.StudentGroupName, name) && m.StudentGroupDepartmentID == departmentID && m.StudentGroupYear == year {
			return m, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) CreateStudentGroup(m *groupModel.StudentGroupModel) error {
	if m.StudentGroupID == uuid.Nil {
		m.StudentGroupID = uuid.New()
	}
	f.groups = append(f.groups, m)
	return nil
}

func (f *fakeStore) UpdateStudentGroup(m *groupModel.StudentGroupModel) error { return nil }

/* ===== classrooms ===== */

func (f *fakeStore) FindClassroomByKey(name string, campusID *uuid.UUID) (*classroomModel.ClassroomModel, error) {
	for _, m := range f.classrooms {
		if eqFold(m.ClassroomName, name) && sameUUIDPtr(m.ClassroomCampusID, campusID) {
			return m, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) CreateClassroom(m *classroomModel.ClassroomModel) error {
	if m.ClassroomID == uuid.Nil {
		m.ClassroomID = uuid.New()
	}
	f.classrooms = append(f.classrooms, m)
	return nil
}

func (f *fakeStore) UpdateClassroom(m *classroomModel.ClassroomModel) error { return nil }

/* ===== instructors ===== */

func (f *fakeStore) FindInstructorByKey(name string, departmentID uuid.UUID, day, start, end *string) (*instructorModel.InstructorModel, error) {
	for _, m := range f.instructors {
		if eqFold(m.InstructorName, name) &&
			m.InstructorDepartmentID == departmentID &&
			sameStrPtr(m.InstructorDay, day) &&
			sameStrPtr(m.InstructorStartTime, start) &&
			sameStrPtr(m.InstructorEndTime, end) {
			return m, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) FindInstructorExact(name string, departmentID *uuid.UUID) (*instructorModel.InstructorModel, error) {
	for _, m := range f.instructors {
		if !eqFold(m.InstructorName, name) {
			continue
		}
		if departmentID != nil && m.InstructorDepartmentID != *departmentID {
			continue
		}
		return m, nil
	}
	return nil, nil
}

func (f *fakeStore) FindInstructorContains(name string, departmentID *uuid.UUID) (*instructorModel.InstructorModel, error) {
	for _, m := range f.instructors {
		if !containsFoldStr(m.InstructorName, name) {
			continue
		}
		if departmentID != nil && m.InstructorDepartmentID != *departmentID {
			continue
		}
		return m, nil
	}
	return nil, nil
}

func (f *fakeStore) CreateInstructor(m *instructorModel.InstructorModel) error {
	if m.InstructorID == uuid.Nil {
		m.InstructorID = uuid.New()
	}
	f.instructors = append(f.instructors, m)
	return nil
}

func (f *fakeStore) UpdateInstructor(m *instructorModel.InstructorModel) error { return nil }

/* ===== courses ===== */

func (f *fakeStore) FindCourseByCode(code string) (*courseModel.CourseModel, error) {
	for _, m := range f.courses {
		if eqFold(m.CourseCode, code) {
			return m, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) CreateCourse(m *courseModel.CourseModel) error {
	if m.CourseID == uuid.Nil {
		m.CourseID = uuid.New()
	}
	f.courses = append(f.courses, m)
	return nil
}

func (f *fakeStore) UpdateCourse(m *courseModel.CourseModel) error { return nil }
