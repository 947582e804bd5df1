// file: internals/features/imports/service/upsert.go
package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	classroomModel "kampusku_backend/internals/features/academics/classrooms/model"
	courseModel "kampusku_backend/internals/features/academics/courses/model"
	instructorModel "kampusku_backend/internals/features/academics/instructors/model"
	groupModel "kampusku_backend/internals/features/academics/student_groups/model"
)

// Action hasil upsert — create atau update, tidak ada delete path di engine ini.
type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
)

/* ============================ STUDENT GROUP ============================ */

// Natural key: (name, department_id, year). Field mutable: student count.
func (s *ImportService) upsertStudentGroup(f StudentGroupFields, campusID *uuid.UUID) (any, Action, error) {
	dep, err := s.resolver.ResolveDepartment(f.DepartmentName, f.CollegeName, campusID, "")
	if err != nil {
		return nil, "", err
	}

	existing, err := s.store.FindStudentGroupByKey(f.Name, dep.DepartmentID, f.Year)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		existing.StudentGroupStudentCount = f.StudentCount
		if err := s.store.UpdateStudentGroup(existing); err != nil {
			return nil, "", err
		}
		return existing, ActionUpdated, nil
	}

	m := &groupModel.StudentGroupModel{
		StudentGroupName:         f.Name,
		StudentGroupYear:         f.Year,
		StudentGroupStudentCount: f.StudentCount,
		StudentGroupDepartmentID: dep.DepartmentID,
	}
	if err := s.store.CreateStudentGroup(m); err != nil {
		return nil, "", err
	}
	return m, ActionCreated, nil
}

/* ============================ CLASSROOM ============================ */

// Natural key: (name, campus_id). Field mutable: capacity, type.
func (s *ImportService) upsertClassroom(f ClassroomFields, campusID *uuid.UUID) (any, Action, error) {
	scope, err := s.resolveCampusScope(campusID, f.CampusName)
	if err != nil {
		return nil, "", err
	}

	existing, err := s.store.FindClassroomByKey(f.Name, scope)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		existing.ClassroomCapacity = f.Capacity
		existing.ClassroomType = classroomModel.ClassroomType(f.Type)
		if err := s.store.UpdateClassroom(existing); err != nil {
			return nil, "", err
		}
		return existing, ActionUpdated, nil
	}

	m := &classroomModel.ClassroomModel{
		ClassroomName:     f.Name,
		ClassroomCapacity: f.Capacity,
		ClassroomType:     classroomModel.ClassroomType(f.Type),
		ClassroomCampusID: scope,
	}
	if err := s.store.CreateClassroom(m); err != nil {
		return nil, "", err
	}
	return m, ActionCreated, nil
}

// Ruangan butuh campus: pakai scope caller → nama campus di sheet → campus
// mana pun yang sudah ada → gagal baris (bukan batch).
func (s *ImportService) resolveCampusScope(campusID *uuid.UUID, campusName string) (*uuid.UUID, error) {
	if campusID != nil {
		return campusID, nil
	}
	if campusName != "" {
		c, err := s.store.FindCampusByName(campusName)
		if err != nil {
			return nil, err
		}
		if c != nil {
			return &c.CampusID, nil
		}
	}
	c, err := s.store.AnyCampus()
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, errors.New("tidak ada campus yang bisa dipakai sebagai scope ruangan")
	}
	return &c.CampusID, nil
}

/* ============================ INSTRUCTOR ============================ */

// Satu baris = satu slot assignment. Natural key: (name, department_id,
// day, start, end). Field mutable: email.
func (s *ImportService) upsertInstructor(f InstructorFields, campusID *uuid.UUID) (any, Action, error) {
	dep, err := s.resolver.ResolveDepartment(f.DepartmentName, "", campusID, "")
	if err != nil {
		return nil, "", err
	}

	existing, err := s.store.FindInstructorByKey(f.Name, dep.DepartmentID, f.Day, f.StartTime, f.EndTime)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		if f.Email != nil {
			existing.InstructorEmail = f.Email
		}
		if err := s.store.UpdateInstructor(existing); err != nil {
			return nil, "", err
		}
		return existing, ActionUpdated, nil
	}

	m := &instructorModel.InstructorModel{
		InstructorName:         f.Name,
		InstructorDepartmentID: dep.DepartmentID,
		InstructorEmail:        f.Email,
		InstructorDay:          f.Day,
		InstructorStartTime:    f.StartTime,
		InstructorEndTime:      f.EndTime,
	}
	if err := s.store.CreateInstructor(m); err != nil {
		return nil, "", err
	}
	return m, ActionCreated, nil
}

/* ============================ COURSE ============================ */

// Natural key: course_code (unik global). Link instructor best-effort:
// id lokal sheet → nama (via instructorNames), lalu exact → contains scoped
// department → exact → contains global. Tidak ketemu = biarkan NULL,
// tidak pernah fatal.
func (s *ImportService) upsertCourse(f CourseFields, campusID *uuid.UUID, instructorNames map[string]string) (any, Action, error) {
	dep, err := s.resolver.ResolveDepartment(f.DepartmentName, f.CollegeName, campusID, "")
	if err != nil {
		return nil, "", err
	}

	instructorID, err := s.matchCourseInstructor(f.InstructorRef, dep.DepartmentID, instructorNames)
	if err != nil {
		return nil, "", err
	}

	existing, err := s.store.FindCourseByCode(f.Code)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		existing.CourseName = f.Name
		existing.CourseType = courseModel.CourseType(f.Type)
		existing.CourseDaysPerWeek = f.DaysPerWeek
		existing.CourseHoursPerDay = f.HoursPerDay
		existing.CourseYear = f.Year
		existing.CourseDepartmentID = dep.DepartmentID
		existing.CourseCollegeID = dep.DepartmentCollegeID
		if instructorID != nil {
			existing.CourseInstructorID = instructorID
		}
		if err := s.store.UpdateCourse(existing); err != nil {
			return nil, "", err
		}
		return existing, ActionUpdated, nil
	}

	m := &courseModel.CourseModel{
		CourseCode:         f.Code,
		CourseName:         f.Name,
		CourseType:         courseModel.CourseType(f.Type),
		CourseDaysPerWeek:  f.DaysPerWeek,
		CourseHoursPerDay:  f.HoursPerDay,
		CourseYear:         f.Year,
		CourseDepartmentID: dep.DepartmentID,
		CourseCollegeID:    dep.DepartmentCollegeID,
		CourseInstructorID: instructorID,
	}
	if err := s.store.CreateCourse(m); err != nil {
		return nil, "", fmt.Errorf("create course %s: %w", f.Code, err)
	}
	return m, ActionCreated, nil
}

func (s *ImportService) matchCourseInstructor(ref string, departmentID uuid.UUID, instructorNames map[string]string) (*uuid.UUID, error) {
	if ref == "" {
		return nil, nil
	}
	// id lokal sheet ("I12") → nama hasil import instructor di batch yang sama
	if mapped, ok := instructorNames[normKey(ref)]; ok {
		ref = mapped
	}

	inst, err := s.store.FindInstructorExact(ref, &departmentID)
	if err != nil {
		return nil, err
	}
	if inst == nil {
		inst, err = s.store.FindInstructorContains(ref, &departmentID)
		if err != nil {
			return nil, err
		}
	}
	if inst == nil {
		inst, err = s.store.FindInstructorExact(ref, nil)
		if err != nil {
			return nil, err
		}
	}
	if inst == nil {
		inst, err = s.store.FindInstructorContains(ref, nil)
		if err != nil {
			return nil, err
		}
	}
	if inst == nil {
		return nil, nil
	}
	return &inst.InstructorID, nil
}
