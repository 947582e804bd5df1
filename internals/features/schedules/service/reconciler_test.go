// file: internals/features/schedules/service/reconciler_test.go
package service

import (
	"testing"

	"github.com/google/uuid"

	classroomModel "kampusku_backend/internals/features/academics/classrooms/model"
	courseModel "kampusku_backend/internals/features/academics/courses/model"
	instructorModel "kampusku_backend/internals/features/academics/instructors/model"
	scheduleModel "kampusku_backend/internals/features/schedules/model"
)

// fakeReconcileStore = ReconcileStore in-memory untuk test
type fakeReconcileStore struct {
	courses     []courseModel.CourseModel
	instructors []instructorModel.InstructorModel
	classrooms  []classroomModel.ClassroomModel
	sessions    []scheduleModel.SessionModel
}

func (f *fakeReconcileStore) ListCourses() ([]courseModel.CourseModel, error) {
	return f.courses, nil
}

func (f *fakeReconcileStore) ListInstructors() ([]instructorModel.InstructorModel, error) {
	return f.instructors, nil
}

func (f *fakeReconcileStore) ListClassrooms(campusID *uuid.UUID) ([]classroomModel.ClassroomModel, error) {
	return f.classrooms, nil
}

func (f *fakeReconcileStore) CreateSession(m *scheduleModel.SessionModel) error {
	if m.SessionID == uuid.Nil {
		m.SessionID = uuid.New()
	}
	f.sessions = append(f.sessions, *m)
	return nil
}

func newStore() *fakeReconcileStore {
	return &fakeReconcileStore{
		courses: []courseModel.CourseModel{
			{CourseID: uuid.New(), CourseCode: "CS301", CourseName: "Algorithms"},
			{CourseID: uuid.New(), CourseCode: "MA201", CourseName: "Calculus II"},
		},
		instructors: []instructorModel.InstructorModel{
			{InstructorID: uuid.New(), InstructorName: "Amany Said"},
			{InstructorID: uuid.New(), InstructorName: "Budi Santoso"},
		},
		classrooms: []classroomModel.ClassroomModel{
			{ClassroomID: uuid.New(), ClassroomName: "B-201"},
		},
	}
}

func TestReconcileFullMatch(t *testing.T) {
	fs := newStore()
	r := NewReconciler(fs)
	scheduleID := uuid.New()

	report, err := r.Reconcile([]AssignmentLine{{
		CourseName:     "Algorithms",
		InstructorName: "Amany Said",
		Room:           "B-201",
		Day:            " Monday ",
		StartTime:      "08:00",
		EndTime:        "10:00",
		Students:       30,
	}}, scheduleID, nil)
	if err != nil {
		t.Fatalf("error: %v", err)
	}
	if len(report.Persisted) != 1 || len(report.Skipped) != 0 {
		t.Fatalf("report: %+v", report)
	}

	s := fs.sessions[0]
	if s.SessionScheduleID != scheduleID {
		t.Errorf("schedule id salah")
	}
	if s.SessionCourseID != fs.courses[0].CourseID {
		t.Errorf("course link salah")
	}
	if s.SessionInstructorID == nil || *s.SessionInstructorID != fs.instructors[0].InstructorID {
		t.Errorf("instructor link salah")
	}
	if s.SessionClassroomID == nil || *s.SessionClassroomID != fs.classrooms[0].ClassroomID {
		t.Errorf("classroom link salah")
	}
	if s.SessionDay != "monday" {
		t.Errorf("day harus lowercase ter-trim, dapat %q", s.SessionDay)
	}
}

func TestReconcileCourseMissDropsLine(t *testing.T) {
	fs := newStore()
	r := NewReconciler(fs)

	report, err := r.Reconcile([]AssignmentLine{
		{CourseName: "Quantum Basket Weaving", Day: "monday", StartTime: "08:00", EndTime: "10:00"},
		{CourseName: "Calculus II", Day: "tuesday", StartTime: "10:00", EndTime: "12:00"},
	}, uuid.New(), nil)
	if err != nil {
		t.Fatalf("error: %v", err)
	}
	if len(report.Skipped) != 1 {
		t.Fatalf("baris course-miss harus di-skip, report: %+v", report)
	}
	if len(report.Persisted) != 1 {
		t.Fatalf("baris valid harus tetap dipersist")
	}
	if len(fs.sessions) != 1 {
		t.Fatalf("session tersimpan = %d", len(fs.sessions))
	}
}

func TestReconcileCourseNameWithGroupSuffix(t *testing.T) {
	fs := newStore()
	r := NewReconciler(fs)

	report, err := r.Reconcile([]AssignmentLine{
		{CourseName: "Algorithms (CS-A)", Day: "monday", StartTime: "08:00", EndTime: "10:00"},
	}, uuid.New(), nil)
	if err != nil {
		t.Fatalf("error: %v", err)
	}
	if len(report.Persisted) != 1 {
		t.Fatalf("suffix kurung harus dibuang sebelum match")
	}
	if fs.sessions[0].SessionCourseID != fs.courses[0].CourseID {
		t.Fatalf("match course salah")
	}
}

func TestReconcileInstructorHonorifics(t *testing.T) {
	fs := newStore()
	r := NewReconciler(fs)

	// optimizer menulis "Dr. Amany Said", DB menyimpan "Amany Said"
	_, err := r.Reconcile([]AssignmentLine{
		{CourseName: "Algorithms", InstructorName: "Dr. Amany Said", Day: "monday", StartTime: "08:00", EndTime: "10:00"},
	}, uuid.New(), nil)
	if err != nil {
		t.Fatalf("error: %v", err)
	}
	if fs.sessions[0].SessionInstructorID == nil ||
		*fs.sessions[0].SessionInstructorID != fs.instructors[0].InstructorID {
		t.Fatalf("honorific harus di-strip sebelum match")
	}
}

func TestReconcileInstructorMissLeavesNull(t *testing.T) {
	fs := newStore()
	r := NewReconciler(fs)

	report, err := r.Reconcile([]AssignmentLine{
		{CourseName: "Algorithms", InstructorName: "Ghost Lecturer", Room: "Ghost Hall", Day: "monday", StartTime: "08:00", EndTime: "10:00"},
	}, uuid.New(), nil)
	if err != nil {
		t.Fatalf("error: %v", err)
	}
	if len(report.Persisted) != 1 {
		t.Fatalf("miss instructor/room tidak boleh membatalkan session")
	}
	s := fs.sessions[0]
	if s.SessionInstructorID != nil {
		t.Errorf("instructor miss harus NULL")
	}
	if s.SessionClassroomID != nil {
		t.Errorf("room miss harus NULL")
	}
}

func TestReconcileInstructorFallbackToCourseAssignment(t *testing.T) {
	fs := newStore()
	// course sudah punya instructor pre-assigned dari import
	fs.courses[0].CourseInstructorID = &fs.instructors[1].InstructorID
	r := NewReconciler(fs)

	// nama dari optimizer tidak cocok siapa pun → pakai assignment course
	_, err := r.Reconcile([]AssignmentLine{
		{CourseName: "Algorithms", InstructorName: "Zz Unknown Person Xx", Day: "monday", StartTime: "08:00", EndTime: "10:00"},
	}, uuid.New(), nil)
	if err != nil {
		t.Fatalf("error: %v", err)
	}
	if fs.sessions[0].SessionInstructorID == nil ||
		*fs.sessions[0].SessionInstructorID != fs.instructors[1].InstructorID {
		t.Fatalf("fallback ke instructor course gagal")
	}
}

func TestStripHonorifics(t *testing.T) {
	cases := map[string]string{
		"Dr. Amany Said":       "Amany Said",
		"Prof. Dr. Budi":       "Budi",
		"professor Jane Smith": "Jane Smith",
		"Amany Said":           "Amany Said",
		"Eng. Omar":            "Omar",
	}
	for in, want := range cases {
		if got := StripHonorifics(in); got != want {
			t.Errorf("StripHonorifics(%q) = %q, mau %q", in, got, want)
		}
	}
}

func TestMatchClassroomExactOnly(t *testing.T) {
	rooms := []classroomModel.ClassroomModel{
		{ClassroomID: uuid.New(), ClassroomName: "B-201"},
	}
	if m := matchClassroom(rooms, "b-201"); m == nil {
		t.Errorf("match harus case-insensitive")
	}
	if m := matchClassroom(rooms, "B-2"); m != nil {
		t.Errorf("room match harus exact, bukan substring")
	}
	if m := matchClassroom(rooms, ""); m != nil {
		t.Errorf("nama kosong tidak boleh match")
	}
}
