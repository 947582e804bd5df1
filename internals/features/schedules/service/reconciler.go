// file: internals/features/schedules/service/reconciler.go
package service

import (
	"log"
	"strings"

	"github.com/google/uuid"

	classroomModel "kampusku_backend/internals/features/academics/classrooms/model"
	courseModel "kampusku_backend/internals/features/academics/courses/model"
	instructorModel "kampusku_backend/internals/features/academics/instructors/model"
	scheduleModel "kampusku_backend/internals/features/schedules/model"
)

// AssignmentLine = satu baris hasil optimizer eksternal. Referensinya cuma
// nama human-readable — reconciler yang mengikat balik ke entity kanonik.
type AssignmentLine struct {
	CourseName     string `json:"course_name"`
	InstructorName string `json:"instructor_name"`
	Room           string `json:"room"`
	Day            string `json:"day"`
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
	Students       int    `json:"students"`
}

// ReconcileReport hasil satu batch rekonsiliasi.
type ReconcileReport struct {
	Persisted []scheduleModel.SessionModel `json:"persisted"`
	Skipped   []AssignmentLine             `json:"skipped"` // course tidak ketemu → drop, bukan error
}

// Reconciler petakan assignment line balik ke id kanonik lalu persist session.
// Instructor/classroom yang tidak ketemu → link NULL (partial linkage OK).
// Course yang tidak ketemu → baris di-drop (session wajib punya course).
type Reconciler struct {
	store ReconcileStore
}

func NewReconciler(store ReconcileStore) *Reconciler { return &Reconciler{store: store} }

func (r *Reconciler) Reconcile(lines []AssignmentLine, scheduleID uuid.UUID, campusID *uuid.UUID) (*ReconcileReport, error) {
	courses, err := r.store.ListCourses()
	if err != nil {
		return nil, err
	}
	instructors, err := r.store.ListInstructors()
	if err != nil {
		return nil, err
	}
	classrooms, err := r.store.ListClassrooms(campusID)
	if err != nil {
		return nil, err
	}

	report := &ReconcileReport{}
	for _, line := range lines {
		course := matchCourse(courses, line.CourseName)
		if course == nil {
			// Session tanpa course dilarang skema — drop baris, batch lanjut.
			log.Printf("[RECONCILE] course %q tidak ketemu, baris di-skip", line.CourseName)
			report.Skipped = append(report.Skipped, line)
			continue
		}

		session := scheduleModel.SessionModel{
			SessionScheduleID:   scheduleID,
			SessionCourseID:     course.CourseID,
			SessionDay:          strings.ToLower(strings.TrimSpace(line.Day)),
			SessionStartTime:    strings.TrimSpace(line.StartTime),
			SessionEndTime:      strings.TrimSpace(line.EndTime),
			SessionStudentCount: line.Students,
		}

		if inst := matchInstructor(instructors, line.InstructorName, course); inst != nil {
			session.SessionInstructorID = &inst.InstructorID
		} else if line.InstructorName != "" {
			log.Printf("[RECONCILE] instructor %q tidak ketemu, session lanjut dengan link NULL", line.InstructorName)
		}

		if room := matchClassroom(classrooms, line.Room); room != nil {
			session.SessionClassroomID = &room.ClassroomID
		} else if line.Room != "" {
			log.Printf("[RECONCILE] room %q tidak ketemu, session lanjut dengan link NULL", line.Room)
		}

		if err := r.store.CreateSession(&session); err != nil {
			return report, err
		}
		report.Persisted = append(report.Persisted, session)
	}
	return report, nil
}

/* ============================ COURSE MATCH ============================ */

// matchCourse: substring case-insensitive. Optimizer suka menempelkan suffix
// group dalam kurung — "Algorithms (CS-A)" — yang harus dibuang dulu.
func matchCourse(courses []courseModel.CourseModel, name string) *courseModel.CourseModel {
	name = stripParenSuffix(name)
	if name == "" {
		return nil
	}
	lower := strings.ToLower(name)

	for i := range courses {
		if strings.ToLower(courses[i].CourseName) == lower {
			return &courses[i]
		}
	}
	for i := range courses {
		if strings.Contains(strings.ToLower(courses[i].CourseName), lower) {
			return &courses[i]
		}
	}
	for i := range courses {
		if strings.Contains(lower, strings.ToLower(courses[i].CourseName)) {
			return &courses[i]
		}
	}
	return nil
}

func stripParenSuffix(s string) string {
	if i := strings.Index(s, "("); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

/* ============================ INSTRUCTOR MATCH ============================ */

// matchInstructor — cascade, berhenti di match pertama:
//  1. exact
//  2. exact setelah honorific ("Dr.", "Prof.", …) dibuang
//  3. contains pada nama mentah
//  4. contains pada nama stripped
//  5. fallback: instructor yang sudah ter-assign di course-nya sendiri
//
// Tabel instructors di skema ini sudah per-slot-assignment, jadi tahap
// "cek tabel assignment terpisah lalu re-match by name" kolaps ke tahap 3/4.
func matchInstructor(instructors []instructorModel.InstructorModel, name string, course *courseModel.CourseModel) *instructorModel.InstructorModel {
	raw := strings.TrimSpace(name)
	stripped := StripHonorifics(raw)

	if raw != "" {
		if m := findInstructor(instructors, func(n string) bool {
			return strings.EqualFold(n, raw)
		}); m != nil {
			return m
		}
		if m := findInstructor(instructors, func(n string) bool {
			return strings.EqualFold(StripHonorifics(n), stripped)
		}); m != nil {
			return m
		}
		if m := findInstructor(instructors, func(n string) bool {
			return containsFold(n, raw) || containsFold(raw, n)
		}); m != nil {
			return m
		}
		if m := findInstructor(instructors, func(n string) bool {
			ns := StripHonorifics(n)
			return containsFold(ns, stripped) || containsFold(stripped, ns)
		}); m != nil {
			return m
		}
	}

	if course != nil && course.CourseInstructorID != nil {
		for i := range instructors {
			if instructors[i].InstructorID == *course.CourseInstructorID {
				return &instructors[i]
			}
		}
	}
	return nil
}

func findInstructor(instructors []instructorModel.InstructorModel, match func(name string) bool) *instructorModel.InstructorModel {
	for i := range instructors {
		if match(instructors[i].InstructorName) {
			return &instructors[i]
		}
	}
	return nil
}

var honorificPrefixes = []string{
	"dr.", "dr ", "prof.", "prof ", "professor ", "eng.", "eng ",
	"mr.", "mr ", "mrs.", "mrs ", "ms.", "ms ", "miss ",
}

// StripHonorifics buang prefix gelar berulang: "Prof. Dr. Amany Said" -> "Amany Said"
func StripHonorifics(name string) string {
	s := strings.TrimSpace(name)
	for {
		lower := strings.ToLower(s)
		stripped := false
		for _, p := range honorificPrefixes {
			if strings.HasPrefix(lower, p) {
				s = strings.TrimSpace(s[len(p):])
				stripped = true
				break
			}
		}
		if !stripped {
			return s
		}
	}
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

/* ============================ CLASSROOM MATCH ============================ */

// matchClassroom: exact name, scope campus sudah diterapkan saat List.
func matchClassroom(classrooms []classroomModel.ClassroomModel, name string) *classroomModel.ClassroomModel {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	for i := range classrooms {
		if strings.EqualFold(classrooms[i].ClassroomName, name) {
			return &classrooms[i]
		}
	}
	return nil
}
