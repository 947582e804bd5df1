// file: internals/features/imports/service/importer_test.go
package service

import (
	"testing"
)

func TestImportBatchDivisionRows(t *testing.T) {
	fs := newFakeStore()
	svc := NewImportService(fs)

	records := []RawRecord{
		rec(map[string]any{"Num_ID": "CS-A", "Major": "Computer Science", "StudentNum": 30}),
		rec(map[string]any{"Num_ID": "CS-B", "Major": "Computer Science", "StudentNum": 28}),
	}
	res := svc.ImportBatch(records, CategoryStudentGroup, nil)

	if len(res.Errors) != 0 {
		t.Fatalf("errors: %+v", res.Errors)
	}
	if len(res.Success) != 2 {
		t.Fatalf("success = %d", len(res.Success))
	}
	if len(fs.groups) != 2 {
		t.Fatalf("groups tersimpan = %d", len(fs.groups))
	}
	// kedua baris harus share department & college hasil resolve
	if fs.groups[0].StudentGroupDepartmentID != fs.groups[1].StudentGroupDepartmentID {
		t.Fatalf("department harus di-reuse antar baris")
	}
	if len(fs.departments) != 1 || len(fs.colleges) != 1 {
		t.Fatalf("parent dibuat berlebih: %d dept, %d college", len(fs.departments), len(fs.colleges))
	}
}

func TestImportBatchIdempotent(t *testing.T) {
	fs := newFakeStore()
	svc := NewImportService(fs)

	records := []RawRecord{
		rec(map[string]any{"Name": "CS-A", "Year": 2, "Student Count": 30, "Major": "Computer Science"}),
	}

	first := svc.ImportBatch(records, CategoryStudentGroup, nil)
	if first.Success[0].Action != ActionCreated {
		t.Fatalf("run pertama harus created, dapat %v", first.Success[0].Action)
	}

	// run kedua dengan count berubah
	records[0].Fields["Student Count"] = 32
	second := svc.ImportBatch(records, CategoryStudentGroup, nil)
	if second.Success[0].Action != ActionUpdated {
		t.Fatalf("run kedua harus updated, dapat %v", second.Success[0].Action)
	}
	if len(fs.groups) != 1 {
		t.Fatalf("tidak boleh ada duplikat, ada %d", len(fs.groups))
	}
	if fs.groups[0].StudentGroupStudentCount != 32 {
		t.Fatalf("count harus ter-update, dapat %d", fs.groups[0].StudentGroupStudentCount)
	}
}

func TestImportBatchPartialFailureIsolation(t *testing.T) {
	fs := newFakeStore()
	svc := NewImportService(fs)

	records := []RawRecord{
		rec(map[string]any{"Name": "CS-A", "Year": 1, "Student Count": 30, "Major": "CS"}),
		rec(map[string]any{"Year": 1, "Student Count": 25}), // tanpa nama -> gagal
		rec(map[string]any{"Name": "CS-C", "Year": 1, "Student Count": 27, "Major": "CS"}),
	}
	res := svc.ImportBatch(records, CategoryStudentGroup, nil)

	if res.Total != 3 {
		t.Fatalf("Total = %d", res.Total)
	}
	if len(res.Success) != 2 {
		t.Fatalf("success = %d, gagal satu baris tidak boleh menular", len(res.Success))
	}
	if len(res.Errors) != 1 {
		t.Fatalf("errors = %d", len(res.Errors))
	}
	if res.Errors[0].Row != 1 {
		t.Fatalf("row index error = %d, mau 1", res.Errors[0].Row)
	}
	// record asli harus ikut dikembalikan utk triage
	if res.Errors[0].Record.Fields == nil {
		t.Fatalf("record asli hilang dari error entry")
	}
}

func TestImportBatchCourseIdempotentByCode(t *testing.T) {
	fs := newFakeStore()
	svc := NewImportService(fs)

	records := []RawRecord{
		rec(map[string]any{
			"Code": "CS101", "Course Name": "Intro to Programming",
			"Type": "theory", "Days per Week": 2, "Hours per Day": 2,
			"Department": "Computer Science", "College": "College of Engineering",
		}),
	}
	first := svc.ImportBatch(records, CategoryCourse, nil)
	if len(first.Errors) != 0 {
		t.Fatalf("errors: %+v", first.Errors)
	}

	// re-import dengan nama baru, code sama → update in place
	records[0].Fields["Course Name"] = "Introduction to Programming"
	second := svc.ImportBatch(records, CategoryCourse, nil)
	if second.Success[0].Action != ActionUpdated {
		t.Fatalf("harus updated")
	}
	if len(fs.courses) != 1 {
		t.Fatalf("duplikat course: %d", len(fs.courses))
	}
	if fs.courses[0].CourseName != "Introduction to Programming" {
		t.Fatalf("nama tidak ter-update: %q", fs.courses[0].CourseName)
	}
}

func TestImportAutoOrdersInstructorsBeforeCourses(t *testing.T) {
	fs := newFakeStore()
	svc := NewImportService(fs)

	// course muncul DULUAN di input dan mereferensikan instructor via id lokal;
	// mode auto harus memproses instructor lebih dulu supaya link jalan.
	records := []RawRecord{
		rec(map[string]any{
			"Code": "MA201", "Course Name": "Calculus II",
			"Type": "theory", "Days per Week": 3,
			"Department": "Mathematics", "Instructor": "I12",
		}),
		rec(map[string]any{
			"Instructor Name": "Budi Santoso", "Instructor ID": "I12",
			"Department": "Mathematics", "Email": "budi@univ.edu",
		}),
	}
	res := svc.ImportAuto(records, nil)

	if len(res.Errors) != 0 {
		t.Fatalf("errors: %+v", res.Errors)
	}
	if len(fs.courses) != 1 || len(fs.instructors) != 1 {
		t.Fatalf("entitas: %d course, %d instructor", len(fs.courses), len(fs.instructors))
	}
	if fs.courses[0].CourseInstructorID == nil {
		t.Fatalf("course harus terlink ke instructor via id lokal")
	}
	if *fs.courses[0].CourseInstructorID != fs.instructors[0].InstructorID {
		t.Fatalf("link instructor salah")
	}
}

func TestImportAutoBreakdownAndUnknown(t *testing.T) {
	fs := newFakeStore()
	fs.addCampus("Main Campus")
	svc := NewImportService(fs)

	records := []RawRecord{
		rec(map[string]any{"Num_ID": "CS-A", "Major": "CS", "StudentNum": 30}),
		rec(map[string]any{"Room": "B-201", "Capacity": 120}),
		rec(map[string]any{"Mystery": "row"}),
	}
	res := svc.ImportAuto(records, nil)

	if res.Total != 3 {
		t.Fatalf("Total = %d", res.Total)
	}
	if len(res.Unknown) != 1 {
		t.Fatalf("unknown = %d", len(res.Unknown))
	}
	if got := res.Breakdown["student_group"]; got.Successful != 1 {
		t.Fatalf("breakdown student_group = %+v", got)
	}
	if got := res.Breakdown["classroom"]; got.Successful != 1 {
		t.Fatalf("breakdown classroom = %+v", got)
	}
}

func TestImportAutoClassroomNeedsCampusScope(t *testing.T) {
	fs := newFakeStore()
	svc := NewImportService(fs)

	// tanpa campus sama sekali: baris ruangan gagal per-baris, bukan panic
	res := svc.ImportBatch([]RawRecord{
		rec(map[string]any{"Room": "B-201", "Capacity": 120}),
	}, CategoryClassroom, nil)
	if len(res.Errors) != 1 {
		t.Fatalf("harus gagal tanpa campus, dapat %+v", res)
	}

	// setelah ada campus: fallback any-campus jalan
	campus := fs.addCampus("Main Campus")
	res = svc.ImportBatch([]RawRecord{
		rec(map[string]any{"Room": "B-201", "Capacity": 120}),
	}, CategoryClassroom, nil)
	if len(res.Errors) != 0 {
		t.Fatalf("errors: %+v", res.Errors)
	}
	if fs.classrooms[0].ClassroomCampusID == nil || *fs.classrooms[0].ClassroomCampusID != campus.CampusID {
		t.Fatalf("ruangan harus di-scope ke campus fallback")
	}
}

func TestImportInstructorSlotRowsAreSeparate(t *testing.T) {
	fs := newFakeStore()
	svc := NewImportService(fs)

	// orang sama, dua slot beda → dua baris instructor
	records := []RawRecord{
		rec(map[string]any{
			"Instructor Name": "Amany Said", "Department": "CS",
			"Day": "Monday", "Start": "08:00", "End": "10:00",
		}),
		rec(map[string]any{
			"Instructor Name": "Amany Said", "Department": "CS",
			"Day": "Wednesday", "Start": "08:00", "End": "10:00",
		}),
	}
	res := svc.ImportBatch(records, CategoryInstructor, nil)
	if len(res.Errors) != 0 {
		t.Fatalf("errors: %+v", res.Errors)
	}
	if len(fs.instructors) != 2 {
		t.Fatalf("slot beda harus jadi baris beda, ada %d", len(fs.instructors))
	}

	// import ulang slot pertama → update, bukan baris ketiga
	res = svc.ImportBatch(records[:1], CategoryInstructor, nil)
	if res.Success[0].Action != ActionUpdated {
		t.Fatalf("re-import slot sama harus updated")
	}
	if len(fs.instructors) != 2 {
		t.Fatalf("duplikat slot: %d", len(fs.instructors))
	}
}
