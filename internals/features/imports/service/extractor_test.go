// file: internals/features/imports/service/extractor_test.go
package service

import (
	"errors"
	"testing"
)

func TestExtractStudentGroupAliasesAndDefaults(t *testing.T) {
	// header gaya division: Num_ID sebagai nama, StudentNum angka kotor
	r := rec(map[string]any{
		"Num_ID":     "CS-A",
		"Major":      "Computer Science",
		"StudentNum": "30 mhs",
	})
	f, err := ExtractStudentGroup(r)
	if err != nil {
		t.Fatalf("ExtractStudentGroup error: %v", err)
	}
	if f.Name != "CS-A" {
		t.Errorf("Name = %q", f.Name)
	}
	if f.Year != 1 {
		t.Errorf("Year default harus 1, dapat %d", f.Year)
	}
	if f.StudentCount != 30 {
		t.Errorf("StudentCount = %d, digit harus diekstrak dari %q", f.StudentCount, "30 mhs")
	}
	if f.DepartmentName != "Computer Science" {
		t.Errorf("DepartmentName = %q", f.DepartmentName)
	}
}

func TestExtractStudentGroupYearClamped(t *testing.T) {
	r := rec(map[string]any{
		"Name":          "EE-B",
		"Year":          9,
		"Student Count": -5,
	})
	f, err := ExtractStudentGroup(r)
	if err != nil {
		t.Fatalf("error: %v", err)
	}
	if f.Year != 4 {
		t.Errorf("Year harus di-clamp ke 4, dapat %d", f.Year)
	}
	if f.StudentCount != 0 {
		t.Errorf("StudentCount negatif harus jadi 0, dapat %d", f.StudentCount)
	}
}

func TestExtractStudentGroupMissingName(t *testing.T) {
	r := rec(map[string]any{"Year": 2, "Student Count": 20})
	_, err := ExtractStudentGroup(r)
	if !errors.Is(err, ErrMissingRequiredField) {
		t.Fatalf("mau ErrMissingRequiredField, dapat %v", err)
	}
}

func TestExtractClassroomCapacityFloor(t *testing.T) {
	r := rec(map[string]any{
		"Hall Name": "B-201",
		"Capacity":  0,
		"Type":      "Laboratory",
	})
	f, err := ExtractClassroom(r)
	if err != nil {
		t.Fatalf("error: %v", err)
	}
	if f.Capacity != 1 {
		t.Errorf("capacity 0 harus dinaikkan ke 1, dapat %d", f.Capacity)
	}
	if f.Type != "lab" {
		t.Errorf("Type = %q, mau lab", f.Type)
	}
}

func TestExtractClassroomDefaultType(t *testing.T) {
	r := rec(map[string]any{"Room": "A-101", "Seats": 80})
	f, err := ExtractClassroom(r)
	if err != nil {
		t.Fatalf("error: %v", err)
	}
	if f.Type != "lecture_hall" {
		t.Errorf("Type default = %q, mau lecture_hall", f.Type)
	}
	if f.Capacity != 80 {
		t.Errorf("Capacity = %d (alias seats)", f.Capacity)
	}
}

func TestExtractInstructorNormalizesDay(t *testing.T) {
	r := rec(map[string]any{
		"Instructor Name": "Amany Said",
		"Department":      "CS",
		"Day":             " MON ",
		"Start":           "08:00",
		"End":             "10:00",
	})
	f, err := ExtractInstructor(r)
	if err != nil {
		t.Fatalf("error: %v", err)
	}
	if f.Day == nil || *f.Day != "monday" {
		t.Errorf("Day = %v, mau monday", f.Day)
	}
	if f.Email != nil {
		t.Errorf("Email harus nil kalau kolom absen")
	}
}

func TestExtractInstructorLocalID(t *testing.T) {
	r := rec(map[string]any{
		"Instructor Name": "Budi Santoso",
		"Instructor ID":   "I12",
		"Department":      "Math",
		"Email":           "budi@univ.edu",
	})
	f, err := ExtractInstructor(r)
	if err != nil {
		t.Fatalf("error: %v", err)
	}
	if f.LocalID != "I12" {
		t.Errorf("LocalID = %q", f.LocalID)
	}
	if f.Email == nil || *f.Email != "budi@univ.edu" {
		t.Errorf("Email = %v", f.Email)
	}
}

func TestExtractCourseUppercasesCode(t *testing.T) {
	r := rec(map[string]any{
		"code":          "cs101",
		"Course Name":   "Intro to Programming",
		"Type":          "Lab",
		"Days per Week": 2.0, // excel number cell
		"Hours":         "3",
		"Year":          "Year 2",
	})
	f, err := ExtractCourse(r)
	if err != nil {
		t.Fatalf("error: %v", err)
	}
	if f.Code != "CS101" {
		t.Errorf("Code = %q, mau uppercase", f.Code)
	}
	if f.Type != "practical" {
		t.Errorf("Type = %q, mau practical", f.Type)
	}
	if f.DaysPerWeek != 2 {
		t.Errorf("DaysPerWeek = %d", f.DaysPerWeek)
	}
	if f.HoursPerDay != 3 {
		t.Errorf("HoursPerDay = %d", f.HoursPerDay)
	}
	if f.Year != 2 {
		t.Errorf("Year = %d, digit harus diekstrak dari %q", f.Year, "Year 2")
	}
}

func TestExtractCourseMissingCode(t *testing.T) {
	r := rec(map[string]any{"Course Name": "Orphan Course", "Type": "theory"})
	_, err := ExtractCourse(r)
	if !errors.Is(err, ErrMissingRequiredField) {
		t.Fatalf("mau ErrMissingRequiredField, dapat %v", err)
	}
}

func TestNormKeyEquivalence(t *testing.T) {
	for _, pair := range [][2]string{
		{"Num_ID", "numid"},
		{"Student Count", "studentcount"},
		{"days-per-week", "daysperweek"},
		{"Start.Time", "starttime"},
	} {
		if got := normKey(pair[0]); got != pair[1] {
			t.Errorf("normKey(%q) = %q, mau %q", pair[0], got, pair[1])
		}
	}
}

func TestDeriveDepartmentCode(t *testing.T) {
	if got := DeriveDepartmentCode("Computer Science"); got != "CS" {
		t.Errorf("multi-kata: %q", got)
	}
	if got := DeriveDepartmentCode("Mathematics"); got != "MAT" {
		t.Errorf("satu kata: %q", got)
	}
}
