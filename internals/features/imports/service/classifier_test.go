// file: internals/features/imports/service/classifier_test.go
package service

import "testing"

func rec(fields map[string]any) RawRecord {
	return RawRecord{Fields: fields}
}

func TestClassifyCourseRow(t *testing.T) {
	r := rec(map[string]any{
		"Code":          "CS101",
		"Course Name":   "Intro to Programming",
		"Type":          "theory",
		"Days per Week": 2,
	})
	if got := Classify(r); got != CategoryCourse {
		t.Fatalf("Classify = %v, mau course", got)
	}
}

func TestClassifyInstructorRowWithEmail(t *testing.T) {
	r := rec(map[string]any{
		"Instructor Name": "Amany Said",
		"Department":      "Computer Science",
		"Email":           "amany@univ.edu",
	})
	if got := Classify(r); got != CategoryInstructor {
		t.Fatalf("Classify = %v, mau instructor", got)
	}
}

func TestClassifyInstructorRowWithSlot(t *testing.T) {
	r := rec(map[string]any{
		"Teacher":    "Budi Santoso",
		"Dept":       "Mathematics",
		"Day":        "Monday",
		"Start Time": "08:00",
		"End Time":   "10:00",
	})
	if got := Classify(r); got != CategoryInstructor {
		t.Fatalf("Classify = %v, mau instructor", got)
	}
}

func TestClassifyInstructorWithoutSlotOrEmailIsNot(t *testing.T) {
	// nama + dept saja tidak cukup — bisa jadi baris apa pun
	r := rec(map[string]any{
		"Teacher": "Budi Santoso",
		"Dept":    "Mathematics",
	})
	if got := Classify(r); got == CategoryInstructor {
		t.Fatalf("baris tanpa email/slot tidak boleh jadi instructor")
	}
}

func TestClassifyStudentGroupRow(t *testing.T) {
	r := rec(map[string]any{
		"Name":          "CS-A",
		"Year":          2,
		"Student Count": 30,
	})
	if got := Classify(r); got != CategoryStudentGroup {
		t.Fatalf("Classify = %v, mau student_group", got)
	}
}

func TestClassifyDivisionMarkersForceStudentGroup(t *testing.T) {
	// punya kolom capacity-looking, tapi marker division menang
	r := rec(map[string]any{
		"Num_ID":     "CS-A",
		"Major":      "Computer Science",
		"StudentNum": 30,
	})
	if got := Classify(r); got != CategoryStudentGroup {
		t.Fatalf("Classify = %v, marker division harus memaksa student_group", got)
	}
}

func TestClassifyDivisionSheetNameForcesStudentGroup(t *testing.T) {
	r := RawRecord{
		SourceSheet: "Divisions 2026",
		Fields: map[string]any{
			"Name":     "ME-B",
			"Capacity": 25,
		},
	}
	if got := Classify(r); got != CategoryStudentGroup {
		t.Fatalf("Classify = %v, sheet division harus memaksa student_group", got)
	}
}

func TestClassifyClassroomRow(t *testing.T) {
	r := rec(map[string]any{
		"Room":     "Hall B-201",
		"Capacity": 120,
	})
	if got := Classify(r); got != CategoryClassroom {
		t.Fatalf("Classify = %v, mau classroom", got)
	}
}

func TestClassifyClassroomExcludedByGroupMarkers(t *testing.T) {
	// baris division yang kebetulan punya header mirip ruangan:
	// marker Major mengeliminasi kandidat classroom
	r := rec(map[string]any{
		"Name":     "CS-A",
		"Capacity": 30,
		"Major":    "Computer Science",
	})
	if got := Classify(r); got == CategoryClassroom {
		t.Fatalf("baris dengan marker group tidak boleh jadi classroom")
	}
}

func TestClassifyUnknown(t *testing.T) {
	r := rec(map[string]any{"Random": "stuff", "Foo": 42})
	if got := Classify(r); got != CategoryUnknown {
		t.Fatalf("Classify = %v, mau unknown", got)
	}
}

func TestClassifyEmptyValuesIgnored(t *testing.T) {
	// sel kosong dianggap tidak ada — jangan keklasifikasi gara-gara header doang
	r := rec(map[string]any{
		"Room":     "",
		"Capacity": "  ",
	})
	if got := Classify(r); got != CategoryUnknown {
		t.Fatalf("Classify = %v, nilai kosong harus diabaikan", got)
	}
}

func TestParseCategory(t *testing.T) {
	cases := map[string]Category{
		"courses":     CategoryCourse,
		"Instructor":  CategoryInstructor,
		"division":    CategoryStudentGroup,
		"classrooms":  CategoryClassroom,
		" teacher ":   CategoryInstructor,
	}
	for in, want := range cases {
		got, err := ParseCategory(in)
		if err != nil {
			t.Fatalf("ParseCategory(%q) error: %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseCategory(%q) = %v, mau %v", in, got, want)
		}
	}
	if _, err := ParseCategory("banana"); err == nil {
		t.Fatalf("kategori ngawur harus error")
	}
}
