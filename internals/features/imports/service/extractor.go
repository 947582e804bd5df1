// file: internals/features/imports/service/extractor.go
package service

import (
	"strings"
)

// Default numerik terdokumentasi: absennya field non-kritis tidak boleh
// menggagalkan baris.
const (
	defaultYear  = 1
	defaultCount = 0
)

// ====== PARTIAL FIELDS PER KATEGORI ======

type StudentGroupFields struct {
	Name           string
	Year           int
	StudentCount   int
	DepartmentName string
	CollegeName    string
}

type ClassroomFields struct {
	Name       string
	Capacity   int
	Type       string // lecture_hall | lab
	CampusName string
}

type InstructorFields struct {
	Name           string
	LocalID        string // id lokal spreadsheet, mis. "I12"
	DepartmentName string
	Email          *string
	Day            *string
	StartTime      *string
	EndTime        *string
}

type CourseFields struct {
	Code           string
	Name           string
	Type           string // theory | practical
	DaysPerWeek    int
	HoursPerDay    int
	Year           int
	DepartmentName string
	CollegeName    string
	InstructorRef  string // nama ATAU id lokal ("I12")
}

// ====== EXTRACTORS ======

// ExtractStudentGroup: name wajib; year/count pakai default kalau absen.
func ExtractStudentGroup(rec RawRecord) (StudentGroupFields, error) {
	f := StudentGroupFields{
		Name:           rec.str(aliasGroupName...),
		Year:           clampYear(rec.num(defaultYear, aliasGroupYear...)),
		StudentCount:   nonNegative(rec.num(defaultCount, aliasGroupCount...)),
		DepartmentName: rec.str(aliasGroupMajor...),
		CollegeName:    rec.str(aliasCourseCollege...),
	}
	if f.Name == "" {
		return f, missingField("name")
	}
	return f, nil
}

// ExtractClassroom: name wajib; capacity minimal 1.
func ExtractClassroom(rec RawRecord) (ClassroomFields, error) {
	f := ClassroomFields{
		Name:       rec.str(aliasRoomName...),
		Capacity:   rec.num(0, aliasRoomCapacity...),
		Type:       normalizeRoomType(rec.str(aliasRoomType...)),
		CampusName: rec.str(aliasRoomCampus...),
	}
	if f.Name == "" {
		return f, missingField("name")
	}
	if f.Capacity < 1 {
		f.Capacity = 1
	}
	return f, nil
}

// ExtractInstructor: name wajib (id lokal boleh jadi pengganti identitas,
// tapi tetap butuh nama untuk upsert).
func ExtractInstructor(rec RawRecord) (InstructorFields, error) {
	f := InstructorFields{
		Name:           rec.str(aliasInstrName...),
		LocalID:        rec.str(aliasInstrLocalID...),
		DepartmentName: rec.str(aliasInstrDept...),
	}
	if f.Name == "" {
		return f, missingField("name")
	}
	if v := rec.str(aliasInstrEmail...); v != "" {
		f.Email = &v
	}
	if v := normalizeDay(rec.str(aliasInstrDay...)); v != "" {
		f.Day = &v
	}
	if v := rec.str(aliasInstrStart...); v != "" {
		f.StartTime = &v
	}
	if v := rec.str(aliasInstrEnd...); v != "" {
		f.EndTime = &v
	}
	return f, nil
}

// ExtractCourse: code DAN name wajib (kunci natural course = code).
func ExtractCourse(rec RawRecord) (CourseFields, error) {
	f := CourseFields{
		Code:           strings.ToUpper(rec.str(aliasCourseCode...)),
		Name:           rec.str(aliasCourseName...),
		Type:           normalizeCourseType(rec.str(aliasCourseType...)),
		DaysPerWeek:    nonNegative(rec.num(defaultCount, aliasCourseDays...)),
		HoursPerDay:    nonNegative(rec.num(defaultCount, aliasCourseHours...)),
		Year:           clampYear(rec.num(defaultYear, aliasCourseYear...)),
		DepartmentName: rec.str(aliasCourseDept...),
		CollegeName:    rec.str(aliasCourseCollege...),
		InstructorRef:  rec.str(aliasCourseInstr...),
	}
	if f.Code == "" {
		return f, missingField("code")
	}
	if f.Name == "" {
		return f, missingField("name")
	}
	return f, nil
}

// ====== NORMALIZERS ======

func clampYear(y int) int {
	if y < 1 {
		return 1
	}
	if y > 4 {
		return 4
	}
	return y
}

func nonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

func normalizeRoomType(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lab", "laboratory", "practical":
		return "lab"
	default:
		return "lecture_hall"
	}
}

func normalizeCourseType(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "practical", "lab", "practice":
		return "practical"
	default:
		return "theory"
	}
}

var dayCanon = map[string]string{
	"sun": "sunday", "sunday": "sunday",
	"mon": "monday", "monday": "monday",
	"tue": "tuesday", "tues": "tuesday", "tuesday": "tuesday",
	"wed": "wednesday", "wednesday": "wednesday",
	"thu": "thursday", "thur": "thursday", "thurs": "thursday", "thursday": "thursday",
	"fri": "friday", "friday": "friday",
	"sat": "saturday", "saturday": "saturday",
}

func normalizeDay(s string) string {
	key := strings.ToLower(strings.TrimSpace(s))
	if canon, ok := dayCanon[key]; ok {
		return canon
	}
	return key
}
