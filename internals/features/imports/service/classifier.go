// file: internals/features/imports/service/classifier.go
package service

import "strings"

// classifierRule = satu predikat klasifikasi. Dievaluasi berurutan,
// first match wins — field set antar kategori saling tumpang tindih
// (group dan course sama-sama bisa punya "name" + "year"), jadi urutan
// evaluasi adalah bagian dari kontrak, bukan detail implementasi.
type classifierRule struct {
	category Category
	matches  func(RawRecord) bool
}

var classifierRules = []classifierRule{
	{CategoryCourse, isCourseRow},
	{CategoryInstructor, isInstructorRow},
	{CategoryStudentGroup, isStudentGroupRow},
	{CategoryClassroom, isClassroomRow},
}

// Classify tentukan kategori satu baris pada mode combined/auto.
// Kalau caller sudah menyebut kategori (single-category import),
// fungsi ini tidak dipanggil sama sekali.
func Classify(rec RawRecord) Category {
	for _, rule := range classifierRules {
		if rule.matches(rec) {
			return rule.category
		}
	}
	return CategoryUnknown
}

// Course: identifier course + nama + tipe + beban (days/hours)
func isCourseRow(rec RawRecord) bool {
	return rec.has(aliasCourseCode...) &&
		rec.has(aliasCourseName...) &&
		rec.has(aliasCourseType...) &&
		(rec.has(aliasCourseDays...) || rec.has(aliasCourseHours...))
}

// Instructor: nama/id + department + (email ATAU slot day/start/end lengkap)
func isInstructorRow(rec RawRecord) bool {
	if !rec.has(aliasInstrName...) && !rec.has(aliasInstrLocalID...) {
		return false
	}
	if !rec.has(aliasInstrDept...) {
		return false
	}
	if rec.has(aliasInstrEmail...) {
		return true
	}
	return rec.has(aliasInstrDay...) && rec.has(aliasInstrStart...) && rec.has(aliasInstrEnd...)
}

// StudentGroup: nama/group-id + year + student count.
// Marker division (Num_ID+Major+StudentNum, atau sheet bernama "division")
// MEMAKSA kategori ini meskipun ada kolom mirip capacity — baris division
// tidak pernah jadi ruangan.
func isStudentGroupRow(rec RawRecord) bool {
	if hasDivisionMarkers(rec) {
		return true
	}
	return rec.has(aliasGroupName...) &&
		rec.has(aliasGroupYear...) &&
		rec.has(aliasGroupCount...)
}

// Classroom: nama ruangan + capacity eksplisit, dan TIDAK membawa marker
// student group. Eksklusi negatif ini yang memutus seri antara division
// dengan kolom angka "capacity-looking" dan ruangan betulan.
func isClassroomRow(rec RawRecord) bool {
	if rec.has(aliasMarkNumID...) || rec.has(aliasMarkMajor...) || rec.has(aliasMarkStudentNum...) {
		return false
	}
	return rec.has(aliasRoomName...) && rec.has(aliasRoomCapacity...)
}

func hasDivisionMarkers(rec RawRecord) bool {
	if strings.Contains(strings.ToLower(rec.SourceSheet), "division") {
		return true
	}
	return rec.has(aliasMarkNumID...) &&
		rec.has(aliasMarkMajor...) &&
		rec.has(aliasMarkStudentNum...)
}
