// file: internals/features/imports/service/record.go
package service

import (
	"fmt"
	"strconv"
	"strings"
)

// RawRecord = satu baris hasil decode (header kolom -> nilai sel).
// Ephemeral, hidup hanya selama satu request import.
type RawRecord struct {
	Fields      map[string]any `json:"fields"`
	SourceSheet string         `json:"source_sheet,omitempty"`
}

// Category hasil klasifikasi baris — tagged enum, bukan string bebas.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryStudentGroup
	CategoryClassroom
	CategoryInstructor
	CategoryCourse
)

func (c Category) String() string {
	switch c {
	case CategoryStudentGroup:
		return "student_group"
	case CategoryClassroom:
		return "classroom"
	case CategoryInstructor:
		return "instructor"
	case CategoryCourse:
		return "course"
	default:
		return "unknown"
	}
}

// ParseCategory utk endpoint single-category (/imports/:category)
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "student_group", "student-groups", "student_groups", "division", "section":
		return CategoryStudentGroup, nil
	case "classroom", "classrooms", "room", "hall":
		return CategoryClassroom, nil
	case "instructor", "instructors", "teacher":
		return CategoryInstructor, nil
	case "course", "courses":
		return CategoryCourse, nil
	default:
		return CategoryUnknown, fmt.Errorf("kategori import tidak dikenal: %q", s)
	}
}

// normKey samakan bentuk header: lowercase, buang spasi/underscore/dash.
// "Num_ID", "num id", "NUMID" semuanya jadi "numid".
func normKey(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch r {
		case ' ', '_', '-', '.', '\t':
			continue
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// lookup cari field pertama yang cocok dengan salah satu alias (prioritas
// sesuai urutan alias), case-insensitive. Nilai kosong dianggap tidak ada.
func (r RawRecord) lookup(aliases ...string) (any, bool) {
	norm := make(map[string]any, len(r.Fields))
	for k, v := range r.Fields {
		nk := normKey(k)
		if _, exists := norm[nk]; !exists {
			norm[nk] = v
		}
	}
	for _, a := range aliases {
		if v, ok := norm[normKey(a)]; ok && !isEmptyValue(v) {
			return v, true
		}
	}
	return nil, false
}

// has cek keberadaan field non-kosong untuk salah satu alias
func (r RawRecord) has(aliases ...string) bool {
	_, ok := r.lookup(aliases...)
	return ok
}

// str ambil nilai sebagai string ter-trim ("" kalau tidak ada)
func (r RawRecord) str(aliases ...string) string {
	v, ok := r.lookup(aliases...)
	if !ok {
		return ""
	}
	return strings.TrimSpace(valueToString(v))
}

// num ambil nilai numerik; karakter non-digit dibuang dulu ("30 mhs" -> 30).
// Kalau tidak ada / tidak bisa diparse, kembalikan def — field numerik
// non-kritis tidak boleh menggagalkan baris.
func (r RawRecord) num(def int, aliases ...string) int {
	v, ok := r.lookup(aliases...)
	if !ok {
		return def
	}
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	}
	digits := keepDigits(valueToString(v))
	if digits == "" {
		return def
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return def
	}
	return n
}

func isEmptyValue(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}

func valueToString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		// sel angka dari excel/json sering jadi float — jangan tampilkan ".000000"
		if s == float64(int64(s)) {
			return strconv.FormatInt(int64(s), 10)
		}
		return strconv.FormatFloat(s, 'f', -1, 64)
	case int:
		return strconv.Itoa(s)
	case int64:
		return strconv.FormatInt(s, 10)
	case bool:
		return strconv.FormatBool(s)
	default:
		return fmt.Sprintf("%v", s)
	}
}

func keepDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
