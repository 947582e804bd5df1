// file: internals/features/imports/service/importer.go
package service

import (
	"github.com/google/uuid"
)

// ImportService = shell orkestrasi: Classify → Extract → Resolve → Upsert
// per baris, gagal satu baris tidak menghentikan batch.
type ImportService struct {
	store    Store
	resolver *Resolver
}

func NewImportService(store Store) *ImportService {
	return &ImportService{store: store, resolver: NewResolver(store)}
}

// ====== RESULT TYPES ======

type RowSuccess struct {
	Row    int    `json:"row"`
	Action Action `json:"action"` // created | updated
	Entity any    `json:"entity"`
}

type RowFailure struct {
	Row    int       `json:"row"`
	Error  string    `json:"error"`
	Record RawRecord `json:"record"` // data asli utk inspeksi operator
}

type ImportResult struct {
	Total   int          `json:"total"`
	Success []RowSuccess `json:"success"`
	Errors  []RowFailure `json:"errors"`
}

type CategorySummary struct {
	Total      int `json:"total"`
	Successful int `json:"successful"`
	Errors     int `json:"errors"`
}

// CombinedResult utk mode auto: hasil gabungan + breakdown per kategori +
// baris yang tidak terklasifikasi (dikembalikan verbatim utk triage manual).
type CombinedResult struct {
	ImportResult
	Breakdown map[string]CategorySummary `json:"breakdown"`
	Unknown   []RawRecord                `json:"unknown"`
}

// ====== SINGLE-CATEGORY MODE ======

// ImportBatch proses records berurutan untuk satu kategori.
// Error per baris dicatat dengan index barisnya, loop jalan terus.
func (s *ImportService) ImportBatch(records []RawRecord, cat Category, campusID *uuid.UUID) ImportResult {
	instructorNames := map[string]string{}
	return s.importBucket(indexAll(records), cat, campusID, instructorNames)
}

// ====== COMBINED / AUTO MODE ======

// ImportAuto klasifikasikan tiap baris dulu, partisi per kategori, lalu
// jalankan pipeline per bucket. Urutan bucket PENTING: instructor harus
// sebelum course supaya map id-lokal→nama terisi sebelum course rows
// mencoba link instructor via "I12".
func (s *ImportService) ImportAuto(records []RawRecord, campusID *uuid.UUID) CombinedResult {
	buckets := map[Category][]indexedRecord{}
	var unknown []RawRecord
	for i, rec := range records {
		cat := Classify(rec)
		if cat == CategoryUnknown {
			unknown = append(unknown, rec)
			continue
		}
		buckets[cat] = append(buckets[cat], indexedRecord{idx: i, rec: rec})
	}

	order := []Category{CategoryStudentGroup, CategoryClassroom, CategoryInstructor, CategoryCourse}

	combined := CombinedResult{
		ImportResult: ImportResult{Total: len(records)},
		Breakdown:    map[string]CategorySummary{},
		Unknown:      unknown,
	}
	instructorNames := map[string]string{}

	for _, cat := range order {
		bucket := buckets[cat]
		if len(bucket) == 0 {
			continue
		}
		res := s.importBucket(bucket, cat, campusID, instructorNames)
		combined.Success = append(combined.Success, res.Success...)
		combined.Errors = append(combined.Errors, res.Errors...)
		combined.Breakdown[cat.String()] = CategorySummary{
			Total:      len(bucket),
			Successful: len(res.Success),
			Errors:     len(res.Errors),
		}
	}
	return combined
}

// ====== SHARED PIPELINE ======

type indexedRecord struct {
	idx int
	rec RawRecord
}

func indexAll(records []RawRecord) []indexedRecord {
	out := make([]indexedRecord, len(records))
	for i, rec := range records {
		out[i] = indexedRecord{idx: i, rec: rec}
	}
	return out
}

// importBucket proses satu kategori. instructorNames dioper eksplisit dari
// caller (bukan state ambient) — bucket instructor MENGISI map, bucket course
// MEMBACA map. Lihat ImportAuto soal urutan.
func (s *ImportService) importBucket(bucket []indexedRecord, cat Category, campusID *uuid.UUID, instructorNames map[string]string) ImportResult {
	res := ImportResult{Total: len(bucket)}
	for _, ir := range bucket {
		entity, action, err := s.processRow(ir.rec, cat, campusID, instructorNames)
		if err != nil {
			res.Errors = append(res.Errors, RowFailure{
				Row:    ir.idx,
				Error:  err.Error(),
				Record: ir.rec,
			})
			continue
		}
		res.Success = append(res.Success, RowSuccess{Row: ir.idx, Action: action, Entity: entity})
	}
	return res
}

func (s *ImportService) processRow(rec RawRecord, cat Category, campusID *uuid.UUID, instructorNames map[string]string) (any, Action, error) {
	switch cat {
	case CategoryStudentGroup:
		f, err := ExtractStudentGroup(rec)
		if err != nil {
			return nil, "", err
		}
		return s.upsertStudentGroup(f, campusID)

	case CategoryClassroom:
		f, err := ExtractClassroom(rec)
		if err != nil {
			return nil, "", err
		}
		return s.upsertClassroom(f, campusID)

	case CategoryInstructor:
		f, err := ExtractInstructor(rec)
		if err != nil {
			return nil, "", err
		}
		entity, action, err := s.upsertInstructor(f, campusID)
		if err == nil && f.LocalID != "" {
			instructorNames[normKey(f.LocalID)] = f.Name
		}
		return entity, action, err

	case CategoryCourse:
		f, err := ExtractCourse(rec)
		if err != nil {
			return nil, "", err
		}
		return s.upsertCourse(f, campusID, instructorNames)

	default:
		return nil, "", missingField("category")
	}
}
