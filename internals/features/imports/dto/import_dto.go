// file: internals/features/imports/dto/import_dto.go
package dto

import (
	"github.com/google/uuid"

	service "kampusku_backend/internals/features/imports/service"
)

// ImportRowsRequest utk import via body JSON (tanpa upload file).
// Rows = record flat header->nilai, sama seperti hasil decode spreadsheet.
type ImportRowsRequest struct {
	Rows     []map[string]any `json:"rows" validate:"required,min=1"`
	CampusID *uuid.UUID       `json:"campus_id" validate:"omitempty"`
}

func (r ImportRowsRequest) ToRecords() []service.RawRecord {
	records := make([]service.RawRecord, 0, len(r.Rows))
	for _, row := range r.Rows {
		if len(row) == 0 {
			continue
		}
		records = append(records, service.RawRecord{Fields: row})
	}
	return records
}
