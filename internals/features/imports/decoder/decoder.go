// file: internals/features/imports/decoder/decoder.go
package decoder

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/xuri/excelize/v2"

	service "kampusku_backend/internals/features/imports/service"
)

// DecodeUpload ubah file upload jadi urutan RawRecord (header -> nilai sel).
// Format dideteksi dari ekstensi: .xlsx, .csv, .json.
func DecodeUpload(filename string, data []byte) ([]service.RawRecord, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xlsm":
		return decodeExcel(data)
	case ".csv":
		return decodeCSV(data)
	case ".json":
		return DecodeJSONRows(data)
	default:
		return nil, fmt.Errorf("format file tidak didukung: %s (pakai .xlsx/.csv/.json)", filepath.Ext(filename))
	}
}

// decodeExcel: tiap sheet, baris pertama = header, baris sisanya = record.
// Record diberi tag nama sheet asalnya — classifier pakai ini (sheet
// "division" memaksa kategori student group).
func decodeExcel(data []byte) ([]service.RawRecord, error) {
	wb, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("buka workbook: %w", err)
	}
	defer wb.Close()

	var records []service.RawRecord
	for _, sheet := range wb.GetSheetList() {
		rows, err := wb.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("baca sheet %q: %w", sheet, err)
		}
		if len(rows) < 2 {
			continue // sheet kosong / header doang
		}
		headers := rows[0]
		for _, row := range rows[1:] {
			rec := service.RawRecord{
				Fields:      map[string]any{},
				SourceSheet: sheet,
			}
			empty := true
			for i, h := range headers {
				h = strings.TrimSpace(h)
				if h == "" || i >= len(row) {
					continue
				}
				v := strings.TrimSpace(row[i])
				if v == "" {
					continue
				}
				rec.Fields[h] = v
				empty = false
			}
			if !empty {
				records = append(records, rec)
			}
		}
	}
	return records, nil
}

func decodeCSV(data []byte) ([]service.RawRecord, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1 // baris pendek/panjang tetap diterima
	r.TrimLeadingSpace = true

	headers, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("baca header csv: %w", err)
	}

	var records []service.RawRecord
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("baca baris csv: %w", err)
		}
		rec := service.RawRecord{Fields: map[string]any{}}
		empty := true
		for i, h := range headers {
			h = strings.TrimSpace(h)
			if h == "" || i >= len(row) {
				continue
			}
			v := strings.TrimSpace(row[i])
			if v == "" {
				continue
			}
			rec.Fields[h] = v
			empty = false
		}
		if !empty {
			records = append(records, rec)
		}
	}
	return records, nil
}

// DecodeJSONRows terima array objek flat: [{"Name":"CS-A","Year":2,...}, ...]
func DecodeJSONRows(data []byte) ([]service.RawRecord, error) {
	var rows []map[string]any
	if err := sonic.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("parse json rows: %w", err)
	}
	records := make([]service.RawRecord, 0, len(rows))
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		records = append(records, service.RawRecord{Fields: row})
	}
	return records, nil
}
