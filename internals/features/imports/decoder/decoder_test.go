// file: internals/features/imports/decoder/decoder_test.go
package decoder

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestDecodeCSV(t *testing.T) {
	data := []byte("Name,Year,Student Count\nCS-A,2,30\nCS-B,2,\n\n")
	records, err := DecodeUpload("divisions.csv", data)
	if err != nil {
		t.Fatalf("error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("records = %d", len(records))
	}
	if records[0].Fields["Name"] != "CS-A" {
		t.Errorf("Fields[Name] = %v", records[0].Fields["Name"])
	}
	// sel kosong tidak boleh masuk map
	if _, ok := records[1].Fields["Student Count"]; ok {
		t.Errorf("sel kosong harus di-drop")
	}
}

func TestDecodeCSVRaggedRows(t *testing.T) {
	data := []byte("Room,Capacity,Type\nB-201,120\nA-101,80,lab,extra\n")
	records, err := DecodeUpload("rooms.csv", data)
	if err != nil {
		t.Fatalf("baris pendek/panjang harus diterima: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("records = %d", len(records))
	}
}

func TestDecodeJSONRows(t *testing.T) {
	data := []byte(`[{"Code":"CS101","Course Name":"Intro","Year":2},{}]`)
	records, err := DecodeJSONRows(data)
	if err != nil {
		t.Fatalf("error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("objek kosong harus di-skip, records = %d", len(records))
	}
	if records[0].Fields["Code"] != "CS101" {
		t.Errorf("Fields[Code] = %v", records[0].Fields["Code"])
	}
}

func TestDecodeExcelTagsSourceSheet(t *testing.T) {
	wb := excelize.NewFile()
	sheet := "Divisions"
	wb.SetSheetName("Sheet1", sheet)
	_ = wb.SetSheetRow(sheet, "A1", &[]any{"Num_ID", "Major", "StudentNum"})
	_ = wb.SetSheetRow(sheet, "A2", &[]any{"CS-A", "Computer Science", 30})
	_ = wb.SetSheetRow(sheet, "A3", &[]any{"", "", ""})

	var buf bytes.Buffer
	if err := wb.Write(&buf); err != nil {
		t.Fatalf("tulis workbook: %v", err)
	}

	records, err := DecodeUpload("import.xlsx", buf.Bytes())
	if err != nil {
		t.Fatalf("error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("baris kosong harus di-skip, records = %d", len(records))
	}
	if records[0].SourceSheet != sheet {
		t.Errorf("SourceSheet = %q", records[0].SourceSheet)
	}
	if records[0].Fields["Num_ID"] != "CS-A" {
		t.Errorf("Fields[Num_ID] = %v", records[0].Fields["Num_ID"])
	}
}

func TestDecodeUnsupportedExtension(t *testing.T) {
	if _, err := DecodeUpload("data.pdf", []byte("x")); err == nil {
		t.Fatalf("ekstensi asing harus error")
	}
}
