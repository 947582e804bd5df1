// file: internals/features/imports/controller/import_controller.go
package controller

import (
	"io"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	decoder "kampusku_backend/internals/features/imports/decoder"
	dto "kampusku_backend/internals/features/imports/dto"
	service "kampusku_backend/internals/features/imports/service"
	helper "kampusku_backend/internals/helpers"
)

/* =======================================================
   CONTROLLER
   ======================================================= */

type ImportController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Service  *service.ImportService
}

func NewImportController(db *gorm.DB, v *validator.Validate) *ImportController {
	if v == nil {
		v = validator.New(validator.WithRequiredStructEnabled())
	}
	return &ImportController{
		DB:       db,
		Validate: v,
		Service:  service.NewImportService(service.NewGormStore(db)),
	}
}

/* ============================ SINGLE CATEGORY ============================ */

// POST /imports/:category — file upload (multipart "file") atau JSON rows.
// ?campus_id= opsional utk scope college/classroom.
func (ctl *ImportController) ImportCategory(c *fiber.Ctx) error {
	cat, err := service.ParseCategory(c.Params("category"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	records, campusID, err := ctl.collectRecords(c)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Tidak ada baris data yang bisa diimport")
	}

	log.Printf("[IMPORT] category=%s rows=%d", cat, len(records))
	result := ctl.Service.ImportBatch(records, cat, campusID)
	return helper.Success(c, "Import selesai", result)
}

/* ============================ COMBINED / AUTO ============================ */

// POST /imports/auto — satu file campur banyak kategori, klasifikasi per baris.
func (ctl *ImportController) ImportAuto(c *fiber.Ctx) error {
	records, campusID, err := ctl.collectRecords(c)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Tidak ada baris data yang bisa diimport")
	}

	log.Printf("[IMPORT] mode=auto rows=%d", len(records))
	result := ctl.Service.ImportAuto(records, campusID)
	return helper.Success(c, "Import selesai", result)
}

/* ============================ SHARED ============================ */

// collectRecords baca payload dari multipart file ATAU body JSON
func (ctl *ImportController) collectRecords(c *fiber.Ctx) ([]service.RawRecord, *uuid.UUID, error) {
	campusID, err := helper.ParseUUIDQuery(c, "campus_id")
	if err != nil {
		return nil, nil, err
	}

	ct := strings.ToLower(strings.TrimSpace(c.Get("Content-Type")))
	if strings.HasPrefix(ct, "multipart/form-data") {
		fh, err := c.FormFile("file")
		if err != nil || fh == nil {
			return nil, nil, helper.Error(c, fiber.StatusBadRequest, "Field 'file' wajib diisi pada multipart upload")
		}
		f, err := fh.Open()
		if err != nil {
			return nil, nil, helper.Error(c, fiber.StatusBadRequest, "File tidak bisa dibuka")
		}
		defer f.Close()
		data, err := io.ReadAll(f)
		if err != nil {
			return nil, nil, helper.Error(c, fiber.StatusBadRequest, "File tidak bisa dibaca")
		}
		records, err := decoder.DecodeUpload(fh.Filename, data)
		if err != nil {
			return nil, nil, helper.Error(c, fiber.StatusBadRequest, err.Error())
		}
		// campus_id boleh juga lewat form field
		if campusID == nil {
			if v := strings.TrimSpace(c.FormValue("campus_id")); v != "" {
				id, err := uuid.Parse(v)
				if err != nil {
					return nil, nil, helper.Error(c, fiber.StatusBadRequest, "campus_id bukan UUID yang valid")
				}
				campusID = &id
			}
		}
		return records, campusID, nil
	}

	// Body JSON
	var req dto.ImportRowsRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, nil, helper.Error(c, fiber.StatusBadRequest, "Body JSON tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return nil, nil, helper.ValidationError(c, err)
	}
	if req.CampusID != nil {
		campusID = req.CampusID
	}
	return req.ToRecords(), campusID, nil
}
