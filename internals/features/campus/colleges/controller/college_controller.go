// file: internals/features/campus/colleges/controller/college_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "kampusku_backend/internals/features/campus/colleges/dto"
	model "kampusku_backend/internals/features/campus/colleges/model"
	helper "kampusku_backend/internals/helpers"
)

type CollegeController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewCollegeController(db *gorm.DB, v *validator.Validate) *CollegeController {
	if v == nil {
		v = validator.New(validator.WithRequiredStructEnabled())
	}
	return &CollegeController{DB: db, Validate: v}
}

/* ============================ CREATE ============================ */

func (ctl *CollegeController) Create(c *fiber.Ctx) error {
	var req dto.CreateCollegeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body JSON tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// nama unik per campus (case-insensitive)
	dup, err := ctl.findDuplicate(req.CollegeName, req.CollegeCampusID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	if dup {
		return helper.Error(c, fiber.StatusConflict, "College dengan nama ini sudah ada di campus tersebut")
	}

	m := req.ToModel()
	if err := ctl.DB.Create(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal simpan college: "+err.Error())
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "College dibuat", m)
}

func (ctl *CollegeController) findDuplicate(name string, campusID *uuid.UUID) (bool, error) {
	q := ctl.DB.Model(&model.CollegeModel{}).Where("LOWER(college_name) = LOWER(?)", name)
	if campusID != nil {
		q = q.Where("college_campus_id = ?", *campusID)
	} else {
		q = q.Where("college_campus_id IS NULL")
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

/* ============================ READ ============================ */

func (ctl *CollegeController) List(c *fiber.Ctx) error {
	p := helper.ParsePagination(c, "college_created_at", helper.DefaultOpts)
	campusID, err := helper.ParseUUIDQuery(c, "campus_id")
	if err != nil {
		return err
	}

	q := ctl.DB.Model(&model.CollegeModel{})
	if campusID != nil {
		q = q.Where("college_campus_id = ?", *campusID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var items []model.CollegeModel
	if err := q.
		Order(p.SortBy + " " + p.SortOrder).
		Limit(p.PerPage).Offset(p.Offset()).
		Find(&items).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "OK", fiber.Map{
		"items": items,
		"meta":  helper.PaginationMeta(total, p),
	})
}

func (ctl *CollegeController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var m model.CollegeModel
	if err := ctl.DB.First(&m, "college_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "College tidak ditemukan")
	}
	return helper.Success(c, "OK", m)
}

/* ============================ UPDATE / DELETE ============================ */

func (ctl *CollegeController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var m model.CollegeModel
	if err := ctl.DB.First(&m, "college_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "College tidak ditemukan")
	}

	var req dto.UpdateCollegeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body JSON tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	req.Apply(&m)
	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal update college: "+err.Error())
	}
	return helper.Success(c, "College diupdate", m)
}

func (ctl *CollegeController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := ctl.DB.Delete(&model.CollegeModel{}, "college_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "College dihapus", fiber.Map{"college_id": id})
}
