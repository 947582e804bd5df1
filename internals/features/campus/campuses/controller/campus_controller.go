// file: internals/features/campus/campuses/controller/campus_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "kampusku_backend/internals/features/campus/campuses/dto"
	model "kampusku_backend/internals/features/campus/campuses/model"
	helper "kampusku_backend/internals/helpers"
)

type CampusController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewCampusController(db *gorm.DB, v *validator.Validate) *CampusController {
	if v == nil {
		v = validator.New(validator.WithRequiredStructEnabled())
	}
	return &CampusController{DB: db, Validate: v}
}

/* ============================ CREATE ============================ */

func (ctl *CampusController) Create(c *fiber.Ctx) error {
	var req dto.CreateCampusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body JSON tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := ctl.DB.Create(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal simpan campus: "+err.Error())
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Campus dibuat", m)
}

/* ============================ READ ============================ */

func (ctl *CampusController) List(c *fiber.Ctx) error {
	p := helper.ParsePagination(c, "campus_created_at", helper.DefaultOpts)

	var total int64
	if err := ctl.DB.Model(&model.CampusModel{}).Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var items []model.CampusModel
	if err := ctl.DB.
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

func (ctl *CampusController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var m model.CampusModel
	if err := ctl.DB.First(&m, "campus_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Campus tidak ditemukan")
	}
	return helper.Success(c, "OK", m)
}

/* ============================ UPDATE / DELETE ============================ */

func (ctl *CampusController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var m model.CampusModel
	if err := ctl.DB.First(&m, "campus_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Campus tidak ditemukan")
	}

	var req dto.UpdateCampusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body JSON tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	req.Apply(&m)
	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal update campus: "+err.Error())
	}
	return helper.Success(c, "Campus diupdate", m)
}

func (ctl *CampusController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := ctl.DB.Delete(&model.CampusModel{}, "campus_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Campus dihapus", fiber.Map{"campus_id": id})
}
