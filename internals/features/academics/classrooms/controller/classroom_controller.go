// file: internals/features/academics/classrooms/controller/classroom_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "kampusku_backend/internals/features/academics/classrooms/dto"
	model "kampusku_backend/internals/features/academics/classrooms/model"
	helper "kampusku_backend/internals/helpers"
)

type ClassroomController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewClassroomController(db *gorm.DB, v *validator.Validate) *ClassroomController {
	if v == nil {
		v = validator.New(validator.WithRequiredStructEnabled())
	}
	return &ClassroomController{DB: db, Validate: v}
}

/* ============================ CREATE ============================ */

func (ctl *ClassroomController) Create(c *fiber.Ctx) error {
	var req dto.CreateClassroomRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body JSON tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := ctl.DB.Create(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal simpan classroom: "+err.Error())
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Classroom dibuat", m)
}

/* ============================ READ ============================ */

func (ctl *ClassroomController) List(c *fiber.Ctx) error {
	p := helper.ParsePagination(c, "classroom_created_at", helper.DefaultOpts)
	campusID, err := helper.ParseUUIDQuery(c, "campus_id")
	if err != nil {
		return err
	}

	q := ctl.DB.Model(&model.ClassroomModel{})
	if campusID != nil {
		q = q.Where("classroom_campus_id = ?", *campusID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var items []model.ClassroomModel
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

func (ctl *ClassroomController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var m model.ClassroomModel
	if err := ctl.DB.First(&m, "classroom_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Classroom tidak ditemukan")
	}
	return helper.Success(c, "OK", m)
}

/* ============================ UPDATE / DELETE ============================ */

func (ctl *ClassroomController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var m model.ClassroomModel
	if err := ctl.DB.First(&m, "classroom_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Classroom tidak ditemukan")
	}

	var req dto.UpdateClassroomRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body JSON tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	req.Apply(&m)
	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal update classroom: "+err.Error())
	}
	return helper.Success(c, "Classroom diupdate", m)
}

func (ctl *ClassroomController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := ctl.DB.Delete(&model.ClassroomModel{}, "classroom_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Classroom dihapus", fiber.Map{"classroom_id": id})
}
