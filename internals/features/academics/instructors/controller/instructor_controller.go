// file: internals/features/academics/instructors/controller/instructor_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	deptModel "kampusku_backend/internals/features/campus/departments/model"

	dto "kampusku_backend/internals/features/academics/instructors/dto"
	model "kampusku_backend/internals/features/academics/instructors/model"
	helper "kampusku_backend/internals/helpers"
)

type InstructorController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewInstructorController(db *gorm.DB, v *validator.Validate) *InstructorController {
	if v == nil {
		v = validator.New(validator.WithRequiredStructEnabled())
	}
	return &InstructorController{DB: db, Validate: v}
}

/* ============================ CREATE ============================ */

func (ctl *InstructorController) Create(c *fiber.Ctx) error {
	var req dto.CreateInstructorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body JSON tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// department harus ada (instructor tidak boleh menggantung)
	var dept deptModel.DepartmentModel
	if err := ctl.DB.First(&dept, "department_id = ?", req.InstructorDepartmentID).Error; err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Department tidak ditemukan")
	}

	m := req.ToModel()
	if err := ctl.DB.Create(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal simpan instructor: "+err.Error())
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Instructor dibuat", m)
}

/* ============================ READ ============================ */

func (ctl *InstructorController) List(c *fiber.Ctx) error {
	p := helper.ParsePagination(c, "instructor_created_at", helper.DefaultOpts)
	deptID, err := helper.ParseUUIDQuery(c, "department_id")
	if err != nil {
		return err
	}

	q := ctl.DB.Model(&model.InstructorModel{})
	if deptID != nil {
		q = q.Where("instructor_department_id = ?", *deptID)
	}
	if name := c.Query("name"); name != "" {
		q = q.Where("instructor_name ILIKE ?", "%"+name+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var items []model.InstructorModel
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

func (ctl *InstructorController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var m model.InstructorModel
	if err := ctl.DB.First(&m, "instructor_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Instructor tidak ditemukan")
	}
	return helper.Success(c, "OK", m)
}

/* ============================ UPDATE / DELETE ============================ */

func (ctl *InstructorController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var m model.InstructorModel
	if err := ctl.DB.First(&m, "instructor_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Instructor tidak ditemukan")
	}

	var req dto.UpdateInstructorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body JSON tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if req.InstructorDepartmentID != nil {
		var dept deptModel.DepartmentModel
		if err := ctl.DB.First(&dept, "department_id = ?", *req.InstructorDepartmentID).Error; err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Department tidak ditemukan")
		}
	}

	req.Apply(&m)
	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal update instructor: "+err.Error())
	}
	return helper.Success(c, "Instructor diupdate", m)
}

func (ctl *InstructorController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := ctl.DB.Delete(&model.InstructorModel{}, "instructor_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Instructor dihapus", fiber.Map{"instructor_id": id})
}
