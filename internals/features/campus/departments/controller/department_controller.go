// file: internals/features/campus/departments/controller/department_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	collegeModel "kampusku_backend/internals/features/campus/colleges/model"
	dto "kampusku_backend/internals/features/campus/departments/dto"
	model "kampusku_backend/internals/features/campus/departments/model"
	helper "kampusku_backend/internals/helpers"
)

type DepartmentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewDepartmentController(db *gorm.DB, v *validator.Validate) *DepartmentController {
	if v == nil {
		v = validator.New(validator.WithRequiredStructEnabled())
	}
	return &DepartmentController{DB: db, Validate: v}
}

/* ============================ CREATE ============================ */

func (ctl *DepartmentController) Create(c *fiber.Ctx) error {
	var req dto.CreateDepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body JSON tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// department wajib menempel ke college yang ada
	var college collegeModel.CollegeModel
	if err := ctl.DB.First(&college, "college_id = ?", req.DepartmentCollegeID).Error; err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "College tidak ditemukan untuk department ini")
	}

	m := req.ToModel()
	if err := ctl.DB.Create(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal simpan department: "+err.Error())
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Department dibuat", m)
}

/* ============================ READ ============================ */

func (ctl *DepartmentController) List(c *fiber.Ctx) error {
	p := helper.ParsePagination(c, "department_created_at", helper.DefaultOpts)
	collegeID, err := helper.ParseUUIDQuery(c, "college_id")
	if err != nil {
		return err
	}

	q := ctl.DB.Model(&model.DepartmentModel{})
	if collegeID != nil {
		q = q.Where("department_college_id = ?", *collegeID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var items []model.DepartmentModel
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

func (ctl *DepartmentController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var m model.DepartmentModel
	if err := ctl.DB.First(&m, "department_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Department tidak ditemukan")
	}
	return helper.Success(c, "OK", m)
}

/* ============================ UPDATE / DELETE ============================ */

func (ctl *DepartmentController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var m model.DepartmentModel
	if err := ctl.DB.First(&m, "department_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Department tidak ditemukan")
	}

	var req dto.UpdateDepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body JSON tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if req.DepartmentCollegeID != nil {
		var college collegeModel.CollegeModel
		if err := ctl.DB.First(&college, "college_id = ?", *req.DepartmentCollegeID).Error; err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "College tujuan tidak ditemukan")
		}
	}

	req.Apply(&m)
	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal update department: "+err.Error())
	}
	return helper.Success(c, "Department diupdate", m)
}

func (ctl *DepartmentController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := ctl.DB.Delete(&model.DepartmentModel{}, "department_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Department dihapus", fiber.Map{"department_id": id})
}
