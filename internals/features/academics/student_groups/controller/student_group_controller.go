// file: internals/features/academics/student_groups/controller/student_group_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	deptModel "kampusku_backend/internals/features/campus/departments/model"

	dto "kampusku_backend/internals/features/academics/student_groups/dto"
	model "kampusku_backend/internals/features/academics/student_groups/model"
	helper "kampusku_backend/internals/helpers"
)

type StudentGroupController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewStudentGroupController(db *gorm.DB, v *validator.Validate) *StudentGroupController {
	if v == nil {
		v = validator.New(validator.WithRequiredStructEnabled())
	}
	return &StudentGroupController{DB: db, Validate: v}
}

/* ============================ CREATE ============================ */

func (ctl *StudentGroupController) Create(c *fiber.Ctx) error {
	var req dto.CreateStudentGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body JSON tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var dept deptModel.DepartmentModel
	if err := ctl.DB.First(&dept, "department_id = ?", req.StudentGroupDepartmentID).Error; err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Department tidak ditemukan")
	}

	m := req.ToModel()
	if err := ctl.DB.Create(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal simpan student group: "+err.Error())
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Student group dibuat", m)
}

/* ============================ READ ============================ */

func (ctl *StudentGroupController) List(c *fiber.Ctx) error {
	p := helper.ParsePagination(c, "student_group_created_at", helper.DefaultOpts)
	deptID, err := helper.ParseUUIDQuery(c, "department_id")
	if err != nil {
		return err
	}

	q := ctl.DB.Model(&model.StudentGroupModel{})
	if deptID != nil {
		q = q.Where("student_group_department_id = ?", *deptID)
	}
	if y := c.QueryInt("year"); y > 0 {
		q = q.Where("student_group_year = ?", y)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var items []model.StudentGroupModel
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

func (ctl *StudentGroupController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var m model.StudentGroupModel
	if err := ctl.DB.First(&m, "student_group_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Student group tidak ditemukan")
	}
	return helper.Success(c, "OK", m)
}

/* ============================ UPDATE / DELETE ============================ */

func (ctl *StudentGroupController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var m model.StudentGroupModel
	if err := ctl.DB.First(&m, "student_group_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Student group tidak ditemukan")
	}

	var req dto.UpdateStudentGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body JSON tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if req.StudentGroupDepartmentID != nil {
		var dept deptModel.DepartmentModel
		if err := ctl.DB.First(&dept, "department_id = ?", *req.StudentGroupDepartmentID).Error; err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Department tidak ditemukan")
		}
	}

	req.Apply(&m)
	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal update student group: "+err.Error())
	}
	return helper.Success(c, "Student group diupdate", m)
}

func (ctl *StudentGroupController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := ctl.DB.Delete(&model.StudentGroupModel{}, "student_group_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Student group dihapus", fiber.Map{"student_group_id": id})
}
