// file: internals/features/academics/courses/controller/course_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	deptModel "kampusku_backend/internals/features/campus/departments/model"

	dto "kampusku_backend/internals/features/academics/courses/dto"
	model "kampusku_backend/internals/features/academics/courses/model"
	helper "kampusku_backend/internals/helpers"
)

type CourseController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewCourseController(db *gorm.DB, v *validator.Validate) *CourseController {
	if v == nil {
		v = validator.New(validator.WithRequiredStructEnabled())
	}
	return &CourseController{DB: db, Validate: v}
}

/* ============================ CREATE ============================ */

func (ctl *CourseController) Create(c *fiber.Ctx) error {
	var req dto.CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body JSON tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var dept deptModel.DepartmentModel
	if err := ctl.DB.First(&dept, "department_id = ?", req.CourseDepartmentID).Error; err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Department tidak ditemukan")
	}

	// course_code unik global
	var dup model.CourseModel
	if err := ctl.DB.First(&dup, "LOWER(course_code) = LOWER(?)", req.CourseCode).Error; err == nil {
		return helper.Error(c, fiber.StatusConflict, "Course code sudah dipakai")
	}

	m := req.ToModel()
	if err := ctl.DB.Create(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal simpan course: "+err.Error())
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Course dibuat", m)
}

/* ============================ READ ============================ */

func (ctl *CourseController) List(c *fiber.Ctx) error {
	p := helper.ParsePagination(c, "course_created_at", helper.DefaultOpts)
	deptID, err := helper.ParseUUIDQuery(c, "department_id")
	if err != nil {
		return err
	}
	instructorID, err := helper.ParseUUIDQuery(c, "instructor_id")
	if err != nil {
		return err
	}

	q := ctl.DB.Model(&model.CourseModel{})
	if deptID != nil {
		q = q.Where("course_department_id = ?", *deptID)
	}
	if instructorID != nil {
		q = q.Where("course_instructor_id = ?", *instructorID)
	}
	if y := c.QueryInt("year"); y > 0 {
		q = q.Where("course_year = ?", y)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var items []model.CourseModel
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

func (ctl *CourseController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var m model.CourseModel
	if err := ctl.DB.First(&m, "course_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Course tidak ditemukan")
	}
	return helper.Success(c, "OK", m)
}

/* ============================ UPDATE / DELETE ============================ */

func (ctl *CourseController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var m model.CourseModel
	if err := ctl.DB.First(&m, "course_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Course tidak ditemukan")
	}

	var req dto.UpdateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body JSON tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if req.CourseCode != nil && *req.CourseCode != m.CourseCode {
		var dup model.CourseModel
		if err := ctl.DB.First(&dup, "LOWER(course_code) = LOWER(?) AND course_id <> ?", *req.CourseCode, id).Error; err == nil {
			return helper.Error(c, fiber.StatusConflict, "Course code sudah dipakai")
		}
	}
	if req.CourseDepartmentID != nil {
		var dept deptModel.DepartmentModel
		if err := ctl.DB.First(&dept, "department_id = ?", *req.CourseDepartmentID).Error; err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Department tidak ditemukan")
		}
	}

	req.Apply(&m)
	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal update course: "+err.Error())
	}
	return helper.Success(c, "Course diupdate", m)
}

func (ctl *CourseController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := ctl.DB.Delete(&model.CourseModel{}, "course_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Course dihapus", fiber.Map{"course_id": id})
}
