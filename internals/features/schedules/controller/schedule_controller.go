// file: internals/features/schedules/controller/schedule_controller.go
package controller

import (
	"log"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	classroomModel "kampusku_backend/internals/features/academics/classrooms/model"
	courseModel "kampusku_backend/internals/features/academics/courses/model"
	instructorModel "kampusku_backend/internals/features/academics/instructors/model"
	groupModel "kampusku_backend/internals/features/academics/student_groups/model"
	dto "kampusku_backend/internals/features/schedules/dto"
	scheduleModel "kampusku_backend/internals/features/schedules/model"
	service "kampusku_backend/internals/features/schedules/service"
	helper "kampusku_backend/internals/helpers"
)

/* =======================================================
   CONTROLLER
   ======================================================= */

type ScheduleController struct {
	DB        *gorm.DB
	Validate  *validator.Validate
	Optimizer *service.OptimizerClient
}

func NewScheduleController(db *gorm.DB, v *validator.Validate) *ScheduleController {
	if v == nil {
		v = validator.New(validator.WithRequiredStructEnabled())
	}
	return &ScheduleController{
		DB:        db,
		Validate:  v,
		Optimizer: service.NewOptimizerClient(),
	}
}

/* ============================ GENERATE ============================ */

// POST /schedules/generate — kirim graph input ke optimizer eksternal,
// rekonsiliasi hasilnya, persist schedule + sessions.
func (ctl *ScheduleController) Generate(c *fiber.Ctx) error {
	var req dto.GenerateScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body JSON tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	input, err := ctl.buildOptimizerInput(req.Semester)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	if len(input.Courses) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Belum ada course — import data dulu sebelum generate")
	}

	out, err := ctl.Optimizer.GenerateSchedule(c.UserContext(), *input)
	if err != nil {
		log.Printf("[SCHEDULE] optimizer gagal: %v", err)
		return helper.Error(c, fiber.StatusBadGateway, "Optimizer eksternal gagal: "+err.Error())
	}

	return ctl.persistAndRespond(c, req.Semester, req.CampusID, out.Assignments)
}

/* ============================ RECONCILE ============================ */

// POST /schedules/reconcile — hasil optimizer disetor langsung di body
// (dipakai kalau solver jalan async / manual).
func (ctl *ScheduleController) Reconcile(c *fiber.Ctx) error {
	var req dto.ReconcileScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body JSON tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	return ctl.persistAndRespond(c, req.Semester, req.CampusID, req.Assignments)
}

func (ctl *ScheduleController) persistAndRespond(c *fiber.Ctx, semester string, campusID *uuid.UUID, lines []service.AssignmentLine) error {
	meta, _ := sonic.Marshal(fiber.Map{"assignment_lines": len(lines)})
	schedule := scheduleModel.ScheduleModel{
		ScheduleSemester: semester,
		ScheduleCampusID: campusID,
		ScheduleMeta:     datatypes.JSON(meta),
	}
	if err := ctl.DB.Create(&schedule).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal simpan schedule: "+err.Error())
	}

	reconciler := service.NewReconciler(service.NewGormReconcileStore(ctl.DB))
	report, err := reconciler.Reconcile(lines, schedule.ScheduleID, campusID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Rekonsiliasi gagal: "+err.Error())
	}

	sessions, err := ctl.summarizeSessions(report.Persisted)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	log.Printf("[SCHEDULE] semester=%s persisted=%d skipped=%d", semester, len(report.Persisted), len(report.Skipped))
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Schedule berhasil dibuat", dto.ScheduleWithSessions{
		Schedule: schedule,
		Sessions: sessions,
		Skipped:  report.Skipped,
	})
}

/* ============================ READ ============================ */

// GET /schedules
func (ctl *ScheduleController) List(c *fiber.Ctx) error {
	p := helper.ParsePagination(c, "schedule_created_at", helper.AdminOpts)

	var total int64
	if err := ctl.DB.Model(&scheduleModel.ScheduleModel{}).Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var schedules []scheduleModel.ScheduleModel
	if err := ctl.DB.
		Order(p.SortBy + " " + p.SortOrder).
		Limit(p.PerPage).Offset(p.Offset()).
		Find(&schedules).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "OK", fiber.Map{
		"items": schedules,
		"meta":  helper.PaginationMeta(total, p),
	})
}

// GET /schedules/:id — schedule + sessions dengan summary entity
func (ctl *ScheduleController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var schedule scheduleModel.ScheduleModel
	if err := ctl.DB.First(&schedule, "schedule_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Schedule tidak ditemukan")
	}

	var raw []scheduleModel.SessionModel
	if err := ctl.DB.Where("session_schedule_id = ?", id).
		Order("session_day, session_start_time").
		Find(&raw).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	sessions, err := ctl.summarizeSessions(raw)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "OK", dto.ScheduleWithSessions{Schedule: schedule, Sessions: sessions})
}

// DELETE /schedules/:id — soft delete schedule + sessions-nya
func (ctl *ScheduleController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := ctl.DB.Where("session_schedule_id = ?", id).
		Delete(&scheduleModel.SessionModel{}).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := ctl.DB.Delete(&scheduleModel.ScheduleModel{}, "schedule_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Schedule dihapus", fiber.Map{"schedule_id": id})
}

/* ============================ HELPERS ============================ */

func (ctl *ScheduleController) buildOptimizerInput(semester string) (*service.OptimizerInput, error) {
	var courses []courseModel.CourseModel
	if err := ctl.DB.Find(&courses).Error; err != nil {
		return nil, err
	}
	var instructors []instructorModel.InstructorModel
	if err := ctl.DB.Find(&instructors).Error; err != nil {
		return nil, err
	}
	var rooms []classroomModel.ClassroomModel
	if err := ctl.DB.Find(&rooms).Error; err != nil {
		return nil, err
	}
	var groups []groupModel.StudentGroupModel
	if err := ctl.DB.Find(&groups).Error; err != nil {
		return nil, err
	}

	instructorByID := make(map[uuid.UUID]string, len(instructors))
	for _, ins := range instructors {
		instructorByID[ins.InstructorID] = ins.InstructorName
	}

	input := &service.OptimizerInput{Semester: semester}
	for _, crs := range courses {
		oc := service.OptimizerCourse{
			Code:        crs.CourseCode,
			Name:        crs.CourseName,
			Type:        string(crs.CourseType),
			DaysPerWeek: crs.CourseDaysPerWeek,
			HoursPerDay: crs.CourseHoursPerDay,
			Year:        crs.CourseYear,
		}
		if crs.CourseInstructorID != nil {
			oc.Instructor = instructorByID[*crs.CourseInstructorID]
		}
		input.Courses = append(input.Courses, oc)
	}
	for _, ins := range instructors {
		oi := service.OptimizerInstructor{Name: ins.InstructorName}
		if ins.InstructorDay != nil {
			oi.Day = *ins.InstructorDay
		}
		if ins.InstructorStartTime != nil {
			oi.Start = *ins.InstructorStartTime
		}
		if ins.InstructorEndTime != nil {
			oi.End = *ins.InstructorEndTime
		}
		input.Instructors = append(input.Instructors, oi)
	}
	for _, room := range rooms {
		input.Rooms = append(input.Rooms, service.OptimizerRoom{
			Name:     room.ClassroomName,
			Capacity: room.ClassroomCapacity,
			Type:     string(room.ClassroomType),
		})
	}
	for _, grp := range groups {
		input.Groups = append(input.Groups, service.OptimizerGroup{
			Name:         grp.StudentGroupName,
			Year:         grp.StudentGroupYear,
			StudentCount: grp.StudentGroupStudentCount,
		})
	}
	return input, nil
}

// summarizeSessions lengkapi session dengan nama course/instructor/room
func (ctl *ScheduleController) summarizeSessions(sessions []scheduleModel.SessionModel) ([]dto.SessionSummary, error) {
	out := make([]dto.SessionSummary, 0, len(sessions))
	for _, s := range sessions {
		summary := dto.SessionSummary{SessionModel: s}

		var crs courseModel.CourseModel
		if err := ctl.DB.First(&crs, "course_id = ?", s.SessionCourseID).Error; err == nil {
			summary.CourseName = crs.CourseName
		}
		if s.SessionInstructorID != nil {
			var ins instructorModel.InstructorModel
			if err := ctl.DB.First(&ins, "instructor_id = ?", *s.SessionInstructorID).Error; err == nil {
				summary.InstructorName = &ins.InstructorName
			}
		}
		if s.SessionClassroomID != nil {
			var room classroomModel.ClassroomModel
			if err := ctl.DB.First(&room, "classroom_id = ?", *s.SessionClassroomID).Error; err == nil {
				summary.ClassroomName = &room.ClassroomName
			}
		}
		out = append(out, summary)
	}
	return out, nil
}
