// file: internals/route/index.go
package route

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classroomRoute "kampusku_backend/internals/features/academics/classrooms/route"
	courseRoute "kampusku_backend/internals/features/academics/courses/route"
	instructorRoute "kampusku_backend/internals/features/academics/instructors/route"
	groupRoute "kampusku_backend/internals/features/academics/student_groups/route"
	campusRoute "kampusku_backend/internals/features/campus/campuses/route"
	collegeRoute "kampusku_backend/internals/features/campus/colleges/route"
	departmentRoute "kampusku_backend/internals/features/campus/departments/route"
	importRoute "kampusku_backend/internals/features/imports/route"
	scheduleRoute "kampusku_backend/internals/features/schedules/route"
	authRoute "kampusku_backend/internals/features/users/auth/route"
	authMw "kampusku_backend/internals/middlewares/auth"

	campusCtl "kampusku_backend/internals/features/campus/campuses/controller"
	collegeCtl "kampusku_backend/internals/features/campus/colleges/controller"
	departmentCtl "kampusku_backend/internals/features/campus/departments/controller"
	scheduleCtl "kampusku_backend/internals/features/schedules/controller"
	"kampusku_backend/internals/constants"
)

// SetupRoutes daftarkan semua route aplikasi.
//   - /api/auth    : register/login/refresh (publik)
//   - /api/a       : dashboard admin & staff (wajib token + role)
//   - /api/public  : read-only untuk tampilan publik
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	log.Println("[INFO] Menyiapkan routes...")

	api := app.Group("/api")

	// ===== AUTH =====
	authRoute.AuthRoutes(api, db)

	// ===== ADMIN / STAFF =====
	admin := api.Group("/a",
		authMw.AuthMiddleware(),
		authMw.OnlyRoles(constants.RoleAdmin, constants.RoleStaff),
	)

	campusRoute.CampusAdminRoutes(admin, db)
	collegeRoute.CollegeAdminRoutes(admin, db)
	departmentRoute.DepartmentAdminRoutes(admin, db)
	classroomRoute.ClassroomAdminRoutes(admin, db)
	instructorRoute.InstructorAdminRoutes(admin, db)
	groupRoute.StudentGroupAdminRoutes(admin, db)
	courseRoute.CourseAdminRoutes(admin, db)
	importRoute.ImportAdminRoutes(admin, db)
	scheduleRoute.ScheduleAdminRoutes(admin, db)

	// ===== PUBLIC (read-only) =====
	public := api.Group("/public")
	public.Get("/campuses", campusCtl.NewCampusController(db, nil).List)
	public.Get("/colleges", collegeCtl.NewCollegeController(db, nil).List)
	public.Get("/departments", departmentCtl.NewDepartmentController(db, nil).List)
	public.Get("/schedules", scheduleCtl.NewScheduleController(db, nil).List)
	public.Get("/schedules/:id", scheduleCtl.NewScheduleController(db, nil).GetByID)

	log.Println("[INFO] Semua routes siap ✅")
}
