// file: internals/features/schedules/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	scheduleCtl "kampusku_backend/internals/features/schedules/controller"
)

// ScheduleAdminRoutes — generate + rekonsiliasi + kelola hasil jadwal
func ScheduleAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := scheduleCtl.NewScheduleController(db, nil)
	g := admin.Group("/schedules")

	g.Post("/generate", ctl.Generate)
	g.Post("/reconcile", ctl.Reconcile)
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Delete("/:id", ctl.Delete)
}
