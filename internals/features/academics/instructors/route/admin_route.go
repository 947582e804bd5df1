// file: internals/features/academics/instructors/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	instructorCtl "kampusku_backend/internals/features/academics/instructors/controller"
)

func InstructorAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := instructorCtl.NewInstructorController(db, nil)
	g := admin.Group("/instructors")

	g.Post("/", ctl.Create)
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Patch("/:id", ctl.Patch)
	g.Delete("/:id", ctl.Delete)
}
