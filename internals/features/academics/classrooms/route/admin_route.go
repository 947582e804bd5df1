// file: internals/features/academics/classrooms/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classroomCtl "kampusku_backend/internals/features/academics/classrooms/controller"
)

func ClassroomAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := classroomCtl.NewClassroomController(db, nil)
	g := admin.Group("/classrooms")

	g.Post("/", ctl.Create)
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Patch("/:id", ctl.Patch)
	g.Delete("/:id", ctl.Delete)
}
