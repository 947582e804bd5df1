// file: internals/features/academics/student_groups/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	groupCtl "kampusku_backend/internals/features/academics/student_groups/controller"
)

func StudentGroupAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := groupCtl.NewStudentGroupController(db, nil)
	g := admin.Group("/student-groups")

	g.Post("/", ctl.Create)
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Patch("/:id", ctl.Patch)
	g.Delete("/:id", ctl.Delete)
}
