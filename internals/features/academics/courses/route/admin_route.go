// file: internals/features/academics/courses/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseCtl "kampusku_backend/internals/features/academics/courses/controller"
)

func CourseAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := courseCtl.NewCourseController(db, nil)
	g := admin.Group("/courses")

	g.Post("/", ctl.Create)
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Patch("/:id", ctl.Patch)
	g.Delete("/:id", ctl.Delete)
}
