// file: internals/features/campus/colleges/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	collegeCtl "kampusku_backend/internals/features/campus/colleges/controller"
)

func CollegeAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := collegeCtl.NewCollegeController(db, nil)
	g := admin.Group("/colleges")

	g.Post("/", ctl.Create)
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Patch("/:id", ctl.Patch)
	g.Delete("/:id", ctl.Delete)
}
