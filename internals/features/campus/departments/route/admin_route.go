// file: internals/features/campus/departments/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	departmentCtl "kampusku_backend/internals/features/campus/departments/controller"
)

func DepartmentAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := departmentCtl.NewDepartmentController(db, nil)
	g := admin.Group("/departments")

	g.Post("/", ctl.Create)
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Patch("/:id", ctl.Patch)
	g.Delete("/:id", ctl.Delete)
}
