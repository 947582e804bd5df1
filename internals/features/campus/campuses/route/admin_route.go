// file: internals/features/campus/campuses/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	campusCtl "kampusku_backend/internals/features/campus/campuses/controller"
)

func CampusAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := campusCtl.NewCampusController(db, nil)
	g := admin.Group("/campuses")

	g.Post("/", ctl.Create)
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Patch("/:id", ctl.Patch)
	g.Delete("/:id", ctl.Delete)
}
