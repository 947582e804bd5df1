// file: internals/features/imports/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	importCtl "kampusku_backend/internals/features/imports/controller"
	"kampusku_backend/internals/middlewares"
)

// ImportAdminRoutes — upload spreadsheet/JSON masuk ke reconciliation engine.
// Mount dari caller:
//
//	admin := app.Group("/api/a", authMiddleware)
//	route.ImportAdminRoutes(admin, db)
func ImportAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := importCtl.NewImportController(db, nil)
	g := admin.Group("/imports", middlewares.ImportRateLimiter())

	g.Post("/auto", ctl.ImportAuto)
	g.Post("/:category", ctl.ImportCategory)
}
