// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authCtl "kampusku_backend/internals/features/users/auth/controller"
	"kampusku_backend/internals/middlewares"
	authMw "kampusku_backend/internals/middlewares/auth"
)

// AuthRoutes mount endpoint auth publik + yang butuh token.
func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctl := authCtl.NewAuthController(db, nil)
	g := api.Group("/auth")

	g.Post("/register", ctl.Register)
	g.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	g.Post("/refresh", ctl.Refresh)
	g.Post("/logout", ctl.Logout)

	g.Get("/me", authMw.AuthMiddleware(), ctl.Me)
}
