package routers

import (
	"chamber-portal-service/internal/app/delivery/http/controllers"
	"chamber-portal-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *controllers.AuthController) {
	router.Post("/login", authController.Login)

	router.Group(func(r chi.Router) {
		r.Use(middlewares.Authenticate)
		r.Use(middlewares.Authorize)

		r.Post("/logout", authController.Logout)
		r.Get("/me", authController.Me)
	})
}
