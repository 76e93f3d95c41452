package routes

import (
	"github.com/gofiber/fiber/v2"

	"codev-backend/controllers"
	"codev-backend/middleware"
)

func APIRoutes(app *fiber.App) {
	api := app.Group("/api")

	api.Post("/register", controllers.Register)
	api.Get("/verify-email", controllers.VerifyEmail)
	api.Post("/resend-verification", controllers.ResendVerification)
	api.Post("/login", controllers.Login)

	authed := api.Group("", middleware.RequireAuth)
	authed.Get("/me", controllers.GetMe)
	authed.Post("/contact", controllers.ContactHandler)

	authed.Get("/leaderboard/technical", controllers.GetTechnicalLeaderboard)
	authed.Get("/leaderboard/soft-skills", controllers.GetSoftSkillsLeaderboard)
	authed.Get("/leaderboard/projects", controllers.GetProjectLeaderboard)

	authed.Get("/members/prioritized", controllers.GetPrioritizedMembers)
	authed.Get("/members/showcase", controllers.GetShowcaseMembers)
}
