package router

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"github.com/shivam-khode01/Faculty-appraisalSystem/config"
	"github.com/shivam-khode01/Faculty-appraisalSystem/config/middleware"
	_ "github.com/shivam-khode01/Faculty-appraisalSystem/docs"
	"github.com/shivam-khode01/Faculty-appraisalSystem/handlers"
	"github.com/shivam-khode01/Faculty-appraisalSystem/models"
	"github.com/shivam-khode01/Faculty-appraisalSystem/pkg/feedback"
	"github.com/shivam-khode01/Faculty-appraisalSystem/pkg/logger"
	"github.com/shivam-khode01/Faculty-appraisalSystem/pkg/sheets"
	"github.com/shivam-khode01/Faculty-appraisalSystem/repository"
)

func SetupRoutes(app *fiber.App, cfg *config.AppConfig) {
	log := logger.With("router")

	teacherRepo := repository.NewTeacherRepository()
	feedbackRepo := repository.NewFeedbackRepository()
	adminRepo := repository.NewAdminRepository()

	completionClient := feedback.NewClient(feedback.ClientConfig{
		APIKey: cfg.GroqAPIKey,
		Model:  cfg.GroqModel,
	})
	generator := feedback.NewGenerator(completionClient)

	var mirror *sheets.Mirror
	if cfg.SpreadsheetID != "" {
		var err error
		mirror, err = sheets.NewMirror(context.Background(), cfg.SpreadsheetID, cfg.SheetRange)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize spreadsheet mirror")
		}
	} else {
		log.Warn().Msg("SHEET_ID not set, publication mirroring is disabled")
	}

	authHandler := handlers.NewAuthHandler(adminRepo)
	teacherHandler := handlers.NewTeacherHandler(teacherRepo, generator, mirror, cfg.BaseURL)
	adminHandler := handlers.NewAdminHandler(teacherRepo)
	deptHandler := handlers.NewDepartmentHandler(teacherRepo, feedbackRepo, generator)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": "faculty-appraisal-system"})
	})

	app.Get("/docs/*", swagger.HandlerDefault)

	api := app.Group("/api/v1")

	api.Post("/auth/login", authHandler.Login)
	api.Post("/auth/register", middleware.AuthMiddleware(), middleware.AdminMiddleware(), authHandler.Register)

	api.Get("/departments", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"departments": models.Departments})
	})
	api.Get("/domains", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"domains": models.Domains})
	})

	api.Post("/profile", teacherHandler.CreateProfile)

	admin := api.Group("/admin", middleware.AuthMiddleware(), middleware.AdminMiddleware())
	admin.Get("/profiles", adminHandler.ViewAllProfiles)
	admin.Get("/profile/:id", teacherHandler.ViewProfile)
	admin.Get("/profile/:id/qr", teacherHandler.ProfileQR)
	admin.Delete("/profile/:id", teacherHandler.DeleteProfile)
	admin.Post("/rate/:id", adminHandler.RateTeacher)
	admin.Post("/department-feedback/:department", deptHandler.GenerateDepartmentFeedback)
	admin.Get("/department-feedbacks", deptHandler.ViewDepartmentFeedbacks)
	admin.Get("/comparison-dashboard", deptHandler.ComparisonDashboard)
}
