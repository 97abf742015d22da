package main

import (
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"

	"github.com/shivam-khode01/Faculty-appraisalSystem/config"
	_ "github.com/shivam-khode01/Faculty-appraisalSystem/docs"
	"github.com/shivam-khode01/Faculty-appraisalSystem/pkg/logger"
	"github.com/shivam-khode01/Faculty-appraisalSystem/repository"
	"github.com/shivam-khode01/Faculty-appraisalSystem/router"
	"github.com/shivam-khode01/Faculty-appraisalSystem/seeder"
)

// @title Faculty Appraisal System API
// @version 1.0
// @description API for faculty performance management: teacher profiles, weighted ratings, AI-generated feedback, and publication mirroring.
//
// @contact.name API Support
// @contact.url https://github.com/shivam-khode01/Faculty-appraisalSystem
//
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
//
// @host localhost:3000
// @BasePath /api/v1
// @schemes http https
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the PASETO token.
//
// @tag.name Auth
// @tag.description Authentication endpoints
//
// @tag.name Profiles
// @tag.description Faculty profile endpoints
//
// @tag.name Admin
// @tag.description Admin rating and dashboard endpoints
//
// @tag.name Departments
// @tag.description Department feedback endpoints
func main() {

	err := godotenv.Load()
	if err != nil {
		l := logger.Get()
		l.Warn().Msg(".env file not found, using system environment variables")
	}

	cfg := config.LoadConfig()

	logger.Configure(logger.Config{
		Level:  "info",
		Pretty: cfg.AppEnv == "development",
	})
	log := logger.With("main")

	config.MongoConnect()
	config.InitDatabase()
	defer config.DisconnectDB()

	seeder.SeedAdmin(repository.NewAdminRepository())

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			payload := fiber.Map{"error": "Internal server error"}
			if cfg.AppEnv == "development" {
				payload["details"] = err.Error()
			}
			return c.Status(code).JSON(payload)
		},
	})

	config.SetupCORS(app)

	app.Use(fiberlogger.New())

	router.SetupRoutes(app, cfg)

	log.Info().Str("port", cfg.Port).Msg("server starting")
	log.Info().Msgf("API documentation: http://localhost:%s/docs/index.html", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
