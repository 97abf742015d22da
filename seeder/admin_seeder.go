package seeder

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shivam-khode01/Faculty-appraisalSystem/models"
	"github.com/shivam-khode01/Faculty-appraisalSystem/pkg/logger"
	"github.com/shivam-khode01/Faculty-appraisalSystem/pkg/password"
	"github.com/shivam-khode01/Faculty-appraisalSystem/repository"
)

// SeedAdmin creates the default administrator account when none exists yet.
func SeedAdmin(adminRepo repository.AdminRepository) {
	log := logger.With("seeder")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	adminEmail := "admin@faculty-appraisal.local"
	existing, err := adminRepo.FindAdminByEmail(ctx, adminEmail)
	if err == nil && existing != nil {
		log.Info().Str("email", adminEmail).Msg("default admin already exists, skipping seed")
		return
	}

	hashedPassword, err := password.HashPassword("ChangeMe123")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to hash default admin password")
	}

	newAdmin := &models.Admin{
		ID:       primitive.NewObjectID(),
		Name:     "System Administrator",
		Email:    adminEmail,
		Password: hashedPassword,
		Role:     "admin",
	}

	if _, err := adminRepo.CreateAdmin(ctx, newAdmin); err != nil {
		log.Error().Err(err).Msg("failed to seed default admin")
		return
	}

	log.Info().Str("email", adminEmail).Msg("default admin seeded")
}
