package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/shivam-khode01/Faculty-appraisalSystem/models"
	"github.com/shivam-khode01/Faculty-appraisalSystem/pkg/paseto"
	"github.com/shivam-khode01/Faculty-appraisalSystem/pkg/password"
	util "github.com/shivam-khode01/Faculty-appraisalSystem/pkg/utils"
	"github.com/shivam-khode01/Faculty-appraisalSystem/repository"
)

type AuthHandler struct {
	adminRepo repository.AdminRepository
}

func NewAuthHandler(adminRepo repository.AdminRepository) *AuthHandler {
	return &AuthHandler{
		adminRepo: adminRepo,
	}
}

type RegisterPayload struct {
	Name     string `json:"name" validate:"required,min=3,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=50"`
}

// Register godoc
// @Summary Register Admin
// @Description Registers a new administrator account (admin only)
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param admin body RegisterPayload true "New admin data"
// @Success 201 {object} object{message=string,admin_id=string} "Admin registered"
// @Failure 400 {object} models.ErrorResponse "Invalid request body or validation error"
// @Failure 500 {object} models.ErrorResponse "Failed to register admin"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var payload RegisterPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	hashedPassword, err := password.HashPassword(payload.Password)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to hash password"})
	}

	newAdmin := &models.Admin{
		Name:     payload.Name,
		Email:    payload.Email,
		Password: hashedPassword,
		Role:     "admin",
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	result, err := h.adminRepo.CreateAdmin(ctx, newAdmin)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("failed to register admin: %v", err)})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Admin registered successfully",
		"admin_id": result.InsertedID,
	})
}

// Login godoc
// @Summary Login Admin
// @Description Authenticates an administrator and returns a PASETO token
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body models.AdminLoginPayload true "Login credentials"
// @Success 200 {object} models.LoginSuccessResponse "Login successful"
// @Failure 400 {object} models.ErrorResponse "Invalid payload or validation error"
// @Failure 401 {object} models.UnauthorizedErrorResponse "Wrong email and password combination"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var payload models.AdminLoginPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	admin, err := h.adminRepo.FindAdminByEmail(ctx, payload.Email)
	if err != nil || admin == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Wrong email and password combination"})
	}

	if !password.CheckPassword(admin.Password, payload.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Wrong email and password combination"})
	}

	token, err := paseto.GenerateToken(admin)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to generate token"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":  "Login successful",
		"token":    token,
		"admin_id": admin.ID.Hex(),
	})
}
