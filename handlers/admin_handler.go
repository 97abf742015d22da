package handlers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shivam-khode01/Faculty-appraisalSystem/models"
	"github.com/shivam-khode01/Faculty-appraisalSystem/pkg/rating"
	util "github.com/shivam-khode01/Faculty-appraisalSystem/pkg/utils"
	"github.com/shivam-khode01/Faculty-appraisalSystem/repository"
)

type AdminHandler struct {
	teacherRepo repository.TeacherRepository
}

func NewAdminHandler(teacherRepo repository.TeacherRepository) *AdminHandler {
	return &AdminHandler{
		teacherRepo: teacherRepo,
	}
}

// ViewAllProfiles godoc
// @Summary List Faculty Profiles
// @Description Lists all teacher profiles with computed auto ratings, optionally filtered by department. An empty result set is valid.
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param department query string false "Department filter (use ALL or omit for everyone)"
// @Success 200 {object} models.ProfileListResponse "Profiles with ratings"
// @Failure 500 {object} models.ErrorResponse "Failed to fetch profiles"
// @Router /admin/profiles [get]
func (h *AdminHandler) ViewAllProfiles(c *fiber.Ctx) error {
	department := c.Query("department")

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	teachers, err := h.teacherRepo.GetAllTeachers(ctx, department)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("failed to fetch profiles: %v", err)})
	}

	withRatings := make([]models.TeacherWithRating, 0, len(teachers))
	for _, teacher := range teachers {
		withRatings = append(withRatings, models.TeacherWithRating{
			Teacher:    teacher,
			AutoRating: rating.Round2(rating.AutoScore(&teacher) / 10),
		})
	}

	selected := department
	if selected == "" {
		selected = "ALL"
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"teachers":            withRatings,
		"total":               len(withRatings),
		"departments":         append([]string{"ALL"}, models.Departments...),
		"selected_department": selected,
	})
}

// RateTeacher godoc
// @Summary Rate Teacher
// @Description Saves the admin rating and the recomputed final rating in one update
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Teacher ID"
// @Param rating body models.RatingPayload true "Admin rating between 0 and 10"
// @Success 200 {object} models.RatingSavedResponse "Rating saved successfully"
// @Failure 400 {object} models.ErrorResponse "Invalid ID, payload, or rating out of range"
// @Failure 404 {object} models.NotFoundErrorResponse "Faculty profile not found"
// @Failure 500 {object} models.ErrorResponse "Failed to save rating"
// @Router /admin/rate/{id} [post]
func (h *AdminHandler) RateTeacher(c *fiber.Ctx) error {
	idParam := c.Params("id")
	objID, err := primitive.ObjectIDFromHex(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid teacher ID format"})
	}

	var payload models.RatingPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body", "details": err.Error()})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	adminRating := *payload.AdminRating
	if !rating.IsValidRating(adminRating) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Rating must be between 0 and 10"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	teacher, err := h.teacherRepo.GetTeacherByID(ctx, objID)
	if err != nil {
		if errors.Is(err, repository.ErrTeacherNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Faculty profile not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("failed to fetch profile: %v", err)})
	}

	autoScore := rating.AutoScore(teacher)
	finalRating := rating.FinalRating(autoScore, adminRating)

	updated, err := h.teacherRepo.UpdateTeacherRating(ctx, objID, adminRating, finalRating)
	if err != nil {
		if errors.Is(err, repository.ErrTeacherNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Faculty profile not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("failed to save rating: %v", err)})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":      "Rating saved successfully",
		"admin_rating": updated.AdminRating,
		"final_rating": updated.FinalRating,
	})
}
