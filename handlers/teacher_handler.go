package handlers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	qrcode "github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shivam-khode01/Faculty-appraisalSystem/models"
	"github.com/shivam-khode01/Faculty-appraisalSystem/pkg/feedback"
	"github.com/shivam-khode01/Faculty-appraisalSystem/pkg/rating"
	"github.com/shivam-khode01/Faculty-appraisalSystem/pkg/sheets"
	util "github.com/shivam-khode01/Faculty-appraisalSystem/pkg/utils"
	"github.com/shivam-khode01/Faculty-appraisalSystem/repository"
)

type TeacherHandler struct {
	teacherRepo repository.TeacherRepository
	generator   *feedback.Generator
	mirror      *sheets.Mirror
	baseURL     string
}

func NewTeacherHandler(teacherRepo repository.TeacherRepository, generator *feedback.Generator, mirror *sheets.Mirror, baseURL string) *TeacherHandler {
	return &TeacherHandler{
		teacherRepo: teacherRepo,
		generator:   generator,
		mirror:      mirror,
		baseURL:     baseURL,
	}
}

// CreateProfile godoc
// @Summary Create Faculty Profile
// @Description Creates a teacher profile and mirrors its paper records into the publication spreadsheet
// @Tags Profiles
// @Accept json
// @Produce json
// @Param profile body models.TeacherCreatePayload true "New faculty profile"
// @Success 201 {object} models.ProfileCreatedResponse "Faculty profile created successfully"
// @Failure 400 {object} models.ErrorResponse "Invalid request body or validation error"
// @Failure 500 {object} models.ErrorResponse "Failed to create profile"
// @Failure 502 {object} models.ErrorResponse "Profile persisted but spreadsheet mirroring failed"
// @Router /profile [post]
func (h *TeacherHandler) CreateProfile(c *fiber.Ctx) error {
	var payload models.TeacherCreatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body", "details": err.Error()})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	teacher := payload.ToTeacher(time.Now())

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	result, err := h.teacherRepo.CreateTeacher(ctx, teacher)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("failed to create profile: %v", err)})
	}

	// The profile is durable at this point. A mirroring failure fails the
	// request but does not roll the profile back.
	if h.mirror != nil {
		mirrorCtx, mirrorCancel := context.WithTimeout(c.Context(), 30*time.Second)
		defer mirrorCancel()

		if err := h.mirror.AppendPaperRows(mirrorCtx, teacher); err != nil {
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"error":      fmt.Sprintf("profile created but spreadsheet mirroring failed: %v", err),
				"teacher_id": teacher.ID.Hex(),
			})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":    "Faculty profile created successfully",
		"teacher_id": result.InsertedID,
	})
}

// ViewProfile godoc
// @Summary View Faculty Profile
// @Description Returns a teacher profile together with freshly generated performance feedback
// @Tags Profiles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Teacher ID"
// @Success 200 {object} models.ProfileDetailResponse "Profile with feedback"
// @Failure 400 {object} models.ErrorResponse "Invalid ID format"
// @Failure 404 {object} models.NotFoundErrorResponse "Faculty profile not found"
// @Failure 500 {object} models.ErrorResponse "Failed to fetch profile"
// @Router /admin/profile/{id} [get]
func (h *TeacherHandler) ViewProfile(c *fiber.Ctx) error {
	idParam := c.Params("id")
	objID, err := primitive.ObjectIDFromHex(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid teacher ID format"})
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

	autoRating := rating.Round2(rating.AutoScore(teacher) / 10)

	// Best-effort: the generator degrades to a canned message on failure.
	feedbackText := h.generator.ForTeacher(c.Context(), teacher)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"teacher":     teacher,
		"auto_rating": autoRating,
		"feedback":    feedbackText,
	})
}

// DeleteProfile godoc
// @Summary Delete Faculty Profile
// @Description Deletes a teacher profile and returns the removed document
// @Tags Profiles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Teacher ID"
// @Success 200 {object} models.ProfileDeletedResponse "Faculty profile deleted successfully"
// @Failure 400 {object} models.ErrorResponse "Invalid ID format"
// @Failure 404 {object} models.NotFoundErrorResponse "Faculty profile not found"
// @Failure 500 {object} models.ErrorResponse "Failed to delete profile"
// @Router /admin/profile/{id} [delete]
func (h *TeacherHandler) DeleteProfile(c *fiber.Ctx) error {
	idParam := c.Params("id")
	objID, err := primitive.ObjectIDFromHex(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid teacher ID format"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	teacher, err := h.teacherRepo.DeleteTeacher(ctx, objID)
	if err != nil {
		if errors.Is(err, repository.ErrTeacherNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Faculty profile not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("failed to delete profile: %v", err)})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Faculty profile deleted successfully",
		"teacher": teacher,
	})
}

// ProfileQR godoc
// @Summary Profile QR Code
// @Description Returns a PNG QR code that links to the teacher's profile page
// @Tags Profiles
// @Produce png
// @Security BearerAuth
// @Param id path string true "Teacher ID"
// @Success 200 {file} binary "PNG image"
// @Failure 400 {object} models.ErrorResponse "Invalid ID format"
// @Failure 404 {object} models.NotFoundErrorResponse "Faculty profile not found"
// @Failure 500 {object} models.ErrorResponse "Failed to generate QR code"
// @Router /admin/profile/{id}/qr [get]
func (h *TeacherHandler) ProfileQR(c *fiber.Ctx) error {
	idParam := c.Params("id")
	objID, err := primitive.ObjectIDFromHex(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid teacher ID format"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	if _, err := h.teacherRepo.GetTeacherByID(ctx, objID); err != nil {
		if errors.Is(err, repository.ErrTeacherNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Faculty profile not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("failed to fetch profile: %v", err)})
	}

	profileURL := fmt.Sprintf("%s/api/v1/admin/profile/%s", h.baseURL, objID.Hex())
	png, err := qrcode.Encode(profileURL, qrcode.Medium, 256)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("failed to generate QR code: %v", err)})
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Status(fiber.StatusOK).Send(png)
}
