package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/shivam-khode01/Faculty-appraisalSystem/models"
	"github.com/shivam-khode01/Faculty-appraisalSystem/pkg/feedback"
	"github.com/shivam-khode01/Faculty-appraisalSystem/pkg/keywords"
	"github.com/shivam-khode01/Faculty-appraisalSystem/pkg/rating"
	"github.com/shivam-khode01/Faculty-appraisalSystem/repository"
)

type DepartmentHandler struct {
	teacherRepo  repository.TeacherRepository
	feedbackRepo repository.FeedbackRepository
	generator    *feedback.Generator
}

func NewDepartmentHandler(teacherRepo repository.TeacherRepository, feedbackRepo repository.FeedbackRepository, generator *feedback.Generator) *DepartmentHandler {
	return &DepartmentHandler{
		teacherRepo:  teacherRepo,
		feedbackRepo: feedbackRepo,
		generator:    generator,
	}
}

// GenerateDepartmentFeedback godoc
// @Summary Generate Department Feedback
// @Description Generates the four-section department report from all teacher profiles in the department and saves it, replacing any previous report
// @Tags Departments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param department path string true "Department name"
// @Success 200 {object} models.DepartmentFeedbackResponse "Feedback generated successfully"
// @Failure 404 {object} models.NotFoundErrorResponse "No teachers found in this department"
// @Failure 500 {object} models.ErrorResponse "Failed to save feedback"
// @Failure 502 {object} models.ErrorResponse "Completion service failure"
// @Router /admin/department-feedback/{department} [post]
func (h *DepartmentHandler) GenerateDepartmentFeedback(c *fiber.Ctx) error {
	department, err := url.PathUnescape(c.Params("department"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid department name"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	teachers, err := h.teacherRepo.GetTeachersByDepartment(ctx, department)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("failed to fetch teachers: %v", err)})
	}

	if len(teachers) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "No teachers found in this department"})
	}

	// Department feedback fails hard on completion errors, unlike the
	// per-teacher path.
	feedbackText, err := h.generator.ForDepartment(c.Context(), department, teachers)
	if err != nil {
		if errors.Is(err, feedback.ErrNoTeachers) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "No teachers found in this department"})
		}
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": fmt.Sprintf("failed to generate feedback: %v", err)})
	}

	saveCtx, saveCancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer saveCancel()

	if _, err := h.feedbackRepo.UpsertDepartmentFeedback(saveCtx, department, feedbackText); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("failed to save feedback: %v", err)})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":    "Feedback generated successfully",
		"department": department,
		"feedback":   feedbackText,
	})
}

// ViewDepartmentFeedbacks godoc
// @Summary List Department Feedbacks
// @Description Returns stored department feedback reports. Without a department filter only the department list is populated.
// @Tags Departments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param department query string false "Department filter"
// @Success 200 {object} object{feedbacks=[]models.DepartmentFeedback,departments=[]string,selected_department=string} "Stored feedbacks"
// @Failure 500 {object} models.ErrorResponse "Failed to fetch feedbacks"
// @Router /admin/department-feedbacks [get]
func (h *DepartmentHandler) ViewDepartmentFeedbacks(c *fiber.Ctx) error {
	department := c.Query("department")

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	feedbacks := []models.DepartmentFeedback{}
	if department != "" {
		var err error
		feedbacks, err = h.feedbackRepo.GetDepartmentFeedbacks(ctx, department)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("failed to fetch feedbacks: %v", err)})
		}
	}

	departments, err := h.teacherRepo.DistinctDepartments(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("failed to list departments: %v", err)})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"feedbacks":           feedbacks,
		"departments":         departments,
		"selected_department": department,
	})
}

// ComparisonDashboard godoc
// @Summary Comparison Dashboard
// @Description Aggregates counters per department and ranks the most recurring strengths and weaknesses across stored department feedback
// @Tags Departments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ComparisonDashboardResponse "Cross-department statistics"
// @Failure 500 {object} models.ErrorResponse "Failed to build dashboard"
// @Router /admin/comparison-dashboard [get]
func (h *DepartmentHandler) ComparisonDashboard(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	departments, err := h.teacherRepo.DistinctDepartments(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("failed to list departments: %v", err)})
	}

	teachers, err := h.teacherRepo.GetAllTeachers(ctx, "")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("failed to fetch teachers: %v", err)})
	}

	feedbacks, err := h.feedbackRepo.GetAllDepartmentFeedbacks(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("failed to fetch feedbacks: %v", err)})
	}

	feedbackByDept := make(map[string]string, len(feedbacks))
	for _, f := range feedbacks {
		feedbackByDept[f.Department] = f.Feedback
	}

	departmentStats := make(map[string]models.DepartmentStats, len(departments))
	var allStrengths, allWeaknesses []string

	for _, dept := range departments {
		stats := models.DepartmentStats{}
		count := 0
		feedbackSum := 0.0

		for _, t := range teachers {
			if t.Department != dept {
				continue
			}
			count++
			stats.Papers += len(t.Papers)
			stats.Workshops += len(t.Workshops)
			stats.Awards += len(t.Awards)
			stats.Teaching += t.HoursTaught
			feedbackSum += t.StudentFeedback
		}
		if count > 0 {
			stats.Feedback = rating.Round2(feedbackSum / float64(count))
		}

		if text, ok := feedbackByDept[dept]; ok {
			strengths, weaknesses := keywords.Extract(text)
			allStrengths = append(allStrengths, strengths...)
			allWeaknesses = append(allWeaknesses, weaknesses...)
		}

		departmentStats[dept] = stats
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"department_stats": departmentStats,
		"strengths":        keywords.TopKeywords(allStrengths, 5),
		"weaknesses":       keywords.TopKeywords(allWeaknesses, 5),
	})
}
