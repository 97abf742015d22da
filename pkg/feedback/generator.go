package feedback

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog"

	"github.com/shivam-khode01/Faculty-appraisalSystem/models"
	"github.com/shivam-khode01/Faculty-appraisalSystem/pkg/logger"
)

// ErrNoTeachers is returned when department feedback is requested for an
// empty teacher set, before any outbound call is attempted.
var ErrNoTeachers = errors.New("no teachers found in this department")

// boilerplateMarker introduces generator boilerplate that is cut from the
// returned text.
const boilerplateMarker = "Some additional guidelines:"

var trailingNamePlaceholderRe = regexp.MustCompile(`(?i)\[Your Name\]\s*$`)

// Completer is the transport used to obtain completions.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Generator builds prompts from profile data and post-processes the
// returned text. The individual path is best-effort and never returns an
// error; the department path fails hard.
type Generator struct {
	client Completer
	log    zerolog.Logger
}

func NewGenerator(client Completer) *Generator {
	return &Generator{
		client: client,
		log:    logger.With("feedback-generator"),
	}
}

// ForTeacher generates point-wise feedback for a single faculty member.
// Completion failures degrade to a canned message addressed to the teacher:
// authorization failures get the "temporarily unavailable" notice, anything
// else a generic placeholder.
func (g *Generator) ForTeacher(ctx context.Context, teacher *models.Teacher) string {
	name := strings.TrimSpace(teacher.Name)
	prompt := buildTeacherPrompt(teacher)

	message, err := g.client.Complete(ctx, prompt)
	if err != nil {
		g.log.Error().Err(err).Str("teacher", name).Msg("feedback generation failed, using fallback")
		if errors.Is(err, ErrUnauthorized) {
			return fmt.Sprintf("Dear %s,\n\nFeedback generation is temporarily unavailable due to configuration issues. Please contact the system administrator.", name)
		}
		return fmt.Sprintf("Dear %s,\n\nThank you for your continued dedication. Your performance data has been recorded. Detailed feedback will be available shortly.", name)
	}

	return cleanFeedback(anchorSalutation(message, fmt.Sprintf("Dear %s,", name)))
}

// ForDepartment generates the four-section department report from the
// profiles of every teacher in the department.
func (g *Generator) ForDepartment(ctx context.Context, department string, teachers []models.Teacher) (string, error) {
	if len(teachers) == 0 {
		return "", ErrNoTeachers
	}

	prompt := buildDepartmentPrompt(department, teachers)

	message, err := g.client.Complete(ctx, prompt)
	if err != nil {
		g.log.Error().Err(err).Str("department", department).Msg("department feedback generation failed")
		return "", err
	}

	anchor := fmt.Sprintf("Department Feedback for %s", department)
	return cleanFeedback(anchorSalutation(message, anchor)), nil
}

func buildTeacherPrompt(teacher *models.Teacher) string {
	return fmt.Sprintf(`Provide point-wise, constructive feedback for a faculty member in the domain of %s.

Faculty profile:
- Number of research papers: %d
- Number of workshops: %d
- Number of awards: %d
- Teaching hours: %d
- Student feedback score: %g

The feedback should include:
1. Areas of improvement in research and publications (e.g., trending subfields to explore).
2. Suggestions for workshops or conferences relevant to the %s domain.
3. Recommendations for awards or grants based on their current achievements.
4. Latest trends in teaching methods or educational technology tools that can enhance classroom experience.
5. Use a professional yet encouraging tone.

Begin the feedback with: "Dear %s,"`,
		teacher.Domain,
		len(teacher.Papers), len(teacher.Workshops), len(teacher.Awards),
		teacher.HoursTaught, teacher.StudentFeedback,
		teacher.Domain, strings.TrimSpace(teacher.Name))
}

func buildDepartmentPrompt(department string, teachers []models.Teacher) string {
	summaries := make([]string, 0, len(teachers))
	for _, t := range teachers {
		summaries = append(summaries, fmt.Sprintf(
			"Name: %s\nPapers: %d, Workshops: %d, Awards: %d, Teaching Hours: %d, Feedback: %g",
			t.Name, len(t.Papers), len(t.Workshops), len(t.Awards), t.HoursTaught, t.StudentFeedback))
	}

	return strings.TrimSpace(fmt.Sprintf(`
You are an academic reviewer generating a concise and professional feedback report for the "%s" department, based on faculty achievements.

Faculty Profiles:
%s

Your output must be in the following format and should be clear with real-world on-going trends and links:

---
📘 %s Department
Department Feedback for %s

Key Strengths:
- [3 concise points max]

Areas of Improvement:
- [3 concise points max]

Suggested Research & Conference Focus:
- [3 concise points max]

Teaching & Technology Trends:
- [3 concise points max]

Avoid unnecessary asterisks or lengthy explanations. Use a clear, readable tone that is professional and easy to scan.
`, department, strings.Join(summaries, "\n\n"), department, department))
}

// anchorSalutation discards everything before the first case-insensitive
// occurrence of the salutation line. If the anchor is missing, the full
// message is kept.
func anchorSalutation(message, anchor string) string {
	re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(anchor))
	loc := re.FindStringIndex(message)
	if loc == nil {
		return message
	}
	return strings.TrimSpace(message[loc[0]:])
}

// cleanFeedback truncates at the boilerplate marker and strips a trailing
// name placeholder the generator sometimes signs with.
func cleanFeedback(text string) string {
	if idx := strings.Index(text, boilerplateMarker); idx != -1 {
		text = strings.TrimSpace(text[:idx])
	}
	return strings.TrimSpace(trailingNamePlaceholderRe.ReplaceAllString(text, ""))
}
