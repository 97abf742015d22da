package feedback

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/shivam-khode01/Faculty-appraisalSystem/models"
)

type stubCompleter struct {
	response string
	err      error
	calls    int
	prompts  []string
}

func (s *stubCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	s.calls++
	s.prompts = append(s.prompts, prompt)
	return s.response, s.err
}

func sampleTeacher() *models.Teacher {
	return &models.Teacher{
		Name:            "Asha Verma",
		Department:      "SOC",
		Domain:          "Big Data",
		HoursTaught:     80,
		StudentFeedback: 7.5,
		Papers:          []models.Paper{{Title: "Stream joins", JournalCorpus: "VLDB"}},
		Workshops:       []models.Workshop{{Title: "Spark", ConductedBy: "ACM", Mode: "Online"}},
	}
}

func TestForTeacher_AnchorsOnSalutation(t *testing.T) {
	stub := &stubCompleter{response: "Here is the feedback you asked for.\n\ndear Asha Verma,\n\n1. Publish more.\n"}
	g := NewGenerator(stub)

	got := g.ForTeacher(context.Background(), sampleTeacher())

	if !strings.HasPrefix(got, "dear Asha Verma,") {
		t.Fatalf("expected response anchored on salutation, got %q", got)
	}
	if strings.Contains(got, "Here is the feedback") {
		t.Fatalf("preamble should have been discarded: %q", got)
	}
}

func TestForTeacher_KeepsFullResponseWithoutAnchor(t *testing.T) {
	stub := &stubCompleter{response: "Overall a strong semester with solid teaching hours."}
	g := NewGenerator(stub)

	got := g.ForTeacher(context.Background(), sampleTeacher())

	if got != stub.response {
		t.Fatalf("expected full response kept, got %q", got)
	}
}

func TestForTeacher_TruncatesBoilerplateAndPlaceholder(t *testing.T) {
	stub := &stubCompleter{response: "Dear Asha Verma,\n\n1. Keep publishing.\n\nBest regards,\n[Your Name]\n\nSome additional guidelines:\n- internal note"}
	g := NewGenerator(stub)

	got := g.ForTeacher(context.Background(), sampleTeacher())

	if strings.Contains(got, "Some additional guidelines:") {
		t.Fatalf("boilerplate should be truncated: %q", got)
	}
	if strings.Contains(got, "[Your Name]") {
		t.Fatalf("name placeholder should be stripped: %q", got)
	}
	if !strings.Contains(got, "Keep publishing.") {
		t.Fatalf("feedback body missing: %q", got)
	}
}

func TestForTeacher_UnauthorizedFallback(t *testing.T) {
	stub := &stubCompleter{err: fmt.Errorf("completion request unauthorized: %w", ErrUnauthorized)}
	g := NewGenerator(stub)

	got := g.ForTeacher(context.Background(), sampleTeacher())

	if !strings.Contains(got, "temporarily unavailable") {
		t.Fatalf("expected unavailable notice, got %q", got)
	}
	if !strings.HasPrefix(got, "Dear Asha Verma,") {
		t.Fatalf("fallback should address the teacher, got %q", got)
	}
}

func TestForTeacher_GenericFallback(t *testing.T) {
	stub := &stubCompleter{err: errors.New("connection reset")}
	g := NewGenerator(stub)

	got := g.ForTeacher(context.Background(), sampleTeacher())

	if !strings.Contains(got, "Thank you for your continued dedication") {
		t.Fatalf("expected generic placeholder, got %q", got)
	}
}

func TestForTeacher_PromptCarriesProfileCounters(t *testing.T) {
	stub := &stubCompleter{response: "Dear Asha Verma,\n\nFine work."}
	g := NewGenerator(stub)

	g.ForTeacher(context.Background(), sampleTeacher())

	if len(stub.prompts) != 1 {
		t.Fatalf("expected one outbound prompt, got %d", len(stub.prompts))
	}
	prompt := stub.prompts[0]
	for _, want := range []string{
		"domain of Big Data",
		"Number of research papers: 1",
		"Number of workshops: 1",
		"Number of awards: 0",
		"Teaching hours: 80",
		"Student feedback score: 7.5",
		`Begin the feedback with: "Dear Asha Verma,"`,
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestForDepartment_EmptyTeacherList(t *testing.T) {
	stub := &stubCompleter{response: "unused"}
	g := NewGenerator(stub)

	_, err := g.ForDepartment(context.Background(), "SOC", nil)

	if !errors.Is(err, ErrNoTeachers) {
		t.Fatalf("expected ErrNoTeachers, got %v", err)
	}
	if stub.calls != 0 {
		t.Fatalf("no outbound call should be attempted for an empty department, got %d", stub.calls)
	}
}

func TestForDepartment_PropagatesCompletionFailure(t *testing.T) {
	stub := &stubCompleter{err: errors.New("service down")}
	g := NewGenerator(stub)

	_, err := g.ForDepartment(context.Background(), "SOC", []models.Teacher{*sampleTeacher()})

	if err == nil {
		t.Fatalf("department path must propagate completion failures")
	}
}

func TestForDepartment_AnchorsOnSyntheticLabel(t *testing.T) {
	stub := &stubCompleter{response: "---\n📘 SOC Department\nDepartment Feedback for SOC\n\nKey Strengths:\n- Output\n"}
	g := NewGenerator(stub)

	got, err := g.ForDepartment(context.Background(), "SOC", []models.Teacher{*sampleTeacher()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(got, "Department Feedback for SOC") {
		t.Fatalf("expected anchored report, got %q", got)
	}
}

func TestForDepartment_PromptListsEveryTeacher(t *testing.T) {
	stub := &stubCompleter{response: "Department Feedback for SOE\n\nKey Strengths:\n- x\n"}
	g := NewGenerator(stub)

	second := *sampleTeacher()
	second.Name = "Ravi Iyer"
	_, err := g.ForDepartment(context.Background(), "SOE", []models.Teacher{*sampleTeacher(), second})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	prompt := stub.prompts[0]
	if !strings.Contains(prompt, "Name: Asha Verma") || !strings.Contains(prompt, "Name: Ravi Iyer") {
		t.Fatalf("prompt should summarize every teacher:\n%s", prompt)
	}
	if !strings.Contains(prompt, `"SOE" department`) {
		t.Fatalf("prompt should name the department:\n%s", prompt)
	}
}
