package keywords

import (
	"reflect"
	"testing"
)

func TestExtract_BothSections(t *testing.T) {
	text := "Key Strengths:\n- Clarity\n- Rigor\nAreas of Improvement:\n- Pacing\n"

	strengths, weaknesses := Extract(text)

	if !reflect.DeepEqual(strengths, []string{"Clarity", "Rigor"}) {
		t.Fatalf("unexpected strengths: %v", strengths)
	}
	if !reflect.DeepEqual(weaknesses, []string{"Pacing"}) {
		t.Fatalf("unexpected weaknesses: %v", weaknesses)
	}
}

func TestExtract_CaseInsensitiveHeadings(t *testing.T) {
	text := "key strengths:\n- Mentoring\nAREAS OF IMPROVEMENT:\n- Publication cadence\n"

	strengths, weaknesses := Extract(text)

	if !reflect.DeepEqual(strengths, []string{"Mentoring"}) {
		t.Fatalf("unexpected strengths: %v", strengths)
	}
	if !reflect.DeepEqual(weaknesses, []string{"Publication cadence"}) {
		t.Fatalf("unexpected weaknesses: %v", weaknesses)
	}
}

func TestExtract_SectionEndsAtFirstNonBulletLine(t *testing.T) {
	text := "Key Strengths:\n- Strong research output\n- Active grant pipeline\nSuggested Focus:\n- Edge AI\n"

	strengths, _ := Extract(text)

	if !reflect.DeepEqual(strengths, []string{"Strong research output", "Active grant pipeline"}) {
		t.Fatalf("unexpected strengths: %v", strengths)
	}
}

func TestExtract_NoHeadings(t *testing.T) {
	strengths, weaknesses := Extract("Just an unstructured paragraph of feedback.")

	if len(strengths) != 0 {
		t.Fatalf("expected empty strengths, got %v", strengths)
	}
	if len(weaknesses) != 0 {
		t.Fatalf("expected empty weaknesses, got %v", weaknesses)
	}
}

func TestTopKeywords_RanksByFrequency(t *testing.T) {
	got := TopKeywords([]string{"A", "B", "A", "C", "B", "A"}, 2)
	if !reflect.DeepEqual(got, []string{"A", "B"}) {
		t.Fatalf("expected [A B], got %v", got)
	}
}

func TestTopKeywords_TiesKeepFirstSeenOrder(t *testing.T) {
	got := TopKeywords([]string{"X", "Y", "Z", "Y", "X", "Z"}, 3)
	if !reflect.DeepEqual(got, []string{"X", "Y", "Z"}) {
		t.Fatalf("expected first-seen tie order [X Y Z], got %v", got)
	}
}

func TestTopKeywords_TrimsAndSkipsEmpty(t *testing.T) {
	got := TopKeywords([]string{" mentoring ", "mentoring", "  ", ""}, 5)
	if !reflect.DeepEqual(got, []string{"mentoring"}) {
		t.Fatalf("expected [mentoring], got %v", got)
	}
}

func TestTopKeywords_LimitLargerThanDistinct(t *testing.T) {
	got := TopKeywords([]string{"solo"}, 10)
	if !reflect.DeepEqual(got, []string{"solo"}) {
		t.Fatalf("expected [solo], got %v", got)
	}
}
