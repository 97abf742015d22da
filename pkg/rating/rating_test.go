package rating

import (
	"math"
	"testing"

	"github.com/shivam-khode01/Faculty-appraisalSystem/models"
)

func teacherWithCounters(papers, workshops, awards, hours int, feedback float64) *models.Teacher {
	t := &models.Teacher{
		HoursTaught:     hours,
		StudentFeedback: feedback,
	}
	for i := 0; i < papers; i++ {
		t.Papers = append(t.Papers, models.Paper{Title: "p", JournalCorpus: "j"})
	}
	for i := 0; i < workshops; i++ {
		t.Workshops = append(t.Workshops, models.Workshop{Title: "w", ConductedBy: "c"})
	}
	for i := 0; i < awards; i++ {
		t.Awards = append(t.Awards, models.Award{Name: "a", GivenBy: "g"})
	}
	return t
}

func TestAutoScore_AllCountersZero(t *testing.T) {
	score := AutoScore(&models.Teacher{})
	if score != 0 {
		t.Fatalf("expected 0 for empty profile, got %v", score)
	}
}

func TestAutoScore_AtThresholds(t *testing.T) {
	score := AutoScore(teacherWithCounters(5, 3, 2, 100, 8))
	if score != 100 {
		t.Fatalf("expected 100 at thresholds, got %v", score)
	}
}

func TestAutoScore_ClampsAboveThresholds(t *testing.T) {
	score := AutoScore(teacherWithCounters(10, 5, 3, 200, 10))
	if score != 100 {
		t.Fatalf("expected clamped 100 above thresholds, got %v", score)
	}
}

func TestAutoScore_PartialFactors(t *testing.T) {
	// 2/5 papers=40*0.3, 50/100 hours=50*0.2, 4/8 feedback=50*0.3,
	// 0 workshops, 1/2 awards=50*0.1
	score := AutoScore(teacherWithCounters(2, 0, 1, 50, 4))
	want := 40*0.3 + 50*0.2 + 50*0.3 + 0*0.1 + 50*0.1
	if math.Abs(score-want) > 1e-9 {
		t.Fatalf("expected %v, got %v", want, score)
	}
}

func TestFinalRating(t *testing.T) {
	cases := []struct {
		autoScore   float64
		adminRating float64
		want        float64
	}{
		{0, 0, 0.00},
		{100, 10, 10.00},
		{50, 5, 5.00},
		{75, 4, 6.45},
	}
	for _, tc := range cases {
		got := FinalRating(tc.autoScore, tc.adminRating)
		if got != tc.want {
			t.Fatalf("FinalRating(%v, %v) = %v, want %v", tc.autoScore, tc.adminRating, got, tc.want)
		}
	}
}

func TestFinalRating_RoundsToTwoDecimals(t *testing.T) {
	got := FinalRating(33.3, 7)
	// 3.33*0.7 + 7*0.3 = 4.431 -> 4.43
	if got != 4.43 {
		t.Fatalf("expected 4.43, got %v", got)
	}
}

func TestIsValidRating(t *testing.T) {
	for _, valid := range []float64{0, 5.5, 10} {
		if !IsValidRating(valid) {
			t.Fatalf("expected %v to be valid", valid)
		}
	}
	for _, invalid := range []float64{-0.1, 10.1, math.NaN()} {
		if IsValidRating(invalid) {
			t.Fatalf("expected %v to be invalid", invalid)
		}
	}
}
