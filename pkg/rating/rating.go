// Package rating computes the weighted performance score for a faculty
// profile and blends it with the administrator supplied rating.
package rating

import (
	"math"

	"github.com/shivam-khode01/Faculty-appraisalSystem/models"
)

// Per-factor weights. They sum to 1.0.
const (
	WeightPapers          = 0.3
	WeightTeachingHours   = 0.2
	WeightStudentFeedback = 0.3
	WeightWorkshops       = 0.1
	WeightAwards          = 0.1
)

// Per-factor thresholds. A counter at or above its threshold scores full
// marks for that factor; exceeding it is never penalized.
const (
	ThresholdPapers          = 5.0
	ThresholdTeachingHours   = 100.0
	ThresholdStudentFeedback = 8.0
	ThresholdWorkshops       = 3.0
	ThresholdAwards          = 2.0
)

// Blend of rescaled auto score and admin rating for the final rating.
const (
	AutoRatingWeight  = 0.7
	AdminRatingWeight = 0.3

	MinRating = 0.0
	MaxRating = 10.0
)

func factorScore(value, threshold float64) float64 {
	return math.Min(value/threshold, 1) * 100
}

// AutoScore returns the 0-100 performance score computed solely from the
// profile's counters. Pure; missing counters score zero.
func AutoScore(t *models.Teacher) float64 {
	researchScore := factorScore(float64(len(t.Papers)), ThresholdPapers)
	teachingScore := factorScore(float64(t.HoursTaught), ThresholdTeachingHours)
	feedbackScore := factorScore(t.StudentFeedback, ThresholdStudentFeedback)
	workshopsScore := factorScore(float64(len(t.Workshops)), ThresholdWorkshops)
	awardsScore := factorScore(float64(len(t.Awards)), ThresholdAwards)

	return researchScore*WeightPapers +
		teachingScore*WeightTeachingHours +
		feedbackScore*WeightStudentFeedback +
		workshopsScore*WeightWorkshops +
		awardsScore*WeightAwards
}

// FinalRating blends the 0-100 auto score (rescaled to 0-10) with the
// admin rating, 70/30, rounded to two decimals. The admin rating is assumed
// already validated to [0,10] at the boundary.
func FinalRating(autoScore, adminRating float64) float64 {
	autoOutOf10 := autoScore / 10
	final := autoOutOf10*AutoRatingWeight + adminRating*AdminRatingWeight
	return Round2(final)
}

// IsValidRating reports whether a rating lies in [0,10].
func IsValidRating(rating float64) bool {
	return !math.IsNaN(rating) && rating >= MinRating && rating <= MaxRating
}

// Round2 rounds to two decimal places, the precision ratings are stored and
// displayed with.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
