package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Departments is the fixed set of schools/departments a teacher can belong to.
var Departments = []string{"SOC", "SOE", "ISBJ", "MITCOM", "VEDIC-SCIENCE", "CIVIL SERVICE", "DESIGN", "Core"}

// Domains is the fixed set of research/teaching domains.
var Domains = []string{"AIA", "Cybersecurity", "Big Data", "AIEC", "Cloud Computing", "Core"}

type Paper struct {
	Title         string `bson:"title" json:"title"`
	JournalCorpus string `bson:"journal_corpus" json:"journal_corpus"`
	Quartile      string `bson:"quartile" json:"quartile"`
	Year          int    `bson:"year" json:"year"`
}

type Workshop struct {
	Title       string `bson:"title" json:"title"`
	ConductedBy string `bson:"conducted_by" json:"conducted_by"`
	Mode        string `bson:"mode" json:"mode"`
}

type Award struct {
	Name    string `bson:"name" json:"name"`
	GivenBy string `bson:"given_by" json:"given_by"`
	Year    int    `bson:"year" json:"year"`
}

type Teacher struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Designation string             `bson:"designation" json:"designation"`
	Department  string             `bson:"department" json:"department"`
	Domain      string             `bson:"domain" json:"domain"`

	ExpectedHours   int     `bson:"expected_hours" json:"expected_hours"`
	HoursTaught     int     `bson:"hours_taught" json:"hours_taught"`
	StudentFeedback float64 `bson:"student_feedback" json:"student_feedback"`

	Papers    []Paper    `bson:"papers" json:"papers"`
	Workshops []Workshop `bson:"workshops" json:"workshops"`
	Awards    []Award    `bson:"awards" json:"awards"`

	AdminRating float64 `bson:"admin_rating" json:"admin_rating"`
	FinalRating float64 `bson:"final_rating" json:"final_rating"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// TeacherWithRating is a Teacher enriched with the computed auto rating
// rescaled to 0-10, as shown on the admin dashboard.
type TeacherWithRating struct {
	Teacher    `bson:",inline"`
	AutoRating float64 `json:"auto_rating"`
}

type PaperPayload struct {
	Title         string `json:"title"`
	JournalCorpus string `json:"journal_corpus"`
	Quartile      string `json:"quartile"`
	Year          int    `json:"year"`
}

type WorkshopPayload struct {
	Title       string `json:"title"`
	ConductedBy string `json:"conducted_by"`
	Mode        string `json:"mode"`
}

type AwardPayload struct {
	Name    string `json:"name"`
	GivenBy string `json:"given_by"`
	Year    int    `json:"year"`
}

type TeacherCreatePayload struct {
	Name            string            `json:"name" validate:"required,min=2,max=100"`
	Designation     string            `json:"designation" validate:"required,min=2,max=100"`
	Department      string            `json:"department" validate:"required,department"`
	Domain          string            `json:"domain" validate:"required,domain"`
	ExpectedHours   int               `json:"expected_hours" validate:"omitempty,min=0"`
	HoursTaught     int               `json:"hours_taught" validate:"omitempty,min=0"`
	StudentFeedback float64           `json:"student_feedback" validate:"omitempty,min=0"`
	Papers          []PaperPayload    `json:"papers"`
	Workshops       []WorkshopPayload `json:"workshops"`
	Awards          []AwardPayload    `json:"awards"`
}

// ToTeacher normalizes the payload into a persistable Teacher. Sub-records
// are kept only when both the title/name and its companion field survive
// trimming; incomplete entries are dropped, order is preserved. Unset year
// fields fall back to the current calendar year, unset workshop mode to
// "Online", unset expected hours to 20.
func (p *TeacherCreatePayload) ToTeacher(now time.Time) *Teacher {
	t := &Teacher{
		Name:            strings.TrimSpace(p.Name),
		Designation:     strings.TrimSpace(p.Designation),
		Department:      p.Department,
		Domain:          p.Domain,
		ExpectedHours:   p.ExpectedHours,
		HoursTaught:     p.HoursTaught,
		StudentFeedback: p.StudentFeedback,
		Papers:          []Paper{},
		Workshops:       []Workshop{},
		Awards:          []Award{},
		AdminRating:     0,
		FinalRating:     0,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if t.ExpectedHours == 0 {
		t.ExpectedHours = 20
	}
	if t.HoursTaught < 0 {
		t.HoursTaught = 0
	}

	for _, paper := range p.Papers {
		title := strings.TrimSpace(paper.Title)
		journal := strings.TrimSpace(paper.JournalCorpus)
		if title == "" || journal == "" {
			continue
		}
		year := paper.Year
		if year <= 0 {
			year = now.Year()
		}
		t.Papers = append(t.Papers, Paper{
			Title:         title,
			JournalCorpus: journal,
			Quartile:      strings.TrimSpace(paper.Quartile),
			Year:          year,
		})
	}

	for _, workshop := range p.Workshops {
		title := strings.TrimSpace(workshop.Title)
		conductedBy := strings.TrimSpace(workshop.ConductedBy)
		if title == "" || conductedBy == "" {
			continue
		}
		mode := strings.TrimSpace(workshop.Mode)
		if mode == "" {
			mode = "Online"
		}
		t.Workshops = append(t.Workshops, Workshop{
			Title:       title,
			ConductedBy: conductedBy,
			Mode:        mode,
		})
	}

	for _, award := range p.Awards {
		name := strings.TrimSpace(award.Name)
		givenBy := strings.TrimSpace(award.GivenBy)
		if name == "" || givenBy == "" {
			continue
		}
		year := award.Year
		if year <= 0 {
			year = now.Year()
		}
		t.Awards = append(t.Awards, Award{
			Name:    name,
			GivenBy: givenBy,
			Year:    year,
		})
	}

	return t
}

// RatingPayload carries the admin supplied rating. A pointer distinguishes
// "missing" from an explicit zero.
type RatingPayload struct {
	AdminRating *float64 `json:"admin_rating" validate:"required,min=0,max=10"`
}

type DepartmentStats struct {
	Papers    int     `json:"papers"`
	Workshops int     `json:"workshops"`
	Awards    int     `json:"awards"`
	Teaching  int     `json:"teaching"`
	Feedback  float64 `json:"feedback"`
}
