package models

import (
	"testing"
	"time"
)

func TestToTeacherTrimsIdentity(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	payload := &TeacherCreatePayload{
		Name:        "  Dr. Asha Rao  ",
		Designation: " Professor ",
		Department:  "SOC",
		Domain:      "Cybersecurity",
	}

	teacher := payload.ToTeacher(now)
	if teacher.Name != "Dr. Asha Rao" {
		t.Fatalf("expected trimmed name, got %q", teacher.Name)
	}
	if teacher.Designation != "Professor" {
		t.Fatalf("expected trimmed designation, got %q", teacher.Designation)
	}
	if !teacher.CreatedAt.Equal(now) || !teacher.UpdatedAt.Equal(now) {
		t.Fatalf("expected timestamps set to now, got %v / %v", teacher.CreatedAt, teacher.UpdatedAt)
	}
}

func TestToTeacherDropsIncompleteRecords(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	payload := &TeacherCreatePayload{
		Name:        "Dr. Asha Rao",
		Designation: "Professor",
		Department:  "SOC",
		Domain:      "AIA",
		Papers: []PaperPayload{
			{Title: "Graph Models", JournalCorpus: "IEEE Access", Quartile: "Q1", Year: 2024},
			{Title: "   ", JournalCorpus: "Springer", Year: 2023},
			{Title: "Edge Inference", JournalCorpus: "", Year: 2023},
			{Title: "Stream Joins", JournalCorpus: "ACM TODS", Quartile: "Q2", Year: 2022},
		},
		Workshops: []WorkshopPayload{
			{Title: "Kubernetes 101", ConductedBy: ""},
			{Title: "Threat Hunting", ConductedBy: "NASSCOM"},
		},
		Awards: []AwardPayload{
			{Name: "", GivenBy: "UGC"},
			{Name: "Best Teacher", GivenBy: "AICTE", Year: 2024},
		},
	}

	teacher := payload.ToTeacher(now)

	if len(teacher.Papers) != 2 {
		t.Fatalf("expected 2 papers to survive, got %d", len(teacher.Papers))
	}
	if teacher.Papers[0].Title != "Graph Models" || teacher.Papers[1].Title != "Stream Joins" {
		t.Fatalf("expected surviving papers in submission order, got %q then %q",
			teacher.Papers[0].Title, teacher.Papers[1].Title)
	}
	if len(teacher.Workshops) != 1 || teacher.Workshops[0].Title != "Threat Hunting" {
		t.Fatalf("expected only the complete workshop, got %+v", teacher.Workshops)
	}
	if len(teacher.Awards) != 1 || teacher.Awards[0].Name != "Best Teacher" {
		t.Fatalf("expected only the complete award, got %+v", teacher.Awards)
	}
}

func TestToTeacherDefaults(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	payload := &TeacherCreatePayload{
		Name:        "Dr. Asha Rao",
		Designation: "Professor",
		Department:  "SOE",
		Domain:      "Core",
		Papers: []PaperPayload{
			{Title: "Untracked Year", JournalCorpus: "Elsevier"},
		},
		Workshops: []WorkshopPayload{
			{Title: "Data Pipelines", ConductedBy: "Infosys", Mode: "  "},
		},
		Awards: []AwardPayload{
			{Name: "Research Grant", GivenBy: "DST", Year: -1},
		},
	}

	teacher := payload.ToTeacher(now)

	if teacher.ExpectedHours != 20 {
		t.Fatalf("expected default expected_hours 20, got %d", teacher.ExpectedHours)
	}
	if teacher.Papers[0].Year != now.Year() {
		t.Fatalf("expected paper year to default to %d, got %d", now.Year(), teacher.Papers[0].Year)
	}
	if teacher.Workshops[0].Mode != "Online" {
		t.Fatalf("expected workshop mode to default to Online, got %q", teacher.Workshops[0].Mode)
	}
	if teacher.Awards[0].Year != now.Year() {
		t.Fatalf("expected award year to default to %d, got %d", now.Year(), teacher.Awards[0].Year)
	}
}

func TestToTeacherKeepsExplicitHours(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	payload := &TeacherCreatePayload{
		Name:          "Dr. Asha Rao",
		Designation:   "Professor",
		Department:    "DESIGN",
		Domain:        "AIEC",
		ExpectedHours: 30,
		HoursTaught:   25,
	}

	teacher := payload.ToTeacher(now)
	if teacher.ExpectedHours != 30 || teacher.HoursTaught != 25 {
		t.Fatalf("expected hours preserved, got %d/%d", teacher.ExpectedHours, teacher.HoursTaught)
	}
	if teacher.Papers == nil || teacher.Workshops == nil || teacher.Awards == nil {
		t.Fatal("expected empty slices rather than nil for sub-records")
	}
}
