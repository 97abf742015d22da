package sheets

import (
	"reflect"
	"testing"

	"github.com/shivam-khode01/Faculty-appraisalSystem/models"
)

func TestPaperRows_OneRowPerPaper(t *testing.T) {
	teacher := &models.Teacher{
		Name:        "Asha Verma",
		Designation: "Associate Professor",
		Papers: []models.Paper{
			{Title: "Stream joins", JournalCorpus: "VLDB", Quartile: "Q1", Year: 2024},
			{Title: "Window pruning", JournalCorpus: "SIGMOD", Quartile: "Q2", Year: 2025},
		},
	}

	rows := PaperRows(teacher)

	want := [][]interface{}{
		{"Asha Verma", "Associate Professor", "Stream joins", "VLDB", "Q1"},
		{"Asha Verma", "Associate Professor", "Window pruning", "SIGMOD", "Q2"},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Fatalf("unexpected rows: %v", rows)
	}
}

func TestPaperRows_BlankRowWhenNoPapers(t *testing.T) {
	teacher := &models.Teacher{Name: "Ravi Iyer", Designation: "Lecturer"}

	rows := PaperRows(teacher)

	want := [][]interface{}{{"Ravi Iyer", "Lecturer", "", "", ""}}
	if !reflect.DeepEqual(rows, want) {
		t.Fatalf("unexpected rows: %v", rows)
	}
}
