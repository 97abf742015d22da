// Package sheets mirrors submitted publication records into a Google
// spreadsheet, one row per paper.
package sheets

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/shivam-khode01/Faculty-appraisalSystem/models"
	"github.com/shivam-khode01/Faculty-appraisalSystem/pkg/logger"
)

type Mirror struct {
	log           zerolog.Logger
	service       *sheetsapi.Service
	spreadsheetID string
	appendRange   string
}

// NewMirror builds the Sheets client. Credentials come from
// GOOGLE_APPLICATION_CREDENTIALS_JSON (inline JSON) or
// GOOGLE_APPLICATION_CREDENTIALS (file path), falling back to application
// default credentials.
func NewMirror(ctx context.Context, spreadsheetID, appendRange string) (*Mirror, error) {
	if spreadsheetID == "" {
		return nil, fmt.Errorf("missing spreadsheet id")
	}
	if appendRange == "" {
		appendRange = "Sheet1!A1"
	}

	opts := append(clientOptionsFromEnv(), option.WithScopes(sheetsapi.SpreadsheetsScope))
	service, err := sheetsapi.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &Mirror{
		log:           logger.With("sheets-mirror"),
		service:       service,
		spreadsheetID: spreadsheetID,
		appendRange:   appendRange,
	}, nil
}

func clientOptionsFromEnv() []option.ClientOption {
	creds := strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS_JSON"))
	if creds == "" {
		creds = strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
	}
	opts := []option.ClientOption{}
	if creds == "" {
		return opts
	}
	if strings.HasPrefix(creds, "{") {
		opts = append(opts, option.WithCredentialsJSON([]byte(creds)))
	} else {
		opts = append(opts, option.WithCredentialsFile(creds))
	}
	return opts
}

// PaperRows flattens a teacher's papers into appendable sheet rows. A
// profile with no papers still produces one row with blank paper fields,
// quoting the stored name and designation.
func PaperRows(teacher *models.Teacher) [][]interface{} {
	if len(teacher.Papers) == 0 {
		return [][]interface{}{
			{teacher.Name, teacher.Designation, "", "", ""},
		}
	}

	rows := make([][]interface{}, 0, len(teacher.Papers))
	for _, paper := range teacher.Papers {
		rows = append(rows, []interface{}{
			teacher.Name,
			teacher.Designation,
			paper.Title,
			paper.JournalCorpus,
			paper.Quartile,
		})
	}
	return rows
}

// AppendPaperRows appends the teacher's paper rows to the spreadsheet. The
// caller must have durably persisted the profile first; a failure here
// surfaces as a request-level error and is never retried.
func (m *Mirror) AppendPaperRows(ctx context.Context, teacher *models.Teacher) error {
	valueRange := &sheetsapi.ValueRange{Values: PaperRows(teacher)}

	_, err := m.service.Spreadsheets.Values.
		Append(m.spreadsheetID, m.appendRange, valueRange).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to append rows to sheet: %w", err)
	}

	m.log.Info().Str("teacher", teacher.Name).Int("rows", len(valueRange.Values)).Msg("mirrored papers to sheet")
	return nil
}
