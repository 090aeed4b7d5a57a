package sheets

import (
	"context"
	"fmt"
	"os"

	gsheets "google.golang.org/api/sheets/v4"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// NewSheetsService builds a Sheets client from service-account credentials,
// taken from GOOGLE_SHEETS_CREDENTIALS_JSON or a local file for development.
func NewSheetsService(ctx context.Context) (*gsheets.Service, error) {
	var credentials *google.Credentials
	var err error

	credentialsJSON := os.Getenv("GOOGLE_SHEETS_CREDENTIALS_JSON")
	if credentialsJSON != "" {
		credentials, err = google.CredentialsFromJSON(ctx, []byte(credentialsJSON), gsheets.SpreadsheetsScope)
	} else {
		b, readErr := os.ReadFile("configs/google-credentials.json")
		if readErr != nil {
			return nil, fmt.Errorf("unable to read Google credentials file: %w", readErr)
		}
		credentials, err = google.CredentialsFromJSON(ctx, b, gsheets.SpreadsheetsScope)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to load Google credentials: %w", err)
	}

	client := oauth2.NewClient(ctx, credentials.TokenSource)
	sheetsService, err := gsheets.New(client)
	if err != nil {
		return nil, fmt.Errorf("unable to create Google Sheets client: %w", err)
	}

	return sheetsService, nil
}

// ExportService mirrors the current catalog into a spreadsheet so the
// bookkeeping can be shared with people who live in Sheets.
type ExportService struct {
	sheetsService *gsheets.Service
}

func NewExportService(sheetsService *gsheets.Service) *ExportService {
	return &ExportService{
		sheetsService: sheetsService,
	}
}

func (s *ExportService) WriteRows(ctx context.Context, spreadsheetID string, values [][]interface{}) error {
	valueRange := &gsheets.ValueRange{Values: values}

	_, err := s.sheetsService.Spreadsheets.Values.
		Update(spreadsheetID, "A1", valueRange).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("unable to write spreadsheet: %w", err)
	}

	return nil
}
