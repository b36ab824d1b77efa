package export

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/Veraticus/buybox-master/internal/common"
	"github.com/Veraticus/buybox-master/internal/model"
	"github.com/Veraticus/buybox-master/internal/service"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Rows above the listing header: title, blank, summary block, blank.
const summaryRows = 10

// SheetsWriter implements service.ReportWriter for Google Sheets.
type SheetsWriter struct {
	service *sheets.Service
	logger  *slog.Logger
	config  SheetsConfig
}

// NewSheetsWriter creates a new Google Sheets report writer.
func NewSheetsWriter(ctx context.Context, config SheetsConfig, logger *slog.Logger) (*SheetsWriter, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	srv, err := createSheetsService(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &SheetsWriter{
		config:  config,
		service: srv,
		logger:  logger,
	}, nil
}

// Write implements the ReportWriter interface.
func (w *SheetsWriter) Write(ctx context.Context, report service.Report) error {
	if len(report.Listings) == 0 {
		return ErrNothingToExport
	}

	w.logger.Info("starting sheets export",
		"listings", len(report.Listings),
		"target", report.Target)

	retryOpts := service.RetryOptions{
		MaxAttempts:  w.config.RetryAttempts,
		InitialDelay: w.config.RetryDelay,
		Multiplier:   2.0,
	}

	var spreadsheetID string
	var sheetID int64
	err := common.WithRetry(ctx, func() error {
		var getErr error
		spreadsheetID, sheetID, getErr = w.getOrCreateSpreadsheet(ctx)
		return getErr
	}, retryOpts)
	if err != nil {
		return fmt.Errorf("failed to get spreadsheet: %w", err)
	}

	err = common.WithRetry(ctx, func() error {
		return w.clearSheet(ctx, spreadsheetID)
	}, retryOpts)
	if err != nil {
		return fmt.Errorf("failed to clear sheet: %w", err)
	}

	values := prepareReportData(report)

	err = common.WithRetry(ctx, func() error {
		return w.writeData(ctx, spreadsheetID, values)
	}, retryOpts)
	if err != nil {
		return fmt.Errorf("failed to write data: %w", err)
	}

	if w.config.EnableFormatting {
		err = common.WithRetry(ctx, func() error {
			return w.applyFormatting(ctx, spreadsheetID, sheetID, len(values))
		}, retryOpts)
		if err != nil {
			// Data is already written; a missing style is not worth failing over
			w.logger.Warn("failed to apply formatting", "error", err)
		}
	}

	w.logger.Info("sheets export completed",
		"spreadsheet_id", spreadsheetID,
		"rows_written", len(values))

	return nil
}

// createSheetsService creates a Google Sheets API service.
func createSheetsService(ctx context.Context, config SheetsConfig) (*sheets.Service, error) {
	var tokenSource oauth2.TokenSource

	if config.ServiceAccountPath != "" {
		jsonKey, err := os.ReadFile(config.ServiceAccountPath)
		if err != nil {
			return nil, fmt.Errorf("unable to read service account key file: %w", err)
		}

		jwtConfig, err := google.JWTConfigFromJSON(jsonKey, sheets.SpreadsheetsScope)
		if err != nil {
			return nil, fmt.Errorf("unable to parse service account key: %w", err)
		}

		tokenSource = jwtConfig.TokenSource(ctx)
	} else {
		client := &oauth2.Config{
			ClientID:     config.ClientID,
			ClientSecret: config.ClientSecret,
			Endpoint:     google.Endpoint,
			Scopes:       []string{sheets.SpreadsheetsScope},
		}

		token := &oauth2.Token{
			RefreshToken: config.RefreshToken,
			TokenType:    "Bearer",
		}

		tokenSource = client.TokenSource(ctx, token)
	}

	httpClient := oauth2.NewClient(ctx, tokenSource)
	srv, err := sheets.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("unable to create sheets service: %w", err)
	}

	return srv, nil
}

// getOrCreateSpreadsheet returns the spreadsheet id and the id of the listing tab.
func (w *SheetsWriter) getOrCreateSpreadsheet(ctx context.Context) (string, int64, error) {
	if w.config.SpreadsheetID != "" {
		existing, err := w.service.Spreadsheets.Get(w.config.SpreadsheetID).Context(ctx).Do()
		if err != nil {
			return "", 0, fmt.Errorf("unable to access spreadsheet %s: %w", w.config.SpreadsheetID, err)
		}
		if sheet := findSheet(existing, w.config.SheetTitle); sheet != nil {
			return existing.SpreadsheetId, sheet.Properties.SheetId, nil
		}
		sheetID, err := w.addSheet(ctx, existing.SpreadsheetId)
		return existing.SpreadsheetId, sheetID, err
	}

	spreadsheet := &sheets.Spreadsheet{
		Properties: &sheets.SpreadsheetProperties{
			Title:    w.config.SpreadsheetName,
			TimeZone: w.config.TimeZone,
		},
		Sheets: []*sheets.Sheet{
			{
				Properties: &sheets.SheetProperties{
					Title: w.config.SheetTitle,
				},
			},
		},
	}

	created, err := w.service.Spreadsheets.Create(spreadsheet).Context(ctx).Do()
	if err != nil {
		return "", 0, fmt.Errorf("unable to create spreadsheet: %w", err)
	}

	w.logger.Info("created new spreadsheet",
		"id", created.SpreadsheetId,
		"url", created.SpreadsheetUrl)

	var sheetID int64
	if sheet := findSheet(created, w.config.SheetTitle); sheet != nil {
		sheetID = sheet.Properties.SheetId
	}
	return created.SpreadsheetId, sheetID, nil
}

func (w *SheetsWriter) addSheet(ctx context.Context, spreadsheetID string) (int64, error) {
	resp, err := w.service.Spreadsheets.BatchUpdate(spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			AddSheet: &sheets.AddSheetRequest{
				Properties: &sheets.SheetProperties{Title: w.config.SheetTitle},
			},
		}},
	}).Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("unable to add sheet %q: %w", w.config.SheetTitle, err)
	}
	if len(resp.Replies) == 0 || resp.Replies[0].AddSheet == nil {
		return 0, fmt.Errorf("unable to add sheet %q: empty reply", w.config.SheetTitle)
	}
	return resp.Replies[0].AddSheet.Properties.SheetId, nil
}

func findSheet(spreadsheet *sheets.Spreadsheet, title string) *sheets.Sheet {
	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties != nil && sheet.Properties.Title == title {
			return sheet
		}
	}
	return nil
}

// clearSheet clears all data from the listing tab.
func (w *SheetsWriter) clearSheet(ctx context.Context, spreadsheetID string) error {
	_, err := w.service.Spreadsheets.Values.Clear(spreadsheetID, w.sheetRange("A:Z"), &sheets.ClearValuesRequest{}).Context(ctx).Do()
	return err
}

func (w *SheetsWriter) sheetRange(cells string) string {
	return fmt.Sprintf("'%s'!%s", w.config.SheetTitle, cells)
}

// prepareReportData lays out the summary block followed by one row per listing.
func prepareReportData(report service.Report) [][]any {
	summary := report.Summary
	values := make([][]any, 0, summaryRows+1+len(report.Listings))

	target := report.Target
	if model.IsAllTarget(target) {
		target = "All identities"
	}

	values = append(values,
		[]any{"Buy Box Analysis", report.GeneratedAt.Format("Jan 2, 2006 15:04")},
		[]any{}, // Empty row
		[]any{"Target", target},
		[]any{"Total Listings", summary.Total},
		[]any{"Won", summary.Won},
		[]any{"Lost", summary.Lost},
		[]any{"Suppressed", summary.Suppressed},
		[]any{"Win Rate", fmt.Sprintf("%.1f%%", summary.WinRate)},
		[]any{"Average Gap", summary.AverageGap},
		[]any{}, // Empty row
	)

	header := make([]any, len(Header))
	for i, h := range Header {
		header[i] = h
	}
	values = append(values, header)

	for _, l := range report.Listings {
		values = append(values, []any{
			l.ASIN,
			l.Title,
			string(l.Status),
			l.OurPrice,
			l.BuyBoxPrice,
			l.Delta,
			l.BuyBoxSeller,
			l.Action,
		})
	}

	return values
}

// writeData writes the data to the spreadsheet.
func (w *SheetsWriter) writeData(ctx context.Context, spreadsheetID string, values [][]any) error {
	// Write in batches to avoid API limits
	for i := 0; i < len(values); i += w.config.BatchSize {
		end := min(i+w.config.BatchSize, len(values))

		batch := values[i:end]
		valueRange := &sheets.ValueRange{
			Values: batch,
		}

		_, err := w.service.Spreadsheets.Values.Update(spreadsheetID, w.sheetRange(fmt.Sprintf("A%d", i+1)), valueRange).
			ValueInputOption("RAW").
			Context(ctx).
			Do()

		if err != nil {
			return fmt.Errorf("failed to write batch starting at row %d: %w", i+1, err)
		}

		w.logger.Debug("wrote batch", "start_row", i+1, "rows", len(batch))
	}

	return nil
}

// applyFormatting applies formatting to the listing tab.
func (w *SheetsWriter) applyFormatting(ctx context.Context, spreadsheetID string, sheetID int64, totalRows int) error {
	batchUpdate := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: formattingRequests(sheetID, totalRows),
	}

	_, err := w.service.Spreadsheets.BatchUpdate(spreadsheetID, batchUpdate).Context(ctx).Do()
	return err
}

func formattingRequests(sheetID int64, totalRows int) []*sheets.Request {
	bold := func(startRow, endRow, startCol, endCol int64, size int64) *sheets.Request {
		return &sheets.Request{
			RepeatCell: &sheets.RepeatCellRequest{
				Range: &sheets.GridRange{
					SheetId:          sheetID,
					StartRowIndex:    startRow,
					EndRowIndex:      endRow,
					StartColumnIndex: startCol,
					EndColumnIndex:   endCol,
				},
				Cell: &sheets.CellData{
					UserEnteredFormat: &sheets.CellFormat{
						TextFormat: &sheets.TextFormat{Bold: true, FontSize: size},
					},
				},
				Fields: "userEnteredFormat.textFormat",
			},
		}
	}

	return []*sheets.Request{
		// Title
		bold(0, 1, 0, 2, 16),
		// Summary labels
		bold(2, summaryRows-1, 0, 1, 10),
		// Listing header
		bold(summaryRows, summaryRows+1, 0, int64(len(Header)), 10),
		// Price columns: Our Price, Buy Box Price, Delta
		{
			RepeatCell: &sheets.RepeatCellRequest{
				Range: &sheets.GridRange{
					SheetId:          sheetID,
					StartRowIndex:    summaryRows + 1,
					EndRowIndex:      int64(totalRows),
					StartColumnIndex: 3,
					EndColumnIndex:   6,
				},
				Cell: &sheets.CellData{
					UserEnteredFormat: &sheets.CellFormat{
						NumberFormat: &sheets.NumberFormat{
							Type:    "CURRENCY",
							Pattern: "$#,##0.00",
						},
					},
				},
				Fields: "userEnteredFormat.numberFormat",
			},
		},
		{
			AutoResizeDimensions: &sheets.AutoResizeDimensionsRequest{
				Dimensions: &sheets.DimensionRange{
					SheetId:    sheetID,
					Dimension:  "COLUMNS",
					StartIndex: 0,
					EndIndex:   int64(len(Header)),
				},
			},
		},
		// Freeze through the listing header
		{
			UpdateSheetProperties: &sheets.UpdateSheetPropertiesRequest{
				Properties: &sheets.SheetProperties{
					SheetId: sheetID,
					GridProperties: &sheets.GridProperties{
						FrozenRowCount: summaryRows + 1,
					},
				},
				Fields: "gridProperties.frozenRowCount",
			},
		},
	}
}
