package store

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	sheets "google.golang.org/api/sheets/v4"

	"github.com/jaychen/travel-planner/internal/models"
)

// SheetsConfig holds the connection settings for the backing spreadsheet.
type SheetsConfig struct {
	SpreadsheetID   string
	CredentialsJSON string // inline service-account key
	CredentialsFile string // or a path to one
}

// Sheets is the Google Sheets implementation of Store. One spreadsheet
// document holds everything; writes are irrevocable row appends and range
// updates with no local transaction log.
type Sheets struct {
	svc           *sheets.Service
	spreadsheetID string
	logger        *zap.Logger
}

var _ Store = (*Sheets)(nil)

// NewSheets builds the Sheets store and makes sure the Index sheet
// exists, creating it with its header row on first run.
func NewSheets(ctx context.Context, cfg SheetsConfig, logger *zap.Logger) (*Sheets, error) {
	if cfg.SpreadsheetID == "" {
		return nil, fmt.Errorf("spreadsheet ID is required")
	}

	opts := []option.ClientOption{option.WithScopes(sheets.SpreadsheetsScope)}
	switch {
	case cfg.CredentialsJSON != "":
		opts = append(opts, option.WithCredentialsJSON([]byte(cfg.CredentialsJSON)))
	case cfg.CredentialsFile != "":
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	default:
		return nil, fmt.Errorf("service-account credentials are required (JSON or file path)")
	}

	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}

	s := &Sheets{svc: svc, spreadsheetID: cfg.SpreadsheetID, logger: logger}
	if err := s.ensureIndexSheet(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// ListTrips implements Store.
func (s *Sheets) ListTrips(ctx context.Context) ([]models.Trip, error) {
	rows, err := s.readRows(ctx, models.IndexSheet, "A2:M")
	if err != nil {
		return nil, err
	}
	trips := make([]models.Trip, 0, len(rows))
	for _, row := range rows {
		if len(row) == 0 || row[0] == "" {
			continue
		}
		trips = append(trips, tripFromRow(row))
	}
	return trips, nil
}

// GetTrip implements Store.
func (s *Sheets) GetTrip(ctx context.Context, name string) (*models.Trip, error) {
	trips, err := s.ListTrips(ctx)
	if err != nil {
		return nil, err
	}
	for i := range trips {
		if trips[i].Name == name {
			return &trips[i], nil
		}
	}
	return nil, notFoundErr(name)
}

// CreateTrip implements Store. The itinerary sheet is created first and
// the index row appended second; if the index append fails the new sheet
// is deleted so a half-created trip never shows up in listings.
func (s *Sheets) CreateTrip(ctx context.Context, trip models.Trip) error {
	if err := trip.ValidateNew(); err != nil {
		return validationErr("%v", err)
	}

	trips, err := s.ListTrips(ctx)
	if err != nil {
		return err
	}
	for _, existing := range trips {
		if existing.Name == trip.Name {
			return conflictErr(trip.Name)
		}
	}
	titles, err := s.sheetIDs(ctx)
	if err != nil {
		return err
	}
	if _, taken := titles[trip.Name]; taken {
		return conflictErr(trip.Name)
	}

	sheetID, err := s.addSheet(ctx, trip.Name, int64(len(models.ItineraryHeaders)))
	if err != nil {
		return err
	}
	if err := s.appendRow(ctx, trip.Name, headerRow(models.ItineraryHeaders)); err != nil {
		s.deleteSheetQuietly(ctx, trip.Name, sheetID)
		return err
	}
	if err := s.appendRow(ctx, models.IndexSheet, tripToRow(trip)); err != nil {
		s.deleteSheetQuietly(ctx, trip.Name, sheetID)
		return err
	}

	s.logger.Info("Trip created",
		zap.String("trip", trip.Name),
		zap.String("start", trip.StartDate),
		zap.String("end", trip.EndDate))
	return nil
}

// UpdateTripMeta implements Store. Columns E through M of the matching
// index row are overwritten in place; concurrent writers race and the
// last one wins.
func (s *Sheets) UpdateTripMeta(ctx context.Context, name string, meta models.TripMeta) error {
	rows, err := s.readRows(ctx, models.IndexSheet, "A2:A")
	if err != nil {
		return err
	}
	rowNum := 0
	for i, row := range rows {
		if len(row) > 0 && row[0] == name {
			rowNum = i + 2 // values start at sheet row 2, below the header
			break
		}
	}
	if rowNum == 0 {
		return notFoundErr(name)
	}

	vr := &sheets.ValueRange{Values: [][]any{metaToRow(meta)}}
	rng := fmt.Sprintf("%s!E%d:M%d", models.IndexSheet, rowNum, rowNum)
	_, err = s.svc.Spreadsheets.Values.Update(s.spreadsheetID, rng, vr).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		return externalErr("update "+rng, err)
	}

	s.logger.Info("Trip meta updated", zap.String("trip", name))
	return nil
}

// GetItinerary implements Store.
func (s *Sheets) GetItinerary(ctx context.Context, name string) ([]models.ItineraryItem, error) {
	if err := s.requireSheet(ctx, name); err != nil {
		return nil, err
	}
	rows, err := s.readRows(ctx, name, "A2:F")
	if err != nil {
		return nil, err
	}
	items := make([]models.ItineraryItem, 0, len(rows))
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		items = append(items, itineraryFromRow(row))
	}
	return items, nil
}

// AddItineraryItem implements Store.
func (s *Sheets) AddItineraryItem(ctx context.Context, name string, item models.ItineraryItem) error {
	trip, err := s.GetTrip(ctx, name)
	if err != nil {
		return err
	}
	if err := item.Validate(); err != nil {
		return validationErr("%v", err)
	}
	item.DeriveMapLink(trip.Country)

	if err := s.appendRow(ctx, name, itineraryToRow(item)); err != nil {
		return err
	}
	s.logger.Info("Itinerary item added",
		zap.String("trip", name),
		zap.String("date", item.Date),
		zap.String("activity", item.Activity))
	return nil
}

// ListExpenses implements Store. A trip without an expense sheet yet
// yields an empty list, not an error.
func (s *Sheets) ListExpenses(ctx context.Context, name string) ([]models.ExpenseItem, error) {
	if _, err := s.GetTrip(ctx, name); err != nil {
		return nil, err
	}
	titles, err := s.sheetIDs(ctx)
	if err != nil {
		return nil, err
	}
	sheetName := expenseSheetName(name)
	if _, ok := titles[sheetName]; !ok {
		return []models.ExpenseItem{}, nil
	}
	rows, err := s.readRows(ctx, sheetName, "A2:E")
	if err != nil {
		return nil, err
	}
	items := make([]models.ExpenseItem, 0, len(rows))
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		items = append(items, expenseFromRow(row))
	}
	return items, nil
}

// AddExpense implements Store. The expense sheet is created lazily on the
// first expense of a trip.
func (s *Sheets) AddExpense(ctx context.Context, name string, item models.ExpenseItem) error {
	trip, err := s.GetTrip(ctx, name)
	if err != nil {
		return err
	}
	item.Normalize(trip.Country)
	if err := item.Validate(); err != nil {
		return validationErr("%v", err)
	}

	sheetName := expenseSheetName(name)
	titles, err := s.sheetIDs(ctx)
	if err != nil {
		return err
	}
	if _, ok := titles[sheetName]; !ok {
		if _, err := s.addSheet(ctx, sheetName, int64(len(models.ExpenseHeaders))); err != nil {
			return err
		}
		if err := s.appendRow(ctx, sheetName, headerRow(models.ExpenseHeaders)); err != nil {
			return err
		}
	}

	if err := s.appendRow(ctx, sheetName, expenseToRow(item)); err != nil {
		return err
	}
	s.logger.Info("Expense added",
		zap.String("trip", name),
		zap.String("category", item.Category),
		zap.String("amount", item.Amount))
	return nil
}

func (s *Sheets) ensureIndexSheet(ctx context.Context) error {
	titles, err := s.sheetIDs(ctx)
	if err != nil {
		return err
	}
	if _, ok := titles[models.IndexSheet]; ok {
		return nil
	}
	if _, err := s.addSheet(ctx, models.IndexSheet, int64(len(models.IndexHeaders))); err != nil {
		return err
	}
	return s.appendRow(ctx, models.IndexSheet, headerRow(models.IndexHeaders))
}

// sheetIDs returns the spreadsheet's sheet titles mapped to their IDs.
func (s *Sheets) sheetIDs(ctx context.Context) (map[string]int64, error) {
	doc, err := s.svc.Spreadsheets.Get(s.spreadsheetID).
		Fields("sheets.properties(sheetId,title)").
		Context(ctx).Do()
	if err != nil {
		return nil, externalErr("get spreadsheet", err)
	}
	titles := make(map[string]int64, len(doc.Sheets))
	for _, sh := range doc.Sheets {
		if sh.Properties != nil {
			titles[sh.Properties.Title] = sh.Properties.SheetId
		}
	}
	return titles, nil
}

func (s *Sheets) requireSheet(ctx context.Context, title string) error {
	titles, err := s.sheetIDs(ctx)
	if err != nil {
		return err
	}
	if _, ok := titles[title]; !ok {
		return notFoundErr(title)
	}
	return nil
}

func (s *Sheets) addSheet(ctx context.Context, title string, cols int64) (int64, error) {
	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			AddSheet: &sheets.AddSheetRequest{
				Properties: &sheets.SheetProperties{
					Title: title,
					GridProperties: &sheets.GridProperties{
						RowCount:    200,
						ColumnCount: cols,
					},
				},
			},
		}},
	}
	resp, err := s.svc.Spreadsheets.BatchUpdate(s.spreadsheetID, req).Context(ctx).Do()
	if err != nil {
		return 0, externalErr("add sheet "+title, err)
	}
	for _, r := range resp.Replies {
		if r.AddSheet != nil && r.AddSheet.Properties != nil {
			return r.AddSheet.Properties.SheetId, nil
		}
	}
	return 0, nil
}

func (s *Sheets) deleteSheetQuietly(ctx context.Context, title string, sheetID int64) {
	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			DeleteSheet: &sheets.DeleteSheetRequest{SheetId: sheetID},
		}},
	}
	if _, err := s.svc.Spreadsheets.BatchUpdate(s.spreadsheetID, req).Context(ctx).Do(); err != nil {
		s.logger.Warn("Failed to roll back sheet after create error",
			zap.String("sheet", title),
			zap.Error(err))
	}
}

// appendRow appends one row with RAW input so stored values round-trip
// byte for byte.
func (s *Sheets) appendRow(ctx context.Context, sheetName string, row []any) error {
	vr := &sheets.ValueRange{Values: [][]any{row}}
	rng := quoteTitle(sheetName) + "!A:Z"
	_, err := s.svc.Spreadsheets.Values.Append(s.spreadsheetID, rng, vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return externalErr("append to "+sheetName, err)
	}
	return nil
}

func (s *Sheets) readRows(ctx context.Context, sheetName, span string) ([][]string, error) {
	rng := fmt.Sprintf("%s!%s", quoteTitle(sheetName), span)
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return nil, externalErr("read "+rng, err)
	}
	rows := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		rows = append(rows, cellStrings(raw))
	}
	return rows, nil
}

func headerRow(headers []string) []any {
	row := make([]any, len(headers))
	for i, h := range headers {
		row[i] = h
	}
	return row
}

// quoteTitle wraps a sheet title for use in an A1 range.
func quoteTitle(title string) string {
	return "'" + strings.ReplaceAll(title, "'", "''") + "'"
}
