package export

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Veraticus/buybox-master/internal/common"
	"github.com/Veraticus/buybox-master/internal/model"
	"github.com/Veraticus/buybox-master/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

func TestSheetsConfig_Validate(t *testing.T) {
	oauth := func() SheetsConfig {
		c := DefaultSheetsConfig()
		c.ClientID = "client"
		c.ClientSecret = "secret"
		c.RefreshToken = "token"
		return c
	}

	tests := []struct {
		name   string
		errMsg string
		config func() SheetsConfig
	}{
		{
			name:   "valid oauth config",
			config: oauth,
		},
		{
			name: "valid service account config",
			config: func() SheetsConfig {
				c := DefaultSheetsConfig()
				c.ServiceAccountPath = "/path/to/key.json"
				return c
			},
		},
		{
			name:   "missing auth",
			config: DefaultSheetsConfig,
			errMsg: "no authentication method configured",
		},
		{
			name: "multiple auth methods",
			config: func() SheetsConfig {
				c := oauth()
				c.ServiceAccountPath = "/path/to/key.json"
				return c
			},
			errMsg: "multiple authentication methods configured",
		},
		{
			name: "invalid batch size",
			config: func() SheetsConfig {
				c := oauth()
				c.BatchSize = 0
				return c
			},
			errMsg: "batch size must be positive",
		},
		{
			name: "negative retry delay",
			config: func() SheetsConfig {
				c := oauth()
				c.RetryDelay = -time.Second
				return c
			},
			errMsg: "retry delay cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := tt.config()
			err := config.Validate()
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestNewSheetsWriter_InvalidConfig(t *testing.T) {
	_, err := NewSheetsWriter(context.Background(), DefaultSheetsConfig(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestPrepareReportData(t *testing.T) {
	report := service.Report{
		GeneratedAt: time.Date(2024, 3, 9, 10, 30, 0, 0, time.UTC),
		Target:      "ALL",
		Listings:    []model.Listing{sampleListing()},
		Summary:     model.Summary{Total: 1, Lost: 1, AverageGap: 3},
	}

	values := prepareReportData(report)
	require.Len(t, values, summaryRows+2)

	assert.Equal(t, []any{"Buy Box Analysis", "Mar 9, 2024 10:30"}, values[0])
	assert.Equal(t, []any{"Target", "All identities"}, values[2])
	assert.Equal(t, []any{"Lost", 1}, values[5])
	assert.Equal(t, []any{"Win Rate", "0.0%"}, values[7])
	assert.Equal(t, "ASIN", values[summaryRows][0])
	assert.Len(t, values[summaryRows], len(Header))

	row := values[summaryRows+1]
	assert.Equal(t, "B000TEST01", row[0])
	assert.Equal(t, "LOST", row[2])
	assert.InDelta(t, 15.0, row[3], 0.001)
}

func TestPrepareReportData_SpecificTarget(t *testing.T) {
	values := prepareReportData(service.Report{Target: "SecuLife", Listings: []model.Listing{sampleListing()}})
	assert.Equal(t, []any{"Target", "SecuLife"}, values[2])
}

func TestFormattingRequests(t *testing.T) {
	requests := formattingRequests(42, summaryRows+5)
	require.NotEmpty(t, requests)

	last := requests[len(requests)-1]
	require.NotNil(t, last.UpdateSheetProperties)
	assert.Equal(t, int64(42), last.UpdateSheetProperties.Properties.SheetId)
	assert.Equal(t, int64(summaryRows+1), last.UpdateSheetProperties.Properties.GridProperties.FrozenRowCount)

	for _, r := range requests {
		if r.RepeatCell != nil {
			assert.Equal(t, int64(42), r.RepeatCell.Range.SheetId)
		}
	}
}

func TestMockWriter(t *testing.T) {
	var w service.ReportWriter = NewMockWriter()
	require.NoError(t, w.Write(context.Background(), service.Report{Target: "ALL"}))

	mock := w.(*MockWriter)
	assert.Equal(t, 1, mock.Calls())
	assert.Equal(t, "ALL", mock.LastReport.Target)
}

// fakeSheetsAPI serves the Sheets endpoints Write uses. The first
// failClears clear calls answer 503.
type fakeSheetsAPI struct {
	mu         sync.Mutex
	clears     int
	updates    int
	failClears int
}

func (f *fakeSheetsAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	path := r.URL.Path

	switch {
	case r.Method == http.MethodGet && path == "/v4/spreadsheets/sheet-123":
		fmt.Fprint(w, `{"spreadsheetId":"sheet-123","sheets":[{"properties":{"sheetId":42,"title":"Listings"}}]}`)
	case r.Method == http.MethodPost && strings.HasSuffix(path, ":clear"):
		f.clears++
		if f.clears <= f.failClears {
			w.WriteHeader(http.StatusServiceUnavailable)
			fmt.Fprint(w, `{"error":{"code":503,"message":"backend unavailable"}}`)
			return
		}
		fmt.Fprint(w, `{"spreadsheetId":"sheet-123"}`)
	case r.Method == http.MethodPut && strings.Contains(path, "/values/"):
		f.updates++
		fmt.Fprint(w, `{"spreadsheetId":"sheet-123"}`)
	default:
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprintf(w, `{"error":{"code":404,"message":"unexpected %s %s"}}`, r.Method, path)
	}
}

func newFakeSheetsWriter(t *testing.T, api *fakeSheetsAPI) *SheetsWriter {
	t.Helper()

	server := httptest.NewServer(api)
	t.Cleanup(server.Close)

	srv, err := sheets.NewService(context.Background(),
		option.WithEndpoint(server.URL+"/"),
		option.WithHTTPClient(server.Client()),
	)
	require.NoError(t, err)

	config := DefaultSheetsConfig()
	config.SpreadsheetID = "sheet-123"
	config.RetryAttempts = 3
	config.RetryDelay = time.Millisecond
	config.EnableFormatting = false

	return &SheetsWriter{
		service: srv,
		config:  config,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestSheetsWriter_Write_RetriesClear(t *testing.T) {
	api := &fakeSheetsAPI{failClears: 2}
	w := newFakeSheetsWriter(t, api)

	report := service.Report{
		GeneratedAt: time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC),
		Target:      model.TargetAll,
		Listings:    []model.Listing{sampleListing()},
	}
	require.NoError(t, w.Write(context.Background(), report))

	api.mu.Lock()
	defer api.mu.Unlock()
	assert.Equal(t, 3, api.clears)
	assert.Equal(t, 1, api.updates)
}

func TestSheetsWriter_Write_ClearGivesUp(t *testing.T) {
	api := &fakeSheetsAPI{failClears: 10}
	w := newFakeSheetsWriter(t, api)

	report := service.Report{Target: model.TargetAll, Listings: []model.Listing{sampleListing()}}
	err := w.Write(context.Background(), report)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrMaxRetries)
	assert.Contains(t, err.Error(), "failed to clear sheet")

	api.mu.Lock()
	defer api.mu.Unlock()
	assert.Equal(t, 3, api.clears)
	assert.Zero(t, api.updates)
}
