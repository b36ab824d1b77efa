package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/Veraticus/buybox-master/internal/config"
	"github.com/Veraticus/buybox-master/internal/engine"
	"github.com/Veraticus/buybox-master/internal/export"
	"github.com/Veraticus/buybox-master/internal/ingest"
	"github.com/Veraticus/buybox-master/internal/model"
	"github.com/Veraticus/buybox-master/internal/service"
	"github.com/Veraticus/buybox-master/internal/storage"
	"github.com/Veraticus/buybox-master/internal/view"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// initStorage opens the configured database and applies migrations.
func initStorage(ctx context.Context, cfg *config.Config) (*storage.SQLiteStorage, error) {
	store, err := storage.NewSQLiteStorage(cfg.Database.Path)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// loadIdentities returns the stored identities, seeding them from config on first use.
func loadIdentities(ctx context.Context, store *storage.SQLiteStorage, cfg *config.Config) (model.IdentitySet, error) {
	identities, err := store.EnsureIdentities(ctx, cfg.IdentitySet())
	if err != nil {
		return nil, fmt.Errorf("failed to load identities: %w", err)
	}
	return identities, nil
}

// viewFlags mirror the view state on the command line.
type viewFlags struct {
	search string
	status string
	sort   string
	desc   bool
}

func (f *viewFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.search, "search", "", "only show listings whose ASIN or title contains this text")
	cmd.Flags().StringVar(&f.status, "status", "all", "only show one status (all, won, lost, suppressed)")
	cmd.Flags().StringVar(&f.sort, "sort", "", "sort by column (asin, title, status, our-price, bb-price, delta, seller, action)")
	cmd.Flags().BoolVar(&f.desc, "desc", false, "sort descending")
}

// state converts the flags into a view state.
func (f viewFlags) state() (view.State, error) {
	state := view.DefaultState().WithSearch(f.search)

	filter, err := view.ParseStatusFilter(f.status)
	if err != nil {
		return state, err
	}
	state = state.WithStatusFilter(filter)

	if f.sort != "" {
		key, err := view.ParseSortKey(f.sort)
		if err != nil {
			return state, err
		}
		direction := view.Ascending
		if f.desc {
			direction = view.Descending
		}
		state.Sort = &view.Sort{Key: key, Direction: direction}
	}
	return state, nil
}

// sessionRequest describes the file and options behind a session.
type sessionRequest struct {
	path       string
	target     string
	identities model.IdentitySet
	flags      viewFlags
}

// openSession reads path and classifies it with the requested view applied.
func openSession(ctx context.Context, req sessionRequest) (*engine.Session, error) {
	state, err := req.flags.state()
	if err != nil {
		return nil, err
	}

	rows, err := ingest.ReadFile(ctx, req.path)
	if err != nil {
		return nil, err
	}

	session := engine.NewSession(rows, req.target, req.identities)
	session.SetState(state)

	slog.Debug("Classified export",
		"file", filepath.Base(req.path),
		"rows", len(rows),
		"listings", len(session.Listings()),
		"dropped", session.Result().Dropped,
		"target", session.Target())

	return session, nil
}

// resolveTarget prefers an explicit flag over the configured default.
func resolveTarget(flag string, cfg *config.Config) string {
	if flag != "" {
		return flag
	}
	return cfg.Analysis.Target
}

// listingOutput is the serialized form of a listing.
type listingOutput struct {
	ID           string  `json:"id" yaml:"id"`
	ASIN         string  `json:"asin" yaml:"asin"`
	Title        string  `json:"title" yaml:"title"`
	ImageURL     string  `json:"image_url,omitempty" yaml:"image_url,omitempty"`
	Status       string  `json:"status" yaml:"status"`
	OurPrice     float64 `json:"our_price" yaml:"our_price"`
	BuyBoxPrice  float64 `json:"buy_box_price" yaml:"buy_box_price"`
	Delta        float64 `json:"delta" yaml:"delta"`
	BuyBoxSeller string  `json:"buy_box_seller" yaml:"buy_box_seller"`
	Action       string  `json:"action" yaml:"action"`
}

func toListingOutputs(listings []model.Listing) []listingOutput {
	out := make([]listingOutput, 0, len(listings))
	for _, l := range listings {
		out = append(out, listingOutput{
			ID:           l.ID,
			ASIN:         l.ASIN,
			Title:        l.Title,
			ImageURL:     l.ImageURL,
			Status:       string(l.Status),
			OurPrice:     l.OurPrice,
			BuyBoxPrice:  l.BuyBoxPrice,
			Delta:        l.Delta,
			BuyBoxSeller: l.BuyBoxSeller,
			Action:       l.Action,
		})
	}
	return out
}

// writeStructured writes v as json or yaml.
func writeStructured(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unsupported output format %q (use table, json or yaml)", format)
}

// app bundles what the commands share.
type app struct {
	cfg   *config.Config
	store *storage.SQLiteStorage
	in    io.Reader
	out   io.Writer
	now   func() time.Time

	// newReportWriter builds the Google Sheets writer; tests swap it.
	newReportWriter func(ctx context.Context, cfg *config.Config) (service.ReportWriter, error)
}

// newApp loads configuration and opens storage for cmd.
func newApp(cmd *cobra.Command) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	store, err := initStorage(cmd.Context(), cfg)
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:             cfg,
		store:           store,
		in:              cmd.InOrStdin(),
		out:             cmd.OutOrStdout(),
		now:             time.Now,
		newReportWriter: newSheetsWriter,
	}, nil
}

func (a *app) close() {
	if err := a.store.Close(); err != nil {
		slog.Error("Failed to close database", "error", err)
	}
}

func newSheetsWriter(ctx context.Context, cfg *config.Config) (service.ReportWriter, error) {
	sheetsCfg, err := cfg.SheetsWriterConfig()
	if err != nil {
		return nil, err
	}
	writer, err := export.NewSheetsWriter(ctx, sheetsCfg, slog.Default())
	if err != nil {
		return nil, err
	}
	return writer, nil
}

// session opens path against the stored identities.
func (a *app) session(ctx context.Context, path, target string, flags viewFlags) (*engine.Session, error) {
	identities, err := loadIdentities(ctx, a.store, a.cfg)
	if err != nil {
		return nil, err
	}
	return openSession(ctx, sessionRequest{
		path:       path,
		target:     resolveTarget(target, a.cfg),
		identities: identities,
		flags:      flags,
	})
}
