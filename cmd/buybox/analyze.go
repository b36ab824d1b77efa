package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/Veraticus/buybox-master/internal/cli"
	"github.com/Veraticus/buybox-master/internal/common"
	"github.com/Veraticus/buybox-master/internal/export"
	"github.com/Veraticus/buybox-master/internal/model"
	"github.com/Veraticus/buybox-master/internal/service"
	"github.com/spf13/cobra"
)

type analyzeOptions struct {
	target string
	view   viewFlags
	limit  int
	save   bool
	export bool
	output string
}

func analyzeCmd() *cobra.Command {
	var opts analyzeOptions

	cmd := &cobra.Command{
		Use:   "analyze <file>",
		Short: "Classify an export and print the Buy Box summary",
		Long: `Read a CSV or TSV product export, classify every listing against the
stored seller identities and print the summary with the matching listings.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.close()

			return a.analyze(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.target, "target", "t", "", "identity to match, or ALL (default from config)")
	opts.view.register(cmd)
	cmd.Flags().IntVarP(&opts.limit, "limit", "n", 25, "maximum listings to print (0 for all)")
	cmd.Flags().BoolVar(&opts.save, "save", false, "save the run to history")
	cmd.Flags().BoolVar(&opts.export, "export", false, "write the visible listings to a CSV file")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "table", "output format (table, json, yaml)")

	return cmd
}

// analysisOutput is the structured form of an analysis.
type analysisOutput struct {
	RunID    string          `json:"run_id,omitempty" yaml:"run_id,omitempty"`
	Source   string          `json:"source" yaml:"source"`
	Target   string          `json:"target" yaml:"target"`
	Rows     int             `json:"rows" yaml:"rows"`
	Dropped  int             `json:"dropped" yaml:"dropped"`
	Verdict  string          `json:"verdict" yaml:"verdict"`
	Summary  model.Summary   `json:"summary" yaml:"summary"`
	Listings []listingOutput `json:"listings" yaml:"listings"`
	Export   string          `json:"export,omitempty" yaml:"export,omitempty"`
}

func (a *app) analyze(ctx context.Context, path string, opts analyzeOptions) error {
	switch opts.output {
	case "table", "json", "yaml":
	default:
		return fmt.Errorf("unsupported output format %q (use table, json or yaml)", opts.output)
	}

	session, err := a.session(ctx, path, opts.target, opts.view)
	if err != nil {
		return err
	}

	result := session.Result()
	summary := session.Summary()
	visible := session.Visible()

	out := analysisOutput{
		Source:   filepath.Base(path),
		Target:   session.Target(),
		Rows:     session.RowCount(),
		Dropped:  result.Dropped,
		Verdict:  summary.Verdict(),
		Summary:  summary,
		Listings: toListingOutputs(visible),
	}

	if opts.save {
		runID, err := a.saveRun(ctx, path, session.Target(), result.Listings, summary, session.RowCount(), result.Dropped, opts.output == "table")
		if err != nil {
			return err
		}
		out.RunID = runID
	}

	if opts.export {
		file, err := export.WriteFile(a.cfg.Export.Dir, visible, a.now())
		switch {
		case errors.Is(err, export.ErrNothingToExport):
			slog.Warn("Nothing to export", "source", out.Source)
		case err != nil:
			return err
		default:
			out.Export = file
		}
	}

	if opts.output != "table" {
		return writeStructured(a.out, opts.output, out)
	}

	fmt.Fprintln(a.out, cli.RenderSummary(summary, session.Target()))
	if result.Dropped > 0 {
		fmt.Fprintln(a.out, cli.FormatWarning(fmt.Sprintf("Skipped %s rows without an ASIN", cli.FormatCount(result.Dropped))))
	}

	if len(visible) == 0 {
		fmt.Fprintln(a.out, cli.FormatInfo("No listings match the current filters"))
	} else {
		fmt.Fprintln(a.out, cli.RenderListings(visible, opts.limit))
	}

	if out.RunID != "" {
		fmt.Fprintln(a.out, cli.FormatSuccess("Saved run "+out.RunID))
	}
	if out.Export != "" {
		fmt.Fprintln(a.out, cli.FormatSuccess("Exported "+cli.FormatCount(len(visible))+" listings to "+out.Export))
	}
	return nil
}

// saveRun stores the classified listings, showing progress when interactive.
func (a *app) saveRun(ctx context.Context, path, target string, listings []model.Listing, summary model.Summary, rows, dropped int, showProgress bool) (string, error) {
	run := &model.Run{
		Source:   filepath.Base(path),
		Target:   target,
		Summary:  summary,
		RowCount: rows,
		Dropped:  dropped,
	}

	interrupts := cli.NewInterruptHandler(a.out, "Interrupted, rolling back the run...")
	ctx, stop := interrupts.HandleInterrupts(ctx)
	defer stop()

	var progress service.ProgressFunc
	if showProgress && len(listings) > 0 {
		progress = cli.NewProgress(a.out, len(listings), "Saving listings")
	}

	start := time.Now()
	if err := a.store.SaveRun(ctx, run, listings, progress); err != nil {
		if interrupts.WasInterrupted() {
			return "", fmt.Errorf("save interrupted: %w", err)
		}
		return "", fmt.Errorf("failed to save run: %w", err)
	}

	common.LogInfo("Saved run", common.Fields{
		"run_id":   run.ID,
		"listings": len(listings),
		"duration": time.Since(start),
	})
	return run.ID, nil
}
