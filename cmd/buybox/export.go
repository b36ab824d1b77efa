package main

import (
	"context"
	"fmt"

	"github.com/Veraticus/buybox-master/internal/cli"
	"github.com/Veraticus/buybox-master/internal/export"
	"github.com/Veraticus/buybox-master/internal/service"
	"github.com/spf13/cobra"
)

type exportOptions struct {
	target string
	view   viewFlags
	dir    string
	sheets bool
}

func exportCmd() *cobra.Command {
	var opts exportOptions

	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Export the classified listings to CSV or Google Sheets",
		Long: `Classify an export and write the listings that pass the filters to a
buybox-analysis-YYYY-MM-DD.csv file, or to the configured Google spreadsheet.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.close()

			return a.export(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.target, "target", "t", "", "identity to match, or ALL (default from config)")
	opts.view.register(cmd)
	cmd.Flags().StringVarP(&opts.dir, "dir", "d", "", "directory for the CSV file (default from config)")
	cmd.Flags().BoolVar(&opts.sheets, "sheets", false, "write to Google Sheets instead of a CSV file")

	return cmd
}

func (a *app) export(ctx context.Context, path string, opts exportOptions) error {
	session, err := a.session(ctx, path, opts.target, opts.view)
	if err != nil {
		return err
	}

	visible := session.Visible()
	if len(visible) == 0 {
		return export.ErrNothingToExport
	}

	if opts.sheets {
		writer, err := a.newReportWriter(ctx, a.cfg)
		if err != nil {
			return err
		}

		report := service.Report{
			GeneratedAt: a.now(),
			Target:      session.Target(),
			Listings:    visible,
			Summary:     session.Summary(),
		}
		if err := writer.Write(ctx, report); err != nil {
			return fmt.Errorf("failed to write to Google Sheets: %w", err)
		}

		fmt.Fprintln(a.out, cli.FormatSuccess(fmt.Sprintf("Wrote %s listings to Google Sheets", cli.FormatCount(len(visible)))))
		return nil
	}

	dir := opts.dir
	if dir == "" {
		dir = a.cfg.Export.Dir
	}

	file, err := export.WriteFile(dir, visible, a.now())
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, cli.FormatSuccess(fmt.Sprintf("Exported %s listings to %s", cli.FormatCount(len(visible)), file)))
	return nil
}
