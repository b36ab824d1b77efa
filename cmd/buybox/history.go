package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/Veraticus/buybox-master/internal/cli"
	"github.com/Veraticus/buybox-master/internal/common"
	"github.com/spf13/cobra"
)

func historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Browse saved analysis runs",
	}

	cmd.AddCommand(historyListCmd())
	cmd.AddCommand(historyShowCmd())
	cmd.AddCommand(historyDeleteCmd())

	return cmd
}

func historyListCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved runs, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.close()

			return a.listRuns(cmd.Context(), limit)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum runs to show (0 for all)")

	return cmd
}

func historyShowCmd() *cobra.Command {
	var (
		limit  int
		output string
	)

	cmd := &cobra.Command{
		Use:   "show <run-id>",
		Short: "Show the summary and listings of a saved run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.close()

			return a.showRun(cmd.Context(), args[0], limit, output)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 25, "maximum listings to print (0 for all)")
	cmd.Flags().StringVarP(&output, "output", "o", "table", "output format (table, json, yaml)")

	return cmd
}

func historyDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <run-id>",
		Aliases: []string{"rm"},
		Short:   "Delete a saved run",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.close()

			return a.deleteRun(cmd.Context(), args[0])
		},
	}
}

func (a *app) listRuns(ctx context.Context, limit int) error {
	runs, err := a.store.GetRuns(ctx, limit)
	if err != nil {
		return fmt.Errorf("failed to load runs: %w", err)
	}

	fmt.Fprintln(a.out, cli.RenderRuns(runs))
	return nil
}

func (a *app) showRun(ctx context.Context, id string, limit int, output string) error {
	run, err := a.store.GetRun(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.NewUserError(fmt.Sprintf("Run %s not found.", id), err)
		}
		return fmt.Errorf("failed to load run: %w", err)
	}

	listings, err := a.store.GetRunListings(ctx, run.ID)
	if err != nil {
		return fmt.Errorf("failed to load run listings: %w", err)
	}

	if output != "table" {
		return writeStructured(a.out, output, analysisOutput{
			RunID:    run.ID,
			Source:   run.Source,
			Target:   run.Target,
			Rows:     run.RowCount,
			Dropped:  run.Dropped,
			Verdict:  run.Summary.Verdict(),
			Summary:  run.Summary,
			Listings: toListingOutputs(listings),
		})
	}

	fmt.Fprintln(a.out, cli.FormatTitle(fmt.Sprintf("%s  %s", run.Source, run.CreatedAt.Local().Format("2006-01-02 15:04"))))
	fmt.Fprintln(a.out, cli.RenderSummary(run.Summary, run.Target))
	if len(listings) > 0 {
		fmt.Fprintln(a.out, cli.RenderListings(listings, limit))
	}
	return nil
}

func (a *app) deleteRun(ctx context.Context, id string) error {
	if err := a.store.DeleteRun(ctx, id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.NewUserError(fmt.Sprintf("Run %s not found.", id), err)
		}
		return fmt.Errorf("failed to delete run: %w", err)
	}

	fmt.Fprintln(a.out, cli.FormatSuccess("Deleted run "+id))
	return nil
}
