package main

import (
	"path/filepath"

	"github.com/Veraticus/buybox-master/internal/tui"
	"github.com/spf13/cobra"
)

func viewCmd() *cobra.Command {
	var (
		target string
		flags  viewFlags
	)

	cmd := &cobra.Command{
		Use:   "view <file>",
		Short: "Explore an export interactively",
		Long: `Open the interactive dashboard for an export. Search, filter by status,
sort any column, switch the matching target and export the visible listings.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.close()

			session, err := a.session(cmd.Context(), args[0], target, flags)
			if err != nil {
				return err
			}

			return tui.Run(cmd.Context(), session,
				tui.WithSource(filepath.Base(args[0])),
				tui.WithExportDir(a.cfg.Export.Dir),
			)
		},
	}

	cmd.Flags().StringVarP(&target, "target", "t", "", "identity to match, or ALL (default from config)")
	flags.register(cmd)

	return cmd
}
