package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/buybox-master/internal/cli"
	"github.com/Veraticus/buybox-master/internal/common"
	"github.com/spf13/cobra"
)

func identitiesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "identities",
		Aliases: []string{"identity", "ids"},
		Short:   "Manage the seller names that count as us",
		Long: `Identities are the seller names that count as your own storefront.
A listing is won when its Buy Box seller matches one of them.`,
	}

	cmd.AddCommand(identitiesListCmd())
	cmd.AddCommand(identitiesAddCmd())
	cmd.AddCommand(identitiesRemoveCmd())
	cmd.AddCommand(identitiesResetCmd())

	return cmd
}

func identitiesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List seller identities",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.close()

			return a.listIdentities(cmd.Context())
		},
	}
}

func identitiesAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Add a seller identity",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.close()

			return a.addIdentity(cmd.Context(), strings.Join(args, " "))
		},
	}
}

func identitiesRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <name>",
		Aliases: []string{"rm"},
		Short:   "Remove a seller identity",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.close()

			return a.removeIdentity(cmd.Context(), strings.Join(args, " "))
		},
	}
}

func identitiesResetCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Restore the configured identities",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.close()

			return a.resetIdentities(cmd.Context(), yes)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")

	return cmd
}

func (a *app) listIdentities(ctx context.Context) error {
	identities, err := loadIdentities(ctx, a.store, a.cfg)
	if err != nil {
		return err
	}

	if len(identities) == 0 {
		fmt.Fprintln(a.out, cli.FormatWarning("No identities configured. Every listing will be lost or suppressed."))
		return nil
	}

	var b strings.Builder
	for i, name := range identities {
		fmt.Fprintf(&b, "%2d. %s", i+1, name)
		if i < len(identities)-1 {
			b.WriteString("\n")
		}
	}
	fmt.Fprintln(a.out, cli.RenderBox(cli.BoxIcon+" Seller Identities", b.String()))
	return nil
}

func (a *app) addIdentity(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return common.NewUserError("Identity name cannot be empty.", nil)
	}

	// Seed first so adding to a fresh database keeps the defaults
	if _, err := loadIdentities(ctx, a.store, a.cfg); err != nil {
		return err
	}

	if err := a.store.AddIdentity(ctx, name); err != nil {
		if errors.Is(err, common.ErrDuplicateEntry) {
			return common.NewUserError(fmt.Sprintf("Identity %q already exists.", name), err)
		}
		return fmt.Errorf("failed to add identity: %w", err)
	}

	fmt.Fprintln(a.out, cli.FormatSuccess(fmt.Sprintf("Added identity %q", name)))
	return nil
}

func (a *app) removeIdentity(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if _, err := loadIdentities(ctx, a.store, a.cfg); err != nil {
		return err
	}

	if err := a.store.RemoveIdentity(ctx, name); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.NewUserError(fmt.Sprintf("Identity %q not found.", name), err)
		}
		return fmt.Errorf("failed to remove identity: %w", err)
	}

	fmt.Fprintln(a.out, cli.FormatSuccess(fmt.Sprintf("Removed identity %q", name)))
	return nil
}

func (a *app) resetIdentities(ctx context.Context, yes bool) error {
	defaults := a.cfg.IdentitySet()

	if !yes {
		question := fmt.Sprintf("Replace the stored identities with the %d configured defaults?", len(defaults))
		ok, err := cli.Confirm(ctx, a.in, a.out, question)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(a.out, cli.FormatInfo("Reset cancelled"))
			return nil
		}
	}

	if err := a.store.SaveIdentities(ctx, defaults); err != nil {
		return fmt.Errorf("failed to reset identities: %w", err)
	}

	fmt.Fprintln(a.out, cli.FormatSuccess(fmt.Sprintf("Restored %d identities", len(defaults))))
	return nil
}
