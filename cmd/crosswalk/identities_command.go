package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"crosswalk/internal/identity"
)

func newIdentitiesCommand(ctx *commandContext) *cobra.Command {
	identitiesCmd := &cobra.Command{
		Use:   "identities",
		Short: "Inspect and manage persistent consumer identifiers",
	}

	identitiesCmd.AddCommand(newIdentitiesListCommand(ctx))
	identitiesCmd.AddCommand(newIdentitiesClearCommand(ctx))

	return identitiesCmd
}

func newIdentitiesListCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List persisted record-to-consumer assignments",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			store, err := identity.Open(cfg.Paths.IdentityDB)
			if err != nil {
				return err
			}
			defer store.Close()

			entries, err := store.Load(cmd.Context())
			if err != nil {
				return err
			}

			if jsonOutput {
				return writeJSON(cmd, entries)
			}

			keys := make([]string, 0, len(entries))
			for key := range entries {
				keys = append(keys, key)
			}
			sort.Strings(keys)

			rows := make([][]string, 0, len(keys))
			for _, key := range keys {
				rows = append(rows, []string{key, entries[key]})
			}

			out := cmd.OutOrStdout()
			if len(rows) == 0 {
				fmt.Fprintln(out, "No persisted identities")
				return nil
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Record", "Consumer ID"},
				rows,
				[]columnAlignment{alignLeft, alignLeft},
			))
			fmt.Fprintf(out, "%d identities in %s\n", len(rows), store.Path())
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit assignments as JSON")
	return cmd
}

func newIdentitiesClearCommand(ctx *commandContext) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all persisted consumer identifier assignments",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !force {
				return fmt.Errorf("refusing to clear %s without --force", cfg.Paths.IdentityDB)
			}

			store, err := identity.Open(cfg.Paths.IdentityDB)
			if err != nil {
				return err
			}
			defer store.Close()

			count, err := store.Count(cmd.Context())
			if err != nil {
				return err
			}
			if err := store.Clear(cmd.Context()); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d identities from %s\n", count, store.Path())
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Confirm deletion of all persisted identities")
	return cmd
}
