package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/vrg/config"
	"github.com/katalvlaran/vrg/grammar"
	"github.com/katalvlaran/vrg/store"
)

func newGrammarsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grammars",
		Short: "Manage stored grammars",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list [name]",
			Short: "List stored grammars, optionally only those called name",
			Args:  cobra.MaximumNArgs(1),
			RunE: withStore(func(cmd *cobra.Command, s *store.Store, args []string) error {
				var (
					list []store.Summary
					err  error
				)
				if len(args) == 1 {
					list, err = s.FindByName(args[0])
				} else {
					list, err = s.List()
				}
				if err != nil {
					return err
				}
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "ID\tNAME\tCLUSTERING\tMODE\tSELECTION\tLAMBDA\tRULES\tBITS")
				for _, sm := range list {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\t%d\t%.1f\n",
						sm.ID, sm.Name, sm.Clustering, sm.Mode, sm.Selection, sm.Lambda, sm.Rules, sm.Cost)
				}
				return w.Flush()
			}),
		},
		&cobra.Command{
			Use:   "show ID",
			Short: "Print a stored grammar as YAML",
			Args:  cobra.ExactArgs(1),
			RunE: withStore(func(cmd *cobra.Command, s *store.Store, args []string) error {
				id, err := uuid.Parse(args[0])
				if err != nil {
					return errors.Wrapf(err, "grammar id %q", args[0])
				}
				gr, err := s.Get(id)
				if err != nil {
					return err
				}
				return grammar.Encode(cmd.OutOrStdout(), gr)
			}),
		},
		&cobra.Command{
			Use:   "delete ID",
			Short: "Delete a stored grammar",
			Args:  cobra.ExactArgs(1),
			RunE: withStore(func(cmd *cobra.Command, s *store.Store, args []string) error {
				id, err := uuid.Parse(args[0])
				if err != nil {
					return errors.Wrapf(err, "grammar id %q", args[0])
				}
				return s.Delete(id)
			}),
		},
	)

	return cmd
}

// withStore opens the configured store around fn.
func withStore(fn func(*cobra.Command, *store.Store, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if cfg.Store == "" {
			return errors.Wrap(config.ErrInvalid, "--store is required")
		}
		s, err := store.Open(cfg.Store)
		if err != nil {
			return err
		}
		defer s.Close()

		return fn(cmd, s, args)
	}
}
