package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"pwned/internal/domain"
)

func breachesCmd() *cobra.Command {
	var filter domain.BreachFilter

	cmd := &cobra.Command{
		Use:   "breaches [email]",
		Short: "List the breaches an email address appears in",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			breaches, err := appCtx.Breaches.BreachesForAccount(cmd.Context(), domain.Account(args[0]), filter)
			if err != nil {
				return err
			}
			if jsonOutput {
				return printJSON(cmd.OutOrStdout(), breaches)
			}
			if len(breaches) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No breaches found for %s\n", args[0])
				return nil
			}
			return printBreaches(cmd.OutOrStdout(), breaches)
		},
	}
	cmd.Flags().BoolVar(&filter.IncludeUnverified, "unverified", false, "include unverified breaches")
	cmd.Flags().BoolVar(&filter.Truncate, "truncate", false, "return breach names only")
	cmd.Flags().StringVar(&filter.Domain, "domain", "", "only breaches of this domain")
	return cmd
}

func catalogCmd() *cobra.Command {
	var domainName string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List every breach in the system",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			breaches, err := appCtx.Breaches.AllBreaches(cmd.Context(), domainName)
			if err != nil {
				return err
			}
			if jsonOutput {
				return printJSON(cmd.OutOrStdout(), breaches)
			}
			return printBreaches(cmd.OutOrStdout(), breaches)
		},
	}
	cmd.Flags().StringVar(&domainName, "domain", "", "only breaches of this domain")
	return cmd
}

func breachCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "breach [name]",
		Short: "Show a single breach",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := appCtx.Breaches.Breach(cmd.Context(), domain.BreachName(args[0]))
			if err != nil {
				return err
			}
			if jsonOutput {
				return printJSON(cmd.OutOrStdout(), b)
			}
			return printBreach(cmd.OutOrStdout(), b)
		},
	}
}

func dataClassesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dataclasses",
		Short: "List the data class names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			classes, err := appCtx.Breaches.DataClasses(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOutput {
				return printJSON(cmd.OutOrStdout(), classes)
			}
			for _, c := range classes {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
			return nil
		},
	}
}

func pastesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pastes [email]",
		Short: "List the pastes an email address appears in",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pastes, err := appCtx.Breaches.PastesForAccount(cmd.Context(), domain.Account(args[0]))
			if err != nil {
				return err
			}
			if jsonOutput {
				return printJSON(cmd.OutOrStdout(), pastes)
			}
			if len(pastes) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No pastes found for %s\n", args[0])
				return nil
			}
			return printPastes(cmd.OutOrStdout(), pastes)
		},
	}
}
