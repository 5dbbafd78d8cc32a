package main

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newAccountCmd(app *cli) *cobra.Command {
	var truncate bool
	var domain string

	cmd := &cobra.Command{
		Use:   "account <account>",
		Short: "List breaches an account appears in",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.client()
			if err != nil {
				return err
			}
			account := args[0]

			start := time.Now()
			breaches, err := c.GetBreachesForAccount(account).Truncate(truncate).Domain(domain).Send(cmd.Context())
			elapsed := time.Since(start)
			if err != nil {
				return fmt.Errorf("account %s: %w", account, err)
			}
			log.Debug().Str("account", account).Int("breaches", len(breaches)).Dur("elapsed", elapsed).Msg("account lookup completed")

			if app.cfg.Output == "json" {
				return writeJSON(cmd.OutOrStdout(), breaches)
			}
			if len(breaches) == 0 {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "No breaches found for %s\n", account)
				return err
			}
			return writeBreaches(cmd.OutOrStdout(), breaches)
		},
	}

	cmd.Flags().BoolVar(&truncate, "truncate", false, "Return breach names only")
	cmd.Flags().StringVar(&domain, "domain", "", "Only breaches of this domain")
	return cmd
}

func newBreachesCmd(app *cli) *cobra.Command {
	var domain string

	cmd := &cobra.Command{
		Use:   "breaches",
		Short: "List every breach in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.client()
			if err != nil {
				return err
			}
			breaches, err := c.GetAllBreaches().Domain(domain).Send(cmd.Context())
			if err != nil {
				return err
			}
			log.Debug().Str("domain", domain).Int("breaches", len(breaches)).Msg("catalog fetched")

			if app.cfg.Output == "json" {
				return writeJSON(cmd.OutOrStdout(), breaches)
			}
			return writeBreaches(cmd.OutOrStdout(), breaches)
		},
	}

	cmd.Flags().StringVar(&domain, "domain", "", "Only breaches of this domain")
	return cmd
}

func newBreachCmd(app *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "breach <name>",
		Short: "Show a single breach by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.client()
			if err != nil {
				return err
			}
			b, err := c.GetBreach(args[0]).Send(cmd.Context())
			if err != nil {
				return err
			}
			if app.cfg.Output == "json" {
				return writeJSON(cmd.OutOrStdout(), b)
			}
			return writeBreachDetail(cmd.OutOrStdout(), b)
		},
	}
}

func newDataClassesCmd(app *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "dataclasses",
		Short: "List the kinds of data exposed in breaches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.client()
			if err != nil {
				return err
			}
			classes, err := c.GetDataClasses().Send(cmd.Context())
			if err != nil {
				return err
			}
			if app.cfg.Output == "json" {
				return writeJSON(cmd.OutOrStdout(), classes)
			}
			for _, class := range classes {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), class); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newPastesCmd(app *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "pastes <account>",
		Short: "List pastes an account appears in",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.client()
			if err != nil {
				return err
			}
			account := args[0]
			pastes, err := c.GetPastesForAccount(account).Send(cmd.Context())
			if err != nil {
				return fmt.Errorf("pastes for %s: %w", account, err)
			}
			if app.cfg.Output == "json" {
				return writeJSON(cmd.OutOrStdout(), pastes)
			}
			if len(pastes) == 0 {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "No pastes found for %s\n", account)
				return err
			}
			return writePastes(cmd.OutOrStdout(), pastes)
		},
	}
}
