package main

import (
	"go-currency-converter"
	"go-currency-converter/convert"
	"go-currency-converter/terminal"

	"github.com/go-kit/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

func newReplCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Convert interactively on the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			provider := newProvider(cfg, logger, prometheus.NewRegistry())
			ctx := cmd.Context()

			rates := make(chan converter.Rates, 1)
			go func() {
				defer close(rates)
				table, err := provider.Load(ctx)
				if err == nil {
					rates <- table
				}
			}()

			form := convert.NewFormWith(cfg.Defaults.Source, cfg.Defaults.Destination)
			session := terminal.NewSession(form, cmd.OutOrStdout(), log.With(logger, "component", "terminal"))
			return session.Run(ctx, cmd.InOrStdin(), rates)
		},
	}
}
