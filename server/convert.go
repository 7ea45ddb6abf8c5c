package main

import (
	"fmt"
	"go-currency-converter"
	"go-currency-converter/convert"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

func newConvertCmd(opts *options) *cobra.Command {
	var driving string

	cmd := &cobra.Command{
		Use:   "convert <amount> [from] [to]",
		Short: "Convert one amount with the latest rates",
		Args:  cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			side, err := convert.ParseSide(driving)
			if err != nil {
				return err
			}

			st := convert.NewState(cfg.Defaults.Source, cfg.Defaults.Destination)
			if len(args) > 1 {
				st.Source = converter.Currency(strings.ToUpper(args[1]))
			}
			if len(args) > 2 {
				st.Destination = converter.Currency(strings.ToUpper(args[2]))
			}
			st.Driving = side
			if side == convert.Destination {
				st.AmountTo = args[0]
			} else {
				st.AmountFrom = args[0]
			}

			rates, err := newProvider(cfg, logger, prometheus.NewRegistry()).Load(cmd.Context())
			if err != nil {
				return err
			}

			st, ok, err := convert.Recompute(rates, st)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("cannot convert %v to %v: unknown currency", st.Source, st.Destination)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s = %s %s\n", st.AmountFrom, st.Source, st.AmountTo, st.Destination)
			return nil
		},
	}
	cmd.Flags().StringVarP(&driving, "driving", "d", "source", "side the amount belongs to: source or destination")
	return cmd
}
