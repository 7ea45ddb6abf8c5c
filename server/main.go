package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

// options shared by every command
type options struct {
	cfgFile string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "converter",
		Short:         "Currency converter over the exchangerate-api latest rates",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&opts.cfgFile, "config", "c", "", "path to configuration file (optional)")

	rootCmd.AddCommand(
		newServeCmd(opts),
		newConvertCmd(opts),
		newReplCmd(opts),
		&cobra.Command{
			Use:   "version",
			Short: "Print the converter version",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintln(cmd.OutOrStdout(), version)
			},
		},
	)
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "converter:", err)
		os.Exit(1)
	}
}
