package main

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for the emsp CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "emsp",
		Short: "EMSP platform API",
		Long: `emsp serves the platform REST API: account login and registration,
token verification and revocation, and the product, order and moment catalogues.

Configuration is read from the environment and an optional .env file.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewEnsureIndexesCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// NewVersionCmd creates the version subcommand.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			v := cmd.Root().Version
			if v == "" {
				v = version
			}
			cmd.Println("emsp", v)
		},
	}
}
