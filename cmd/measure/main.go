package main

import (
	"os"

	"github.com/ChicagoDave/measure/internal/server"
	"github.com/ChicagoDave/measure/internal/settings"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:          "measure",
		Short:        "Decimal length and weight conversions",
		SilenceUsage: true,
	}
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		return a.init(cmd)
	}
	settings.AddFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(convertCmd(a))
	rootCmd.AddCommand(unitsCmd(a))
	rootCmd.AddCommand(validateCmd(a))
	rootCmd.AddCommand(evalCmd(a))
	rootCmd.AddCommand(serveCmd(a))

	return rootCmd
}

func convertCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "convert [magnitude] [from] [to]",
		Short: "Convert a magnitude between two units of the same family",
		Args:  cobra.ExactArgs(3),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.runConvert(args[0], args[1], args[2])
		},
	}
}

func unitsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "units",
		Short: "List the supported units",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.runUnits()
		},
	}
}

func validateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [worksheet]",
		Short: "Validate a worksheet file or project directory without evaluating it",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.runValidate(args[0])
		},
	}
}

func evalCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "eval [worksheet]",
		Short: "Validate and evaluate a worksheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runEval(cmd.Context(), args[0])
		},
	}
}

func serveCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the JSON HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			srv := server.New(a.settings.Port, a.logger)
			return srv.Start()
		},
	}

	cmd.Flags().IntP("port", "p", 3000, "HTTP server port")
	return cmd
}
