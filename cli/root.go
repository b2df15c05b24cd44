// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"io"

	"github.com/fatih/color"
	"github.com/openlogs/infra/logger"
	"github.com/spf13/cobra"
)

// NewRootCmd returns the errcodes command with its subcommands attached.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "errcodes [list | encode | decode | render]",
		Short: "Inspect client-facing error codes",
		Long: "Inspect the client-facing error code registry and its wire form.\n" +
			"Settings may also come from ERRCODES_ environment variables or a config file.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			file, err := cmd.Flags().GetString(configFlag)
			if err != nil {
				return err
			}
			c, err := ParseConfig(cmd.Flags(), file)
			if err != nil {
				return err
			}
			l, err := newLogger(cmd.ErrOrStderr(), c)
			if err != nil {
				return err
			}
			if c.NoColor {
				color.NoColor = true
			}
			cfg, cliLogger = c, l
			cliLogger.Debug("configuration loaded")
			return nil
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringP(configFlag, "c", "", "Config file (toml, yaml or json)")
	pf.StringP(logLevelFlag, "l", "info", "Log level")
	pf.StringP(outputFlag, "o", outputText, "Output format: json or text")
	pf.Bool(noColorFlag, false, "Disable colored output")

	rootCmd.AddCommand(newCodesCmds()...)

	return rootCmd
}

func newLogger(out io.Writer, c Config) (logger.Logger, error) {
	if c.Output == outputJSON {
		return logger.New(out, c.LogLevel)
	}
	return logger.NewLogfmt(out, c.LogLevel)
}
