// Package cli implements the pgnumeric command line tool.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	logLevelFlag = "log-level"
	formatFlag   = "format"
)

type app struct {
	logger *zap.Logger
}

// NewRootCommand returns the root command. If logger is nil,
// it is built from the --log-level flag before a sub-command runs.
func NewRootCommand(logger *zap.Logger) *cobra.Command {
	a := &app{logger: logger}

	cmd := &cobra.Command{
		Use:           "pgnumeric",
		Short:         "Inspect PostgreSQL NUMERIC wire values",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if a.logger != nil {
				return nil
			}

			level, err := cmd.Flags().GetString(logLevelFlag)
			if err != nil {
				return fmt.Errorf("get log level flag: %w", err)
			}

			a.logger, err = NewLogger(level)
			if err != nil {
				return fmt.Errorf("new logger: %w", err)
			}

			return nil
		},
	}

	cmd.PersistentFlags().String(logLevelFlag, "info", "log level: debug, info, warn, error")

	cmd.AddCommand(a.newEncodeCommand())
	cmd.AddCommand(a.newDecodeCommand())

	return cmd
}
