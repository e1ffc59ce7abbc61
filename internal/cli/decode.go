package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/avdva/pgnumeric"
)

func (a *app) newDecodeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <json>...",
		Short: "Decode NUMERIC wire values given in JSON form",
		Long: `Decode NUMERIC wire values given in JSON form, for example
  pgnumeric decode '{"sign":"positive","weight":-1,"scale":2,"digits":[100]}'
Every digit is kept in the output, so the example prints 0.0100.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				n, err := pgnumeric.ParseJSON([]byte(arg))
				if err != nil {
					return fmt.Errorf("parse wire value: %w", err)
				}

				d, err := pgnumeric.Decode(n)
				if err != nil {
					a.logger.Error("decode wire value", zap.Stringer("numeric", n), zap.Error(err))
					return fmt.Errorf("decode: %w", err)
				}

				places := -d.Exponent()
				if places < 0 {
					places = 0
				}

				a.logger.Debug("decoded value",
					zap.Stringer("numeric", n),
					zap.String("decimal", d.String()),
					zap.Int32("exponent", d.Exponent()),
				)

				if _, err := fmt.Fprintln(cmd.OutOrStdout(), d.StringFixed(places)); err != nil {
					return fmt.Errorf("write output: %w", err)
				}
			}

			return nil
		},
	}
}
