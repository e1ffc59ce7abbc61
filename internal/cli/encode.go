package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/avdva/pgnumeric"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// yamlNumeric is the YAML form of a wire value.
type yamlNumeric struct {
	Sign   string  `yaml:"sign"`
	Weight *int16  `yaml:"weight,omitempty"`
	Scale  *uint16 `yaml:"scale,omitempty"`
	Digits []int16 `yaml:"digits,flow,omitempty"`
}

func newYAMLNumeric(n pgnumeric.Numeric) yamlNumeric {
	switch v := n.(type) {
	case pgnumeric.Positive:
		return yamlNumeric{Sign: "positive", Weight: &v.Weight, Scale: &v.Scale, Digits: v.Digits}
	case pgnumeric.Negative:
		return yamlNumeric{Sign: "negative", Weight: &v.Weight, Scale: &v.Scale, Digits: v.Digits}
	}
	return yamlNumeric{Sign: "nan"}
}

func (a *app) newEncodeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode <decimal>...",
		Short: "Encode decimals into NUMERIC wire values",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := cmd.Flags().GetString(formatFlag)
			if err != nil {
				return fmt.Errorf("get format flag: %w", err)
			}

			for _, arg := range args {
				n, err := pgnumeric.EncodeString(arg)
				if err != nil {
					return fmt.Errorf("encode: %w", err)
				}

				a.logger.Debug("encoded value",
					zap.String("input", arg),
					zap.Stringer("numeric", n),
					zap.Int("sign", pgnumeric.Signum(n)),
				)

				if err := writeNumeric(cmd.OutOrStdout(), n, format); err != nil {
					return fmt.Errorf("write %s: %w", arg, err)
				}
			}

			return nil
		},
	}

	cmd.Flags().StringP(formatFlag, "f", formatText, "output format: text, json, yaml")

	return cmd
}

func writeNumeric(w io.Writer, n pgnumeric.Numeric, format string) error {
	var (
		data []byte
		err  error
	)

	switch format {
	case formatText:
		data = []byte(n.String() + "\n")
	case formatJSON:
		data, err = json.Marshal(n)
		data = append(data, '\n')
	case formatYAML:
		data, err = yaml.Marshal(newYAMLNumeric(n))
		data = append([]byte("---\n"), data...)
	default:
		return fmt.Errorf("unknown format '%s'", format)
	}

	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}

	_, err = w.Write(data)

	return err
}
