package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/teranos/sotkb/am"
	"github.com/teranos/sotkb/errors"
)

// outputFormatFlag overrides output.format for a single invocation
var outputFormatFlag string

func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&outputFormatFlag, "format", "", "Output format: json, yaml, table (default from output.format)")
}

func outputFormat() (string, error) {
	if outputFormatFlag != "" {
		return outputFormatFlag, nil
	}
	cfg, err := loadConfig()
	if err != nil {
		return "", err
	}
	return cfg.GetOutputFormat(), nil
}

// render writes v in the selected format; table builds the rows for table output.
func render(w io.Writer, v interface{}, table func() pterm.TableData) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}

	switch format {
	case am.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(v), "failed to encode JSON")
	case am.FormatYAML:
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return errors.Wrap(enc.Encode(v), "failed to encode YAML")
	case am.FormatTable:
		out, err := pterm.DefaultTable.WithHasHeader().WithData(table()).Srender()
		if err != nil {
			return errors.Wrap(err, "failed to render table")
		}
		_, err = fmt.Fprintln(w, out)
		return err
	default:
		return errors.NewInvalidRequestError("unsupported format: %s (supported: json, yaml, table)", format)
	}
}

// cell renders an optional value for tables.
func cell(v *string) string {
	if v == nil {
		return "-"
	}
	return *v
}
