package commands

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/sotkb/am"
	"github.com/teranos/sotkb/errors"
)

// AmCmd represents the am (configuration) command
var AmCmd = &cobra.Command{
	Use:   "am",
	Short: "Manage sotkb configuration",
	Long: `am - Manage sotkb configuration ("I am")

Configuration sources (in order of precedence):
1. Command line flags
2. Environment variables (SOTKB_* prefix)
3. Project config (nearest am.toml)
4. User config (~/.sotkb/am.toml)
5. System config (/etc/sotkb/am.toml)
6. Default values

Examples:
  sotkb am show                   # Show current configuration
  sotkb am show --format json     # Show configuration in JSON format
  sotkb am sources                # Show where each setting comes from`,
}

var amShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runAmShow,
}

var amSourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "Show where each setting comes from",
	RunE:  runAmSources,
}

var configFormat string

func init() {
	amShowCmd.Flags().StringVar(&configFormat, "format", "toml", "Output format: toml, json, yaml")

	AmCmd.AddCommand(amShowCmd)
	AmCmd.AddCommand(amSourcesCmd)
}

func runAmShow(cmd *cobra.Command, args []string) error {
	cfg, err := am.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	data, err := cfg.Render(configFormat)
	if err != nil {
		return err
	}
	if configFormat != am.FormatJSON {
		fmt.Fprintln(cmd.OutOrStdout(), "# sotkb configuration")
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), string(data))
	return err
}

func runAmSources(cmd *cobra.Command, args []string) error {
	if _, err := am.Load(); err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	data := pterm.TableData{{"Key", "Value", "Source", "From"}}
	for _, s := range am.Settings() {
		data = append(data, []string{s.Key, fmt.Sprint(s.Value), string(s.Source), s.SourcePath})
	}
	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return errors.Wrap(err, "failed to render table")
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
	return err
}
