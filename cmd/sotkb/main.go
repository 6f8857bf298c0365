package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/sotkb/am"
	"github.com/teranos/sotkb/cmd/sotkb/commands"
	"github.com/teranos/sotkb/errors"
	"github.com/teranos/sotkb/logger"
)

var rootCmd = &cobra.Command{
	Use:   "sotkb",
	Short: "sotkb - Spaces of Translation knowledge base",
	Long: `sotkb - Query a knowledge graph of literary translations.

Facts about works, expressions, people and publications are imported from
N-Triples, N-Quads or JSON-LD files into a SQLite fact store and read back as
translations, translators and facets.

Available commands:
  import       - Import graph files into the fact store
  translations - List translations
  translators  - List translators
  facets       - Show grouped summaries for filtering
  am           - Manage sotkb configuration
  db           - Inspect the fact store
  version      - Show build information

Examples:
  sotkb import data/graph.nt
  sotkb translations --format json
  sotkb facets source-language --data data/graph.nt`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		if err := logger.InitializeWithVerbosity(am.GetBool("log.json"), verbosity); err != nil {
			return errors.Wrap(err, "failed to initialize logger")
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv)")

	rootCmd.AddCommand(commands.ImportCmd)
	rootCmd.AddCommand(commands.TranslationsCmd)
	rootCmd.AddCommand(commands.TranslatorsCmd)
	rootCmd.AddCommand(commands.FacetsCmd)
	rootCmd.AddCommand(commands.AmCmd)
	rootCmd.AddCommand(commands.DbCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	err := rootCmd.ExecuteContext(context.Background())
	logger.Cleanup()
	if err != nil {
		pterm.Error.Println(err.Error())
		if hint := errors.FlattenHints(err); hint != "" {
			fmt.Fprintln(os.Stderr, hint)
		}
		os.Exit(1)
	}
}
