package commands

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/sotkb/errors"
	"github.com/teranos/sotkb/factstore"
	"github.com/teranos/sotkb/kb"
	"github.com/teranos/sotkb/logger"
)

// ImportCmd merges serialized graphs into the configured fact store
var ImportCmd = &cobra.Command{
	Use:   "import <source>...",
	Short: "Import graph files into the fact store",
	Long: `Import N-Triples, N-Quads or JSON-LD graphs into the fact store.

Sources are local paths, file:// URLs or any URL go-getter understands.
Importing the same facts twice adds nothing.

Examples:
  sotkb import data/translations.nt
  sotkb import https://example.org/sot/graph.nq`,
	Args: cobra.MinimumNArgs(1),
	RunE: runImport,
}

func init() {
	ImportCmd.Flags().StringVar(&dbPathFlag, "db", "", "Database path (default from database.path)")
	addOutputFlags(ImportCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	base := kb.New(store, kb.WithLogger(logger.Named("kb")))
	var results []factstore.ImportStats
	for _, source := range args {
		stats, err := base.ImportData(cmd.Context(), source)
		if err != nil {
			return errors.Wrapf(err, "failed to import %s", source)
		}
		results = append(results, stats)
	}

	return render(cmd.OutOrStdout(), results, func() pterm.TableData {
		data := pterm.TableData{{"Source", "Format", "Read", "Added"}}
		for _, r := range results {
			data = append(data, []string{r.Source, r.Format, fmt.Sprint(r.Read), fmt.Sprint(r.Added)})
		}
		return data
	})
}
