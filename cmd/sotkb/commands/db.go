package commands

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/sotkb/errors"
)

// DbCmd represents the db (database) command
var DbCmd = &cobra.Command{
	Use:   "db",
	Short: "Manage the sotkb fact store",
	Long: `db - Inspect the SQLite fact store

Examples:
  sotkb db stats                  # Show fact counts and recent imports
  sotkb db stats --limit 5        # Show the last 5 imports`,
}

var dbStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show fact store statistics",
	RunE:  runDbStats,
}

var statsLimitFlag int

func init() {
	DbCmd.AddCommand(dbStatsCmd)
	dbStatsCmd.Flags().IntVar(&statsLimitFlag, "limit", 20, "Number of recent imports to show")
	dbStatsCmd.Flags().StringVar(&dbPathFlag, "db", "", "Database path (default from database.path)")
	addOutputFlags(dbStatsCmd)
}

func runDbStats(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	stats, err := store.Stats(cmd.Context(), statsLimitFlag)
	if err != nil {
		return errors.Wrap(err, "failed to read fact store statistics")
	}

	return render(cmd.OutOrStdout(), stats, func() pterm.TableData {
		data := pterm.TableData{
			{"Metric", "Value"},
			{"Triples", fmt.Sprint(stats.Triples)},
			{"Subjects", fmt.Sprint(stats.Subjects)},
			{"Predicates", fmt.Sprint(stats.Predicates)},
		}
		for _, imp := range stats.Imports {
			data = append(data, []string{
				"Import " + imp.ImportedAt.Format("2006-01-02 15:04:05"),
				fmt.Sprintf("%s (%s): %d read, %d added", imp.Source, imp.Format, imp.Read, imp.Added),
			})
		}
		return data
	})
}
