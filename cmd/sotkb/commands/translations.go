package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/sotkb/logger"
)

// dataFlags are sources imported before a query command runs
var dataFlags []string

func addDataFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayVar(&dataFlags, "data", nil, "Import this source before querying (repeatable)")
	cmd.Flags().StringVar(&dbPathFlag, "db", "", "Database path (default from database.path)")
	addOutputFlags(cmd)
}

// TranslationsCmd lists flattened translation records
var TranslationsCmd = &cobra.Command{
	Use:   "translations",
	Short: "List translations",
	Long: `List every translation: a derivative expression whose language differs
from the expression it derives from.

Records that cannot be flattened are reported and skipped.

Examples:
  sotkb translations --data graph.nt
  sotkb translations --format json`,
	Args: cobra.NoArgs,
	RunE: runTranslations,
}

// TranslatorsCmd lists flattened translator records
var TranslatorsCmd = &cobra.Command{
	Use:   "translators",
	Short: "List translators",
	Long: `List every distinct person who created a translation, with the
biographical facts the graph holds about them.`,
	Args: cobra.NoArgs,
	RunE: runTranslators,
}

func init() {
	addDataFlags(TranslationsCmd)
	addDataFlags(TranslatorsCmd)
}

func runTranslations(cmd *cobra.Command, args []string) error {
	base, closer, err := openKnowledgeBase(cmd.Context(), dataFlags)
	if err != nil {
		return err
	}
	defer closer()

	records, recordErr := base.TranslationRecords(cmd.Context())
	if recordErr != nil && records == nil {
		return recordErr
	}
	if recordErr != nil {
		logger.Logger.Warnw("Some translations were skipped", logger.FieldError, recordErr)
	}

	return render(cmd.OutOrStdout(), records, func() pterm.TableData {
		data := pterm.TableData{{"Title", "Author", "Translator", "Source", "Target", "Magazine", "Issue", "Date", "Genre"}}
		for _, r := range records {
			data = append(data, []string{
				cell(r.Title), cell(r.Author), cell(r.Translator),
				cell(r.SourceLanguage), cell(r.TargetLanguage),
				cell(r.Magazine), cell(r.Issue), cell(r.PubDate), cell(r.Genre),
			})
		}
		return data
	})
}

func runTranslators(cmd *cobra.Command, args []string) error {
	base, closer, err := openKnowledgeBase(cmd.Context(), dataFlags)
	if err != nil {
		return err
	}
	defer closer()

	records, recordErr := base.TranslatorRecords(cmd.Context())
	if recordErr != nil && records == nil {
		return recordErr
	}
	if recordErr != nil {
		logger.Logger.Warnw("Some translators were skipped", logger.FieldError, recordErr)
	}

	return render(cmd.OutOrStdout(), records, func() pterm.TableData {
		data := pterm.TableData{{"ID", "Label", "Born", "Died", "Gender", "Nationality"}}
		for _, r := range records {
			data = append(data, []string{
				r.ID, cell(r.Label), cell(r.BirthDate), cell(r.DeathDate), cell(r.Gender), cell(r.Nationality),
			})
		}
		return data
	})
}
