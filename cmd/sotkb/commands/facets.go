package commands

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/sotkb/errors"
	"github.com/teranos/sotkb/kb"
)

// facetRenderers maps facet names to a query and its table layout
var facetRenderers = map[string]func(context.Context, *kb.KnowledgeBase) (interface{}, pterm.TableData, error){
	"source-language": func(ctx context.Context, base *kb.KnowledgeBase) (interface{}, pterm.TableData, error) {
		facets, err := base.SourceLanguageFacet(ctx)
		return facets, languageTable(facets), err
	},
	"target-language": func(ctx context.Context, base *kb.KnowledgeBase) (interface{}, pterm.TableData, error) {
		facets, err := base.TargetLanguageFacet(ctx)
		return facets, languageTable(facets), err
	},
	"magazine": func(ctx context.Context, base *kb.KnowledgeBase) (interface{}, pterm.TableData, error) {
		facets, err := base.MagazineFacet(ctx)
		data := pterm.TableData{{"Magazine", "Label"}}
		for _, f := range facets {
			data = append(data, []string{f.Magazine, f.Label})
		}
		return facets, data, err
	},
	"genre": func(ctx context.Context, base *kb.KnowledgeBase) (interface{}, pterm.TableData, error) {
		facets, err := base.GenreFacet(ctx)
		data := pterm.TableData{{"Genre"}}
		for _, f := range facets {
			data = append(data, []string{f.Label})
		}
		return facets, data, err
	},
	"pubdate": func(ctx context.Context, base *kb.KnowledgeBase) (interface{}, pterm.TableData, error) {
		facets, err := base.PubDateFacet(ctx)
		data := pterm.TableData{{"Publication date"}}
		for _, f := range facets {
			data = append(data, []string{f.Label})
		}
		return facets, data, err
	},
}

func languageTable(facets []kb.LanguageFacet) pterm.TableData {
	data := pterm.TableData{{"Language", "Label", "Translations"}}
	for _, f := range facets {
		data = append(data, []string{f.Lang, f.Label, fmt.Sprint(f.Count)})
	}
	return data
}

func facetNames() []string {
	names := make([]string, 0, len(facetRenderers))
	for name := range facetRenderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FacetsCmd shows grouped summaries for filtering
var FacetsCmd = &cobra.Command{
	Use:   "facets [source-language|target-language|magazine|genre|pubdate]",
	Short: "Show facets of the translation set",
	Long: `Show grouped summaries of the translation set, for use as filter options.

Without an argument every facet is shown.

Examples:
  sotkb facets --data graph.nt
  sotkb facets source-language --format json`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: facetNames(),
	RunE:      runFacets,
}

func init() {
	addDataFlags(FacetsCmd)
}

func runFacets(cmd *cobra.Command, args []string) error {
	var facet func(context.Context, *kb.KnowledgeBase) (interface{}, pterm.TableData, error)
	if len(args) == 1 {
		var ok bool
		if facet, ok = facetRenderers[args[0]]; !ok {
			return errors.NewInvalidRequestError("unknown facet %q (use one of: %s)", args[0], strings.Join(facetNames(), ", "))
		}
	}

	base, closer, err := openKnowledgeBase(cmd.Context(), dataFlags)
	if err != nil {
		return err
	}
	defer closer()

	if facet != nil {
		v, table, err := facet(cmd.Context(), base)
		if err != nil {
			return err
		}
		return render(cmd.OutOrStdout(), v, func() pterm.TableData { return table })
	}

	set, err := base.Facets(cmd.Context())
	if err != nil {
		return err
	}
	return render(cmd.OutOrStdout(), set, func() pterm.TableData {
		data := pterm.TableData{{"Facet", "Value", "Label", "Count"}}
		for _, f := range set.SourceLanguages {
			data = append(data, []string{"source-language", f.Lang, f.Label, fmt.Sprint(f.Count)})
		}
		for _, f := range set.TargetLanguages {
			data = append(data, []string{"target-language", f.Lang, f.Label, fmt.Sprint(f.Count)})
		}
		for _, f := range set.Magazines {
			data = append(data, []string{"magazine", f.Magazine, f.Label, ""})
		}
		for _, f := range set.Genres {
			data = append(data, []string{"genre", f.Genre, f.Label, ""})
		}
		for _, f := range set.PubDates {
			data = append(data, []string{"pubdate", f.PubDate, f.Label, ""})
		}
		return data
	})
}
