package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/JonMunkholm/resourcehub/internal/core"
)

var (
	searchQuery   string
	searchFilters []string
	searchJSON    bool
)

func newSearchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Fetch the sheet once and print the matching resources",
		Long: `Search loads the sheet, applies a free-text query and facet filters and
prints the visible resources.

Example:
  resourcehub search --query toolkit
  resourcehub search --filter "Topic Area (New)=Math" --filter "Topic Area (New)=Science"
  resourcehub search -q reading --json`,
		Args: cobra.NoArgs,
		RunE: runSearch,
	}
	cmd.Flags().StringVarP(&searchQuery, "query", "q", "", "case-insensitive text to look for in title, description, author and affiliation")
	cmd.Flags().StringArrayVarP(&searchFilters, "filter", "f", nil, `facet selection as "<field>=<value>" (repeatable)`)
	cmd.Flags().BoolVar(&searchJSON, "json", false, "print JSON instead of a table")
	return cmd
}

func newFacetsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "facets",
		Short: "Fetch the sheet once and print the filter options",
		Args:  cobra.NoArgs,
		RunE:  runFacets,
	}
	cmd.Flags().BoolVar(&searchJSON, "json", false, "print JSON instead of text")
	return cmd
}

// parseFilters turns field=value flags into a selection by toggling each
// value on. Repeating a pair therefore cancels it.
func parseFilters(flags []string) (core.Selection, error) {
	sel := core.Selection{}
	for _, f := range flags {
		field, value, ok := strings.Cut(f, "=")
		field, value = strings.TrimSpace(field), strings.TrimSpace(value)
		if !ok || field == "" || value == "" {
			return nil, fmt.Errorf("invalid filter %q: want <field>=<value>", f)
		}
		if !core.IsFacetField(field) {
			return nil, fmt.Errorf("invalid filter %q: %q is not one of %s", f, field, strings.Join(core.FacetFields, ", "))
		}
		sel = core.Toggle(sel, field, value)
	}
	return sel, nil
}

func runSearch(cmd *cobra.Command, args []string) error {
	sel, err := parseFilters(searchFilters)
	if err != nil {
		return err
	}

	service := newService(cfg, false)
	if _, err := service.Load(cmd.Context()); err != nil {
		return fmt.Errorf("%s: %w", core.GenericLoadFailure, err)
	}

	view := service.Search(searchQuery, sel)
	if searchJSON {
		return writeJSON(cmd.OutOrStdout(), map[string]any{
			"query":     view.Query,
			"selection": view.Selection,
			"total":     view.Total,
			"visible":   len(view.Visible),
			"cards":     view.Cards(),
		})
	}
	return printCards(cmd.OutOrStdout(), view)
}

func runFacets(cmd *cobra.Command, args []string) error {
	service := newService(cfg, false)
	if _, err := service.Load(cmd.Context()); err != nil {
		return fmt.Errorf("%s: %w", core.GenericLoadFailure, err)
	}

	facets, err := service.Facets()
	if err != nil {
		return err
	}
	if searchJSON {
		return writeJSON(cmd.OutOrStdout(), facets)
	}

	out := cmd.OutOrStdout()
	for _, f := range facets {
		fmt.Fprintf(out, "%s (%d)\n", f.Label, len(f.Options))
		for _, opt := range f.Options {
			fmt.Fprintf(out, "  %s\n", opt)
		}
	}
	return nil
}

func printCards(w io.Writer, view core.View) error {
	cards := view.Cards()
	if len(cards) == 0 {
		_, err := fmt.Fprintln(w, "No Results Found")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TITLE\tAUTHOR\tAFFILIATION\tURL")
	for _, c := range cards {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", c.Title, c.Author, c.Affiliation, c.URL)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\n%d of %d resources\n", len(cards), view.Total)
	return err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
