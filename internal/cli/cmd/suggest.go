package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	domainurl "github.com/bnema/atlas/internal/domain/url"
)

func newSuggestCmd(st *rootState) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "suggest <query...>",
		Short: "Show address bar suggestions for a query",
		Long: `Match the query against shortcuts, bookmarks and history, then add
search phrases from the remote service when it is configured.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, session, err := st.session()
			if err != nil {
				return err
			}
			query := strings.Join(args, " ")
			items := app.SuggestUC.Suggest(app.Ctx(), query, session.LocalData(), session.Settings().SearchEngine)
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), items)
			}
			if len(items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), app.Theme.Subtle.Render("No suggestions"))
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), app.Theme.SuggestionList(items, -1))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")
	return cmd
}

func newEngineCmd(st *rootState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "engine",
		Short: "Show or change the search engine",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, session, err := st.session()
			if err != nil {
				return err
			}
			current := session.Settings().SearchEngine
			out := cmd.OutOrStdout()
			for _, e := range domainurl.Engines {
				marker := "  "
				if e.Template == current {
					marker = "▶ "
				}
				fmt.Fprintf(out, "%s%-12s %s\n", marker, e.ID, app.Theme.Subtle.Render(e.Name))
			}
			fmt.Fprintf(out, "\ntemplate: %s\n", current)
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set <id|template>",
		Short: "Use a catalogue engine by id, or a custom URL template",
		Long: `Set the search engine used for non-URL input.

The argument is an engine id (google, bing, duckduckgo) or a URL
template. The query is appended to the template, or replaces %s when
the template contains it.`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: engineIDs(),
		RunE: func(cmd *cobra.Command, args []string) error {
			template, err := resolveEngine(args[0])
			if err != nil {
				return err
			}
			app, session, err := st.session()
			if err != nil {
				return err
			}
			session.SetSearchEngine(app.Ctx(), template)
			fmt.Fprintf(cmd.OutOrStdout(), "search engine: %s\n", domainurl.EngineFor(template).Name)
			return nil
		},
	})
	return cmd
}

func engineIDs() []string {
	ids := make([]string, 0, len(domainurl.Engines))
	for _, e := range domainurl.Engines {
		ids = append(ids, e.ID)
	}
	return ids
}

// resolveEngine maps an engine id to its template and checks custom templates.
func resolveEngine(arg string) (string, error) {
	arg = strings.TrimSpace(arg)
	for _, e := range domainurl.Engines {
		if strings.EqualFold(arg, e.ID) {
			return e.Template, nil
		}
	}
	if strings.HasPrefix(arg, "https://") || strings.HasPrefix(arg, "http://") {
		return arg, nil
	}
	return "", fmt.Errorf("unknown search engine %q (want one of %s, or an http(s) template)",
		arg, strings.Join(engineIDs(), ", "))
}
