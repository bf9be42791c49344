package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/atlas/internal/domain/entity"
)

func newOpenCmd(st *rootState) *cobra.Command {
	return &cobra.Command{
		Use:   "open <url or search terms...>",
		Short: "Navigate the active tab",
		Long: `Resolve the input to a URL and load it in the active tab.

Anything that is not a URL or a host becomes a search with the
configured engine. Opening a search results page re-runs its query
with the current engine.

Examples:
  atlas open go.dev
  atlas open golang generics tutorial
  atlas open https://www.bing.com/search?q=weather`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, session, err := st.session()
			if err != nil {
				return err
			}
			tab := session.Navigate(app.Ctx(), strings.Join(args, " "))
			fmt.Fprint(cmd.OutOrStdout(), app.Theme.TabDetail(tab))
			return nil
		},
	}
}

func newBackCmd(st *rootState) *cobra.Command {
	return &cobra.Command{
		Use:   "back",
		Short: "Go back in the active tab",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, session, err := st.session()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !session.GoBack(app.Ctx()) {
				fmt.Fprintln(out, app.Theme.Subtle.Render("no previous page"))
			}
			fmt.Fprint(out, app.Theme.TabDetail(session.ActiveTab()))
			return nil
		},
	}
}

func newForwardCmd(st *rootState) *cobra.Command {
	return &cobra.Command{
		Use:   "forward",
		Short: "Go forward in the active tab",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, session, err := st.session()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !session.GoForward(app.Ctx()) {
				fmt.Fprintln(out, app.Theme.Subtle.Render("no next page"))
			}
			fmt.Fprint(out, app.Theme.TabDetail(session.ActiveTab()))
			return nil
		},
	}
}

func newRefreshCmd(st *rootState) *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Reload the active tab",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, session, err := st.session()
			if err != nil {
				return err
			}
			tab := session.Refresh(app.Ctx())
			fmt.Fprint(cmd.OutOrStdout(), app.Theme.TabDetail(tab))
			return nil
		},
	}
}

func newZoomCmd(st *rootState) *cobra.Command {
	return &cobra.Command{
		Use:       "zoom <in|out|reset>",
		Short:     "Change the active tab's zoom",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(entity.ZoomIn), string(entity.ZoomOut), string(entity.ZoomReset)},
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, ok := entity.ParseZoomDirection(strings.ToLower(args[0]))
			if !ok {
				return fmt.Errorf("unknown zoom direction %q (want in, out or reset)", args[0])
			}
			app, session, err := st.session()
			if err != nil {
				return err
			}
			zoom := session.HandleZoom(app.Ctx(), dir)
			fmt.Fprintf(cmd.OutOrStdout(), "zoom %.0f%%\n", zoom*100)
			return nil
		},
	}
}
