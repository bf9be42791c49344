package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/atlas/internal/domain/entity"
)

func newBookmarkCmd(st *rootState) *cobra.Command {
	list := &cobra.Command{
		Use:   "list",
		Short: "List bookmarks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, session, err := st.session()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), app.Theme.BookmarkList(session.Bookmarks()))
			return nil
		},
	}

	cmd := &cobra.Command{
		Use:     "bookmark",
		Aliases: []string{"bookmarks"},
		Short:   "List bookmarks or toggle the active page",
		Args:    cobra.NoArgs,
		RunE:    list.RunE,
	}
	cmd.AddCommand(list, &cobra.Command{
		Use:   "toggle",
		Short: "Bookmark the active page, or remove its bookmark",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, session, err := st.session()
			if err != nil {
				return err
			}
			tab := session.ActiveTab()
			if tab.URL == entity.HomeURL {
				return errors.New("nothing to bookmark on the start page")
			}
			if session.ToggleBookmark(app.Ctx()) {
				fmt.Fprintf(cmd.OutOrStdout(), "bookmark added: %s\n", tab.URL)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "bookmark removed: %s\n", tab.URL)
			}
			return nil
		},
	})
	return cmd
}

func newShortcutsCmd(st *rootState) *cobra.Command {
	list := &cobra.Command{
		Use:   "list",
		Short: "List start-page shortcuts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, session, err := st.session()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), app.Theme.ShortcutList(session.Shortcuts()))
			return nil
		},
	}

	var title, icon, gradient string
	add := &cobra.Command{
		Use:   "add <url>",
		Short: "Add a custom shortcut",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, session, err := st.session()
			if err != nil {
				return err
			}
			sc, err := session.AddShortcut(app.Ctx(), title, args[0], icon, gradient)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added shortcut %s (%s)\n", sc.ID, sc.Title)
			return nil
		},
	}
	add.Flags().StringVar(&title, "title", "", "tile title (defaults to the host)")
	add.Flags().StringVar(&icon, "icon", "", "short label or image URL (defaults to the title initial)")
	add.Flags().StringVar(&gradient, "gradient", "", "tile background: gradient-1, gradient-2, gradient-3 or #RRGGBB")

	remove := &cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"rm"},
		Short:   "Remove a shortcut",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, session, err := st.session()
			if err != nil {
				return err
			}
			if !session.RemoveShortcut(app.Ctx(), args[0]) {
				return fmt.Errorf("no shortcut %q", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed shortcut %s\n", args[0])
			return nil
		},
	}

	cmd := &cobra.Command{
		Use:   "shortcuts",
		Short: "Manage start-page shortcuts",
		Args:  cobra.NoArgs,
		RunE:  list.RunE,
	}
	cmd.AddCommand(list, add, remove)
	return cmd
}
