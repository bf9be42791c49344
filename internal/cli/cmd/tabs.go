package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/atlas/internal/domain/entity"
)

func newTabsCmd(st *rootState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tabs",
		Short: "List and manage tabs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, session, err := st.session()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), app.Theme.TabList(session.Tabs(), session.ActiveTab().ID, time.Now()))
			return nil
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "new",
			Short: "Open a tab on the start page and focus it",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				app, session, err := st.session()
				if err != nil {
					return err
				}
				tab := session.AddTab(app.Ctx())
				fmt.Fprintf(cmd.OutOrStdout(), "opened tab %d\n", tab.ID)
				return nil
			},
		},
		&cobra.Command{
			Use:   "close <id>",
			Short: "Close a tab (the last tab stays open)",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseTabID(args[0])
				if err != nil {
					return err
				}
				app, session, err := st.session()
				if err != nil {
					return err
				}
				if !session.CloseTab(app.Ctx(), id) {
					return fmt.Errorf("cannot close tab %d", id)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "closed tab %d, active tab is %d\n", id, session.ActiveTab().ID)
				return nil
			},
		},
		&cobra.Command{
			Use:     "switch <id>",
			Aliases: []string{"activate"},
			Short:   "Focus a tab",
			Args:    cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseTabID(args[0])
				if err != nil {
					return err
				}
				app, session, err := st.session()
				if err != nil {
					return err
				}
				if !session.ActivateTab(app.Ctx(), id) {
					return fmt.Errorf("no tab %d", id)
				}
				fmt.Fprint(cmd.OutOrStdout(), app.Theme.TabDetail(session.ActiveTab()))
				return nil
			},
		},
	)
	return cmd
}

func parseTabID(arg string) (entity.TabID, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid tab id %q", arg)
	}
	return entity.TabID(n), nil
}
