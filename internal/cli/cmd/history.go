package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
)

const defaultHistoryMax = 50

func newHistoryCmd(st *rootState) *cobra.Command {
	var (
		asJSON bool
		limit  int
	)
	list := &cobra.Command{
		Use:   "list",
		Short: "Show history, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, session, err := st.session()
			if err != nil {
				return err
			}
			entries := session.History()
			if asJSON {
				if limit > 0 && len(entries) > limit {
					entries = entries[:limit]
				}
				return writeJSON(cmd.OutOrStdout(), entries)
			}
			fmt.Fprint(cmd.OutOrStdout(), app.Theme.HistoryList(entries, limit))
			return nil
		},
	}
	list.Flags().BoolVar(&asJSON, "json", false, "output as JSON")
	list.Flags().IntVar(&limit, "max", defaultHistoryMax, "maximum entries to show (0 for all)")

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Browse and manage history",
		Args:  cobra.NoArgs,
		RunE:  list.RunE,
	}
	// The bare command shares list's flags.
	cmd.Flags().AddFlagSet(list.Flags())

	cmd.AddCommand(
		list,
		&cobra.Command{
			Use:     "delete <id>",
			Aliases: []string{"rm"},
			Short:   "Delete one history entry",
			Args:    cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := strconv.ParseInt(args[0], 10, 64)
				if err != nil {
					return fmt.Errorf("invalid history id %q", args[0])
				}
				app, session, err := st.session()
				if err != nil {
					return err
				}
				if !session.DeleteHistoryItem(app.Ctx(), id) {
					return fmt.Errorf("no history entry %d", id)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "deleted history entry %d\n", id)
				return nil
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Delete all history",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				app, session, err := st.session()
				if err != nil {
					return err
				}
				n := len(session.History())
				session.ClearHistory(app.Ctx())
				fmt.Fprintf(cmd.OutOrStdout(), "cleared %d history entries\n", n)
				return nil
			},
		},
	)
	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
