package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/atlas/internal/application/usecase"
)

func newSyncCmd(st *rootState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Synchronize local state with the remote service",
	}

	cmd.AddCommand(&cobra.Command{
		Use:     "now",
		Aliases: []string{"push"},
		Short:   "Push every collection now and report the result per entity",
		Long: `Send the full tabs, bookmarks, shortcuts and settings collections to
the remote service, wait for the replies and print one line per entity.
This overwrites the remote copy with the local state.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, session, err := st.session()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if app.Config.Offline() || session.UserID() == "" {
				fmt.Fprintln(out, app.Theme.Subtle.Render("sync disabled: not signed in to a remote service"))
				return nil
			}

			syncer := session.Sync()
			session.ResyncAll(app.Ctx())
			if err := syncer.Flush(app.Ctx()); err != nil {
				return err
			}

			fmt.Fprintf(out, "%s @ %s\n", app.Theme.Title.Render(session.Username()), app.Remote.BaseURL())
			failed := 0
			for _, e := range usecase.SyncEntities {
				lastErr := syncer.LastError(e)
				if lastErr != nil {
					failed++
				}
				fmt.Fprint(out, app.Theme.SyncLine(e.String(), syncer.Pending(e), lastErr))
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d entities failed to sync", failed, len(usecase.SyncEntities))
			}
			return nil
		},
	})
	return cmd
}
