package cmd

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/atlas/internal/cli/model"
	"github.com/bnema/atlas/internal/infrastructure/config"
	"github.com/bnema/atlas/internal/infrastructure/snapshot"
	"github.com/bnema/atlas/internal/logging"
)

func newShellCmd(st *rootState) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive address bar with live suggestions",
		Long: `Open a full-screen address bar over the restored session.

Typing shows suggestions from shortcuts, bookmarks, history and the
remote service. Edits to the config file are picked up while the shell
is running. Press F1 for key bindings.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			app, session, err := st.session()
			if err != nil {
				return err
			}
			ctx := logging.WithComponent(app.Ctx(), "shell")
			defer logging.LogPanic(ctx)

			autosave := snapshot.NewService(session, snapshot.DefaultInterval)
			autosave.Start(ctx)

			m := model.NewShellModel(ctx, app.Theme, session, app.SuggestUC).OnChange(autosave.MarkDirty)
			p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

			app.ConfigManager.OnConfigChange(func(cfg *config.Config) {
				app.SuggestUC.SetMinQueryLength(cfg.Suggestions.MinQueryLength)
				p.Send(model.ConfigReloadedMsg{})
			})
			app.ConfigManager.Watch()

			_, err = p.Run()
			return errors.Join(err, autosave.Stop(ctx))
		},
	}
}
