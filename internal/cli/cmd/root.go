// Package cmd provides Cobra CLI commands for atlas.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/atlas/internal/application/usecase"
	"github.com/bnema/atlas/internal/cli"
	"github.com/bnema/atlas/internal/domain/build"
)

// skipAppAnnotation marks commands that run without the App (no config
// load, no database).
const skipAppAnnotation = "atlas:skip-app"

var errAppNotInitialized = errors.New("app not initialized")

// rootState is shared by every command of one invocation.
type rootState struct {
	opts  cli.AppOptions
	app   *cli.App
	build build.Info
}

func (s *rootState) App() (*cli.App, error) {
	if s.app == nil {
		return nil, errAppNotInitialized
	}
	return s.app, nil
}

// session returns the App and its restored session.
func (s *rootState) session() (*cli.App, *usecase.Session, error) {
	app, err := s.App()
	if err != nil {
		return nil, nil, err
	}
	session, err := app.Session()
	if err != nil {
		return nil, nil, fmt.Errorf("restore session: %w", err)
	}
	return app, session, nil
}

// closeApp flushes sync and releases the App. Safe to call twice.
func (s *rootState) closeApp() error {
	if s.app == nil {
		return nil
	}
	err := s.app.Close()
	s.app = nil
	return err
}

// NewRootCmd builds the command tree.
func NewRootCmd(info build.Info) *cobra.Command {
	root, _ := newRootCmd(info)
	return root
}

func newRootCmd(info build.Info) (*cobra.Command, *rootState) {
	st := &rootState{build: info}

	root := &cobra.Command{
		Use:   "atlas",
		Short: "A synced browsing session from the terminal",
		Long: `Atlas keeps a browsing session (tabs with back/forward stacks, history,
bookmarks, shortcuts and the search engine preference) and mirrors it to
a remote account.

Without an api.base_url in the config file atlas runs offline and keeps
everything in its local cache.

Use 'atlas shell' for the interactive address bar, or the subcommands
for one-shot operations.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if !needsApp(cmd) {
				return nil
			}
			app, err := cli.NewApp(st.opts)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			st.app = app
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return st.closeApp()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&st.opts.ConfigFile, "config", "", "config file (default $XDG_CONFIG_HOME/atlas/config.toml)")
	flags.BoolVarP(&st.opts.Verbose, "verbose", "v", false, "write logs to stderr")
	flags.StringVar(&st.opts.LogLevel, "log-level", "", "override logging.level (trace, debug, info, warn, error)")

	root.AddCommand(
		newLoginCmd(st),
		newRegisterCmd(st),
		newLogoutCmd(st),
		newWhoamiCmd(st),
		newOpenCmd(st),
		newBackCmd(st),
		newForwardCmd(st),
		newRefreshCmd(st),
		newZoomCmd(st),
		newTabsCmd(st),
		newBookmarkCmd(st),
		newShortcutsCmd(st),
		newHistoryCmd(st),
		newSuggestCmd(st),
		newEngineCmd(st),
		newSyncCmd(st),
		newConfigCmd(st),
		newShellCmd(st),
		newVersionCmd(st),
	)
	return root, st
}

// needsApp reports whether cmd or one of its parents skips initialization.
func needsApp(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return false
		}
		if c.Annotations[skipAppAnnotation] == "true" {
			return false
		}
	}
	return true
}

// Execute runs the root command and returns the process exit code.
func Execute(info build.Info) int {
	root, st := newRootCmd(info)
	err := root.Execute()
	// PersistentPostRunE is skipped when a command fails.
	if cerr := st.closeApp(); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}

func newVersionCmd(st *rootState) *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print build information",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipAppAnnotation: "true"},
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "atlas %s\n", orUnknown(st.build.Version))
			fmt.Fprintf(out, "  commit: %s\n", orUnknown(st.build.Commit))
			fmt.Fprintf(out, "  built:  %s\n", orUnknown(st.build.BuildDate))
			fmt.Fprintf(out, "  go:     %s\n", orUnknown(st.build.GoVersion))
			fmt.Fprintf(out, "  %s\n", build.RepoURL())
		},
	}
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
