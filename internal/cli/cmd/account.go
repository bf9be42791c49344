package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/atlas/internal/application/usecase"
)

// passwordEnv is read when --password is not given.
const passwordEnv = "ATLAS_PASSWORD"

type credentialFlags struct {
	username string
	password string
	email    string
}

func (f *credentialFlags) register(cmd *cobra.Command, withEmail bool) {
	cmd.Flags().StringVarP(&f.username, "username", "u", "", "account username")
	cmd.Flags().StringVarP(&f.password, "password", "p", "", "account password (or "+passwordEnv+", or one line on stdin)")
	if withEmail {
		cmd.Flags().StringVar(&f.email, "email", "", "account email")
	}
	_ = cmd.MarkFlagRequired("username")
}

// resolvePassword falls back to the environment, then to the first line of in.
func (f *credentialFlags) resolvePassword(in io.Reader) (string, error) {
	if f.password != "" {
		return f.password, nil
	}
	if env := os.Getenv(passwordEnv); env != "" {
		return env, nil
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read password: %w", err)
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return "", errors.New("password is required")
	}
	return line, nil
}

func newLoginCmd(st *rootState) *cobra.Command {
	var creds credentialFlags
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and load the account's session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := st.App()
			if err != nil {
				return err
			}
			password, err := creds.resolvePassword(cmd.InOrStdin())
			if err != nil {
				return err
			}
			session, err := app.SessionUC.Login(app.Ctx(), creds.username, password)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "signed in as %s (%d tabs, %d bookmarks)\n",
				session.Username(), len(session.Tabs()), len(session.Bookmarks()))
			return nil
		},
	}
	creds.register(cmd, false)
	return cmd
}

func newRegisterCmd(st *rootState) *cobra.Command {
	var creds credentialFlags
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := st.App()
			if err != nil {
				return err
			}
			password, err := creds.resolvePassword(cmd.InOrStdin())
			if err != nil {
				return err
			}
			session, err := app.SessionUC.Register(app.Ctx(), creds.username, password, creds.email)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "registered and signed in as %s\n", session.Username())
			return nil
		},
	}
	creds.register(cmd, true)
	return cmd
}

func newLogoutCmd(st *rootState) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget the cached session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := st.App()
			if err != nil {
				return err
			}
			if _, err := app.Session(); err != nil {
				return err
			}
			if err := app.SessionUC.Logout(app.Ctx()); err != nil {
				if errors.Is(err, usecase.ErrNotAuthenticated) {
					return errors.New("not signed in")
				}
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "signed out")
			return nil
		},
	}
}

func newWhoamiCmd(st *rootState) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, session, err := st.session()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if session.UserID() == "" {
				fmt.Fprintln(out, "anonymous")
			} else {
				fmt.Fprintf(out, "%s (%s)\n", session.Username(), session.UserID())
			}
			if app.Config.Offline() {
				fmt.Fprintln(out, app.Theme.MutedBadge("offline"))
			}
			return nil
		},
	}
}
