package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Jaydeep9963/video-player-admin/internal/session"
)

// requireAuth is the command-level analogue of the SPA's protected-route
// gate: protected commands refuse to run without a session.
func requireAuth(a **app) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := (*a).guard.RequireAuth(); err != nil {
			return fmt.Errorf("%w; run `vpadmin login` first", err)
		}
		return nil
	}
}

func newLoginCmd(a **app) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and persist the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := (*a).guard.RequireAnonymous(); err != nil {
				if errors.Is(err, session.ErrAlreadyAuthenticated) {
					user := (*a).store.Session().User
					fmt.Printf("Already signed in as %s\n", user.Email)
					return nil
				}
				return err
			}

			state, err := (*a).auth.Login(cmd.Context(), email, password)
			if err != nil {
				if state.Error != "" {
					return errors.New(state.Error)
				}
				return err
			}
			fmt.Printf("Signed in as %s\n", state.User.Email)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "Admin email")
	cmd.Flags().StringVar(&password, "password", "", "Admin password")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	return cmd
}

func newLogoutCmd(a **app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and clear the persisted session",
		RunE: func(cmd *cobra.Command, args []string) error {
			(*a).auth.Logout(cmd.Context())
			fmt.Println("Signed out")
			return nil
		},
	}
}

func newWhoamiCmd(a **app) *cobra.Command {
	return &cobra.Command{
		Use:     "whoami",
		Short:   "Show the signed-in user",
		PreRunE: requireAuth(a),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := (*a).auth.Profile(cmd.Context())
			if err != nil {
				// Fall back to the locally stored identity
				user = (*a).store.Session().User
				if user == nil {
					return err
				}
			}
			return printJSON(user)
		},
	}
}
