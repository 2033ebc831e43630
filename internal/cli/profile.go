package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) profileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "View your profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := a.Sessions.Current(cmd.Context())
			if err != nil {
				return a.fail(err)
			}

			// On-enter re-sync; failures keep the cached copy.
			user, err = a.Sessions.Refresh(cmd.Context(), user.ID)
			if err != nil {
				return a.fail(err)
			}

			a.renderProfile(cmd.Context(), user)
			return nil
		},
	}

	cmd.AddCommand(a.createProfileCmd())
	return cmd
}

func (a *App) createProfileCmd() *cobra.Command {
	var title, description string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a custom profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := a.Sessions.Current(cmd.Context())
			if err != nil {
				return a.fail(err)
			}

			if _, err := a.Profiles.Create(cmd.Context(), user.ID, title, description); err != nil {
				return a.fail(err)
			}

			fmt.Fprintln(a.Out, "Saved")
			fmt.Fprintln(a.Out, "Your profile has been created.")
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "profile title")
	cmd.Flags().StringVar(&description, "description", "", "profile description (optional)")
	return cmd
}
