package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) loginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login <phone>",
		Short: "Log in with your phone number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := a.Sessions.Login(cmd.Context(), args[0])
			if err != nil {
				return a.fail(err)
			}

			fmt.Fprintf(a.Out, "Welcome back, %s.\n\n", user.Name)
			a.renderProfile(cmd.Context(), user)
			return nil
		},
	}
}
