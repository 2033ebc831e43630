package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func (a *App) logoutCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Log out and clear the local session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !force && !a.confirm("Log Out?", "Are you sure?") {
				fmt.Fprintln(a.Out, "Cancelled.")
				return nil
			}

			// Clear the session before announcing anything; the slot must
			// be gone before any follow-up screen can read it.
			if err := a.Sessions.Logout(cmd.Context()); err != nil {
				return a.fail(err)
			}

			fmt.Fprintln(a.Out, "Logged out.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "yes", false, "skip the confirmation prompt")
	return cmd
}

// confirm shows a destructive-action prompt and reads a y/N answer. Anything
// but an explicit yes cancels.
func (a *App) confirm(title, message string) bool {
	fmt.Fprintf(a.Out, "%s %s [y/N]: ", title, message)

	line, err := bufio.NewReader(a.In).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
