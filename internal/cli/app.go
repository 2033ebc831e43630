// Package cli is the view layer: each screen of the mobile app maps to a
// command, and every profile-rendering command re-syncs the session from the
// remote API before rendering, the way a screen refreshes on focus.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/circuna/circuna/internal/core/domain"
	"github.com/circuna/circuna/internal/core/ports"
)

// App bundles the services behind the screens. In and Out default to the
// process streams; tests substitute buffers.
type App struct {
	Sessions      ports.SessionService
	Registrations ports.RegistrationService
	Profiles      ports.ProfileService
	In            io.Reader
	Out           io.Writer
	Log           zerolog.Logger
}

// Root builds the command tree.
func (a *App) Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "circuna",
		Short: "Circuna client",
		Long: `Circuna client.

Log in with your phone number, view your profile, and create custom
profiles. State is kept locally and re-synced from the server on every
profile view.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		a.loginCmd(),
		a.registerCmd(),
		a.profileCmd(),
		a.logoutCmd(),
	)
	return root
}

// fail renders a blocking alert, or a plain error line for non-alert
// failures, and returns the error so the process exits non-zero.
func (a *App) fail(err error) error {
	var alert *domain.Alert
	if errors.As(err, &alert) {
		fmt.Fprintf(a.Out, "%s\n%s\n", alert.Title, alert.Message)
		return err
	}
	if errors.Is(err, domain.ErrNoSession) {
		fmt.Fprintln(a.Out, "Not logged in. Run 'circuna login <phone>' first.")
		return err
	}
	fmt.Fprintf(a.Out, "Error: %v\n", err)
	return err
}
