package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/circuna/circuna/internal/core/domain"
)

// renderProfile prints the profile screen: the server-owned record followed
// by the user's locally-owned custom profiles.
func (a *App) renderProfile(ctx context.Context, user *domain.User) {
	fmt.Fprintln(a.Out, "Your Profile")
	fmt.Fprintln(a.Out)
	fmt.Fprintf(a.Out, "  Phone:    %s\n", user.PhoneNumber)
	fmt.Fprintf(a.Out, "  Name:     %s\n", user.Name)
	fmt.Fprintf(a.Out, "  Location: %s\n", user.Location)
	fmt.Fprintf(a.Out, "  Email:    %s\n", valueOr(user.Email, "N/A"))
	fmt.Fprintf(a.Out, "  Roles:    %s\n", roleNames(user.Roles))

	if user.ProviderProfile != nil {
		fmt.Fprintln(a.Out)
		fmt.Fprintln(a.Out, "Provider Details")
		fmt.Fprintf(a.Out, "  Business: %s\n", user.ProviderProfile.BusinessName)
		if user.ProviderProfile.Rating > 0 {
			fmt.Fprintf(a.Out, "  Rating:   %d\n", user.ProviderProfile.Rating)
		}
	}

	fmt.Fprintln(a.Out)
	fmt.Fprintln(a.Out, "Custom Profiles")
	profiles, err := a.Profiles.ListForUser(ctx, user.ID)
	if err != nil {
		a.Log.Warn().Err(err).Msg("could not list custom profiles")
		fmt.Fprintln(a.Out, "  (unavailable)")
		return
	}
	if len(profiles) == 0 {
		fmt.Fprintln(a.Out, "  You haven't created any profiles yet.")
		return
	}
	for _, p := range profiles {
		fmt.Fprintf(a.Out, "  %s", p.Title)
		if p.Description != "" {
			fmt.Fprintf(a.Out, ": %s", p.Description)
		}
		fmt.Fprintln(a.Out)
	}
}

func roleNames(roles []domain.Role) string {
	if len(roles) == 0 {
		return "none"
	}
	names := make([]string, 0, len(roles))
	for _, r := range roles {
		names = append(names, r.Name)
	}
	return strings.Join(names, ", ")
}

func valueOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
