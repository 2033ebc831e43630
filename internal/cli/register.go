package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/circuna/circuna/internal/core/ports"
)

func (a *App) registerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a Circuna account",
	}
	cmd.AddCommand(a.registerCustomerCmd(), a.registerBusinessCmd())
	return cmd
}

func (a *App) registerCustomerCmd() *cobra.Command {
	var in ports.CustomerInput

	cmd := &cobra.Command{
		Use:   "customer",
		Short: "Register as a customer",
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := a.Registrations.RegisterCustomer(cmd.Context(), in)
			if err != nil {
				return a.fail(err)
			}

			fmt.Fprintf(a.Out, "Welcome, %s.\n\n", user.Name)
			a.renderProfile(cmd.Context(), user)
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Phone, "phone", "", "phone number (10-digit US)")
	cmd.Flags().StringVar(&in.Name, "name", "", "full name")
	cmd.Flags().StringVar(&in.Location, "location", "", "location")
	cmd.Flags().StringVar(&in.Email, "email", "", "email (optional)")
	return cmd
}

func (a *App) registerBusinessCmd() *cobra.Command {
	var in ports.BusinessInput

	cmd := &cobra.Command{
		Use:   "business",
		Short: "Register as a business",
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := a.Registrations.RegisterBusiness(cmd.Context(), in)
			if err != nil {
				return a.fail(err)
			}

			fmt.Fprintf(a.Out, "Welcome, %s.\n\n", user.Name)
			a.renderProfile(cmd.Context(), user)
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Phone, "phone", "", "phone number (10-digit US)")
	cmd.Flags().StringVar(&in.Name, "name", "", "full name")
	cmd.Flags().StringVar(&in.Location, "location", "", "location")
	cmd.Flags().StringVar(&in.Email, "email", "", "email (optional)")
	cmd.Flags().StringVar(&in.BusinessName, "business-name", "", "business name")
	cmd.Flags().IntVar(&in.Rating, "rating", 0, "rating 1-5 (optional)")
	return cmd
}
