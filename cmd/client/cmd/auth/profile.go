// cmd/client/cmd/auth/profile.go
package auth

import (
	"fmt"

	"github.com/spf13/cobra"
)

var ProfileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the logged-in admin profile",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		profile, err := app.Profile(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to load profile (are you logged in?): %w", err)
		}

		fmt.Printf("Username: %s\n", profile.Username)
		if profile.FullName != "" {
			fmt.Printf("Name:     %s\n", profile.FullName)
		}
		if profile.Email != "" {
			fmt.Printf("Email:    %s\n", profile.Email)
		}
		return nil
	},
}

var LogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored admin token",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		if err := app.Logout(); err != nil {
			return fmt.Errorf("failed to clear the stored token: %w", err)
		}
		fmt.Println("Logged out.")
		return nil
	},
}
