package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"hardstore/cmd/client/cmd/types"
	"hardstore/internal/app/client"
)

// AuthCmd is the parent command for admin account operations.
var AuthCmd = &cobra.Command{
	Use:   "auth",
	Short: "Admin account management",
	Long:  `Login, registration and profile for the storefront admin account.`,
}

func appFrom(cmd *cobra.Command) (*client.App, error) {
	app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
	if !ok || app == nil {
		return nil, fmt.Errorf("client is not initialized")
	}
	return app, nil
}
