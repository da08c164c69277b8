// cmd/client/cmd/auth/login.go
package auth

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"hardstore/internal/model"
)

var loginUsername string

var LoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in as an admin",
	Long: `Authenticates against the storefront backend.

The token is stored locally so later admin commands work without
logging in again.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		username := loginUsername
		if username == "" {
			fmt.Print("Username: ")
			reader := bufio.NewReader(os.Stdin)
			line, err := reader.ReadString('\n')
			if err != nil {
				return fmt.Errorf("failed to read username: %w", err)
			}
			username = strings.TrimSpace(line)
		}

		fmt.Print("Password: ")
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		fmt.Println()

		fmt.Println("Authenticating...")
		resp, err := app.Login(cmd.Context(), model.LoginCredentials{
			Username: username,
			Password: string(password),
		})
		if err != nil {
			return fmt.Errorf("login failed: %w", err)
		}

		fmt.Println()
		if resp.FullName != "" {
			fmt.Printf("Logged in as %s (%s)\n", resp.FullName, resp.Username)
		} else {
			fmt.Printf("Logged in as %s\n", resp.Username)
		}
		return nil
	},
}

func init() {
	LoginCmd.Flags().StringVarP(&loginUsername, "username", "u", "", "admin username")
}
