// cmd/client/cmd/auth/register.go
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

var (
	registerUsername string
	registerEmail    string
	registerFullName string
)

var RegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a new admin account",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		reader := bufio.NewReader(os.Stdin)
		username := registerUsername
		if username == "" {
			fmt.Print("Username: ")
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

		fmt.Print("Repeat password: ")
		confirm, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		fmt.Println()

		if string(password) != string(confirm) {
			return fmt.Errorf("passwords do not match")
		}
		if len(password) < 8 {
			return fmt.Errorf("password must be at least 8 characters")
		}

		if err := app.Register(cmd.Context(), model.RegisterRequest{
			Username: username,
			Password: string(password),
			Email:    registerEmail,
			FullName: registerFullName,
		}); err != nil {
			return fmt.Errorf("registration failed: %w", err)
		}

		fmt.Println()
		fmt.Printf("Account %q registered. Log in with: hardstore auth login\n", username)
		return nil
	},
}

func init() {
	RegisterCmd.Flags().StringVarP(&registerUsername, "username", "u", "", "admin username")
	RegisterCmd.Flags().StringVarP(&registerEmail, "email", "e", "", "contact email")
	RegisterCmd.Flags().StringVar(&registerFullName, "name", "", "full name")
}
