// cmd/client/cmd/about.go
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Show the about text for the current language",
	RunE: func(cmd *cobra.Command, _ []string) error {
		text, err := app.AboutText(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to load the about text: %w", err)
		}
		fmt.Println(text)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(aboutCmd)
}
