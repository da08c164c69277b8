// cmd/client/cmd/contact.go
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	contactCall     bool
	contactWhatsApp bool
	contactMaps     bool
	contactMessage  string
)

var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Show business contact details",
	Long: `Shows the business contact details served by the backend, with local
fallbacks for any missing field. With --call, --whatsapp or --maps the
matching application is opened instead of printing.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		business, err := app.BusinessConfig(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to load contact details: %w", err)
		}

		switch {
		case contactCall:
			if !app.Launcher().OpenPhone(business.PhoneNumber) {
				return fmt.Errorf("could not open the dialer for %s", business.PhoneNumber)
			}
			fmt.Printf("Dialing %s...\n", business.PhoneNumber)
			return nil
		case contactWhatsApp:
			message := contactMessage
			if message == "" {
				message = "Hello, I would like to know more about your products."
			}
			if !app.Launcher().OpenWhatsApp(business.WhatsApp, message) {
				return fmt.Errorf("could not open WhatsApp for %s", business.WhatsApp)
			}
			fmt.Printf("Opening WhatsApp chat with %s...\n", business.WhatsApp)
			return nil
		case contactMaps:
			if !app.Launcher().OpenMaps(business.Address) {
				return fmt.Errorf("could not open maps for %q", business.Address)
			}
			fmt.Printf("Opening maps at %s...\n", business.Address)
			return nil
		}

		if jsonOutput {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(business)
		}

		fmt.Printf("=== %s ===\n\n", business.BusinessName)
		fmt.Printf("Phone:    %s\n", business.PhoneNumber)
		fmt.Printf("WhatsApp: %s\n", business.WhatsApp)
		if business.Email != "" {
			fmt.Printf("Email:    %s\n", business.Email)
		}
		fmt.Printf("Address:  %s\n", business.Address)
		fmt.Printf("Hours:    %s\n", business.BusinessHours)
		return nil
	},
}

func init() {
	contactCmd.Flags().BoolVar(&contactCall, "call", false, "open the dialer")
	contactCmd.Flags().BoolVar(&contactWhatsApp, "whatsapp", false, "open a WhatsApp chat")
	contactCmd.Flags().BoolVar(&contactMaps, "maps", false, "open the location in maps")
	contactCmd.Flags().StringVarP(&contactMessage, "message", "m", "", "pre-filled WhatsApp message")

	rootCmd.AddCommand(contactCmd)
}
