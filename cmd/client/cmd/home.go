// cmd/client/cmd/home.go
package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var homeCmd = &cobra.Command{
	Use:   "home",
	Short: "Show the storefront landing view",
	Long: `Loads the landing bundle: categories, promotional banners, business
contact details and supported languages. The four fetches run concurrently
and the view renders only when all of them succeed, so the output is either
complete or a single retry prompt.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		bundle, err := app.Home().Load(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to load the home view: %w", err)
		}

		if jsonOutput {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(bundle)
		}

		fmt.Printf("=== %s ===\n\n", cfg.BusinessName)

		if len(bundle.Banners) > 0 {
			fmt.Println("Promotions:")
			for _, b := range bundle.Banners {
				fmt.Printf("  * %s\n", b.Title)
			}
			fmt.Println()
		}

		fmt.Printf("Categories (%d):\n", len(bundle.Categories))
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  ID\tName\tDescription\t\n")
		for _, c := range bundle.Categories {
			fmt.Fprintf(w, "  %d\t%s\t%s\t\n", c.ID, c.Name, truncate(c.Description, 50))
		}
		w.Flush()
		fmt.Println()

		fmt.Println("Contact:")
		fmt.Printf("  Phone:    %s\n", bundle.Config.PhoneNumber)
		fmt.Printf("  WhatsApp: %s\n", bundle.Config.WhatsApp)
		fmt.Printf("  Address:  %s\n", bundle.Config.Address)

		if len(bundle.Languages) > 0 {
			fmt.Print("\nLanguages: ")
			for i, l := range bundle.Languages {
				if i > 0 {
					fmt.Print(", ")
				}
				fmt.Print(l.Code)
			}
			fmt.Println()
		}

		fmt.Printf("\nFetched at %s\n", bundle.FetchedAt.Format("2006-01-02 15:04:05"))
		return nil
	},
}

// truncate shortens on rune boundaries so localized names never get cut
// mid-character.
func truncate(s string, length int) string {
	runes := []rune(s)
	if len(runes) <= length {
		return s
	}
	return string(runes[:length-3]) + "..."
}

func init() {
	rootCmd.AddCommand(homeCmd)
}
