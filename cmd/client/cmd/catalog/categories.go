// cmd/client/cmd/catalog/categories.go
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var categoriesJSON bool

var CategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List product categories",
	Long:  `Lists the active product categories in their display order.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		categories, err := app.Categories(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list categories: %w", err)
		}

		if categoriesJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(categories)
		}

		if len(categories) == 0 {
			fmt.Println("No categories found.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "ID\tName\tDescription\t\n")
		fmt.Fprintf(w, "---\t---\t---\t\n")
		for _, c := range categories {
			fmt.Fprintf(w, "%d\t%s\t%s\t\n", c.ID, c.Name, truncate(c.Description, 60))
		}
		w.Flush()
		fmt.Printf("\nTotal: %d categories\n", len(categories))
		return nil
	},
}

func init() {
	CategoriesCmd.Flags().BoolVar(&categoriesJSON, "json", false, "print as JSON")
}
