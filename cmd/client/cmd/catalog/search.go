// cmd/client/cmd/catalog/search.go
package catalog

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	searchCategory int64
	searchPage     int
	searchSize     int
	searchJSON     bool
)

var SearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search products by name",
	Long:  `Searches products by free text, optionally scoped to one category.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		query := strings.Join(args, " ")
		var categoryID *int64
		if searchCategory > 0 {
			categoryID = &searchCategory
		}

		pq := pageQuery(searchPage, searchSize, "", "")
		page, err := app.SearchProducts(cmd.Context(), query, categoryID, pq)
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}

		if page.Empty && !searchJSON {
			fmt.Printf("No products match %q.\n", query)
			return nil
		}
		return printProductPage(app.Language(), page, searchJSON)
	},
}

func init() {
	SearchCmd.Flags().Int64VarP(&searchCategory, "category", "c", 0, "restrict to a category id")
	SearchCmd.Flags().IntVar(&searchPage, "page", 0, "page number, starting at 0")
	SearchCmd.Flags().IntVar(&searchSize, "size", 0, "page size")
	SearchCmd.Flags().BoolVar(&searchJSON, "json", false, "print as JSON")
}
