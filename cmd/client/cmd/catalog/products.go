// cmd/client/cmd/catalog/products.go
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"hardstore/internal/model"
)

var (
	productsPage    int
	productsSize    int
	productsSortBy  string
	productsSortDir string
	productsJSON    bool
)

var ProductsCmd = &cobra.Command{
	Use:   "products <category-id>",
	Short: "List products in a category",
	Long: `Lists the products of one category, one page at a time. Without
pagination flags the first page of 50 is fetched, sorted by id ascending.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		categoryID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid category id %q", args[0])
		}

		pq := pageQuery(productsPage, productsSize, productsSortBy, productsSortDir)
		page, err := app.CategoryProducts(cmd.Context(), categoryID, pq)
		if err != nil {
			return fmt.Errorf("failed to list products: %w", err)
		}

		return printProductPage(app.Language(), page, productsJSON)
	},
}

func printProductPage(lang string, page *model.Page[model.Product], asJSON bool) error {
	if asJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(page)
	}

	if page.Empty {
		fmt.Println("No products found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID\tName\tBrand\tDescription\t\n")
	fmt.Fprintf(w, "---\t---\t---\t---\t\n")
	for _, p := range page.Content {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t\n",
			p.ID, p.DisplayName(lang), p.Brand, truncate(p.Description(lang), 40))
	}
	w.Flush()

	fmt.Printf("\nPage %d of %d (%d products total)\n",
		page.Number+1, page.TotalPages, page.TotalElements)
	if !page.Last {
		fmt.Printf("Next page: --page %d\n", page.Number+1)
	}
	return nil
}

func init() {
	ProductsCmd.Flags().IntVar(&productsPage, "page", 0, "page number, starting at 0")
	ProductsCmd.Flags().IntVar(&productsSize, "size", 0, "page size")
	ProductsCmd.Flags().StringVar(&productsSortBy, "sort", "", "sort field")
	ProductsCmd.Flags().StringVar(&productsSortDir, "dir", "", "sort direction (asc, desc)")
	ProductsCmd.Flags().BoolVar(&productsJSON, "json", false, "print as JSON")
}
