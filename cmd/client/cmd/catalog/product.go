// cmd/client/cmd/catalog/product.go
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var (
	productLang string
	productJSON bool
)

var ProductCmd = &cobra.Command{
	Use:   "product <id>",
	Short: "Show one product",
	Long: `Shows a single product with its specifications and usage notes,
localized to the current language preference or to --lang.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid product id %q", args[0])
		}

		lang := productLang
		if lang == "" {
			lang = app.Language()
		}

		product, err := app.Product(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("failed to load product %d: %w", id, err)
		}

		if productJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(product)
		}

		fmt.Printf("=== %s ===\n\n", product.DisplayName(lang))
		if product.Brand != "" {
			fmt.Printf("Brand:    %s\n", product.Brand)
		}
		fmt.Printf("Category: %d\n", product.CategoryID)
		if desc := product.Description(lang); desc != "" {
			fmt.Printf("\n%s\n", desc)
		}
		if product.TechnicalSpecs != "" {
			fmt.Printf("\nSpecifications:\n%s\n", product.TechnicalSpecs)
		}
		if product.UsageInfo != "" {
			fmt.Printf("\nUsage:\n%s\n", product.UsageInfo)
		}

		fmt.Printf("\nRequest a quote: hardstore quote submit --product-id %d\n", product.ID)
		return nil
	},
}

func init() {
	ProductCmd.Flags().StringVar(&productLang, "lang", "", "language code for localized fields")
	ProductCmd.Flags().BoolVar(&productJSON, "json", false, "print as JSON")
}
