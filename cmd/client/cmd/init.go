// cmd/client/cmd/init.go
package cmd

import (
	"hardstore/cmd/client/cmd/auth"
	"hardstore/cmd/client/cmd/catalog"
	"hardstore/cmd/client/cmd/quote"
)

func init() {
	// Catalog browsing.
	rootCmd.AddCommand(catalog.CategoriesCmd)
	rootCmd.AddCommand(catalog.ProductsCmd)
	rootCmd.AddCommand(catalog.ProductCmd)
	rootCmd.AddCommand(catalog.SearchCmd)

	// Quote workflow.
	rootCmd.AddCommand(quote.QuoteCmd)
	quote.QuoteCmd.AddCommand(quote.SubmitCmd)
	quote.QuoteCmd.AddCommand(quote.ListCmd)
	quote.QuoteCmd.AddCommand(quote.StatsCmd)

	// Admin authentication.
	rootCmd.AddCommand(auth.AuthCmd)
	auth.AuthCmd.AddCommand(auth.LoginCmd)
	auth.AuthCmd.AddCommand(auth.RegisterCmd)
	auth.AuthCmd.AddCommand(auth.ProfileCmd)
	auth.AuthCmd.AddCommand(auth.LogoutCmd)
}
