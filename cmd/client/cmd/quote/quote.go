// cmd/client/cmd/quote/quote.go
package quote

import (
	"fmt"

	"github.com/spf13/cobra"

	"hardstore/cmd/client/cmd/types"
	"hardstore/internal/app/client"
)

// QuoteCmd is the parent command for the quote workflow.
var QuoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Request and manage price quotes",
	Long: `Submit quote requests to the business and, for admins, review the
requests that came in.`,
}

func appFrom(cmd *cobra.Command) (*client.App, error) {
	app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
	if !ok || app == nil {
		return nil, fmt.Errorf("client is not initialized")
	}
	return app, nil
}
