// cmd/client/cmd/quote/list.go
package quote

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"hardstore/internal/app/client"
	"hardstore/internal/model"
)

var (
	listStatus string
	listPage   int
	listSize   int
	listJSON   bool
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "List quote requests (admin)",
	Long: `Lists the quote requests the backend has recorded. Requires an admin
login; see 'hardstore auth login'.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		pq := client.PageQuery{}
		if listPage != 0 || listSize != 0 {
			pq = client.PageQuery{Page: listPage, Size: listSize}
		}

		var page *model.Page[model.QuoteRequest]
		if listStatus != "" {
			status, ok := model.ParseQuoteStatus(listStatus)
			if !ok {
				return fmt.Errorf("unknown status %q (want pending, contacted or completed)", listStatus)
			}
			page, err = app.QuotesByStatus(cmd.Context(), status, pq)
		} else {
			page, err = app.QuoteList(cmd.Context(), pq)
		}
		if err != nil {
			return fmt.Errorf("failed to list quotes: %w", err)
		}

		if listJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(page)
		}

		if page.Empty {
			fmt.Println("No quote requests found.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "ID\tName\tPhone\tQuantity\tLocation\tStatus\t\n")
		fmt.Fprintf(w, "---\t---\t---\t---\t---\t---\t\n")
		for _, q := range page.Content {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t\n",
				q.ID, q.Name, q.Phone, q.Quantity, q.Location, q.Status)
		}
		w.Flush()

		fmt.Printf("\nPage %d of %d (%d requests total)\n",
			page.Number+1, page.TotalPages, page.TotalElements)
		return nil
	},
}

var StatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show quote request statistics (admin)",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		stats, err := app.QuoteStatistics(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to load quote statistics: %w", err)
		}

		fmt.Println("=== Quote requests ===")
		fmt.Printf("  Total:     %d\n", stats.Total)
		fmt.Printf("  Pending:   %d\n", stats.Pending)
		fmt.Printf("  Contacted: %d\n", stats.Contacted)
		fmt.Printf("  Completed: %d\n", stats.Completed)
		return nil
	},
}

func init() {
	ListCmd.Flags().StringVarP(&listStatus, "status", "s", "", "filter by status (pending, contacted, completed)")
	ListCmd.Flags().IntVar(&listPage, "page", 0, "page number, starting at 0")
	ListCmd.Flags().IntVar(&listSize, "size", 0, "page size")
	ListCmd.Flags().BoolVar(&listJSON, "json", false, "print as JSON")
}
