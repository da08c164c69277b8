// cmd/client/cmd/sync.go
package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var syncStatus bool

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Refresh the local catalog snapshots",
	Long: `Re-fetches categories, banners, business configuration and languages,
replacing the locally cached snapshots used as offline fallbacks. With
--status, prints when the snapshots were last refreshed instead.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if syncStatus {
			last, ok := app.Cache().LastSync()
			if !ok {
				fmt.Println("Snapshots have never been refreshed.")
				return nil
			}
			fmt.Printf("Last refreshed: %s (%s ago)\n",
				last.Local().Format("2006-01-02 15:04:05"),
				time.Since(last).Round(time.Second))
			return nil
		}

		fmt.Println("Refreshing snapshots...")
		start := time.Now()

		bundle, err := app.RefreshSnapshots(cmd.Context())
		if err != nil {
			return fmt.Errorf("refresh failed: %w", err)
		}

		fmt.Printf("Done in %v\n", time.Since(start).Round(time.Millisecond))
		fmt.Printf("  Categories: %d\n", len(bundle.Categories))
		fmt.Printf("  Banners:    %d\n", len(bundle.Banners))
		fmt.Printf("  Languages:  %d\n", len(bundle.Languages))
		return nil
	},
}

func init() {
	syncCmd.Flags().BoolVar(&syncStatus, "status", false, "show when snapshots were last refreshed")
	rootCmd.AddCommand(syncCmd)
}
