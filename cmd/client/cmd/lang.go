// cmd/client/cmd/lang.go
package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var langCmd = &cobra.Command{
	Use:   "lang [code]",
	Short: "Show or set the display language",
	Long: `Without arguments, lists the languages the backend supports and marks
the current preference. With a code argument, persists that language so
product names and quote messages come back localized.

The code is checked against the backend's active languages; when the
backend is unreachable the preference is stored unverified.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			if err := app.SetLanguage(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("failed to set language: %w", err)
			}
			fmt.Printf("Language set to %q\n", args[0])
			return nil
		}

		current := app.Language()
		languages, err := app.Languages(cmd.Context())
		if err != nil {
			fmt.Printf("Current language: %s (language list unavailable)\n", current)
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "Code\tName\tNative\t\t\n")
		for _, l := range languages {
			if !l.IsActive {
				continue
			}
			marker := ""
			if l.Code == current {
				marker = "(current)"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t\n", l.Code, l.Name, l.NativeName, marker)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(langCmd)
}
