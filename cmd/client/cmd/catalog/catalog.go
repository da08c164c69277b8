// cmd/client/cmd/catalog/catalog.go
package catalog

import (
	"fmt"

	"github.com/spf13/cobra"

	"hardstore/cmd/client/cmd/types"
	"hardstore/internal/app/client"
)

// appFrom pulls the initialized client out of the command context.
func appFrom(cmd *cobra.Command) (*client.App, error) {
	app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
	if !ok || app == nil {
		return nil, fmt.Errorf("client is not initialized")
	}
	return app, nil
}

func pageQuery(page, size int, sortBy, sortDir string) client.PageQuery {
	if page == 0 && size == 0 && sortBy == "" && sortDir == "" {
		return client.PageQuery{}
	}
	return client.PageQuery{Page: page, Size: size, SortBy: sortBy, SortDir: sortDir}
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
