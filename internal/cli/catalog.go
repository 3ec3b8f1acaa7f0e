package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/pourlog/internal/catalog"
)

func newCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog [path]",
		Short: "Validate a catalog file and summarise it",
		Long:  "Validate a catalog file and summarise it. Without a path the embedded catalog is checked.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				cat    *catalog.Catalog
				err    error
				source = "embedded"
			)
			if len(args) == 1 {
				source = args[0]
				cat, err = catalog.Load(source)
			} else {
				cat, err = catalog.Default()
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "catalog %s is valid\n", source)
			fmt.Fprintf(out, "  venues:          %d\n", len(cat.Venues))
			fmt.Fprintf(out, "  articles:        %d\n", len(cat.Articles))
			fmt.Fprintf(out, "  achievements:    %d\n", len(cat.Achievements))
			fmt.Fprintf(out, "  recommendations: %d\n", len(cat.Recommendations))
			if cat.Featured != "" {
				fmt.Fprintf(out, "  featured:        %s\n", cat.Featured)
			}
			return nil
		},
	}
}
