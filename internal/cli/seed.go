package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evcraddock/agent-site/internal/listing"
)

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Write the built-in listings to the catalog database",
		Long:  "Replace the contents of the --db catalog with the built-in listings. The server only reads this file.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			database, err := openDB()
			if err != nil {
				return err
			}
			defer closeDB(database)

			ls := listing.Defaults()
			if err := listing.NewRepository(database).Replace(ls); err != nil {
				return fmt.Errorf("seeding catalog: %w", err)
			}

			if isJSON() {
				return printJSON(cmd.OutOrStdout(), map[string]int{"seeded": len(ls)})
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d listings.\n", len(ls))
			return err
		},
	}
}
