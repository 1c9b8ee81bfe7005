// Package cli defines the cobra command tree for the site.
package cli

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/evcraddock/agent-site/internal/client"
	"github.com/evcraddock/agent-site/internal/db"
	"github.com/evcraddock/agent-site/internal/listing"
)

var (
	flagFormat string
	flagDB     string
)

// NewRootCmd creates the root cobra command with global flags.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "site",
		Short:         "Real-estate agent site server and tools",
		Long:          "Serve the agent's listing gallery and contact form API, browse the catalog, and send test leads.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flagFormat, "format", "text", "output format (text|json)")
	root.PersistentFlags().StringVar(&flagDB, "db", "", "SQLite catalog path (default: compiled-in listings; seed default: ~/.config/site/listings.db)")

	root.AddCommand(
		newServeCmd(),
		newListingsCmd(),
		newSeedCmd(),
		newContactCmd(),
		newVersionCmd(),
	)

	return root
}

// openDB opens the SQLite database using the --db flag or default path.
func openDB() (*sql.DB, error) {
	path := flagDB
	if path == "" {
		var err error
		path, err = db.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	return db.Open(path)
}

// loadCatalog returns the catalog from path, or the compiled-in listings
// when path is empty.
func loadCatalog(path string) (*listing.Catalog, error) {
	if path == "" {
		return listing.DefaultCatalog(), nil
	}
	database, err := db.Open(path)
	if err != nil {
		return nil, err
	}
	defer closeDB(database)
	return listing.NewRepository(database).LoadCatalog()
}

// newAPIClient creates an HTTP client for the site API.
func newAPIClient() *client.Client {
	return client.New(getServerURL())
}

// isJSON returns true if the --format flag is set to json.
func isJSON() bool {
	return flagFormat == "json"
}

// closeDB closes the database, logging any error to stderr.
func closeDB(database *sql.DB) {
	if err := database.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: closing database: %v\n", err)
	}
}
