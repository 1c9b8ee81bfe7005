package cli

import (
	"github.com/spf13/cobra"

	"github.com/evcraddock/agent-site/internal/listing"
)

func newListingsCmd() *cobra.Command {
	var (
		raw      listing.RawCriteria
		featured bool
		remote   bool
	)

	cmd := &cobra.Command{
		Use:   "listings",
		Short: "List and filter the listing catalog",
		Long: `List the catalog with the same filter the gallery uses.

Values that do not parse as numbers are ignored. With --remote the filter
runs on the server at SITE_SERVER_URL (or the configured server_url).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				ls  []listing.Listing
				err error
			)
			if remote {
				ls, err = remoteListings(raw, featured)
			} else {
				ls, err = localListings(raw, featured)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if isJSON() {
				return printJSON(out, ls)
			}
			return printListingTable(out, ls)
		},
	}

	cmd.Flags().StringVar(&raw.PriceMin, "price-min", "", "minimum price in dollars")
	cmd.Flags().StringVar(&raw.PriceMax, "price-max", "", "maximum price in dollars")
	cmd.Flags().StringVar(&raw.Beds, "beds", "", "minimum bedrooms")
	cmd.Flags().StringVar(&raw.Location, "location", "", "location substring (case-insensitive)")
	cmd.Flags().StringVar(&raw.Status, "status", listing.StatusAll, "status: all, active, pending or sold")
	cmd.Flags().BoolVar(&featured, "featured", false, "only featured listings (ignores other filters)")
	cmd.Flags().BoolVar(&remote, "remote", false, "query a running server instead of the local catalog")

	return cmd
}

func localListings(raw listing.RawCriteria, featured bool) ([]listing.Listing, error) {
	catalog, err := loadCatalog(flagDB)
	if err != nil {
		return nil, err
	}
	if featured {
		return catalog.Featured(), nil
	}
	return catalog.Filter(listing.ParseCriteria(raw)), nil
}

func remoteListings(raw listing.RawCriteria, featured bool) ([]listing.Listing, error) {
	c := newAPIClient()
	if featured {
		return c.FeaturedListings()
	}
	return c.ListListings(raw)
}
