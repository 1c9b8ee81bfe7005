package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/evcraddock/agent-site/internal/contact"
	"github.com/evcraddock/agent-site/internal/listing"
)

// printJSON marshals v as indented JSON and writes it to w.
func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printListingTable prints listings as a formatted table.
func printListingTable(out io.Writer, ls []listing.Listing) error {
	if len(ls) == 0 {
		_, err := fmt.Fprintln(out, "No listings match.")
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "ID\tADDRESS\tLOCATION\tPRICE\tBED\tBATH\tSQFT\tSTATUS"); err != nil {
		return fmt.Errorf("writing table header: %w", err)
	}
	if _, err := fmt.Fprintln(w, "--\t-------\t--------\t-----\t---\t----\t----\t------"); err != nil {
		return fmt.Errorf("writing table separator: %w", err)
	}

	for _, l := range ls {
		status := string(l.Status)
		if l.Featured {
			status += "*"
		}
		if _, err := fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%d\t%s\t%s\n",
			l.ID, truncate(l.Address, 30), l.Location, listing.FormatPrice(l.Price),
			l.Beds, l.Baths, formatCount(l.Sqft), status); err != nil {
			return fmt.Errorf("writing table row: %w", err)
		}
	}

	return w.Flush()
}

// printReceipt prints a contact submission receipt.
func printReceipt(w io.Writer, r *contact.Receipt) error {
	if _, err := fmt.Fprintf(w, "Submitted (method: %s)\n", r.Method); err != nil {
		return err
	}
	if r.Message != "" {
		if _, err := fmt.Fprintln(w, r.Message); err != nil {
			return err
		}
	}
	return nil
}

// formatCount formats n with thousands separators.
func formatCount(n int64) string {
	return strings.Replace(listing.FormatPrice(n), "$", "", 1)
}

// truncate shortens s to max runes, adding "..." if truncated.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
