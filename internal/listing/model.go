// Package listing provides the listing model, the in-memory catalog and the
// gallery filter.
package listing

import (
	"fmt"
	"strings"
)

// Status is where a listing is in the sale lifecycle.
type Status string

const (
	StatusActive  Status = "active"
	StatusPending Status = "pending"
	StatusSold    Status = "sold"
)

// ValidStatus returns true if s is a known listing status.
func ValidStatus(s string) bool {
	switch Status(s) {
	case StatusActive, StatusPending, StatusSold:
		return true
	}
	return false
}

// Listing is one property shown in the gallery. Prices are whole dollars.
type Listing struct {
	ID       int64  `json:"id"`
	Price    int64  `json:"price"`
	Address  string `json:"address"`
	Location string `json:"location"`
	Beds     int    `json:"beds"`
	Baths    int    `json:"baths"`
	Sqft     int64  `json:"sqft"`
	Status   Status `json:"status"`
	Featured bool   `json:"featured"`
	Image    string `json:"image"`
	Link     string `json:"link"`
}

// Validate checks the invariants every catalog entry must satisfy.
func (l Listing) Validate() error {
	var problems []string
	if l.ID <= 0 {
		problems = append(problems, "id must be positive")
	}
	if l.Price <= 0 {
		problems = append(problems, "price must be positive")
	}
	if l.Beds <= 0 {
		problems = append(problems, "beds must be positive")
	}
	if l.Baths <= 0 {
		problems = append(problems, "baths must be positive")
	}
	if l.Sqft <= 0 {
		problems = append(problems, "sqft must be positive")
	}
	if !ValidStatus(string(l.Status)) {
		problems = append(problems, fmt.Sprintf("unknown status %q", l.Status))
	}
	if strings.TrimSpace(l.Address) == "" {
		problems = append(problems, "address is required")
	}
	if strings.TrimSpace(l.Location) == "" {
		problems = append(problems, "location is required")
	}
	if len(problems) > 0 {
		return fmt.Errorf("listing %d: %s", l.ID, strings.Join(problems, "; "))
	}
	return nil
}

// FormatPrice formats whole dollars as "$1,850,000".
func FormatPrice(dollars int64) string {
	sign := ""
	if dollars < 0 {
		sign = "-"
		dollars = -dollars
	}
	s := fmt.Sprintf("%d", dollars)
	if len(s) <= 3 {
		return sign + "$" + s
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	return sign + "$" + strings.Join(parts, ",")
}
