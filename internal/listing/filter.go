package listing

import (
	"strconv"
	"strings"
)

// StatusAll disables the status constraint.
const StatusAll = "all"

// Criteria narrows the listing set. A nil pointer or empty string means the
// dimension is unconstrained.
type Criteria struct {
	PriceMin *int64
	PriceMax *int64
	MinBeds  *int
	Location string // case-insensitive substring of Listing.Location
	Status   string // "all", "" or a Status value; matched exactly
}

// RawCriteria is the filter panel's state as the visitor typed it.
type RawCriteria struct {
	PriceMin string `json:"priceMin"`
	PriceMax string `json:"priceMax"`
	Beds     string `json:"beds"`
	Location string `json:"location"`
	Status   string `json:"status"`
}

// ParseCriteria converts raw panel input into Criteria. Numbers that do not
// parse, negative prices and non-positive bed counts are treated as unset so
// a half-typed value never empties the gallery or produces an error.
func ParseCriteria(raw RawCriteria) Criteria {
	c := Criteria{
		Location: raw.Location,
		Status:   raw.Status,
	}
	if v, ok := parseNonNegative(raw.PriceMin); ok {
		c.PriceMin = &v
	}
	if v, ok := parseNonNegative(raw.PriceMax); ok {
		c.PriceMax = &v
	}
	if v, ok := parseNonNegative(raw.Beds); ok && v > 0 {
		beds := int(v)
		c.MinBeds = &beds
	}
	return c
}

func parseNonNegative(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

// Matches reports whether l satisfies every constraint in c.
func (c Criteria) Matches(l Listing) bool {
	if c.Status != "" && c.Status != StatusAll && string(l.Status) != c.Status {
		return false
	}
	if c.MinBeds != nil && l.Beds < *c.MinBeds {
		return false
	}
	if c.PriceMin != nil && l.Price < *c.PriceMin {
		return false
	}
	if c.PriceMax != nil && l.Price > *c.PriceMax {
		return false
	}
	if c.Location != "" && !strings.Contains(strings.ToLower(l.Location), strings.ToLower(c.Location)) {
		return false
	}
	return true
}

// Filter returns the listings matching c, in their original order.
// The result is never nil and never aliases the input.
func Filter(listings []Listing, c Criteria) []Listing {
	out := make([]Listing, 0, len(listings))
	for _, l := range listings {
		if c.Matches(l) {
			out = append(out, l)
		}
	}
	return out
}

// Featured returns the featured listings, in their original order.
func Featured(listings []Listing) []Listing {
	out := make([]Listing, 0, len(listings))
	for _, l := range listings {
		if l.Featured {
			out = append(out, l)
		}
	}
	return out
}
