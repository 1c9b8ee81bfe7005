// Package content holds the site's compiled-in editorial content: the
// neighborhood guide, client testimonials and headline stats.
package content

import "strings"

// NeighborhoodStats are the headline numbers shown on a neighborhood card.
type NeighborhoodStats struct {
	AvgPrice string `json:"avgPrice"`
	Schools  string `json:"schools"`
	Commute  string `json:"commute"`
}

// Neighborhood is one entry in the neighborhood guide.
type Neighborhood struct {
	Name        string            `json:"name"`
	Slug        string            `json:"slug"`
	Tagline     string            `json:"tagline"`
	Description string            `json:"description"`
	Stats       NeighborhoodStats `json:"stats"`
	Image       string            `json:"image"`
}

// Testimonial is a client quote.
type Testimonial struct {
	Quote    string `json:"quote"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Image    string `json:"image"`
}

// Stat is a headline figure on the home page.
type Stat struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

var neighborhoods = []Neighborhood{
	{
		Name:        "Scarsdale",
		Slug:        "scarsdale",
		Tagline:     "The Premier Westchester Village",
		Description: "Known globally for its exceptional schools, grand Tudor estates, and vibrant village center. Scarsdale offers a quintessential suburban luxury experience with a quick 35-minute commute to Grand Central.",
		Stats:       NeighborhoodStats{AvgPrice: "$1.8M", Schools: "A+", Commute: "35 Min"},
		Image:       "https://images.unsplash.com/photo-1600596542815-ffad4c1539a9?w=1600&q=80",
	},
	{
		Name:        "Bronxville",
		Slug:        "bronxville",
		Tagline:     "Historic Charm & Walkability",
		Description: "A walkable, one-square-mile village featuring stunning medieval and Tudor architecture. Bronxville provides an intimate, incredibly tight-knit community atmosphere steps away from boutique dining.",
		Stats:       NeighborhoodStats{AvgPrice: "$2.1M", Schools: "A+", Commute: "28 Min"},
		Image:       "https://images.unsplash.com/photo-1600607687939-ce8a6c25118c?w=1600&q=80",
	},
	{
		Name:        "Rye",
		Slug:        "rye",
		Tagline:     "Prestigious Sound Shore Living",
		Description: "Combining historic appeal with a coastal lifestyle, Rye offers private beaches, elite country clubs, and stunning waterfront manors along the Long Island Sound.",
		Stats:       NeighborhoodStats{AvgPrice: "$1.9M", Schools: "A", Commute: "40 Min"},
		Image:       "https://images.unsplash.com/photo-1512917774080-9991f1c4c750?w=1600&q=80",
	},
	{
		Name:        "Larchmont",
		Slug:        "larchmont",
		Tagline:     "Vibrant Waterfront Community",
		Description: "Life in Larchmont revolves around the water, yacht clubs, and a bustling, charming downtown strip filled with French bakeries and incredible local dining.",
		Stats:       NeighborhoodStats{AvgPrice: "$1.5M", Schools: "A", Commute: "33 Min"},
		Image:       "https://images.unsplash.com/photo-1564013799919-ab600027ffc6?w=1600&q=80",
	},
	{
		Name:        "Bedford",
		Slug:        "bedford",
		Tagline:     "Equestrian Estates & Privacy",
		Description: "For those seeking acreage, privacy, and equestrian facilities. Bedford features dirt roads, massive historic estates, and massive celebrity draw.",
		Stats:       NeighborhoodStats{AvgPrice: "$2.5M", Schools: "B+", Commute: "55 Min"},
		Image:       "https://images.unsplash.com/photo-1580587771525-78b9dba3b914?w=1600&q=80",
	},
}

var testimonials = []Testimonial{
	{
		Quote:    "Sam made selling our home an absolute breeze. His knowledge of the Westchester market and attention to detail exceeded all our expectations. We got above asking price in just two weeks!",
		Name:     "Michael & Jennifer Thompson",
		Location: "Sold in Chappaqua",
		Image:    "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=200&q=80",
	},
	{
		Quote:    "As first-time homebuyers, we were nervous about the process. Sam's patience and expertise guided us every step of the way. He found us our dream home in Armonk.",
		Name:     "David Chen",
		Location: "Purchased in Armonk",
		Image:    "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=200&q=80",
	},
	{
		Quote:    "Sam's understanding of luxury properties is unmatched. He marketed our estate beautifully and connected us with serious buyers immediately. Truly a five-star experience.",
		Name:     "Elizabeth Hartwell",
		Location: "Sold in Bedford",
		Image:    "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=200&q=80",
	},
}

var stats = []Stat{
	{Value: "$12.38M", Label: "Closed Volume"},
	{Value: "18", Label: "Transactions"},
	{Value: "Top 1.5%", Label: "Nationwide"},
	{Value: "2025", Label: "RealTrends"},
}

// Neighborhoods returns the neighborhood guide in display order.
func Neighborhoods() []Neighborhood {
	out := make([]Neighborhood, len(neighborhoods))
	copy(out, neighborhoods)
	return out
}

// NeighborhoodBySlug finds a neighborhood by slug, ignoring case.
func NeighborhoodBySlug(slug string) (Neighborhood, bool) {
	for _, n := range neighborhoods {
		if strings.EqualFold(n.Slug, slug) {
			return n, true
		}
	}
	return Neighborhood{}, false
}

// Testimonials returns client testimonials in display order.
func Testimonials() []Testimonial {
	out := make([]Testimonial, len(testimonials))
	copy(out, testimonials)
	return out
}

// Stats returns the home page headline figures.
func Stats() []Stat {
	out := make([]Stat, len(stats))
	copy(out, stats)
	return out
}
