package listing

import "fmt"

// Catalog is the immutable listing set the site serves. It is built once at
// startup and only ever handed out as copies.
type Catalog struct {
	listings []Listing
	byID     map[int64]int
}

// NewCatalog validates listings and returns a catalog over a private copy.
func NewCatalog(listings []Listing) (*Catalog, error) {
	c := &Catalog{
		listings: make([]Listing, len(listings)),
		byID:     make(map[int64]int, len(listings)),
	}
	copy(c.listings, listings)

	for i, l := range c.listings {
		if err := l.Validate(); err != nil {
			return nil, err
		}
		if _, dup := c.byID[l.ID]; dup {
			return nil, fmt.Errorf("duplicate listing id %d", l.ID)
		}
		c.byID[l.ID] = i
	}

	return c, nil
}

// DefaultCatalog returns a catalog over the compiled-in listings.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(Defaults())
	if err != nil {
		panic(fmt.Sprintf("invalid built-in listings: %v", err))
	}
	return c
}

// Len returns the number of listings.
func (c *Catalog) Len() int {
	return len(c.listings)
}

// All returns every listing in display order.
func (c *Catalog) All() []Listing {
	out := make([]Listing, len(c.listings))
	copy(out, c.listings)
	return out
}

// Get returns the listing with the given ID.
func (c *Catalog) Get(id int64) (Listing, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Listing{}, false
	}
	return c.listings[i], true
}

// Filter applies criteria to the catalog.
func (c *Catalog) Filter(crit Criteria) []Listing {
	return Filter(c.listings, crit)
}

// Featured returns the featured listings.
func (c *Catalog) Featured() []Listing {
	return Featured(c.listings)
}
