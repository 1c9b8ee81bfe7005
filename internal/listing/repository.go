package listing

import (
	"database/sql"
	"fmt"
)

// Repository reads and seeds the listings table of a catalog database.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a listing repository.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const selectColumns = `id, price, address, location, beds, baths, sqft, status, featured, image, link`

// All returns every stored listing in display order.
func (r *Repository) All() (listings []Listing, err error) {
	rows, err := r.db.Query(fmt.Sprintf("SELECT %s FROM listings ORDER BY position, id", selectColumns))
	if err != nil {
		return nil, fmt.Errorf("listing catalog: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing rows: %w", closeErr)
		}
	}()

	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning listing: %w", err)
		}
		listings = append(listings, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating listings: %w", err)
	}

	return listings, nil
}

// Replace swaps the stored catalog for listings in a single transaction.
// It is a build-time operation; the server only ever reads.
func (r *Repository) Replace(listings []Listing) (err error) {
	for _, l := range listings {
		if err := l.Validate(); err != nil {
			return err
		}
	}

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				err = fmt.Errorf("%w (also failed to roll back: %v)", err, rbErr)
			}
		}
	}()

	if _, err = tx.Exec("DELETE FROM listings"); err != nil {
		return fmt.Errorf("clearing listings: %w", err)
	}

	const insertSQL = `INSERT INTO listings
		(id, position, price, address, location, beds, baths, sqft, status, featured, image, link)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	for i, l := range listings {
		if _, err = tx.Exec(insertSQL,
			l.ID, i, l.Price, l.Address, l.Location,
			l.Beds, l.Baths, l.Sqft, string(l.Status), l.Featured,
			l.Image, l.Link,
		); err != nil {
			return fmt.Errorf("inserting listing %d: %w", l.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("committing listings: %w", err)
	}
	return nil
}

// LoadCatalog reads the stored listings into an immutable catalog.
func (r *Repository) LoadCatalog() (*Catalog, error) {
	listings, err := r.All()
	if err != nil {
		return nil, err
	}
	if len(listings) == 0 {
		return nil, fmt.Errorf("catalog database has no listings (run `site seed`)")
	}
	return NewCatalog(listings)
}

// scanListing scans a listing from a database row.
func scanListing(row interface{ Scan(...interface{}) error }) (Listing, error) {
	var l Listing
	var status string
	err := row.Scan(
		&l.ID, &l.Price, &l.Address, &l.Location,
		&l.Beds, &l.Baths, &l.Sqft, &status, &l.Featured,
		&l.Image, &l.Link,
	)
	if err != nil {
		return Listing{}, err
	}
	l.Status = Status(status)
	return l, nil
}
