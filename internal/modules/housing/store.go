// README: Listings store backed by PostgreSQL (imported RentCast dataset).
package housing

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// ListByCity returns up to limit listings in the destination city priced at
// or under maxPrice, cheapest first. city accepts "Seattle" or "Seattle, WA".
func (s *Store) ListByCity(ctx context.Context, city string, maxPrice int64, limit int) ([]Listing, error) {
	cityPart, statePart := splitCityState(city)

	rows, err := s.db.Query(ctx, `
		SELECT id, formatted_address, city, state, zip_code, property_type,
		       bedrooms, bathrooms, square_footage, year_built, status,
		       price, listing_website
		FROM listings
		WHERE lower(city) = $1
		  AND ($2 = '' OR upper(state) = $2)
		  AND price > 0
		  AND price <= $3
		ORDER BY price ASC
		LIMIT $4`,
		cityPart, statePart, maxPrice, limit)
	if err != nil {
		return nil, fmt.Errorf("query listings: %w", err)
	}
	defer rows.Close()

	var listings []Listing
	for rows.Next() {
		var l Listing
		if err := rows.Scan(
			&l.ID, &l.FormattedAddress, &l.City, &l.State, &l.ZipCode,
			&l.PropertyType, &l.Bedrooms, &l.Bathrooms, &l.SquareFootage,
			&l.YearBuilt, &l.Status, &l.Price, &l.ListingWebsite,
		); err != nil {
			return nil, fmt.Errorf("scan listing: %w", err)
		}
		listings = append(listings, l)
	}
	return listings, rows.Err()
}

// splitCityState normalizes "Seattle, WA" into ("seattle", "WA") and a bare
// city name into ("seattle", "").
func splitCityState(city string) (string, string) {
	if i := strings.Index(city, ","); i >= 0 {
		return strings.ToLower(strings.TrimSpace(city[:i])), strings.ToUpper(strings.TrimSpace(city[i+1:]))
	}
	return strings.ToLower(strings.TrimSpace(city)), ""
}
