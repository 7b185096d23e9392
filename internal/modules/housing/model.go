// README: Apartment listing record as surfaced to the caller.
package housing

// Listing is one candidate rental at the destination. Price is the monthly
// rent in dollars; zero or negative means the dataset had no usable price
// and the listing is excluded from averaging.
type Listing struct {
	ID               string  `json:"id"`
	FormattedAddress string  `json:"formatted_address"`
	City             string  `json:"city"`
	State            string  `json:"state"`
	ZipCode          string  `json:"zip_code"`
	PropertyType     string  `json:"property_type"`
	Bedrooms         float64 `json:"bedrooms"`
	Bathrooms        float64 `json:"bathrooms"`
	SquareFootage    int     `json:"square_footage"`
	YearBuilt        int     `json:"year_built"`
	Status           string  `json:"status"`
	Price            float64 `json:"price"`
	ListingWebsite   string  `json:"listing_website"`
}
