// README: Moving-help provider catalog entries.
package movers

// Provider is one professional moving-help quote: a crew for a number of
// hours at a flat estimated total.
type Provider struct {
	Name           string `json:"name"`
	Hours          int    `json:"hours"`
	CrewSize       int    `json:"crew_size"`
	EstimatedTotal int64  `json:"estimated_total"`
}

// DefaultProviders is the demo catalog. These are static estimates, not
// live quotes.
var DefaultProviders = []Provider{
	{Name: "QuickMove Helpers", Hours: 2, CrewSize: 2, EstimatedTotal: 220},
	{Name: "College Movers Co.", Hours: 3, CrewSize: 2, EstimatedTotal: 310},
}
