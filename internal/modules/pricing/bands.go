// README: Flight pricing table loader (CSV, loaded once at process start).
package pricing

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// ParseBands reads flight pricing rows from CSV with a single header row and
// columns band_min,band_max,carrier,multiplier.
func ParseBands(r io.Reader) ([]FlightBand, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read flight bands: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("flight bands: no data rows")
	}

	bands := make([]FlightBand, 0, len(records)-1)
	for i, rec := range records[1:] {
		if len(rec) != 4 {
			return nil, fmt.Errorf("flight bands row %d: want 4 columns, got %d", i+2, len(rec))
		}
		min, err := strconv.ParseFloat(rec[0], 64)
		if err != nil {
			return nil, fmt.Errorf("flight bands row %d: bad band_min %q", i+2, rec[0])
		}
		max, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			return nil, fmt.Errorf("flight bands row %d: bad band_max %q", i+2, rec[1])
		}
		mult, err := strconv.ParseFloat(rec[3], 64)
		if err != nil {
			return nil, fmt.Errorf("flight bands row %d: bad multiplier %q", i+2, rec[3])
		}
		if min > max {
			return nil, fmt.Errorf("flight bands row %d: band_min %v above band_max %v", i+2, min, max)
		}
		if rec[2] == "" {
			return nil, fmt.Errorf("flight bands row %d: empty carrier", i+2)
		}
		bands = append(bands, FlightBand{MinMiles: min, MaxMiles: max, Carrier: rec[2], Multiplier: mult})
	}
	return bands, nil
}

// LoadBands parses the flight pricing table from a file path.
func LoadBands(path string) ([]FlightBand, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open flight bands: %w", err)
	}
	defer f.Close()
	return ParseBands(f)
}
