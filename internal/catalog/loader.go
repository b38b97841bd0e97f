package catalog

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"roamly/pkg/utils"
)

// LoadCSV reads a seed file with a header row:
// id,name,lat,lon,category,price_tier,avg_dwell_min,admission_cost,open_from,open_to
func LoadCSV(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read catalog csv: %w", err)
	}
	if len(rows) == 0 {
		return New(nil), nil
	}

	col := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		col[strings.TrimSpace(strings.ToLower(name))] = i
	}

	field := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	pois := make([]POI, 0, len(rows)-1)
	for n, row := range rows[1:] {
		lat, err := strconv.ParseFloat(field(row, "lat"), 64)
		if err != nil {
			return nil, fmt.Errorf("catalog csv row %d: bad lat: %w", n+2, err)
		}
		lon, err := strconv.ParseFloat(field(row, "lon"), 64)
		if err != nil {
			return nil, fmt.Errorf("catalog csv row %d: bad lon: %w", n+2, err)
		}
		dwell, err := strconv.Atoi(field(row, "avg_dwell_min"))
		if err != nil {
			return nil, fmt.Errorf("catalog csv row %d: bad avg_dwell_min: %w", n+2, err)
		}
		cost, err := strconv.ParseFloat(field(row, "admission_cost"), 64)
		if err != nil {
			return nil, fmt.Errorf("catalog csv row %d: bad admission_cost: %w", n+2, err)
		}

		pois = append(pois, POI{
			ID:            field(row, "id"),
			Name:          field(row, "name"),
			Lat:           lat,
			Lon:           lon,
			Category:      strings.ToLower(field(row, "category")),
			PriceTier:     field(row, "price_tier"),
			AvgDwellMin:   dwell,
			AdmissionCost: cost,
			OpenFrom:      utils.MinuteOfDay(field(row, "open_from")),
			OpenTo:        utils.MinuteOfDay(field(row, "open_to")),
		})
	}

	return New(pois), nil
}
