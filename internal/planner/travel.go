package planner

import (
	"math"
	"strings"
)

const earthRadiusKm = 6371.0

// Location is a point on the map; the day starts from downtown Boston.
type Location struct {
	Lat float64
	Lon float64
}

var StartLocation = Location{Lat: 42.3601, Lon: -71.0589}

func haversineKm(a, b Location) float64 {
	dlat := (b.Lat - a.Lat) * math.Pi / 180
	dlon := (b.Lon - a.Lon) * math.Pi / 180
	la1 := a.Lat * math.Pi / 180
	la2 := b.Lat * math.Pi / 180
	x := math.Pow(math.Sin(dlat/2), 2) + math.Cos(la1)*math.Cos(la2)*math.Pow(math.Sin(dlon/2), 2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(x))
}

// SpeedKmh picks the travel speed. A car beats the mobility mode; unknown
// modes fall back to walking pace.
func SpeedKmh(mobility string, hasCar bool) float64 {
	if hasCar {
		return 25.0
	}
	switch strings.ToLower(mobility) {
	case "mbta":
		return 15.0
	case "rideshare":
		return 25.0
	default:
		return 5.0
	}
}

// TravelMinutes estimates the leg duration from a to b. Base minutes
// truncate toward zero. With live constraints on, departures whose hour of
// day falls in the morning [8,10] or evening [17,19] rush get a 1.5x
// multiplier, rounded up, never below one minute.
func TravelMinutes(a, b Location, speedKmh float64, clockMinute int, live bool) int {
	hours := haversineKm(a, b) / math.Max(speedKmh, 1e-6)
	mins := int(hours * 60)

	if live {
		hour := (clockMinute / 60) % 24
		if (hour >= 8 && hour <= 10) || (hour >= 17 && hour <= 19) {
			mins = int(math.Ceil(float64(mins) * 1.5))
			if mins < 1 {
				mins = 1
			}
		}
	}

	return mins
}
