package planner

import "roamly/internal/catalog"

// Greedy builds one day by repeatedly committing the best admissible
// candidate until none remains. Ties go to the earlier catalog entry.
// Terminates: every iteration marks a fresh POI used and the catalog is
// finite.
func Greedy(ctx *DayContext, used map[string]bool, budget float64) DayResult {
	var res DayResult

	t := ctx.StartMinute
	cur := StartLocation
	curName := "Start"

	for {
		var best *catalog.POI
		bestScore := 0.0
		bestArrival := 0

		for i, poi := range ctx.Catalog.All() {
			arrival, ok := ctx.admissible(poi, used, cur, t, budget)
			if !ok {
				continue
			}
			res.Effort++
			s := ctx.score(poi)
			if best == nil || s > bestScore {
				best = &ctx.Catalog.All()[i]
				bestScore = s
				bestArrival = arrival
			}
		}
		if best == nil {
			break
		}

		res.Legs = append(res.Legs, Leg{
			From:   curName,
			To:     best.Name,
			Mode:   ctx.Mobility,
			EtaMin: bestArrival - t,
			Day:    ctx.Day,
		})
		res.Stops = append(res.Stops, Stop{
			POIID:         best.ID,
			Name:          best.Name,
			StartMinute:   bestArrival,
			EndMinute:     bestArrival + best.AvgDwellMin,
			DwellMin:      best.AvgDwellMin,
			AdmissionCost: best.AdmissionCost,
			Day:           ctx.Day,
		})

		t = bestArrival + best.AvgDwellMin
		budget -= best.AdmissionCost
		res.Spent += best.AdmissionCost
		used[best.ID] = true
		cur = Location{Lat: best.Lat, Lon: best.Lon}
		curName = best.Name
	}

	return res
}
