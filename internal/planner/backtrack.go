package planner

import (
	"sort"

	"roamly/internal/catalog"
)

const backtrackPoolLimit = 8

// Backtrack is the completeness fallback: when another planner produces an
// empty day it enumerates include/exclude subsets of up to eight unused
// POIs, earliest closing time first, and keeps the feasible subset with the
// highest total score. Travel time is treated as zero here; the bound on
// the pool keeps the search at 2^8 subsets.
func Backtrack(ctx *DayContext, used map[string]bool, budget float64) DayResult {
	pool := make([]catalog.POI, 0, backtrackPoolLimit)
	for _, poi := range ctx.Catalog.All() {
		if used[poi.ID] || ctx.closedToday(poi) {
			continue
		}
		pool = append(pool, poi)
	}
	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].OpenTo < pool[j].OpenTo
	})
	if len(pool) > backtrackPoolLimit {
		pool = pool[:backtrackPoolLimit]
	}

	var bestPicks []int
	bestScore := 0.0
	haveBest := false

	var explore func(idx, t int, budget, score float64, picks []int)
	explore = func(idx, t int, budget, score float64, picks []int) {
		if len(picks) > 0 && (!haveBest || score > bestScore) {
			bestPicks = append([]int(nil), picks...)
			bestScore = score
			haveBest = true
		}
		if idx == len(pool) {
			return
		}

		// skip branch
		explore(idx+1, t, budget, score, picks)

		// include branch: no travel term, we just wait for opening
		poi := pool[idx]
		arrival := t
		if poi.OpenFrom > arrival {
			arrival = poi.OpenFrom
		}
		if arrival > poi.OpenTo-poi.AvgDwellMin {
			return
		}
		if budget-poi.AdmissionCost < 0 {
			return
		}
		if arrival+poi.AvgDwellMin > ctx.EndMinute {
			return
		}
		explore(idx+1, arrival+poi.AvgDwellMin, budget-poi.AdmissionCost, score+ctx.score(poi), append(picks, idx))
	}
	explore(0, ctx.StartMinute, budget, 0, nil)

	var res DayResult
	if !haveBest {
		return res
	}

	t := ctx.StartMinute
	prev := "Start"
	for _, idx := range bestPicks {
		poi := pool[idx]
		arrival := t
		if poi.OpenFrom > arrival {
			arrival = poi.OpenFrom
		}

		res.Legs = append(res.Legs, Leg{
			From:   prev,
			To:     poi.Name,
			Mode:   ctx.Mobility,
			EtaMin: 0,
			Day:    ctx.Day,
		})
		res.Stops = append(res.Stops, Stop{
			POIID:         poi.ID,
			Name:          poi.Name,
			StartMinute:   arrival,
			EndMinute:     arrival + poi.AvgDwellMin,
			DwellMin:      poi.AvgDwellMin,
			AdmissionCost: poi.AdmissionCost,
			Day:           ctx.Day,
		})

		t = arrival + poi.AvgDwellMin
		res.Spent += poi.AdmissionCost
		used[poi.ID] = true
		prev = poi.Name
	}

	return res
}
