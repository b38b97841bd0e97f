package planner

import (
	"container/heap"
	"sort"

	"roamly/internal/catalog"
)

const astarPoolLimit = 8

type routeStep struct {
	poolIdx int
	arrival int
	travel  int
}

// searchNode is one A* state over the bounded pool. g is the negative
// cumulative score, so the minimum-g state carries the best route. h is
// identically zero, which keeps the search admissible and makes it behave
// as uniform-cost exploration.
type searchNode struct {
	t       int
	budget  float64
	mask    uint16
	last    int // pool index of the last stop, -1 at the start
	g       float64
	route   []routeStep
}

func (n *searchNode) f() float64 { return n.g } // f = g + h, h = 0

type nodeQueue []*searchNode

func (q nodeQueue) Len() int { return len(q) }

// Less orders the frontier by f, then by g for ties.
func (q nodeQueue) Less(i, j int) bool {
	if q[i].f() != q[j].f() {
		return q[i].f() < q[j].f()
	}
	return q[i].g < q[j].g
}

func (q nodeQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *nodeQueue) Push(x any) { *q = append(*q, x.(*searchNode)) }

func (q *nodeQueue) Pop() any {
	old := *q
	n := old[len(old)-1]
	*q = old[:len(old)-1]
	return n
}

type seenKey struct {
	mask uint16
	last int
}

// AStar explores visiting orders over the eight best-scoring unused POIs.
// Every reachable state is a complete answer, so the globally lowest-g
// state seen anywhere in the run wins; the frontier draining without a
// goal test is the normal exit.
func AStar(ctx *DayContext, used map[string]bool, budget float64) DayResult {
	pool := make([]catalog.POI, 0, astarPoolLimit)
	for _, poi := range ctx.Catalog.All() {
		if used[poi.ID] || ctx.closedToday(poi) {
			continue
		}
		pool = append(pool, poi)
	}
	sort.SliceStable(pool, func(i, j int) bool {
		return ctx.score(pool[i]) > ctx.score(pool[j])
	})
	if len(pool) > astarPoolLimit {
		pool = pool[:astarPoolLimit]
	}

	start := &searchNode{t: ctx.StartMinute, budget: budget, last: -1}
	best := start

	frontier := &nodeQueue{start}
	heap.Init(frontier)
	seen := make(map[seenKey]float64)

	var res DayResult
	for frontier.Len() > 0 {
		node := heap.Pop(frontier).(*searchNode)
		res.Effort++

		from := StartLocation
		if node.last >= 0 {
			from = Location{Lat: pool[node.last].Lat, Lon: pool[node.last].Lon}
		}

		for i, poi := range pool {
			if node.mask&(1<<uint(i)) != 0 {
				continue
			}

			travel := TravelMinutes(from, Location{Lat: poi.Lat, Lon: poi.Lon}, ctx.SpeedKmh, node.t, ctx.Live)
			arrival := node.t + travel
			if arrival < poi.OpenFrom || arrival > poi.OpenTo-poi.AvgDwellMin {
				continue
			}
			if node.budget-poi.AdmissionCost < 0 {
				continue
			}
			if arrival+poi.AvgDwellMin > ctx.EndMinute {
				continue
			}

			newG := node.g - ctx.score(poi)
			key := seenKey{mask: node.mask | 1<<uint(i), last: i}
			if prev, ok := seen[key]; ok && newG >= prev {
				continue
			}
			seen[key] = newG

			route := make([]routeStep, len(node.route), len(node.route)+1)
			copy(route, node.route)
			route = append(route, routeStep{poolIdx: i, arrival: arrival, travel: travel})

			succ := &searchNode{
				t:      arrival + poi.AvgDwellMin,
				budget: node.budget - poi.AdmissionCost,
				mask:   key.mask,
				last:   i,
				g:      newG,
				route:  route,
			}
			if succ.g < best.g {
				best = succ
			}
			heap.Push(frontier, succ)
		}
	}

	prev := "Start"
	for _, step := range best.route {
		poi := pool[step.poolIdx]

		res.Legs = append(res.Legs, Leg{
			From:   prev,
			To:     poi.Name,
			Mode:   ctx.Mobility,
			EtaMin: step.travel,
			Day:    ctx.Day,
		})
		res.Stops = append(res.Stops, Stop{
			POIID:         poi.ID,
			Name:          poi.Name,
			StartMinute:   step.arrival,
			EndMinute:     step.arrival + poi.AvgDwellMin,
			DwellMin:      poi.AvgDwellMin,
			AdmissionCost: poi.AdmissionCost,
			Day:           ctx.Day,
		})

		res.Spent += poi.AdmissionCost
		used[poi.ID] = true
		prev = poi.Name
	}

	return res
}
