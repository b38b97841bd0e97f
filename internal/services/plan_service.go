package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"roamly/internal/catalog"
	"roamly/internal/models/request_models"
	"roamly/internal/models/response_models"
	"roamly/internal/planner"
	"roamly/internal/preferences"
	"roamly/pkg/utils"
)

type PlanServiceInterface interface {
	BuildItinerary(ctx context.Context, req request_models.PlanRequest) (*response_models.Itinerary, error)
}

type PlanService struct {
	catalog *catalog.Catalog
	ratings *preferences.RatingBook
}

func NewPlanService(cat *catalog.Catalog, ratings *preferences.RatingBook) PlanServiceInterface {
	return &PlanService{
		catalog: cat,
		ratings: ratings,
	}
}

// BuildItinerary runs the per-day planners over the request window and
// assembles the response. The greedy family deducts from one budget across
// all days; the search family re-allocates budget_total/days each day with
// no carry-over.
func (s *PlanService) BuildItinerary(ctx context.Context, req request_models.PlanRequest) (*response_models.Itinerary, error) {
	startMin := utils.MinuteOfDay(req.StartTime)
	endMin := utils.MinuteOfDay(req.EndTime)
	if startMin < 0 || endMin < 0 || startMin >= endMin {
		return nil, utils.ErrInvalidWindow
	}
	if req.Budget < 0 {
		return nil, utils.ErrInvalidInput
	}

	days := req.Days
	if days < 1 {
		days = 1
	}

	strategy := planner.ParseStrategy(req.Strategy)
	prefs := preferences.NewState(req.Preferences.Like)
	means := s.ratings.Means()
	date, dateKnown := utils.ParseDate(req.Date)

	began := time.Now()

	var stops []planner.Stop
	var legs []planner.Leg
	effort := 0
	used := make(map[string]bool, s.catalog.Len())

	runningBudget := req.Budget
	perDayBudget := req.Budget / float64(days)

	for day := 1; day <= days; day++ {
		dayCtx := &planner.DayContext{
			Catalog:      s.catalog,
			Profile:      strategy.Profile,
			Prefs:        prefs,
			RatingMeans:  means,
			Mobility:     req.Mobility,
			SpeedKmh:     planner.SpeedKmh(req.Mobility, req.HasCar),
			Live:         req.UseLiveConstraints,
			Weekday:      date.AddDate(0, 0, day-1).Weekday(),
			WeekdayKnown: dateKnown,
			StartMinute:  startMin,
			EndMinute:    endMin,
			Day:          day,
		}

		var res planner.DayResult
		if strategy.Family == planner.FamilySearch {
			res = planner.AStar(dayCtx, used, perDayBudget)
			if len(res.Stops) == 0 {
				res = planner.Backtrack(dayCtx, used, perDayBudget)
			}
			if len(res.Stops) == 0 {
				res = planner.Greedy(dayCtx, used, perDayBudget)
			}
		} else {
			res = planner.Greedy(dayCtx, used, runningBudget)
			if len(res.Stops) == 0 {
				res = planner.Backtrack(dayCtx, used, runningBudget)
			}
			runningBudget -= res.Spent
		}

		stops = append(stops, res.Stops...)
		legs = append(legs, res.Legs...)
		effort += res.Effort
	}

	return s.assemble(strategy, prefs, means, stops, legs, effort, time.Since(began)), nil
}

// assemble builds the response envelope: stop/leg rendering, admission
// totals, and a fresh scoring pass over the chosen stops so total_score
// reflects the current preference state rather than whatever the planner
// ranked with internally.
func (s *PlanService) assemble(
	strategy planner.Strategy,
	prefs preferences.State,
	means map[string]float64,
	stops []planner.Stop,
	legs []planner.Leg,
	effort int,
	runtime time.Duration,
) *response_models.Itinerary {

	out := &response_models.Itinerary{
		ItineraryID: uuid.New().String(),
		Stops:       make([]response_models.Stop, 0, len(stops)),
		Legs:        make([]response_models.Leg, 0, len(legs)),
	}

	admissions := 0.0
	totalScore := 0.0
	for _, stop := range stops {
		admissions += stop.AdmissionCost
		if poi, ok := s.catalog.ByID(stop.POIID); ok {
			totalScore += planner.Score(poi, strategy.Profile, prefs, means)
		}

		out.Stops = append(out.Stops, response_models.Stop{
			PoiID:         stop.POIID,
			Name:          stop.Name,
			Start:         utils.FormatMinute(stop.StartMinute),
			End:           utils.FormatMinute(stop.EndMinute),
			DwellMin:      stop.DwellMin,
			AdmissionCost: stop.AdmissionCost,
			Day:           stop.Day,
		})
	}

	travelMin := 0
	for _, leg := range legs {
		travelMin += leg.EtaMin
		out.Legs = append(out.Legs, response_models.Leg{
			From:   leg.From,
			To:     leg.To,
			Mode:   leg.Mode,
			EtaMin: leg.EtaMin,
			Day:    leg.Day,
		})
	}

	out.CostSummary = response_models.CostSummary{
		Admissions: admissions,
		Transport:  0,
		Total:      admissions,
	}
	out.Metrics = response_models.Metrics{
		Planner:        strategy.Family.String(),
		RuntimeMs:      float64(runtime.Microseconds()) / 1000.0,
		StopCount:      len(stops),
		TotalTravelMin: travelMin,
		TotalScore:     totalScore,
		SearchEffort:   effort,
	}

	return out
}
