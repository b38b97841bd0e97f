package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roamly/internal/catalog"
	"roamly/internal/models/request_models"
	"roamly/internal/planner"
	"roamly/internal/preferences"
	"roamly/pkg/utils"
)

func downtownPOI(id, name, category, tier string, dwell int, cost float64, openFrom, openTo int) catalog.POI {
	return catalog.POI{
		ID:            id,
		Name:          name,
		Lat:           planner.StartLocation.Lat,
		Lon:           planner.StartLocation.Lon,
		Category:      category,
		PriceTier:     tier,
		AvgDwellMin:   dwell,
		AdmissionCost: cost,
		OpenFrom:      openFrom,
		OpenTo:        openTo,
	}
}

func planReq(strategy string) request_models.PlanRequest {
	return request_models.PlanRequest{
		Date:      "2026-08-28",
		StartTime: "09:00",
		EndTime:   "12:00",
		Budget:    20,
		Mobility:  "walk",
		Strategy:  strategy,
	}
}

func TestBuildItinerarySingleMuseum(t *testing.T) {
	cat := catalog.New([]catalog.POI{
		downtownPOI("m1", "Museum", "museums", "$$", 60, 10, 9*60, 17*60),
	})
	svc := NewPlanService(cat, preferences.NewRatingBook())

	it, err := svc.BuildItinerary(context.Background(), planReq("static_explorer"))
	require.NoError(t, err)

	require.Len(t, it.Stops, 1)
	assert.Equal(t, "m1", it.Stops[0].PoiID)
	assert.Equal(t, "09:00", it.Stops[0].Start)
	assert.Equal(t, "10:00", it.Stops[0].End)
	assert.Equal(t, 1, it.Stops[0].Day)

	assert.InDelta(t, 10, it.CostSummary.Admissions, 1e-9)
	assert.InDelta(t, 0, it.CostSummary.Transport, 1e-9)
	assert.InDelta(t, 10, it.CostSummary.Total, 1e-9)

	assert.Equal(t, "greedy", it.Metrics.Planner)
	assert.Equal(t, 1, it.Metrics.StopCount)
	assert.NotEmpty(t, it.ItineraryID)
}

func TestBuildItineraryZeroBudget(t *testing.T) {
	cat := catalog.New([]catalog.POI{
		downtownPOI("m1", "Museum", "museums", "$$", 60, 10, 9*60, 17*60),
	})
	svc := NewPlanService(cat, preferences.NewRatingBook())

	req := planReq("static_explorer")
	req.Budget = 0

	it, err := svc.BuildItinerary(context.Background(), req)
	require.NoError(t, err)
	assert.Empty(t, it.Stops)
	assert.Empty(t, it.Legs)
	assert.InDelta(t, 0, it.CostSummary.Total, 1e-9)
}

func TestBuildItinerarySundayMuseumsClosed(t *testing.T) {
	cat := catalog.New([]catalog.POI{
		downtownPOI("m1", "Museum", "museums", "$", 60, 0, 9*60, 17*60),
	})
	svc := NewPlanService(cat, preferences.NewRatingBook())

	req := planReq("static_explorer")
	req.Date = "2026-08-30" // a Sunday
	req.UseLiveConstraints = true

	it, err := svc.BuildItinerary(context.Background(), req)
	require.NoError(t, err)
	assert.Empty(t, it.Stops)
}

func TestBuildItineraryBadDateDisablesClosure(t *testing.T) {
	cat := catalog.New([]catalog.POI{
		downtownPOI("m1", "Museum", "museums", "$", 60, 0, 9*60, 17*60),
	})
	svc := NewPlanService(cat, preferences.NewRatingBook())

	req := planReq("static_explorer")
	req.Date = "sometime soon"
	req.UseLiveConstraints = true

	it, err := svc.BuildItinerary(context.Background(), req)
	require.NoError(t, err)
	assert.Len(t, it.Stops, 1)
}

func TestBuildItineraryFeedbackMonotonicity(t *testing.T) {
	cat := catalog.New([]catalog.POI{
		downtownPOI("f1", "Market", "food", "$$", 60, 5, 8*60, 21*60),
	})
	ratings := preferences.NewRatingBook()
	planSvc := NewPlanService(cat, ratings)
	fbSvc := NewFeedbackService(cat, ratings)

	before, err := planSvc.BuildItinerary(context.Background(), planReq("static_explorer"))
	require.NoError(t, err)
	require.Len(t, before.Stops, 1)

	for i := 0; i < 3; i++ {
		require.NoError(t, fbSvc.SubmitRating(context.Background(), "", "f1", 5))
	}

	after, err := planSvc.BuildItinerary(context.Background(), planReq("static_explorer"))
	require.NoError(t, err)
	require.Len(t, after.Stops, 1)

	assert.InDelta(t, 0.5, after.Metrics.TotalScore-before.Metrics.TotalScore, 1e-9)
}

func TestBuildItineraryGreedyFamilySharesBudget(t *testing.T) {
	// window fits exactly one 60-minute visit per day; the greedy family
	// keeps one running budget, so day two cannot afford a second ticket
	cat := catalog.New([]catalog.POI{
		downtownPOI("a", "A", "food", "$", 60, 10, 8*60, 21*60),
		downtownPOI("b", "B", "food", "$", 60, 10, 8*60, 21*60),
	})
	svc := NewPlanService(cat, preferences.NewRatingBook())

	req := planReq("static_explorer")
	req.EndTime = "10:20"
	req.Budget = 15
	req.Days = 2

	it, err := svc.BuildItinerary(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1, it.Metrics.StopCount)
	assert.InDelta(t, 10, it.CostSummary.Total, 1e-9)
}

func TestBuildItinerarySearchFamilyAllocatesPerDay(t *testing.T) {
	// same fixture, search family: each day gets budget_total/days fresh
	cat := catalog.New([]catalog.POI{
		downtownPOI("a", "A", "food", "$", 60, 10, 8*60, 21*60),
		downtownPOI("b", "B", "food", "$", 60, 10, 8*60, 21*60),
	})
	svc := NewPlanService(cat, preferences.NewRatingBook())

	req := planReq("search_explorer")
	req.EndTime = "10:20"
	req.Budget = 20
	req.Days = 2

	it, err := svc.BuildItinerary(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "astar", it.Metrics.Planner)
	require.Len(t, it.Stops, 2)

	// one stop per day, distinct POIs
	assert.Equal(t, 1, it.Stops[0].Day)
	assert.Equal(t, 2, it.Stops[1].Day)
	assert.NotEqual(t, it.Stops[0].PoiID, it.Stops[1].PoiID)
	assert.InDelta(t, 20, it.CostSummary.Total, 1e-9)
}

func TestBuildItineraryInvalidWindow(t *testing.T) {
	cat := catalog.New(nil)
	svc := NewPlanService(cat, preferences.NewRatingBook())

	req := planReq("static_explorer")
	req.StartTime = "12:00"
	req.EndTime = "09:00"

	_, err := svc.BuildItinerary(context.Background(), req)
	assert.ErrorIs(t, err, utils.ErrInvalidWindow)
}

func TestBuildItineraryUnknownStrategyFallsBack(t *testing.T) {
	cat := catalog.New([]catalog.POI{
		downtownPOI("m1", "Museum", "museums", "$", 60, 0, 9*60, 17*60),
	})
	svc := NewPlanService(cat, preferences.NewRatingBook())

	it, err := svc.BuildItinerary(context.Background(), planReq("definitely-not-a-strategy"))
	require.NoError(t, err)
	assert.Equal(t, "greedy", it.Metrics.Planner)
	assert.Len(t, it.Stops, 1)
}

func TestBuildItineraryStopInvariants(t *testing.T) {
	cat := catalog.New([]catalog.POI{
		downtownPOI("a", "A", "history", "$", 90, 0, 8*60, 20*60),
		downtownPOI("b", "B", "food", "$$", 55, 18, 10*60, 22*60),
		downtownPOI("c", "C", "outdoors", "$", 45, 0, 6*60, 21*60),
	})
	svc := NewPlanService(cat, preferences.NewRatingBook())

	req := planReq("static_explorer")
	req.EndTime = "18:00"
	req.Budget = 50
	req.Days = 2

	it, err := svc.BuildItinerary(context.Background(), req)
	require.NoError(t, err)
	require.NotEmpty(t, it.Stops)

	prevDay := 0
	for _, stop := range it.Stops {
		poi, ok := cat.ByID(stop.PoiID)
		require.True(t, ok)
		assert.GreaterOrEqual(t, utils.MinuteOfDay(stop.Start), poi.OpenFrom)
		assert.LessOrEqual(t, utils.MinuteOfDay(stop.End), poi.OpenTo)
		assert.Equal(t, utils.MinuteOfDay(stop.Start)+stop.DwellMin, utils.MinuteOfDay(stop.End))
		assert.GreaterOrEqual(t, stop.Day, prevDay)
		prevDay = stop.Day
	}

	total := 0.0
	for _, stop := range it.Stops {
		total += stop.AdmissionCost
	}
	assert.LessOrEqual(t, total, req.Budget)
	assert.InDelta(t, total, it.CostSummary.Total, 1e-9)
}

func TestBuildItineraryExplicitLikesDoNotLeak(t *testing.T) {
	cat := catalog.New([]catalog.POI{
		downtownPOI("m1", "Museum", "museums", "$", 60, 0, 9*60, 17*60),
	})
	svc := NewPlanService(cat, preferences.NewRatingBook())

	liked := planReq("static_explorer")
	liked.Preferences = request_models.Preferences{Like: []string{"museum"}}
	withLike, err := svc.BuildItinerary(context.Background(), liked)
	require.NoError(t, err)

	plain, err := svc.BuildItinerary(context.Background(), planReq("static_explorer"))
	require.NoError(t, err)

	// a later request without likes is unaffected by the earlier one
	assert.InDelta(t, 1.0, withLike.Metrics.TotalScore-plain.Metrics.TotalScore, 1e-9)
}
