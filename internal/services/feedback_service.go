package services

import (
	"context"
	"log"

	"roamly/internal/catalog"
	"roamly/internal/preferences"
	"roamly/pkg/utils"
)

type FeedbackServiceInterface interface {
	SubmitRating(ctx context.Context, itineraryID, poiID string, rating int) error
}

type FeedbackService struct {
	catalog *catalog.Catalog
	ratings *preferences.RatingBook
}

func NewFeedbackService(cat *catalog.Catalog, ratings *preferences.RatingBook) FeedbackServiceInterface {
	return &FeedbackService{catalog: cat, ratings: ratings}
}

// SubmitRating records a 1-5 rating against the POI's category. The
// itinerary ID is accepted for client compatibility only; itineraries are
// not retained, so there is nothing to match it against. An unknown POI is
// dropped without recording anything.
func (s *FeedbackService) SubmitRating(ctx context.Context, itineraryID, poiID string, rating int) error {
	if rating < 1 || rating > 5 {
		return utils.ErrInvalidRating
	}

	poi, ok := s.catalog.ByID(poiID)
	if !ok {
		log.Printf("feedback for unknown poi %q ignored", poiID)
		return nil
	}

	s.ratings.Add(poi.Category, rating)
	return nil
}
