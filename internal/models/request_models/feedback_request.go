package request_models

type FeedbackRequest struct {
	// ItineraryID is echoed by clients but never checked against a stored
	// itinerary; itineraries are not retained.
	ItineraryID string `json:"itinerary_id"`
	PoiID       string `json:"poi_id" binding:"required"`
	Rating      int    `json:"rating" binding:"required"`
}
