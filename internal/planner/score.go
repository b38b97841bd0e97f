package planner

import (
	"roamly/internal/catalog"
	"roamly/internal/preferences"
)

func priceNorm(tier string) float64 {
	switch tier {
	case "$":
		return 0.2
	case "$$":
		return 0.5
	case "$$$":
		return 0.9
	default:
		return 0.5
	}
}

// Score is the desirability of a POI under a weight profile, the request's
// explicit likes and the learned per-category rating means. Pure: the same
// four inputs always produce the same value.
func Score(poi catalog.POI, profile WeightProfile, prefs preferences.State, ratingMeans map[string]float64) float64 {
	base := 0.0
	category := preferences.NormalizeCategory(poi.Category)

	switch profile {
	case ProfileBudget:
		base += -priceNorm(poi.PriceTier) * 1.5
		if category == "history" || category == "outdoors" {
			base += 0.6
		}
	default:
		base += -priceNorm(poi.PriceTier) * 0.4
		if category == "museums" || category == "food" || category == "history" {
			base += 0.8
		}
	}

	if prefs.Likes(category) {
		base += 1.0
	}

	if mean, ok := ratingMeans[category]; ok {
		base += (mean - 3.0) * 0.25
	}

	return base
}
