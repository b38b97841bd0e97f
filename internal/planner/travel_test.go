package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// one degree of longitude along the equator is ~111.195 km
var (
	equatorA = Location{Lat: 0, Lon: 0}
	equatorB = Location{Lat: 0, Lon: 1}
)

func TestTravelMinutesTruncates(t *testing.T) {
	// 111.195 km at 25 km/h is 266.87 min; base minutes truncate
	assert.Equal(t, 266, TravelMinutes(equatorA, equatorB, 25, 720, false))
	// at walking pace: 1334.34 min
	assert.Equal(t, 1334, TravelMinutes(equatorA, equatorB, 5, 720, false))
}

func TestTravelMinutesZeroDistance(t *testing.T) {
	assert.Equal(t, 0, TravelMinutes(equatorA, equatorA, 5, 720, false))
}

func TestTravelMinutesRushHour(t *testing.T) {
	// departing 08:00 with live constraints: 1.5x rounded up
	assert.Equal(t, 399, TravelMinutes(equatorA, equatorB, 25, 8*60, true))
	// same trip at noon is unaffected
	assert.Equal(t, 266, TravelMinutes(equatorA, equatorB, 25, 12*60, true))
	// evening rush, hour 19 still included
	assert.Equal(t, 399, TravelMinutes(equatorA, equatorB, 25, 19*60+30, true))
}

func TestTravelMinutesRushHourFloorsAtOne(t *testing.T) {
	assert.Equal(t, 1, TravelMinutes(equatorA, equatorA, 5, 9*60, true))
}

func TestSpeedKmh(t *testing.T) {
	assert.Equal(t, 25.0, SpeedKmh("walk", true)) // car wins
	assert.Equal(t, 15.0, SpeedKmh("mbta", false))
	assert.Equal(t, 25.0, SpeedKmh("rideshare", false))
	assert.Equal(t, 5.0, SpeedKmh("walk", false))
	assert.Equal(t, 5.0, SpeedKmh("hoverboard", false))
}
