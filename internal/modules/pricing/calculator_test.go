package pricing

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculator_ComputeBasePrice(t *testing.T) {
	calc := NewCalculator(DefaultRates(), nil)

	tests := []struct {
		name    string
		metrics RouteMetrics
		stops   int
		want    int
	}{
		{
			name:    "short city trip floored at minimum",
			metrics: RouteMetrics{DistanceKm: 1, DurationMinutes: 2},
			want:    25, // 5 + 1.8 + 0.5 = 7.3
		},
		{
			name:    "city trip above minimum",
			metrics: RouteMetrics{DistanceKm: 12, DurationMinutes: 30},
			want:    34, // 5 + 21.6 + 7.5 = 34.1
		},
		{
			name:    "half rounds up",
			metrics: RouteMetrics{DistanceKm: 10, DurationMinutes: 6},
			want:    25, // 5 + 18 + 1.5 = 24.5 -> 25
		},
		{
			name:    "intercity estimate",
			metrics: RouteMetrics{DistanceKm: 300, DurationMinutes: 255},
			want:    609, // 5 + 540 + 63.75
		},
		{
			name:    "airport flat fare",
			metrics: RouteMetrics{DistanceKm: 50, DurationMinutes: 85, IsAirportRoute: true, AirportCode: "MXP"},
			want:    55,
		},
		{
			name:    "airport with stops",
			metrics: RouteMetrics{DistanceKm: 50, DurationMinutes: 85, IsAirportRoute: true, AirportCode: "FCO"},
			stops:   2,
			want:    65,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := calc.ComputeBasePrice(tt.metrics, tt.stops)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCalculator_StopsAddExactSurcharge(t *testing.T) {
	calc := NewCalculator(DefaultRates(), nil)
	m := RouteMetrics{DistanceKm: 8, DurationMinutes: 20, WaypointCount: 3}

	// 5 + 14.4 + 5 = 24.4 alone, which the minimum would lift to 25.
	noStops, err := calc.ComputeBasePrice(m, 0)
	require.NoError(t, err)
	assert.Equal(t, 25, noStops)

	withStops, err := calc.ComputeBasePrice(m, 3)
	require.NoError(t, err)
	assert.Equal(t, 54, withStops) // 24.4 + 30
}

func TestCalculator_Monotonic(t *testing.T) {
	calc := NewCalculator(DefaultRates(), nil)

	prev := 0
	for km := 0.0; km <= 400; km += 7.5 {
		got, err := calc.ComputeBasePrice(RouteMetrics{DistanceKm: km, DurationMinutes: 30}, 0)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, got, prev, "distance %v", km)
		prev = got
	}

	prev = 0
	for stops := 0; stops <= 3; stops++ {
		got, err := calc.ComputeBasePrice(RouteMetrics{DistanceKm: 15, DurationMinutes: 25}, stops)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, got, prev, "stops %d", stops)
		prev = got
	}
}

func TestCalculator_AirportIgnoresDistance(t *testing.T) {
	calc := NewCalculator(DefaultRates(), nil)

	short, err := calc.ComputeBasePrice(RouteMetrics{DistanceKm: 3, DurationMinutes: 5, IsAirportRoute: true, AirportCode: "LIN"}, 1)
	require.NoError(t, err)
	long, err := calc.ComputeBasePrice(RouteMetrics{DistanceKm: 180, DurationMinutes: 200, IsAirportRoute: true, AirportCode: "LIN"}, 1)
	require.NoError(t, err)

	assert.Equal(t, short, long)
	assert.Equal(t, 45, short)
}

func TestCalculator_InvalidMetrics(t *testing.T) {
	calc := NewCalculator(DefaultRates(), nil)

	tests := []struct {
		name    string
		metrics RouteMetrics
		stops   int
	}{
		{name: "negative distance", metrics: RouteMetrics{DistanceKm: -1}},
		{name: "nan duration", metrics: RouteMetrics{DurationMinutes: math.NaN()}},
		{name: "infinite distance", metrics: RouteMetrics{DistanceKm: math.Inf(1)}},
		{name: "negative stops", metrics: RouteMetrics{DistanceKm: 5}, stops: -1},
		{name: "unknown airport", metrics: RouteMetrics{IsAirportRoute: true, AirportCode: "ZZZ"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := calc.ComputeBasePrice(tt.metrics, tt.stops)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidMetrics))
		})
	}
}
