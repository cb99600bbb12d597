// README: Pure calculators for fuel-efficiency and daily-profit reports.
package reports

import (
	"errors"
	"math"
)

var ErrNonPositive = errors.New("value must be greater than zero")

// FuelReport summarizes consumption efficiency for one refuel cycle.
type FuelReport struct {
	Liters         float64
	Km             float64
	KmPerLiter     float64
	LitersPer100Km float64
}

// DailyReport summarizes one working day.
type DailyReport struct {
	Rides         int
	Earned        float64
	FuelSpent     float64
	Profit        float64
	ProfitPerRide float64
	MarginPct     float64
}

// FuelEfficiency computes km/l and l/100km from liters refueled and
// kilometres driven. Both inputs must be strictly positive.
func FuelEfficiency(liters, km float64) (FuelReport, error) {
	if liters <= 0 || km <= 0 {
		return FuelReport{}, ErrNonPositive
	}
	return FuelReport{
		Liters:         liters,
		Km:             km,
		KmPerLiter:     round2(km / liters),
		LitersPer100Km: round2(liters / km * 100),
	}, nil
}

// DailySummary computes profit figures for a day. Ride count may be zero,
// in which case the whole profit counts as the per-ride figure.
func DailySummary(rides int, earned, fuelSpent float64) (DailyReport, error) {
	if rides < 0 || earned < 0 || fuelSpent < 0 {
		return DailyReport{}, ErrNonPositive
	}
	profit := earned - fuelSpent
	perRide := profit
	if rides > 0 {
		perRide = profit / float64(rides)
	}
	margin := 0.0
	if earned > 0 {
		margin = profit / earned * 100
	}
	return DailyReport{
		Rides:         rides,
		Earned:        earned,
		FuelSpent:     fuelSpent,
		Profit:        round2(profit),
		ProfitPerRide: round2(perRide),
		MarginPct:     round2(margin),
	}, nil
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
