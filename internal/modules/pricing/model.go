// README: Fare category and condition definitions with their rate tables.
package pricing

// Category is a named rate profile.
type Category string

const (
	CategoryStandard  Category = "standard"
	CategoryExecutive Category = "executive"
)

// Condition is a trip-wide traffic/weather adjustment.
type Condition string

const (
	ConditionNormal       Condition = "normal"
	ConditionRainNight    Condition = "rain_night"
	ConditionHeavyTraffic Condition = "heavy_traffic"
)

// Rate holds the fare constants for one category. Amounts are in reais.
type Rate struct {
	Category    Category
	BaseFare    float64
	PerKm       float64
	PerMin      float64
	MinimumFare float64
}

// DefaultRates returns the built-in rate tables.
func DefaultRates() map[Category]Rate {
	return map[Category]Rate{
		CategoryStandard: {
			Category:    CategoryStandard,
			BaseFare:    3.00,
			PerKm:       1.25,
			PerMin:      0.20,
			MinimumFare: 10.00,
		},
		CategoryExecutive: {
			Category:    CategoryExecutive,
			BaseFare:    5.00,
			PerKm:       2.50,
			PerMin:      0.60,
			MinimumFare: 15.00,
		},
	}
}

// Quote is a computed fare with its breakdown.
type Quote struct {
	DistanceKm     float64
	DurationMin    float64
	Category       Category
	Condition      Condition
	BaseFare       float64
	DistanceAmount float64
	TimeAmount     float64
	Multiplier     float64
	Total          float64
}
