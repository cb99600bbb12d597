// README: Pricing service computes fare quotes from distance, time, category, and condition.
package pricing

import (
	"context"
	"errors"
	"math"
	"strings"
)

var (
	ErrUnknownCategory  = errors.New("unknown fare category")
	ErrUnknownCondition = errors.New("unknown condition")
)

var multipliers = map[Condition]float64{
	ConditionNormal:       1.0,
	ConditionRainNight:    1.2,
	ConditionHeavyTraffic: 1.4,
}

// conditionKeywords maps free-text fragments to conditions. Order matters:
// the first condition whose keyword appears anywhere in the text wins.
var conditionKeywords = []struct {
	condition Condition
	keywords  []string
}{
	{ConditionRainNight, []string{"chuva", "noite", "noturno"}},
	{ConditionHeavyTraffic, []string{"trânsito", "transito", "congestionamento", "pesado"}},
	{ConditionNormal, []string{"normal", "padrão", "padrao"}},
}

type Service struct {
	rates map[Category]Rate
}

// NewService builds a pricing service. A nil rate table selects the defaults.
func NewService(rates map[Category]Rate) *Service {
	if rates == nil {
		rates = DefaultRates()
	}
	return &Service{rates: rates}
}

// Quote computes the fare for a trip. Inputs are pre-validated non-negative
// numerics; only an unknown category or condition is an error.
func (s *Service) Quote(ctx context.Context, distanceKm, durationMin float64, category Category, condition Condition) (Quote, error) {
	rate, ok := s.rates[category]
	if !ok {
		return Quote{}, ErrUnknownCategory
	}
	mult, ok := multipliers[condition]
	if !ok {
		return Quote{}, ErrUnknownCondition
	}

	q := Quote{
		DistanceKm:     distanceKm,
		DurationMin:    durationMin,
		Category:       category,
		Condition:      condition,
		BaseFare:       rate.BaseFare,
		DistanceAmount: rate.PerKm * distanceKm,
		TimeAmount:     rate.PerMin * durationMin,
		Multiplier:     mult,
	}

	raw := q.BaseFare + q.DistanceAmount + q.TimeAmount
	total := raw * mult
	if total < rate.MinimumFare {
		total = rate.MinimumFare
	}
	q.Total = RoundUpHalf(total)
	return q, nil
}

// Rate exposes the rate table entry for a category.
func (s *Service) Rate(category Category) (Rate, error) {
	rate, ok := s.rates[category]
	if !ok {
		return Rate{}, ErrUnknownCategory
	}
	return rate, nil
}

// RoundUpHalf rounds an amount UP to the next 0.50 currency unit. Amounts
// already on a 0.50 boundary stay unchanged.
func RoundUpHalf(amount float64) float64 {
	return math.Ceil(amount*2) / 2
}

// Multiplier returns the scalar for a condition.
func Multiplier(condition Condition) (float64, error) {
	m, ok := multipliers[condition]
	if !ok {
		return 0, ErrUnknownCondition
	}
	return m, nil
}

// MatchCondition resolves free text to a condition by keyword, using the
// documented precedence (rain/night, heavy traffic, normal). The boolean
// reports whether any keyword matched; no silent default is applied.
func MatchCondition(text string) (Condition, bool) {
	lower := strings.ToLower(text)
	for _, entry := range conditionKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				return entry.condition, true
			}
		}
	}
	return "", false
}

// ParseCategory resolves a choice identifier or exact name to a category.
func ParseCategory(s string) (Category, bool) {
	switch Category(strings.ToLower(strings.TrimSpace(s))) {
	case CategoryStandard:
		return CategoryStandard, true
	case CategoryExecutive:
		return CategoryExecutive, true
	}
	return "", false
}

// ParseCondition resolves a choice identifier to a condition.
func ParseCondition(s string) (Condition, bool) {
	switch Condition(strings.ToLower(strings.TrimSpace(s))) {
	case ConditionNormal:
		return ConditionNormal, true
	case ConditionRainNight:
		return ConditionRainNight, true
	case ConditionHeavyTraffic:
		return ConditionHeavyTraffic, true
	}
	return "", false
}
