package pricing

import (
	"context"
	"math"
	"testing"
)

func TestService_Quote(t *testing.T) {
	tests := []struct {
		name        string
		distanceKm  float64
		durationMin float64
		category    Category
		condition   Condition
		wantTotal   float64
	}{
		{
			// 3.00 + 1.25*10 + 0.20*20 = 19.50; x1.0; above minimum; on a 0.50 boundary.
			name:        "standard normal 10km 20min",
			distanceKm:  10, durationMin: 20,
			category: CategoryStandard, condition: ConditionNormal,
			wantTotal: 19.50,
		},
		{
			// 3.00 + 2.50 + 0.60 = 6.10; x1.4 = 8.54; floored to the 10.00 minimum.
			name:        "standard heavy traffic short trip hits minimum",
			distanceKm:  2, durationMin: 3,
			category: CategoryStandard, condition: ConditionHeavyTraffic,
			wantTotal: 10.00,
		},
		{
			// Zero trip prices at the minimum fare.
			name:        "standard zero trip",
			distanceKm:  0, durationMin: 0,
			category: CategoryStandard, condition: ConditionNormal,
			wantTotal: 10.00,
		},
		{
			// 3.00 + 1.25*10 + 0.20*20 = 19.50; x1.2 = 23.40; rounds up to 23.50.
			name:        "standard rain rounds up to next half",
			distanceKm:  10, durationMin: 20,
			category: CategoryStandard, condition: ConditionRainNight,
			wantTotal: 23.50,
		},
		{
			// 5.00 + 2.50*10 + 0.60*20 = 42.00; x1.0; boundary no-op.
			name:        "executive normal 10km 20min",
			distanceKm:  10, durationMin: 20,
			category: CategoryExecutive, condition: ConditionNormal,
			wantTotal: 42.00,
		},
		{
			name:        "executive zero trip hits its minimum",
			distanceKm:  0, durationMin: 0,
			category: CategoryExecutive, condition: ConditionHeavyTraffic,
			wantTotal: 15.00,
		},
	}

	s := NewService(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Quote(context.Background(), tt.distanceKm, tt.durationMin, tt.category, tt.condition)
			if err != nil {
				t.Fatalf("Quote() error = %v", err)
			}
			if math.Abs(got.Total-tt.wantTotal) > 0.001 {
				t.Errorf("Quote().Total = %.2f, want %.2f", got.Total, tt.wantTotal)
			}
		})
	}
}

func TestService_Quote_UnknownInputs(t *testing.T) {
	s := NewService(nil)
	if _, err := s.Quote(context.Background(), 1, 1, Category("luxo"), ConditionNormal); err != ErrUnknownCategory {
		t.Errorf("unknown category: got %v, want ErrUnknownCategory", err)
	}
	if _, err := s.Quote(context.Background(), 1, 1, CategoryStandard, Condition("neve")); err != ErrUnknownCondition {
		t.Errorf("unknown condition: got %v, want ErrUnknownCondition", err)
	}
}

func TestService_Quote_Monotonic(t *testing.T) {
	s := NewService(nil)
	prev := 0.0
	for km := 0.0; km <= 50; km += 2.5 {
		q, err := s.Quote(context.Background(), km, 10, CategoryStandard, ConditionNormal)
		if err != nil {
			t.Fatalf("Quote() error = %v", err)
		}
		if q.Total < prev {
			t.Fatalf("total decreased at %.1fkm: %.2f < %.2f", km, q.Total, prev)
		}
		prev = q.Total
	}

	prev = 0.0
	for min := 0.0; min <= 120; min += 7.5 {
		q, err := s.Quote(context.Background(), 5, min, CategoryExecutive, ConditionRainNight)
		if err != nil {
			t.Fatalf("Quote() error = %v", err)
		}
		if q.Total < prev {
			t.Fatalf("total decreased at %.1fmin: %.2f < %.2f", min, q.Total, prev)
		}
		prev = q.Total
	}
}

func TestRoundUpHalf(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{0.01, 0.50},
		{0.50, 0.50},
		{8.54, 9.00},
		{19.50, 19.50},
		{19.51, 20.00},
		{23.40, 23.50},
	}
	for _, tt := range tests {
		if got := RoundUpHalf(tt.in); math.Abs(got-tt.want) > 0.0001 {
			t.Errorf("RoundUpHalf(%.2f) = %.2f, want %.2f", tt.in, got, tt.want)
		}
	}

	// Rounding law: result never below the input and never a full half above it.
	for x := 0.0; x < 30; x += 0.07 {
		r := RoundUpHalf(x)
		if r < x-1e-9 {
			t.Fatalf("RoundUpHalf(%.4f) = %.4f is below the input", x, r)
		}
		if r-x >= 0.5 {
			t.Fatalf("RoundUpHalf(%.4f) = %.4f is %.4f above the input", x, r, r-x)
		}
	}
}

func TestMultiplier_Exhaustive(t *testing.T) {
	want := map[Condition]float64{
		ConditionNormal:       1.0,
		ConditionRainNight:    1.2,
		ConditionHeavyTraffic: 1.4,
	}
	for cond, m := range want {
		got, err := Multiplier(cond)
		if err != nil {
			t.Fatalf("Multiplier(%s) error = %v", cond, err)
		}
		if got != m {
			t.Errorf("Multiplier(%s) = %v, want %v", cond, got, m)
		}
	}
	if _, err := Multiplier(Condition("granizo")); err == nil {
		t.Error("unrecognized condition should not silently default")
	}
}

func TestMatchCondition(t *testing.T) {
	tests := []struct {
		text string
		want Condition
		ok   bool
	}{
		{"vai ter chuva hoje", ConditionRainNight, true},
		{"viagem à noite", ConditionRainNight, true},
		{"muito trânsito no centro", ConditionHeavyTraffic, true},
		{"transito pesado", ConditionHeavyTraffic, true},
		{"dia normal", ConditionNormal, true},
		// Ambiguous text resolves by precedence: rain/night beats traffic.
		{"chuva e trânsito pesado", ConditionRainNight, true},
		{"trânsito mas tudo normal", ConditionHeavyTraffic, true},
		{"sol e pista livre", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := MatchCondition(tt.text)
		if ok != tt.ok || got != tt.want {
			t.Errorf("MatchCondition(%q) = (%q, %v), want (%q, %v)", tt.text, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseCategory(t *testing.T) {
	if c, ok := ParseCategory("standard"); !ok || c != CategoryStandard {
		t.Errorf("ParseCategory(standard) = (%q, %v)", c, ok)
	}
	if c, ok := ParseCategory(" EXECUTIVE "); !ok || c != CategoryExecutive {
		t.Errorf("ParseCategory(EXECUTIVE) = (%q, %v)", c, ok)
	}
	if _, ok := ParseCategory("premium"); ok {
		t.Error("ParseCategory(premium) should not match")
	}
}
