package reports

import (
	"math"
	"testing"
)

func TestFuelEfficiency(t *testing.T) {
	tests := []struct {
		name           string
		liters, km     float64
		wantKmPerLiter float64
		wantPer100     float64
		wantErr        bool
	}{
		{name: "40l over 360km", liters: 40, km: 360, wantKmPerLiter: 9.0, wantPer100: 11.11},
		{name: "50l over 500km", liters: 50, km: 500, wantKmPerLiter: 10.0, wantPer100: 10.0},
		{name: "zero liters", liters: 0, km: 100, wantErr: true},
		{name: "zero km", liters: 30, km: 0, wantErr: true},
		{name: "negative liters", liters: -5, km: 100, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FuelEfficiency(tt.liters, tt.km)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("FuelEfficiency() error = %v", err)
			}
			if math.Abs(got.KmPerLiter-tt.wantKmPerLiter) > 0.001 {
				t.Errorf("KmPerLiter = %.2f, want %.2f", got.KmPerLiter, tt.wantKmPerLiter)
			}
			if math.Abs(got.LitersPer100Km-tt.wantPer100) > 0.001 {
				t.Errorf("LitersPer100Km = %.2f, want %.2f", got.LitersPer100Km, tt.wantPer100)
			}
		})
	}
}

func TestDailySummary(t *testing.T) {
	tests := []struct {
		name          string
		rides         int
		earned, fuel  float64
		wantProfit    float64
		wantPerRide   float64
		wantMarginPct float64
		wantErr       bool
	}{
		{
			name:  "12 rides 150 earned 60 fuel",
			rides: 12, earned: 150.00, fuel: 60.00,
			wantProfit: 90.00, wantPerRide: 7.50, wantMarginPct: 60.00,
		},
		{
			name:  "zero rides keeps whole profit per ride",
			rides: 0, earned: 80.00, fuel: 30.00,
			wantProfit: 50.00, wantPerRide: 50.00, wantMarginPct: 62.50,
		},
		{
			name:  "zero earned yields zero margin",
			rides: 3, earned: 0, fuel: 20.00,
			wantProfit: -20.00, wantPerRide: -6.67, wantMarginPct: 0,
		},
		{name: "negative rides", rides: -1, earned: 10, fuel: 5, wantErr: true},
		{name: "negative earned", rides: 1, earned: -10, fuel: 5, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DailySummary(tt.rides, tt.earned, tt.fuel)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("DailySummary() error = %v", err)
			}
			if math.Abs(got.Profit-tt.wantProfit) > 0.001 {
				t.Errorf("Profit = %.2f, want %.2f", got.Profit, tt.wantProfit)
			}
			if math.Abs(got.ProfitPerRide-tt.wantPerRide) > 0.001 {
				t.Errorf("ProfitPerRide = %.2f, want %.2f", got.ProfitPerRide, tt.wantPerRide)
			}
			if math.Abs(got.MarginPct-tt.wantMarginPct) > 0.001 {
				t.Errorf("MarginPct = %.2f, want %.2f", got.MarginPct, tt.wantMarginPct)
			}
		})
	}
}
