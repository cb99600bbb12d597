package geocode

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"viagem/internal/types"
)

func TestQueryChain_Candidates(t *testing.T) {
	chain := QueryChain{
		CityHint:      "Juiz de Fora",
		StateSuffix:   "MG, Brasil",
		CountrySuffix: "Brasil",
	}

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{
			name:  "home city without state gets both qualifiers",
			query: "Rua Halfeld, Juiz de Fora",
			want: []string{
				"Rua Halfeld, Juiz de Fora",
				"Rua Halfeld, Juiz de Fora, MG, Brasil",
				"Rua Halfeld, Juiz de Fora, Brasil",
			},
		},
		{
			name:  "query already qualified with state skips the state variant",
			query: "Rua Halfeld, Juiz de Fora, MG",
			want: []string{
				"Rua Halfeld, Juiz de Fora, MG",
				"Rua Halfeld, Juiz de Fora, MG, Brasil",
			},
		},
		{
			name:  "fully qualified query stays alone",
			query: "Av. Rio Branco, Juiz de Fora, MG, Brasil",
			want:  []string{"Av. Rio Branco, Juiz de Fora, MG, Brasil"},
		},
		{
			name:  "other city gets only the country qualifier",
			query: "Av. Paulista, São Paulo",
			want: []string{
				"Av. Paulista, São Paulo",
				"Av. Paulista, São Paulo, Brasil",
			},
		},
		{
			name:  "surrounding whitespace is trimmed",
			query: "  Praça da Estação  ",
			want: []string{
				"Praça da Estação",
				"Praça da Estação, Brasil",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := chain.Candidates(tt.query)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Candidates(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

// scriptedGeocoder returns canned results keyed by exact query.
type scriptedGeocoder struct {
	results map[string]Result
	errs    map[string]error
	calls   []string
}

func (s *scriptedGeocoder) Geocode(_ context.Context, query string) (Result, error) {
	s.calls = append(s.calls, query)
	if err, ok := s.errs[query]; ok {
		return Result{}, err
	}
	if res, ok := s.results[query]; ok {
		return res, nil
	}
	return Result{}, ErrNotFound
}

func TestFallback_FirstSuccessWins(t *testing.T) {
	inner := &scriptedGeocoder{
		results: map[string]Result{
			"Rua Halfeld, Juiz de Fora, MG, Brasil": {
				Label: "Rua Halfeld - Centro, Juiz de Fora - MG, Brasil",
				Point: types.Point{Lat: -21.761, Lng: -43.349},
			},
		},
	}
	f := WithFallback(inner, QueryChain{
		CityHint: "Juiz de Fora", StateSuffix: "MG, Brasil", CountrySuffix: "Brasil",
	})

	res, err := f.Geocode(context.Background(), "Rua Halfeld, Juiz de Fora")
	if err != nil {
		t.Fatalf("Geocode() error = %v", err)
	}
	if res.Label != "Rua Halfeld - Centro, Juiz de Fora - MG, Brasil" {
		t.Errorf("unexpected label %q", res.Label)
	}
	wantCalls := []string{
		"Rua Halfeld, Juiz de Fora",
		"Rua Halfeld, Juiz de Fora, MG, Brasil",
	}
	if !reflect.DeepEqual(inner.calls, wantCalls) {
		t.Errorf("calls = %v, want %v (must stop at first success)", inner.calls, wantCalls)
	}
}

func TestFallback_AllMissMapsToNotFound(t *testing.T) {
	inner := &scriptedGeocoder{}
	f := WithFallback(inner, QueryChain{CountrySuffix: "Brasil"})

	_, err := f.Geocode(context.Background(), "Rua Inexistente 999")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Geocode() error = %v, want ErrNotFound", err)
	}
	if len(inner.calls) != 2 {
		t.Errorf("expected 2 candidate attempts, got %d", len(inner.calls))
	}
}

func TestFallback_UnavailableAbortsChain(t *testing.T) {
	inner := &scriptedGeocoder{
		errs: map[string]error{"Praça da Estação": ErrUnavailable},
	}
	f := WithFallback(inner, QueryChain{CountrySuffix: "Brasil"})

	_, err := f.Geocode(context.Background(), "Praça da Estação")
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("Geocode() error = %v, want ErrUnavailable", err)
	}
	if len(inner.calls) != 1 {
		t.Errorf("transport failure must abort the chain, got %d calls", len(inner.calls))
	}
}

func TestCacheKey_Normalizes(t *testing.T) {
	a := cacheKey("Rua  Halfeld,   Juiz de Fora")
	b := cacheKey("rua halfeld, juiz de fora")
	if a != b {
		t.Errorf("cache keys differ: %q vs %q", a, b)
	}
}
