// README: Geocoder contract and the locale-aware fallback query chain.
package geocode

import (
	"context"
	"errors"
	"strings"

	"viagem/internal/types"
)

var (
	// ErrNotFound means no candidate query resolved to a location.
	ErrNotFound = errors.New("geocode: address not found")
	// ErrUnavailable means the geocoding service could not be reached in time.
	ErrUnavailable = errors.New("geocode: service unavailable")
)

// Result is a resolved address.
type Result struct {
	Label string
	Point types.Point
}

// Geocoder resolves free-text addresses to coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, query string) (Result, error)
}

// QueryChain builds progressively qualified variants of an ambiguous query.
type QueryChain struct {
	// CityHint marks queries that mention the home city but lack a state
	// qualifier; those get StateSuffix appended first.
	CityHint      string
	StateSuffix   string
	CountrySuffix string
}

// Candidates returns the query variants to try, most specific input first,
// with duplicates removed.
func (c QueryChain) Candidates(query string) []string {
	query = strings.TrimSpace(query)
	candidates := []string{query}

	if c.CityHint != "" && c.StateSuffix != "" &&
		strings.Contains(query, c.CityHint) && !containsAnyPart(query, c.StateSuffix) {
		candidates = append(candidates, query+", "+c.StateSuffix)
	}
	if c.CountrySuffix != "" && !strings.Contains(query, c.CountrySuffix) {
		candidates = append(candidates, query+", "+c.CountrySuffix)
	}

	seen := make(map[string]bool, len(candidates))
	unique := candidates[:0]
	for _, item := range candidates {
		if !seen[item] {
			unique = append(unique, item)
			seen[item] = true
		}
	}
	return unique
}

// containsAnyPart reports whether the query already carries any comma-separated
// part of the suffix (e.g. "MG" or "Brasil" from "MG, Brasil").
func containsAnyPart(query, suffix string) bool {
	for _, part := range strings.Split(suffix, ",") {
		part = strings.TrimSpace(part)
		if part != "" && strings.Contains(query, part) {
			return true
		}
	}
	return false
}

// Fallback wraps a geocoder with the query chain: candidates are tried in
// order and the first success wins. A transport failure aborts immediately;
// exhausting all candidates maps to ErrNotFound.
type Fallback struct {
	inner Geocoder
	chain QueryChain
}

func WithFallback(inner Geocoder, chain QueryChain) *Fallback {
	return &Fallback{inner: inner, chain: chain}
}

func (f *Fallback) Geocode(ctx context.Context, query string) (Result, error) {
	for _, candidate := range f.chain.Candidates(query) {
		res, err := f.inner.Geocode(ctx, candidate)
		if err == nil {
			return res, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return Result{}, err
		}
	}
	return Result{}, ErrNotFound
}
