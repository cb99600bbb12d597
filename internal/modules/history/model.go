// README: Completed-quote record persisted for later lookup.
package history

import (
	"time"

	"viagem/internal/types"
)

type Record struct {
	ID          int64
	ChatID      types.ChatID
	OriginLabel string
	DestLabel   string
	DistanceKm  float64
	DurationMin float64
	Category    string
	Condition   string
	Total       float64
	CreatedAt   time.Time
}
