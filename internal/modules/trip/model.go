// README: Conversation session model and the events/replies the engine speaks.
package trip

import (
	"viagem/internal/modules/pricing"
	"viagem/internal/types"
)

// State is the position of a conversation in one of the dialogue flows.
// Sessions advance strictly forward; cancel is the only way back.
type State int

const (
	StateCategory State = iota + 1
	StateInputMode
	StateDistance
	StateDuration
	StateOrigin
	StateDestination
	StateCondition

	StateFuelLiters
	StateFuelKm

	StateSummaryRides
	StateSummaryEarned
	StateSummaryFuel
)

// Session is the per-user scratch space for one conversation. Fields are set
// at most once per conversation and never survive into the next one.
type Session struct {
	ChatID types.ChatID
	State  State

	Category       pricing.Category
	CategoryChosen bool

	DistanceKm  float64
	DurationMin float64
	DistanceSet bool
	DurationSet bool

	Origin           types.Point
	OriginSet        bool
	OriginLabel      string
	DestinationLabel string

	FuelLiters float64

	SummaryRides  int
	SummaryEarned float64
}

type EventKind int

const (
	EventText EventKind = iota + 1
	EventChoice
	EventLocation
	EventCommand
)

// Event is one user input routed to the engine by the transport adapter.
type Event struct {
	Kind     EventKind
	Text     string
	ChoiceID string
	Location types.Point
	Command  string
	Args     string
}

// Choice is one selectable option presented to the user.
type Choice struct {
	ID    string
	Label string
}

// Reply is one outbound message. A non-empty Choices slice asks the
// transport to render a selection keyboard.
type Reply struct {
	Text    string
	Choices []Choice
}
