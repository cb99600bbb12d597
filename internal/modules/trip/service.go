// README: Conversation engine: routes events through the dialogue state machine
// and produces replies; transport-agnostic and driven by the adapter.
package trip

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"viagem/internal/geo"
	"viagem/internal/geocode"
	"viagem/internal/modules/history"
	"viagem/internal/modules/pricing"
	"viagem/internal/modules/reports"
	"viagem/internal/types"
)

// ErrSessionMissing marks an internal inconsistency: a downstream state was
// reached without its prerequisite fields. The conversation is terminated.
var ErrSessionMissing = errors.New("session missing required fields")

// Geocoder resolves a free-text address. Implementations must already carry
// the fallback query chain; the engine only attributes failures to the side
// (origin or destination) being resolved.
type Geocoder interface {
	Geocode(ctx context.Context, query string) (geocode.Result, error)
}

// History persists completed quotes. A nil History disables persistence.
type History interface {
	SaveQuote(ctx context.Context, rec history.Record) error
	ListRecent(ctx context.Context, chatID types.ChatID, limit int) ([]history.Record, error)
}

type Config struct {
	AvgSpeedKmh      float64
	DefaultPoint     types.Point
	DefaultPointName string
}

type Service struct {
	sessions *Store
	pricing  *pricing.Service
	geocoder Geocoder
	history  History
	cfg      Config
}

func NewService(sessions *Store, pricingSvc *pricing.Service, geocoder Geocoder, hist History, cfg Config) *Service {
	return &Service{
		sessions: sessions,
		pricing:  pricingSvc,
		geocoder: geocoder,
		history:  hist,
		cfg:      cfg,
	}
}

// Handle processes one user event and returns the replies to deliver.
// Events for the same chat are serialized; distinct chats run concurrently.
func (s *Service) Handle(ctx context.Context, chatID types.ChatID, ev Event) []Reply {
	unlock := s.sessions.Lock(chatID)
	defer unlock()

	if ev.Kind == EventCommand {
		return s.handleCommand(ctx, chatID, ev)
	}

	sess, ok := s.sessions.Get(chatID)
	if !ok {
		if ev.Kind == EventLocation {
			return s.quoteFromPoint(ctx, chatID, ev.Location)
		}
		return []Reply{{Text: msgNoSession}}
	}
	return s.dispatch(ctx, sess, ev)
}

func (s *Service) handleCommand(ctx context.Context, chatID types.ChatID, ev Event) []Reply {
	switch ev.Command {
	case "start":
		s.sessions.Delete(chatID)
		return []Reply{{Text: welcomeCard(ev.Args)}}
	case "ajuda", "help":
		return []Reply{{Text: helpCard()}}
	case "cotacao":
		s.sessions.Put(&Session{ChatID: chatID, State: StateCategory})
		return []Reply{{Text: msgAskCategory, Choices: categoryChoices()}}
	case "combustivel":
		s.sessions.Put(&Session{ChatID: chatID, State: StateFuelLiters})
		return []Reply{{Text: msgAskFuelLiters}}
	case "resumo":
		s.sessions.Put(&Session{ChatID: chatID, State: StateSummaryRides})
		return []Reply{{Text: msgAskSummaryRides}}
	case "cancelar":
		if _, ok := s.sessions.Get(chatID); !ok {
			return []Reply{{Text: msgNothingToDo}}
		}
		s.sessions.Delete(chatID)
		return []Reply{{Text: msgCancelled}}
	case "historico":
		return s.handleHistory(ctx, chatID)
	case "rota":
		return s.handleRota(ctx, chatID, ev.Args)
	default:
		return []Reply{{Text: msgNoSession}}
	}
}

func (s *Service) dispatch(ctx context.Context, sess *Session, ev Event) []Reply {
	switch sess.State {
	case StateCategory:
		return s.onCategory(sess, ev)
	case StateInputMode:
		return s.onInputMode(sess, ev)
	case StateDistance:
		return s.onDistance(sess, ev)
	case StateDuration:
		return s.onDuration(sess, ev)
	case StateOrigin:
		return s.onOrigin(ctx, sess, ev)
	case StateDestination:
		return s.onDestination(ctx, sess, ev)
	case StateCondition:
		return s.onCondition(ctx, sess, ev)
	case StateFuelLiters:
		return s.onFuelLiters(sess, ev)
	case StateFuelKm:
		return s.onFuelKm(sess, ev)
	case StateSummaryRides:
		return s.onSummaryRides(sess, ev)
	case StateSummaryEarned:
		return s.onSummaryEarned(sess, ev)
	case StateSummaryFuel:
		return s.onSummaryFuel(ctx, sess, ev)
	default:
		log.Printf("trip: chat %d in unknown state %d, terminating session", sess.ChatID, sess.State)
		s.sessions.Delete(sess.ChatID)
		return []Reply{{Text: msgInternal}}
	}
}

func (s *Service) onCategory(sess *Session, ev Event) []Reply {
	if ev.Kind == EventChoice {
		if cat, ok := pricing.ParseCategory(ev.ChoiceID); ok {
			sess.Category = cat
			sess.CategoryChosen = true
			sess.State = StateInputMode
			return []Reply{{Text: msgAskInputMode, Choices: inputModeChoices()}}
		}
	}
	return []Reply{{Text: msgBadChoice}, {Text: msgAskCategory, Choices: categoryChoices()}}
}

func (s *Service) onInputMode(sess *Session, ev Event) []Reply {
	switch {
	case ev.Kind == EventChoice && ev.ChoiceID == "manual":
		sess.State = StateDistance
		return []Reply{{Text: msgAskDistance}}
	case ev.Kind == EventChoice && ev.ChoiceID == "address":
		sess.State = StateOrigin
		return []Reply{{Text: msgAskOrigin}}
	case ev.Kind == EventLocation:
		s.setOriginFromLocation(sess, ev.Location)
		return []Reply{{Text: msgAskDest}}
	}
	return []Reply{{Text: msgBadChoice}, {Text: msgAskInputMode, Choices: inputModeChoices()}}
}

func (s *Service) onDistance(sess *Session, ev Event) []Reply {
	v, reply := parseNonNegative(ev)
	if reply != nil {
		return append(reply, Reply{Text: msgAskDistance})
	}
	sess.DistanceKm = v
	sess.DistanceSet = true
	sess.State = StateDuration
	return []Reply{{Text: msgAskDuration}}
}

func (s *Service) onDuration(sess *Session, ev Event) []Reply {
	v, reply := parseNonNegative(ev)
	if reply != nil {
		return append(reply, Reply{Text: msgAskDuration})
	}
	sess.DurationMin = v
	sess.DurationSet = true
	sess.State = StateCondition
	return []Reply{{Text: msgAskCondition, Choices: conditionChoices()}}
}

func (s *Service) onOrigin(ctx context.Context, sess *Session, ev Event) []Reply {
	if ev.Kind == EventLocation {
		s.setOriginFromLocation(sess, ev.Location)
		return []Reply{{Text: msgAskDest}}
	}
	if ev.Kind != EventText || strings.TrimSpace(ev.Text) == "" {
		return []Reply{{Text: msgAskOrigin}}
	}

	res, err := s.geocoder.Geocode(ctx, ev.Text)
	if err != nil {
		// Only the failing side is re-prompted; the session stays intact.
		return []Reply{{Text: geocodeFailure("Origem", ev.Text, err)}, {Text: msgAskOrigin}}
	}
	sess.Origin = res.Point
	sess.OriginSet = true
	sess.OriginLabel = res.Label
	sess.State = StateDestination
	return []Reply{{Text: msgAskDest}}
}

func (s *Service) onDestination(ctx context.Context, sess *Session, ev Event) []Reply {
	if ev.Kind != EventText || strings.TrimSpace(ev.Text) == "" {
		return []Reply{{Text: msgAskDest}}
	}

	res, err := s.geocoder.Geocode(ctx, ev.Text)
	if err != nil {
		return []Reply{{Text: geocodeFailure("Destino", ev.Text, err)}, {Text: msgAskDest}}
	}
	if !sess.OriginSet {
		return s.failSession(sess, fmt.Errorf("%w: destination resolved before origin", ErrSessionMissing))
	}

	sess.DestinationLabel = res.Label
	sess.DistanceKm = geo.HaversineKm(sess.Origin, res.Point)
	sess.DurationMin = geo.EstimateMinutes(sess.DistanceKm, s.cfg.AvgSpeedKmh)
	sess.DistanceSet = true
	sess.DurationSet = true
	sess.State = StateCondition
	return []Reply{{Text: msgAskCondition, Choices: conditionChoices()}}
}

func (s *Service) onCondition(ctx context.Context, sess *Session, ev Event) []Reply {
	var cond pricing.Condition
	var ok bool
	switch ev.Kind {
	case EventChoice:
		cond, ok = pricing.ParseCondition(ev.ChoiceID)
	case EventText:
		cond, ok = pricing.MatchCondition(ev.Text)
	}
	if !ok {
		return []Reply{{Text: msgBadChoice}, {Text: msgAskCondition, Choices: conditionChoices()}}
	}
	return s.finishQuote(ctx, sess, cond)
}

func (s *Service) finishQuote(ctx context.Context, sess *Session, cond pricing.Condition) []Reply {
	category := sess.Category
	if !sess.CategoryChosen {
		category = pricing.CategoryStandard
	}
	if !sess.DistanceSet || !sess.DurationSet {
		return s.failSession(sess, fmt.Errorf("%w: condition accepted without distance/duration", ErrSessionMissing))
	}

	q, err := s.pricing.Quote(ctx, sess.DistanceKm, sess.DurationMin, category, cond)
	if err != nil {
		return s.failSession(sess, err)
	}

	s.saveHistory(ctx, sess.ChatID, q, sess.OriginLabel, sess.DestinationLabel)
	s.sessions.Delete(sess.ChatID)
	return []Reply{{Text: quoteCard(q, sess.OriginLabel, sess.DestinationLabel)}}
}

func (s *Service) onFuelLiters(sess *Session, ev Event) []Reply {
	v, reply := parsePositive(ev)
	if reply != nil {
		return append(reply, Reply{Text: msgAskFuelLiters})
	}
	sess.FuelLiters = v
	sess.State = StateFuelKm
	return []Reply{{Text: msgAskFuelKm}}
}

func (s *Service) onFuelKm(sess *Session, ev Event) []Reply {
	v, reply := parsePositive(ev)
	if reply != nil {
		return append(reply, Reply{Text: msgAskFuelKm})
	}
	rep, err := reports.FuelEfficiency(sess.FuelLiters, v)
	if err != nil {
		return s.failSession(sess, err)
	}
	s.sessions.Delete(sess.ChatID)
	return []Reply{{Text: fuelCard(rep)}}
}

func (s *Service) onSummaryRides(sess *Session, ev Event) []Reply {
	n, reply := parseNonNegativeInt(ev)
	if reply != nil {
		return append(reply, Reply{Text: msgAskSummaryRides})
	}
	sess.SummaryRides = n
	sess.State = StateSummaryEarned
	return []Reply{{Text: msgAskSummaryEarned}}
}

func (s *Service) onSummaryEarned(sess *Session, ev Event) []Reply {
	v, reply := parseNonNegative(ev)
	if reply != nil {
		return append(reply, Reply{Text: msgAskSummaryEarned})
	}
	sess.SummaryEarned = v
	sess.State = StateSummaryFuel
	return []Reply{{Text: msgAskSummaryFuel}}
}

func (s *Service) onSummaryFuel(ctx context.Context, sess *Session, ev Event) []Reply {
	v, reply := parseNonNegative(ev)
	if reply != nil {
		return append(reply, Reply{Text: msgAskSummaryFuel})
	}
	rep, err := reports.DailySummary(sess.SummaryRides, sess.SummaryEarned, v)
	if err != nil {
		return s.failSession(sess, err)
	}
	s.sessions.Delete(sess.ChatID)
	return []Reply{{Text: summaryCard(rep)}}
}

// handleRota answers the one-shot "/rota Origem - Destino" command with the
// default category under normal conditions.
func (s *Service) handleRota(ctx context.Context, chatID types.ChatID, args string) []Reply {
	origin, dest, ok := splitRoute(args)
	if !ok {
		return []Reply{{Text: msgRotaUsage}}
	}

	from, err := s.geocoder.Geocode(ctx, origin)
	if err != nil {
		return []Reply{{Text: geocodeFailure("Origem", origin, err)}}
	}
	to, err := s.geocoder.Geocode(ctx, dest)
	if err != nil {
		return []Reply{{Text: geocodeFailure("Destino", dest, err)}}
	}

	distanceKm := geo.HaversineKm(from.Point, to.Point)
	durationMin := geo.EstimateMinutes(distanceKm, s.cfg.AvgSpeedKmh)
	q, err := s.pricing.Quote(ctx, distanceKm, durationMin, pricing.CategoryStandard, pricing.ConditionNormal)
	if err != nil {
		log.Printf("trip: rota quote failed for chat %d: %v", chatID, err)
		return []Reply{{Text: msgInternal}}
	}

	s.saveHistory(ctx, chatID, q, from.Label, to.Label)
	return []Reply{{Text: quoteCard(q, from.Label, to.Label)}}
}

// quoteFromPoint quotes a shared GPS location against the configured
// reference point.
func (s *Service) quoteFromPoint(ctx context.Context, chatID types.ChatID, point types.Point) []Reply {
	originLabel := fmt.Sprintf("Sua posição (%.4f, %.4f)", point.Lat, point.Lng)
	distanceKm := geo.HaversineKm(point, s.cfg.DefaultPoint)
	durationMin := geo.EstimateMinutes(distanceKm, s.cfg.AvgSpeedKmh)

	q, err := s.pricing.Quote(ctx, distanceKm, durationMin, pricing.CategoryStandard, pricing.ConditionNormal)
	if err != nil {
		log.Printf("trip: location quote failed for chat %d: %v", chatID, err)
		return []Reply{{Text: msgInternal}}
	}

	s.saveHistory(ctx, chatID, q, originLabel, s.cfg.DefaultPointName)
	return []Reply{{Text: quoteCard(q, originLabel, s.cfg.DefaultPointName)}}
}

func (s *Service) handleHistory(ctx context.Context, chatID types.ChatID) []Reply {
	if s.history == nil {
		return []Reply{{Text: msgHistoryDisabled}}
	}
	recs, err := s.history.ListRecent(ctx, chatID, 5)
	if err != nil {
		log.Printf("trip: history lookup failed for chat %d: %v", chatID, err)
		return []Reply{{Text: msgHistoryDisabled}}
	}
	if len(recs) == 0 {
		return []Reply{{Text: msgHistoryEmpty}}
	}
	return []Reply{{Text: historyCard(recs)}}
}

func (s *Service) saveHistory(ctx context.Context, chatID types.ChatID, q pricing.Quote, originLabel, destLabel string) {
	if s.history == nil {
		return
	}
	err := s.history.SaveQuote(ctx, history.Record{
		ChatID:      chatID,
		OriginLabel: originLabel,
		DestLabel:   destLabel,
		DistanceKm:  q.DistanceKm,
		DurationMin: q.DurationMin,
		Category:    string(q.Category),
		Condition:   string(q.Condition),
		Total:       q.Total,
	})
	if err != nil {
		log.Printf("trip: could not persist quote for chat %d: %v", chatID, err)
	}
}

// failSession terminates the conversation on an internal inconsistency.
func (s *Service) failSession(sess *Session, err error) []Reply {
	log.Printf("trip: chat %d session terminated: %v", sess.ChatID, err)
	s.sessions.Delete(sess.ChatID)
	return []Reply{{Text: msgInternal}}
}

func (s *Service) setOriginFromLocation(sess *Session, point types.Point) {
	sess.Origin = point
	sess.OriginSet = true
	sess.OriginLabel = fmt.Sprintf("Sua posição (%.4f, %.4f)", point.Lat, point.Lng)
	sess.State = StateDestination
}

func geocodeFailure(side, query string, err error) string {
	if errors.Is(err, geocode.ErrNotFound) {
		return fmt.Sprintf("❌ %s não encontrado(a): %s", side, strings.TrimSpace(query))
	}
	return msgGeocodeRetry
}
