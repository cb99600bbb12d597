// README: Input parsing helpers for numeric dialogue states.
package trip

import (
	"strconv"
	"strings"
)

// parseDecimal accepts both "," and "." as the decimal separator.
func parseDecimal(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	return strconv.ParseFloat(s, 64)
}

// parseNonNegative validates a decimal >= 0. A nil reply slice means the
// value was accepted; otherwise the replies carry the warning and the caller
// appends the same-state re-prompt.
func parseNonNegative(ev Event) (float64, []Reply) {
	if ev.Kind != EventText {
		return 0, []Reply{{Text: msgBadNumber}}
	}
	v, err := parseDecimal(ev.Text)
	if err != nil {
		return 0, []Reply{{Text: msgBadNumber}}
	}
	if v < 0 {
		return 0, []Reply{{Text: msgNegativeNumber}}
	}
	return v, nil
}

// parsePositive validates a decimal > 0.
func parsePositive(ev Event) (float64, []Reply) {
	v, reply := parseNonNegative(ev)
	if reply != nil {
		return 0, reply
	}
	if v == 0 {
		return 0, []Reply{{Text: msgNotPositive}}
	}
	return v, nil
}

// parseNonNegativeInt validates an integer >= 0 (ride counts).
func parseNonNegativeInt(ev Event) (int, []Reply) {
	if ev.Kind != EventText {
		return 0, []Reply{{Text: msgBadInteger}}
	}
	n, err := strconv.Atoi(strings.TrimSpace(ev.Text))
	if err != nil || n < 0 {
		return 0, []Reply{{Text: msgBadInteger}}
	}
	return n, nil
}

// splitRoute parses "Origem - Destino" for the one-shot command.
func splitRoute(args string) (origin, dest string, ok bool) {
	args = strings.TrimSpace(args)
	if args == "" || !strings.Contains(args, " - ") {
		return "", "", false
	}
	parts := strings.SplitN(args, " - ", 2)
	origin = strings.TrimSpace(parts[0])
	dest = strings.TrimSpace(parts[1])
	if origin == "" || dest == "" {
		return "", "", false
	}
	return origin, dest, true
}
