// README: Fixed-width path codec between URL segments and move queries.
package codec

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/aamank11/WhatsTheMove-Final-MadHacks/internal/modules/plan"
	"github.com/aamank11/WhatsTheMove-Final-MadHacks/internal/modules/pricing"
)

// The request path is seven fixed segments:
//
//	/{origin}/{destination}/{start_month}/{end_month}/{flags}/{transport}/{budget}
//
// flags is exactly two bits, [needs_moving_truck, wants_moving_help], and
// transport is exactly six bits in pricing.TransportBitOrder with at most
// one bit set. Month segments are lowercase English month names, or the
// literal "unknown" when the user gave no date.

const (
	flagBits      = 2
	transportBits = 6
	monthUnknown  = "unknown"
)

var ErrMalformed = fmt.Errorf("malformed request path")

// Encode renders a query as the seven-segment request path. The
// needs-moving-truck flag forces the transport segment to the moving-truck
// position so encode and decode agree on the effective mode.
func Encode(q plan.Query) string {
	mode := q.Mode
	if q.NeedsMovingTruck {
		mode = pricing.ModeMovingTruck
	}

	var transport [transportBits]byte
	for i := range transport {
		transport[i] = '0'
	}
	for i, m := range pricing.TransportBitOrder {
		if m == mode {
			transport[i] = '1'
			break
		}
	}

	flags := [flagBits]byte{'0', '0'}
	if q.NeedsMovingTruck {
		flags[0] = '1'
	}
	if q.WantsMovingHelp {
		flags[1] = '1'
	}

	return "/" + strings.Join([]string{
		slugCity(q.Origin),
		slugCity(q.Destination),
		monthSegment(q.Start),
		monthSegment(q.End),
		string(flags[:]),
		string(transport[:]),
		strconv.FormatInt(q.BudgetPerMonth, 10),
	}, "/")
}

// Decode parses a full seven-segment path into a query. refYear anchors the
// year-free month names; see DecodeParts.
func Decode(path string, refYear int) (plan.Query, error) {
	trimmed := strings.Trim(path, "/")
	parts := strings.Split(trimmed, "/")
	if len(parts) != 7 {
		return plan.Query{}, fmt.Errorf("%w: want 7 segments, got %d", ErrMalformed, len(parts))
	}
	return DecodeParts(parts[0], parts[1], parts[2], parts[3], parts[4], parts[5], parts[6], refYear)
}

// DecodeParts parses the seven path segments individually, which is how the
// router hands them over. The path carries month names but no years, so the
// caller supplies a reference year; an end month earlier than the start
// month rolls the end into the following year.
func DecodeParts(origin, destination, startMonth, endMonth, flags, transport, budget string, refYear int) (plan.Query, error) {
	var q plan.Query

	if origin == "" || destination == "" {
		return q, fmt.Errorf("%w: empty city segment", ErrMalformed)
	}
	q.Origin = origin
	q.Destination = destination

	start, err := parseMonth(startMonth)
	if err != nil {
		return q, err
	}
	end, err := parseMonth(endMonth)
	if err != nil {
		return q, err
	}
	if start != nil {
		q.Start = &plan.YearMonth{Year: refYear, Month: *start}
	}
	if end != nil {
		endYear := refYear
		if start != nil && *end < *start {
			endYear = refYear + 1
		}
		q.End = &plan.YearMonth{Year: endYear, Month: *end}
	}

	if err := checkBits(flags, flagBits); err != nil {
		return q, err
	}
	q.NeedsMovingTruck = flags[0] == '1'
	q.WantsMovingHelp = flags[1] == '1'

	mode, err := parseTransport(transport)
	if err != nil {
		return q, err
	}
	q.Mode = mode

	b, err := strconv.ParseInt(budget, 10, 64)
	if err != nil {
		return q, fmt.Errorf("%w: budget %q is not an integer", ErrMalformed, budget)
	}
	q.BudgetPerMonth = b

	return q, nil
}

// parseTransport maps the six-bit segment onto a transport mode. All zeros
// means no selection; more than one set bit is malformed.
func parseTransport(segment string) (pricing.Mode, error) {
	if err := checkBits(segment, transportBits); err != nil {
		return pricing.ModeUnknown, err
	}
	mode := pricing.ModeUnknown
	set := 0
	for i, c := range segment {
		if c == '1' {
			mode = pricing.TransportBitOrder[i]
			set++
		}
	}
	if set > 1 {
		return pricing.ModeUnknown, fmt.Errorf("%w: transport segment %q sets %d bits", ErrMalformed, segment, set)
	}
	return mode, nil
}

func checkBits(segment string, width int) error {
	if len(segment) != width {
		return fmt.Errorf("%w: bit segment %q is not %d wide", ErrMalformed, segment, width)
	}
	for _, c := range segment {
		if c != '0' && c != '1' {
			return fmt.Errorf("%w: bit segment %q has a non-bit character", ErrMalformed, segment)
		}
	}
	return nil
}

// parseMonth accepts a lowercase month name or "unknown" (nil month).
func parseMonth(segment string) (*time.Month, error) {
	if segment == monthUnknown {
		return nil, nil
	}
	for m := time.January; m <= time.December; m++ {
		if strings.ToLower(m.String()) == segment {
			month := m
			return &month, nil
		}
	}
	return nil, fmt.Errorf("%w: unknown month %q", ErrMalformed, segment)
}

func monthSegment(ym *plan.YearMonth) string {
	if ym == nil {
		return monthUnknown
	}
	return strings.ToLower(ym.Month.String())
}

// slugCity lowercases a city name and keeps letters only, so "Madison, WI"
// becomes "madisonwi". Geocoding tolerates the squashed form.
func slugCity(city string) string {
	var b strings.Builder
	for _, c := range strings.ToLower(city) {
		if c >= 'a' && c <= 'z' {
			b.WriteRune(c)
		}
	}
	return b.String()
}
