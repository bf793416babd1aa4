package model

import (
	"encoding/json"
	"strconv"
	"strings"
)

// LastDayLabel is how the "last day of month" due date is stored.
const LastDayLabel = "Last day"

// DueDay is a nominal day of month as entered by the user: 1..31, the last
// day of the month, or free text that matches no calendar day.
type DueDay struct {
	Day  int    // 1..31 when valid
	Last bool   // "Last day"
	Raw  string // unparseable input, kept for display
}

// LastDay returns the "Last day" due date.
func LastDay() DueDay { return DueDay{Last: true} }

// OnDay returns a due date for day n.
func OnDay(n int) DueDay { return DueDay{Day: n} }

// Valid reports whether d can land on a calendar day.
func (d DueDay) Valid() bool {
	return d.Last || (d.Day >= 1 && d.Day <= 31)
}

// IsZero reports whether no due date was given at all.
func (d DueDay) IsZero() bool {
	return !d.Last && d.Day == 0 && d.Raw == ""
}

func (d DueDay) String() string {
	switch {
	case d.Last:
		return LastDayLabel
	case d.Day > 0:
		return strconv.Itoa(d.Day)
	default:
		return d.Raw
	}
}

var lastDayWords = map[string]struct{}{
	"last day":              {},
	"last":                  {},
	"last day of month":     {},
	"last day of the month": {},
	"end of month":          {},
	"eom":                   {},
}

// ParseDueDay reads "15", "15th", "Last day" and similar. Anything else is
// kept as Raw and never matches a calendar day.
func ParseDueDay(s string) DueDay {
	s = strings.TrimSpace(s)
	if s == "" {
		return DueDay{}
	}
	lower := strings.ToLower(s)
	if _, ok := lastDayWords[lower]; ok {
		return LastDay()
	}
	digits := strings.TrimRight(lower, "stndrh")
	if n, err := strconv.Atoi(strings.TrimSpace(digits)); err == nil && n >= 1 && n <= 31 {
		return OnDay(n)
	}
	return DueDay{Raw: s}
}

// MarshalJSON writes "Last day", an integer, or the raw text.
func (d DueDay) MarshalJSON() ([]byte, error) {
	switch {
	case d.Last:
		return json.Marshal(LastDayLabel)
	case d.Day > 0:
		return []byte(strconv.Itoa(d.Day)), nil
	default:
		return json.Marshal(d.Raw)
	}
}

// UnmarshalJSON accepts a number or any string ParseDueDay understands.
func (d *DueDay) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = DueDay{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*d = ParseDueDay(s)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	if f == float64(int(f)) && f >= 1 && f <= 31 {
		*d = OnDay(int(f))
		return nil
	}
	*d = DueDay{Raw: strconv.FormatFloat(f, 'f', -1, 64)}
	return nil
}
