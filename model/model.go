package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Holds all external facing types and constants.

var ErrInvalidTimeFormat = errors.New("invalid time format")

type DayType string

const (
	DayTypeWeekday DayType = "weekday"
	DayTypeWeekend DayType = "weekend"
)

// Display label for the day type.
func (d DayType) Label() string {
	if d == DayTypeWeekend {
		return "fin de semana"
	}
	return "día laboral"
}

func (d DayType) Valid() bool {
	return d == DayTypeWeekday || d == DayTypeWeekend
}

type Stop struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Route struct {
	ID         string `json:"id"`
	Code       string `json:"code,omitempty"`
	Name       string `json:"name"`
	Operator   string `json:"operator"`
	FromStopID string `json:"from_stop_id"`
	ToStopID   string `json:"to_stop_id"`
}

// Name as shown to users: "code — name", or just name when the route
// has no code.
func (r *Route) DisplayName() string {
	if r.Code == "" {
		return r.Name
	}
	return r.Code + " — " + r.Name
}

// Endpoint stop IDs, origin first.
func (r *Route) StopIDs() []string {
	return []string{r.FromStopID, r.ToStopID}
}

// Departure times ("HH:MM") per day type. Not necessarily sorted.
type Timetable struct {
	Weekday []string `json:"weekday"`
	Weekend []string `json:"weekend"`
}

func (t Timetable) For(day DayType) []string {
	if day == DayTypeWeekend {
		return t.Weekend
	}
	return t.Weekday
}

type Trip struct {
	RouteID string    `json:"route_id"`
	StopID  string    `json:"stop_id"`
	Times   Timetable `json:"times"`
}

type Dataset struct {
	Stops  []*Stop  `json:"stops"`
	Routes []*Route `json:"routes"`
	Trips  []*Trip  `json:"trips"`
}

// A departure relative to some reference instant. MinutesUntil is
// negative for departures that have recently passed.
type Departure struct {
	Time         string
	MinutesUntil int
}

func (d Departure) Upcoming() bool {
	return d.MinutesUntil >= 0
}

// Relative description, e.g. "en 5 min" or "pasó hace 2 min".
func (d Departure) Relative() string {
	if d.MinutesUntil >= 0 {
		return fmt.Sprintf("en %d min", d.MinutesUntil)
	}
	return fmt.Sprintf("pasó hace %d min", -d.MinutesUntil)
}

// Time of day on a 24 hour clock, minute resolution.
type Clock struct {
	Hour   int
	Minute int
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// Parses "HH:MM" (24 hour clock). Single digit hours ("7:05") are
// accepted, minutes must have two digits.
func ParseClock(s string) (Clock, error) {
	hh, mm, found := strings.Cut(s, ":")
	if !found {
		return Clock{}, fmt.Errorf("%w: missing ':' in '%s'", ErrInvalidTimeFormat, s)
	}
	if len(hh) < 1 || len(hh) > 2 || len(mm) != 2 {
		return Clock{}, fmt.Errorf("%w: '%s' is not HH:MM", ErrInvalidTimeFormat, s)
	}

	h, err := atoiDigits(hh)
	if err != nil {
		return Clock{}, fmt.Errorf("%w: non-integer hour in '%s'", ErrInvalidTimeFormat, s)
	}
	m, err := atoiDigits(mm)
	if err != nil {
		return Clock{}, fmt.Errorf("%w: non-integer minute in '%s'", ErrInvalidTimeFormat, s)
	}

	if h > 23 {
		return Clock{}, fmt.Errorf("%w: invalid hour in '%s'", ErrInvalidTimeFormat, s)
	}
	if m > 59 {
		return Clock{}, fmt.Errorf("%w: invalid minute in '%s'", ErrInvalidTimeFormat, s)
	}

	return Clock{Hour: h, Minute: m}, nil
}

// strconv.Atoi accepts signs, which have no place in a clock.
func atoiDigits(s string) (int, error) {
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("non-digit %q", r)
		}
	}
	return strconv.Atoi(s)
}
