package busboard

import (
	"fmt"
	"math"
	"sort"
	"time"

	"arabus.dev/busboard/model"
)

var ErrInvalidTimeFormat = model.ErrInvalidTimeFormat

const (
	// Departures more than this many minutes in the past are
	// assumed to refer to the next day.
	PastTolerance = 5

	minutesPerDay = 24 * 60
)

// Weekend on Saturday and Sunday, weekday otherwise.
func DayTypeOf(now time.Time) model.DayType {
	switch now.Weekday() {
	case time.Saturday, time.Sunday:
		return model.DayTypeWeekend
	}
	return model.DayTypeWeekday
}

// Returns the number of whole minutes from now until hhmm.
//
// hhmm is placed on now's calendar day. If that puts it more than
// PastTolerance minutes in the past, it is taken to mean the same
// time tomorrow instead. Results are rounded to the nearest minute.
func MinutesUntil(hhmm string, now time.Time) (int, error) {
	clock, err := model.ParseClock(hhmm)
	if err != nil {
		return 0, err
	}

	target := time.Date(now.Year(), now.Month(), now.Day(), clock.Hour, clock.Minute, 0, 0, now.Location())

	diff := target.Sub(now).Minutes()
	if diff < -PastTolerance {
		diff += minutesPerDay
	}

	return int(math.Round(diff)), nil
}

// Returns a window of at most count departures, relative to now.
//
// Upcoming departures come first, soonest first. If there are fewer
// than count of them, the window is padded with departures from the
// last PastTolerance minutes, so that a stop with no more buses today
// still shows the one that just left. Ties keep their input order.
func NextDepartures(times []string, now time.Time, count int) ([]model.Departure, error) {
	departures := []model.Departure{}
	if len(times) == 0 || count <= 0 {
		return departures, nil
	}

	all := make([]model.Departure, 0, len(times))
	for _, hhmm := range times {
		mins, err := MinutesUntil(hhmm, now)
		if err != nil {
			return nil, fmt.Errorf("computing minutes until '%s': %w", hhmm, err)
		}
		if mins < -PastTolerance {
			continue
		}
		all = append(all, model.Departure{Time: hhmm, MinutesUntil: mins})
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].MinutesUntil < all[j].MinutesUntil
	})

	filler := []model.Departure{}
	for _, d := range all {
		if d.Upcoming() {
			if len(departures) < count {
				departures = append(departures, d)
			}
		} else {
			filler = append(filler, d)
		}
	}

	for _, d := range filler {
		if len(departures) >= count {
			break
		}
		departures = append(departures, d)
	}

	return departures, nil
}
