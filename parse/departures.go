package parse

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"

	"arabus.dev/busboard/model"
)

// One row per departure. Rows for the same route and stop are folded
// into a single Trip, in order of first appearance.
type DepartureCSV struct {
	RouteID string `csv:"route_id"`
	StopID  string `csv:"stop_id"`
	DayType string `csv:"day_type"`
	Time    string `csv:"time"`
}

func ParseDepartures(
	data io.Reader,
	routes map[string]bool,
	stops map[string]bool,
) ([]*model.Trip, error) {

	trips := []*model.Trip{}
	tripByKey := map[string]*model.Trip{}

	i := -1
	err := gocsv.UnmarshalToCallbackWithError(data, func(d *DepartureCSV) error {
		i += 1
		if !routes[d.RouteID] {
			return fmt.Errorf("unknown route_id: '%s' (row %d)", d.RouteID, i+1)
		}
		if d.StopID == "" {
			return fmt.Errorf("missing stop_id (row %d)", i+1)
		}
		if !stops[d.StopID] {
			return fmt.Errorf("unknown stop_id: '%s' (row %d)", d.StopID, i+1)
		}

		day := model.DayType(d.DayType)
		if !day.Valid() {
			return fmt.Errorf("invalid day_type: '%s' (row %d)", d.DayType, i+1)
		}

		clock, err := model.ParseClock(d.Time)
		if err != nil {
			return errors.Wrapf(err, "parsing time (row %d)", i+1)
		}

		key := d.RouteID + "::" + d.StopID
		trip, found := tripByKey[key]
		if !found {
			trip = &model.Trip{
				RouteID: d.RouteID,
				StopID:  d.StopID,
				Times: model.Timetable{
					Weekday: []string{},
					Weekend: []string{},
				},
			}
			tripByKey[key] = trip
			trips = append(trips, trip)
		}

		if day == model.DayTypeWeekend {
			trip.Times.Weekend = append(trip.Times.Weekend, clock.String())
		} else {
			trip.Times.Weekday = append(trip.Times.Weekday, clock.String())
		}

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "unmarshaling departures csv")
	}

	return trips, nil
}
