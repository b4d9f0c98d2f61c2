package busboard

import (
	"fmt"
	"time"

	"arabus.dev/busboard/model"
	"arabus.dev/busboard/parse"
)

// A loaded dataset, indexed for lookups. Read-only once created.
type Schedule struct {
	Dataset *model.Dataset

	routesByID map[string]*model.Route
	stopsByID  map[string]*model.Stop
	tripsByKey map[string]*model.Trip
	operators  []string
}

// Validates ds and builds the lookup tables.
func NewSchedule(ds *model.Dataset) (*Schedule, error) {
	if ds == nil {
		ds = &model.Dataset{}
	}

	if err := parse.Validate(ds); err != nil {
		return nil, fmt.Errorf("validating dataset: %w", err)
	}

	tripsByKey := make(map[string]*model.Trip, len(ds.Trips))
	for _, trip := range ds.Trips {
		tripsByKey[FavoriteKey(trip.RouteID, trip.StopID)] = trip
	}

	return &Schedule{
		Dataset:    ds,
		routesByID: IndexRoutes(ds.Routes),
		stopsByID:  IndexStops(ds.Stops),
		tripsByKey: tripsByKey,
		operators:  DistinctOperators(ds.Routes),
	}, nil
}

// Schedule with no stops, routes or trips. Stands in for a dataset
// that failed to load.
func EmptySchedule() *Schedule {
	s, _ := NewSchedule(&model.Dataset{
		Stops:  []*model.Stop{},
		Routes: []*model.Route{},
		Trips:  []*model.Trip{},
	})
	return s
}

func (s *Schedule) Routes() []*model.Route {
	return s.Dataset.Routes
}

func (s *Schedule) Stops() []*model.Stop {
	return s.Dataset.Stops
}

func (s *Schedule) Route(id string) (*model.Route, bool) {
	r, ok := s.routesByID[id]
	return r, ok
}

func (s *Schedule) Stop(id string) (*model.Stop, bool) {
	st, ok := s.stopsByID[id]
	return st, ok
}

// Sorted list of all operators in the dataset.
func (s *Schedule) Operators() []string {
	return s.operators
}

// The trip for a route and stop, if any.
func (s *Schedule) Trip(routeID string, stopID string) (*model.Trip, bool) {
	t, ok := s.tripsByKey[FavoriteKey(routeID, stopID)]
	return t, ok
}

// Routes to display for the criteria. A RouteID selects that route
// alone (or nothing, if unknown). Otherwise routes are filtered as
// per FilterRoutes.
func (s *Schedule) Select(c Criteria) []*model.Route {
	if c.RouteID != "" {
		if r, ok := s.routesByID[c.RouteID]; ok {
			return []*model.Route{r}
		}
		return []*model.Route{}
	}
	return FilterRoutes(s.Dataset.Routes, c)
}

// Next count departures for a route at a stop, using the timetable
// for now's day type. Empty if there is no such trip.
func (s *Schedule) Departures(routeID string, stopID string, now time.Time, count int) ([]model.Departure, error) {
	trip, ok := s.Trip(routeID, stopID)
	if !ok {
		return []model.Departure{}, nil
	}
	return NextDepartures(trip.Times.For(DayTypeOf(now)), now, count)
}
