package parse

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"arabus.dev/busboard/model"
)

type RouteCSV struct {
	ID         string `csv:"route_id"`
	Code       string `csv:"route_code"`
	Name       string `csv:"route_name"`
	Operator   string `csv:"operator"`
	FromStopID string `csv:"from_stop_id"`
	ToStopID   string `csv:"to_stop_id"`
}

func ParseRoutes(data io.Reader, stops map[string]bool) ([]*model.Route, map[string]bool, error) {
	routeCsv := []*RouteCSV{}
	if err := gocsv.Unmarshal(data, &routeCsv); err != nil {
		return nil, nil, fmt.Errorf("unmarshaling routes: %v", err)
	}

	routes := []*model.Route{}
	routeIDs := map[string]bool{}

	for _, r := range routeCsv {
		route := &model.Route{
			ID:         r.ID,
			Code:       r.Code,
			Name:       r.Name,
			Operator:   r.Operator,
			FromStopID: r.FromStopID,
			ToStopID:   r.ToStopID,
		}

		if err := checkRoute(route, routeIDs, stops); err != nil {
			return nil, nil, err
		}
		routeIDs[r.ID] = true

		routes = append(routes, route)
	}

	return routes, routeIDs, nil
}
