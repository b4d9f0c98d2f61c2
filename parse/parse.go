package parse

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/spkg/bom"

	"arabus.dev/busboard/model"
)

var zipMagic = []byte("PK\x03\x04")

// Parses a dataset in either of the supported formats. Zip archives
// are parsed as CSV (see ParseZip), anything else as JSON.
func ParseDataset(buf []byte) (*model.Dataset, error) {
	if bytes.HasPrefix(buf, zipMagic) {
		return ParseZip(buf)
	}
	return ParseJSON(buf)
}

// Parses a zip archive holding stops.txt, routes.txt and
// departures.txt.
func ParseZip(buf []byte) (*model.Dataset, error) {
	file := map[string]io.ReadCloser{
		"stops.txt":      nil,
		"routes.txt":     nil,
		"departures.txt": nil,
	}

	defer func() {
		for _, rc := range file {
			if rc != nil {
				rc.Close()
			}
		}
	}()

	r, err := zip.NewReader(bytes.NewReader(buf), int64(len(buf)))
	if err != nil {
		return nil, fmt.Errorf("unzipping: %w", err)
	}

	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		path := strings.Split(f.Name, "/")
		fName := path[len(path)-1]

		if _, found := file[fName]; !found {
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", f.Name, err)
		}

		file[fName] = rc
	}

	for _, required := range []string{"stops.txt", "routes.txt", "departures.txt"} {
		if file[required] == nil {
			return nil, fmt.Errorf("missing %s", required)
		}
	}

	// LazyCSVReader survives sloppy quoting. The BOM reader strips
	// unicode BOMs, which spreadsheet exports like to add.
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		return gocsv.LazyCSVReader(bom.NewReader(in))
	})

	stops, stopIDs, err := ParseStops(file["stops.txt"])
	if err != nil {
		return nil, fmt.Errorf("parsing stops.txt: %w", err)
	}

	routes, routeIDs, err := ParseRoutes(file["routes.txt"], stopIDs)
	if err != nil {
		return nil, fmt.Errorf("parsing routes.txt: %w", err)
	}

	trips, err := ParseDepartures(file["departures.txt"], routeIDs, stopIDs)
	if err != nil {
		return nil, fmt.Errorf("parsing departures.txt: %w", err)
	}

	return &model.Dataset{
		Stops:  stops,
		Routes: routes,
		Trips:  trips,
	}, nil
}

// Checks a dataset for the invariants the rest of the module relies
// on: unique non-empty IDs, routes and trips referencing known stops
// and routes, at most one trip per route and stop, and well formed
// departure times.
func Validate(ds *model.Dataset) error {
	stopIDs := map[string]bool{}
	for i, stop := range ds.Stops {
		if stop == nil {
			return fmt.Errorf("stop %d is null", i)
		}
		if stop.ID == "" {
			return fmt.Errorf("stop %d has no id", i)
		}
		if stopIDs[stop.ID] {
			return fmt.Errorf("repeated stop id '%s'", stop.ID)
		}
		stopIDs[stop.ID] = true
		if stop.Name == "" {
			return fmt.Errorf("stop '%s' has no name", stop.ID)
		}
	}

	routeIDs := map[string]bool{}
	for i, route := range ds.Routes {
		if route == nil {
			return fmt.Errorf("route %d is null", i)
		}
		if err := checkRoute(route, routeIDs, stopIDs); err != nil {
			return err
		}
		routeIDs[route.ID] = true
	}

	seen := map[string]bool{}
	for i, trip := range ds.Trips {
		if trip == nil {
			return fmt.Errorf("trip %d is null", i)
		}
		if !routeIDs[trip.RouteID] {
			return fmt.Errorf("trip %d references unknown route '%s'", i, trip.RouteID)
		}
		if !stopIDs[trip.StopID] {
			return fmt.Errorf("trip %d references unknown stop '%s'", i, trip.StopID)
		}
		key := trip.RouteID + "::" + trip.StopID
		if seen[key] {
			return fmt.Errorf("repeated trip for route '%s' at stop '%s'", trip.RouteID, trip.StopID)
		}
		seen[key] = true

		for _, day := range []model.DayType{model.DayTypeWeekday, model.DayTypeWeekend} {
			for _, hhmm := range trip.Times.For(day) {
				if _, err := model.ParseClock(hhmm); err != nil {
					return fmt.Errorf("trip for route '%s' at stop '%s' (%s): %w", trip.RouteID, trip.StopID, day, err)
				}
			}
		}
	}

	return nil
}

func checkRoute(route *model.Route, routeIDs map[string]bool, stopIDs map[string]bool) error {
	if route.ID == "" {
		return fmt.Errorf("route has no id")
	}
	if routeIDs[route.ID] {
		return fmt.Errorf("repeated route id '%s'", route.ID)
	}
	if route.Name == "" {
		return fmt.Errorf("route '%s' has no name", route.ID)
	}
	if route.Operator == "" {
		return fmt.Errorf("route '%s' has no operator", route.ID)
	}
	if !stopIDs[route.FromStopID] {
		return fmt.Errorf("route '%s' references unknown from_stop_id '%s'", route.ID, route.FromStopID)
	}
	if !stopIDs[route.ToStopID] {
		return fmt.Errorf("route '%s' references unknown to_stop_id '%s'", route.ID, route.ToStopID)
	}
	return nil
}
