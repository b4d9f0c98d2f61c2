package parse

import (
	"encoding/json"
	"fmt"

	"arabus.dev/busboard/model"
)

// Parses the JSON dataset, as served by the web version:
//
//	{"stops": [...], "routes": [...], "trips": [...]}
//
// Missing collections are treated as empty.
func ParseJSON(buf []byte) (*model.Dataset, error) {
	ds := &model.Dataset{}
	if err := json.Unmarshal(buf, ds); err != nil {
		return nil, fmt.Errorf("unmarshaling dataset: %w", err)
	}

	if ds.Stops == nil {
		ds.Stops = []*model.Stop{}
	}
	if ds.Routes == nil {
		ds.Routes = []*model.Route{}
	}
	if ds.Trips == nil {
		ds.Trips = []*model.Trip{}
	}

	if err := Validate(ds); err != nil {
		return nil, fmt.Errorf("validating dataset: %w", err)
	}

	return ds, nil
}
