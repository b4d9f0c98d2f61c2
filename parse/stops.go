package parse

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"arabus.dev/busboard/model"
)

type StopCSV struct {
	ID   string `csv:"stop_id"`
	Name string `csv:"stop_name"`
}

func ParseStops(data io.Reader) ([]*model.Stop, map[string]bool, error) {
	stopCsv := []*StopCSV{}
	if err := gocsv.Unmarshal(data, &stopCsv); err != nil {
		return nil, nil, fmt.Errorf("unmarshaling stops csv: %w", err)
	}

	stops := []*model.Stop{}
	stopIDs := map[string]bool{}
	for _, st := range stopCsv {
		if st.ID == "" {
			return nil, nil, fmt.Errorf("empty stop_id")
		}
		if stopIDs[st.ID] {
			return nil, nil, fmt.Errorf("repeated stop_id '%s'", st.ID)
		}
		stopIDs[st.ID] = true

		if st.Name == "" {
			return nil, nil, fmt.Errorf("empty stop_name for stop_id '%s'", st.ID)
		}

		stops = append(stops, &model.Stop{
			ID:   st.ID,
			Name: st.Name,
		})
	}

	return stops, stopIDs, nil
}
