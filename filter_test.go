package busboard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"arabus.dev/busboard/model"
	"arabus.dev/busboard/testutil"
)

func routeIDs(routes []*model.Route) []string {
	ids := []string{}
	for _, r := range routes {
		ids = append(ids, r.ID)
	}
	return ids
}

func TestFilterRoutesNoCriteria(t *testing.T) {
	routes := testutil.FixtureDataset().Routes

	filtered := FilterRoutes(routes, Criteria{})
	assert.Equal(t, routes, filtered)
	assert.True(t, Criteria{}.Empty())

	assert.Equal(t, []*model.Route{}, FilterRoutes(nil, Criteria{}))
}

func TestFilterRoutes(t *testing.T) {
	routes := testutil.FixtureDataset().Routes

	for _, tc := range []struct {
		name     string
		criteria Criteria
		expected []string
	}{
		{"operator", Criteria{Operator: "Buses Jota Be"}, []string{"r1", "r2"}},
		{"operator is exact", Criteria{Operator: "buses jota be"}, []string{}},
		{"origin", Criteria{Origin: "concepcion"}, []string{"r3"}},
		{"destination", Criteria{Destination: "concepcion"}, []string{"r1", "r2"}},
		{"origin and destination", Criteria{Origin: "lota", Destination: "concepcion"}, []string{"r2"}},
		{"no overlap", Criteria{Operator: "Expreso Arauco", Destination: "concepcion"}, []string{}},
		{"query matches code or name", Criteria{Query: "101"}, []string{"r1", "r3"}},
		{"query matches code only", Criteria{Query: "202"}, []string{"r3"}},
		{"query is case insensitive", Criteria{Query: "CONCEPCIÓN"}, []string{"r1", "r2"}},
		{"query on route without code", Criteria{Query: "lota"}, []string{"r2"}},
		{"query without match", Criteria{Query: "talcahuano"}, []string{}},
		{"query and operator", Criteria{Query: "101", Operator: "Expreso Arauco"}, []string{"r3"}},
		{"all criteria", Criteria{
			Operator:    "Buses Jota Be",
			Origin:      "arauco",
			Destination: "concepcion",
			Query:       "arauco",
		}, []string{"r1"}},
		{"route id is ignored", Criteria{RouteID: "r2"}, []string{"r1", "r2", "r3"}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, routeIDs(FilterRoutes(routes, tc.criteria)))
		})
	}
}

func TestFilterRoutesEmptyCode(t *testing.T) {
	routes := []*model.Route{
		{ID: "a", Name: "Otro", Code: "101"},
		{ID: "b", Name: "Otro"},
		{ID: "c", Name: "101 Sur", Code: "202"},
	}
	assert.Equal(t, []string{"a", "c"}, routeIDs(FilterRoutes(routes, Criteria{Query: "101"})))
	assert.Equal(t, []string{"a", "b"}, routeIDs(FilterRoutes(routes, Criteria{Query: "o"})))
}

func TestDistinctOperators(t *testing.T) {
	routes := []*model.Route{
		{ID: "1", Operator: "B"},
		{ID: "2", Operator: "A"},
		{ID: "3", Operator: "B"},
	}
	assert.Equal(t, []string{"A", "B"}, DistinctOperators(routes))
	assert.Equal(t, []string{}, DistinctOperators(nil))
	assert.Equal(t, []string{"Buses Jota Be", "Expreso Arauco"}, DistinctOperators(testutil.FixtureDataset().Routes))
}

func TestIndexByID(t *testing.T) {
	ds := testutil.FixtureDataset()

	routes := IndexRoutes(ds.Routes)
	assert.Equal(t, 3, len(routes))
	assert.Equal(t, "101 Sur", routes["r3"].Name)

	stops := IndexStops(ds.Stops)
	assert.Equal(t, 3, len(stops))
	assert.Equal(t, "Plaza Lota", stops["lota"].Name)
	_, found := stops["nowhere"]
	assert.False(t, found)

	lengths := IndexByID([]string{"a", "bb", "ccc"}, func(s string) string { return s[:1] })
	assert.Equal(t, map[string]string{"a": "a", "b": "bb", "c": "ccc"}, lengths)
}
