package busboard

import (
	"sort"
	"strings"

	"arabus.dev/busboard/model"
)

// Route filter criteria. Empty fields match everything.
type Criteria struct {
	Operator    string
	Origin      string
	Destination string
	Query       string

	// If set, selects this single route and overrides all other
	// criteria.
	RouteID string
}

func (c Criteria) Empty() bool {
	return c == Criteria{}
}

func (c Criteria) Match(r *model.Route) bool {
	if c.Operator != "" && r.Operator != c.Operator {
		return false
	}
	if c.Origin != "" && r.FromStopID != c.Origin {
		return false
	}
	if c.Destination != "" && r.ToStopID != c.Destination {
		return false
	}
	if c.Query != "" && !matchQuery(r, c.Query) {
		return false
	}
	return true
}

// Case insensitive substring match on name or code.
func matchQuery(r *model.Route, query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(r.Name), q) {
		return true
	}
	return r.Code != "" && strings.Contains(strings.ToLower(r.Code), q)
}

// Returns the routes matching all of the criteria, in their original
// order. RouteID is ignored here; see Schedule.Select.
func FilterRoutes(routes []*model.Route, c Criteria) []*model.Route {
	filtered := []*model.Route{}
	for _, r := range routes {
		if c.Match(r) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// Sorted list of distinct operator names.
func DistinctOperators(routes []*model.Route) []string {
	seen := map[string]bool{}
	operators := []string{}
	for _, r := range routes {
		if seen[r.Operator] {
			continue
		}
		seen[r.Operator] = true
		operators = append(operators, r.Operator)
	}
	sort.Strings(operators)
	return operators
}

// Maps ID to entity. IDs are assumed to be unique.
func IndexByID[T any](items []T, id func(T) string) map[string]T {
	index := make(map[string]T, len(items))
	for _, item := range items {
		index[id(item)] = item
	}
	return index
}

func IndexRoutes(routes []*model.Route) map[string]*model.Route {
	return IndexByID(routes, func(r *model.Route) string { return r.ID })
}

func IndexStops(stops []*model.Stop) map[string]*model.Stop {
	return IndexByID(stops, func(s *model.Stop) string { return s.ID })
}
