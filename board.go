package busboard

import (
	"context"
	"log"
	"sync"
	"time"

	"arabus.dev/busboard/model"
	"arabus.dev/busboard/storage"
)

const (
	DefaultRefreshInterval = 30 * time.Second

	// Departures shown per stop in route results and in favorite
	// cards, respectively.
	ResultDepartures   = 5
	FavoriteDepartures = 3
)

// Board owns the mutable state of a session: filter criteria and
// favorites. Everything else is derived from it on demand through
// View.
type Board struct {
	Schedule  *Schedule
	Store     storage.Storage
	Namespace string

	// Clock source. Defaults to time.Now.
	Now func() time.Time

	mutex     sync.Mutex
	criteria  Criteria
	favorites Favorites
}

// Creates a Board, loading favorites from store. Favorites that
// can't be loaded are treated as empty.
func NewBoard(schedule *Schedule, store storage.Storage, namespace string) *Board {
	if schedule == nil {
		schedule = EmptySchedule()
	}
	if store == nil {
		store = storage.NewMemoryStorage()
	}
	if namespace == "" {
		namespace = storage.DefaultNamespace
	}

	keys, err := store.LoadFavorites(namespace)
	if err != nil {
		log.Printf("loading favorites from %q: %v (starting with none)", namespace, err)
		keys = nil
	}

	return &Board{
		Schedule:  schedule,
		Store:     store,
		Namespace: namespace,
		Now:       time.Now,
		favorites: NewFavorites(keys),
	}
}

func (b *Board) SetCriteria(c Criteria) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.criteria = c
}

func (b *Board) Criteria() Criteria {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.criteria
}

func (b *Board) Favorites() Favorites {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.favorites
}

func (b *Board) IsFavorite(key string) bool {
	return b.Favorites().Contains(key)
}

// Adds or removes a favorite and persists the result. Returns true if
// key is a favorite afterwards. Failure to persist is logged, the in
// memory state is kept regardless.
func (b *Board) ToggleFavorite(key string) bool {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	b.favorites = b.favorites.Toggle(key)

	err := b.Store.SaveFavorites(b.Namespace, b.favorites.Keys())
	if err != nil {
		log.Printf("saving favorites to %q: %v", b.Namespace, err)
	}

	return b.favorites.Contains(key)
}

// Departures at one endpoint of a route.
type StopDepartures struct {
	Stop        *model.Stop
	StopID      string
	FavoriteKey string
	Favorite    bool
	Departures  []model.Departure
}

type RouteCard struct {
	Route *model.Route
	Stops []StopDepartures
}

type FavoriteCard struct {
	Key        string
	Route      *model.Route
	Stop       *model.Stop
	Departures []model.Departure
}

// Everything the presentation layer needs for one render pass.
type View struct {
	Now       time.Time
	DayType   model.DayType
	Criteria  Criteria
	Operators []string
	Stops     []*model.Stop

	// Routes matching Criteria.RouteID alone, if set, or else the
	// remaining criteria.
	Routes []RouteCard

	// One card per favorite whose route and stop both exist, in
	// favorite order.
	Favorites []FavoriteCard
}

// Derives a View of the board at the given instant.
func (b *Board) View(now time.Time) View {
	b.mutex.Lock()
	criteria := b.criteria
	favorites := b.favorites
	b.mutex.Unlock()

	s := b.Schedule

	view := View{
		Now:       now,
		DayType:   DayTypeOf(now),
		Criteria:  criteria,
		Operators: s.Operators(),
		Stops:     s.Stops(),
		Routes:    []RouteCard{},
		Favorites: []FavoriteCard{},
	}

	for _, route := range s.Select(criteria) {
		card := RouteCard{Route: route}
		for _, stopID := range route.StopIDs() {
			key := FavoriteKey(route.ID, stopID)
			stop, _ := s.Stop(stopID)
			card.Stops = append(card.Stops, StopDepartures{
				Stop:        stop,
				StopID:      stopID,
				FavoriteKey: key,
				Favorite:    favorites.Contains(key),
				Departures:  b.departures(route.ID, stopID, now, ResultDepartures),
			})
		}
		view.Routes = append(view.Routes, card)
	}

	for _, key := range favorites.Keys() {
		routeID, stopID, ok := SplitFavoriteKey(key)
		if !ok {
			continue
		}
		route, okR := s.Route(routeID)
		stop, okS := s.Stop(stopID)
		if !okR || !okS {
			// Dangling: the dataset may come back.
			continue
		}
		view.Favorites = append(view.Favorites, FavoriteCard{
			Key:        key,
			Route:      route,
			Stop:       stop,
			Departures: b.departures(routeID, stopID, now, FavoriteDepartures),
		})
	}

	return view
}

// Times are validated when the schedule is built, so errors here mean
// a bug. Log and show nothing rather than take down the board.
func (b *Board) departures(routeID string, stopID string, now time.Time, count int) []model.Departure {
	deps, err := b.Schedule.Departures(routeID, stopID, now, count)
	if err != nil {
		log.Printf("departures for %s at %s: %v", routeID, stopID, err)
		return []model.Departure{}
	}
	return deps
}

// Renders the board immediately and then every interval, until ctx is
// done. render is called from the calling goroutine.
func (b *Board) Run(ctx context.Context, interval time.Duration, render func(View)) error {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}

	render(b.View(b.Now()))

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := ctx.Err(); err != nil {
				return err
			}
			render(b.View(b.Now()))
		}
	}
}
