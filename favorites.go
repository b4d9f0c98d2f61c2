package busboard

import (
	"strings"
)

const favoriteKeySeparator = "::"

func FavoriteKey(routeID string, stopID string) string {
	return routeID + favoriteKeySeparator + stopID
}

// Splits a key produced by FavoriteKey. ok is false if the key has
// no separator.
func SplitFavoriteKey(key string) (routeID string, stopID string, ok bool) {
	return strings.Cut(key, favoriteKeySeparator)
}

// An ordered set of favorite keys. Values are never modified in
// place; Toggle returns a new set.
type Favorites struct {
	keys []string
}

// Builds a set from keys, dropping duplicates but otherwise keeping
// order.
func NewFavorites(keys []string) Favorites {
	seen := map[string]bool{}
	unique := []string{}
	for _, k := range keys {
		if seen[k] {
			continue
		}
		seen[k] = true
		unique = append(unique, k)
	}
	return Favorites{keys: unique}
}

// Adds key at the end if absent, removes it if present.
func (f Favorites) Toggle(key string) Favorites {
	next := make([]string, 0, len(f.keys)+1)
	removed := false
	for _, k := range f.keys {
		if k == key {
			removed = true
			continue
		}
		next = append(next, k)
	}
	if !removed {
		next = append(next, key)
	}
	return Favorites{keys: next}
}

func (f Favorites) Contains(key string) bool {
	for _, k := range f.keys {
		if k == key {
			return true
		}
	}
	return false
}

// A copy of the keys, in insertion order.
func (f Favorites) Keys() []string {
	keys := make([]string, len(f.keys))
	copy(keys, f.keys)
	return keys
}

func (f Favorites) Len() int {
	return len(f.keys)
}
