package busboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFavoriteKey(t *testing.T) {
	key := FavoriteKey("r1", "arauco")
	assert.Equal(t, "r1::arauco", key)

	routeID, stopID, ok := SplitFavoriteKey(key)
	assert.True(t, ok)
	assert.Equal(t, "r1", routeID)
	assert.Equal(t, "arauco", stopID)

	_, _, ok = SplitFavoriteKey("garbage")
	assert.False(t, ok)
}

func TestFavoritesToggle(t *testing.T) {
	f := NewFavorites(nil)
	assert.Equal(t, 0, f.Len())
	assert.Equal(t, []string{}, f.Keys())

	f = f.Toggle("a").Toggle("b").Toggle("c")
	assert.Equal(t, []string{"a", "b", "c"}, f.Keys())
	assert.True(t, f.Contains("b"))

	// Removal keeps the order of the rest, re-adding appends
	removed := f.Toggle("b")
	assert.Equal(t, []string{"a", "c"}, removed.Keys())
	assert.False(t, removed.Contains("b"))
	assert.Equal(t, []string{"a", "c", "b"}, removed.Toggle("b").Keys())

	// Snapshots are never modified
	assert.Equal(t, []string{"a", "b", "c"}, f.Keys())
}

func TestFavoritesToggleTwiceIsIdentity(t *testing.T) {
	f := NewFavorites([]string{"r1::a", "r2::b", "r3::c"})
	for _, key := range []string{"r4::d", "r1::b", ""} {
		assert.Equal(t, f.Keys(), f.Toggle(key).Toggle(key).Keys(), key)
	}

	// The last key can be toggled in place too
	assert.Equal(t, f.Keys(), f.Toggle("r3::c").Toggle("r3::c").Keys())
}

func TestNewFavoritesDropsDuplicates(t *testing.T) {
	f := NewFavorites([]string{"b", "a", "b", "c", "a"})
	assert.Equal(t, []string{"b", "a", "c"}, f.Keys())
}

func TestFavoritesKeysIsACopy(t *testing.T) {
	f := NewFavorites([]string{"a", "b"})
	keys := f.Keys()
	keys[0] = "z"
	assert.Equal(t, []string{"a", "b"}, f.Keys())
}
