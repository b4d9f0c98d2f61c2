package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arabus.dev/busboard"
	"arabus.dev/busboard/model"
	"arabus.dev/busboard/testutil"
)

func execute(t *testing.T, args ...string) string {
	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestCommands(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	dir := t.TempDir()
	data := filepath.Join(dir, "bus-data.json")
	require.NoError(t, os.WriteFile(data, testutil.MarshalDataset(t, testutil.FixtureDataset()), 0644))
	store := "file:" + filepath.Join(dir, "favorites.json")

	out := execute(t, "stops", "--data", data, "--store", store)
	assert.Contains(t, out, "arauco: Terminal Arauco")
	assert.Contains(t, out, "lota: Plaza Lota")

	out = execute(t, "operators", "--data", data, "--store", store)
	assert.Equal(t, "Buses Jota Be\nExpreso Arauco\n", out)

	out = execute(t, "routes", "--data", data, "--store", store, "--query", "202")
	assert.Contains(t, out, "202 — 101 Sur")
	assert.NotContains(t, out, "Lota - Concepción")

	out = execute(t, "favorite", "r2", "lota", "--data", data, "--store", store)
	assert.Contains(t, out, "agregado")

	out = execute(t, "favorites", "--data", data, "--store", store)
	assert.Contains(t, out, "Lota - Concepción")
	assert.Contains(t, out, "Plaza Lota")

	out = execute(t, "favorite", "r2", "lota", "--data", data, "--store", store)
	assert.Contains(t, out, "eliminado")

	out = execute(t, "favorites", "--data", data, "--store", store)
	assert.Contains(t, out, "Sin favoritos")
}

func TestFavoriteRejectsUnknownStop(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	data := filepath.Join(t.TempDir(), "bus-data.json")
	require.NoError(t, os.WriteFile(data, testutil.MarshalDataset(t, testutil.FixtureDataset()), 0644))

	for _, args := range [][]string{
		{"favorite", "r9", "lota"},
		{"favorite", "r2", "arauco"},
		{"departures", "r1", "nowhere"},
	} {
		rootCmd.SetOut(&bytes.Buffer{})
		rootCmd.SetArgs(append(args, "--data", data, "--store", "memory"))
		assert.Error(t, rootCmd.Execute(), args)
	}
}

func TestRenderDepartures(t *testing.T) {
	out := &bytes.Buffer{}
	renderDepartures(out, []model.Departure{
		{Time: "08:30", MinutesUntil: 20},
		{Time: "07:58", MinutesUntil: -2},
	}, "")
	assert.Contains(t, out.String(), "08:30")
	assert.Contains(t, out.String(), "en 20 min")
	assert.Contains(t, out.String(), "07:58")
	assert.Contains(t, out.String(), "pasó hace 2 min")

	out.Reset()
	renderDepartures(out, []model.Departure{}, "")
	assert.Contains(t, out.String(), "sin salidas")
}

func TestRenderBoard(t *testing.T) {
	schedule, err := busboard.NewSchedule(testutil.FixtureDataset())
	require.NoError(t, err)

	board := busboard.NewBoard(schedule, nil, "")
	board.ToggleFavorite("r1::concepcion")

	out := &bytes.Buffer{}
	renderBoard(out, board.View(time.Date(2024, 3, 4, 8, 10, 0, 0, time.UTC)))

	s := out.String()
	assert.Contains(t, s, "08:10")
	assert.Contains(t, s, "día laboral")
	assert.Contains(t, s, "Favoritos")
	assert.Contains(t, s, "Terminal Collao")
	assert.Contains(t, s, "Rutas (3)")
	assert.Contains(t, s, "101 — Arauco - Concepción")
	assert.Contains(t, s, "en 80 min")
}
