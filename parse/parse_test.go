package parse

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arabus.dev/busboard/model"
	"arabus.dev/busboard/testutil"
)

func TestParseValidZip(t *testing.T) {
	ds, err := ParseZip(testutil.BuildZip(t, testutil.FixtureZipFiles()))
	require.NoError(t, err)
	assert.Equal(t, testutil.FixtureDataset(), ds)
}

func TestParseValidJSON(t *testing.T) {
	expected := testutil.FixtureDataset()
	ds, err := ParseJSON(testutil.MarshalDataset(t, expected))
	require.NoError(t, err)
	assert.Equal(t, expected, ds)
}

func TestParseDatasetDetectsFormat(t *testing.T) {
	fromZip, err := ParseDataset(testutil.BuildZip(t, testutil.FixtureZipFiles()))
	require.NoError(t, err)

	fromJSON, err := ParseDataset(testutil.MarshalDataset(t, testutil.FixtureDataset()))
	require.NoError(t, err)

	assert.Equal(t, fromJSON, fromZip)
}

func TestParseJSONMissingCollections(t *testing.T) {
	ds, err := ParseJSON([]byte(`{}`))
	require.NoError(t, err)
	assert.Equal(t, 0, len(ds.Stops))
	assert.Equal(t, 0, len(ds.Routes))
	assert.Equal(t, 0, len(ds.Trips))
	assert.NotNil(t, ds.Routes)
}

func TestParseJSONGarbage(t *testing.T) {
	_, err := ParseJSON([]byte(`not json`))
	assert.Error(t, err)

	_, err = ParseDataset([]byte(`[1, 2, 3]`))
	assert.Error(t, err)
}

func TestParseZipMissingFile(t *testing.T) {
	for _, missing := range []string{"stops.txt", "routes.txt", "departures.txt"} {
		files := testutil.FixtureZipFiles()
		delete(files, missing)
		_, err := ParseZip(testutil.BuildZip(t, files))
		assert.Error(t, err, missing)
	}
}

func TestParseZipSubdirectory(t *testing.T) {
	files := map[string][]string{}
	for name, content := range testutil.FixtureZipFiles() {
		files["export/"+name] = content
	}
	ds, err := ParseZip(testutil.BuildZip(t, files))
	require.NoError(t, err)
	assert.Equal(t, testutil.FixtureDataset(), ds)
}

func TestParseZipBOM(t *testing.T) {
	files := testutil.FixtureZipFiles()
	files["stops.txt"][0] = "\ufeff" + files["stops.txt"][0]
	ds, err := ParseZip(testutil.BuildZip(t, files))
	require.NoError(t, err)
	assert.Equal(t, "arauco", ds.Stops[0].ID)
}

func TestValidate(t *testing.T) {
	for _, tc := range []struct {
		name    string
		mutate  func(ds *model.Dataset)
		timeErr bool
	}{
		{
			"empty stop id",
			func(ds *model.Dataset) { ds.Stops[0].ID = "" },
			false,
		},
		{
			"repeated stop id",
			func(ds *model.Dataset) { ds.Stops[1].ID = ds.Stops[0].ID },
			false,
		},
		{
			"stop without name",
			func(ds *model.Dataset) { ds.Stops[0].Name = "" },
			false,
		},
		{
			"repeated route id",
			func(ds *model.Dataset) { ds.Routes[1].ID = "r1" },
			false,
		},
		{
			"route without operator",
			func(ds *model.Dataset) { ds.Routes[0].Operator = "" },
			false,
		},
		{
			"route with unknown origin",
			func(ds *model.Dataset) { ds.Routes[0].FromStopID = "nowhere" },
			false,
		},
		{
			"route with unknown destination",
			func(ds *model.Dataset) { ds.Routes[0].ToStopID = "nowhere" },
			false,
		},
		{
			"trip with unknown route",
			func(ds *model.Dataset) { ds.Trips[0].RouteID = "r9" },
			false,
		},
		{
			"trip with unknown stop",
			func(ds *model.Dataset) { ds.Trips[0].StopID = "nowhere" },
			false,
		},
		{
			"repeated trip",
			func(ds *model.Dataset) { ds.Trips[1].StopID = ds.Trips[0].StopID },
			false,
		},
		{
			"malformed weekday time",
			func(ds *model.Dataset) { ds.Trips[0].Times.Weekday[1] = "8.30" },
			true,
		},
		{
			"out of range weekend time",
			func(ds *model.Dataset) { ds.Trips[2].Times.Weekend[0] = "24:05" },
			true,
		},
		{
			"null route",
			func(ds *model.Dataset) { ds.Routes[2] = nil },
			false,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			ds := testutil.FixtureDataset()
			require.NoError(t, Validate(ds))

			tc.mutate(ds)
			err := Validate(ds)
			require.Error(t, err)
			assert.Equal(t, tc.timeErr, errors.Is(err, model.ErrInvalidTimeFormat))
		})
	}
}
