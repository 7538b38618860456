package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
	"github.com/m04kA/SMC-MeetingRoomService/internal/domain/fixtures"
)

func TestLoadFile_ShippedCatalogMatchesFixtures(t *testing.T) {
	loaded, err := LoadFile("../../../catalog.toml")
	require.NoError(t, err)

	assert.Equal(t, fixtures.Catalog(), loaded)
}

func TestLoad(t *testing.T) {
	c, err := Load(strings.NewReader(`
[[locations]]
name = "Annex"

  [[locations.floors]]
  name = "G"

  [[locations.floors]]
  name = "1"

    [[locations.floors.rooms]]
    name = "Annex-1F-Quiet"
    time_slots = ["08:00 - 09:00"]

    [[locations.floors.rooms]]
    name = "Annex-1F-Storage"
`))
	require.NoError(t, err)

	assert.Equal(t, []string{"Annex"}, c.Locations())

	floors, ok := c.Floors("Annex")
	require.True(t, ok)
	assert.Equal(t, []string{"G", "1"}, floors)

	rooms, ok := c.Rooms("Annex", "G")
	require.True(t, ok)
	assert.Empty(t, rooms)

	slots, ok := c.TimeSlots("Annex-1F-Storage")
	require.True(t, ok)
	assert.Empty(t, slots)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "malformed toml",
			content: "[[locations]\nname = 1",
			wantErr: ErrReadFile,
		},
		{
			name:    "misspelled key",
			content: "[[locations]]\nname = \"A\"\n[[locations.floors]]\nname = \"1\"\n[[locations.floors.rooms]]\nname = \"R\"\ntimeslots = [\"09:00 - 10:00\"]",
			wantErr: ErrUnknownKeys,
		},
		{
			name:    "duplicate room",
			content: "[[locations]]\nname = \"A\"\n[[locations.floors]]\nname = \"1\"\n[[locations.floors.rooms]]\nname = \"R\"\n[[locations.floors.rooms]]\nname = \"R\"",
			wantErr: domain.ErrInvalidCatalog,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.content))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(t.TempDir() + "/absent.toml")
	assert.ErrorIs(t, err, ErrReadFile)
}
