package ui

import (
	"testing"

	"github.com/starline-salvage/starline/internal/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activeSnapshot() *api.State {
	return &api.State{
		ID:          "g1",
		Turn:        4,
		X:           2,
		Y:           1,
		Fuel:        7,
		Hull:        9,
		Credits:     38,
		Status:      api.StatusActive,
		Log:         []string{"first", "second", "third"},
		MapSize:     5,
		GoalCredits: 120,
	}
}

func someTargets() []api.ScanTarget {
	return []api.ScanTarget{
		{ID: "a1", Name: "Derelict Skiff", Value: 22, Risk: 3},
		{ID: "a2", Name: "Glitter Cache", Value: 14, Risk: 1},
	}
}

func TestEncounterDisablesRegularControls(t *testing.T) {
	snap := activeSnapshot()
	snap.PendingEvent = &api.PendingEvent{Type: "pirate_ambush", Threat: 3}
	snap.Station = &api.Station{
		Name:   "Nova Exchange",
		Offers: []api.TradeOffer{{ID: "fuel_cell", Label: "Fuel Cells (+2 fuel)", Price: 4}},
	}

	f := BuildFrame(snap, someTargets(), false, "")

	assert.Equal(t, PhaseEncounter, f.Phase)
	require.NotNil(t, f.Encounter)
	assert.Equal(t, 3, f.Encounter.Threat)

	for _, row := range f.Salvage.Rows {
		assert.False(t, row.Enabled)
	}
	require.NotNil(t, f.Station)
	for _, row := range f.Station.Rows {
		assert.False(t, row.Enabled)
	}
	assert.Equal(t, []string{"f fight", "b bribe", "e evade", "q quit"}, f.Help)
}

func TestActiveControlsEnabled(t *testing.T) {
	f := BuildFrame(activeSnapshot(), someTargets(), false, "")

	assert.Equal(t, PhaseActive, f.Phase)
	assert.Nil(t, f.Encounter)
	require.Len(t, f.Salvage.Rows, 2)
	for _, row := range f.Salvage.Rows {
		assert.True(t, row.Enabled)
	}
}

func TestMapMarksShipAndBase(t *testing.T) {
	countLabels := func(m MapPanel) (you, base int) {
		for _, row := range m.Cells {
			for _, cell := range row {
				switch cell {
				case cellShip:
					you++
				case cellBase:
					base++
				}
			}
		}
		return
	}

	t.Run("ship away from base", func(t *testing.T) {
		f := BuildFrame(activeSnapshot(), nil, false, "")
		you, base := countLabels(f.Map)
		assert.Equal(t, 1, you)
		assert.Equal(t, 1, base)
		assert.Equal(t, cellShip, f.Map.Cells[1][2])
		assert.Equal(t, cellBase, f.Map.Cells[0][0])
	})

	t.Run("ship label wins on the base sector", func(t *testing.T) {
		snap := activeSnapshot()
		snap.X, snap.Y = 0, 0
		f := BuildFrame(snap, nil, false, "")
		you, base := countLabels(f.Map)
		assert.Equal(t, 1, you)
		assert.Equal(t, 0, base)
		assert.Equal(t, cellShip, f.Map.Cells[0][0])
	})

	t.Run("all other cells blank", func(t *testing.T) {
		f := BuildFrame(activeSnapshot(), nil, false, "")
		blanks := 0
		for _, row := range f.Map.Cells {
			for _, cell := range row {
				if cell == "" {
					blanks++
				}
			}
		}
		assert.Equal(t, 5*5-2, blanks)
	})
}

func TestLogRenderedMostRecentFirst(t *testing.T) {
	f := BuildFrame(activeSnapshot(), nil, false, "")
	assert.Equal(t, []string{"third", "second", "first"}, f.Log)
}

func TestSalvageEmptyStatesAreDistinct(t *testing.T) {
	noGame := BuildFrame(nil, nil, false, "")
	scannedEmpty := BuildFrame(activeSnapshot(), nil, false, "")

	assert.NotEmpty(t, noGame.Salvage.Empty)
	assert.NotEmpty(t, scannedEmpty.Salvage.Empty)
	assert.NotEqual(t, noGame.Salvage.Empty, scannedEmpty.Salvage.Empty)
}

func TestStationPanelOnlyInStationSector(t *testing.T) {
	plain := BuildFrame(activeSnapshot(), nil, false, "")
	assert.Nil(t, plain.Station)

	snap := activeSnapshot()
	snap.Station = &api.Station{
		Name: "Kepler Bazaar",
		Offers: []api.TradeOffer{
			{ID: "fuel_cell", Label: "Fuel Cells (+2 fuel)", Price: 4},
			{ID: "hull_patch", Label: "Hull Patch (+1 hull)", Price: 6},
		},
	}
	docked := BuildFrame(snap, nil, false, "")
	require.NotNil(t, docked.Station)
	require.Len(t, docked.Station.Rows, 2)
	assert.Equal(t, 'g', docked.Station.Rows[0].Key)
	assert.Equal(t, 'h', docked.Station.Rows[1].Key)
	assert.Equal(t, 4, docked.Station.Rows[0].Price)
}

func TestBusyDisablesEverything(t *testing.T) {
	snap := activeSnapshot()
	snap.Station = &api.Station{
		Name:   "Drydock 19",
		Offers: []api.TradeOffer{{ID: "hull_patch", Label: "Hull Patch (+1 hull)", Price: 6}},
	}

	f := BuildFrame(snap, someTargets(), true, "")

	assert.True(t, f.Busy)
	for _, row := range f.Salvage.Rows {
		assert.False(t, row.Enabled)
	}
	for _, row := range f.Station.Rows {
		assert.False(t, row.Enabled)
	}
	assert.Equal(t, []string{"working..."}, f.Help)
}

func TestStatsUppercasesStatus(t *testing.T) {
	snap := activeSnapshot()
	snap.Status = api.StatusWon
	f := BuildFrame(snap, nil, false, "")
	assert.Equal(t, "WON", f.Stats.Status)
}

func TestRenderIsIdempotent(t *testing.T) {
	f := BuildFrame(activeSnapshot(), someTargets(), false, "Not enough fuel")
	assert.Equal(t, Render(f), Render(f))
}
