package ui

import (
	"strings"

	"github.com/starline-salvage/starline/internal/api"
)

// Map cell labels. Every other cell renders blank.
const (
	cellShip = "YOU"
	cellBase = "BASE"
)

// Empty-state messages for the salvage panel. The no-snapshot and
// scanned-but-empty cases are deliberately distinct.
const (
	salvageNoGame    = "No contact. Start a run to sweep for salvage."
	salvageNoTargets = "Nothing on the scope. Scan a sector to find targets."
)

// Frame is the full view-model for one render pass. It is built purely
// from client-held state so tests can assert on it without a terminal.
type Frame struct {
	Phase     Phase
	Stats     StatsPanel
	Map       MapPanel
	Log       []string // most recent first
	Salvage   SalvagePanel
	Station   *StationPanel   // nil unless the ship is in a station sector
	Encounter *EncounterPanel // nil unless an event is pending
	Alert     string
	Help      []string // key hints for the enabled controls
	Busy      bool
}

// StatsPanel carries the ship readout. When HasGame is false the panel
// renders placeholder text instead.
type StatsPanel struct {
	HasGame     bool
	Turn        int
	Credits     int
	GoalCredits int
	Fuel        int
	Hull        int
	X, Y        int
	Status      string // uppercased server status
}

// MapPanel is the square sector grid. Cells hold cellShip, cellBase or
// the empty string, indexed [y][x].
type MapPanel struct {
	Size  int
	Cells [][]string
}

// SalvageRow is one held scan result with its selection key.
type SalvageRow struct {
	Key     rune
	Name    string
	Value   int
	Risk    int
	Enabled bool
}

// SalvagePanel lists the held scan results. Empty carries the
// empty-state message when there are no rows.
type SalvagePanel struct {
	Rows  []SalvageRow
	Empty string
}

// OfferRow is one station offer with its selection key.
type OfferRow struct {
	Key     rune
	Label   string
	Price   int
	Enabled bool
}

// StationPanel lists the current station's offers.
type StationPanel struct {
	Name string
	Rows []OfferRow
}

// EncounterPanel shows the pending event that blocks all other actions.
type EncounterPanel struct {
	Type   string
	Threat int
}

// offerKeys assigns selection keys to station offer rows in order.
var offerKeys = []rune{'g', 'h'}

// BuildFrame projects the client-held state into a Frame. It is a pure
// function: same inputs, same view-model.
func BuildFrame(snap *api.State, nearby []api.ScanTarget, busy bool, alert string) Frame {
	phase := PhaseOf(snap)

	// Regular controls are live unless a request is in flight, an
	// encounter is pending, or there is no run yet. Terminal phases
	// stay enabled: the server is the authority on rejecting them.
	enabled := !busy && phase != PhaseEncounter && phase != PhaseNoGame

	f := Frame{
		Phase: phase,
		Busy:  busy,
		Alert: alert,
		Stats: buildStats(snap),
		Map:   buildMap(snap),
		Help:  helpFor(phase, busy),
	}

	if snap != nil {
		f.Log = reversed(snap.Log)
		if snap.Station != nil {
			f.Station = buildStation(snap.Station, enabled)
		}
		if snap.PendingEvent != nil {
			f.Encounter = &EncounterPanel{
				Type:   snap.PendingEvent.Type,
				Threat: snap.PendingEvent.Threat,
			}
		}
	}

	f.Salvage = buildSalvage(snap, nearby, enabled)
	return f
}

func buildStats(snap *api.State) StatsPanel {
	if snap == nil {
		return StatsPanel{}
	}
	return StatsPanel{
		HasGame:     true,
		Turn:        snap.Turn,
		Credits:     snap.Credits,
		GoalCredits: snap.GoalCredits,
		Fuel:        snap.Fuel,
		Hull:        snap.Hull,
		X:           snap.X,
		Y:           snap.Y,
		Status:      strings.ToUpper(snap.Status),
	}
}

func buildMap(snap *api.State) MapPanel {
	if snap == nil || snap.MapSize <= 0 {
		return MapPanel{}
	}
	cells := make([][]string, snap.MapSize)
	for y := range cells {
		cells[y] = make([]string, snap.MapSize)
	}
	cells[0][0] = cellBase
	if snap.Y >= 0 && snap.Y < snap.MapSize && snap.X >= 0 && snap.X < snap.MapSize {
		// The ship label wins when it sits on the base sector.
		cells[snap.Y][snap.X] = cellShip
	}
	return MapPanel{Size: snap.MapSize, Cells: cells}
}

func buildSalvage(snap *api.State, nearby []api.ScanTarget, enabled bool) SalvagePanel {
	if snap == nil {
		return SalvagePanel{Empty: salvageNoGame}
	}
	if len(nearby) == 0 {
		return SalvagePanel{Empty: salvageNoTargets}
	}
	rows := make([]SalvageRow, len(nearby))
	for i, t := range nearby {
		rows[i] = SalvageRow{
			Key:     rune('1' + i),
			Name:    t.Name,
			Value:   t.Value,
			Risk:    t.Risk,
			Enabled: enabled,
		}
	}
	return SalvagePanel{Rows: rows}
}

func buildStation(st *api.Station, enabled bool) *StationPanel {
	panel := &StationPanel{Name: st.Name}
	for i, offer := range st.Offers {
		key := '?'
		if i < len(offerKeys) {
			key = offerKeys[i]
		}
		panel.Rows = append(panel.Rows, OfferRow{
			Key:     key,
			Label:   offer.Label,
			Price:   offer.Price,
			Enabled: enabled,
		})
	}
	return panel
}

// helpFor lists the key hints for the controls enabled in a phase.
func helpFor(phase Phase, busy bool) []string {
	if busy {
		return []string{"working..."}
	}
	switch phase {
	case PhaseNoGame:
		return []string{"n new run", "q quit"}
	case PhaseEncounter:
		return []string{"f fight", "b bribe", "e evade", "q quit"}
	case PhaseActive, PhaseWon, PhaseLost:
		return []string{
			"c scan", "arrows travel", "1-9 salvage", "g/h buy",
			"r refuel", "m repair", "n new run", "q quit",
		}
	}
	return []string{"q quit"}
}

func reversed(log []string) []string {
	out := make([]string, len(log))
	for i, entry := range log {
		out[len(log)-1-i] = entry
	}
	return out
}
