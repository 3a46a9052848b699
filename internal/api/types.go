package api

// Status values reported by the server.
const (
	StatusActive = "active"
	StatusWon    = "won"
	StatusLost   = "lost"
)

// ScanTarget is one salvage signature picked up by a scan. Targets are
// transient: the server only reports them in the response to the scan
// itself, so the client has to hold on to them between actions.
type ScanTarget struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Value int    `json:"value"`
	Risk  int    `json:"risk"`
}

// TradeOffer is one purchasable item at a trade station.
type TradeOffer struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Price int    `json:"price"`
}

// Station describes the trade station in the ship's current sector.
// The server only includes it while the ship occupies a station sector.
type Station struct {
	ID     string       `json:"id"`
	Name   string       `json:"name"`
	Offers []TradeOffer `json:"offers"`
}

// PendingEvent is a blocking encounter (e.g. a pirate ambush). While
// one is pending the server rejects everything except its resolution.
type PendingEvent struct {
	Type   string `json:"type"`
	Threat int    `json:"threat"`
}

// State is the full server-authoritative snapshot returned by every
// call. The client never derives a transition itself; it only holds
// the last State it was given.
type State struct {
	ID           string        `json:"id"`
	Turn         int           `json:"turn"`
	X            int           `json:"x"`
	Y            int           `json:"y"`
	Fuel         int           `json:"fuel"`
	Hull         int           `json:"hull"`
	Credits      int           `json:"credits"`
	Status       string        `json:"status"`
	Log          []string      `json:"log"`
	MapSize      int           `json:"mapSize"`
	GoalCredits  int           `json:"goalCredits"`
	Nearby       []ScanTarget  `json:"nearby"`
	Station      *Station      `json:"station"`
	PendingEvent *PendingEvent `json:"pendingEvent"`
}
