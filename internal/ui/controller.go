package ui

import (
	"context"

	"github.com/starline-salvage/starline/internal/api"
	"github.com/starline-salvage/starline/internal/input"
)

// Controller owns all client-held state: the last snapshot, the
// transient scan results, the busy flag and the current alert. Only the
// handler resolving a round trip mutates it, and handlers run one at a
// time, so there is nothing to lock.
type Controller struct {
	client  *api.Client
	snap    *api.State
	nearby  []api.ScanTarget
	busy    bool
	alert   string
	painter func()
}

// NewController creates a controller with no snapshot; the client shows
// placeholders until a run is started.
func NewController(client *api.Client) *Controller {
	return &Controller{client: client}
}

// SetPainter registers a callback invoked right after the busy flag is
// asserted, so the screen shows its controls disabled while the request
// is in flight.
func (c *Controller) SetPainter(fn func()) { c.painter = fn }

// Snapshot returns the last server snapshot, or nil before the first run.
func (c *Controller) Snapshot() *api.State { return c.snap }

// Targets returns the held scan results.
func (c *Controller) Targets() []api.ScanTarget { return c.nearby }

// Busy reports whether a request is in flight.
func (c *Controller) Busy() bool { return c.busy }

// Alert returns the message from the last failed action, if any.
func (c *Controller) Alert() string { return c.alert }

// Phase returns the current client-visible phase.
func (c *Controller) Phase() Phase { return PhaseOf(c.snap) }

// Frame builds the view-model for the current client state.
func (c *Controller) Frame() Frame {
	return BuildFrame(c.snap, c.nearby, c.busy, c.alert)
}

// Dispatch routes one key press according to the current phase. Keys
// outside the phase's enabled set are ignored, mirroring the disabled
// controls in the help bar. Returns true when the client should quit.
func (c *Controller) Dispatch(ctx context.Context, ev input.Event) bool {
	if ev.Key == input.KeyQuit {
		return true
	}
	if c.busy {
		return false
	}

	switch c.Phase() {
	case PhaseNoGame:
		if ev.Key == input.KeyNewGame {
			c.StartGame(ctx)
		}

	case PhaseEncounter:
		// Only the three resolution controls are live; everything
		// else waits until the event is dealt with.
		switch ev.Key {
		case input.KeyFight:
			c.Resolve(ctx, api.ActionFight)
		case input.KeyBribe:
			c.Resolve(ctx, api.ActionBribe)
		case input.KeyEvade:
			c.Resolve(ctx, api.ActionEvade)
		}

	case PhaseActive, PhaseWon, PhaseLost:
		// Terminal phases keep the regular controls: the client does
		// not second-guess which actions the server still accepts.
		switch ev.Key {
		case input.KeyNewGame:
			c.StartGame(ctx)
		case input.KeyScan:
			c.Scan(ctx)
		case input.KeyUp:
			c.Travel(ctx, api.DirNorth)
		case input.KeyDown:
			c.Travel(ctx, api.DirSouth)
		case input.KeyLeft:
			c.Travel(ctx, api.DirWest)
		case input.KeyRight:
			c.Travel(ctx, api.DirEast)
		case input.KeySalvage:
			c.Salvage(ctx, ev.Index)
		case input.KeyOffer:
			c.Trade(ctx, ev.Index)
		case input.KeyRefuel:
			c.Refuel(ctx)
		case input.KeyRepair:
			c.Repair(ctx)
		}
	}
	return false
}

// StartGame requests a fresh run and replaces all held state.
func (c *Controller) StartGame(ctx context.Context) {
	c.run(func() error {
		snap, err := c.client.NewGame(ctx)
		if err != nil {
			return err
		}
		c.snap = snap
		c.nearby = nil
		return nil
	})
}

// Scan requests salvage signatures for the current sector. The held
// target list is replaced with whatever the server reports.
func (c *Controller) Scan(ctx context.Context) {
	c.act(ctx, api.ActionRequest{Action: api.ActionScan}, func(snap *api.State) {
		c.nearby = snap.Nearby
	})
}

// Travel moves one sector. Scan results are invalidated by the attempt
// itself: the ship asked to leave, so the old sweep is stale either way.
func (c *Controller) Travel(ctx context.Context, direction string) {
	if c.snap == nil {
		return
	}
	c.run(func() error {
		c.nearby = nil
		snap, err := c.client.Act(ctx, api.ActionRequest{
			GameID:    c.snap.ID,
			Action:    api.ActionTravel,
			Direction: direction,
		})
		if err != nil {
			return err
		}
		c.snap = snap
		return nil
	})
}

// Salvage recovers the target at row index i. The target is dropped
// from the held list only after the server confirms the action.
func (c *Controller) Salvage(ctx context.Context, i int) {
	if i < 0 || i >= len(c.nearby) {
		return
	}
	id := c.nearby[i].ID
	c.act(ctx, api.ActionRequest{Action: api.ActionSalvage, TargetID: id}, func(*api.State) {
		kept := c.nearby[:0]
		for _, t := range c.nearby {
			if t.ID != id {
				kept = append(kept, t)
			}
		}
		c.nearby = kept
	})
}

// Trade buys the station offer at row index i.
func (c *Controller) Trade(ctx context.Context, i int) {
	if c.snap == nil || c.snap.Station == nil {
		return
	}
	offers := c.snap.Station.Offers
	if i < 0 || i >= len(offers) {
		return
	}
	c.act(ctx, api.ActionRequest{Action: api.ActionTrade, Item: offers[i].ID}, nil)
}

// Refuel tops off fuel at the base sector.
func (c *Controller) Refuel(ctx context.Context) {
	c.act(ctx, api.ActionRequest{Action: api.ActionRefuel}, nil)
}

// Repair patches the hull at the base sector.
func (c *Controller) Repair(ctx context.Context) {
	c.act(ctx, api.ActionRequest{Action: api.ActionRepair}, nil)
}

// Resolve answers a pending encounter; kind is the fight, bribe or
// evade action.
func (c *Controller) Resolve(ctx context.Context, kind string) {
	c.act(ctx, api.ActionRequest{Action: kind}, nil)
}

// act performs one game action round trip and installs the returned
// snapshot. after runs only on a server-confirmed response.
func (c *Controller) act(ctx context.Context, req api.ActionRequest, after func(*api.State)) {
	if c.snap == nil {
		return
	}
	c.run(func() error {
		req.GameID = c.snap.ID
		snap, err := c.client.Act(ctx, req)
		if err != nil {
			return err
		}
		c.snap = snap
		if after != nil {
			after(snap)
		}
		return nil
	})
}

// run wraps a handler with the single-in-flight discipline: the busy
// flag is asserted before the request and released in a deferred block
// so a failed round trip never leaves the controls disabled. Errors do
// not escape; they become the alert shown to the user.
func (c *Controller) run(fn func() error) {
	if c.busy {
		return
	}
	c.busy = true
	c.alert = ""
	defer func() { c.busy = false }()

	if c.painter != nil {
		c.painter()
	}
	if err := fn(); err != nil {
		c.alert = err.Error()
	}
}
