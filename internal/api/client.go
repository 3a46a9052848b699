// Package api implements the JSON client for the Starline Salvage
// backend. The backend owns all game rules; this client only sends
// action requests and hands back the snapshots the server returns.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

// Action names accepted by the act endpoint.
const (
	ActionScan    = "scan"
	ActionTravel  = "travel"
	ActionSalvage = "salvage"
	ActionTrade   = "trade"
	ActionRefuel  = "refuel"
	ActionRepair  = "repair"
	ActionFight   = "fight"
	ActionBribe   = "bribe"
	ActionEvade   = "evade"
)

// Travel directions. The map's origin is the top-left corner, so north
// decreases y.
const (
	DirNorth = "n"
	DirSouth = "s"
	DirWest  = "w"
	DirEast  = "e"
)

// fallbackDetail is surfaced when an error response carries no
// decodable detail message.
const fallbackDetail = "Request failed"

// Error is the single error contract of the client: transport failures
// and application-level rejections both come back as one of these.
type Error struct {
	Status int    // HTTP status, 0 for transport failures
	Detail string // human-readable message for the user
}

func (e *Error) Error() string { return e.Detail }

// ActionRequest is the body of an act call. Only the fields relevant
// to the action are set; travel needs Direction, salvage TargetID and
// trade Item.
type ActionRequest struct {
	GameID    string `json:"game_id"`
	Action    string `json:"action"`
	Direction string `json:"direction,omitempty"`
	TargetID  string `json:"target_id,omitempty"`
	Item      string `json:"item,omitempty"`
}

// Client issues requests against one deployment of the backend. The
// two deployments differ only in base path (/api directly vs the
// proxied /_/backend), never in protocol.
type Client struct {
	base string
	http *http.Client
}

// NewClient creates a client for the given base URL. A nil httpClient
// falls back to http.DefaultClient. No timeouts or retries are layered
// on top: every call is a single request awaited by the caller.
func NewClient(base string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		http: httpClient,
	}
}

// NewGame starts a fresh run and returns its first snapshot.
func (c *Client) NewGame(ctx context.Context) (*State, error) {
	return c.post(ctx, "/new-game", struct{}{})
}

// Act performs one game action and returns the updated snapshot.
func (c *Client) Act(ctx context.Context, req ActionRequest) (*State, error) {
	return c.post(ctx, "/act", req)
}

func (c *Client) post(ctx context.Context, path string, body any) (*State, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, &Error{Detail: err.Error()}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+path, bytes.NewReader(payload))
	if err != nil {
		return nil, &Error{Detail: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &Error{Detail: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, decodeError(resp)
	}

	var snap State
	if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
		return nil, &Error{Status: resp.StatusCode, Detail: fallbackDetail}
	}
	return &snap, nil
}

// decodeError extracts the detail message from an error response,
// falling back to a generic message when the body is not decodable.
func decodeError(resp *http.Response) *Error {
	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Detail == "" {
		return &Error{Status: resp.StatusCode, Detail: fallbackDetail}
	}
	return &Error{Status: resp.StatusCode, Detail: body.Detail}
}
