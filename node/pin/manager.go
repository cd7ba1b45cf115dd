package pin

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/ipfs/go-cid"
	logging "github.com/ipfs/go-log/v2"
	"golang.org/x/xerrors"

	"github.com/linguohua/pinner/api"
	"github.com/linguohua/pinner/api/types"
	"github.com/linguohua/pinner/node/cidutil"
)

var log = logging.Logger("pinner/manager")

const (
	cmdPinAdd    = "pin/add"
	cmdPinList   = "pin/ls"
	cmdPinRemove = "pin/rm"
)

// ErrMalformedResponse the daemon response did not carry the expected field
var ErrMalformedResponse = xerrors.New("malformed daemon response")

// Executor dispatches a single command against the daemon and returns the
// raw json response body
type Executor interface {
	Execute(ctx context.Context, command, arg string, query url.Values) ([]byte, error)
}

// Manager implements api.Pin over a command Executor. It holds no local
// state and never rolls back daemon side changes; concurrent calls are
// independent.
type Manager struct {
	exec Executor
}

var _ api.Pin = (*Manager)(nil)

func NewManager(exec Executor) *Manager {
	return &Manager{exec: exec}
}

func (m *Manager) Add(ctx context.Context, path string, recursive bool) ([]*types.PinnedObject, error) {
	return m.change(ctx, cmdPinAdd, path, recursive)
}

func (m *Manager) AddCid(ctx context.Context, c cid.Cid, recursive bool) ([]*types.PinnedObject, error) {
	return m.Add(ctx, cidutil.PathOf(c), recursive)
}

func (m *Manager) AddHash(ctx context.Context, hash string, recursive bool) ([]*types.PinnedObject, error) {
	c, err := cidutil.CIDFromHashString(hash)
	if err != nil {
		return nil, xerrors.Errorf("hash %s: %w", hash, err)
	}
	return m.Add(ctx, cidutil.PathOf(c), recursive)
}

func (m *Manager) Remove(ctx context.Context, path string, recursive bool) ([]*types.PinnedObject, error) {
	return m.change(ctx, cmdPinRemove, path, recursive)
}

func (m *Manager) RemoveCid(ctx context.Context, c cid.Cid, recursive bool) ([]*types.PinnedObject, error) {
	return m.Remove(ctx, cidutil.PathOf(c), recursive)
}

type pinsResponse struct {
	// pointer so a missing Pins field is told apart from an empty one
	Pins *[]string
}

// change runs pin/add or pin/rm, both answer {"Pins":["<cid>",...]}
func (m *Manager) change(ctx context.Context, command, path string, recursive bool) ([]*types.PinnedObject, error) {
	query := url.Values{}
	query.Set("recursive", strconv.FormatBool(recursive))

	body, err := m.exec.Execute(ctx, command, path, query)
	if err != nil {
		return nil, err
	}

	var resp pinsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, xerrors.Errorf("%s: decode response: %w", command, err)
	}
	if resp.Pins == nil {
		return nil, xerrors.Errorf("%s: response missing Pins: %w", command, ErrMalformedResponse)
	}

	pins := make([]*types.PinnedObject, 0, len(*resp.Pins))
	for _, id := range *resp.Pins {
		pins = append(pins, &types.PinnedObject{Cid: id})
	}

	log.Debugf("%s %s, %d pins", command, path, len(pins))
	return pins, nil
}

type listEntry struct {
	Type string
}

type listResponse struct {
	Keys map[string]listEntry
}

// List returns the pinned objects matching mode, PinModeUnknown lists all
func (m *Manager) List(ctx context.Context, mode types.PinMode) ([]*types.PinnedObject, error) {
	if mode == types.PinModeUnknown {
		mode = types.PinModeAll
	}

	query := url.Values{}
	query.Set("type", mode.String())

	body, err := m.exec.Execute(ctx, cmdPinList, "", query)
	if err != nil {
		return nil, err
	}

	var resp listResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, xerrors.Errorf("%s: decode response: %w", cmdPinList, err)
	}
	if resp.Keys == nil {
		return nil, xerrors.Errorf("%s: response missing Keys: %w", cmdPinList, ErrMalformedResponse)
	}

	pins := make([]*types.PinnedObject, 0, len(resp.Keys))
	for id, entry := range resp.Keys {
		entryMode, err := types.PinModeFromString(entry.Type)
		if err != nil {
			return nil, xerrors.Errorf("pin %s: %w", id, err)
		}
		pins = append(pins, &types.PinnedObject{Cid: id, Mode: entryMode})
	}

	return pins, nil
}
