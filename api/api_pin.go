package api

import (
	"context"

	"github.com/ipfs/go-cid"

	"github.com/linguohua/pinner/api/types"
)

// Pin manages the pinset of a remote content addressed storage daemon.
// Every call is a stateless request/response round trip; the daemon owns
// the pinset and nothing is cached or verified locally.
type Pin interface {
	// Add pins the object named by path
	Add(ctx context.Context, path string, recursive bool) ([]*types.PinnedObject, error)
	// AddCid pins the object named by its cid
	AddCid(ctx context.Context, c cid.Cid, recursive bool) ([]*types.PinnedObject, error)
	// AddHash pins the object named by its hex multihash string
	AddHash(ctx context.Context, hash string, recursive bool) ([]*types.PinnedObject, error)
	// List returns the pinned objects matching the mode filter
	List(ctx context.Context, mode types.PinMode) ([]*types.PinnedObject, error)
	// Remove unpins the object named by path
	Remove(ctx context.Context, path string, recursive bool) ([]*types.PinnedObject, error)
	// RemoveCid unpins the object named by its cid
	RemoveCid(ctx context.Context, c cid.Cid, recursive bool) ([]*types.PinnedObject, error)
}
