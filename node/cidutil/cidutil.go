package cidutil

import (
	"github.com/ipfs/go-cid"
	mh "github.com/multiformats/go-multihash"
)

const ipfsPathPrefix = "/ipfs/"

// PathOf returns the canonical path form of a cid
func PathOf(c cid.Cid) string {
	return ipfsPathPrefix + c.String()
}

// CIDFromHashString rebuilds a CIDv1 from a hex multihash string
func CIDFromHashString(hashString string) (cid.Cid, error) {
	multihash, err := mh.FromHexString(hashString)
	if err != nil {
		return cid.Undef, err
	}
	return cid.NewCidV1(cid.Raw, multihash), nil
}

// CIDString2HashString extracts the hex multihash string from a cid string
func CIDString2HashString(cidString string) (string, error) {
	cid, err := cid.Decode(cidString)
	if err != nil {
		return "", err
	}

	return cid.Hash().String(), nil
}
