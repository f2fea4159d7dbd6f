// Package hdkd parses Substrate derivation paths such as "//polkadot//0" and
// applies them to keypairs.
package hdkd

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"

	"github.com/blockberries/dotkit/crypto"
	"github.com/blockberries/dotkit/scale"
)

const hardPrefix = "//"

// Junction is one hard step of a derivation path.
type Junction struct {
	// Name is the segment as written in the path.
	Name string

	// Encoded is the SCALE encoding of the segment: a little-endian u64 for
	// numeric segments, a length-prefixed string otherwise.
	Encoded []byte
}

// NewJunction encodes a single segment.
func NewJunction(name string) Junction {
	if n, err := strconv.ParseUint(name, 10, 64); err == nil {
		enc := make([]byte, 8)
		binary.LittleEndian.PutUint64(enc, n)
		return Junction{Name: name, Encoded: enc}
	}
	enc := scale.EncodeCompactUint64(uint64(len(name)))
	enc = append(enc, name...)
	return Junction{Name: name, Encoded: enc}
}

// ChainCode returns the chain code the junction derives with.
func (j Junction) ChainCode() crypto.ChainCode {
	return crypto.ChainCodeFromJunction(j.Encoded)
}

// String returns the junction in path form.
func (j Junction) String() string {
	return hardPrefix + j.Name
}

// Path is an ordered list of hard junctions.
type Path []Junction

// String returns the path in "//a//b" form.
func (p Path) String() string {
	var sb strings.Builder
	for _, j := range p {
		sb.WriteString(j.String())
	}
	return sb.String()
}

// ParsePath parses a derivation path. The empty path is valid and has no
// junctions. Password ("///") and soft ("/") segments are rejected.
func ParsePath(path string) (Path, error) {
	var out Path
	rest := path
	for rest != "" {
		if !strings.HasPrefix(rest, "/") {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPath, path)
		}
		if !strings.HasPrefix(rest, hardPrefix) {
			return nil, fmt.Errorf("%w: %q", ErrSoftJunction, path)
		}
		rest = rest[len(hardPrefix):]
		if strings.HasPrefix(rest, "/") {
			return nil, fmt.Errorf("%w: password segments are not accepted in %q", ErrInvalidPath, path)
		}

		end := strings.IndexByte(rest, '/')
		if end < 0 {
			end = len(rest)
		}
		name := rest[:end]
		if name == "" {
			return nil, fmt.Errorf("%w: empty junction in %q", ErrInvalidPath, path)
		}
		out = append(out, NewJunction(name))
		rest = rest[end:]
	}
	return out, nil
}

// Derive applies every junction of path to key in order. Intermediate
// keypairs are zeroized; key itself is left untouched. For an empty path key
// is returned as is.
func Derive(key crypto.PrivateKey, path Path) (crypto.PrivateKey, error) {
	cur := key
	for i, j := range path {
		next, err := cur.DeriveHard(j.Encoded)
		if cur != key {
			cur.Zeroize()
		}
		if err != nil {
			return nil, fmt.Errorf("derive junction %d (%s): %w", i, j, err)
		}
		cur = next
	}
	return cur, nil
}

// DeriveString parses path and derives key along it.
func DeriveString(key crypto.PrivateKey, path string) (crypto.PrivateKey, error) {
	p, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	return Derive(key, p)
}
