// Package gtypes holds the cross-component data model shared by the codec,
// signer, rules and arbiter packages: addresses, game identifiers, game
// states, moves and the arbiter's event types. The persistent Game and
// Timeout records live in package arbiter.
package gtypes

import (
	"encoding/hex"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// Address is the 20-byte opaque identifier of a principal, matching the
// teacher's string-keyed player identity but sized and validated the way
// the rest of the pack handles chain addresses (see common.Address).
type Address [20]byte

// ZeroAddress is the sentinel "not a member" / "no such address" value.
var ZeroAddress = Address{}

// AddressFromCommon converts a go-ethereum common.Address into an Address.
func AddressFromCommon(a common.Address) Address {
	return Address(a)
}

// Common converts an Address back into a go-ethereum common.Address, for
// interop with crypto.PubkeyToAddress and friends.
func (a Address) Common() common.Address { return common.Address(a) }

// IsZero reports whether a is the zero address.
func (a Address) IsZero() bool { return a == ZeroAddress }

// Bytes returns a's 20 bytes.
func (a Address) Bytes() []byte { return a[:] }

// Hex renders a as a "0x"-prefixed lowercase hex string.
func (a Address) Hex() string { return "0x" + hex.EncodeToString(a[:]) }

func (a Address) String() string { return a.Hex() }

// ParseAddress decodes a "0x"-prefixed or bare hex string into an Address.
func ParseAddress(s string) (Address, error) {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return Address{}, fmt.Errorf("gtypes: invalid address %q: %w", s, err)
	}
	if len(b) != 20 {
		return Address{}, fmt.Errorf("gtypes: address %q must be 20 bytes, got %d", s, len(b))
	}
	var a Address
	copy(a[:], b)
	return a, nil
}
