// Package sig implements the EIP-712-style typed-data signer used to
// authenticate GameMoves: a domain separator computed once at construction,
// a per-move struct hash, and secp256k1 signature recovery to a player
// address. Grounded on the go-ethereum crypto usage pattern common across
// the pack (e.g. the validator-signing flow in block52-pokerchain's
// x/poker/keeper and the address/crypto helpers in
// orbas1-Synnergy/synnergy-network/core), adapted from "sign a game state
// update" to "sign a GameMove at a typed-data digest".
package sig

import (
	"encoding/hex"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/chainhackers/gamejutsu/gtypes"
)

// Normative domain literals from spec.md §6. Wire-compatible
// implementations must use exactly these values.
const (
	DefaultName    = "GameJutsu"
	DefaultVersion = "0.1"
	DefaultChainID = 137
)

var (
	// DefaultVerifyingContract is the normative verifying-contract literal.
	DefaultVerifyingContract = gtypes.Address(mustHexAddr("0xCcCCccccCCCCcCCCCCCcCcCccCcCCCcCcccccccC"))
	// DefaultSalt is the normative domain salt literal.
	DefaultSalt = mustHexWord("920dfa98b3727bbfe860dd7341801f2e2a55cd7f637dea958edfc5df56c35e4d")

	domainTypeHash   = crypto.Keccak256Hash([]byte("EIP712Domain(string name,string version,uint256 chainId,address verifyingContract,bytes32 salt)"))
	gameMoveTypeHash = crypto.Keccak256Hash([]byte("GameMove(uint256 gameId,uint256 nonce,address player,bytes oldState,bytes newState,bytes move)"))
)

func mustHexAddr(s string) gtypes.Address {
	a, err := gtypes.ParseAddress(s)
	if err != nil {
		panic(err)
	}
	return a
}

func mustHexWord(s string) [32]byte {
	b, err := hex.DecodeString(s)
	if err != nil || len(b) != 32 {
		panic("sig: bad word literal " + s)
	}
	var w [32]byte
	copy(w[:], b)
	return w
}

// Domain identifies the signing domain: which contract, which chain, which
// salt. The zero value is not valid; use DefaultDomain() for the normative
// GameJutsu domain or construct one explicitly for a test network.
type Domain struct {
	Name              string
	Version           string
	ChainID           uint64
	VerifyingContract gtypes.Address
	Salt              [32]byte
}

// DefaultDomain returns the normative spec.md §6 domain.
func DefaultDomain() Domain {
	return Domain{
		Name:              DefaultName,
		Version:           DefaultVersion,
		ChainID:           DefaultChainID,
		VerifyingContract: DefaultVerifyingContract,
		Salt:              DefaultSalt,
	}
}

func word64(v uint64) [32]byte {
	var w [32]byte
	for i := 0; i < 8; i++ {
		w[31-i] = byte(v >> (8 * i))
	}
	return w
}

func addressWord(a gtypes.Address) [32]byte {
	var w [32]byte
	copy(w[12:], a[:])
	return w
}

// separator computes the EIP-712 domain separator for d.
func (d Domain) separator() [32]byte {
	nameHash := crypto.Keccak256Hash([]byte(d.Name))
	versionHash := crypto.Keccak256Hash([]byte(d.Version))
	chainWord := word64(d.ChainID)
	contractWord := addressWord(d.VerifyingContract)

	buf := make([]byte, 0, 6*32)
	buf = append(buf, domainTypeHash.Bytes()...)
	buf = append(buf, nameHash.Bytes()...)
	buf = append(buf, versionHash.Bytes()...)
	buf = append(buf, chainWord[:]...)
	buf = append(buf, contractWord[:]...)
	buf = append(buf, d.Salt[:]...)
	return crypto.Keccak256Hash(buf)
}
