package sig

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/chainhackers/gamejutsu/gtypes"
)

// ErrBadSignature is returned by Recover when the signature is malformed or
// does not recover to any point on the curve.
var ErrBadSignature = errors.New("sig: bad signature")

// eip191Prefix is the constant 2-byte prefix of an EIP-712 digest:
// keccak256(0x1901 || domainSeparator || structHash).
var eip191Prefix = [2]byte{0x19, 0x01}

// Signer holds a domain separator computed once at construction, following
// spec.md §4.2: "A domain separator is computed once at construction".
type Signer struct {
	domain    Domain
	separator [32]byte
}

// NewSigner builds a Signer for d, computing its domain separator once.
func NewSigner(d Domain) *Signer {
	return &Signer{domain: d, separator: d.separator()}
}

// DefaultSigner returns a Signer bound to the normative GameJutsu domain.
func DefaultSigner() *Signer { return NewSigner(DefaultDomain()) }

// DomainSeparator returns the cached domain separator.
func (s *Signer) DomainSeparator() [32]byte { return s.separator }

// StructHash computes keccak256(GAME_MOVE_TYPEHASH ‖ gameId ‖ nonce ‖
// player ‖ hash(oldState) ‖ hash(newState) ‖ hash(moveBytes)).
func (s *Signer) StructHash(m gtypes.GameMove) [32]byte {
	gameIdWord := word64(uint64(m.GameId))
	nonceWord := word64(uint64(m.Nonce))
	playerWord := addressWord(m.Player)
	oldHash := crypto.Keccak256Hash(m.OldState)
	newHash := crypto.Keccak256Hash(m.NewState)
	moveHash := crypto.Keccak256Hash(m.MoveBytes)

	buf := make([]byte, 0, 7*32)
	buf = append(buf, gameMoveTypeHash.Bytes()...)
	buf = append(buf, gameIdWord[:]...)
	buf = append(buf, nonceWord[:]...)
	buf = append(buf, playerWord[:]...)
	buf = append(buf, oldHash.Bytes()...)
	buf = append(buf, newHash.Bytes()...)
	buf = append(buf, moveHash.Bytes()...)
	return crypto.Keccak256Hash(buf)
}

// Digest computes the final typed-data digest for m under this domain.
func (s *Signer) Digest(m gtypes.GameMove) [32]byte {
	structHash := s.StructHash(m)
	buf := make([]byte, 0, 2+32+32)
	buf = append(buf, eip191Prefix[:]...)
	buf = append(buf, s.separator[:]...)
	buf = append(buf, structHash[:]...)
	return crypto.Keccak256Hash(buf)
}

// Sign signs move's typed-data digest with priv, returning a 65-byte
// signature with v normalised to {27, 28} and s constrained to the lower
// half of the curve order (low-s), per spec.md §4.2.
func Sign(priv *ecdsa.PrivateKey, s *Signer, move gtypes.GameMove) ([]byte, error) {
	digest := s.Digest(move)
	sig, err := crypto.Sign(digest[:], priv)
	if err != nil {
		return nil, fmt.Errorf("sig: sign: %w", err)
	}
	out := make([]byte, 65)
	copy(out, sig)
	out[64] += 27
	return out, nil
}

// Recover recovers the signing address from a 65-byte signature over move's
// typed-data digest. It enforces v in {27, 28} and low-s; any other
// encoding, or a signature that doesn't recover to a point on the curve,
// fails with ErrBadSignature.
func (s *Signer) Recover(move gtypes.GameMove, signature []byte) (gtypes.Address, error) {
	if len(signature) != 65 {
		return gtypes.Address{}, fmt.Errorf("%w: signature must be 65 bytes, got %d", ErrBadSignature, len(signature))
	}

	r := new(big.Int).SetBytes(signature[0:32])
	sVal := new(big.Int).SetBytes(signature[32:64])
	v := signature[64]

	if v != 27 && v != 28 {
		return gtypes.Address{}, fmt.Errorf("%w: v must be 27 or 28, got %d", ErrBadSignature, v)
	}
	recID := v - 27

	if !crypto.ValidateSignatureValues(recID, r, sVal, true) {
		return gtypes.Address{}, fmt.Errorf("%w: invalid r/s or non-low-s signature", ErrBadSignature)
	}

	normalized := make([]byte, 65)
	copy(normalized, signature[:64])
	normalized[64] = recID

	digest := s.Digest(move)
	pub, err := crypto.SigToPub(digest[:], normalized)
	if err != nil {
		return gtypes.Address{}, fmt.Errorf("%w: %v", ErrBadSignature, err)
	}
	return gtypes.AddressFromCommon(crypto.PubkeyToAddress(*pub)), nil
}
