// Package codec implements the canonical, deterministic byte encoding used
// for every cross-component payload in the arbiter protocol: GameState,
// GameMove and (via package checkers) rules-module-specific state and move
// payloads. The scheme is the ambient smart-contract ABI's head/tail tuple
// layout — 32-byte word alignment, static fields inline in the head,
// dynamic `bytes` fields length-prefixed in the tail — so that two
// independent implementations signing the same GameMove produce
// byte-identical typed-data digests.
//
// encode(decode(x)) == x for all valid inputs. decode fails with
// ErrMalformedPayload on truncation, bad length prefixes or offsets that
// escape the buffer; it never panics on attacker-controlled input.
package codec

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/chainhackers/gamejutsu/gtypes"
)

// WordSize is the ABI word width in bytes.
const WordSize = 32

// ErrMalformedPayload is returned by every Decode* function when the input
// cannot possibly have been produced by the matching Encode* function.
var ErrMalformedPayload = errors.New("codec: malformed payload")

func malformed(why string) error {
	return fmt.Errorf("%w: %s", ErrMalformedPayload, why)
}

// writeWord appends a big-endian uint64 right-aligned in a 32-byte word.
func writeWord(dst []byte, v uint64) []byte {
	var w [WordSize]byte
	binary.BigEndian.PutUint64(w[WordSize-8:], v)
	return append(dst, w[:]...)
}

// writeAddressWord appends a as the low 20 bytes of a 32-byte word, matching
// the ambient ABI's address-in-word convention.
func writeAddressWord(dst []byte, a gtypes.Address) []byte {
	var w [WordSize]byte
	copy(w[WordSize-20:], a[:])
	return append(dst, w[:]...)
}

// writeBytesTail appends a dynamic bytes value as a 32-byte length word
// followed by the data, zero-padded up to the next word boundary.
func writeBytesTail(dst []byte, data []byte) []byte {
	dst = writeWord(dst, uint64(len(data)))
	dst = append(dst, data...)
	if pad := (WordSize - len(data)%WordSize) % WordSize; pad > 0 {
		dst = append(dst, make([]byte, pad)...)
	}
	return dst
}

// roundUpToWord returns n rounded up to the next multiple of WordSize.
func roundUpToWord(n int) int {
	return (n + WordSize - 1) / WordSize * WordSize
}

func readWord(b []byte, word int) ([]byte, error) {
	off := word * WordSize
	if off < 0 || off+WordSize > len(b) {
		return nil, malformed("truncated head")
	}
	return b[off : off+WordSize], nil
}

func readUint64Word(b []byte, word int) (uint64, error) {
	w, err := readWord(b, word)
	if err != nil {
		return 0, err
	}
	for _, c := range w[:WordSize-8] {
		if c != 0 {
			return 0, malformed("value exceeds uint64 range")
		}
	}
	return binary.BigEndian.Uint64(w[WordSize-8:]), nil
}

func readAddressWord(b []byte, word int) (gtypes.Address, error) {
	w, err := readWord(b, word)
	if err != nil {
		return gtypes.Address{}, err
	}
	for _, c := range w[:WordSize-20] {
		if c != 0 {
			return gtypes.Address{}, malformed("address word has non-zero padding")
		}
	}
	var a gtypes.Address
	copy(a[:], w[WordSize-20:])
	return a, nil
}

// readBytesTail reads the dynamic bytes value whose offset (relative to the
// start of b, in bytes) is stored in head word `offsetWord`.
func readBytesTail(b []byte, offsetWord int) ([]byte, error) {
	offset, err := readUint64Word(b, offsetWord)
	if err != nil {
		return nil, err
	}
	if offset > uint64(len(b)) {
		return nil, malformed("dynamic offset out of range")
	}
	start := int(offset)
	if start+WordSize > len(b) {
		return nil, malformed("dynamic offset out of range")
	}
	length, err := readUint64Word(b, start/WordSize)
	if err != nil {
		return nil, err
	}
	dataStart := start + WordSize
	dataEnd := dataStart + int(length)
	if length > uint64(len(b)) || dataEnd < dataStart || dataEnd > len(b) {
		return nil, malformed("dynamic length out of range")
	}
	out := make([]byte, length)
	copy(out, b[dataStart:dataEnd])
	return out, nil
}

// EncodeGameState canonically encodes a GameState as (gameId, nonce, state).
func EncodeGameState(gs gtypes.GameState) []byte {
	head := make([]byte, 0, 3*WordSize)
	head = writeWord(head, uint64(gs.GameId))
	head = writeWord(head, uint64(gs.Nonce))
	head = writeWord(head, uint64(3*WordSize)) // offset of the dynamic tail
	return writeBytesTail(head, gs.State)
}

// DecodeGameState is the inverse of EncodeGameState.
func DecodeGameState(b []byte) (gtypes.GameState, error) {
	if len(b) < 3*WordSize {
		return gtypes.GameState{}, malformed("truncated GameState head")
	}
	gameId, err := readUint64Word(b, 0)
	if err != nil {
		return gtypes.GameState{}, err
	}
	nonce, err := readUint64Word(b, 1)
	if err != nil {
		return gtypes.GameState{}, err
	}
	state, err := readBytesTail(b, 2)
	if err != nil {
		return gtypes.GameState{}, err
	}
	expected := roundUpToWord(len(state)) + 3*WordSize + WordSize
	if len(b) != expected {
		return gtypes.GameState{}, malformed("trailing or missing bytes")
	}
	return gtypes.GameState{GameId: gtypes.GameId(gameId), Nonce: gtypes.Nonce(nonce), State: state}, nil
}

// EncodeGameMove canonically encodes a GameMove as
// (gameId, nonce, player, oldState, newState, moveBytes).
func EncodeGameMove(m gtypes.GameMove) []byte {
	head := make([]byte, 0, 6*WordSize)
	head = writeWord(head, uint64(m.GameId))
	head = writeWord(head, uint64(m.Nonce))
	head = writeAddressWord(head, m.Player)
	// three dynamic fields follow the 6-word head.
	off := 6 * WordSize
	head = writeWord(head, uint64(off))
	off += WordSize + roundUpToWord(len(m.OldState))
	head = writeWord(head, uint64(off))
	off += WordSize + roundUpToWord(len(m.NewState))
	head = writeWord(head, uint64(off))

	out := head
	out = writeBytesTail(out, m.OldState)
	out = writeBytesTail(out, m.NewState)
	out = writeBytesTail(out, m.MoveBytes)
	return out
}

// DecodeGameMove is the inverse of EncodeGameMove.
func DecodeGameMove(b []byte) (gtypes.GameMove, error) {
	if len(b) < 6*WordSize {
		return gtypes.GameMove{}, malformed("truncated GameMove head")
	}
	gameId, err := readUint64Word(b, 0)
	if err != nil {
		return gtypes.GameMove{}, err
	}
	nonce, err := readUint64Word(b, 1)
	if err != nil {
		return gtypes.GameMove{}, err
	}
	player, err := readAddressWord(b, 2)
	if err != nil {
		return gtypes.GameMove{}, err
	}
	oldState, err := readBytesTail(b, 3)
	if err != nil {
		return gtypes.GameMove{}, err
	}
	newState, err := readBytesTail(b, 4)
	if err != nil {
		return gtypes.GameMove{}, err
	}
	moveBytes, err := readBytesTail(b, 5)
	if err != nil {
		return gtypes.GameMove{}, err
	}

	expected := len(EncodeGameMove(gtypes.GameMove{
		GameId: gtypes.GameId(gameId), Nonce: gtypes.Nonce(nonce), Player: player,
		OldState: oldState, NewState: newState, MoveBytes: moveBytes,
	}))
	if len(b) != expected {
		return gtypes.GameMove{}, malformed("trailing or missing bytes")
	}

	return gtypes.GameMove{
		GameId:    gtypes.GameId(gameId),
		Nonce:     gtypes.Nonce(nonce),
		Player:    player,
		OldState:  oldState,
		NewState:  newState,
		MoveBytes: moveBytes,
	}, nil
}
