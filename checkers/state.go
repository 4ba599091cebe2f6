package checkers

import (
	"encoding/binary"

	"github.com/chainhackers/gamejutsu/codec"
)

// Cell values packed one per board square. Colour is the low nibble (1
// white, 2 red); a king additionally has the high nibble set to 0xA,
// i.e. king == color | 0xA0.
const (
	Empty     byte = 0x00
	WhiteMan  byte = 0x01
	RedMan    byte = 0x02
	WhiteKing byte = 0xA1
	RedKing   byte = 0xA2
)

// Outcome values recorded in State.Winner: 0 none, 1 white, 2 red. There is
// no draw value; a side with no legal move or jump loses outright.
const (
	NoWinner byte = iota
	WhiteWins
	RedWins
)

func isValidCell(c byte) bool {
	switch c {
	case Empty, WhiteMan, RedMan, WhiteKing, RedKing:
		return true
	default:
		return false
	}
}

// White and Red are the two rules.PlayerID values this module uses: the
// proposer always plays white, the acceptor always plays red, matching
// gtypes' players[2] ordering (spec.md §5, "proposer is players[0]").
const (
	White = 0
	Red   = 1
)

// State is a checkers position: the 32 packed squares, whose turn it is,
// and the recorded outcome once the game has ended.
type State struct {
	Cells    [32]byte
	RedMoves bool
	Winner   byte
}

// Move is a single ply: a simple step or a jump from From to To. Every move
// moves a piece. PassToOpponent is the mover's declaration that the turn
// passes after this move: it must be true for a simple step, and for a jump
// it must be true exactly when no further jump is available from To, so
// chained captures are declared by the mover rather than inferred silently
// by the rules engine.
type Move struct {
	From           uint8
	To             uint8
	IsJump         bool
	PassToOpponent bool
}

// stateWords is the fixed word count of the canonical State encoding: one
// word per square, one for whose turn it is, one for the outcome.
const stateWords = 34

// moveWords is the fixed word count of the canonical Move encoding.
const moveWords = 4

func boolWord(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

// EncodeState canonically encodes s as 34 fixed-width words: 32 cell
// values, then RedMoves, then Winner. There is no dynamic tail, so unlike
// codec.EncodeGameState/EncodeGameMove this never needs an offset table.
func EncodeState(s State) []byte {
	out := make([]byte, stateWords*codec.WordSize)
	for i, c := range s.Cells {
		binary.BigEndian.PutUint64(out[i*codec.WordSize+codec.WordSize-8:], uint64(c))
	}
	binary.BigEndian.PutUint64(out[32*codec.WordSize+codec.WordSize-8:], boolWord(s.RedMoves))
	binary.BigEndian.PutUint64(out[33*codec.WordSize+codec.WordSize-8:], uint64(s.Winner))
	return out
}

// DecodeState is the inverse of EncodeState. It fails if b is not exactly
// stateWords*codec.WordSize bytes, if any cell or outcome word carries a
// value outside its defined range, or if any word's upper 24 bytes are
// non-zero padding.
func DecodeState(b []byte) (State, error) {
	if len(b) != stateWords*codec.WordSize {
		return State{}, malformed("state: wrong length")
	}
	var s State
	for i := range s.Cells {
		v, err := wordUint(b, i)
		if err != nil {
			return State{}, err
		}
		if !isValidCell(byte(v)) || v > 0xff {
			return State{}, malformed("state: cell value out of range")
		}
		s.Cells[i] = byte(v)
	}
	redMoves, err := wordUint(b, 32)
	if err != nil {
		return State{}, err
	}
	if redMoves > 1 {
		return State{}, malformed("state: red_moves not boolean")
	}
	s.RedMoves = redMoves == 1
	winner, err := wordUint(b, 33)
	if err != nil {
		return State{}, err
	}
	if winner > uint64(RedWins) {
		return State{}, malformed("state: winner out of range")
	}
	s.Winner = byte(winner)
	return s, nil
}

// EncodeMove canonically encodes m as four fixed-width words: From, To,
// IsJump, PassToOpponent.
func EncodeMove(m Move) []byte {
	out := make([]byte, moveWords*codec.WordSize)
	binary.BigEndian.PutUint64(out[0*codec.WordSize+codec.WordSize-8:], uint64(m.From))
	binary.BigEndian.PutUint64(out[1*codec.WordSize+codec.WordSize-8:], uint64(m.To))
	binary.BigEndian.PutUint64(out[2*codec.WordSize+codec.WordSize-8:], boolWord(m.IsJump))
	binary.BigEndian.PutUint64(out[3*codec.WordSize+codec.WordSize-8:], boolWord(m.PassToOpponent))
	return out
}

// DecodeMove is the inverse of EncodeMove.
func DecodeMove(b []byte) (Move, error) {
	if len(b) != moveWords*codec.WordSize {
		return Move{}, malformed("move: wrong length")
	}
	from, err := wordUint(b, 0)
	if err != nil {
		return Move{}, err
	}
	to, err := wordUint(b, 1)
	if err != nil {
		return Move{}, err
	}
	isJump, err := wordUint(b, 2)
	if err != nil {
		return Move{}, err
	}
	pass, err := wordUint(b, 3)
	if err != nil {
		return Move{}, err
	}
	if from > 32 || to > 32 || isJump > 1 || pass > 1 {
		return Move{}, malformed("move: field out of range")
	}
	return Move{
		From:           uint8(from),
		To:             uint8(to),
		IsJump:         isJump == 1,
		PassToOpponent: pass == 1,
	}, nil
}

func wordUint(b []byte, word int) (uint64, error) {
	off := word * codec.WordSize
	if off+codec.WordSize > len(b) {
		return 0, malformed("truncated word")
	}
	w := b[off : off+codec.WordSize]
	for _, c := range w[:codec.WordSize-8] {
		if c != 0 {
			return 0, malformed("value exceeds expected range")
		}
	}
	return binary.BigEndian.Uint64(w[codec.WordSize-8:]), nil
}

// DefaultInitialState returns the canonical starting position: white men on
// 1-12, red men on 21-32, the middle two ranks empty, white to move.
func DefaultInitialState() State {
	var s State
	for i := 0; i < 12; i++ {
		s.Cells[i] = WhiteMan
	}
	for i := 20; i < 32; i++ {
		s.Cells[i] = RedMan
	}
	return s
}
