package checkers

import "github.com/chainhackers/gamejutsu/rules"

// Module is the checkers rules.Rules implementation. It holds no state of
// its own; every method is a pure function of its arguments, as
// rules.Rules requires.
type Module struct{}

var _ rules.Rules = Module{}

func pieceColorIsWhite(c byte) bool { return c == WhiteMan || c == WhiteKing }
func pieceIsKing(c byte) bool       { return c == WhiteKing || c == RedKing }
func pieceColorIsRed(c byte) bool   { return c == RedMan || c == RedKing }

func owns(c byte, forWhite bool) bool {
	if forWhite {
		return pieceColorIsWhite(c)
	}
	return pieceColorIsRed(c)
}

func opponentOf(c byte, forWhite bool) bool {
	if c == Empty {
		return false
	}
	return owns(c, !forWhite)
}

// canJumpFrom reports whether the piece on sq (owned by forWhite, of the
// given king-ness) has at least one legal jump available, and if so
// returns one such jump's landing square.
func canJumpFrom(cells [32]byte, sq int, forWhite, king bool) (to int, ok bool) {
	directions := []bool{forWhite}
	if king {
		directions = append(directions, !forWhite)
	}
	for _, dir := range directions {
		l, r := jumpSlots(sq, dir)
		for _, landing := range [2]byte{l, r} {
			if landing == 0 || cells[landing-1] != Empty {
				continue
			}
			captured := capturedSquare(sq, int(landing), dir)
			if captured != 0 && opponentOf(cells[captured-1], forWhite) {
				return int(landing), true
			}
		}
	}
	return 0, false
}

// canMoveFrom reports whether the piece on sq has at least one legal simple
// step available.
func canMoveFrom(cells [32]byte, sq int, forWhite, king bool) bool {
	directions := []bool{forWhite}
	if king {
		directions = append(directions, !forWhite)
	}
	for _, dir := range directions {
		l, r := moveSlots(sq, dir)
		if (l != 0 && cells[l-1] == Empty) || (r != 0 && cells[r-1] == Empty) {
			return true
		}
	}
	return false
}

// hasAnyLegalAction reports whether forWhite has any legal move at all,
// jump or simple. A false result means forWhite is stalemated and loses.
func hasAnyLegalAction(cells [32]byte, forWhite bool) bool {
	for i, c := range cells {
		if !owns(c, forWhite) {
			continue
		}
		king := pieceIsKing(c)
		if _, ok := canJumpFrom(cells, i+1, forWhite, king); ok {
			return true
		}
		if canMoveFrom(cells, i+1, forWhite, king) {
			return true
		}
	}
	return false
}

// resolveCapture returns the square a jump from `from` to `to` hops over,
// trying the mover's own-colour jump table first and, for a king, the
// opposite table second. ok is false if `to` is not a valid jump landing in
// either table from `from`, or if the intervening cell does not hold an
// opponent piece.
func resolveCapture(cells [32]byte, from, to int, forWhite, king bool) (captured int, ok bool) {
	captured = int(capturedSquare(from, to, forWhite))
	if captured == 0 && king {
		captured = int(capturedSquare(from, to, !forWhite))
	}
	if captured == 0 {
		return 0, false
	}
	return captured, opponentOf(cells[captured-1], forWhite)
}

// promote returns c promoted to a king if it has just landed on the
// opposing back rank, or c unchanged otherwise.
func promote(c byte, to int) byte {
	row, _ := squareToRC(to)
	switch {
	case c == WhiteMan && row == 7:
		return WhiteKing
	case c == RedMan && row == 0:
		return RedKing
	default:
		return c
	}
}

// IsValidMove implements rules.Rules, following spec's eight-point
// is_valid_move contract: square range, turn ownership, vacancy/occupancy,
// piece ownership, table-driven direction, jump capture legality, and the
// pass_to_opponent declaration (always true after a simple move; for a
// jump, true iff no further jump exists for the mover on the post-capture
// board). Mandatory capture is, per spec.md's design notes, the mover's own
// declared responsibility: a simple move is not rejected merely because a
// jump was available elsewhere on the board.
func (Module) IsValidMove(stateBytes []byte, playerID rules.PlayerID, moveBytes []byte) bool {
	s, err := DecodeState(stateBytes)
	if err != nil || s.Winner != NoWinner {
		return false
	}
	m, err := DecodeMove(moveBytes)
	if err != nil {
		return false
	}
	if m.From == 0 || m.From > 32 || m.To == 0 || m.To > 32 {
		return false
	}
	forWhite := int(playerID) == White
	if s.RedMoves != (int(playerID) == Red) {
		return false
	}
	cell := s.Cells[m.From-1]
	if cell == Empty || !owns(cell, forWhite) || s.Cells[m.To-1] != Empty {
		return false
	}
	king := pieceIsKing(cell)

	if !m.IsJump {
		if !m.PassToOpponent {
			return false
		}
		l, r := moveSlots(int(m.From), forWhite)
		if byte(m.To) == l || byte(m.To) == r {
			return true
		}
		if king {
			l, r = moveSlots(int(m.From), !forWhite)
			return byte(m.To) == l || byte(m.To) == r
		}
		return false
	}

	captured, ok := resolveCapture(s.Cells, int(m.From), int(m.To), forWhite, king)
	if !ok {
		return false
	}

	provisional := s.Cells
	provisional[m.From-1] = Empty
	provisional[captured-1] = Empty
	provisional[m.To-1] = promote(cell, int(m.To))
	_, furtherJump := canJumpFrom(provisional, int(m.To), forWhite, pieceIsKing(provisional[m.To-1]))
	return m.PassToOpponent == !furtherJump
}

// Transition implements rules.Rules. The mover's pass_to_opponent
// declaration, already verified by IsValidMove, is trusted directly to
// decide whether the turn passes — Transition never recomputes it, since
// its result is only defined for moves IsValidMove has accepted.
func (Module) Transition(stateBytes []byte, playerID rules.PlayerID, moveBytes []byte) []byte {
	s, err := DecodeState(stateBytes)
	if err != nil {
		return stateBytes
	}
	m, err := DecodeMove(moveBytes)
	if err != nil {
		return stateBytes
	}
	forWhite := int(playerID) == White

	cell := s.Cells[m.From-1]
	king := pieceIsKing(cell)
	s.Cells[m.From-1] = Empty

	if m.IsJump {
		captured, _ := resolveCapture(s.Cells, int(m.From), int(m.To), forWhite, king)
		s.Cells[captured-1] = Empty
	}
	s.Cells[m.To-1] = promote(cell, int(m.To))

	if !m.PassToOpponent {
		// same player continues with another jump; turn does not pass.
		return finalizeOutcome(s, forWhite)
	}

	s.RedMoves = forWhite // it becomes the other colour's turn
	return finalizeOutcome(s, forWhite)
}

// finalizeOutcome checks whether the side now to move (red if lastMoverWasWhite
// and the turn passed, otherwise lastMoverWasWhite's own colour on a
// continuation) has any legal action; if not, the last mover wins.
func finalizeOutcome(s State, lastMoverWasWhite bool) []byte {
	nextToMove := s.RedMoves // true means red moves next
	if !hasAnyLegalAction(s.Cells, !nextToMove) {
		s.Winner = outcomeFor(lastMoverWasWhite)
	}
	return EncodeState(s)
}

func outcomeFor(whiteWon bool) byte {
	if whiteWon {
		return WhiteWins
	}
	return RedWins
}

// IsFinal implements rules.Rules.
func (Module) IsFinal(stateBytes []byte) bool {
	s, err := DecodeState(stateBytes)
	if err != nil {
		return false
	}
	return s.Winner != NoWinner
}

// IsWin implements rules.Rules.
func (Module) IsWin(stateBytes []byte, playerID rules.PlayerID) bool {
	s, err := DecodeState(stateBytes)
	if err != nil {
		return false
	}
	if int(playerID) == White {
		return s.Winner == WhiteWins
	}
	return s.Winner == RedWins
}

// DefaultInitialState implements rules.Rules.
func (Module) DefaultInitialState() []byte {
	return EncodeState(DefaultInitialState())
}
