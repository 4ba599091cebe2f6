// Package checkers implements the international-draughts-style rules
// module described by spec.md §4.4: a 32-square packed board, mandatory
// capture declared rather than inferred, and king promotion on reaching the
// back rank. It plugs into the arbiter through the rules.Rules interface
// (package rules) the way the teacher's g_move.go switches on g.Type, except
// generalised so the switch lives in the arbiter's registry instead of in
// every handler.
package checkers

// Squares are numbered 1..32 in reading order across the board's dark
// squares only: row 1 holds squares 1-4, row 2 holds 5-8, and so on down to
// row 8 holding 29-32. White starts on 1-12 and advances toward 32; red
// starts on 21-32 and advances toward 1.
//
// MOVES, RMOVS, JUMPS and RJUMP are indexed as table[2*(square-1)+slot] for
// slot in {0, 1} (the "left" and "right" diagonal direction from that
// square); a zero entry means that slot runs off the board. They are
// written out as literals; geometry_test.go checks every entry by
// reconstructing it from the row/col mapping above (squareToRC/rcToSquare).
var (
	MOVES = [64]byte{
		5, 6, 6, 7, 7, 8, 8, 0,
		0, 9, 9, 10, 10, 11, 11, 12,
		13, 14, 14, 15, 15, 16, 16, 0,
		0, 17, 17, 18, 18, 19, 19, 20,
		21, 22, 22, 23, 23, 24, 24, 0,
		0, 25, 25, 26, 26, 27, 27, 28,
		29, 30, 30, 31, 31, 32, 32, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
	}
	RMOVS = [64]byte{
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 1, 1, 2, 2, 3, 3, 4,
		5, 6, 6, 7, 7, 8, 8, 0,
		0, 9, 9, 10, 10, 11, 11, 12,
		13, 14, 14, 15, 15, 16, 16, 0,
		0, 17, 17, 18, 18, 19, 19, 20,
		21, 22, 22, 23, 23, 24, 24, 0,
		0, 25, 25, 26, 26, 27, 27, 28,
	}
	JUMPS = [64]byte{
		0, 10, 9, 11, 10, 12, 11, 0,
		0, 14, 13, 15, 14, 16, 15, 0,
		0, 18, 17, 19, 18, 20, 19, 0,
		0, 22, 21, 23, 22, 24, 23, 0,
		0, 26, 25, 27, 26, 28, 27, 0,
		0, 30, 29, 31, 30, 32, 31, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
	}
	RJUMP = [64]byte{
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 2, 1, 3, 2, 4, 3, 0,
		0, 6, 5, 7, 6, 8, 7, 0,
		0, 10, 9, 11, 10, 12, 11, 0,
		0, 14, 13, 15, 14, 16, 15, 0,
		0, 18, 17, 19, 18, 20, 19, 0,
		0, 22, 21, 23, 22, 24, 23, 0,
	}
)

// squareToRC converts a 1-based square number to its 0-based (row, col) on
// the full 8x8 board. The tests use it to check the tables above; move
// validation itself uses it only in promote, to find a landing square's row.
func squareToRC(sq int) (row, col int) {
	s0 := sq - 1
	row = s0 / 4
	pos := s0 % 4
	if row%2 == 0 {
		col = pos*2 + 1
	} else {
		col = pos * 2
	}
	return row, col
}

// rcToSquare is the inverse of squareToRC; it returns 0 for any coordinate
// off the board or on a light (unplayed) square.
func rcToSquare(row, col int) int {
	if row < 0 || row > 7 || col < 0 || col > 7 {
		return 0
	}
	if row%2 == 0 {
		if col%2 != 1 {
			return 0
		}
		return row*4 + (col-1)/2 + 1
	}
	if col%2 != 0 {
		return 0
	}
	return row*4 + col/2 + 1
}

// moveSlots returns the two (possibly zero) squares reachable by a single
// diagonal step from sq in the forward direction for white (down-board) if
// forWhite, or for red (up-board) otherwise.
func moveSlots(sq int, forWhite bool) (left, right byte) {
	i := 2 * (sq - 1)
	if forWhite {
		return MOVES[i], MOVES[i+1]
	}
	return RMOVS[i], RMOVS[i+1]
}

// jumpSlots returns the two (possibly zero) landing squares reachable by a
// single jump from sq in the forward direction for white if forWhite, or
// for red otherwise.
func jumpSlots(sq int, forWhite bool) (left, right byte) {
	i := 2 * (sq - 1)
	if forWhite {
		return JUMPS[i], JUMPS[i+1]
	}
	return RJUMP[i], RJUMP[i+1]
}

// capturedSquare returns the square a jump from `from` to `to` hops over, or
// 0 if `to` is not a valid jump landing from `from` in the given direction.
// It is read from the mover's single-step move table at the slot the jump
// matched, which names the geometric midpoint of from and to on the board;
// captures are never computed via the suspect (from+to)/2
// square-index arithmetic flagged in spec.md's design notes, since square
// numbers are not laid out on a linear axis.
func capturedSquare(from, to int, forWhite bool) byte {
	left, right := jumpSlots(from, forWhite)
	var slot int
	switch int(to) {
	case int(left):
		slot = 0
	case int(right):
		slot = 1
	default:
		return 0
	}
	mLeft, mRight := moveSlots(from, forWhite)
	if slot == 0 {
		return mLeft
	}
	return mRight
}
