package checkers

import "testing"

func TestSquareRCRoundTrip(t *testing.T) {
	for sq := 1; sq <= 32; sq++ {
		row, col := squareToRC(sq)
		if got := rcToSquare(row, col); got != sq {
			t.Fatalf("square %d: rc (%d,%d) round-trips to %d", sq, row, col, got)
		}
	}
}

func TestMovesTableMatchesGeometry(t *testing.T) {
	for sq := 1; sq <= 32; sq++ {
		row, col := squareToRC(sq)
		wantLeft := byte(rcToSquare(row+1, col-1))
		wantRight := byte(rcToSquare(row+1, col+1))
		l, r := moveSlots(sq, true)
		if l != wantLeft || r != wantRight {
			t.Fatalf("square %d MOVES: got (%d,%d) want (%d,%d)", sq, l, r, wantLeft, wantRight)
		}
	}
}

func TestRMovsTableMatchesGeometry(t *testing.T) {
	for sq := 1; sq <= 32; sq++ {
		row, col := squareToRC(sq)
		wantLeft := byte(rcToSquare(row-1, col-1))
		wantRight := byte(rcToSquare(row-1, col+1))
		l, r := moveSlots(sq, false)
		if l != wantLeft || r != wantRight {
			t.Fatalf("square %d RMOVS: got (%d,%d) want (%d,%d)", sq, l, r, wantLeft, wantRight)
		}
	}
}

func TestJumpsTableMatchesGeometry(t *testing.T) {
	for sq := 1; sq <= 32; sq++ {
		row, col := squareToRC(sq)
		wantLeft := byte(rcToSquare(row+2, col-2))
		wantRight := byte(rcToSquare(row+2, col+2))
		l, r := jumpSlots(sq, true)
		if l != wantLeft || r != wantRight {
			t.Fatalf("square %d JUMPS: got (%d,%d) want (%d,%d)", sq, l, r, wantLeft, wantRight)
		}
	}
}

func TestRJumpTableMatchesGeometry(t *testing.T) {
	for sq := 1; sq <= 32; sq++ {
		row, col := squareToRC(sq)
		wantLeft := byte(rcToSquare(row-2, col-2))
		wantRight := byte(rcToSquare(row-2, col+2))
		l, r := jumpSlots(sq, false)
		if l != wantLeft || r != wantRight {
			t.Fatalf("square %d RJUMP: got (%d,%d) want (%d,%d)", sq, l, r, wantLeft, wantRight)
		}
	}
}

func TestCapturedSquareIsGeometricMidpoint(t *testing.T) {
	l, r := jumpSlots(10, true)
	for _, landing := range [2]int{int(l), int(r)} {
		if landing == 0 {
			continue
		}
		captured := capturedSquare(10, landing, true)
		if captured == 0 {
			t.Fatalf("capturedSquare(10, %d, true) = 0, want nonzero", landing)
		}
		mr, mc := squareToRC(10)
		lr, lc := squareToRC(landing)
		wantRow, wantCol := (mr+lr)/2, (mc+lc)/2
		if want := rcToSquare(wantRow, wantCol); int(captured) != want {
			t.Fatalf("capturedSquare(10, %d, true) = %d, want midpoint %d", landing, captured, want)
		}
	}
}
