package game

import (
	"errors"
	"math/rand"
	"testing"
)

func TestNewBoard(t *testing.T) {
	rows, cols := 4, 4
	board, err := NewBoard(rows, cols, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}

	if board.Rows != rows {
		t.Errorf("expected Rows=%d, got %d", rows, board.Rows)
	}
	if board.Cols != cols {
		t.Errorf("expected Cols=%d, got %d", cols, board.Cols)
	}
	if board.TotalCards() != rows*cols {
		t.Fatalf("expected %d cards, got %d", rows*cols, board.TotalCards())
	}
	if board.Pairs() != rows*cols/2 {
		t.Errorf("expected %d pairs, got %d", rows*cols/2, board.Pairs())
	}

	// Every symbol in [0, pairs) must appear exactly twice.
	counts := make(map[int]int)
	for _, pos := range board.Positions() {
		s := board.Symbol(pos)
		if s < 0 || s >= board.Pairs() {
			t.Errorf("symbol %d at %v out of range [0,%d)", s, pos, board.Pairs())
		}
		counts[s]++
	}
	if len(counts) != board.Pairs() {
		t.Errorf("expected %d distinct symbols, got %d", board.Pairs(), len(counts))
	}
	for s, n := range counts {
		if n != 2 {
			t.Errorf("symbol %d appears %d times, expected 2", s, n)
		}
	}
}

func TestNewBoardDeterministic(t *testing.T) {
	a, err := NewBoard(4, 4, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	b, err := NewBoard(4, 4, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	for _, pos := range a.Positions() {
		if a.Symbol(pos) != b.Symbol(pos) {
			t.Fatalf("same seed produced different boards at %v: %d vs %d",
				pos, a.Symbol(pos), b.Symbol(pos))
		}
	}
}

func TestNewBoardOddCellCount(t *testing.T) {
	_, err := NewBoard(3, 3, rand.New(rand.NewSource(1)))
	if !errors.Is(err, ErrOddCellCount) {
		t.Errorf("expected ErrOddCellCount, got %v", err)
	}
}

func TestNewBoardInvalidDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 4}, {4, 0}, {-2, 4}} {
		if _, err := NewBoard(dims[0], dims[1], rand.New(rand.NewSource(1))); err == nil {
			t.Errorf("expected error for %dx%d board", dims[0], dims[1])
		}
	}
}

func TestNewBoardFromSymbols(t *testing.T) {
	board, err := NewBoardFromSymbols(2, 2, []int{0, 1, 1, 0})
	if err != nil {
		t.Fatalf("NewBoardFromSymbols: %v", err)
	}
	want := map[Position]int{
		{0, 0}: 0,
		{0, 1}: 1,
		{1, 0}: 1,
		{1, 1}: 0,
	}
	for pos, symbol := range want {
		if got := board.Symbol(pos); got != symbol {
			t.Errorf("Symbol(%v) = %d, want %d", pos, got, symbol)
		}
	}
}

func TestNewBoardFromSymbolsRejectsBadLayouts(t *testing.T) {
	tests := []struct {
		name    string
		symbols []int
	}{
		{"wrong length", []int{0, 1, 1}},
		{"symbol three times", []int{0, 0, 0, 1}},
		{"symbol out of range", []int{0, 0, 2, 2}},
	}
	for _, test := range tests {
		if _, err := NewBoardFromSymbols(2, 2, test.symbols); err == nil {
			t.Errorf("%s: expected error for %v", test.name, test.symbols)
		}
	}
}

func TestPositionsRowMajor(t *testing.T) {
	board, err := NewBoard(2, 3, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	positions := board.Positions()
	if len(positions) != 6 {
		t.Fatalf("expected 6 positions, got %d", len(positions))
	}
	for i, pos := range positions {
		if pos.Index(board.Cols) != i {
			t.Errorf("positions[%d] = %v, index %d", i, pos, pos.Index(board.Cols))
		}
		if PositionAt(i, board.Cols) != pos {
			t.Errorf("PositionAt(%d) = %v, want %v", i, PositionAt(i, board.Cols), pos)
		}
		if i > 0 && !positions[i-1].Less(pos) {
			t.Errorf("positions[%d] %v is not after %v", i, pos, positions[i-1])
		}
	}
}

func TestPositionLess(t *testing.T) {
	tests := []struct {
		p, q Position
		want bool
	}{
		{Position{0, 0}, Position{0, 1}, true},
		{Position{0, 5}, Position{1, 0}, true},
		{Position{1, 0}, Position{0, 5}, false},
		{Position{2, 3}, Position{2, 3}, false},
	}
	for _, test := range tests {
		if got := test.p.Less(test.q); got != test.want {
			t.Errorf("%v.Less(%v) = %v, want %v", test.p, test.q, got, test.want)
		}
	}
}
