package game

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrOddCellCount is returned when rows*cols is odd; such a board cannot be
// fully paired.
var ErrOddCellCount = errors.New("board cell count must be even")

// Board is a rectangular grid of cells, each holding one symbol in
// [0, Pairs()). Every symbol appears in exactly two cells. A board is
// immutable for the lifetime of one game.
type Board struct {
	Rows int
	Cols int

	symbols []int // row-major
}

// NewBoard creates a freshly shuffled board. Shuffling uses the given rng so
// games are reproducible under a fixed seed. All permutations of the pair
// sequence are equally likely.
func NewBoard(rows, cols int, rng *rand.Rand) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("invalid board dimensions %dx%d", rows, cols)
	}
	total := rows * cols
	if total%2 != 0 {
		return nil, fmt.Errorf("%dx%d board: %w", rows, cols, ErrOddCellCount)
	}

	// Two cells for each symbol, then a uniform shuffle.
	symbols := make([]int, total)
	for i := 0; i < total/2; i++ {
		symbols[2*i] = i
		symbols[2*i+1] = i
	}
	rng.Shuffle(total, func(i, j int) {
		symbols[i], symbols[j] = symbols[j], symbols[i]
	})

	return &Board{Rows: rows, Cols: cols, symbols: symbols}, nil
}

// NewBoardFromSymbols creates a board with an explicit row-major symbol
// layout. Used to replay a known deal. The layout must contain exactly two
// occurrences of each symbol in [0, len(symbols)/2).
func NewBoardFromSymbols(rows, cols int, symbols []int) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("invalid board dimensions %dx%d", rows, cols)
	}
	total := rows * cols
	if total%2 != 0 {
		return nil, fmt.Errorf("%dx%d board: %w", rows, cols, ErrOddCellCount)
	}
	if len(symbols) != total {
		return nil, fmt.Errorf("need %d symbols for a %dx%d board, got %d", total, rows, cols, len(symbols))
	}
	counts := make(map[int]int, total/2)
	for _, s := range symbols {
		if s < 0 || s >= total/2 {
			return nil, fmt.Errorf("symbol %d out of range [0,%d)", s, total/2)
		}
		counts[s]++
	}
	for s, n := range counts {
		if n != 2 {
			return nil, fmt.Errorf("symbol %d appears %d times, want 2", s, n)
		}
	}
	laid := make([]int, total)
	copy(laid, symbols)
	return &Board{Rows: rows, Cols: cols, symbols: laid}, nil
}

// TotalCards returns the number of cells on the board.
func (b *Board) TotalCards() int {
	return b.Rows * b.Cols
}

// Pairs returns the number of distinct symbols on the board.
func (b *Board) Pairs() int {
	return b.TotalCards() / 2
}

// Symbol returns the symbol at pos. The caller must pass a valid position.
func (b *Board) Symbol(pos Position) int {
	return b.symbols[pos.Index(b.Cols)]
}

// Positions returns every cell position in row-major order.
func (b *Board) Positions() []Position {
	out := make([]Position, 0, b.TotalCards())
	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			out = append(out, Position{Row: r, Col: c})
		}
	}
	return out
}
