package game

import "fmt"

// Position identifies a cell on the board by row and column.
// Positions are the identity used for memory and match tracking;
// enumeration order is row-major (row first, then column, ascending).
type Position struct {
	Row int
	Col int
}

// Index returns the row-major index of p on a board with cols columns.
func (p Position) Index(cols int) int {
	return p.Row*cols + p.Col
}

// PositionAt returns the Position for a row-major index on a board with cols columns.
func PositionAt(index, cols int) Position {
	return Position{Row: index / cols, Col: index % cols}
}

// Less reports whether p comes before q in row-major order.
func (p Position) Less(q Position) bool {
	if p.Row != q.Row {
		return p.Row < q.Row
	}
	return p.Col < q.Col
}

// String returns "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}
