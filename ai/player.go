package ai

import (
	"pairsim/game"
)

// Player is a Concentration player with perfect recall: every symbol it has
// ever seen stays in memory for the rest of the game.
type Player struct {
	memory map[game.Position]int
}

// NewPlayer returns a player with empty memory.
func NewPlayer() *Player {
	return &Player{memory: make(map[game.Position]int)}
}

// Remember records the symbol seen at pos. Re-seeing a position is a no-op:
// a position's symbol never changes within a game, so the first recording
// stands.
func (p *Player) Remember(pos game.Position, symbol int) {
	if _, ok := p.memory[pos]; ok {
		return
	}
	p.memory[pos] = symbol
}

// Recall returns the symbol remembered at pos, if any.
func (p *Player) Recall(pos game.Position) (int, bool) {
	s, ok := p.memory[pos]
	return s, ok
}

// Known returns how many positions are in memory.
func (p *Player) Known() int {
	return len(p.memory)
}

// Turn is the pair of positions the player flips next. KnownMatch is set when
// both symbols are already in memory and equal, so the flip is guaranteed to
// match.
type Turn struct {
	First      game.Position
	Second     game.Position
	KnownMatch bool
}

// ChooseTurn picks the next two positions to flip, or reports false when the
// board is cleared. The choice is deterministic given current memory and the
// matched set: candidates are always scanned in row-major order.
//
// Priority: claim a remembered pair; otherwise explore the two lowest
// unrevealed positions; otherwise (a single unrevealed cell left) pair it
// with the lowest revealed unmatched position.
func (p *Player) ChooseTurn(board *game.Board, matched map[game.Position]struct{}) (Turn, bool) {
	if len(matched) >= board.TotalCards() {
		return Turn{}, false
	}

	unmatched := unmatchedPositions(board, matched)

	for _, pos := range unmatched {
		symbol, ok := p.memory[pos]
		if !ok {
			continue
		}
		if partner, found := p.findKnownMatch(symbol, pos, unmatched); found {
			return Turn{First: pos, Second: partner, KnownMatch: true}, true
		}
	}

	var unrevealed []game.Position
	for _, pos := range unmatched {
		if _, ok := p.memory[pos]; !ok {
			unrevealed = append(unrevealed, pos)
		}
	}

	if len(unrevealed) >= 2 {
		return Turn{First: unrevealed[0], Second: unrevealed[1]}, true
	}
	if len(unrevealed) == 1 {
		// Endgame: one never-seen cell left. Force a guess against the first
		// revealed unmatched position.
		for _, pos := range unmatched {
			if _, ok := p.memory[pos]; ok {
				return Turn{First: unrevealed[0], Second: pos}, true
			}
		}
	}

	// With >= 2 unmatched cells one of the branches above must fire; this is
	// the defensive no-move report for the game loop.
	return Turn{}, false
}

// findKnownMatch returns the first unmatched position other than self that is
// remembered with the same symbol, scanning in row-major order.
func (p *Player) findKnownMatch(symbol int, self game.Position, unmatched []game.Position) (game.Position, bool) {
	for _, pos := range unmatched {
		if pos == self {
			continue
		}
		if s, ok := p.memory[pos]; ok && s == symbol {
			return pos, true
		}
	}
	return game.Position{}, false
}

// unmatchedPositions returns all positions not yet matched, in row-major order.
func unmatchedPositions(board *game.Board, matched map[game.Position]struct{}) []game.Position {
	out := make([]game.Position, 0, board.TotalCards()-len(matched))
	for _, pos := range board.Positions() {
		if _, ok := matched[pos]; !ok {
			out = append(out, pos)
		}
	}
	return out
}
