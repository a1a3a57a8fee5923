package sim

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"pairsim/ai"
	"pairsim/game"
)

// maxTurns is a defensive cap on the game loop. Under the policy invariants a
// game finishes well before this; hitting the cap means a policy defect and
// is logged as anomalous rather than treated as an error.
const maxTurns = 1000

// Result holds the final counters of one simulated game.
//
// Moves counts turns where the two flipped symbols differed (wrong guesses) —
// the scalar the batch runner aggregates. PerfectMatches are matches claimed
// from memory, LuckyMatches are accidental matches while exploring.
type Result struct {
	GameID           string
	Rows             int
	Cols             int
	Moves            int
	PerfectMatches   int
	LuckyMatches     int
	ExploratoryMoves int
	Turns            int
	Completed        bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithSeed makes the board shuffle deterministic.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLogger sets the logger used for per-turn narrative (debug level) and
// anomaly warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.log = logger
	}
}

// Engine simulates one full game of Concentration played by a perfect-memory
// player. An engine owns its board, player memory and counters exclusively;
// it is single-use and not safe for concurrent use.
type Engine struct {
	id      string
	board   *game.Board
	player  *ai.Player
	matched map[game.Position]struct{}

	moves            int
	perfectMatches   int
	luckyMatches     int
	exploratoryMoves int

	rng *rand.Rand
	log *slog.Logger
}

// New creates an engine with a freshly shuffled rows x cols board. The cell
// count must be even.
func New(rows, cols int, opts ...Option) (*Engine, error) {
	e := newEngine(opts)
	board, err := game.NewBoard(rows, cols, e.rng)
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	e.board = board
	return e, nil
}

// NewFromBoard creates an engine that replays the given deal. Used for traces
// and tests where the layout must be exact.
func NewFromBoard(board *game.Board, opts ...Option) *Engine {
	e := newEngine(opts)
	e.board = board
	return e
}

func newEngine(opts []Option) *Engine {
	e := &Engine{
		id:      uuid.NewString(),
		player:  ai.NewPlayer(),
		matched: make(map[game.Position]struct{}),
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return e
}

// GameID returns the engine's correlation ID, present on every log line it
// emits.
func (e *Engine) GameID() string {
	return e.id
}

// Board returns the deal this engine plays.
func (e *Engine) Board() *game.Board {
	return e.board
}

// Play runs the game to completion and returns the final counters. The only
// abnormal exit is the defensive turn cap (Completed=false), which is logged
// and never expected to trigger.
func (e *Engine) Play() Result {
	e.log.Debug("starting game",
		"tag", "sim", "game", e.id,
		"rows", e.board.Rows, "cols", e.board.Cols, "pairs", e.board.Pairs())

	for turn := 0; turn < maxTurns; turn++ {
		choice, ok := e.player.ChooseTurn(e.board, e.matched)
		if !ok {
			if len(e.matched) != e.board.TotalCards() {
				// Unreachable under the policy invariants.
				e.log.Warn("no move available before board was cleared",
					"tag", "sim", "game", e.id,
					"matched", len(e.matched), "total", e.board.TotalCards())
				return e.result(false)
			}
			e.log.Debug("game complete",
				"tag", "sim", "game", e.id,
				"moves", e.moves, "perfect", e.perfectMatches, "lucky", e.luckyMatches)
			return e.result(true)
		}
		e.playTurn(choice)
	}

	e.log.Warn("turn limit reached", "tag", "sim", "game", e.id, "limit", maxTurns)
	return e.result(false)
}

// playTurn flips the chosen pair, records both symbols in memory and updates
// the matched set and counters.
func (e *Engine) playTurn(t ai.Turn) {
	s1 := e.board.Symbol(t.First)
	s2 := e.board.Symbol(t.Second)
	e.player.Remember(t.First, s1)
	e.player.Remember(t.Second, s2)

	if s1 == s2 {
		e.matched[t.First] = struct{}{}
		e.matched[t.Second] = struct{}{}
		if t.KnownMatch {
			e.perfectMatches++
			e.log.Debug("perfect match",
				"tag", "sim", "game", e.id,
				"first", t.First, "second", t.Second, "symbol", s1)
		} else {
			e.luckyMatches++
			e.log.Debug("lucky match",
				"tag", "sim", "game", e.id,
				"first", t.First, "second", t.Second, "symbol", s1)
		}
		return
	}

	e.moves++
	e.exploratoryMoves++
	e.log.Debug("no match",
		"tag", "sim", "game", e.id,
		"first", t.First, "firstSymbol", s1,
		"second", t.Second, "secondSymbol", s2)
}

func (e *Engine) result(completed bool) Result {
	return Result{
		GameID:           e.id,
		Rows:             e.board.Rows,
		Cols:             e.board.Cols,
		Moves:            e.moves,
		PerfectMatches:   e.perfectMatches,
		LuckyMatches:     e.luckyMatches,
		ExploratoryMoves: e.exploratoryMoves,
		Turns:            e.moves + e.perfectMatches + e.luckyMatches,
		Completed:        completed,
	}
}
