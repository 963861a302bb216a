package searcher

import (
	"othello/game"
	"time"
)

// treeNode is a hand-built game tree. Moves are encoded as positions on the
// first row, one column per child.
type treeNode struct {
	name     string
	score    float64
	children []*treeNode
}

func leaf(name string, score float64) *treeNode {
	return &treeNode{name: name, score: score}
}

func node(name string, score float64, children ...*treeNode) *treeNode {
	return &treeNode{name: name, score: score, children: children}
}

// mockState walks a treeNode. Players alternate on every move.
type mockState struct {
	node   *treeNode
	player game.Color
}

func (m *mockState) Player() game.Color {
	return m.player
}

func (m *mockState) LegalMoves() []game.Position {
	moves := make([]game.Position, len(m.node.children))
	for i := range m.node.children {
		moves[i] = game.Position{Row: 0, Col: i}
	}
	return moves
}

func (m *mockState) Move(place game.Position) ([]game.Position, error) {
	if place.Row != 0 || place.Col < 0 || place.Col >= len(m.node.children) {
		return nil, game.ErrIllegalMove
	}
	m.node = m.node.children[place.Col]
	m.player = m.player.Opponent()
	return nil, nil
}

func (m *mockState) IsTerminal() bool {
	return len(m.node.children) == 0
}

func (m *mockState) Clone() game.State {
	clone := *m
	return &clone
}

// evaluateScore reads the node score from the root player's perspective.
func evaluateScore(s game.State, player game.Color) float64 {
	m := s.(*mockState)
	return m.node.score * float64(player.Sign())
}

// bookTree is the three-ply example with leaves {3,12,8 | 2,4,6 | 14,5,2}.
// The first-ply nodes carry their own static scores so depth-limited
// searches have something to compare.
func bookTree() *mockState {
	root := node("start", 0,
		node("a1", 10, leaf("b1", 3), leaf("b2", 12), leaf("b3", 8)),
		node("a2", 15, leaf("c1", 2), leaf("c2", 4), leaf("c3", 6)),
		node("a3", 4, leaf("d1", 14), leaf("d2", 5), leaf("d3", 2)),
	)
	return &mockState{node: root, player: game.White}
}

func nameOf(state *mockState, move game.Position) string {
	return state.node.children[move.Col].name
}

// fakeClock advances by step every time it is read.
type fakeClock struct {
	now  time.Time
	step time.Duration
}

func (c *fakeClock) read() time.Time {
	t := c.now
	c.now = c.now.Add(c.step)
	return t
}

func withClock(now func() time.Time) Option {
	return func(s *settings) {
		s.now = now
	}
}
