package game

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

type drawCall struct {
	Text string
	X, Y float64
}

// monoSurface is a fixed-advance font: each rune is half the font size wide.
type monoSurface struct {
	calls []drawCall
}

func (s *monoSurface) TextWidth(text string, size float64) float64 {
	return float64(utf8.RuneCountInString(text)) * size / 2
}

func (s *monoSurface) DrawText(text string, _, x, y float64) {
	s.calls = append(s.calls, drawCall{Text: text, X: x, Y: y})
}

func (s *monoSurface) texts() []string {
	out := make([]string, 0, len(s.calls))
	for _, c := range s.calls {
		out = append(out, c.Text)
	}
	return out
}

var testLayout = Layout{CenterX: 400, FontSize: 20}

func TestDrawCenteredText(t *testing.T) {
	t.Parallel()

	s := &monoSurface{}
	DrawCenteredText(s, 20, "abcd", 400, 50)
	assert.Equal(t, []drawCall{{Text: "abcd", X: 380, Y: 50}}, s.calls)
}

func TestRender(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		role     Role
		expected []string
	}{
		{
			name:     "waiting",
			role:     NewWaiting("127.0.0.1:7878"),
			expected: []string{"Waiting for Connection...", "127.0.0.1:7878"},
		},
		{
			name:     "picking",
			role:     NewDrawer([]string{"tree", "book", "bike"}),
			expected: []string{"Pick Word", "[1] tree", "[2] book", "[3] bike"},
		},
		{
			name:     "drawing",
			role:     drawing("tree", 42),
			expected: []string{"Drawing 'tree'", "42"},
		},
		{
			name:     "drawer_won",
			role:     Role{Kind: RoleDrawer, Drawer: DrawerState{Phase: DrawerDone, Won: true}},
			expected: []string{"You Win", "[y] Play Again?"},
		},
		{
			name:     "drawer_lost",
			role:     Role{Kind: RoleDrawer, Drawer: DrawerState{Phase: DrawerDone}},
			expected: []string{"Time's Up", "[y] Play Again?"},
		},
		{
			name:     "waiting_for_drawer",
			role:     NewGuesser(),
			expected: []string{"Waiting for Drawer"},
		},
		{
			name:     "guessing",
			role:     guessing("___ _____", "ic"),
			expected: []string{"ic_ _____", "100"},
		},
		{
			name:     "guesser_lost",
			role:     Role{Kind: RoleGuesser, Guesser: GuesserState{Phase: GuesserDone, Word: "tree"}},
			expected: []string{"Time's Up", "'tree'"},
		},
		{
			name:     "guesser_won",
			role:     Role{Kind: RoleGuesser, Guesser: GuesserState{Phase: GuesserDone, Won: true, Word: "tree"}},
			expected: []string{"You Win", "'tree'"},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			s := &monoSurface{}
			tc.role.Render(s, testLayout)
			assert.Equal(t, tc.expected, s.texts())
		})
	}
}

func TestRenderPositions(t *testing.T) {
	t.Parallel()

	s := &monoSurface{}
	drawing("tree", 7).Render(s, testLayout)

	assert.Equal(t, []drawCall{
		{Text: "Drawing 'tree'", X: 330, Y: 50},
		{Text: "7", X: 10, Y: 30},
	}, s.calls)

	s = &monoSurface{}
	NewDrawer([]string{"a", "b"}).Render(s, testLayout)
	assert.Equal(t, 100.0, s.calls[1].Y)
	assert.Equal(t, 150.0, s.calls[2].Y)
}
