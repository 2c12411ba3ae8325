package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/bloops-games/sketchy/internal/bytespool"
	"github.com/bloops-games/sketchy/internal/game"
	"github.com/bloops-games/sketchy/internal/logging"
	"github.com/enescakir/emoji"
)

// console is a text surface that prints the captions of a frame only when
// they differ from the previous frame.
type console struct {
	mtx    sync.Mutex
	out    io.Writer
	layout game.Layout
	lines  []string
	last   string
}

var _ game.TextSurface = (*console)(nil)

func newConsole(out io.Writer, layout game.Layout) *console {
	return &console{out: out, layout: layout}
}

// TextWidth treats every rune as half an em wide.
func (c *console) TextWidth(text string, size float64) float64 {
	return float64(utf8.RuneCountInString(text)) * size / 2
}

func (c *console) DrawText(text string, _, x, _ float64) {
	// only the countdown is drawn against the left edge
	if x < c.layout.FontSize {
		text = fmt.Sprintf("%s %s", emoji.Stopwatch, text)
	}
	c.lines = append(c.lines, decorate(text))
}

func (c *console) Render(r game.Role) {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	c.lines = c.lines[:0]
	r.Render(c, c.layout)

	buf := bytespool.Get()
	defer bytespool.Put(buf)

	for _, l := range c.lines {
		buf.WriteString(l)
		buf.WriteByte('\n')
	}

	if frame := buf.String(); frame != c.last {
		c.last = frame
		_, _ = fmt.Fprintf(c.out, "----\n%s", frame)
	}
}

func decorate(text string) string {
	switch {
	case text == "You Win":
		return fmt.Sprintf("%s %s", emoji.Trophy, text)
	case text == "Time's Up":
		return fmt.Sprintf("%s %s", emoji.CrossMark, text)
	case text == "Pick Word", strings.HasPrefix(text, "Drawing "):
		return fmt.Sprintf("%s %s", emoji.Pen, text)
	case strings.HasPrefix(text, "Waiting for "):
		return fmt.Sprintf("%s %s", emoji.GameDie, text)
	default:
		return text
	}
}

// WordEditor is the part of the word bank an operator can change at runtime.
type WordEditor interface {
	Add(text string) error
	Remove(text string) error
	Words() []string
}

// readInput turns stdin lines into window events until r ends or ctx is
// done. Word bank commands are applied to words and reported on out. Lines
// that do not parse are logged and skipped.
func readInput(
	ctx context.Context,
	r io.Reader,
	out io.Writer,
	cellSize float64,
	words WordEditor,
	emit func(game.InputEvent),
) error {
	logger := logging.FromContext(ctx).Named("console.readInput")

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return nil
		}

		line := scanner.Text()
		ok, err := wordCommand(line, words, out)
		if err != nil {
			logger.Warnf("word command: %v", err)
			_, _ = fmt.Fprintf(out, "%s %v\n", emoji.CrossMark, err)
			continue
		}
		if ok {
			continue
		}

		events, err := parseLine(line, cellSize)
		if err != nil {
			logger.Warnf("skipping input: %v", err)
			continue
		}
		for _, e := range events {
			emit(e)
		}
	}

	return scanner.Err()
}

// wordCommand runs "/word <text>" and "/unword <text>". It reports false for
// any other line.
func wordCommand(line string, words WordEditor, out io.Writer) (bool, error) {
	cmd, text, _ := strings.Cut(strings.TrimSpace(line), " ")
	text = strings.TrimSpace(text)

	switch cmd {
	case "/word":
		if err := words.Add(text); err != nil {
			return true, fmt.Errorf("add %q: %w", text, err)
		}
		_, _ = fmt.Fprintf(out, "%s added %q, %d words in the bank\n", emoji.CheckMarkButton, text, len(words.Words()))
	case "/unword":
		if err := words.Remove(text); err != nil {
			return true, fmt.Errorf("remove %q: %w", text, err)
		}
		_, _ = fmt.Fprintf(out, "%s removed %q, %d words in the bank\n", emoji.CheckMarkButton, text, len(words.Words()))
	default:
		return false, nil
	}

	return true, nil
}

// parseLine understands:
//
//	/draw x1 y1 x2 y2   left drag between canvas cells
//	/dot x y            left click
//	/erase x y          right click
//	/back               backspace
//	/word, /unword      handled by wordCommand before parseLine
//	anything else       typed keys followed by enter
func parseLine(line string, cellSize float64) ([]game.InputEvent, error) {
	fields := strings.Fields(line)
	if len(fields) > 0 && strings.HasPrefix(fields[0], "/") {
		return parseCommand(fields, cellSize)
	}

	var events []game.InputEvent
	for _, r := range strings.TrimSpace(line) {
		switch {
		case r >= '0' && r <= '9':
			events = append(events, game.KeyNumber{N: uint8(r - '0')})
		case unicode.IsLetter(r) || r == ' ':
			events = append(events, game.KeyLetter{Letter: unicode.ToLower(r)})
		}
	}

	return append(events, game.KeyEnter{}), nil
}

func parseCommand(fields []string, cellSize float64) ([]game.InputEvent, error) {
	args := make([]float64, 0, len(fields)-1)
	for _, f := range fields[1:] {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: bad coordinate %q", fields[0], f)
		}
		// centre of the cell so the division lands inside it
		args = append(args, (v+0.5)*cellSize)
	}

	want := map[string]int{"/draw": 4, "/dot": 2, "/erase": 2, "/back": 0}
	n, ok := want[fields[0]]
	if !ok {
		return nil, fmt.Errorf("unknown command %s", fields[0])
	}
	if len(args) != n {
		return nil, fmt.Errorf("%s takes %d coordinates, got %d", fields[0], n, len(args))
	}

	switch fields[0] {
	case "/draw":
		return []game.InputEvent{
			game.CursorMoved{X: args[0], Y: args[1]},
			game.ButtonPressed{Button: game.MouseLeft},
			game.CursorMoved{X: args[2], Y: args[3]},
			game.ButtonReleased{Button: game.MouseLeft},
		}, nil
	case "/dot":
		return click(game.MouseLeft, args[0], args[1]), nil
	case "/erase":
		return click(game.MouseRight, args[0], args[1]), nil
	default:
		return []game.InputEvent{game.KeyBackspace{}}, nil
	}
}

func click(b game.MouseButton, x, y float64) []game.InputEvent {
	return []game.InputEvent{
		game.CursorMoved{X: x, Y: y},
		game.ButtonPressed{Button: b},
		game.ButtonReleased{Button: b},
	}
}
