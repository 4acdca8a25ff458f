// Package console is the line-oriented front end: prompts on one writer,
// answers read line by line from one reader.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/tatianab/rps-game/internal/engine"
)

var (
	bannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Border(lipgloss.DoubleBorder(), true, false).
			BorderForeground(lipgloss.Color("#5F5F87"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE")).
			Bold(true)
)

// Console implements engine.UI over plain streams. Lines are read by a
// background goroutine so Ask can give up on a cancelled context while the
// read is still blocked.
type Console struct {
	in    *bufio.Reader
	out   io.Writer
	once  sync.Once
	lines chan line
}

type line struct {
	text string
	err  error
}

func New(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

func (c *Console) Banner(title string) {
	fmt.Fprintln(c.out, bannerStyle.Render(title))
}

func (c *Console) Show(lines ...string) {
	for _, l := range lines {
		fmt.Fprintln(c.out, l)
	}
}

func (c *Console) Ask(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	// keep leading blank lines outside the style so they are not padded
	trimmed := strings.TrimLeft(prompt, "\n")
	fmt.Fprint(c.out, prompt[:len(prompt)-len(trimmed)])
	fmt.Fprintln(c.out, promptStyle.Render(trimmed))

	c.once.Do(func() {
		c.lines = make(chan line)
		go c.readLines()
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l, ok := <-c.lines:
		if !ok {
			return "", engine.ErrInputClosed
		}
		if l.err != nil {
			return "", fmt.Errorf("read input: %w", l.err)
		}
		return l.text, nil
	}
}

// readLines feeds c.lines until the input ends. A final line without a
// newline still counts.
func (c *Console) readLines() {
	defer close(c.lines)
	for {
		s, err := c.in.ReadString('\n')
		if err == nil || (s != "" && errors.Is(err, io.EOF)) {
			c.lines <- line{text: strings.TrimRight(s, "\r\n")}
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				c.lines <- line{err: err}
			}
			return
		}
	}
}
