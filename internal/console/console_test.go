package console

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tatianab/rps-game/internal/engine"
	"github.com/tatianab/rps-game/internal/models"
	"github.com/tatianab/rps-game/internal/rules"
)

func TestAskReadsLines(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader("Alice\r\nrock\n"), &out)

	name, err := c.Ask(context.Background(), "Enter your name:")
	require.NoError(t, err)
	assert.Equal(t, "Alice", name)

	choice, err := c.Ask(context.Background(), "\nChoose:")
	require.NoError(t, err)
	assert.Equal(t, "rock", choice)

	_, err = c.Ask(context.Background(), "again?")
	require.ErrorIs(t, err, engine.ErrInputClosed)

	assert.Contains(t, out.String(), "Enter your name:")
	assert.Contains(t, out.String(), "\nChoose:")
}

func TestAskHonoursContext(t *testing.T) {
	c := New(strings.NewReader("Alice\n"), &bytes.Buffer{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Ask(ctx, "Enter your name:")
	require.ErrorIs(t, err, context.Canceled)
}

func TestAskReturnsWhenCancelledWhileWaiting(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	c := New(pr, io.Discard)

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() {
		_, err := c.Ask(ctx, "Enter your name:")
		errc <- err
	}()

	// give Ask time to block on the pipe
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-errc:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Ask still blocked after the context was cancelled")
	}
}

func TestAskAcceptsLongLines(t *testing.T) {
	long := strings.Repeat("x", 200*1024)
	c := New(strings.NewReader(long+"\nrock"), io.Discard)

	got, err := c.Ask(context.Background(), "Choose:")
	require.NoError(t, err)
	assert.Len(t, got, len(long))

	// last line has no trailing newline
	got, err = c.Ask(context.Background(), "Choose:")
	require.NoError(t, err)
	assert.Equal(t, "rock", got)

	_, err = c.Ask(context.Background(), "Choose:")
	require.ErrorIs(t, err, engine.ErrInputClosed)
}

func TestConsoleGame(t *testing.T) {
	var out, history bytes.Buffer
	c := New(strings.NewReader("Alice\nbanana\nrock\n"), &out)

	s, err := engine.NewGame(rules.RPSLS(),
		engine.WithRoundsToWin(1),
		engine.WithPolicy(engine.FixedPolicy(rules.Scissors)))
	require.NoError(t, err)

	report, err := s.Play(context.Background(), c, models.WriterSink{W: &history})
	require.NoError(t, err)
	assert.True(t, report.PlayerWon)
	assert.Equal(t, "Alice wins this round!", history.String())

	text := out.String()
	assert.Contains(t, text, "Welcome to Rock, Paper, Scissors, Lizard, Spock!")
	assert.Contains(t, text, "Invalid choice.")
	assert.Contains(t, text, "Congratulations, Alice! You win the game!")
	assert.Contains(t, text, "Thanks for playing!")
}
