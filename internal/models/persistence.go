package models

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrPersistence wraps every failure to write a history sink.
var ErrPersistence = errors.New("failed to persist history")

// DefaultHistoryFile is the history file name used when none is configured.
const DefaultHistoryFile = "game_history.txt"

// Sink receives the history of a finished session.
type Sink interface {
	WriteLines(lines []string) error
}

// FileSink overwrites a file with the history. The write goes through a
// temporary file and a rename so a failed write never truncates the old file.
type FileSink struct {
	Path string
}

func (s FileSink) WriteLines(lines []string) error {
	if err := atomicWriteFile(s.Path, []byte(strings.Join(lines, "\n")), 0644); err != nil {
		return fmt.Errorf("%w to %s: %w", ErrPersistence, s.Path, err)
	}
	return nil
}

func (s FileSink) String() string { return s.Path }

// WriterSink writes the history to an io.Writer.
type WriterSink struct {
	W io.Writer
}

func (s WriterSink) WriteLines(lines []string) error {
	if _, err := io.WriteString(s.W, strings.Join(lines, "\n")); err != nil {
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return nil
}

// SessionPath returns where a session's history goes. With perSession set, the
// session ID is inserted before the extension: game_history-<id>.txt.
func SessionPath(dir, file, sessionID string, perSession bool) string {
	if file == "" {
		file = DefaultHistoryFile
	}
	if perSession && sessionID != "" {
		ext := filepath.Ext(file)
		file = strings.TrimSuffix(file, ext) + "-" + sessionID + ext
	}
	return filepath.Join(dir, file)
}

func atomicWriteFile(filename string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-history-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	var success bool
	defer func() {
		if !success {
			os.Remove(tmp.Name())
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), perm); err != nil {
		return fmt.Errorf("failed to chmod temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), filename); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	success = true
	return nil
}
