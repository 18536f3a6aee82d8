package stage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/mattn/go-isatty"
)

// ErrNotTerminal is returned when stdout is not attached to a terminal.
var ErrNotTerminal = errors.New("stage: stdout is not a terminal")

// Run drives m until it quits or ctx is cancelled.
func Run(ctx context.Context, m *Model) error {
	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return ErrNotTerminal
	}
	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("stage: %w", err)
	}
	return nil
}

// OpenLog returns a debug logger writing to path. An empty path discards
// everything. The caller closes the returned closer.
func OpenLog(path string) (*slog.Logger, io.Closer, error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), io.NopCloser(nil), nil
	}
	f, err := tea.LogToFile(path, "toast")
	if err != nil {
		return nil, nil, fmt.Errorf("stage: opening log %s: %w", path, err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, f, nil
}
