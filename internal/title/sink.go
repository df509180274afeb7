package title

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/muesli/termenv"
)

// Sink displays a title somewhere outside the rendered view.
type Sink interface {
	SetTitle(title string) error
}

type discard struct{}

func (discard) SetTitle(string) error { return nil }

// Discard drops every title.
var Discard Sink = discard{}

// Terminal sets the terminal window title with an OSC escape sequence.
type Terminal struct {
	out *termenv.Output
}

// NewTerminal returns a sink writing to w (usually os.Stdout).
func NewTerminal(w io.Writer) *Terminal {
	return &Terminal{out: termenv.NewOutput(w)}
}

// SetTitle implements Sink.
func (t *Terminal) SetTitle(title string) error {
	t.out.SetWindowTitle(title)
	return nil
}

// Tmux renames the tmux window the program runs in. Commands target the
// current window through $TMUX_PANE when set.
type Tmux struct {
	// Command builds the tmux invocation; tests replace it.
	Command func(args ...string) *exec.Cmd
}

// InTmux reports whether the process runs inside tmux.
func InTmux() bool {
	return os.Getenv("TMUX") != ""
}

// NewTmux returns a sink that shells out to tmux.
func NewTmux() *Tmux {
	return &Tmux{Command: func(args ...string) *exec.Cmd {
		return exec.Command("tmux", args...)
	}}
}

// SetTitle implements Sink.
func (t *Tmux) SetTitle(title string) error {
	args := []string{"rename-window"}
	if pane := os.Getenv("TMUX_PANE"); pane != "" {
		args = append(args, "-t", pane)
	}
	args = append(args, title)
	cmd := t.Command(args...)
	var out bytes.Buffer
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("tmux rename-window: %w: %s", err, strings.TrimSpace(out.String()))
	}
	return nil
}

// Multi writes to every sink and joins their errors.
type Multi []Sink

// SetTitle implements Sink.
func (m Multi) SetTitle(title string) error {
	var errs []error
	for _, s := range m {
		if err := s.SetTitle(title); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
