package terminal

import (
	"context"
	"errors"
	"os/exec"

	"github.com/charmbracelet/x/xpty"
)

// PtySpawner runs commands on a pseudo-terminal, for tools that only emit
// colors or progress output when they see a tty. The pty merges the child's
// streams, so everything is delivered through the Stdout hook.
type PtySpawner struct {
	Cols int
	Rows int
}

func (s PtySpawner) Spawn(spec SpawnSpec, hooks Hooks) (Process, error) {
	cols, rows := s.Cols, s.Rows
	if cols <= 0 {
		cols = 80
	}
	if rows <= 0 {
		rows = 24
	}
	p, err := xpty.NewPty(cols, rows)
	if err != nil {
		return nil, err
	}
	cmd := exec.Command(spec.Name, spec.Args...)
	cmd.Dir = spec.Dir
	cmd.Env = spec.Env
	if err := p.Start(cmd); err != nil {
		_ = p.Close()
		return nil, err
	}

	readerDone := make(chan struct{})
	go func() {
		defer close(readerDone)
		buf := make([]byte, 4096)
		for {
			n, err := p.Read(buf)
			if n > 0 && hooks.Stdout != nil {
				hooks.Stdout(string(buf[:n]))
			}
			if err != nil {
				return
			}
		}
	}()
	go func() {
		code := 0
		if err := xpty.WaitProcess(context.Background(), cmd); err != nil {
			var ee *exec.ExitError
			if errors.As(err, &ee) {
				code = ee.ExitCode()
			} else {
				code = ExitKilled
			}
		}
		// Closing the pty unblocks the reader; wait so the final chunk is
		// delivered before the exit event.
		_ = p.Close()
		<-readerDone
		if hooks.Exit != nil {
			hooks.Exit(code)
		}
	}()
	return execProcess{cmd}, nil
}
