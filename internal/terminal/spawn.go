package terminal

import (
	"errors"
	"io"
	"os/exec"
	"sync"
)

// Exit codes for processes that never ran or were torn down by the session.
const (
	// ExitSpawnFailure marks a command that could not be started, mirroring
	// the shell's "command not found" convention.
	ExitSpawnFailure = 127
	// ExitKilled marks a process the session killed or abandoned.
	ExitKilled = -1
)

// SpawnSpec describes a child process to start.
type SpawnSpec struct {
	Name string
	Args []string
	Dir  string
	Env  []string
}

// Hooks receive a process's lifecycle events. Stdout/Stderr are called with
// incremental chunks as they arrive; Exit is called exactly once. Any hook
// may be nil.
type Hooks struct {
	Stdout func(chunk string)
	Stderr func(chunk string)
	Exit   func(code int)
}

// Process is a handle to a running child.
type Process interface {
	// Kill terminates the process immediately. It does not wait for the
	// OS to confirm termination.
	Kill()
}

// Spawner starts child processes. It is the session's only OS-facing
// dependency; tests substitute a scripted implementation.
type Spawner interface {
	Spawn(spec SpawnSpec, hooks Hooks) (Process, error)
}

// ExecSpawner runs commands through os/exec with piped stdout/stderr.
type ExecSpawner struct{}

func (ExecSpawner) Spawn(spec SpawnSpec, hooks Hooks) (Process, error) {
	cmd := exec.Command(spec.Name, spec.Args...)
	cmd.Dir = spec.Dir
	cmd.Env = spec.Env

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, err
	}
	if err := cmd.Start(); err != nil {
		return nil, err
	}

	var readers sync.WaitGroup
	readers.Add(2)
	go pump(stdout, hooks.Stdout, &readers)
	go pump(stderr, hooks.Stderr, &readers)
	go func() {
		// Drain both pipes before Wait closes them.
		readers.Wait()
		err := cmd.Wait()
		code := 0
		if err != nil {
			var ee *exec.ExitError
			if errors.As(err, &ee) {
				code = ee.ExitCode()
			} else {
				code = ExitKilled
			}
		}
		if hooks.Exit != nil {
			hooks.Exit(code)
		}
	}()
	return execProcess{cmd}, nil
}

// pump forwards reads from r to fn in small chunks until EOF or error.
func pump(r io.Reader, fn func(string), wg *sync.WaitGroup) {
	defer wg.Done()
	buf := make([]byte, 4096)
	for {
		n, err := r.Read(buf)
		if n > 0 && fn != nil {
			fn(string(buf[:n]))
		}
		if err != nil {
			return
		}
	}
}

type execProcess struct{ cmd *exec.Cmd }

func (p execProcess) Kill() {
	if p.cmd.Process != nil {
		_ = p.cmd.Process.Kill()
	}
}
