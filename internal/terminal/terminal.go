// Package terminal models one interactive command session: it owns a single
// spawned process, accumulates its decoded output, and renders bounded
// status and output views for a host to display.
package terminal

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"runpad/internal/ansitext"
	"runpad/internal/cmdline"
	"runpad/internal/highlight"
)

// Settings are read accessors injected by the host. They are polled on
// every Status/Output call, so host-side changes apply on the next render.
type Settings interface {
	// MaxOutputLines is the folded display line cap, at least 1.
	MaxOutputLines() int
}

// Events are callbacks into the host. OnStateChange fires when a run starts
// or finishes and when the fold state flips; OnOutput fires per decoded
// chunk; OnRuntimeUpdate fires once per second while a process runs and may
// race with exit, so consumers should render current state rather than
// trust the trigger. Any callback may be nil.
type Events struct {
	OnOutput        func()
	OnStateChange   func()
	OnRuntimeUpdate func()
}

// proc is one process record. Records are created by Run, never reused;
// a superseded record is forcibly finished and abandoned.
type proc struct {
	command string
	handle  Process

	start time.Time
	end   time.Time

	exitCode int
	exited   bool

	stdout ansitext.Text
	stderr ansitext.Text

	done     chan struct{} // closed exactly once, on finish
	stopTick chan struct{} // closed exactly once, tears down the ticker
}

// Terminal is a single-command session. At most one process is attached at
// a time; starting a new command kills and replaces the old one.
//
// All state is guarded by mu. Stream readers, the runtime ticker and the
// exit watcher serialize through it; event callbacks fire outside the lock.
type Terminal struct {
	mu       sync.Mutex
	spawner  Spawner
	settings Settings
	events   Events
	dir      string

	folded bool
	proc   *proc
}

// New builds a session rooted at dir. Output starts folded.
func New(spawner Spawner, settings Settings, events Events, dir string) *Terminal {
	return &Terminal{
		spawner:  spawner,
		settings: settings,
		events:   events,
		dir:      dir,
		folded:   true,
	}
}

func fire(fn func()) {
	if fn != nil {
		fn()
	}
}

// Run starts command, killing and replacing any attached process first.
// The old process is finished synchronously with ExitKilled and abandoned;
// its late callbacks are dropped by identity. A command with zero tokens
// clears the old process and spawns nothing. Spawn failures are captured as
// synthetic stderr plus ExitSpawnFailure, never returned to the caller.
func (t *Terminal) Run(command string) {
	t.mu.Lock()
	if old := t.proc; old != nil && !old.exited {
		if old.handle != nil {
			old.handle.Kill()
		}
		t.finishLocked(old, ExitKilled)
	}
	t.proc = nil
	t.folded = true

	tokens := cmdline.Parse(command).Tokens
	if len(tokens) == 0 {
		t.mu.Unlock()
		fire(t.events.OnStateChange)
		return
	}

	p := &proc{
		command:  command,
		start:    time.Now(),
		exitCode: ExitKilled,
		done:     make(chan struct{}),
		stopTick: make(chan struct{}),
	}
	t.proc = p

	spec := SpawnSpec{
		Name: tokens[0],
		Args: tokens[1:],
		Dir:  t.dir,
		// Children write to pipes; ask the usual suspects for color anyway.
		Env: append(os.Environ(), "FORCE_COLOR=1", "CLICOLOR_FORCE=1"),
	}
	hooks := Hooks{
		Stdout: func(chunk string) { t.appendChunk(p, &p.stdout, chunk) },
		Stderr: func(chunk string) { t.appendChunk(p, &p.stderr, chunk) },
		Exit:   func(code int) { t.processExit(p, code) },
	}
	handle, err := t.spawner.Spawn(spec, hooks)
	if err != nil {
		p.stderr.Append(fmt.Sprintf("%s: %v\n", tokens[0], err))
		t.finishLocked(p, ExitSpawnFailure)
	} else {
		p.handle = handle
		go t.runTicker(p)
	}
	t.mu.Unlock()
	fire(t.events.OnStateChange)
}

// appendChunk ingests one stream chunk for p. Chunks from a replaced
// process record are dropped.
func (t *Terminal) appendChunk(p *proc, stream *ansitext.Text, chunk string) {
	t.mu.Lock()
	if t.proc != p {
		t.mu.Unlock()
		return
	}
	stream.Append(chunk)
	t.mu.Unlock()
	fire(t.events.OnOutput)
}

// processExit handles the spawner's exit event. Guarded so a second
// exit-like event after the first does nothing.
func (t *Terminal) processExit(p *proc, code int) {
	t.mu.Lock()
	if p.exited {
		t.mu.Unlock()
		return
	}
	t.finishLocked(p, code)
	current := t.proc == p
	t.mu.Unlock()
	if current {
		fire(t.events.OnStateChange)
	}
}

// finishLocked records p's exit and releases its ticker and waiters.
// Idempotent; callers hold mu and fire OnStateChange themselves.
func (t *Terminal) finishLocked(p *proc, code int) {
	if p.exited {
		return
	}
	p.exited = true
	p.exitCode = code
	p.end = time.Now()
	close(p.stopTick)
	close(p.done)
}

// runTicker fires OnRuntimeUpdate once per second while p runs, for live
// elapsed-time display.
func (t *Terminal) runTicker(p *proc) {
	tick := time.NewTicker(time.Second)
	defer tick.Stop()
	for {
		select {
		case <-p.stopTick:
			return
		case <-tick.C:
			fire(t.events.OnRuntimeUpdate)
		}
	}
}

// Kill terminates the attached process, if any, without starting a new one.
func (t *Terminal) Kill() {
	t.mu.Lock()
	p := t.proc
	if p == nil || p.exited {
		t.mu.Unlock()
		return
	}
	if p.handle != nil {
		p.handle.Kill()
	}
	t.finishLocked(p, ExitKilled)
	t.mu.Unlock()
	fire(t.events.OnStateChange)
}

// IsRunning reports whether a process is attached and has not exited.
func (t *Terminal) IsRunning() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.proc != nil && !t.proc.exited
}

// IsFolded reports the current display mode.
func (t *Terminal) IsFolded() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.folded
}

// ToggleFold flips between the clamped and full output views.
func (t *Terminal) ToggleFold() {
	t.mu.Lock()
	t.folded = !t.folded
	t.mu.Unlock()
	fire(t.events.OnStateChange)
}

// Command returns the command string of the attached process, if any.
func (t *Terminal) Command() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.proc == nil {
		return ""
	}
	return t.proc.command
}

// ExitCode returns the exit code of the attached process and whether it has
// exited yet.
func (t *Terminal) ExitCode() (int, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.proc == nil || !t.proc.exited {
		return 0, false
	}
	return t.proc.exitCode, true
}

// WaitForCompletion blocks until the attached process finishes. It returns
// immediately when no process is attached or it already exited. This exists
// for tests and orchestration, not the render path.
func (t *Terminal) WaitForCompletion() {
	t.mu.Lock()
	p := t.proc
	t.mu.Unlock()
	if p == nil {
		return
	}
	<-p.done
}

// maxLinesLocked polls the injected line cap, clamped to at least 1.
func (t *Terminal) maxLinesLocked() int {
	n := t.settings.MaxOutputLines()
	if n < 1 {
		n = 1
	}
	return n
}

// Status renders the session's one-line state summary.
//
// With no process: "= =". Otherwise "= time: <runtime><status> <ellipsis>="
// where <status> is " status: <code>" once the process exited and
// <ellipsis> is "..." when the combined output exceeds the line cap or the
// raw capture was truncated, regardless of fold state.
func (t *Terminal) Status() highlight.Text {
	t.mu.Lock()
	defer t.mu.Unlock()

	var b highlight.Builder
	b.AppendTagged("=", highlight.TagPunctuation)
	p := t.proc
	if p == nil {
		b.Append(" ")
		b.AppendTagged("=", highlight.TagPunctuation)
		return b.Result()
	}

	b.Append(" ")
	b.AppendTagged("time:", highlight.TagKeyword)
	b.Append(" ")
	b.AppendTagged(formatRuntime(t.elapsedLocked(p)), highlight.TagTime)
	if p.exited {
		b.Append(" ")
		b.AppendTagged("status:", highlight.TagKeyword)
		b.Append(" ")
		tag := highlight.TagStatusOK
		if p.exitCode != 0 {
			tag = highlight.TagStatusErr
		}
		b.AppendTagged(strconv.Itoa(p.exitCode), tag)
	}
	b.Append(" ")
	if t.overflowsLocked(p) {
		b.Append("...")
	}
	b.AppendTagged("=", highlight.TagPunctuation)
	return b.Result()
}

func (t *Terminal) elapsedLocked(p *proc) time.Duration {
	end := p.end
	if !p.exited {
		end = time.Now()
	}
	return end.Sub(p.start)
}

// formatRuntime renders whole seconds, switching to "Mm Ss" at a minute.
func formatRuntime(d time.Duration) string {
	secs := int(d.Seconds())
	if secs < 0 {
		secs = 0
	}
	if secs < 60 {
		return fmt.Sprintf("%ds", secs)
	}
	return fmt.Sprintf("%dm %ds", secs/60, secs%60)
}

// overflowsLocked reports whether the full output would be clamped.
func (t *Terminal) overflowsLocked(p *proc) bool {
	if p.stdout.Truncated() || p.stderr.Truncated() {
		return true
	}
	text := p.stdout.String() + p.stderr.String()
	return tailStart(text, t.maxLinesLocked()) > 0
}

// Output renders the combined decoded output: stdout first, then stderr,
// with stderr's ranges offset by stdout's length. Stdout-first is a
// deliberate simplification; the streams are not chronologically merged.
// When folded, only the last maxOutputLines lines are returned: ranges
// starting before the cut are dropped and the rest shifted down.
func (t *Terminal) Output() highlight.Text {
	t.mu.Lock()
	defer t.mu.Unlock()
	p := t.proc
	if p == nil {
		return highlight.Text{}
	}

	outText := p.stdout.String()
	text := outText + p.stderr.String()
	ranges := make([]highlight.Range, 0, len(p.stdout.Ranges())+len(p.stderr.Ranges()))
	ranges = append(ranges, p.stdout.Ranges()...)
	for _, r := range p.stderr.Ranges() {
		r.Start += len(outText)
		r.End += len(outText)
		ranges = append(ranges, r)
	}
	if !t.folded {
		return highlight.Text{Text: text, Ranges: ranges}
	}

	cut := tailStart(text, t.maxLinesLocked())
	if cut == 0 {
		return highlight.Text{Text: text, Ranges: ranges}
	}
	kept := ranges[:0]
	for _, r := range ranges {
		if r.Start < cut {
			continue
		}
		r.Start -= cut
		r.End -= cut
		kept = append(kept, r)
	}
	return highlight.Text{Text: text[cut:], Ranges: kept}
}

// tailStart returns the byte offset of the start of the last max lines of
// text, or 0 when text fits. A trailing newline does not count as a line.
func tailStart(text string, max int) int {
	if text == "" {
		return 0
	}
	i := len(text)
	if text[i-1] == '\n' {
		i--
	}
	for n := 0; n < max; n++ {
		j := strings.LastIndexByte(text[:i], '\n')
		if j < 0 {
			return 0
		}
		i = j
	}
	return i + 1
}
