package terminal

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"testing"
	"time"

	"runpad/internal/highlight"
)

// fixedSettings is a Settings stub with a constant line cap.
type fixedSettings int

func (s fixedSettings) MaxOutputLines() int { return int(s) }

// fakeHandle is a scripted child process driven directly by tests.
type fakeHandle struct {
	spec   SpawnSpec
	hooks  Hooks
	killed bool
}

func (h *fakeHandle) Kill() { h.killed = true }

type fakeSpawner struct {
	spawned []*fakeHandle
	err     error
}

func (s *fakeSpawner) Spawn(spec SpawnSpec, hooks Hooks) (Process, error) {
	if s.err != nil {
		return nil, s.err
	}
	h := &fakeHandle{spec: spec, hooks: hooks}
	s.spawned = append(s.spawned, h)
	return h, nil
}

func (s *fakeSpawner) last(t *testing.T) *fakeHandle {
	t.Helper()
	if len(s.spawned) == 0 {
		t.Fatal("no process spawned")
	}
	return s.spawned[len(s.spawned)-1]
}

func newTestTerminal(maxLines int) (*Terminal, *fakeSpawner) {
	sp := &fakeSpawner{}
	return New(sp, fixedSettings(maxLines), Events{}, "/tmp"), sp
}

func punctRanges(ranges []highlight.Range) []highlight.Range {
	var out []highlight.Range
	for _, r := range ranges {
		if r.Tag == highlight.TagPunctuation {
			out = append(out, r)
		}
	}
	return out
}

func TestStatusNoProcess(t *testing.T) {
	term, _ := newTestTerminal(40)
	st := term.Status()
	if st.Text != "= =" {
		t.Fatalf("status = %q, want %q", st.Text, "= =")
	}
	puncts := punctRanges(st.Ranges)
	if len(puncts) != 2 {
		t.Fatalf("punctuation ranges = %v, want 2", puncts)
	}
	if puncts[0].Start != 0 || puncts[0].End != 1 || puncts[1].Start != 2 || puncts[1].End != 3 {
		t.Fatalf("punctuation offsets wrong: %v", puncts)
	}
}

func TestStatusRunningThenCompleted(t *testing.T) {
	term, sp := newTestTerminal(40)
	term.Run("echo x")
	h := sp.last(t)

	if !term.IsRunning() {
		t.Fatal("expected running")
	}
	running := term.Status().Text
	if !regexp.MustCompile(`^= time: \d+s =$`).MatchString(running) {
		t.Fatalf("running status = %q", running)
	}

	h.hooks.Stdout("x\n")
	h.hooks.Exit(0)
	if term.IsRunning() {
		t.Fatal("still running after exit")
	}
	done := term.Status()
	if !regexp.MustCompile(`^= time: \d+s status: 0 =$`).MatchString(done.Text) {
		t.Fatalf("completed status = %q", done.Text)
	}

	// Each segment's range must cover its exact substring.
	for _, r := range done.Ranges {
		sub := done.Text[r.Start:r.End]
		switch r.Tag {
		case highlight.TagKeyword:
			if sub != "time:" && sub != "status:" {
				t.Errorf("keyword range covers %q", sub)
			}
		case highlight.TagTime:
			if !regexp.MustCompile(`^\d+s$`).MatchString(sub) {
				t.Errorf("time range covers %q", sub)
			}
		case highlight.TagStatusOK:
			if sub != "0" {
				t.Errorf("status_ok range covers %q", sub)
			}
		case highlight.TagPunctuation:
			if sub != "=" {
				t.Errorf("punctuation range covers %q", sub)
			}
		default:
			t.Errorf("unexpected tag %q", r.Tag)
		}
	}
}

func TestStatusFailureUsesErrTag(t *testing.T) {
	term, sp := newTestTerminal(40)
	term.Run("false")
	sp.last(t).hooks.Exit(2)
	st := term.Status()
	if !strings.Contains(st.Text, "status: 2") {
		t.Fatalf("status = %q", st.Text)
	}
	found := false
	for _, r := range st.Ranges {
		if r.Tag == highlight.TagStatusErr && st.Text[r.Start:r.End] == "2" {
			found = true
		}
	}
	if !found {
		t.Fatalf("no status_err range over exit code: %v", st.Ranges)
	}
}

func TestOutputFoldingEndToEnd(t *testing.T) {
	term, sp := newTestTerminal(2)
	term.Run("produce lines")
	h := sp.last(t)
	h.hooks.Stdout("one\ntwo\nthree\nfour\nfive\n")
	h.hooks.Exit(0)

	if !term.IsFolded() {
		t.Fatal("new runs must start folded")
	}
	folded := term.Output().Text
	if folded != "four\nfive\n" {
		t.Fatalf("folded output = %q, want last 2 lines", folded)
	}
	if !strings.Contains(term.Status().Text, "...") {
		t.Fatalf("status %q should flag truncation", term.Status().Text)
	}

	term.ToggleFold()
	full := term.Output().Text
	if full != "one\ntwo\nthree\nfour\nfive\n" {
		t.Fatalf("unfolded output = %q", full)
	}
	// Size check is independent of fold state.
	if !strings.Contains(term.Status().Text, "...") {
		t.Fatalf("status %q lost truncation flag after unfold", term.Status().Text)
	}

	term.ToggleFold()
	if got := term.Output().Text; got != folded {
		t.Fatalf("refolded output = %q, want %q", got, folded)
	}
}

func TestFoldedRangesShifted(t *testing.T) {
	term, sp := newTestTerminal(1)
	term.Run("colors")
	h := sp.last(t)
	h.hooks.Stdout("\x1b[31mearly\x1b[0m\n\x1b[32mlate\x1b[0m")
	h.hooks.Exit(0)

	out := term.Output()
	if out.Text != "late" {
		t.Fatalf("folded text = %q", out.Text)
	}
	if len(out.Ranges) != 1 {
		t.Fatalf("ranges = %v, want the shifted green range only", out.Ranges)
	}
	r := out.Ranges[0]
	if r.Tag != highlight.TagANSIGreen || out.Text[r.Start:r.End] != "late" {
		t.Fatalf("range = %+v", r)
	}
}

func TestStderrRangesOffsetByStdout(t *testing.T) {
	term, sp := newTestTerminal(40)
	term.Run("mixed")
	h := sp.last(t)
	h.hooks.Stdout("out line\n")
	h.hooks.Stderr("error: bad\n")
	h.hooks.Exit(1)

	out := term.Output()
	if out.Text != "out line\nerror: bad\n" {
		t.Fatalf("text = %q", out.Text)
	}
	found := false
	for _, r := range out.Ranges {
		if r.Tag == highlight.TagError {
			if got := out.Text[r.Start:r.End]; got != "error:" {
				t.Fatalf("error range covers %q", got)
			}
			found = true
		}
	}
	if !found {
		t.Fatal("no error range in combined output")
	}
}

func TestKillAndReplace(t *testing.T) {
	term, sp := newTestTerminal(40)
	term.Run("sleep 9999")
	a := sp.last(t)
	a.hooks.Stdout("from a\n")

	term.Run("echo b")
	if !a.killed {
		t.Fatal("old process was not killed")
	}
	b := sp.last(t)
	b.hooks.Stdout("from b\n")

	// Late callbacks from the killed process must not corrupt the session.
	a.hooks.Stdout("late from a\n")
	a.hooks.Exit(0)

	b.hooks.Exit(3)
	out := term.Output().Text
	if out != "from b\n" {
		t.Fatalf("output = %q, want only b's", out)
	}
	if !strings.Contains(term.Status().Text, "status: 3") {
		t.Fatalf("status = %q, want b's exit code", term.Status().Text)
	}
}

func TestEmptyCommandClearsProcess(t *testing.T) {
	term, sp := newTestTerminal(40)
	term.Run("sleep 9999")
	a := sp.last(t)

	term.Run("   ")
	if !a.killed {
		t.Fatal("prior process must still be cleared")
	}
	if term.IsRunning() {
		t.Fatal("no process should be attached")
	}
	if got := term.Status().Text; got != "= =" {
		t.Fatalf("status = %q, want no-process status", got)
	}
	if len(sp.spawned) != 1 {
		t.Fatalf("spawned %d processes, want 1", len(sp.spawned))
	}
}

func TestSpawnFailureBecomesStderr(t *testing.T) {
	sp := &fakeSpawner{err: errors.New("executable file not found")}
	term := New(sp, fixedSettings(40), Events{}, "/tmp")
	term.Run("nosuchtool --flag")

	if term.IsRunning() {
		t.Fatal("failed spawn must not be running")
	}
	if !strings.Contains(term.Status().Text, fmt.Sprintf("status: %d", ExitSpawnFailure)) {
		t.Fatalf("status = %q", term.Status().Text)
	}
	out := term.Output().Text
	if !strings.Contains(out, "nosuchtool") || !strings.Contains(out, "not found") {
		t.Fatalf("output = %q, want synthetic stderr", out)
	}
	// Must not block.
	term.WaitForCompletion()
}

func TestDoubleExitIsIdempotent(t *testing.T) {
	changes := 0
	sp := &fakeSpawner{}
	term := New(sp, fixedSettings(40), Events{OnStateChange: func() { changes++ }}, "/tmp")
	term.Run("echo x")
	h := sp.last(t)
	h.hooks.Exit(0)
	after := changes
	// Processes can emit both close and exit; the second must be a no-op.
	h.hooks.Exit(1)
	if changes != after {
		t.Fatal("second exit fired OnStateChange")
	}
	if !strings.Contains(term.Status().Text, "status: 0") {
		t.Fatalf("status = %q, first exit code must win", term.Status().Text)
	}
}

func TestNoDuplicatedStatusLine(t *testing.T) {
	term, sp := newTestTerminal(40)
	term.Run("chatty")
	h := sp.last(t)
	for i := 0; i < 50; i++ {
		h.hooks.Stdout(fmt.Sprintf("line %d\n", i))
		// A renderer materializes the buffer on every chunk.
		_ = term.Status()
		_ = term.Output()
	}
	h.hooks.Exit(0)

	buffer := term.Command() + "\n\n" + term.Status().Text + "\n\n" + term.Output().Text
	if got := strings.Count(buffer, "= time:"); got != 1 {
		t.Fatalf("rendered buffer has %d status lines, want 1:\n%s", got, buffer)
	}
}

func TestWaitForCompletion(t *testing.T) {
	term, sp := newTestTerminal(40)
	term.WaitForCompletion() // no process: returns immediately

	term.Run("echo x")
	h := sp.last(t)
	done := make(chan struct{})
	go func() {
		term.WaitForCompletion()
		close(done)
	}()
	select {
	case <-done:
		t.Fatal("WaitForCompletion returned before exit")
	case <-time.After(20 * time.Millisecond):
	}
	h.hooks.Exit(0)
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("WaitForCompletion did not return after exit")
	}
	term.WaitForCompletion() // already exited: immediate
}

func TestForceColorEnvInjected(t *testing.T) {
	term, sp := newTestTerminal(40)
	term.Run("tool")
	env := sp.last(t).spec.Env
	found := false
	for _, kv := range env {
		if kv == "FORCE_COLOR=1" {
			found = true
		}
	}
	if !found {
		t.Fatalf("FORCE_COLOR not injected: %d env entries", len(env))
	}
}

func TestFormatRuntime(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{0, "0s"},
		{900 * time.Millisecond, "0s"},
		{5 * time.Second, "5s"},
		{59 * time.Second, "59s"},
		{60 * time.Second, "1m 0s"},
		{125 * time.Second, "2m 5s"},
		{3661 * time.Second, "61m 1s"},
	}
	for _, c := range cases {
		if got := formatRuntime(c.d); got != c.want {
			t.Errorf("formatRuntime(%v) = %q, want %q", c.d, got, c.want)
		}
	}
}

func TestTailStart(t *testing.T) {
	cases := []struct {
		text string
		max  int
		want string
	}{
		{"", 2, ""},
		{"a\nb", 2, "a\nb"},
		{"a\nb\nc", 2, "b\nc"},
		{"a\nb\nc\n", 2, "b\nc\n"},
		{"a\nb\nc\nd\ne\n", 1, "e\n"},
		{"single", 1, "single"},
	}
	for _, c := range cases {
		got := c.text[tailStart(c.text, c.max):]
		if got != c.want {
			t.Errorf("tailStart(%q, %d) keeps %q, want %q", c.text, c.max, got, c.want)
		}
	}
}
