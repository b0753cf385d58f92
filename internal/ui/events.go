package ui

import "runpad/internal/terminal"

type eventKind int

const (
	eventOutput eventKind = iota
	eventState
	eventRuntime
)

// relay bridges terminal.Events callbacks, which fire on the session's
// goroutines, into a channel the Bubble Tea loop drains. The channel is
// buffered and sends never block: a dropped event is fine because the model
// re-reads the full session state on every event anyway.
type relay struct {
	ch chan eventKind
}

func newRelay() *relay {
	return &relay{ch: make(chan eventKind, 64)}
}

func (r *relay) events() terminal.Events {
	return terminal.Events{
		OnOutput:        func() { r.send(eventOutput) },
		OnStateChange:   func() { r.send(eventState) },
		OnRuntimeUpdate: func() { r.send(eventRuntime) },
	}
}

func (r *relay) send(k eventKind) {
	select {
	case r.ch <- k:
	default:
	}
}
