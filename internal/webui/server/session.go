package server

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"runpad/internal/highlight"
	"runpad/internal/system"
)

// sessionView is the JSON snapshot pushed to clients. Status and Output
// carry their highlight ranges so the frontend styles them itself.
type sessionView struct {
	Command  string         `json:"command"`
	Running  bool           `json:"running"`
	Folded   bool           `json:"folded"`
	ExitCode *int           `json:"exit_code,omitempty"`
	Status   highlight.Text `json:"status"`
	Output   highlight.Text `json:"output"`
}

func (s *Server) snapshot() sessionView {
	v := sessionView{
		Command: s.term.Command(),
		Running: s.term.IsRunning(),
		Folded:  s.term.IsFolded(),
		Status:  s.term.Status(),
		Output:  s.term.Output(),
	}
	if code, ok := s.term.ExitCode(); ok {
		v.ExitCode = &code
	}
	return v
}

func (s *Server) sessionHandler(c *gin.Context) {
	c.JSON(http.StatusOK, s.snapshot())
}

func (s *Server) runHandler(c *gin.Context) {
	var req struct {
		Command string `json:"command"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.term.Run(req.Command)
	c.JSON(http.StatusOK, s.snapshot())
}

func (s *Server) killHandler(c *gin.Context) {
	s.term.Kill()
	c.JSON(http.StatusOK, s.snapshot())
}

func (s *Server) foldHandler(c *gin.Context) {
	s.term.ToggleFold()
	c.JSON(http.StatusOK, s.snapshot())
}

// wsUpgrader upgrades HTTP connections to WebSocket.
var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	// Allow all origins for local dev; the server typically binds to localhost.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// sessionWSHandler streams session snapshots. One JSON snapshot is sent on
// connect and another after every session event, coalesced per client.
func (s *Server) sessionWSHandler(c *gin.Context) {
	conn, err := wsUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	ch := s.hub.subscribe()
	defer s.hub.unsubscribe(ch)

	// Reader goroutine: detect client close.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	if err := conn.WriteJSON(s.snapshot()); err != nil {
		return
	}
	for {
		select {
		case <-closed:
			return
		case _, ok := <-ch:
			if !ok {
				return
			}
			if err := conn.WriteJSON(s.snapshot()); err != nil {
				system.Logger.Debug("ws write failed", "err", err)
				return
			}
		}
	}
}

// hub fans session events out to websocket clients. Channels are buffered
// with one slot so bursts coalesce into a single refresh.
type hub struct {
	mu   sync.Mutex
	subs map[chan struct{}]struct{}
}

func newHub() *hub {
	return &hub{subs: map[chan struct{}]struct{}{}}
}

func (h *hub) subscribe() chan struct{} {
	ch := make(chan struct{}, 1)
	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

func (h *hub) unsubscribe(ch chan struct{}) {
	h.mu.Lock()
	delete(h.subs, ch)
	h.mu.Unlock()
}

func (h *hub) notify() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
