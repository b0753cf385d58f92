package server

import (
	"context"
	"net/http"
	"os"
	"os/exec"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"

	"runpad/internal/settings"
	"runpad/internal/system"
	"runpad/internal/terminal"
	appver "runpad/internal/version"
	webembed "runpad/internal/webui/embed"
)

// Server exposes one terminal session over HTTP and WebSocket. The session
// is shared by all clients, matching the single-command model of the TUI.
type Server struct {
	Addr string

	st   *settings.Store
	term *terminal.Terminal
	hub  *hub
}

func New(addr string) *Server {
	st := settings.NewStore()
	h := newHub()

	var spawner terminal.Spawner = terminal.ExecSpawner{}
	if st.UsePty() {
		spawner = terminal.PtySpawner{}
	}
	wd, _ := os.Getwd()
	events := terminal.Events{
		OnOutput:        h.notify,
		OnStateChange:   h.notify,
		OnRuntimeUpdate: h.notify,
	}
	return &Server{
		Addr: addr,
		st:   st,
		term: terminal.New(spawner, st, events, wd),
		hub:  h,
	}
}

func (s *Server) Start(ctx context.Context) error {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	api.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"version": appver.AppVersion})
	})
	api.GET("/session", s.sessionHandler)
	api.POST("/run", s.runHandler)
	api.POST("/kill", s.killHandler)
	api.POST("/fold", s.foldHandler)
	api.GET("/session/ws", s.sessionWSHandler)

	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", webembed.IndexHTML)
	})

	srv := &http.Server{Addr: s.Addr, Handler: r, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		s.term.Kill()
		s.st.Close()
		_ = srv.Shutdown(context.Background())
	}()
	system.Logger.Info("webui server listening", "addr", s.Addr)
	return srv.ListenAndServe()
}

// OpenBrowser tries to open a URL in the system browser.
func OpenBrowser(url string) error {
	var cmd string
	var args []string
	switch runtime.GOOS {
	case "darwin":
		cmd = "open"
		args = []string{url}
	case "windows":
		cmd = "rundll32"
		args = []string{"url.dll,FileProtocolHandler", url}
	default:
		cmd = "xdg-open"
		args = []string{url}
	}
	return exec.Command(cmd, args...).Start()
}
