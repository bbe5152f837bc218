// internal/panel/ws/server.go
package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/tamzrod/linkmon/internal/indicator"
	"github.com/tamzrod/linkmon/internal/panel"
)

const writeTimeout = 2 * time.Second

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		u, err := url.Parse(origin)
		if err != nil {
			return false
		}
		host := strings.ToLower(strings.TrimSpace(r.Host))
		originHost := strings.ToLower(strings.TrimSpace(u.Host))
		return host == originHost
	},
}

// Snapshot is the payload pushed to viewers on every Show/Present.
type Snapshot struct {
	Color    string   `json:"color"`
	Lines    []string `json:"lines"`
	Shows    uint16   `json:"shows"`
	Presents uint16   `json:"presents"`
}

// Server mirrors the panel to browsers on the local link.
// Core calls are synchronous; viewers attach from HTTP goroutines.
type Server struct {
	httpServer *http.Server
	log        *logrus.Entry

	mu      sync.Mutex
	pending indicator.RGB
	back    panel.Frame
	shown   panel.State
	viewers map[*websocket.Conn]struct{}
}

// New creates a virtual panel listening on addr.
func New(addr string, log *logrus.Entry) *Server {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	mux := http.NewServeMux()
	s := &Server{
		httpServer: &http.Server{Addr: addr, Handler: mux},
		log:        log.WithField("component", "panel-ws"),
		back:       panel.NewFrame(),
		shown:      panel.State{Frame: panel.NewFrame()},
		viewers:    make(map[*websocket.Conn]struct{}),
	}
	s.registerRoutes(mux)
	return s
}

// Handler exposes the routes, mainly for tests.
func (s *Server) Handler() http.Handler { return s.httpServer.Handler }

// Start serves in the background.
func (s *Server) Start() {
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.log.Errorf("virtual panel stopped: %v", err)
		}
	}()
}

// Shutdown closes the listener and every viewer.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	for c := range s.viewers {
		_ = c.Close()
		delete(s.viewers, c)
	}
	s.mu.Unlock()
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) registerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(indexHTML))
	})
	mux.HandleFunc("/api/panel", s.handleSnapshot)
	mux.HandleFunc("/ws", s.handleWS)
}

func (s *Server) handleSnapshot(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	snap := s.snapshotLocked()
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(snap)
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	s.mu.Lock()
	if err := writeSnapshot(conn, s.snapshotLocked()); err != nil {
		s.mu.Unlock()
		_ = conn.Close()
		return
	}
	s.viewers[conn] = struct{}{}
	s.mu.Unlock()

	// Viewers never send; reading only detects the close.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	s.mu.Lock()
	delete(s.viewers, conn)
	s.mu.Unlock()
	_ = conn.Close()
}

// ---- indicator.Driver ----

func (s *Server) SetColor(c indicator.RGB) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = c
	return nil
}

func (s *Server) Show() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shown.Color = s.pending
	s.shown.Shows++
	s.broadcastLocked()
	return nil
}

// ---- display.Driver ----

func (s *Server) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.back.Clear()
	return nil
}

func (s *Server) DrawText(x, y int, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.back.Draw(x, y, text)
	return nil
}

func (s *Server) Present() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shown.Frame = s.back
	s.shown.Presents++
	s.broadcastLocked()
	return nil
}

// ---- helpers ----

func (s *Server) snapshotLocked() Snapshot {
	return Snapshot{
		Color:    s.shown.Color.Hex(),
		Lines:    s.shown.Frame.Lines(),
		Shows:    s.shown.Shows,
		Presents: s.shown.Presents,
	}
}

// broadcastLocked drops viewers that cannot keep up.
func (s *Server) broadcastLocked() {
	snap := s.snapshotLocked()
	for c := range s.viewers {
		if err := writeSnapshot(c, snap); err != nil {
			s.log.Debugf("dropping viewer %s: %v", c.RemoteAddr(), err)
			_ = c.Close()
			delete(s.viewers, c)
		}
	}
}

func writeSnapshot(conn *websocket.Conn, snap Snapshot) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return conn.WriteJSON(snap)
}

const indexHTML = `<!doctype html>
<html>
<head><meta charset="utf-8"><title>linkmon</title>
<style>
body{background:#111;color:#eee;font-family:monospace}
#px{width:48px;height:48px;border-radius:50%;border:1px solid #444;margin:16px}
#panel{white-space:pre;background:#000;border:1px solid #444;padding:8px;width:8ch;line-height:1.2}
</style></head>
<body>
<div id="px"></div>
<div id="panel"></div>
<script>
const ws = new WebSocket((location.protocol === "https:" ? "wss://" : "ws://") + location.host + "/ws");
ws.onmessage = (ev) => {
  const s = JSON.parse(ev.data);
  document.getElementById("px").style.background = s.color;
  document.getElementById("panel").textContent = s.lines.join("\n");
};
</script>
</body>
</html>
`
