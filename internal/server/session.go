package server

import (
	"context"
	"encoding/json"
	"html/template"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/ziadkadry99/digestview/internal/calendar"
	"github.com/ziadkadry99/digestview/internal/digest"
	"github.com/ziadkadry99/digestview/internal/viewer"
)

// writeWait bounds each frame write.
const writeWait = 10 * time.Second

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// clientEvent is the incoming WebSocket message format.
type clientEvent struct {
	Type  string `json:"type"` // "select" or "navigate"
	Date  string `json:"date,omitempty"`
	Delta int    `json:"delta,omitempty"`
}

// frame is the outgoing WebSocket message format.
type frame struct {
	Type      string        `json:"type"` // "hello", "mode", "digest", "calendar", "dates", "highlight" or "error"
	SessionID string        `json:"session_id,omitempty"`
	Mode      viewer.Mode   `json:"mode,omitempty"`
	HTML      template.HTML `json:"html,omitempty"`
	Meta      *digest.Meta  `json:"meta,omitempty"`
	Label     string        `json:"label,omitempty"`
	Date      string        `json:"date,omitempty"`
	Content   string        `json:"content,omitempty"`
}

// session is one browser connection. It implements viewer.Surface by
// sending frames; writes are serialized because loads finish on their own
// goroutines.
type session struct {
	id        string
	conn      *websocket.Conn
	writeWait time.Duration

	writeMu sync.Mutex
	closed  bool
}

func newSession(conn *websocket.Conn) *session {
	return &session{id: uuid.NewString(), conn: conn, writeWait: writeWait}
}

func (s *session) send(f frame) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if s.closed {
		return
	}
	s.conn.SetWriteDeadline(time.Now().Add(s.writeWait))
	if err := s.conn.WriteJSON(f); err != nil {
		// A failed or timed out write leaves the connection unusable; closing
		// it also ends the read loop.
		log.Printf("server: session %s: websocket write: %v", s.id, err)
		s.closed = true
		s.conn.Close()
	}
}

func (s *session) sendError(message string) {
	s.send(frame{Type: "error", SessionID: s.id, Content: message})
}

func (s *session) close() {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if !s.closed {
		s.closed = true
		s.conn.Close()
	}
}

func (s *session) ShowLoading() {
	s.send(frame{Type: "mode", Mode: viewer.ModeLoading})
}

func (s *session) ShowDigest(html string, meta digest.Meta) {
	s.send(frame{Type: "digest", Mode: viewer.ModeShown, HTML: template.HTML(html), Meta: &meta})
}

func (s *session) ShowNoDigest() {
	s.send(frame{Type: "mode", Mode: viewer.ModeEmpty})
}

func (s *session) RenderCalendar(label string, grid calendar.Grid) {
	body, err := calendar.GridHTML(grid, nil)
	if err != nil {
		log.Printf("server: session %s: rendering calendar: %v", s.id, err)
		return
	}
	s.send(frame{Type: "calendar", Label: label, HTML: body})
}

func (s *session) RenderDateList(items []calendar.ListItem) {
	body, err := calendar.ListHTML(items, nil)
	if err != nil {
		log.Printf("server: session %s: rendering date list: %v", s.id, err)
		return
	}
	s.send(frame{Type: "dates", HTML: body})
}

func (s *session) Highlight(date string) {
	s.send(frame{Type: "highlight", Date: date})
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("server: websocket upgrade: %v", err)
		return
	}

	sess := newSession(conn)
	s.mu.Lock()
	s.sessions[sess.id] = sess
	s.mu.Unlock()

	ctx, cancel := context.WithCancel(r.Context())
	var loads sync.WaitGroup
	defer func() {
		cancel()
		sess.close()
		loads.Wait()
		s.mu.Lock()
		delete(s.sessions, sess.id)
		s.mu.Unlock()
	}()

	sess.send(frame{Type: "hello", SessionID: sess.id})

	v := s.newViewer(sess)
	loads.Add(1)
	go func() {
		defer loads.Done()
		v.Start(ctx)
	}()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("server: session %s: websocket read: %v", sess.id, err)
			}
			return
		}

		var ev clientEvent
		if err := json.Unmarshal(msg, &ev); err != nil {
			sess.sendError("invalid message format")
			continue
		}

		switch ev.Type {
		case "select":
			loads.Add(1)
			go func(date string) {
				defer loads.Done()
				v.SelectDate(ctx, date)
			}(ev.Date)
		case "navigate":
			if ev.Delta == 0 {
				sess.sendError("delta is required")
				continue
			}
			v.NavigateMonth(ev.Delta)
		default:
			sess.sendError("unknown message type: " + ev.Type)
		}
	}
}
