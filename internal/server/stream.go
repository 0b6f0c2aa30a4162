package server

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/highrascal9098/Interview-Prep/internal/loader"
	"github.com/highrascal9098/Interview-Prep/internal/orchestrator"
	"github.com/highrascal9098/Interview-Prep/internal/topic"
	"github.com/highrascal9098/Interview-Prep/internal/view"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// streamRequest is a client message on /ws/regenerate.
type streamRequest struct {
	Type  string `json:"type"`
	Count *int   `json:"count,omitempty"`
}

// streamMessage is a server message on /ws/regenerate.
type streamMessage struct {
	Type         string   `json:"type"` // loading, topic, done, error
	Topics       []string `json:"topics,omitempty"`
	ID           string   `json:"id,omitempty"`
	Status       string   `json:"status,omitempty"`
	HTML         string   `json:"html,omitempty"`
	Error        string   `json:"error,omitempty"`
	PassID       string   `json:"pass_id,omitempty"`
	TriggerLabel string   `json:"trigger_label,omitempty"`
}

// stream forwards pass progress to one websocket. Observer callbacks
// arrive from several goroutines, so writes are serialised.
type stream struct {
	mu     sync.Mutex
	conn   *websocket.Conn
	doc    *view.Document
	logger *logrus.Entry
}

func (st *stream) send(msg streamMessage) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if err := st.conn.WriteJSON(msg); err != nil {
		st.logger.WithError(err).Debug("websocket write")
	}
}

func (st *stream) TopicLoading(_ string, t topic.Descriptor) {
	st.send(streamMessage{Type: "loading", Topics: []string{t.ID}})
}

func (st *stream) TopicSettled(_ string, _ topic.Descriptor, res loader.Result) {
	p := payloadFor(st.doc, res)
	st.send(streamMessage{Type: "topic", ID: p.ID, Status: p.Status, HTML: p.HTML, Error: p.Error})
}

func (st *stream) PassFinished(orchestrator.Pass) {}

func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.WithError(err).Warn("websocket upgrade")
		return
	}
	defer conn.Close()

	log := s.logger.WithField("remote", r.RemoteAddr)
	alerts := &alertBox{}
	st := &stream{conn: conn, logger: log}
	o := s.orchestrator(orchestrator.WithObserver(st), orchestrator.WithAlerter(alerts))
	// One document per connection, so a second request mid-pass is refused.
	st.doc = o.NewDocument()

	for {
		var req streamRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.WithError(err).Warn("websocket read")
			}
			return
		}
		if req.Type != "regenerate" {
			st.send(streamMessage{Type: "error", Error: "unknown message type: " + req.Type})
			continue
		}

		count := s.cfg.DefaultCount
		if req.Count != nil {
			if *req.Count < 0 {
				st.send(streamMessage{Type: "error", Error: "invalid count: must be non-negative", TriggerLabel: st.doc.Trigger.Label()})
				continue
			}
			count = *req.Count
		}

		pass, err := o.RegenerateAll(r.Context(), st.doc, count)
		if err != nil {
			st.send(streamMessage{
				Type:         "error",
				Error:        alerts.message(err),
				PassID:       pass.ID,
				TriggerLabel: st.doc.Trigger.Label(),
			})
			continue
		}
		st.send(streamMessage{
			Type:         "done",
			PassID:       pass.ID,
			TriggerLabel: st.doc.Trigger.Label(),
		})
	}
}
