package server

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/highrascal9098/Interview-Prep/internal/loader"
	"github.com/highrascal9098/Interview-Prep/internal/orchestrator"
	"github.com/highrascal9098/Interview-Prep/internal/site"
	"github.com/highrascal9098/Interview-Prep/internal/view"
)

// topicPayload is one settled container.
type topicPayload struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	HTML   string `json:"html"`
	Error  string `json:"error,omitempty"`
}

// regenerateResponse is the JSON body of /api/regenerate.
type regenerateResponse struct {
	PassID       string         `json:"pass_id"`
	TriggerLabel string         `json:"trigger_label"`
	Topics       []topicPayload `json:"topics"`
}

type errorResponse struct {
	Error        string `json:"error"`
	TriggerLabel string `json:"trigger_label,omitempty"`
}

// alertBox keeps the last alert raised during a pass until it is read.
type alertBox struct {
	mu  sync.Mutex
	msg string
}

func (a *alertBox) Alert(msg string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.msg = msg
}

func (a *alertBox) message(fallback error) string {
	a.mu.Lock()
	defer a.mu.Unlock()
	msg := a.msg
	a.msg = ""
	if msg != "" {
		return msg
	}
	return fallback.Error()
}

func payloadFor(doc *view.Document, res loader.Result) topicPayload {
	p := topicPayload{ID: res.TopicID, Status: res.Status.String()}
	if c, ok := doc.Container(res.TopicID); ok {
		p.HTML = string(c.HTML())
	}
	if res.Err != nil {
		p.Error = res.Err.Error()
	}
	return p
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	count, err := parseCount(r.URL.Query().Get("count"), s.cfg.DefaultCount)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	o := s.orchestrator()
	doc := o.NewDocument()
	status := http.StatusOK
	if _, err := o.RegenerateAll(r.Context(), doc, count); err != nil {
		// The page still renders; the trigger carries the error label.
		status = http.StatusInternalServerError
	}

	data := site.NewPageData(s.cfg.Title, s.registry, doc, count)
	data.Live = true
	data.AssetBase = "/static/"

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := site.RenderPage(w, data); err != nil {
		s.logger.WithError(err).Error("rendering page")
	}
}

func (s *Server) handleRegenerate(w http.ResponseWriter, r *http.Request) {
	count, err := parseCount(r.URL.Query().Get("count"), s.cfg.DefaultCount)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	alerts := &alertBox{}
	o := s.orchestrator(orchestrator.WithAlerter(alerts))
	doc := o.NewDocument()
	pass, err := o.RegenerateAll(r.Context(), doc, count)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error:        alerts.message(err),
			TriggerLabel: doc.Trigger.Label(),
		})
		return
	}

	resp := regenerateResponse{
		PassID:       pass.ID,
		TriggerLabel: doc.Trigger.Label(),
		Topics:       make([]topicPayload, 0, len(pass.Results)),
	}
	for _, res := range pass.Results {
		resp.Topics = append(resp.Topics, payloadFor(doc, res))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleStatic(w http.ResponseWriter, r *http.Request) {
	content, contentType, ok := site.Asset(chi.URLParam(r, "name"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.Write(content)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
