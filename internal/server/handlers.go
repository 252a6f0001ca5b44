package server

import (
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/gorilla/mux"

	"github.com/Anchalshukla145/Real-time-process-monitoring-dashboard/internal/errors"
	"github.com/Anchalshukla145/Real-time-process-monitoring-dashboard/internal/monitor"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"error"`
}

type historyResponse struct {
	Kind     string           `json:"kind"`
	Title    string           `json:"title"`
	Percent  bool             `json:"percent"`
	Capacity int              `json:"capacity"`
	Samples  []monitor.Sample `json:"samples"`
}

type processesResponse struct {
	ShowAll   bool                    `json:"show_all"`
	Count     int                     `json:"count"`
	Processes []monitor.ProcessRecord `json:"processes"`
}

type themeResponse struct {
	Theme monitor.Theme `json:"theme"`
}

type showAllResponse struct {
	ShowAll bool `json:"show_all"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		s.log.Error("encoding response: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		s.log.Debug("writing response: %v", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, errorResponse{Code: errors.ErrServer, Message: message})
}

func (s *Server) notFound(w http.ResponseWriter, r *http.Request) {
	s.writeError(w, http.StatusNotFound, "no route for "+r.URL.Path)
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) view(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.engine.View())
}

func (s *Server) history(w http.ResponseWriter, r *http.Request) {
	kind, err := monitor.ParseMetricKind(mux.Vars(r)["kind"])
	if err != nil {
		s.writeError(w, http.StatusNotFound, errors.Summary(err))
		return
	}
	samples := s.engine.Samples(kind)
	if samples == nil {
		samples = []monitor.Sample{}
	}
	s.writeJSON(w, http.StatusOK, historyResponse{
		Kind:     kind.String(),
		Title:    kind.Title(),
		Percent:  kind.IsPercent(),
		Capacity: s.engine.HistoryCapacity(),
		Samples:  samples,
	})
}

func (s *Server) processes(w http.ResponseWriter, _ *http.Request) {
	procs := s.engine.Processes()
	if procs == nil {
		procs = []monitor.ProcessRecord{}
	}
	s.writeJSON(w, http.StatusOK, processesResponse{
		ShowAll:   s.engine.ShowAll(),
		Count:     s.engine.ProcessCount(),
		Processes: procs,
	})
}

func (s *Server) theme(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, themeResponse{Theme: s.engine.Theme()})
}

func (s *Server) toggleTheme(w http.ResponseWriter, _ *http.Request) {
	theme := s.engine.ToggleTheme()
	s.log.Info("theme switched to %s", theme)
	s.writeJSON(w, http.StatusOK, themeResponse{Theme: theme})
	s.broadcastView()
}

func (s *Server) toggleShowAll(w http.ResponseWriter, _ *http.Request) {
	showAll := s.engine.ToggleShowAll()
	s.writeJSON(w, http.StatusOK, showAllResponse{ShowAll: showAll})
	s.broadcastView()
}

// kill always answers 200: the outcome body says whether the signal was sent.
func (s *Server) kill(w http.ResponseWriter, r *http.Request) {
	outcome := s.engine.RequestKillInput(r.Context(), mux.Vars(r)["pid"])
	if outcome.Succeeded {
		s.log.Info("kill: %s", outcome.Message)
	} else {
		s.log.Warn("kill: %s", outcome.Message)
	}
	s.writeJSON(w, http.StatusOK, outcome)
	s.broadcastView()
}

func (s *Server) websocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Debug("websocket upgrade: %v", err)
		return
	}
	payload, err := json.Marshal(s.engine.View())
	if err != nil {
		s.log.Error("encoding view: %v", err)
		_ = conn.Close()
		return
	}
	s.hub.Attach(conn, payload)
}
