package web

import (
	"errors"
	"net/http"
	"time"

	"github.com/JonMunkholm/resourcehub/internal/core"
	"github.com/JonMunkholm/resourcehub/internal/csv"
	"github.com/JonMunkholm/resourcehub/internal/logging"
	"github.com/JonMunkholm/resourcehub/internal/web/templates"
)

// loadingRefresh is how often the page reloads itself while loading.
const loadingRefresh = 2

// handlePage renders the directory page for the current query and selection.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	query, sel := parseQuery(r), parseSelection(r)
	view := s.service.Search(query, sel)

	params := templates.PageParams{
		Title:        s.cfg.Widget.Title,
		View:         view,
		Links:        pageLinks(r.URL.Path, query, sel),
		ResizeBridge: s.cfg.Widget.ResizeBridge,
	}
	switch view.Status {
	case core.StatusLoading:
		params.RefreshSeconds = loadingRefresh
	case core.StatusError:
		params.ErrorMessage = core.GenericLoadFailure
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.Page(params).Render(r.Context(), w); err != nil {
		logging.FromContext(r.Context()).Error("render page", "error", err)
	}
}

// handlePageReload re-fetches the sheet and sends the browser back to the page.
func (s *Server) handlePageReload(w http.ResponseWriter, r *http.Request) {
	if _, err := s.service.Reload(r.Context()); err != nil {
		logging.FromContext(r.Context()).Warn("reload from page failed", "error", err)
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// ResourcesResponse is the JSON view of one search.
type ResourcesResponse struct {
	Status    core.Status    `json:"status"`
	LoadID    string         `json:"load_id,omitempty"`
	Query     string         `json:"query"`
	Selection core.Selection `json:"selection"`
	Total     int            `json:"total"`
	Visible   int            `json:"visible"`
	Cards     []core.Card    `json:"cards"`
	Records   []csv.Record   `json:"records"`
	Facets    []core.Facet   `json:"facets"`
}

// handleResources returns the filtered resources as JSON.
func (s *Server) handleResources(w http.ResponseWriter, r *http.Request) {
	if snap := s.service.Snapshot(); snap.Status == core.StatusError {
		respondError(w, r, loadErr(snap), http.StatusBadGateway)
		return
	}

	view := s.service.Search(parseQuery(r), parseSelection(r))
	records := view.Visible
	if records == nil {
		records = []csv.Record{}
	}

	writeJSON(w, r, http.StatusOK, ResourcesResponse{
		Status:    view.Status,
		LoadID:    view.LoadID,
		Query:     view.Query,
		Selection: view.Selection,
		Total:     view.Total,
		Visible:   len(records),
		Cards:     view.Cards(),
		Records:   records,
		Facets:    view.Facets,
	})
}

// handleFacets returns the facet options in display order.
func (s *Server) handleFacets(w http.ResponseWriter, r *http.Request) {
	facets, err := s.service.Facets()
	if err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, core.ErrNotLoaded) {
			status = http.StatusServiceUnavailable
		}
		respondError(w, r, err, status)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]any{"facets": facets})
}

// ReloadResponse summarises a finished reload.
type ReloadResponse struct {
	Status     core.Status `json:"status"`
	LoadID     string      `json:"load_id"`
	Total      int         `json:"total"`
	Skipped    int         `json:"skipped"`
	Filled     int         `json:"filled"`
	DurationMS int64       `json:"duration_ms"`
}

// handleReload drops the cached sheet and loads it again.
func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	snap, err := s.service.Reload(r.Context())
	if err != nil {
		status := http.StatusBadGateway
		if r.Context().Err() != nil {
			status = http.StatusGatewayTimeout
		}
		respondError(w, r, err, status)
		return
	}
	writeJSON(w, r, http.StatusOK, ReloadResponse{
		Status:     snap.Status,
		LoadID:     snap.LoadID,
		Total:      snap.Total(),
		Skipped:    snap.Skipped,
		Filled:     snap.Filled,
		DurationMS: snap.Duration.Milliseconds(),
	})
}

// HealthResponse reports the dataset load state.
type HealthResponse struct {
	Status   core.Status `json:"status"`
	LoadID   string      `json:"load_id,omitempty"`
	Records  int         `json:"records"`
	LoadedAt *time.Time  `json:"loaded_at,omitempty"`
	Missing  []string    `json:"missing_columns,omitempty"`
	Error    string      `json:"error,omitempty"`
}

func health(snap *core.Snapshot) HealthResponse {
	h := HealthResponse{
		Status:  snap.Status,
		LoadID:  snap.LoadID,
		Records: snap.Total(),
		Missing: snap.Missing,
	}
	if !snap.LoadedAt.IsZero() {
		h.LoadedAt = &snap.LoadedAt
	}
	if snap.Err != nil {
		h.Error = core.MapError(snap.Err).Code
	}
	return h
}

// handleHealth is the liveness probe. It fails only while the last load
// ended in error.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	snap := s.service.Snapshot()
	status := http.StatusOK
	if snap.Status == core.StatusError {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, r, status, health(snap))
}

// handleReady is the readiness probe. It passes once a dataset is loaded.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	snap := s.service.Snapshot()
	status := http.StatusOK
	if snap.Status != core.StatusSuccess {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, r, status, health(snap))
}

func loadErr(snap *core.Snapshot) error {
	if snap.Err != nil {
		return snap.Err
	}
	return core.ErrNotLoaded
}
