// Package web serves a localhost-only single-user UI with no auth or CSRF
// protection.
package web

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"travelog/logbook"
	"travelog/triplog"
)

//go:embed templates/*.html
var templateFS embed.FS

// Server wraps a workspace behind HTTP. The workspace is not safe for
// concurrent use, so one mutex serializes every request that touches it.
type Server struct {
	workspace *logbook.Workspace
	mux       *http.ServeMux

	mu sync.Mutex
}

type columnView struct {
	Column string
	Label  string
	Link   string
}

type collectionPageView struct {
	Title      string
	Names      []string
	Current    string
	Columns    []columnView
	Rows       []logbook.Row
	Summary    logbook.Summary
	Modes      []string
	SortColumn string
	Descending bool
}

// logMutationRequest carries already-split field values from the UI; the
// core never parses free-form date-time text typed by a user.
type logMutationRequest struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Mode        string `json:"mode"`
	OtherMode   string `json:"otherMode"`
	StartDate   string `json:"startDate"`
	StartTime   string `json:"startTime"`
	EndDate     string `json:"endDate"`
	EndTime     string `json:"endTime"`
	Description string `json:"description"`
}

type fieldErrorView struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error  string           `json:"error"`
	Fields []fieldErrorView `json:"fields,omitempty"`
}

var columnLabels = map[logbook.Column]string{
	logbook.ColumnID:          "ID",
	logbook.ColumnOrigin:      "Origin",
	logbook.ColumnDestination: "Destination",
	logbook.ColumnMode:        "Mode",
	logbook.ColumnStart:       "Start Date/Time",
	logbook.ColumnEnd:         "End Date/Time",
	logbook.ColumnDuration:    "Duration",
	logbook.ColumnDescription: "Description",
}

func NewServer(workspace *logbook.Workspace) http.Handler {
	server := &Server{workspace: workspace}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", server.handleIndex)
	mux.HandleFunc("GET /collection/{name}", server.handleCollection)
	mux.HandleFunc("POST /api/collections", server.handleCollectionCreate)
	mux.HandleFunc("POST /api/collections/{name}/rename", server.handleCollectionRename)
	mux.HandleFunc("DELETE /api/collections/{name}", server.handleCollectionDelete)
	mux.HandleFunc("POST /api/collections/{name}/logs", server.handleLogCreate)
	mux.HandleFunc("PUT /api/collections/{name}/logs/{id}", server.handleLogUpdate)
	mux.HandleFunc("DELETE /api/collections/{name}/logs/{id}", server.handleLogDelete)
	mux.HandleFunc("DELETE /api/collections/{name}/logs", server.handleLogsClear)
	server.mux = mux

	return server
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	collection, ok := s.workspace.Active()
	if !ok && s.workspace.Len() > 0 {
		_ = s.workspace.SwitchActive(0)
		collection, ok = s.workspace.Active()
	}
	s.mu.Unlock()

	if !ok {
		view := collectionPageView{Title: "travelog", Modes: modeOptions()}
		if err := renderTemplate(w, "collection.html", view); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	http.Redirect(w, r, collectionPath(collection.Name()), http.StatusFound)
}

func (s *Server) handleCollection(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	s.mu.Lock()
	defer s.mu.Unlock()

	collection, ok := s.workspace.Collection(name)
	if !ok {
		http.Error(w, "collection not found", http.StatusNotFound)
		return
	}
	_ = s.workspace.SwitchActiveByName(name)

	sortColumn := strings.TrimSpace(r.URL.Query().Get("sort"))
	descending := r.URL.Query().Get("order") == "desc"

	rows := collection.Rows()
	if sortColumn != "" {
		column, err := logbook.ColumnByName(sortColumn)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		rows = logbook.SortRows(rows, column, !descending)
	}

	columns := make([]columnView, 0, len(logbook.Columns()))
	for _, column := range logbook.Columns() {
		if column == logbook.ColumnID {
			continue
		}
		order := "asc"
		if string(column) == sortColumn && !descending {
			order = "desc"
		}
		columns = append(columns, columnView{
			Column: string(column),
			Label:  columnLabels[column],
			Link:   collectionPath(name) + "?sort=" + string(column) + "&order=" + order,
		})
	}

	view := collectionPageView{
		Title:      "travelog - " + name,
		Names:      s.workspace.Names(),
		Current:    name,
		Columns:    columns,
		Rows:       rows,
		Summary:    collection.Aggregate(),
		Modes:      modeOptions(),
		SortColumn: sortColumn,
		Descending: descending,
	}
	if err := renderTemplate(w, "collection.html", view); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) handleCollectionCreate(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("decode request: %w", err))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.workspace.CreateCollection(payload.Name); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"name": payload.Name})
}

func (s *Server) handleCollectionRename(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	var payload struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("decode request: %w", err))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.workspace.SwitchActiveByName(name); err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	if err := s.workspace.RenameActive(payload.Name); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"name": payload.Name})
}

func (s *Server) handleCollectionDelete(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.workspace.SwitchActiveByName(name); err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	if err := s.workspace.DeleteActive(); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"deleted": name})
}

func (s *Server) handleLogCreate(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	collection, ok := s.workspace.Collection(r.PathValue("name"))
	if !ok {
		http.Error(w, "collection not found", http.StatusNotFound)
		return
	}

	in, err := decodeMutation(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	entry, err := collection.Create(in)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int64{"id": entry.ID})
}

func (s *Server) handleLogUpdate(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	collection, ok := s.workspace.Collection(r.PathValue("name"))
	if !ok {
		http.Error(w, "collection not found", http.StatusNotFound)
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid log id: %w", err))
		return
	}

	in, err := decodeMutation(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if _, err := collection.Update(id, in); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"id": id})
}

func (s *Server) handleLogDelete(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	collection, ok := s.workspace.Collection(r.PathValue("name"))
	if !ok {
		http.Error(w, "collection not found", http.StatusNotFound)
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid log id: %w", err))
		return
	}

	if err := collection.Delete(id); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"id": id})
}

func (s *Server) handleLogsClear(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	collection, ok := s.workspace.Collection(r.PathValue("name"))
	if !ok {
		http.Error(w, "collection not found", http.StatusNotFound)
		return
	}

	if err := collection.Clear(); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"cleared": collection.Name()})
}

func decodeMutation(r *http.Request) (triplog.Input, error) {
	var payload logMutationRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		return triplog.Input{}, fmt.Errorf("decode request: %w", err)
	}

	mode := payload.Mode
	if mode == triplog.ModeOther {
		mode = payload.OtherMode
	}

	in := triplog.Input{
		Origin:      payload.Origin,
		Destination: payload.Destination,
		Mode:        mode,
		Description: payload.Description,
	}

	var err error
	in.Start, err = combineDateTime(payload.StartDate, payload.StartTime)
	if err != nil {
		return triplog.Input{}, fmt.Errorf("start: %w", err)
	}
	in.End, err = combineDateTime(payload.EndDate, payload.EndTime)
	if err != nil {
		return triplog.Input{}, fmt.Errorf("end: %w", err)
	}
	return in, nil
}

// combineDateTime joins the split picker values ("2006-01-02" + "15:04").
// A blank in either half yields the zero time so the validator reports the
// field as missing instead of a transport error.
func combineDateTime(date, clock string) (time.Time, error) {
	if strings.TrimSpace(date) == "" || strings.TrimSpace(clock) == "" {
		return time.Time{}, nil
	}
	parsed, err := time.ParseInLocation("2006-01-02 15:04", date+" "+clock, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date/time values %q %q", date, clock)
	}
	return parsed, nil
}

func writeDomainError(w http.ResponseWriter, err error) {
	var validationErr *triplog.ValidationError
	switch {
	case errors.As(err, &validationErr):
		fields := make([]fieldErrorView, 0, len(validationErr.Fields))
		for _, field := range validationErr.Fields {
			fields = append(fields, fieldErrorView{Field: field.Field, Message: field.Message})
		}
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: "validation failed", Fields: fields})
	case errors.Is(err, triplog.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, logbook.ErrDuplicateName), errors.Is(err, logbook.ErrNameRequired):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, logbook.ErrNoActiveCollection):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func renderTemplate(w http.ResponseWriter, name string, view any) error {
	tmpl, err := template.ParseFS(templateFS, "templates/"+name)
	if err != nil {
		return fmt.Errorf("parse template %s: %w", name, err)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, view); err != nil {
		return fmt.Errorf("render template %s: %w", name, err)
	}
	return nil
}

func collectionPath(name string) string {
	return "/collection/" + url.PathEscape(name)
}

func modeOptions() []string {
	return append(triplog.Modes(), triplog.ModeOther)
}
