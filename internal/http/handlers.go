package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/courtchart/internal/format"
	"github.com/mauv0809/courtchart/internal/processor"
	"github.com/mauv0809/courtchart/internal/snapshot"
	"github.com/mauv0809/courtchart/internal/standings"
	"github.com/mauv0809/courtchart/internal/tournament"
)

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.FromContext(r.Context()).Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

// ListFormatsHandler lists the catalog. 'q' filters by fuzzy search;
// 'category' together with 'count' selects the single matching format.
func (s *Server) ListFormatsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		catalog := s.Processor.Catalog()
		query := r.URL.Query()

		if countStr := query.Get("count"); countStr != "" {
			count, err := strconv.Atoi(countStr)
			if err != nil {
				writeError(w, http.StatusBadRequest, "Invalid 'count' parameter", "")
				return
			}
			category := tournament.Category(strings.ToUpper(query.Get("category")))
			if category == "" {
				category = tournament.CategoryIndividual
			}
			f, err := catalog.ForCount(category, count)
			if err != nil {
				s.writeProcessorError(w, r, err)
				return
			}
			writeJSON(w, http.StatusOK, []format.Format{f})
			return
		}

		writeJSON(w, http.StatusOK, catalog.Search(query.Get("q")))
	}
}

func (s *Server) GetFormatHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f, err := s.Processor.Catalog().Lookup(r.PathValue("id"))
		if err != nil {
			s.writeProcessorError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, f)
	}
}

func (s *Server) ScheduleHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ScheduleRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		res, err := s.Processor.Schedule(req.Format, req.Competitors)
		if err != nil {
			s.writeProcessorError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}

// StandingsHandler resolves a snapshot posted as JSON or YAML. The 'format'
// parameter selects json (default), csv or text output.
func (s *Server) StandingsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		output := r.URL.Query().Get("format")
		switch output {
		case "", "json", "csv", "text":
		default:
			writeError(w, http.StatusBadRequest, fmt.Sprintf("Unsupported output format %q", output), "")
			return
		}

		snap, err := snapshot.Decode(r.Body)
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				writeError(w, http.StatusRequestEntityTooLarge, "Snapshot too large", "")
				return
			}
			s.writeProcessorError(w, r, err)
			return
		}

		res, err := s.Processor.Standings(snap)
		if err != nil {
			s.writeProcessorError(w, r, err)
			return
		}

		switch output {
		case "csv":
			w.Header().Set("Content-Type", "text/csv")
			w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", standingsFilename(res)))
			if err := standings.WriteCSV(w, res.Projection); err != nil {
				log.FromContext(r.Context()).Error("Failed to write CSV", "error", err)
			}
		case "text":
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			fmt.Fprintln(w, standings.FormatText(res.Projection))
			for _, line := range res.Trace {
				fmt.Fprintln(w, line)
			}
		default:
			writeJSON(w, http.StatusOK, res)
		}
	}
}

func standingsFilename(res *processor.StandingsResult) string {
	if res.TournamentID == "" {
		return "standings.csv"
	}
	return res.TournamentID + "-standings.csv"
}

func (s *Server) ListOverridesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		overrides, err := s.Processor.Overrides(r.PathValue("id"))
		if err != nil {
			log.FromContext(r.Context()).Error("Failed to get overrides from ledger", "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to get overrides", "")
			return
		}
		writeJSON(w, http.StatusOK, overrides)
	}
}

func (s *Server) OverrideHistoryHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		history, err := s.Processor.History(r.PathValue("id"))
		if err != nil {
			log.FromContext(r.Context()).Error("Failed to get override history from ledger", "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to get override history", "")
			return
		}
		writeJSON(w, http.StatusOK, history)
	}
}

func (s *Server) RecordOverrideHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		wins, ok := winsParam(w, r)
		if !ok {
			return
		}
		var req OverrideRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		o, err := s.Processor.RecordOverride(r.PathValue("id"), wins, req.ResolvedOrder, req.Reason, req.ResolvedBy)
		if err != nil {
			s.writeProcessorError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, o)
	}
}

func (s *Server) ClearOverrideHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		wins, ok := winsParam(w, r)
		if !ok {
			return
		}
		if err := s.Processor.ClearOverride(r.PathValue("id"), wins); err != nil {
			s.writeProcessorError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func winsParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	wins, err := strconv.Atoi(r.PathValue("wins"))
	if err != nil || wins < 0 {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid wins level %q", r.PathValue("wins")), "")
		return 0, false
	}
	return wins, true
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "Request body too large", "")
			return false
		}
		log.FromContext(r.Context()).Warn("Invalid JSON body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid JSON", "")
		return false
	}
	return true
}

// writeProcessorError maps domain errors to status codes: unknown formats are
// 404, malformed snapshots 400, other validation failures 422.
func (s *Server) writeProcessorError(w http.ResponseWriter, r *http.Request, err error) {
	reason := processor.Reason(err)
	switch {
	case errors.Is(err, format.ErrUnknownFormat):
		writeError(w, http.StatusNotFound, err.Error(), reason)
	case errors.Is(err, snapshot.ErrInvalidSnapshot):
		writeError(w, http.StatusBadRequest, err.Error(), reason)
	case processor.IsValidation(err):
		writeError(w, http.StatusUnprocessableEntity, err.Error(), reason)
	default:
		log.FromContext(r.Context()).Error("Request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal error", "")
	}
}

func writeError(w http.ResponseWriter, status int, msg, reason string) {
	writeJSON(w, status, ErrorResponse{Error: msg, Reason: reason})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to write response", "error", err)
	}
}
