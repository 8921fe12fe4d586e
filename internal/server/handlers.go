package server

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/vanshika/degrees/backend/internal/domain"
	"github.com/vanshika/degrees/backend/internal/metrics"
	"github.com/vanshika/degrees/backend/internal/resolver"
	"github.com/vanshika/degrees/backend/internal/service"
)

// APIHandlers exposes HTTP handlers for the REST API.
type APIHandlers struct {
	logger  *slog.Logger
	service *service.DegreesService
}

// NewAPIHandlers constructs an APIHandlers instance.
func NewAPIHandlers(logger *slog.Logger, svc *service.DegreesService) *APIHandlers {
	return &APIHandlers{
		logger:  logger,
		service: svc,
	}
}

func (h *APIHandlers) handleListPeople(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}

	query := r.URL.Query()
	result, meta, err := h.service.ListPeople(r.Context(), service.ListPeopleParams{
		Page:     parseInt(query.Get("page"), 1),
		PageSize: parseInt(query.Get("pageSize"), 50),
		Search:   query.Get("search"),
		Birth:    query.Get("birth"),
	})
	if err != nil {
		h.logger.Error("failed to list people", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list people")
		return
	}

	resp := listPeopleResponse{
		Items:      []personSummaryResponse{},
		Pagination: toPaginationResponse(meta),
	}
	for _, item := range result.Items {
		resp.Items = append(resp.Items, personSummaryResponse{
			PersonID:   item.ID,
			Name:       item.Name,
			Birth:      item.Birth,
			MovieCount: item.MovieCount,
		})
	}

	respondJSON(w, http.StatusOK, resp)
}

func (h *APIHandlers) handleListMovies(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}

	query := r.URL.Query()
	result, meta, err := h.service.ListMovies(r.Context(), service.ListMoviesParams{
		Page:     parseInt(query.Get("page"), 1),
		PageSize: parseInt(query.Get("pageSize"), 50),
		Search:   query.Get("search"),
		Year:     query.Get("year"),
	})
	if err != nil {
		h.logger.Error("failed to list movies", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list movies")
		return
	}

	resp := listMoviesResponse{
		Items:      []movieSummaryResponse{},
		Pagination: toPaginationResponse(meta),
	}
	for _, item := range result.Items {
		resp.Items = append(resp.Items, movieSummaryResponse{
			MovieID:  item.ID,
			Title:    item.Title,
			Year:     item.Year,
			CastSize: item.CastSize,
		})
	}

	respondJSON(w, http.StatusOK, resp)
}

func (h *APIHandlers) handleResolve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}

	name := strings.TrimSpace(r.URL.Query().Get("name"))
	if name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	personID, err := h.service.Resolver().Resolve(name)
	if err == nil {
		respondJSON(w, http.StatusOK, resolveResponse{
			Name:     name,
			Resolved: true,
			PersonID: personID,
		})
		return
	}

	var ambiguity *resolver.AmbiguityError
	if errors.As(err, &ambiguity) {
		respondJSON(w, http.StatusOK, resolveResponse{
			Name:       name,
			Resolved:   false,
			Candidates: toCandidateResponses(ambiguity.Candidates),
		})
		return
	}

	if errors.Is(err, resolver.ErrNotFound) {
		writeError(w, http.StatusNotFound, "person not found")
		return
	}

	h.logger.Error("failed to resolve name", "error", err, "name", name)
	writeError(w, http.StatusInternalServerError, "failed to resolve name")
}

func (h *APIHandlers) handlePath(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}

	query := r.URL.Query()
	sourceID := strings.TrimSpace(query.Get("source"))
	targetID := strings.TrimSpace(query.Get("target"))
	sourceName := strings.TrimSpace(query.Get("sourceName"))
	targetName := strings.TrimSpace(query.Get("targetName"))

	byID := sourceID != "" && targetID != ""
	byName := sourceName != "" && targetName != ""
	if byID == byName {
		writeError(w, http.StatusBadRequest, "provide either source and target IDs or sourceName and targetName")
		return
	}

	start := time.Now()
	var (
		conn      domain.Connection
		connected bool
		err       error
	)
	if byID {
		conn, connected, err = h.service.ConnectionByID(r.Context(), sourceID, targetID)
	} else {
		conn, connected, err = h.service.Connection(r.Context(), sourceName, targetName)
	}
	metrics.SearchDuration.Observe(float64(time.Since(start).Milliseconds()))

	if err != nil {
		metrics.SearchesTotal.WithLabelValues(metrics.OutcomeError).Inc()

		var ambiguity *resolver.AmbiguityError
		if errors.As(err, &ambiguity) {
			respondJSON(w, http.StatusBadRequest, ambiguousPathResponse{
				Error:      "name is ambiguous",
				Name:       ambiguity.Name,
				Candidates: toCandidateResponses(ambiguity.Candidates),
			})
			return
		}
		if errors.Is(err, resolver.ErrNotFound) {
			writeError(w, http.StatusNotFound, "person not found")
			return
		}
		if strings.Contains(err.Error(), "unknown person") {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}

		h.logger.Error("failed to compute path", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to compute path")
		return
	}

	if !connected {
		metrics.SearchesTotal.WithLabelValues(metrics.OutcomeNoPath).Inc()
		respondJSON(w, http.StatusOK, pathResponse{
			SourceID:   conn.SourceID,
			SourceName: conn.SourceName,
			TargetID:   conn.TargetID,
			TargetName: conn.TargetName,
			Connected:  false,
			Steps:      []pathStepResponse{},
		})
		return
	}

	metrics.SearchesTotal.WithLabelValues(metrics.OutcomeFound).Inc()
	metrics.PathLength.Observe(float64(conn.Degrees))

	resp := pathResponse{
		SourceID:   conn.SourceID,
		SourceName: conn.SourceName,
		TargetID:   conn.TargetID,
		TargetName: conn.TargetName,
		Connected:  true,
		Degrees:    conn.Degrees,
		Steps:      []pathStepResponse{},
	}
	for _, step := range conn.Steps {
		resp.Steps = append(resp.Steps, pathStepResponse{
			MovieID:    step.MovieID,
			MovieTitle: step.MovieTitle,
			MovieYear:  step.MovieYear,
			PersonID:   step.PersonID,
			PersonName: step.PersonName,
		})
	}

	respondJSON(w, http.StatusOK, resp)
}

// --- Response DTOs ---

type paginationResponse struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalItems int64 `json:"totalItems"`
	TotalPages int   `json:"totalPages"`
}

type listPeopleResponse struct {
	Items      []personSummaryResponse `json:"items"`
	Pagination paginationResponse      `json:"pagination"`
}

type personSummaryResponse struct {
	PersonID   string `json:"personId"`
	Name       string `json:"name"`
	Birth      string `json:"birth"`
	MovieCount int    `json:"movieCount"`
}

type listMoviesResponse struct {
	Items      []movieSummaryResponse `json:"items"`
	Pagination paginationResponse     `json:"pagination"`
}

type movieSummaryResponse struct {
	MovieID  string `json:"movieId"`
	Title    string `json:"title"`
	Year     string `json:"year"`
	CastSize int    `json:"castSize"`
}

type resolveResponse struct {
	Name       string              `json:"name"`
	Resolved   bool                `json:"resolved"`
	PersonID   string              `json:"personId,omitempty"`
	Candidates []candidateResponse `json:"candidates,omitempty"`
}

type candidateResponse struct {
	PersonID string `json:"personId"`
	Name     string `json:"name"`
	Birth    string `json:"birth"`
}

type pathResponse struct {
	SourceID   string             `json:"sourceId"`
	SourceName string             `json:"sourceName"`
	TargetID   string             `json:"targetId"`
	TargetName string             `json:"targetName"`
	Connected  bool               `json:"connected"`
	Degrees    int                `json:"degrees"`
	Steps      []pathStepResponse `json:"steps"`
}

type pathStepResponse struct {
	MovieID    string `json:"movieId"`
	MovieTitle string `json:"movieTitle"`
	MovieYear  string `json:"movieYear"`
	PersonID   string `json:"personId"`
	PersonName string `json:"personName"`
}

type ambiguousPathResponse struct {
	Error      string              `json:"error"`
	Name       string              `json:"name"`
	Candidates []candidateResponse `json:"candidates"`
}

// --- Helpers ---

func toPaginationResponse(meta service.PaginationMeta) paginationResponse {
	return paginationResponse{
		Page:       meta.Page,
		PageSize:   meta.PageSize,
		TotalItems: meta.TotalItems,
		TotalPages: meta.TotalPages,
	}
}

func toCandidateResponses(candidates []domain.Candidate) []candidateResponse {
	result := make([]candidateResponse, 0, len(candidates))
	for _, c := range candidates {
		result = append(result, candidateResponse{
			PersonID: c.ID,
			Name:     c.Name,
			Birth:    c.Birth,
		})
	}
	return result
}

func parseInt(value string, fallback int) int {
	if value == "" {
		return fallback
	}
	if v, err := strconv.Atoi(value); err == nil {
		return v
	}
	return fallback
}

func writeError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{
		"error": msg,
	})
}

func methodNotAllowed(w http.ResponseWriter, allowed ...string) {
	w.Header().Set("Allow", strings.Join(allowed, ", "))
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}
