package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/vanshika/degrees/backend/internal/dataset"
	"github.com/vanshika/degrees/backend/internal/service"
)

func testRouter(t *testing.T, ds *dataset.Dataset) http.Handler {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.NewDegreesService(ds, nil)
	return NewRouter(logger, RouterDependencies{
		Health: DatasetHealthService{Dataset: ds},
		API:    NewAPIHandlers(logger, svc),
	})
}

func fixtureDataset() *dataset.Dataset {
	return dataset.NewBuilder().
		AddPerson("1", "Kevin Bacon", "1958").
		AddPerson("2", "Tom Hanks", "1956").
		AddPerson("3", "Bill Paxton", "1955").
		AddPerson("4", "Chris Evans", "1981").
		AddPerson("5", "Chris Evans", "1966").
		AddPerson("9", "Greta Gerwig", "1983").
		AddMovie("10", "Apollo 13", "1995").
		AddMovie("11", "The Terminator", "1984").
		AddMovie("20", "Lady Bird", "2017").
		AddStar("1", "10").
		AddStar("2", "10").
		AddStar("3", "10").
		AddStar("3", "11").
		AddStar("9", "20").
		Build()
}

func doRequest(t *testing.T, handler http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), dst); err != nil {
		t.Fatalf("failed to decode body %q: %v", rec.Body.String(), err)
	}
}

func TestHealthEndpoint(t *testing.T) {
	handler := testRouter(t, fixtureDataset())

	rec := doRequest(t, handler, http.MethodGet, "/healthz")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body map[string]any
	decodeBody(t, rec, &body)
	if body["status"] != "ok" {
		t.Errorf("expected status ok, got %v", body)
	}
}

func TestHealthEndpoint_EmptyDataset(t *testing.T) {
	handler := testRouter(t, dataset.NewBuilder().Build())

	rec := doRequest(t, handler, http.MethodGet, "/healthz")
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 for empty dataset, got %d", rec.Code)
	}
}

func TestListPeopleEndpoint(t *testing.T) {
	handler := testRouter(t, fixtureDataset())

	rec := doRequest(t, handler, http.MethodGet, "/people?search=chris")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Items []struct {
			PersonID string `json:"personId"`
			Name     string `json:"name"`
		} `json:"items"`
		Pagination struct {
			TotalItems int64 `json:"totalItems"`
		} `json:"pagination"`
	}
	decodeBody(t, rec, &body)
	if len(body.Items) != 2 || body.Pagination.TotalItems != 2 {
		t.Errorf("expected 2 matching people, got %+v", body)
	}
}

func TestListMoviesEndpoint(t *testing.T) {
	handler := testRouter(t, fixtureDataset())

	rec := doRequest(t, handler, http.MethodGet, "/movies?year=1995")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Items []struct {
			Title    string `json:"title"`
			CastSize int    `json:"castSize"`
		} `json:"items"`
	}
	decodeBody(t, rec, &body)
	if len(body.Items) != 1 || body.Items[0].Title != "Apollo 13" || body.Items[0].CastSize != 3 {
		t.Errorf("unexpected movies payload: %+v", body)
	}
}

func TestListEndpoints_MethodNotAllowed(t *testing.T) {
	handler := testRouter(t, fixtureDataset())

	for _, target := range []string{"/people", "/movies", "/resolve", "/path"} {
		rec := doRequest(t, handler, http.MethodPost, target)
		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("POST %s: expected 405, got %d", target, rec.Code)
		}
		if allow := rec.Header().Get("Allow"); allow != http.MethodGet {
			t.Errorf("POST %s: expected Allow header %q, got %q", target, http.MethodGet, allow)
		}
	}
}

func TestResolveEndpoint_Unique(t *testing.T) {
	handler := testRouter(t, fixtureDataset())

	rec := doRequest(t, handler, http.MethodGet, "/resolve?name=Tom+Hanks")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Resolved bool   `json:"resolved"`
		PersonID string `json:"personId"`
	}
	decodeBody(t, rec, &body)
	if !body.Resolved || body.PersonID != "2" {
		t.Errorf("unexpected resolve payload: %+v", body)
	}
}

func TestResolveEndpoint_Ambiguous(t *testing.T) {
	handler := testRouter(t, fixtureDataset())

	rec := doRequest(t, handler, http.MethodGet, "/resolve?name=Chris+Evans")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Resolved   bool `json:"resolved"`
		Candidates []struct {
			PersonID string `json:"personId"`
			Birth    string `json:"birth"`
		} `json:"candidates"`
	}
	decodeBody(t, rec, &body)
	if body.Resolved {
		t.Error("ambiguous name must not resolve")
	}
	if len(body.Candidates) != 2 {
		t.Errorf("expected 2 candidates, got %+v", body.Candidates)
	}
}

func TestResolveEndpoint_NotFound(t *testing.T) {
	handler := testRouter(t, fixtureDataset())

	rec := doRequest(t, handler, http.MethodGet, "/resolve?name=Nobody")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestResolveEndpoint_MissingName(t *testing.T) {
	handler := testRouter(t, fixtureDataset())

	rec := doRequest(t, handler, http.MethodGet, "/resolve")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestPathEndpoint_ByID(t *testing.T) {
	handler := testRouter(t, fixtureDataset())

	rec := doRequest(t, handler, http.MethodGet, "/path?source=1&target=2")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Connected bool `json:"connected"`
		Degrees   int  `json:"degrees"`
		Steps     []struct {
			MovieTitle string `json:"movieTitle"`
			PersonName string `json:"personName"`
		} `json:"steps"`
	}
	decodeBody(t, rec, &body)
	if !body.Connected || body.Degrees != 1 {
		t.Fatalf("unexpected path payload: %+v", body)
	}
	if body.Steps[0].MovieTitle != "Apollo 13" || body.Steps[0].PersonName != "Tom Hanks" {
		t.Errorf("unexpected step: %+v", body.Steps[0])
	}
}

func TestPathEndpoint_ByName(t *testing.T) {
	handler := testRouter(t, fixtureDataset())

	rec := doRequest(t, handler, http.MethodGet, "/path?sourceName=Kevin+Bacon&targetName=Bill+Paxton")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Connected bool `json:"connected"`
		Degrees   int  `json:"degrees"`
	}
	decodeBody(t, rec, &body)
	if !body.Connected || body.Degrees != 1 {
		t.Errorf("unexpected path payload: %+v", body)
	}
}

func TestPathEndpoint_NoPath(t *testing.T) {
	handler := testRouter(t, fixtureDataset())

	rec := doRequest(t, handler, http.MethodGet, "/path?source=1&target=9")
	if rec.Code != http.StatusOK {
		t.Fatalf("absence of a path is not an HTTP error, got %d", rec.Code)
	}

	var body struct {
		Connected bool `json:"connected"`
		Steps     []struct{}
	}
	decodeBody(t, rec, &body)
	if body.Connected {
		t.Error("expected connected=false")
	}
}

func TestPathEndpoint_AmbiguousName(t *testing.T) {
	handler := testRouter(t, fixtureDataset())

	rec := doRequest(t, handler, http.MethodGet, "/path?sourceName=Chris+Evans&targetName=Tom+Hanks")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for ambiguous name, got %d", rec.Code)
	}

	var body struct {
		Name       string     `json:"name"`
		Candidates []struct{} `json:"candidates"`
	}
	decodeBody(t, rec, &body)
	if body.Name != "Chris Evans" || len(body.Candidates) != 2 {
		t.Errorf("unexpected ambiguity payload: %+v", body)
	}
}

func TestPathEndpoint_UnknownPerson(t *testing.T) {
	handler := testRouter(t, fixtureDataset())

	rec := doRequest(t, handler, http.MethodGet, "/path?source=1&target=404")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown id, got %d", rec.Code)
	}

	rec = doRequest(t, handler, http.MethodGet, "/path?sourceName=Nobody&targetName=Tom+Hanks")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown name, got %d", rec.Code)
	}
}

func TestPathEndpoint_BadParameterCombination(t *testing.T) {
	handler := testRouter(t, fixtureDataset())

	for _, target := range []string{
		"/path",
		"/path?source=1",
		"/path?source=1&targetName=Tom+Hanks",
		"/path?source=1&target=2&sourceName=Kevin+Bacon&targetName=Tom+Hanks",
	} {
		rec := doRequest(t, handler, http.MethodGet, target)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("GET %s: expected 400, got %d", target, rec.Code)
		}
	}
}

func TestPathEndpoint_SamePerson(t *testing.T) {
	handler := testRouter(t, fixtureDataset())

	rec := doRequest(t, handler, http.MethodGet, "/path?source=1&target=1")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Connected bool `json:"connected"`
		Degrees   int  `json:"degrees"`
	}
	decodeBody(t, rec, &body)
	if !body.Connected || body.Degrees != 0 {
		t.Errorf("expected zero-degree connection, got %+v", body)
	}
}

func TestCORSMiddleware(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ds := fixtureDataset()
	svc := service.NewDegreesService(ds, nil)
	handler := NewRouter(logger, RouterDependencies{
		Health:         DatasetHealthService{Dataset: ds},
		API:            NewAPIHandlers(logger, svc),
		AllowedOrigins: []string{"https://app.example.com"},
	})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Origin", "https://app.example.com")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example.com" {
		t.Errorf("expected allowed origin echoed, got %q", got)
	}

	preflight := httptest.NewRequest(http.MethodOptions, "/path", nil)
	preflight.Header.Set("Origin", "https://evil.example.com")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, preflight)

	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403 for pre-flight from unknown origin, got %d", rec.Code)
	}
}
