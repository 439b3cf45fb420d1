package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cityscope/internal/assistant"
	"cityscope/internal/location"
	"cityscope/internal/session"
	"cityscope/internal/types"

	"github.com/gin-gonic/gin"
)

// stubCompareService parses for real but fabricates records, so handler tests
// run without any provider wiring.
type stubCompareService struct{}

func (stubCompareService) Resolve(_ context.Context, rawQuery string) (*types.LocationRecord, error) {
	parsed, err := location.Parse(rawQuery)
	if err != nil {
		return nil, err
	}
	return &types.LocationRecord{
		Query:  rawQuery,
		Parsed: parsed,
		Education: types.NewCategoryRecord(types.CategoryEducation, types.SourceTable, []types.MetricField{
			{Key: "avg_school_rating", Value: "8.5"},
		}),
	}, nil
}

func newTestApp() *App {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	app := &App{
		router:         gin.New(),
		logger:         logger,
		compareService: stubCompareService{},
		sessions:       session.NewManager(),
		matcher:        assistant.NewMatcher(logger),
	}
	app.registerRoutes()
	return app
}

func doJSON(app *App, method, path, body, sessionID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if sessionID != "" {
		req.Header.Set(sessionHeader, sessionID)
	}
	w := httptest.NewRecorder()
	app.router.ServeHTTP(w, req)
	return w
}

func TestHandleCompare(t *testing.T) {
	app := newTestApp()

	w := doJSON(app, http.MethodPost, "/compare", `{"location_one":"Seattle, WA","location_two":"Portland, OR"}`, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body = %s", w.Code, w.Body.String())
	}

	var resp CompareResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.SessionID == "" {
		t.Error("response has no session_id")
	}
	if got := w.Header().Get(sessionHeader); got != resp.SessionID {
		t.Errorf("%s header = %q, want %q", sessionHeader, got, resp.SessionID)
	}
	if resp.RecordOne == nil || resp.RecordOne.Parsed.City != "Seattle" {
		t.Errorf("record_one = %+v, want Seattle", resp.RecordOne)
	}
}

func TestHandleCompareInputErrors(t *testing.T) {
	app := newTestApp()

	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{
			name:      "second location missing comma",
			body:      `{"location_one":"Seattle, WA","location_two":"Portland OR"}`,
			wantField: "location_two",
		},
		{
			name:      "first location unknown state",
			body:      `{"location_one":"Nowhere, ZZ","location_two":"Portland, OR"}`,
			wantField: "location_one",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(app, http.MethodPost, "/compare", tt.body, "")
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400; body = %s", w.Code, w.Body.String())
			}

			var resp map[string]string
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp["field"] != tt.wantField {
				t.Errorf("field = %q, want %q", resp["field"], tt.wantField)
			}
		})
	}
}

func TestHandleCompareReusesSession(t *testing.T) {
	app := newTestApp()

	first := doJSON(app, http.MethodPost, "/compare", `{"location_one":"Seattle, WA","location_two":"Portland, OR"}`, "")
	id := first.Header().Get(sessionHeader)

	second := doJSON(app, http.MethodPost, "/compare", `{"location_one":"Austin, TX","location_two":"Denver, CO"}`, id)
	if got := second.Header().Get(sessionHeader); got != id {
		t.Errorf("session ID changed from %q to %q on reuse", id, got)
	}
}

func TestHandleAskGuards(t *testing.T) {
	app := newTestApp()

	t.Run("missing header", func(t *testing.T) {
		w := doJSON(app, http.MethodPost, "/assistant/ask", `{"question":"schools?"}`, "")
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("unknown session", func(t *testing.T) {
		w := doJSON(app, http.MethodPost, "/assistant/ask", `{"question":"schools?"}`, "nope")
		if w.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", w.Code)
		}
	})

	t.Run("session without comparison", func(t *testing.T) {
		sess := app.sessions.Create()
		w := doJSON(app, http.MethodPost, "/assistant/ask", `{"question":"schools?"}`, sess.ID)
		if w.Code != http.StatusConflict {
			t.Errorf("status = %d, want 409", w.Code)
		}
	})
}

func TestAskAndHistoryFlow(t *testing.T) {
	app := newTestApp()

	compared := doJSON(app, http.MethodPost, "/compare", `{"location_one":"Seattle, WA","location_two":"Portland, OR"}`, "")
	id := compared.Header().Get(sessionHeader)

	ask := doJSON(app, http.MethodPost, "/assistant/ask", `{"question":"Which schools are better?"}`, id)
	if ask.Code != http.StatusOK {
		t.Fatalf("ask status = %d, want 200; body = %s", ask.Code, ask.Body.String())
	}

	var asked AskResponse
	if err := json.Unmarshal(ask.Body.Bytes(), &asked); err != nil {
		t.Fatalf("failed to decode ask response: %v", err)
	}
	if !strings.HasPrefix(asked.Answer, "Based on the comparison between Seattle, WA and Portland, OR, ") {
		t.Errorf("answer = %q, want the comparison prefix", asked.Answer)
	}

	history := doJSON(app, http.MethodGet, "/assistant/history", "", id)
	if history.Code != http.StatusOK {
		t.Fatalf("history status = %d, want 200", history.Code)
	}

	var hist HistoryResponse
	if err := json.Unmarshal(history.Body.Bytes(), &hist); err != nil {
		t.Fatalf("failed to decode history response: %v", err)
	}
	if len(hist.Chat) != 1 || hist.Chat[0].Question != "Which schools are better?" {
		t.Errorf("chat = %+v, want the one asked question", hist.Chat)
	}
}
