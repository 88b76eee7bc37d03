package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pyquest/internal/evaluator"
)

func newLessonRequest(method, target, id, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	req.SetPathValue("id", id)
	return req
}

func TestGetLesson(t *testing.T) {
	handler := NewLessonHandler(nil)

	tests := []struct {
		name       string
		id         string
		wantStatus int
	}{
		{"first lesson", "1", http.StatusOK},
		{"last lesson", "130", http.StatusOK},
		{"unknown lesson", "999", http.StatusNotFound},
		{"zero", "0", http.StatusNotFound},
		{"non-numeric", "abc", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			handler.GetLesson(recorder, newLessonRequest("GET", "/api/lessons/"+tt.id, tt.id, ""))

			if recorder.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.wantStatus, recorder.Code, recorder.Body.String())
			}
		})
	}
}

func TestGetLessonIncludesLevel(t *testing.T) {
	handler := NewLessonHandler(nil)
	recorder := httptest.NewRecorder()

	handler.GetLesson(recorder, newLessonRequest("GET", "/api/lessons/16", "16", ""))

	var body lessonResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.ID != 16 {
		t.Fatalf("expected lesson 16, got %d", body.ID)
	}
	if body.Level.ID != 2 {
		t.Fatalf("expected lesson 16 to belong to level 2, got %d", body.Level.ID)
	}
}

func TestRunCode(t *testing.T) {
	handler := NewLessonHandler(nil)

	tests := []struct {
		name      string
		id        string
		source    string
		wantLines []string
	}{
		{
			name:      "print hello",
			id:        "1",
			source:    `print("Hello, world!")`,
			wantLines: []string{"Hello, world!"},
		},
		{
			name:      "empty source gives no lines",
			id:        "1",
			source:    "",
			wantLines: nil,
		},
		{
			name:      "sqrt without import",
			id:        "76",
			source:    "print(math.sqrt(16))",
			wantLines: []string{"Error: you need to 'import math' first!"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, err := json.Marshal(runRequest{Source: tt.source})
			if err != nil {
				t.Fatal(err)
			}
			recorder := httptest.NewRecorder()
			handler.RunCode(recorder, newLessonRequest("POST", "/api/lessons/"+tt.id+"/run", tt.id, string(payload)))

			if recorder.Code != http.StatusOK {
				t.Fatalf("expected status 200, got %d: %s", recorder.Code, recorder.Body.String())
			}

			var result evaluator.Result
			if err := json.Unmarshal(recorder.Body.Bytes(), &result); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if len(result.Lines) != len(tt.wantLines) {
				t.Fatalf("expected %d lines, got %v", len(tt.wantLines), result.Lines)
			}
			for i, want := range tt.wantLines {
				if result.Lines[i] != want {
					t.Fatalf("line %d: expected %q, got %q", i, want, result.Lines[i])
				}
			}
		})
	}
}

func TestRunCodeUnknownLessonIs404(t *testing.T) {
	handler := NewLessonHandler(nil)
	recorder := httptest.NewRecorder()

	handler.RunCode(recorder, newLessonRequest("POST", "/api/lessons/999/run", "999", `{"source":"print(\"hi\")"}`))

	if recorder.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", recorder.Code)
	}
}

func TestRunCodeRejectsBadBody(t *testing.T) {
	handler := NewLessonHandler(nil)
	recorder := httptest.NewRecorder()

	handler.RunCode(recorder, newLessonRequest("POST", "/api/lessons/1/run", "1", "not json"))

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", recorder.Code)
	}
}

func TestCompleteLessonRequiresAccount(t *testing.T) {
	handler := NewLessonHandler(nil)
	recorder := httptest.NewRecorder()

	handler.CompleteLesson(recorder, newLessonRequest("POST", "/api/lessons/1/complete", "1", `{"xp":25,"coins":10,"attempts":1,"timeSpentSeconds":30}`))

	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", recorder.Code)
	}
}
