package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestJSONResponseDefaults(t *testing.T) {
	rec := httptest.NewRecorder()

	NewJSONResponse().Body(map[string]int{"count": 3}).Write(rec)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Errorf("Content-Type = %q", ct)
	}

	var body map[string]int
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body["count"] != 3 {
		t.Errorf("count = %d, want 3", body["count"])
	}
}

func TestJSONResponseError(t *testing.T) {
	rec := httptest.NewRecorder()

	NewJSONResponse().
		Status(http.StatusTooManyRequests).
		Header("Retry-After", "60").
		Error("rate limit exceeded").
		Write(rec)

	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("status = %d, want 429", rec.Code)
	}
	if rec.Header().Get("Retry-After") != "60" {
		t.Error("missing Retry-After header")
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body["error"] != "rate limit exceeded" {
		t.Errorf("error = %q", body["error"])
	}
}

func TestJSONResponseUnencodablePayload(t *testing.T) {
	rec := httptest.NewRecorder()

	NewJSONResponse().Body(make(chan int)).Write(rec)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}
