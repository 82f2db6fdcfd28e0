package draft

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func generationResponse(t *testing.T, title, content string) []byte {
	t.Helper()
	text, err := json.Marshal(Draft{Title: title, Content: content})
	if err != nil {
		t.Fatal(err)
	}
	body, err := json.Marshal(map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]any{{"text": string(text)}}}},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	return body
}

func TestGenerateSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		_, _ = w.Write(generationResponse(t, "A Better Title", "## Generated\n\ntext"))
	}))
	defer srv.Close()

	a := New(srv.URL, "gemini-2.5-flash", "test-key", 5*time.Second)

	d, err := a.Generate(context.Background(), "my title", "my notes")
	if err != nil {
		t.Fatal(err)
	}
	if d.Title != "A Better Title" || d.Content != "## Generated\n\ntext" {
		t.Fatalf("unexpected draft: %+v", d)
	}
}

func TestGenerateRemoteFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	a := New(srv.URL, "gemini-2.5-flash", "test-key", 5*time.Second)

	if _, err := a.Generate(context.Background(), "t", "n"); err == nil {
		t.Fatal("expected an error for a failing remote")
	}
}

func TestGenerateUnparsableOutput(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := json.Marshal(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{{"text": "not a json object"}}}},
			},
		})
		_, _ = w.Write(body)
	}))
	defer srv.Close()

	a := New(srv.URL, "gemini-2.5-flash", "test-key", 5*time.Second)

	if _, err := a.Generate(context.Background(), "t", "n"); err == nil {
		t.Fatal("expected an error for unparsable generated output")
	}
}

func TestGenerateEmptyResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	a := New(srv.URL, "gemini-2.5-flash", "test-key", 5*time.Second)

	if _, err := a.Generate(context.Background(), "t", "n"); err == nil {
		t.Fatal("expected an error for an empty candidate list")
	}
}

func TestGenerateSingleInFlight(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-release
		_, _ = w.Write(generationResponse(t, "T", "C"))
	}))
	defer srv.Close()

	a := New(srv.URL, "gemini-2.5-flash", "test-key", 10*time.Second)

	firstErr := make(chan error, 1)
	go func() {
		_, err := a.Generate(context.Background(), "t", "n")
		firstErr <- err
	}()

	<-started
	if _, err := a.Generate(context.Background(), "t", "n"); !errors.Is(err, ErrInFlight) {
		t.Fatalf("expected ErrInFlight for an overlapping call, got %v", err)
	}

	close(release)
	if err := <-firstErr; err != nil {
		t.Fatalf("first call should still succeed, got %v", err)
	}

	// the guard resets once the pending call resolves
	srv2 := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(generationResponse(t, "T2", "C2"))
	}))
	defer srv2.Close()
	a2 := *a
	a2.endpoint = srv2.URL
	if _, err := a2.Generate(context.Background(), "t", "n"); err != nil {
		t.Fatalf("expected the assistant to be idle again, got %v", err)
	}
}

func TestAppend(t *testing.T) {
	if got := Append("", "generated"); got != "generated" {
		t.Fatalf("empty existing content should not gain a separator: %q", got)
	}
	if got := Append("typed so far", "generated"); got != "typed so far\n\ngenerated" {
		t.Fatalf("expected blank-line separator: %q", got)
	}
}
