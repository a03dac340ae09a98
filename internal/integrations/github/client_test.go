// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-02-02
// Last Modified: 2026-10-14

package github

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/google/go-github/v60/github"
)

type recordedRequest struct {
	Method string
	Path   string
	Body   map[string]any
}

// newTestClient returns a Client that talks to an in-process server and the
// list of requests the server received.
func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *[]recordedRequest) {
	t.Helper()

	var requests []recordedRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := recordedRequest{Method: r.Method, Path: r.URL.Path}
		if data, _ := io.ReadAll(r.Body); len(data) > 0 {
			_ = json.Unmarshal(data, &rec.Body)
		}
		requests = append(requests, rec)
		if handler != nil {
			handler(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(server.Close)

	gh := github.NewClient(nil)
	base, err := url.Parse(server.URL + "/")
	if err != nil {
		t.Fatalf("failed to parse server URL: %v", err)
	}
	gh.BaseURL = base

	return &Client{client: gh}, &requests
}

func TestCreateCommentValidation(t *testing.T) {
	// Test that CreateComment rejects empty body
	client := &Client{client: nil} // nil client for validation testing

	err := client.CreateComment(context.Background(), "org", "repo", 1, "")
	if err == nil {
		t.Error("Expected error for empty comment body")
	}

	err = client.CreateComment(context.Background(), "org", "repo", 1, "   ")
	if err == nil {
		t.Error("Expected error for whitespace-only comment body")
	}
}

func TestCreateReviewValidation(t *testing.T) {
	client := &Client{client: nil}

	if err := client.CreateReview(context.Background(), "org", "repo", 1, "", "COMMENT"); err == nil {
		t.Error("Expected error for empty review body")
	}
	if err := client.CreateReview(context.Background(), "org", "repo", 1, "\n\t", "COMMENT"); err == nil {
		t.Error("Expected error for whitespace-only review body")
	}
}

func TestRequests(t *testing.T) {
	tests := []struct {
		name      string
		call      func(c *Client) error
		method    string
		path      string
		wantField string
		wantValue string
	}{
		{
			name: "create comment",
			call: func(c *Client) error {
				return c.CreateComment(context.Background(), "o", "r", 1, "hello")
			},
			method:    http.MethodPost,
			path:      "/repos/o/r/issues/1/comments",
			wantField: "body",
			wantValue: "hello",
		},
		{
			name: "close issue",
			call: func(c *Client) error {
				return c.CloseIssue(context.Background(), "o", "r", 1)
			},
			method:    http.MethodPatch,
			path:      "/repos/o/r/issues/1",
			wantField: "state",
			wantValue: "closed",
		},
		{
			name: "create review",
			call: func(c *Client) error {
				return c.CreateReview(context.Background(), "o", "r", 1, "please fix", "COMMENT")
			},
			method:    http.MethodPost,
			path:      "/repos/o/r/pulls/1/reviews",
			wantField: "event",
			wantValue: "COMMENT",
		},
		{
			name: "close pull request",
			call: func(c *Client) error {
				return c.ClosePullRequest(context.Background(), "o", "r", 1)
			},
			method:    http.MethodPatch,
			path:      "/repos/o/r/pulls/1",
			wantField: "state",
			wantValue: "closed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, requests := newTestClient(t, nil)

			if err := tt.call(client); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(*requests) != 1 {
				t.Fatalf("expected 1 request, got %d", len(*requests))
			}

			req := (*requests)[0]
			if req.Method != tt.method || req.Path != tt.path {
				t.Errorf("expected %s %s, got %s %s", tt.method, tt.path, req.Method, req.Path)
			}
			if got, _ := req.Body[tt.wantField].(string); got != tt.wantValue {
				t.Errorf("expected %s=%q, got %q", tt.wantField, tt.wantValue, got)
			}
		})
	}
}

func TestRequestFailure(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message":"Resource not accessible by integration"}`))
	})

	if err := client.CloseIssue(context.Background(), "o", "r", 1); err == nil {
		t.Error("Expected error for forbidden response")
	}
}

func TestGetFileContent(t *testing.T) {
	client, requests := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		// base64("issue:\n  pattern: x\n")
		_, _ = w.Write([]byte(`{"type":"file","encoding":"base64","content":"aXNzdWU6CiAgcGF0dGVybjogeAo="}`))
	})

	data, err := client.GetFileContent(context.Background(), "o", "shared", ".github/issue-gate.yaml", "main")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != "issue:\n  pattern: x\n" {
		t.Errorf("unexpected content %q", string(data))
	}
	if got := (*requests)[0].Path; got != "/repos/o/shared/contents/.github/issue-gate.yaml" {
		t.Errorf("unexpected path %q", got)
	}
}

func TestGetFileContentDirectory(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"type":"file","name":"a.yaml"}]`))
	})

	if _, err := client.GetFileContent(context.Background(), "o", "r", ".github", ""); err == nil {
		t.Error("Expected error when path is a directory")
	}
}

func TestNewClientForURL(t *testing.T) {
	tests := []struct {
		name     string
		apiURL   string
		wantBase string
	}{
		{"empty uses public API", "", "https://api.github.com/"},
		{"public API", "https://api.github.com", "https://api.github.com/"},
		{"enterprise", "https://ghe.example.com/api/v3", "https://ghe.example.com/api/v3/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClientForURL(context.Background(), "token", tt.apiURL)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := client.client.BaseURL.String(); got != tt.wantBase {
				t.Errorf("expected base URL %q, got %q", tt.wantBase, got)
			}
		})
	}
}
