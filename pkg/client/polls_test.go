package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pollyhq/polly-go/internal/models"
)

func TestCreatePoll(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		question string
		options  []string
		wantErr  bool
	}{
		{
			name:     "successful creation",
			token:    "tok-123",
			question: "Tabs or spaces?",
			options:  []string{"Tabs", "Spaces"},
		},
		{
			name:     "empty token",
			token:    "",
			question: "Tabs or spaces?",
			options:  []string{"Tabs", "Spaces"},
			wantErr:  true,
		},
		{
			name:     "empty question",
			token:    "tok-123",
			question: "   ",
			options:  []string{"Tabs", "Spaces"},
			wantErr:  true,
		},
		{
			name:     "single option",
			token:    "tok-123",
			question: "Tabs or spaces?",
			options:  []string{"Tabs"},
			wantErr:  true,
		},
		{
			name:     "blank option",
			token:    "tok-123",
			question: "Tabs or spaces?",
			options:  []string{"Tabs", " "},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.wantErr {
				client, err := New(noRequestServer(t).URL)
				if err != nil {
					t.Fatalf("New() error = %v", err)
				}

				_, err = client.CreatePoll(context.Background(), tt.token, tt.question, tt.options)
				if err == nil {
					t.Error("CreatePoll() expected validation error, got nil")
				}
				return
			}

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/polls" {
					t.Errorf("Expected path /polls, got %s", r.URL.Path)
				}
				if r.Method != http.MethodPost {
					t.Errorf("Expected method POST, got %s", r.Method)
				}
				if auth := r.Header.Get("Authorization"); auth != "Bearer "+tt.token {
					t.Errorf("Expected bearer token header, got %q", auth)
				}

				var req models.PollCreate
				if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
					t.Errorf("Failed to decode request: %v", err)
				}
				if req.Question != tt.question {
					t.Errorf("Expected question %q, got %q", tt.question, req.Question)
				}

				poll := models.PollOut{
					ID:       7,
					Question: req.Question,
					OwnerID:  1,
					Options: []models.OptionOut{
						{ID: 11, Text: req.Options[0], PollID: 7},
						{ID: 12, Text: req.Options[1], PollID: 7},
					},
				}
				w.Header().Set("Content-Type", "application/json")
				json.NewEncoder(w).Encode(poll)
			}))
			defer server.Close()

			client, err := New(server.URL)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}

			res, err := client.CreatePoll(context.Background(), tt.token, tt.question, tt.options)
			if err != nil {
				t.Fatalf("CreatePoll() error = %v", err)
			}

			if !res.Success {
				t.Fatalf("CreatePoll() outcome = %+v, want success", res.Outcome)
			}
			if res.Poll == nil || res.Poll.ID != 7 {
				t.Errorf("CreatePoll() poll = %+v, want ID 7", res.Poll)
			}
			if len(res.Poll.Options) != 2 {
				t.Errorf("CreatePoll() options = %d, want 2", len(res.Poll.Options))
			}
		})
	}
}

func TestCreatePollRemoteErrors(t *testing.T) {
	tests := []struct {
		name        string
		statusCode  int
		body        string
		wantError   string
		wantMessage string
	}{
		{
			name:        "unauthorized",
			statusCode:  http.StatusUnauthorized,
			body:        `{"detail":"Could not validate credentials"}`,
			wantError:   "Unauthorized",
			wantMessage: `{"detail":"Could not validate credentials"}`,
		},
		{
			name:        "validation error passes server text through",
			statusCode:  http.StatusUnprocessableEntity,
			body:        `{"detail":[{"msg":"field required"}]}`,
			wantError:   "Validation error",
			wantMessage: `{"detail":[{"msg":"field required"}]}`,
		},
		{
			name:        "generic bad request",
			statusCode:  http.StatusBadRequest,
			body:        `{"detail":"bad request"}`,
			wantError:   "HTTP 400",
			wantMessage: `{"detail":"bad request"}`,
		},
		{
			name:       "server error without body",
			statusCode: http.StatusBadGateway,
			wantError:  "HTTP 502",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.statusCode)
				fmt.Fprint(w, tt.body)
			}))
			defer server.Close()

			client, err := New(server.URL)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}

			res, err := client.CreatePoll(context.Background(), "tok-123", "Tabs or spaces?", []string{"Tabs", "Spaces"})
			if err != nil {
				t.Fatalf("CreatePoll() error = %v", err)
			}

			if res.Success {
				t.Error("CreatePoll() expected failure outcome")
			}
			if res.StatusCode == nil || *res.StatusCode != tt.statusCode {
				t.Errorf("CreatePoll() status = %v, want %d", res.StatusCode, tt.statusCode)
			}
			if res.Error != tt.wantError {
				t.Errorf("CreatePoll() error = %q, want %q", res.Error, tt.wantError)
			}
			if tt.wantMessage != "" && res.Message != tt.wantMessage {
				t.Errorf("CreatePoll() message = %q, want %q", res.Message, tt.wantMessage)
			}
		})
	}
}

func TestListPolls(t *testing.T) {
	makePolls := func(n int) []models.PollOut {
		polls := make([]models.PollOut, n)
		for i := range polls {
			polls[i] = models.PollOut{ID: i + 1, Question: fmt.Sprintf("Question %d", i+1)}
		}
		return polls
	}

	tests := []struct {
		name         string
		skip         int
		limit        int
		returned     int
		wantHasMore  bool
		wantNextSkip int
	}{
		{
			name:         "full page has more",
			skip:         0,
			limit:        10,
			returned:     10,
			wantHasMore:  true,
			wantNextSkip: 10,
		},
		{
			name:     "partial page is the end",
			skip:     0,
			limit:    10,
			returned: 3,
		},
		{
			name:         "next skip advances from offset",
			skip:         20,
			limit:        10,
			returned:     10,
			wantHasMore:  true,
			wantNextSkip: 30,
		},
		{
			name:     "empty page",
			skip:     50,
			limit:    10,
			returned: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/polls" {
					t.Errorf("Expected path /polls, got %s", r.URL.Path)
				}
				q := r.URL.Query()
				if got := q.Get("skip"); got != fmt.Sprint(tt.skip) {
					t.Errorf("Expected skip %d, got %s", tt.skip, got)
				}
				if got := q.Get("limit"); got != fmt.Sprint(tt.limit) {
					t.Errorf("Expected limit %d, got %s", tt.limit, got)
				}

				w.Header().Set("Content-Type", "application/json")
				json.NewEncoder(w).Encode(makePolls(tt.returned))
			}))
			defer server.Close()

			client, err := New(server.URL)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}

			res, err := client.ListPolls(context.Background(), tt.skip, tt.limit)
			if err != nil {
				t.Fatalf("ListPolls() error = %v", err)
			}

			if !res.Success {
				t.Fatalf("ListPolls() outcome = %+v, want success", res.Outcome)
			}
			if res.Count != tt.returned {
				t.Errorf("ListPolls() count = %d, want %d", res.Count, tt.returned)
			}
			if res.HasMore != tt.wantHasMore {
				t.Errorf("ListPolls() has_more = %v, want %v", res.HasMore, tt.wantHasMore)
			}
			if tt.wantHasMore {
				if res.NextSkip == nil || *res.NextSkip != tt.wantNextSkip {
					t.Errorf("ListPolls() next_skip = %v, want %d", res.NextSkip, tt.wantNextSkip)
				}
			} else if res.NextSkip != nil {
				t.Errorf("ListPolls() next_skip = %d, want nil", *res.NextSkip)
			}
		})
	}
}

func TestListPollsValidation(t *testing.T) {
	client, err := New(noRequestServer(t).URL)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if _, err := client.ListPolls(context.Background(), -1, 10); err == nil {
		t.Error("ListPolls() expected error for negative skip")
	}
	if _, err := client.ListPolls(context.Background(), 0, 0); err == nil {
		t.Error("ListPolls() expected error for non-positive limit")
	}
}

func TestVote(t *testing.T) {
	tests := []struct {
		name       string
		token      string
		pollID     int
		optionID   int
		statusCode int
		wantErr    bool
		wantError  string
	}{
		{
			name:       "successful vote",
			token:      "tok-123",
			pollID:     7,
			optionID:   11,
			statusCode: http.StatusOK,
		},
		{
			name:       "poll not found",
			token:      "tok-123",
			pollID:     99,
			optionID:   11,
			statusCode: http.StatusNotFound,
			wantError:  "Not found",
		},
		{
			name:     "empty token",
			token:    "",
			pollID:   7,
			optionID: 11,
			wantErr:  true,
		},
		{
			name:     "non-positive poll ID",
			token:    "tok-123",
			pollID:   0,
			optionID: 11,
			wantErr:  true,
		},
		{
			name:     "non-positive option ID",
			token:    "tok-123",
			pollID:   7,
			optionID: -1,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.wantErr {
				client, err := New(noRequestServer(t).URL)
				if err != nil {
					t.Fatalf("New() error = %v", err)
				}

				_, err = client.Vote(context.Background(), tt.token, tt.pollID, tt.optionID)
				if err == nil {
					t.Error("Vote() expected validation error, got nil")
				}
				return
			}

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				expectedPath := fmt.Sprintf("/polls/%d/vote", tt.pollID)
				if r.URL.Path != expectedPath {
					t.Errorf("Expected path %s, got %s", expectedPath, r.URL.Path)
				}

				var req models.VoteCreate
				if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
					t.Errorf("Failed to decode request: %v", err)
				}
				if req.OptionID != tt.optionID {
					t.Errorf("Expected option ID %d, got %d", tt.optionID, req.OptionID)
				}

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.statusCode)
				if tt.statusCode == http.StatusOK {
					json.NewEncoder(w).Encode(models.VoteOut{ID: 1, UserID: 1, OptionID: tt.optionID})
				} else {
					json.NewEncoder(w).Encode(map[string]string{"detail": "Poll not found"})
				}
			}))
			defer server.Close()

			client, err := New(server.URL)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}

			res, err := client.Vote(context.Background(), tt.token, tt.pollID, tt.optionID)
			if err != nil {
				t.Fatalf("Vote() error = %v", err)
			}

			if tt.wantError != "" {
				if res.Success {
					t.Error("Vote() expected failure outcome")
				}
				if res.Error != tt.wantError {
					t.Errorf("Vote() error = %q, want %q", res.Error, tt.wantError)
				}
				return
			}

			if !res.Success {
				t.Fatalf("Vote() outcome = %+v, want success", res.Outcome)
			}
			if res.Vote == nil || res.Vote.OptionID != tt.optionID {
				t.Errorf("Vote() vote = %+v, want option ID %d", res.Vote, tt.optionID)
			}
		})
	}
}

func TestGetPollResults(t *testing.T) {
	results := models.PollResults{
		PollID:   7,
		Question: "Tabs or spaces?",
		Results: []models.OptionResult{
			{OptionID: 11, Text: "Tabs", VoteCount: 3},
			{OptionID: 12, Text: "Spaces", VoteCount: 5},
		},
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/polls/7/results" {
			t.Errorf("Expected path /polls/7/results, got %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(results)
	}))
	defer server.Close()

	client, err := New(server.URL)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if _, err := client.GetPollResults(context.Background(), 0); err == nil {
		t.Error("GetPollResults() expected error for non-positive poll ID")
	}

	res, err := client.GetPollResults(context.Background(), 7)
	if err != nil {
		t.Fatalf("GetPollResults() error = %v", err)
	}

	if !res.Success {
		t.Fatalf("GetPollResults() outcome = %+v, want success", res.Outcome)
	}
	if res.Results == nil || len(res.Results.Results) != 2 {
		t.Fatalf("GetPollResults() results = %+v, want 2 tallies", res.Results)
	}
	if res.Results.Results[1].VoteCount != 5 {
		t.Errorf("GetPollResults() vote count = %d, want 5", res.Results.Results[1].VoteCount)
	}
}

func TestDeletePoll(t *testing.T) {
	tests := []struct {
		name       string
		token      string
		pollID     int
		statusCode int
		wantErr    bool
		wantError  string
	}{
		{
			name:       "successful deletion",
			token:      "tok-123",
			pollID:     7,
			statusCode: http.StatusNoContent,
		},
		{
			name:       "poll not found",
			token:      "tok-123",
			pollID:     99,
			statusCode: http.StatusNotFound,
			wantError:  "Not found",
		},
		{
			name:       "expired token",
			token:      "tok-stale",
			pollID:     7,
			statusCode: http.StatusUnauthorized,
			wantError:  "Unauthorized",
		},
		{
			name:    "empty token",
			token:   "",
			pollID:  7,
			wantErr: true,
		},
		{
			name:    "non-positive poll ID",
			token:   "tok-123",
			pollID:  -5,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.wantErr {
				client, err := New(noRequestServer(t).URL)
				if err != nil {
					t.Fatalf("New() error = %v", err)
				}

				_, err = client.DeletePoll(context.Background(), tt.token, tt.pollID)
				if err == nil {
					t.Error("DeletePoll() expected validation error, got nil")
				}
				return
			}

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				expectedPath := fmt.Sprintf("/polls/%d", tt.pollID)
				if r.URL.Path != expectedPath {
					t.Errorf("Expected path %s, got %s", expectedPath, r.URL.Path)
				}
				if r.Method != http.MethodDelete {
					t.Errorf("Expected method DELETE, got %s", r.Method)
				}

				if tt.statusCode == http.StatusNoContent {
					w.WriteHeader(tt.statusCode)
					return
				}
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.statusCode)
				json.NewEncoder(w).Encode(map[string]string{"detail": "Poll not found"})
			}))
			defer server.Close()

			client, err := New(server.URL)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}

			res, err := client.DeletePoll(context.Background(), tt.token, tt.pollID)
			if err != nil {
				t.Fatalf("DeletePoll() error = %v", err)
			}

			if tt.wantError != "" {
				if res.Success {
					t.Error("DeletePoll() expected failure outcome")
				}
				if res.Error != tt.wantError {
					t.Errorf("DeletePoll() error = %q, want %q", res.Error, tt.wantError)
				}
				return
			}

			if !res.Success {
				t.Fatalf("DeletePoll() outcome = %+v, want success", res.Outcome)
			}
			if res.Message != "Poll deleted successfully" {
				t.Errorf("DeletePoll() message = %q", res.Message)
			}
		})
	}
}

func TestBaseURLTrailingSlash(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "//") {
			t.Errorf("Path contains double slash: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]models.PollOut{})
	}))
	defer server.Close()

	client, err := New(server.URL + "/")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if _, err := client.ListPolls(context.Background(), 0, 10); err != nil {
		t.Fatalf("ListPolls() error = %v", err)
	}
}
