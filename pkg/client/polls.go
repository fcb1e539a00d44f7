package client

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/pollyhq/polly-go/internal/models"
)

// CreatePollResult is the normalized outcome of a poll creation call.
type CreatePollResult struct {
	Outcome
	Poll *models.PollOut `json:"data,omitempty"`
}

// CreatePoll creates a new poll via POST /polls. Requires a bearer token.
func (c *Client) CreatePoll(ctx context.Context, token, question string, options []string) (*CreatePollResult, error) {
	if token == "" {
		return nil, fmt.Errorf("token cannot be empty")
	}
	if strings.TrimSpace(question) == "" {
		return nil, fmt.Errorf("question cannot be empty")
	}
	if len(options) < 2 {
		return nil, fmt.Errorf("poll requires at least two options")
	}
	for _, opt := range options {
		if strings.TrimSpace(opt) == "" {
			return nil, fmt.Errorf("poll options cannot be blank")
		}
	}

	var poll models.PollOut
	resp, err := c.rest.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetBody(models.PollCreate{Question: question, Options: options}).
		SetResult(&poll).
		Post("/polls")

	res := &CreatePollResult{Outcome: classify(resp, err, "")}
	if res.Success {
		res.Poll = &poll
		res.Message = "Poll created successfully"
	}
	return res, nil
}

// ListPollsResult is the normalized outcome of a poll listing call. HasMore
// and NextSkip describe the next page: HasMore is set when the page came back
// full, and NextSkip is nil once the listing is exhausted.
type ListPollsResult struct {
	Outcome
	Polls    []models.PollOut `json:"data,omitempty"`
	Count    int              `json:"count"`
	HasMore  bool             `json:"has_more"`
	NextSkip *int             `json:"next_skip"`
}

// ListPolls fetches a page of polls via GET /polls?skip&limit.
func (c *Client) ListPolls(ctx context.Context, skip, limit int) (*ListPollsResult, error) {
	if skip < 0 {
		return nil, fmt.Errorf("skip cannot be negative")
	}
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be positive")
	}

	var polls []models.PollOut
	resp, err := c.rest.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"skip":  strconv.Itoa(skip),
			"limit": strconv.Itoa(limit),
		}).
		SetResult(&polls).
		Get("/polls")

	res := &ListPollsResult{Outcome: classify(resp, err, "")}
	if res.Success {
		res.Polls = polls
		res.Count = len(polls)
		res.HasMore = len(polls) == limit
		if res.HasMore {
			next := skip + limit
			res.NextSkip = &next
		}
		res.Message = fmt.Sprintf("Retrieved %d polls", len(polls))
	}
	return res, nil
}

// VoteResult is the normalized outcome of a vote call.
type VoteResult struct {
	Outcome
	Vote *models.VoteOut `json:"data,omitempty"`
}

// Vote casts a vote on a poll option via POST /polls/{id}/vote. Requires a
// bearer token.
func (c *Client) Vote(ctx context.Context, token string, pollID, optionID int) (*VoteResult, error) {
	if token == "" {
		return nil, fmt.Errorf("token cannot be empty")
	}
	if pollID <= 0 {
		return nil, fmt.Errorf("poll ID must be positive")
	}
	if optionID <= 0 {
		return nil, fmt.Errorf("option ID must be positive")
	}

	var vote models.VoteOut
	resp, err := c.rest.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetBody(models.VoteCreate{OptionID: optionID}).
		SetResult(&vote).
		Post(fmt.Sprintf("/polls/%d/vote", pollID))

	res := &VoteResult{Outcome: classify(resp, err, "")}
	if res.Success {
		res.Vote = &vote
		res.Message = "Vote recorded successfully"
	}
	return res, nil
}

// PollResultsResult is the normalized outcome of a results retrieval call.
type PollResultsResult struct {
	Outcome
	Results *models.PollResults `json:"data,omitempty"`
}

// GetPollResults fetches vote tallies via GET /polls/{id}/results.
func (c *Client) GetPollResults(ctx context.Context, pollID int) (*PollResultsResult, error) {
	if pollID <= 0 {
		return nil, fmt.Errorf("poll ID must be positive")
	}

	var results models.PollResults
	resp, err := c.rest.R().
		SetContext(ctx).
		SetResult(&results).
		Get(fmt.Sprintf("/polls/%d/results", pollID))

	res := &PollResultsResult{Outcome: classify(resp, err, "")}
	if res.Success {
		res.Results = &results
		res.Message = "Results retrieved successfully"
	}
	return res, nil
}

// DeletePollResult is the normalized outcome of a poll deletion call.
type DeletePollResult struct {
	Outcome
}

// DeletePoll removes a poll via DELETE /polls/{id}. Requires a bearer token;
// only the poll owner may delete it.
func (c *Client) DeletePoll(ctx context.Context, token string, pollID int) (*DeletePollResult, error) {
	if token == "" {
		return nil, fmt.Errorf("token cannot be empty")
	}
	if pollID <= 0 {
		return nil, fmt.Errorf("poll ID must be positive")
	}

	resp, err := c.rest.R().
		SetContext(ctx).
		SetAuthToken(token).
		Delete(fmt.Sprintf("/polls/%d", pollID))

	res := &DeletePollResult{Outcome: classify(resp, err, "")}
	if res.Success {
		res.Message = "Poll deleted successfully"
	}
	return res, nil
}
