package models

import "time"

// UserCreate represents the registration request body
type UserCreate struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserOut represents a registered user as returned by the API
type UserOut struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}

// Token represents the login response
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// PollCreate represents the poll creation request body
type PollCreate struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// OptionOut represents a single votable option of a poll
type OptionOut struct {
	ID     int    `json:"id"`
	Text   string `json:"text"`
	PollID int    `json:"poll_id"`
}

// PollOut represents a poll as returned by the API
type PollOut struct {
	ID        int         `json:"id"`
	Question  string      `json:"question"`
	CreatedAt time.Time   `json:"created_at"`
	OwnerID   int         `json:"owner_id"`
	Options   []OptionOut `json:"options"`
}

// VoteCreate represents the vote request body
type VoteCreate struct {
	OptionID int `json:"option_id"`
}

// VoteOut represents a recorded vote
type VoteOut struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	OptionID  int       `json:"option_id"`
	CreatedAt time.Time `json:"created_at"`
}

// OptionResult represents the vote tally for a single option
type OptionResult struct {
	OptionID  int    `json:"option_id"`
	Text      string `json:"text"`
	VoteCount int    `json:"vote_count"`
}

// PollResults represents the aggregated results of a poll
type PollResults struct {
	PollID   int            `json:"poll_id"`
	Question string         `json:"question"`
	Results  []OptionResult `json:"results"`
}
