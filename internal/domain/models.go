package domain

import "strings"

// Credentials is what the login form collects. It is consumed by the gateway
// login call and never persisted.
type Credentials struct {
	ServerAddr string
	Username   string
	Password   string
}

// QuestionSummary is one row of the weekly question list, in server order.
type QuestionSummary struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Finished bool   `json:"finished"`
}

// QuestionDetail is the full question payload, fetched lazily on first
// selection. StartCode arrives as an ordered slice of lines.
type QuestionDetail struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	StartCode   []string `json:"start_code_template_file"`
	Quota       int      `json:"quota"`
}

// LastSubmission is the previously submitted answer for a finished question.
type LastSubmission struct {
	Answer []string `json:"answer"`
}

// SubmissionResult is the server's verdict on one submission attempt.
type SubmissionResult struct {
	Accepted bool
	Message  string
}

// QuestionState is derived from (quota, finished); the server never sends a
// state enum. StateLockedNoQuota and StateFinished are terminal within a
// session.
type QuestionState int

const (
	StateOpen QuestionState = iota
	StateLockedNoQuota
	StateFinished
)

func (s QuestionState) String() string {
	switch s {
	case StateOpen:
		return "open"
	case StateLockedNoQuota:
		return "locked"
	case StateFinished:
		return "finished"
	}
	return "unknown"
}

// DeriveState maps the server's (quota, finished) pair onto a question state.
// Finished wins over an exhausted quota.
func DeriveState(quota int, finished bool) QuestionState {
	switch {
	case finished:
		return StateFinished
	case quota == 0:
		return StateLockedNoQuota
	default:
		return StateOpen
	}
}

// JoinLines concatenates server-provided line slices verbatim; the server
// includes its own line breaks.
func JoinLines(lines []string) string {
	return strings.Join(lines, "")
}
