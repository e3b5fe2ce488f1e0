// Package gateway implements the quiz server's HTTP API as consumed by the
// session controller: login plus four authenticated request/response
// operations. It carries no session logic; every method maps one endpoint.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"launchpad-client/internal/domain"
)

const defaultTimeout = 30 * time.Second

// Client talks to one quiz server. After a successful Login it holds the
// session token and acts as the authenticated channel for all further calls;
// the token is never replaced within a session.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	sf         singleflight.Group
}

// New builds a client for the given server address. A bare host:port gets an
// http scheme; the original desktop client talks plain HTTP to the quiz
// server.
func New(serverAddr string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	base := strings.TrimRight(serverAddr, "/")
	if !strings.Contains(base, "://") {
		base = "http://" + base
	}
	return &Client{
		baseURL:    base,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// do executes one JSON request/response round trip. Every call carries a
// fresh X-Request-ID; authenticated calls carry the session token.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.token != "" {
		req.Header.Set("Authorization", "Token "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(respBody))
	}
	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("unmarshal response: %w", err)
		}
	}
	return nil
}

// Login authenticates and stores the session token on success. The returned
// message is the server's greeting. A rejected login wraps ErrLoginFailed so
// the form can retry; transport failures surface as-is.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	req := struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}{Username: username, Password: password}

	var resp struct {
		Status  bool   `json:"status"`
		Message string `json:"message"`
		Token   string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/login", req, &resp); err != nil {
		return "", err
	}
	if !resp.Status {
		return "", fmt.Errorf("%w: %s", domain.ErrLoginFailed, resp.Message)
	}
	c.token = resp.Token
	return resp.Message, nil
}

// ListQuestions returns the weekly question list in server order.
func (c *Client) ListQuestions(ctx context.Context) ([]domain.QuestionSummary, error) {
	var resp struct {
		Status    bool                     `json:"status"`
		Message   string                   `json:"message"`
		Questions []domain.QuestionSummary `json:"questions"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/questions", nil, &resp); err != nil {
		return nil, err
	}
	if !resp.Status {
		return nil, fmt.Errorf("list questions rejected: %s", resp.Message)
	}
	return resp.Questions, nil
}

// QuestionDetail fetches one question's description, starter code, and
// quota. Concurrent fetches for the same question are collapsed into a
// single request.
func (c *Client) QuestionDetail(ctx context.Context, id int) (domain.QuestionDetail, error) {
	v, err, _ := c.sf.Do(strconv.Itoa(id), func() (interface{}, error) {
		var resp struct {
			Status   bool                  `json:"status"`
			Message  string                `json:"message"`
			Question domain.QuestionDetail `json:"question"`
		}
		if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/questions/%d", id), nil, &resp); err != nil {
			return domain.QuestionDetail{}, err
		}
		if !resp.Status {
			return domain.QuestionDetail{}, fmt.Errorf("question detail rejected: %s", resp.Message)
		}
		return resp.Question, nil
	})
	if err != nil {
		return domain.QuestionDetail{}, err
	}
	return v.(domain.QuestionDetail), nil
}

// LastSubmission fetches the stored answer for a finished question.
func (c *Client) LastSubmission(ctx context.Context, id int) (domain.LastSubmission, error) {
	var resp struct {
		Status  bool     `json:"status"`
		Message string   `json:"message"`
		Answer  []string `json:"answer"`
	}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/questions/%d/last_submission", id), nil, &resp); err != nil {
		return domain.LastSubmission{}, err
	}
	if !resp.Status {
		return domain.LastSubmission{}, fmt.Errorf("last submission rejected: %s", resp.Message)
	}
	return domain.LastSubmission{Answer: resp.Answer}, nil
}

// SubmitAnswer sends one attempt and returns the grader's verdict.
func (c *Client) SubmitAnswer(ctx context.Context, id int, answer string) (domain.SubmissionResult, error) {
	req := struct {
		Answer string `json:"answer"`
	}{Answer: answer}

	var resp struct {
		Status  bool   `json:"status"`
		Message string `json:"message"`
	}
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/questions/%d/submit", id), req, &resp); err != nil {
		return domain.SubmissionResult{}, err
	}
	return domain.SubmissionResult{Accepted: resp.Status, Message: resp.Message}, nil
}
