package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"launchpad-client/internal/domain"
)

func TestLoginStoresTokenAndAuthorizesCalls(t *testing.T) {
	var gotAuth, gotRequestID string
	mux := http.NewServeMux()
	mux.HandleFunc("/api/login", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode login: %v", err)
		}
		if req.Username != "alice" || req.Password != "secret" {
			t.Fatalf("unexpected credentials %+v", req)
		}
		writeJSON(w, map[string]any{"status": true, "message": "Welcome, alice!", "token": "tok-1"})
	})
	mux.HandleFunc("/api/questions", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		writeJSON(w, map[string]any{"status": true, "questions": []map[string]any{
			{"id": 1, "title": "FizzBuzz", "finished": false},
			{"id": 2, "title": "Two Sum", "finished": true},
		}})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client := New(server.URL, time.Second)
	welcome, err := client.Login(context.Background(), "alice", "secret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if welcome != "Welcome, alice!" {
		t.Fatalf("unexpected welcome %q", welcome)
	}

	questions, err := client.ListQuestions(context.Background())
	if err != nil {
		t.Fatalf("list questions: %v", err)
	}
	if gotAuth != "Token tok-1" {
		t.Fatalf("expected token auth header, got %q", gotAuth)
	}
	if gotRequestID == "" {
		t.Fatalf("expected a request ID header")
	}
	if len(questions) != 2 || questions[0].ID != 1 || !questions[1].Finished {
		t.Fatalf("unexpected questions %+v", questions)
	}
}

func TestLoginRejectedIsRetryable(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/login", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{"status": false, "message": "bad password"})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client := New(server.URL, time.Second)
	_, err := client.Login(context.Background(), "alice", "wrong")
	if !errors.Is(err, domain.ErrLoginFailed) {
		t.Fatalf("expected login failure, got %v", err)
	}
}

func TestQuestionDetailMapsWireFields(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/questions/7", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{"status": true, "question": map[string]any{
			"id":                       7,
			"title":                    "FizzBuzz",
			"description":              "print fizzbuzz up to n",
			"start_code_template_file": []string{"def solve(n):\n", "    pass\n"},
			"quota":                    5,
		}})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client := New(server.URL, time.Second)
	detail, err := client.QuestionDetail(context.Background(), 7)
	if err != nil {
		t.Fatalf("question detail: %v", err)
	}
	if detail.ID != 7 || detail.Quota != 5 {
		t.Fatalf("unexpected detail %+v", detail)
	}
	if domain.JoinLines(detail.StartCode) != "def solve(n):\n    pass\n" {
		t.Fatalf("template lines mangled: %q", detail.StartCode)
	}
}

func TestLastSubmissionJoinsLines(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/questions/7/last_submission", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{"status": true, "answer": []string{"def solve(n):\n", "    return n\n"}})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client := New(server.URL, time.Second)
	last, err := client.LastSubmission(context.Background(), 7)
	if err != nil {
		t.Fatalf("last submission: %v", err)
	}
	if domain.JoinLines(last.Answer) != "def solve(n):\n    return n\n" {
		t.Fatalf("unexpected answer %q", last.Answer)
	}
}

func TestSubmitAnswerVerdict(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/questions/7/submit", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Answer string `json:"answer"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode submit: %v", err)
		}
		accepted := req.Answer == "42"
		message := "Wrong answer"
		if accepted {
			message = "Passed"
		}
		writeJSON(w, map[string]any{"status": accepted, "message": message})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client := New(server.URL, time.Second)

	result, err := client.SubmitAnswer(context.Background(), 7, "41")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if result.Accepted || result.Message != "Wrong answer" {
		t.Fatalf("unexpected verdict %+v", result)
	}

	result, err = client.SubmitAnswer(context.Background(), 7, "42")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !result.Accepted || result.Message != "Passed" {
		t.Fatalf("unexpected verdict %+v", result)
	}
}

func TestServerErrorSurfaces(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/questions", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client := New(server.URL, time.Second)
	if _, err := client.ListQuestions(context.Background()); err == nil {
		t.Fatalf("expected error on HTTP 500")
	}
}

func TestBareHostGetsScheme(t *testing.T) {
	client := New("quiz.example.com:38000", 0)
	if client.baseURL != "http://quiz.example.com:38000" {
		t.Fatalf("unexpected base URL %q", client.baseURL)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
