package domain

import "errors"

var (
	// ErrLoginFailed is returned when the server rejects the credentials;
	// the login form may retry.
	ErrLoginFailed = errors.New("login rejected by server")
	// ErrSessionFatal wraps any post-login API failure; the session cannot
	// continue and the client must be restarted.
	ErrSessionFatal = errors.New("session lost")
	// ErrIndexOutOfRange is returned when a display index falls outside the
	// loaded catalog. This is a display-layer bug, not a server condition.
	ErrIndexOutOfRange = errors.New("question index out of range")
	// ErrQuestionNotFound is returned when a question ID is not in the catalog.
	ErrQuestionNotFound = errors.New("question not found in catalog")
	// ErrSubmissionLocked is returned on submitting against a question whose
	// quota is exhausted.
	ErrSubmissionLocked = errors.New("question has no attempts left")
	// ErrQuestionFinished is returned on submitting against an already
	// finished question.
	ErrQuestionFinished = errors.New("question already finished")
	// ErrSubmissionInFlight is returned when a submission is attempted while
	// another one is still waiting on the server.
	ErrSubmissionInFlight = errors.New("submission already in progress")
)
