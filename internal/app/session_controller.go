package app

import (
	"context"
	"fmt"
	"sync"

	"launchpad-client/internal/domain"
)

// Gateway is the API surface the controller consumes. Login has already
// happened by the time a controller exists; every operation here runs over
// the authenticated channel and any failure is fatal for the session.
type Gateway interface {
	ListQuestions(ctx context.Context) ([]domain.QuestionSummary, error)
	QuestionDetail(ctx context.Context, id int) (domain.QuestionDetail, error)
	LastSubmission(ctx context.Context, id int) (domain.LastSubmission, error)
	SubmitAnswer(ctx context.Context, id int, answer string) (domain.SubmissionResult, error)
}

// User-facing texts, kept verbatim from the desktop client.
const (
	finishedLabel    = "You have already finished this question."
	acceptedNotice   = "You have successfully finished the question."
	quotaSpentNotice = "You have no more quota to try. Good bye!"
	allDoneNotice    = "You have finished all questions this week."
)

func quotaLabel(quota int) string {
	return fmt.Sprintf("Quota: %d", quota)
}

func attemptsLeftNotice(quota int) string {
	return fmt.Sprintf("You still have %d times to try.", quota)
}

// AllDoneNotice is the congratulation shown when the week is complete.
func AllDoneNotice() string { return allDoneNotice }

// CatalogView is what the display layer needs after the initial list call.
type CatalogView struct {
	Questions   []domain.QuestionSummary
	AllComplete bool
}

// QuestionView describes the active question surface: what the editor shows,
// whether it accepts input, and the quota text next to the submit control.
// Activating a question also clears any previously shown result text; the
// view carries no result on purpose.
type QuestionView struct {
	Index       int // 1-based display index
	ID          int
	Title       string
	Description string
	Answer      string // editor prefill: template, or last answer when finished
	Editable    bool
	QuotaLabel  string
	State       domain.QuestionState
}

// SubmissionOutcome is the new catalog-entry state after one submission,
// ready for re-render. Message is the grader's feedback for the result pane
// (empty when the attempt burned the last quota); Notice is the modal text.
type SubmissionOutcome struct {
	Accepted    bool
	Message     string
	Notice      string
	Quota       int
	State       domain.QuestionState
	QuotaLabel  string
	AllComplete bool
}

// SessionController is the single authority over the question session: which
// question is active, whether its editor is writable, and how every server
// response mutates the catalog. The display layer feeds it one intent at a
// time and renders whatever it returns.
type SessionController struct {
	gw      Gateway
	catalog *Catalog

	mu              sync.Mutex
	submitting      bool
	allCompleteSent bool
}

func NewSessionController(gw Gateway) *SessionController {
	return &SessionController{gw: gw, catalog: NewCatalog()}
}

// fatal tags a post-login API failure; the session cannot continue.
func fatal(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", domain.ErrSessionFatal, op, err)
}

// LoadCatalog fetches the weekly question list and populates the catalog in
// server order. Meant to run once, right after login; AllComplete is set when
// every question already arrived finished.
func (c *SessionController) LoadCatalog(ctx context.Context) (CatalogView, error) {
	summaries, err := c.gw.ListQuestions(ctx)
	if err != nil {
		return CatalogView{}, fatal("list questions", err)
	}
	c.catalog.Load(summaries)

	view := CatalogView{Questions: summaries}
	if c.catalog.AllFinished() {
		view.AllComplete = c.markAllComplete()
	}
	return view, nil
}

// SelectQuestion activates the question at the given 1-based display index.
// The detail is fetched on first selection and cached; finished questions
// additionally pull the last submitted answer into the (locked) editor.
func (c *SessionController) SelectQuestion(ctx context.Context, displayIndex int) (QuestionView, error) {
	entry, err := c.catalog.Get(displayIndex)
	if err != nil {
		return QuestionView{}, err
	}

	if !entry.DetailLoaded() {
		detail, err := c.gw.QuestionDetail(ctx, entry.ID)
		if err != nil {
			return QuestionView{}, fatal("get question detail", err)
		}
		if err := c.catalog.MergeDetail(detail); err != nil {
			return QuestionView{}, err
		}
		entry, _ = c.catalog.Get(displayIndex)
	}

	view := QuestionView{
		Index:       displayIndex,
		ID:          entry.ID,
		Title:       entry.Title,
		Description: entry.Description,
		State:       entry.State(),
	}

	switch view.State {
	case domain.StateFinished:
		last, err := c.gw.LastSubmission(ctx, entry.ID)
		if err != nil {
			return QuestionView{}, fatal("get last submission", err)
		}
		view.Answer = domain.JoinLines(last.Answer)
		view.Editable = false
		view.QuotaLabel = finishedLabel
	case domain.StateLockedNoQuota:
		view.Answer = domain.JoinLines(entry.StartCode)
		view.Editable = false
		view.QuotaLabel = quotaLabel(0)
	default:
		view.Answer = domain.JoinLines(entry.StartCode)
		view.Editable = true
		view.QuotaLabel = quotaLabel(entry.Quota)
	}
	return view, nil
}

// SubmitAnswer sends one attempt for an open question and applies the
// verdict to the catalog. Submission is disabled for the duration of the
// call; submitting against a locked or finished question is a display-layer
// bug and is rejected before any network traffic.
func (c *SessionController) SubmitAnswer(ctx context.Context, questionID int, answer string) (SubmissionOutcome, error) {
	c.mu.Lock()
	if c.submitting {
		c.mu.Unlock()
		return SubmissionOutcome{}, domain.ErrSubmissionInFlight
	}
	entry, err := c.catalog.ByID(questionID)
	if err != nil {
		c.mu.Unlock()
		return SubmissionOutcome{}, err
	}
	switch entry.State() {
	case domain.StateFinished:
		c.mu.Unlock()
		return SubmissionOutcome{}, domain.ErrQuestionFinished
	case domain.StateLockedNoQuota:
		c.mu.Unlock()
		return SubmissionOutcome{}, domain.ErrSubmissionLocked
	}
	c.submitting = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.submitting = false
		c.mu.Unlock()
	}()

	result, err := c.gw.SubmitAnswer(ctx, questionID, answer)
	if err != nil {
		return SubmissionOutcome{}, fatal("submit answer", err)
	}

	// The server's accepted flag is authoritative; the quota mirror is local
	// bookkeeping to avoid an extra round trip.
	quota, err := c.catalog.DecrementQuota(questionID)
	if err != nil {
		return SubmissionOutcome{}, err
	}

	outcome := SubmissionOutcome{Accepted: result.Accepted, Quota: quota}
	if !result.Accepted {
		if quota == 0 {
			outcome.State = domain.StateLockedNoQuota
			outcome.QuotaLabel = quotaLabel(0)
			outcome.Notice = quotaSpentNotice
			return outcome, nil
		}
		outcome.State = domain.StateOpen
		outcome.QuotaLabel = quotaLabel(quota)
		outcome.Message = result.Message
		outcome.Notice = attemptsLeftNotice(quota)
		return outcome, nil
	}

	if err := c.catalog.MarkFinished(questionID); err != nil {
		return SubmissionOutcome{}, err
	}
	outcome.State = domain.StateFinished
	outcome.QuotaLabel = finishedLabel
	outcome.Message = result.Message
	outcome.Notice = acceptedNotice
	if c.catalog.AllFinished() {
		outcome.AllComplete = c.markAllComplete()
	}
	return outcome, nil
}

// markAllComplete makes the all-complete notification fire exactly once per
// session, whether the trigger was the initial load or a submission.
func (c *SessionController) markAllComplete() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.allCompleteSent {
		return false
	}
	c.allCompleteSent = true
	return true
}
