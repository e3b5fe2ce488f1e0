package app

import (
	"sync"

	"launchpad-client/internal/domain"
)

// Entry is one catalog row: the list summary plus whatever detail has been
// merged in so far. Quota is only meaningful once the detail has been
// fetched.
type Entry struct {
	ID          int
	Title       string
	Finished    bool
	Description string
	StartCode   []string
	Quota       int

	detailLoaded bool
}

// DetailLoaded reports whether the question detail has been fetched and
// merged this session.
func (e Entry) DetailLoaded() bool {
	return e.detailLoaded
}

// State derives the entry's lifecycle state from (quota, finished).
func (e Entry) State() domain.QuestionState {
	return domain.DeriveState(e.Quota, e.Finished)
}

// Catalog is the client's in-memory view of the week's questions. Display
// order is the server order, fixed at load time; entries are addressable by
// 1-based display index and by stable ID. Entries are never removed; the
// only permitted mutations are detail merges, quota decrements, and the
// finished transition.
type Catalog struct {
	mu      sync.RWMutex
	entries []Entry
	byID    map[int]int // question ID -> slice index
}

func NewCatalog() *Catalog {
	return &Catalog{byID: make(map[int]int)}
}

// Load populates the catalog from the server's question list. It is called
// once, at session start.
func (c *Catalog) Load(summaries []domain.QuestionSummary) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make([]Entry, 0, len(summaries))
	c.byID = make(map[int]int, len(summaries))
	for i, s := range summaries {
		c.entries = append(c.entries, Entry{ID: s.ID, Title: s.Title, Finished: s.Finished})
		c.byID[s.ID] = i
	}
}

func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Get returns a copy of the entry at the given 1-based display index.
func (c *Catalog) Get(displayIndex int) (Entry, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if displayIndex < 1 || displayIndex > len(c.entries) {
		return Entry{}, domain.ErrIndexOutOfRange
	}
	return c.entries[displayIndex-1], nil
}

// ByID returns a copy of the entry with the given question ID.
func (c *Catalog) ByID(id int) (Entry, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	i, ok := c.byID[id]
	if !ok {
		return Entry{}, domain.ErrQuestionNotFound
	}
	return c.entries[i], nil
}

// MergeDetail caches a fetched question detail onto its entry. The summary
// fields keep the server-listed values; quota comes from the detail.
func (c *Catalog) MergeDetail(detail domain.QuestionDetail) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	i, ok := c.byID[detail.ID]
	if !ok {
		return domain.ErrQuestionNotFound
	}
	e := &c.entries[i]
	e.Description = detail.Description
	e.StartCode = detail.StartCode
	e.Quota = detail.Quota
	e.detailLoaded = true
	return nil
}

// DecrementQuota burns one attempt and returns the remaining quota. Quota
// never goes below zero.
func (c *Catalog) DecrementQuota(id int) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	i, ok := c.byID[id]
	if !ok {
		return 0, domain.ErrQuestionNotFound
	}
	e := &c.entries[i]
	if e.Quota > 0 {
		e.Quota--
	}
	return e.Quota, nil
}

// MarkFinished flips the finished flag; there is no way back within a
// session.
func (c *Catalog) MarkFinished(id int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	i, ok := c.byID[id]
	if !ok {
		return domain.ErrQuestionNotFound
	}
	c.entries[i].Finished = true
	return nil
}

// AllFinished reports whether every loaded question is finished. False for
// an empty catalog.
func (c *Catalog) AllFinished() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if len(c.entries) == 0 {
		return false
	}
	for _, e := range c.entries {
		if !e.Finished {
			return false
		}
	}
	return true
}
