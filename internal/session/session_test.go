package session

import (
	"errors"
	"testing"
	"time"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newLoadedSession(t *testing.T, policy Policy, target Target) (*Session, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	s := New(policy, clock)
	id := s.Begin()
	if err := s.Load(id, target); err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.State() != Ready {
		t.Fatalf("expected ready, got %s", s.State())
	}
	return s, clock
}

func TestSessionLifecycleWordMode(t *testing.T) {
	s, clock := newLoadedSession(t, WordPolicy{}, WordTarget([]string{"the", "quick", "brown", "fox"}))

	s.SetInput("t")
	if s.State() != InProgress {
		t.Fatalf("expected in progress after first char, got %s", s.State())
	}
	started, ok := s.StartedAt()
	if !ok || !started.Equal(clock.now) {
		t.Fatalf("expected clock to start at first char")
	}

	clock.Advance(10 * time.Second)
	s.SetInput("the quick brown")
	if again, _ := s.StartedAt(); !again.Equal(started) {
		t.Fatalf("clock must not restart on later keystrokes")
	}
	if len(s.Results()) != 3 {
		t.Fatalf("expected 3 results, got %d", len(s.Results()))
	}

	clock.Advance(20 * time.Second)
	s.SetInput("the quick brown fox")
	stats := s.Stats()
	if s.State() != Completed || !stats.Completed {
		t.Fatalf("expected completed, got %s", s.State())
	}
	if stats.Mistakes != 0 || stats.Accuracy != 100 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if !stats.HasWPM || stats.WPM != 8 {
		t.Fatalf("expected 8 WPM (4 words in 30s), got %+v", stats)
	}

	clock.Advance(time.Minute)
	if s.SetInput("the quick brown fox x") {
		t.Fatalf("input must be locked after completion")
	}
	if s.Stats().WPM != 8 {
		t.Fatalf("WPM must be frozen after completion")
	}
	if s.Elapsed() != 30*time.Second {
		t.Fatalf("expected elapsed frozen at 30s, got %s", s.Elapsed())
	}
}

func TestSessionResetClearsStats(t *testing.T) {
	s, clock := newLoadedSession(t, SentencePolicy{}, QuoteTarget("to be or not to be"))
	s.SetInput("to be")
	clock.Advance(5 * time.Second)
	s.SetInput("to be or not to be")
	if s.State() != Completed {
		t.Fatalf("expected completed")
	}

	id := s.Begin()
	if s.State() != Idle {
		t.Fatalf("expected idle after begin, got %s", s.State())
	}
	if err := s.Load(id, QuoteTarget("new text")); err != nil {
		t.Fatalf("load: %v", err)
	}
	stats := s.Stats()
	if stats.Mistakes != 0 || stats.Accuracy != 100 || stats.HasWPM || stats.Completed {
		t.Fatalf("expected fresh stats after reset, got %+v", stats)
	}
	if _, ok := s.StartedAt(); ok {
		t.Fatalf("expected clock cleared after reset")
	}
	if s.Input() != "" || len(s.Results()) != 0 {
		t.Fatalf("expected input and results cleared")
	}
}

func TestSessionDiscardsStaleFetch(t *testing.T) {
	s := New(WordPolicy{}, nil)
	oldID := s.Begin()
	newID := s.Begin()
	if oldID == newID {
		t.Fatalf("expected distinct session ids")
	}
	if err := s.Load(oldID, WordTarget([]string{"old"})); !errors.Is(err, ErrStaleFetch) {
		t.Fatalf("expected stale fetch error, got %v", err)
	}
	if err := s.Fail(oldID, errors.New("late failure")); !errors.Is(err, ErrStaleFetch) {
		t.Fatalf("expected stale fetch error for late failure, got %v", err)
	}
	if s.State() != Idle || s.Err() != nil {
		t.Fatalf("stale results must not change state")
	}
	if err := s.Load(newID, WordTarget([]string{"new"})); err != nil {
		t.Fatalf("load current: %v", err)
	}
	if err := s.Load(newID, WordTarget([]string{"dup"})); !errors.Is(err, ErrStaleFetch) {
		t.Fatalf("expected duplicate load to be rejected, got %v", err)
	}
	if s.Target().Text != "new" {
		t.Fatalf("unexpected target %q", s.Target().Text)
	}
}

func TestSessionFailureBlocksInput(t *testing.T) {
	s := New(SentencePolicy{}, nil)
	id := s.Begin()
	if err := s.Fail(id, errors.New("quote endpoint is not set")); err != nil {
		t.Fatalf("fail: %v", err)
	}
	if !s.Failed() || s.State() != Idle {
		t.Fatalf("expected failed idle session")
	}
	if s.SetInput("abc") {
		t.Fatalf("input must be refused in error state")
	}
	if err := s.Load(id, QuoteTarget("late")); !errors.Is(err, ErrStaleFetch) {
		t.Fatalf("a failed session must not become ready without a new begin")
	}
}

func TestSessionEmptyInputKeepsInitialStats(t *testing.T) {
	s, _ := newLoadedSession(t, SentencePolicy{}, QuoteTarget("to be or not to be"))
	s.SetInput("x")
	s.SetInput("")
	stats := s.Stats()
	if stats.Mistakes != 0 || stats.Accuracy != 100 {
		t.Fatalf("expected initial stats for empty input, got %+v", stats)
	}
	if s.State() != InProgress {
		t.Fatalf("clearing input must not stop the clock")
	}
}

func TestSessionInputBeforeLoadIgnored(t *testing.T) {
	s := New(WordPolicy{}, nil)
	s.Begin()
	if s.SetInput("a") {
		t.Fatalf("input must be ignored while idle")
	}
}

func TestSessionQuoteLeadingSpaceCompletesCleanly(t *testing.T) {
	s, clock := newLoadedSession(t, SentencePolicy{}, QuoteTarget("to be or not to be"))

	s.SetInput(" ")
	if s.State() != InProgress {
		t.Fatalf("expected in progress after a space, got %s", s.State())
	}
	if stats := s.Stats(); stats.Mistakes != 0 || stats.Accuracy != 100 || s.Results() != nil {
		t.Fatalf("blank input must keep initial stats, got %+v", stats)
	}

	s.SetInput(" to be or")
	if stats := s.Stats(); stats.Mistakes != 3 || stats.Accuracy != 50 {
		t.Fatalf("unexpected stats mid-quote: %+v", stats)
	}

	clock.Advance(30 * time.Second)
	s.SetInput(" to be or not to be")
	stats := s.Stats()
	if s.State() != Completed {
		t.Fatalf("expected completed, got %s", s.State())
	}
	if stats.Mistakes != 0 || stats.Accuracy != 100 {
		t.Fatalf("expected clean stats for exact match, got %+v", stats)
	}
	if !stats.HasWPM || stats.WPM != 12 {
		t.Fatalf("expected 12 WPM (6 words in 30s), got %+v", stats)
	}
	if len(s.Results()) != 6 {
		t.Fatalf("expected 6 results, got %d", len(s.Results()))
	}
}

func TestSessionQuoteTrailingSpaceCompletes(t *testing.T) {
	s, clock := newLoadedSession(t, SentencePolicy{}, QuoteTarget("stay hungry"))
	s.SetInput("stay")
	clock.Advance(time.Minute)
	s.SetInput("stay hungry ")
	if s.State() != Completed {
		t.Fatalf("expected completed, got %s", s.State())
	}
	if stats := s.Stats(); stats.Accuracy != 100 || stats.WPM != 2 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}
