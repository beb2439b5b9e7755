package session

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// State is a step of the session lifecycle.
type State int

const (
	// Idle means no target is loaded yet, a fetch is pending, or it failed.
	Idle State = iota
	// Ready means a target is loaded and nothing has been typed.
	Ready
	// InProgress means typing has started and the clock is running.
	InProgress
	// Completed means the completion condition held; input is locked.
	Completed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Ready:
		return "ready"
	case InProgress:
		return "in progress"
	case Completed:
		return "completed"
	default:
		return "unknown"
	}
}

// ErrStaleFetch is returned when a fetch result belongs to an older session.
var ErrStaleFetch = errors.New("stale fetch result")

// Stats holds the values derived from the current input.
type Stats struct {
	Mistakes  int
	Accuracy  int
	WPM       int
	HasWPM    bool
	Completed bool
}

func initialStats() Stats {
	return Stats{Accuracy: 100}
}

// Session tracks one attempt from text load to completion or reset.
// It is not safe for concurrent use; callers drive it from one event loop.
type Session struct {
	policy Policy
	clock  Clock

	id    string
	state State
	err   error

	target  Target
	input   string
	results []TokenResult
	stats   Stats

	started   bool
	startedAt time.Time
	endedAt   time.Time
}

// New returns an idle session scored by policy. A nil clock uses the wall clock.
func New(policy Policy, clock Clock) *Session {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Session{
		policy: policy,
		clock:  clock,
		stats:  initialStats(),
	}
}

// Begin discards all derived state, returns to Idle and issues the
// identifier that the next fetch must carry.
func (s *Session) Begin() string {
	s.id = uuid.NewString()
	s.state = Idle
	s.err = nil
	s.target = Target{}
	s.input = ""
	s.results = nil
	s.stats = initialStats()
	s.started = false
	s.startedAt = time.Time{}
	s.endedAt = time.Time{}
	return s.id
}

// Load installs the fetched target and moves Idle to Ready.
func (s *Session) Load(id string, target Target) error {
	if s.id == "" || id != s.id || s.state != Idle || s.err != nil {
		return ErrStaleFetch
	}
	s.target = target
	s.state = Ready
	return nil
}

// Fail records a fetch failure for session id and returns to Idle.
func (s *Session) Fail(id string, err error) error {
	if s.id == "" || id != s.id {
		return ErrStaleFetch
	}
	s.state = Idle
	s.err = err
	return nil
}

// SetInput replaces the typed input and recomputes every derived value.
// It reports false when input is not accepted in the current state.
func (s *Session) SetInput(input string) bool {
	if s.state != Ready && s.state != InProgress {
		return false
	}
	if !s.started && input != "" {
		s.started = true
		s.startedAt = s.clock.Now()
		s.state = InProgress
	}
	s.input = input
	if input == "" {
		s.results = nil
		s.stats = initialStats()
		return true
	}

	typed := s.policy.Tokens(input)
	if len(typed) == 0 {
		s.results = nil
		s.stats = initialStats()
		return true
	}
	score := s.policy.Score(s.target, typed)
	s.results = score.Results
	s.stats = Stats{
		Mistakes: score.Mistakes,
		Accuracy: score.Accuracy,
	}
	if s.policy.Complete(s.target, input, typed) {
		s.complete()
	}
	return true
}

func (s *Session) complete() {
	s.endedAt = s.clock.Now()
	correct := 0
	for _, r := range s.results {
		if r.Correct {
			correct++
		}
	}
	s.stats.WPM = ComputeSpeed(s.startedAt, s.endedAt, correct)
	s.stats.HasWPM = true
	s.stats.Completed = true
	s.state = Completed
}

// ID returns the identifier of the current session.
func (s *Session) ID() string { return s.id }

// State returns the lifecycle state.
func (s *Session) State() State { return s.state }

// Err returns the fetch failure that put the session in its error state.
func (s *Session) Err() error { return s.err }

// Failed reports whether the session is idle because of a fetch failure.
func (s *Session) Failed() bool { return s.state == Idle && s.err != nil }

// Policy returns the scoring policy.
func (s *Session) Policy() Policy { return s.policy }

// Target returns the loaded target.
func (s *Session) Target() Target { return s.target }

// Input returns the typed input.
func (s *Session) Input() string { return s.input }

// Results returns the comparison of each typed token.
func (s *Session) Results() []TokenResult { return s.results }

// Stats returns the derived statistics.
func (s *Session) Stats() Stats { return s.stats }

// StartedAt returns the first keystroke time and whether it is set.
func (s *Session) StartedAt() (time.Time, bool) { return s.startedAt, s.started }

// Elapsed returns the time spent typing, frozen once the session completes.
func (s *Session) Elapsed() time.Duration {
	if !s.started {
		return 0
	}
	if s.state == Completed {
		return s.endedAt.Sub(s.startedAt)
	}
	return s.clock.Now().Sub(s.startedAt)
}
