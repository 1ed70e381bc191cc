package usecase

import (
	"sync"

	"credstamp/internal/domain"
)

// OutcomeState is the single slot holding the current verification outcome.
// Each submission obtains a sequence number via Begin; Publish replaces the
// slot only when that sequence is still the newest, so a slow verification
// resolving after a later submission is discarded instead of overwriting it.
type OutcomeState struct {
	mu      sync.Mutex
	seq     uint64
	current domain.Outcome
}

func NewOutcomeState() *OutcomeState {
	return &OutcomeState{current: domain.Outcome{State: domain.StateIdle}}
}

// Begin registers a new submission: bumps the sequence and moves the slot to
// checking. Returns the sequence the submission must publish with.
func (s *OutcomeState) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	s.current = domain.Outcome{State: domain.StateChecking}
	return s.seq
}

// Publish installs the outcome for the given submission. Reports false when
// the submission is stale and the outcome was discarded.
func (s *OutcomeState) Publish(seq uint64, outcome domain.Outcome) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.seq {
		return false
	}
	s.current = outcome
	return true
}

func (s *OutcomeState) Current() domain.Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}
