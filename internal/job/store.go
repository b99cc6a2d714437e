package job

// Store is an ordered collection of Jobs with target-keyed lookup and
// override semantics: inserting a Job whose target already exists removes
// the earlier Job and appends the new one, so lookup by target always
// returns the last-inserted Job for that name.
type Store struct {
	jobs    []*Job
	index   map[string]int
	counter int
}

// NewStore creates an empty job store.
func NewStore() *Store {
	return &Store{index: make(map[string]int)}
}

// Insert adds job to the store, applying override semantics. It returns
// the previously-stored Job for the same target, or nil if this is the
// target's first declaration. Callers are expected to log an override
// warning themselves when prev is non-nil, since only they hold the
// source locations needed for the message.
func (s *Store) Insert(j *Job) (prev *Job) {
	if idx, ok := s.index[j.Target]; ok {
		prev = s.jobs[idx]
		s.jobs = append(s.jobs[:idx], s.jobs[idx+1:]...)
	}

	j.discoveryOrder = s.counter
	s.counter++
	s.jobs = append(s.jobs, j)
	s.reindex()
	return prev
}

// reindex rebuilds the target -> slice-index map from the current slice
// contents. Called after every structural change to jobs.
func (s *Store) reindex() {
	s.index = make(map[string]int, len(s.jobs))
	for i, j := range s.jobs {
		s.index[j.Target] = i
	}
}

// Lookup returns the Job currently stored for target, if any.
func (s *Store) Lookup(target string) (*Job, bool) {
	idx, ok := s.index[target]
	if !ok {
		return nil, false
	}
	return s.jobs[idx], true
}

// All returns every stored Job, in current slice order (insertion order,
// with overridden targets moved to the position of their last insert).
func (s *Store) All() []*Job {
	out := make([]*Job, len(s.jobs))
	copy(out, s.jobs)
	return out
}

// First returns the stored Job with the lowest discovery order, which is
// the Job at slice position 0. An overriding insert gives its Job a fresh,
// later discovery order, so an overridden target counts from its latest
// declaration, not its first. This is the job run when no target is
// requested on the command line.
func (s *Store) First() (*Job, bool) {
	if len(s.jobs) == 0 {
		return nil, false
	}
	first := s.jobs[0]
	for _, j := range s.jobs[1:] {
		if j.discoveryOrder < first.discoveryOrder {
			first = j
		}
	}
	return first, true
}

// Len reports the number of distinct targets currently stored.
func (s *Store) Len() int {
	return len(s.jobs)
}

// TargetNames returns every stored target name, in slice order.
func (s *Store) TargetNames() []string {
	names := make([]string, len(s.jobs))
	for i, j := range s.jobs {
		names[i] = j.Target
	}
	return names
}

// PromotePhony marks the Job named target as phony, if it exists, and
// reports whether a matching Job was found.
func (s *Store) PromotePhony(target string) bool {
	j, ok := s.Lookup(target)
	if !ok {
		return false
	}
	j.Phony = true
	return true
}

// PromoteSilent clears the Echo flag on the Job named target, if it
// exists, and reports whether a matching Job was found.
func (s *Store) PromoteSilent(target string) bool {
	j, ok := s.Lookup(target)
	if !ok {
		return false
	}
	j.Echo = false
	return true
}
