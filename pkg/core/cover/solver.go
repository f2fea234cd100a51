// Package cover implements the greedy set cover selection engine: the
// coverage tracker, the lazily invalidated priority queue and the
// selector loop that turns an index into an ordered solution.
package cover

import (
	"fmt"

	"github.com/matthiaskaeding/setcover/pkg/core/index"
	"github.com/matthiaskaeding/setcover/pkg/logging"
)

// Solver is the step-wise greedy selection engine. It owns the coverage
// state exclusively and advances it one selection per Step call until
// it transitions to done. The loop is sequential by design: every
// selection depends on the coverage mutations of the previous one.
type Solver struct {
	idx     *index.Index
	opts    Options
	tracker *Tracker
	queue   *ScoreQueue
	result  *Result
}

// NewSolver creates the step-wise engine for the standard variant. The
// queue is seeded with every non-empty set at its initial score.
func NewSolver(idx *index.Index, opts Options) (*Solver, error) {
	opts = opts.withDefaults()
	if err := opts.validate(idx.NumSets()); err != nil {
		return nil, err
	}
	if opts.Variant != VariantStandard {
		return nil, fmt.Errorf("%w: the step-wise solver only implements %q, use Solve for %q", ErrOptions, VariantStandard, opts.Variant)
	}

	s := &Solver{
		idx:     idx,
		opts:    opts,
		tracker: NewTracker(idx),
		queue:   NewScoreQueue(idx.NumSets()),
		result:  &Result{Status: StatusRunning},
	}
	for id := 0; id < idx.NumSets(); id++ {
		if score := s.tracker.Score(index.SetID(id)); score > 0 {
			s.queue.InsertOrUpdate(index.SetID(id), score, opts.priority(id, score))
		}
	}
	return s, nil
}

// Done reports whether the selector loop has terminated.
func (s *Solver) Done() bool { return s.result.Status != StatusRunning }

// Result returns the solution assembled so far. Diagnostics counts are
// only final once Done reports true.
func (s *Solver) Result() *Result { return s.result }

// Tracker exposes the coverage state for read-only inspection.
func (s *Solver) Tracker() *Tracker { return s.tracker }

// Step performs one iteration of the selector loop: it extracts the
// best-scoring set, commits it to the solution and propagates coverage
// updates. It returns ErrSolveComplete once the loop has transitioned
// to done, either now or in an earlier call.
func (s *Solver) Step() (Step, error) {
	if s.Done() {
		return Step{}, ErrSolveComplete
	}
	if s.tracker.UncoveredCount() == 0 {
		s.finish(StatusFullCover)
		return Step{}, ErrSolveComplete
	}
	if s.opts.MaxIterations > 0 && s.result.StepsTaken >= s.opts.MaxIterations {
		s.finish(StatusIterationCap)
		return Step{}, ErrSolveComplete
	}

	for {
		entry, ok := s.queue.PopMax()
		if !ok {
			// Every candidate has decayed to zero: the residual elements
			// are not contained in any set.
			s.finish(StatusResidualUncoverable)
			return Step{}, ErrSolveComplete
		}
		current := s.tracker.Score(entry.set)
		if current == 0 {
			// The set can no longer contribute; scores never grow back.
			continue
		}
		if current != entry.score {
			// Stale cached priority: reinsert corrected and keep popping.
			// The cached value is an upper bound, so nothing better can
			// hide below it.
			s.queue.InsertOrUpdate(entry.set, current, s.opts.priority(int(entry.set), current))
			continue
		}
		return s.commit(entry.set), nil
	}
}

// Run drives Step until the loop terminates and returns the assembled result.
func (s *Solver) Run() *Result {
	for {
		if _, err := s.Step(); err != nil {
			return s.result
		}
	}
}

// commit appends the chosen set to the solution and marks its elements
// covered, decrementing the scores of all affected sets through the
// inverted index.
func (s *Solver) commit(chosen index.SetID) Step {
	newly := 0
	for _, e := range s.idx.SetElements(chosen) {
		if s.tracker.MarkCovered(e) {
			newly++
		}
	}
	step := Step{Set: chosen, NewlyCovered: newly}
	s.result.Sets = append(s.result.Sets, chosen)
	s.result.Steps = append(s.result.Steps, step)
	s.result.StepsTaken++
	logging.Debugf("CoverSolver: Step %d chose set %d covering %d new elements (%d uncovered left).", s.result.StepsTaken, chosen, newly, s.tracker.UncoveredCount())
	return step
}

// finish transitions the engine to done and freezes the diagnostics.
func (s *Solver) finish(status Status) {
	s.result.Status = status
	s.result.CoveredCount = s.tracker.CoveredCount()
	s.result.UncoveredCount = s.tracker.UncoveredCount()
	logging.Infof("CoverSolver: Done after %d steps: %s (%d covered, %d uncovered).", s.result.StepsTaken, status, s.result.CoveredCount, s.result.UncoveredCount)
}

// Solve runs the configured variant to completion over the given index.
func Solve(idx *index.Index, opts Options) (*Result, error) {
	opts = opts.withDefaults()
	if err := opts.validate(idx.NumSets()); err != nil {
		return nil, err
	}

	logging.Infof("CoverSolver: Solving %d sets over %d elements with variant %q.", idx.NumSets(), idx.NumElements(), opts.Variant)
	switch opts.Variant {
	case VariantBitvec:
		return solveBitvec(idx, opts), nil
	case VariantTextbook:
		return solveTextbook(idx, opts), nil
	default:
		s, err := NewSolver(idx, opts)
		if err != nil {
			return nil, err
		}
		return s.Run(), nil
	}
}
