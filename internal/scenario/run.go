package scenario

import (
	"io"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"

	"github.com/tychoish/chain/dt"
	"github.com/tychoish/chain/dt/cmp"
	"github.com/tychoish/chain/ers"
)

// StepResult records the outcome of one step.
type StepResult struct {
	Index int
	Op    Op
	// Err is the error the operation returned, which may have been
	// expected.
	Err error
	// Found is set for binary_search steps that succeeded.
	Found  *bool
	Stats  dt.Stats[int]
	Values []int
}

// Ok reports whether the step completed without an error.
func (r StepResult) Ok() bool { return ers.Ok(r.Err) }

// Report is the result of running a script.
type Report struct {
	Name   string
	Steps  []StepResult
	Final  dt.Stats[int]
	Values []int
}

// Runner executes scripts. The zero value runs without logging and
// without checking the list's integrity after each step.
type Runner struct {
	Logger         logrus.FieldLogger
	CheckIntegrity bool
}

// Run executes the script with a Runner that checks integrity after
// every step and does not log.
func Run(s *Script) (*Report, error) {
	return (&Runner{CheckIntegrity: true}).Run(s)
}

func (r *Runner) logger() logrus.FieldLogger {
	if r.Logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		r.Logger = l
	}
	return r.Logger
}

// Run applies the steps of the script to a new list in order. It
// stops at the first step whose error does not match the step's
// expect_error, or whose result does not match its expectations,
// and returns the report so far along with an error rooted in
// ers.ErrInvariantViolation.
func (r *Runner) Run(s *Script) (*Report, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	logger := r.logger().WithField("scenario", s.Name)
	list := dt.NewList(s.Values...)
	report := &Report{Name: s.Name, Steps: make([]StepResult, 0, len(s.Steps))}
	defer func() {
		report.Final = list.Stats()
		report.Values = list.Slice()
	}()

	for idx, step := range s.Steps {
		res := StepResult{Index: idx, Op: step.Op}
		res.Err = apply(list, step, &res)
		res.Stats = list.Stats()
		res.Values = list.Slice()
		report.Steps = append(report.Steps, res)

		entry := logger.WithFields(logrus.Fields{
			"step":  idx,
			"op":    string(step.Op),
			"size":  res.Stats.Size,
			"order": res.Stats.Order.String(),
		})
		if res.Err != nil {
			entry = entry.WithError(res.Err)
		}
		entry.Debug("applied step")

		if err := r.verify(idx, step, res, list); err != nil {
			logger.WithError(err).WithField("cause", ers.Cause(err)).Error("scenario failed")
			return report, err
		}
	}

	list.LogStats(logger, "scenario complete")
	return report, nil
}

func (r *Runner) verify(idx int, step Step, res StepResult, list *dt.List[int]) error {
	if got := KindOf(res.Err); got != step.ExpectError {
		return ers.Wrapf(ers.ErrInvariantViolation, "step %d (%s): expected error %q, got %q (%v)",
			idx, step.Op, step.ExpectError, got, res.Err)
	}

	if step.Found != nil && res.Found != nil {
		if err := ers.When(*step.Found != *res.Found, ers.Wrapf(ers.ErrInvariantViolation,
			"step %d (%s): expected found=%t for %d", idx, step.Op, *step.Found, step.Value)); err != nil {
			return err
		}
	}

	if step.Op == OpCheck && step.Values != nil && !slices.Equal(step.Values, res.Values) {
		return ers.Wrapf(ers.ErrInvariantViolation, "step %d (%s): expected %v, got %v",
			idx, step.Op, step.Values, res.Values)
	}

	if r.CheckIntegrity || step.Op == OpCheck {
		if err := list.CheckIntegrity(); err != nil {
			return ers.Wrapf(err, "step %d (%s)", idx, step.Op)
		}
	}
	return nil
}

func apply(list *dt.List[int], step Step, res *StepResult) error {
	var err error
	switch step.Op {
	case OpPushFront:
		list.PushFront(step.Value)
	case OpPushBack:
		list.PushBack(step.Value)
	case OpInsert:
		err = list.Insert(step.Index, step.Value)
	case OpInsertSorted:
		list.InsertSorted(step.Value)
	case OpPopFront:
		_, err = list.PopFront()
	case OpPopBack:
		_, err = list.PopBack()
	case OpRemoveAt:
		_, err = list.RemoveAt(step.Index)
	case OpRemoveAll:
		list.RemoveAll(step.Value)
	case OpSort:
		list.Sort()
	case OpSortDesc:
		list.SortFunc(cmp.Reverse(cmp.LessThanNative[int]))
	case OpReverse:
		list.Reverse()
	case OpUnique:
		list.Unique()
	case OpMerge:
		list.Merge(dt.NewList(step.Values...))
	case OpBinarySearch:
		var found bool
		found, err = list.BinarySearch(step.Value)
		if err == nil {
			res.Found = &found
		}
	case OpCheck:
	}
	return err
}
