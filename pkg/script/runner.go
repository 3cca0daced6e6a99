// Package script runs YAML-described sequences of list operations and
// checks their outcomes.
package script

import (
	"fmt"
	"reflect"
	"slices"

	uuid "github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"

	"github.com/ArturiaGit/DataStructure/pkg/list"
	"github.com/ArturiaGit/DataStructure/pkg/logging"
	"github.com/ArturiaGit/DataStructure/pkg/metrics"
)

type Runner struct {
	logger    *logrus.Logger
	collector *metrics.Collector
}

// NewRunner returns a Runner that logs to logger and, when collector is not
// nil, records every list operation on it.
func NewRunner(logger *logrus.Logger, collector *metrics.Collector) *Runner {
	return &Runner{logger: logger, collector: collector}
}

type StepResult struct {
	Index   int
	Name    string
	Op      string
	Result  any
	Err     error
	Failure string // empty when every expectation held
}

func (r StepResult) Passed() bool {
	return r.Failure == ""
}

type Report struct {
	RunID    string
	Name     string
	Steps    []StepResult
	Values   []any
	Length   int
	Failures int
	Stopped  bool // an unexpected error ended the run early
}

// Run executes s against a new list. The list compares elements with deep
// equality, so YAML maps and sequences match by value. Run returns an error
// only when the script cannot be started.
func (r *Runner) Run(s *Script) (*Report, error) {
	actions := make([]Action, len(s.Steps))
	for i, step := range s.Steps {
		action, err := step.ToAction()
		if err != nil {
			return nil, fmt.Errorf("error in step %d (%s): %w", i, step.label(), err)
		}
		actions[i] = action
	}

	report := &Report{
		RunID: uuid.NewV4().String(),
		Name:  s.Name,
	}
	log := logging.WithRun(r.logger, report.RunID)

	l := list.NewWithEqual[any](nil)
	defer l.Close()
	var target list.Interface[any] = l
	if r.collector != nil {
		target = metrics.Wrap[any](l, r.collector)
	}

	if err := target.AddRange(slices.Values(s.Initial)); err != nil {
		return nil, fmt.Errorf("error in initial values: %w", err)
	}
	log.WithField("length", l.Len()).Infof("running script %q", s.Name)

	for i, step := range s.Steps {
		result, err := actions[i].Apply(target)
		res := StepResult{
			Index:  i,
			Name:   step.label(),
			Op:     step.Op,
			Result: result,
			Err:    err,
		}
		res.Failure = check(step.Expect, result, err, target.Len())

		entry := log.WithFields(logrus.Fields{
			"step":    i,
			"op":      step.Op,
			"outcome": metrics.Outcome(err),
			"length":  target.Len(),
		})
		if res.Passed() {
			entry.Debugf("step %s", res.Name)
		} else {
			report.Failures++
			entry.Warnf("step %s failed: %s", res.Name, res.Failure)
		}
		report.Steps = append(report.Steps, res)

		unexpected := err != nil && (step.Expect == nil || step.Expect.Error == "")
		if unexpected && !s.Options.ContinueOnError {
			report.Stopped = true
			log.Warnf("stopping after step %d", i)
			break
		}
	}

	report.Values = l.Values()
	report.Length = l.Len()
	log.WithFields(logrus.Fields{
		"length":   report.Length,
		"failures": report.Failures,
	}).Infof("finished script %q", s.Name)
	return report, nil
}

// check returns a description of the first expectation that does not hold.
func check(expect *Expectation, result any, err error, length int) string {
	if expect == nil || expect.Error == "" {
		if err != nil {
			return fmt.Sprintf("unexpected error: %v", err)
		}
	} else if outcome := metrics.Outcome(err); outcome != expect.Error {
		return fmt.Sprintf("expected error %s, got %s", expect.Error, outcome)
	}
	if expect == nil {
		return ""
	}
	if expect.Result != nil && err == nil && !reflect.DeepEqual(result, expect.Result) {
		return fmt.Sprintf("expected result %v, got %v", expect.Result, result)
	}
	if expect.Length != nil && length != *expect.Length {
		return fmt.Sprintf("expected length %d, got %d", *expect.Length, length)
	}
	return ""
}
