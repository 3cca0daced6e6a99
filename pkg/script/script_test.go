package script

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/ArturiaGit/DataStructure/pkg/metrics"
	"github.com/ArturiaGit/DataStructure/pkg/render"
)

func newTestRunner(t *testing.T) (*Runner, *test.Hook) {
	t.Helper()
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	return NewRunner(logger, nil), hook
}

func TestLoadScript(t *testing.T) {
	s, err := LoadScript("testdata/basic.yaml")
	if err != nil {
		t.Fatalf("LoadScript failed: %v", err)
	}
	if s.Name != "basic" {
		t.Errorf("Expected name 'basic', got %q", s.Name)
	}
	if len(s.Initial) != 4 {
		t.Errorf("Expected 4 initial values, got %d", len(s.Initial))
	}
	if !strings.EqualFold(s.Options.Format, render.FormatAsciiTree) {
		t.Errorf("Expected asciitree format, got %q", s.Options.Format)
	}
	if s.Options.TrimValues != 8 {
		t.Errorf("Expected trim 8, got %d", s.Options.TrimValues)
	}
	if s.Steps[6].Value != nil {
		t.Errorf("Expected null value to decode as nil, got %v", s.Steps[6].Value)
	}
}

func TestRunBasicScript(t *testing.T) {
	s, err := LoadScript("testdata/basic.yaml")
	if err != nil {
		t.Fatalf("LoadScript failed: %v", err)
	}
	r, hook := newTestRunner(t)
	report, err := r.Run(s)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	for _, step := range report.Steps {
		if !step.Passed() {
			t.Errorf("Step %d (%s) failed: %s", step.Index, step.Name, step.Failure)
		}
	}
	if report.Failures != 0 || report.Stopped {
		t.Errorf("Expected a clean run, got %d failures, stopped=%v", report.Failures, report.Stopped)
	}
	if report.Length != 6 {
		t.Errorf("Expected final length 6, got %d", report.Length)
	}
	if len(report.Steps) != len(s.Steps) {
		t.Errorf("Expected %d step results, got %d", len(s.Steps), len(report.Steps))
	}
	if report.RunID == "" {
		t.Errorf("Expected a run id")
	}
	last := hook.LastEntry()
	if last == nil || last.Data["run"] != report.RunID {
		t.Errorf("Expected log entries tagged with the run id")
	}
}

func TestRunStopsOnUnexpectedError(t *testing.T) {
	s, err := LoadScriptFromString(`
initial: [a]
steps:
  - op: removeAt
    index: 3
  - op: append
    value: b
`)
	if err != nil {
		t.Fatalf("LoadScriptFromString failed: %v", err)
	}
	r, hook := newTestRunner(t)
	report, err := r.Run(s)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !report.Stopped || len(report.Steps) != 1 {
		t.Errorf("Expected the run to stop after the first step, got %d steps", len(report.Steps))
	}
	if report.Failures != 1 {
		t.Errorf("Expected 1 failure, got %d", report.Failures)
	}
	if report.Length != 1 {
		t.Errorf("Expected length 1, got %d", report.Length)
	}
	warned := false
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel {
			warned = true
		}
	}
	if !warned {
		t.Errorf("Expected a warning to be logged")
	}
}

func TestRunContinueOnError(t *testing.T) {
	s, err := LoadScriptFromString(`
options:
  option-continue-on-error: true
steps:
  - op: get
    index: 0
  - op: append
    value: b
    expect: {length: 1}
`)
	if err != nil {
		t.Fatalf("LoadScriptFromString failed: %v", err)
	}
	r, _ := newTestRunner(t)
	report, err := r.Run(s)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if report.Stopped || len(report.Steps) != 2 {
		t.Errorf("Expected both steps to run, got %d", len(report.Steps))
	}
	if report.Failures != 1 || report.Steps[1].Failure != "" {
		t.Errorf("Expected only the first step to fail, got %+v", report.Steps)
	}
}

func TestRunReportsExpectationMismatch(t *testing.T) {
	s, err := LoadScriptFromString(`
initial: [a, b]
steps:
  - op: contains
    value: b
    expect: {result: 0}
  - op: removeValue
    value: a
    expect: {error: not_found}
`)
	if err != nil {
		t.Fatalf("LoadScriptFromString failed: %v", err)
	}
	r, _ := newTestRunner(t)
	report, err := r.Run(s)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if report.Failures != 2 {
		t.Fatalf("Expected 2 failures, got %d", report.Failures)
	}
	if !strings.Contains(report.Steps[0].Failure, "expected result 0, got 1") {
		t.Errorf("Unexpected failure text: %s", report.Steps[0].Failure)
	}
	if !strings.Contains(report.Steps[1].Failure, "expected error not_found, got ok") {
		t.Errorf("Unexpected failure text: %s", report.Steps[1].Failure)
	}
}

func TestRunDeepEqualityOnStructuredValues(t *testing.T) {
	s, err := LoadScriptFromString(`
initial:
  - {id: 1, tags: [x]}
  - {id: 2}
steps:
  - op: contains
    value: {id: 2}
    expect: {result: 1}
  - op: removeValue
    value: {id: 1, tags: [x]}
    expect: {length: 1}
`)
	if err != nil {
		t.Fatalf("LoadScriptFromString failed: %v", err)
	}
	r, _ := newTestRunner(t)
	report, err := r.Run(s)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if report.Failures != 0 {
		t.Errorf("Expected no failures, got %+v", report.Steps)
	}
}

func TestRunRecordsMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := metrics.NewCollector("script", reg)
	if err != nil {
		t.Fatalf("NewCollector failed: %v", err)
	}
	s, err := LoadScriptFromString(`
steps:
  - op: append
    value: a
  - op: removeValue
    value: z
    expect: {error: not_found}
`)
	if err != nil {
		t.Fatalf("LoadScriptFromString failed: %v", err)
	}
	logger, _ := test.NewNullLogger()
	if _, err := NewRunner(logger, c).Run(s); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	snap, err := metrics.Snapshot(reg)
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}
	if snap["script_list_operations_total{op=append,outcome=ok}"] != 1 {
		t.Errorf("Expected one successful append, got %v", snap)
	}
	if snap["script_list_operations_total{op=remove_value,outcome=not_found}"] != 1 {
		t.Errorf("Expected one not_found removal, got %v", snap)
	}
}

func TestRunRejectsAbsentInitialValue(t *testing.T) {
	s := &Script{Initial: []any{"a", nil}}
	r, _ := newTestRunner(t)
	if _, err := r.Run(s); err == nil {
		t.Errorf("Expected an error for an absent initial value")
	}
}

func TestStepValidate(t *testing.T) {
	one := 1
	cases := []struct {
		step  Step
		valid bool
	}{
		{Step{Op: OpAppend, Value: "a"}, true},
		{Step{Op: OpAppend}, true},
		{Step{Op: OpGet, Index: &one}, true},
		{Step{Op: OpGet}, false},
		{Step{Op: OpContains, Index: &one}, false},
		{Step{Op: OpAppend, Values: []any{"a"}}, false},
		{Step{Op: "sort"}, false},
	}
	for _, c := range cases {
		err := c.step.Validate()
		if (err == nil) != c.valid {
			t.Errorf("Validate(%+v): expected valid=%v, got %v", c.step, c.valid, err)
		}
	}
}

func TestLoadScriptRejectsInvalidStep(t *testing.T) {
	_, err := LoadScriptFromString(`
steps:
  - op: update
    value: a
`)
	if err == nil || !strings.Contains(err.Error(), "requires 'index'") {
		t.Errorf("Expected a missing index error, got %v", err)
	}
}
