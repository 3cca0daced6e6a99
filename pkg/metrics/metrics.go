// Package metrics counts list operations with Prometheus.
package metrics

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ArturiaGit/DataStructure/pkg/list"
)

// Outcome labels.
const (
	OutcomeOK              = "ok"
	OutcomeInvalidArgument = "invalid_argument"
	OutcomeIndexOutOfRange = "index_out_of_range"
	OutcomeNotFound        = "not_found"
	OutcomeCorrupted       = "corrupted"
	OutcomeError           = "error"
)

// Outcome names the kind of err for use as a label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, list.ErrInvalidArgument):
		return OutcomeInvalidArgument
	case errors.Is(err, list.ErrIndexOutOfRange):
		return OutcomeIndexOutOfRange
	case errors.Is(err, list.ErrNotFound):
		return OutcomeNotFound
	case errors.Is(err, list.ErrCorrupted):
		return OutcomeCorrupted
	default:
		return OutcomeError
	}
}

// Collector holds the operation counter and length gauge of instrumented lists.
type Collector struct {
	ops    *prometheus.CounterVec
	length prometheus.Gauge
}

// NewCollector creates the list metrics under namespace and registers them
// with reg.
func NewCollector(namespace string, reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		ops: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "list_operations_total",
				Help:      "list operations by operation and outcome",
			},
			[]string{"op", "outcome"},
		),
		length: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "list_length",
				Help:      "number of elements after the last operation",
			},
		),
	}
	if err := reg.Register(c.ops); err != nil {
		return nil, fmt.Errorf("registering operation counter: %w", err)
	}
	if err := reg.Register(c.length); err != nil {
		return nil, fmt.Errorf("registering length gauge: %w", err)
	}
	return c, nil
}

func (c *Collector) observe(op string, err error, length int) {
	c.ops.WithLabelValues(op, Outcome(err)).Inc()
	c.length.Set(float64(length))
}

// Snapshot flattens the metric families gathered from g into
// "name{label=value,...}" keys.
func Snapshot(g prometheus.Gatherer) (map[string]float64, error) {
	families, err := g.Gather()
	if err != nil {
		return nil, err
	}
	out := map[string]float64{}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			var labels []string
			for _, lp := range m.GetLabel() {
				labels = append(labels, lp.GetName()+"="+lp.GetValue())
			}
			key := mf.GetName()
			if len(labels) > 0 {
				key += "{" + strings.Join(labels, ",") + "}"
			}
			switch {
			case m.GetCounter() != nil:
				out[key] = m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				out[key] = m.GetGauge().GetValue()
			}
		}
	}
	return out, nil
}

// List forwards to an inner list and records every call on a Collector.
type List[T any] struct {
	inner list.Interface[T]
	c     *Collector
}

var _ list.Interface[int] = (*List[int])(nil)

// Wrap returns inner instrumented with c.
func Wrap[T any](inner list.Interface[T], c *Collector) *List[T] {
	return &List[T]{inner: inner, c: c}
}

func (l *List[T]) record(op string, err error) error {
	l.c.observe(op, err, l.inner.Len())
	return err
}

func (l *List[T]) Append(value T) error {
	return l.record("append", l.inner.Append(value))
}

func (l *List[T]) InsertAt(index int, value T) error {
	return l.record("insert_at", l.inner.InsertAt(index, value))
}

func (l *List[T]) AddRange(seq iter.Seq[T]) error {
	return l.record("add_range", l.inner.AddRange(seq))
}

func (l *List[T]) AddCollection(c list.Collection[T]) error {
	return l.record("add_collection", l.inner.AddCollection(c))
}

func (l *List[T]) RemoveAt(index int) error {
	return l.record("remove_at", l.inner.RemoveAt(index))
}

func (l *List[T]) RemoveValue(value T) error {
	return l.record("remove_value", l.inner.RemoveValue(value))
}

func (l *List[T]) Contains(value T) (int, error) {
	index, err := l.inner.Contains(value)
	return index, l.record("contains", err)
}

func (l *List[T]) Update(index int, value T) error {
	return l.record("update", l.inner.Update(index, value))
}

func (l *List[T]) GetAt(index int) (T, error) {
	v, err := l.inner.GetAt(index)
	return v, l.record("get_at", err)
}

func (l *List[T]) Clear() {
	l.inner.Clear()
	l.record("clear", nil)
}

func (l *List[T]) Len() int {
	return l.inner.Len()
}

func (l *List[T]) All() iter.Seq[T] {
	return l.inner.All()
}

func (l *List[T]) Close() error {
	return l.record("close", l.inner.Close())
}
