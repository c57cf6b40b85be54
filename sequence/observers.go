// This file contains concrete observer implementations for monitoring
// stream consumption. Observers are strictly passive: they see each term
// after it is emitted and never influence generation.
package sequence

import (
	"context"
	"math/big"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// Observer receives each term emitted by an observed stream.
type Observer interface {
	// Observe is called once per emitted term.
	//
	// Parameters:
	//   - index: The 1-based position of the term in the stream.
	//   - value: The emitted term. Observers must not mutate it.
	Observe(index uint64, value *big.Int)
}

// ─────────────────────────────────────────────────────────────────────────────
// Logging Observer
// ─────────────────────────────────────────────────────────────────────────────

// LoggingObserver logs emitted terms using zerolog. It throttles output to
// every n-th term to avoid log spam on fast streams.
type LoggingObserver struct {
	logger zerolog.Logger
	name   string
	every  uint64
}

// NewLoggingObserver creates an observer that logs one term out of every
// `every` emitted.
//
// Parameters:
//   - logger: The zerolog logger to use.
//   - name: A label identifying the stream in log output.
//   - every: The throttling interval (e.g. 1000 to log every 1000th term).
//     Values below 1 are treated as 1.
//
// Returns:
//   - *LoggingObserver: A new observer that logs to zerolog.
func NewLoggingObserver(logger zerolog.Logger, name string, every uint64) *LoggingObserver {
	if every < 1 {
		every = 1
	}
	return &LoggingObserver{logger: logger, name: name, every: every}
}

// Observe implements Observer by logging throttled progress.
func (o *LoggingObserver) Observe(index uint64, value *big.Int) {
	if index%o.every != 0 {
		return
	}
	o.logger.Debug().
		Str("stream", o.name).
		Uint64("index", index).
		Int("bits", value.BitLen()).
		Msg("term emitted")
}

// ─────────────────────────────────────────────────────────────────────────────
// Metrics Observer
// ─────────────────────────────────────────────────────────────────────────────

// MetricsObserver counts emitted terms in a Prometheus counter, labeled by
// stream name. The registerer is injected so that library users keep control
// of their registry.
type MetricsObserver struct {
	terms prometheus.Counter
}

// NewMetricsObserver creates an observer that increments a counter for each
// emitted term.
//
// Parameters:
//   - reg: The Prometheus registerer to register the counter with.
//     If nil, the counter is created unregistered.
//   - name: The stream label attached to the counter.
//
// Returns:
//   - *MetricsObserver: A new observer backed by a Prometheus counter.
func NewMetricsObserver(reg prometheus.Registerer, name string) *MetricsObserver {
	c := prometheus.NewCounter(prometheus.CounterOpts{
		Name:        "intseq_terms_emitted_total",
		Help:        "Total number of sequence terms emitted.",
		ConstLabels: prometheus.Labels{"stream": name},
	})
	if reg != nil {
		reg.MustRegister(c)
	}
	return &MetricsObserver{terms: c}
}

// Observe implements Observer by incrementing the term counter.
func (o *MetricsObserver) Observe(index uint64, value *big.Int) {
	o.terms.Inc()
}

// Counter exposes the underlying counter, mainly for test assertions.
func (o *MetricsObserver) Counter() prometheus.Counter { return o.terms }

// ─────────────────────────────────────────────────────────────────────────────
// Tee
// ─────────────────────────────────────────────────────────────────────────────

// teeStream wraps a Stream and fans each emitted term out to observers.
type teeStream struct {
	inner     Stream
	observers []Observer
}

// Tee returns a Stream that forwards s unchanged while notifying every
// observer of each emitted term. Observers run synchronously on the
// consumer's goroutine, after the term is produced.
//
// Parameters:
//   - s: The stream to observe.
//   - observers: The observers to notify.
//
// Returns:
//   - Stream: The observed stream.
func Tee(s Stream, observers ...Observer) Stream {
	if len(observers) == 0 {
		return s
	}
	return &teeStream{inner: s, observers: observers}
}

// Next advances the inner stream and notifies the observers.
func (t *teeStream) Next(ctx context.Context) (*big.Int, error) {
	v, err := t.inner.Next(ctx)
	if err != nil {
		return nil, err
	}
	idx := t.inner.Index()
	for _, o := range t.observers {
		o.Observe(idx, v)
	}
	return v, nil
}

// Index reports the inner stream's index.
func (t *teeStream) Index() uint64 { return t.inner.Index() }
