package sequence

import (
	"bytes"
	"context"
	"math/big"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
)

// countingStream is a minimal test stream emitting 1, 2, 3, ...
type countingStream struct {
	n uint64
}

func (c *countingStream) Next(ctx context.Context) (*big.Int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.n++
	return new(big.Int).SetUint64(c.n), nil
}

func (c *countingStream) Index() uint64 { return c.n }

func TestTake(t *testing.T) {
	t.Parallel()
	got, err := Take(context.Background(), &countingStream{}, 5)
	if err != nil {
		t.Fatalf("Take: %v", err)
	}
	for i, v := range got {
		if v.Int64() != int64(i+1) {
			t.Errorf("Term %d: expected %d, got %s", i, i+1, v)
		}
	}
}

func TestTakeContextCancellation(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Take(ctx, &countingStream{}, 5); err == nil {
		t.Error("Expected an error from a cancelled context.")
	}
}

// TestMetricsObserver checks that the counter tracks exactly the number of
// terms consumed through the tee.
func TestMetricsObserver(t *testing.T) {
	t.Parallel()
	reg := prometheus.NewRegistry()
	obs := NewMetricsObserver(reg, "counting")

	s := Tee(&countingStream{}, obs)
	if _, err := Take(context.Background(), s, 50); err != nil {
		t.Fatalf("Take: %v", err)
	}

	if got := testutil.ToFloat64(obs.Counter()); got != 50 {
		t.Errorf("Counter: expected 50, got %v", got)
	}
}

func TestMetricsObserverNilRegisterer(t *testing.T) {
	t.Parallel()
	obs := NewMetricsObserver(nil, "unregistered")
	obs.Observe(1, big.NewInt(2))
	if got := testutil.ToFloat64(obs.Counter()); got != 1 {
		t.Errorf("Counter: expected 1, got %v", got)
	}
}

// TestLoggingObserver checks the throttling: with every=10 and 25 terms,
// exactly two log lines appear (indices 10 and 20).
func TestLoggingObserver(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	obs := NewLoggingObserver(logger, "counting", 10)

	s := Tee(&countingStream{}, obs)
	if _, err := Take(context.Background(), s, 25); err != nil {
		t.Fatalf("Take: %v", err)
	}

	lines := strings.Count(buf.String(), "\n")
	if lines != 2 {
		t.Errorf("Expected 2 log lines, got %d: %q", lines, buf.String())
	}
	if !strings.Contains(buf.String(), `"stream":"counting"`) {
		t.Errorf("Log output missing the stream label: %q", buf.String())
	}
}

func TestTeeWithoutObservers(t *testing.T) {
	t.Parallel()
	inner := &countingStream{}
	if s := Tee(inner); s != Stream(inner) {
		t.Error("Tee without observers must return the stream unchanged.")
	}
}

func TestTeeIndexPassthrough(t *testing.T) {
	t.Parallel()
	s := Tee(&countingStream{}, NewMetricsObserver(nil, "idx"))
	if _, err := Take(context.Background(), s, 3); err != nil {
		t.Fatalf("Take: %v", err)
	}
	if s.Index() != 3 {
		t.Errorf("Index: expected 3, got %d", s.Index())
	}
}
