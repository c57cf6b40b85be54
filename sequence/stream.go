// Package sequence defines the streaming abstraction shared by every
// generator in intseq, along with observers that report on stream
// consumption (logging, metrics).
//
// A Stream is a pull-based, potentially infinite sequence of integers.
// Each Stream owns its advancement state: two streams created by separate
// constructor calls never share state, so consuming them from different
// goroutines is safe without synchronization. Sharing a single Stream
// instance across goroutines is undefined behavior; streams carry no
// internal locking.
package sequence

import (
	"context"
	"math/big"
)

// Stream is the interface implemented by all sequence generators.
// Unlike a function computing a single term, a Stream produces consecutive
// terms, enabling streaming use cases.
//
// Example usage:
//
//	s := prime.NewSieve()
//	for i := 0; i < 100; i++ {
//	    v, err := s.Next(ctx)
//	    if err != nil {
//	        return err
//	    }
//	    // Use v
//	}
type Stream interface {
	// Next advances the stream and returns the next term. Infinite streams
	// never report exhaustion; the only error returned is the context's,
	// when the caller cancels mid-advancement.
	//
	// The returned *big.Int is owned by the caller; the stream does not
	// retain or mutate it after returning.
	//
	// Parameters:
	//   - ctx: The context for managing cancellation.
	//
	// Returns:
	//   - *big.Int: The next term of the sequence.
	//   - error: ctx.Err() if the context was cancelled, nil otherwise.
	Next(ctx context.Context) (*big.Int, error)

	// Index returns the number of terms emitted so far. Before the first
	// call to Next it is 0, after the first call it is 1, and so on.
	Index() uint64
}

// Take consumes the next n terms from s and returns them in order.
// It is a convenience for tests and callers that want a bounded prefix of
// an infinite stream.
//
// Parameters:
//   - ctx: The context for managing cancellation.
//   - s: The stream to consume.
//   - n: The number of terms to collect.
//
// Returns:
//   - []*big.Int: The collected terms, in emission order.
//   - error: The first error returned by s.Next, if any.
func Take(ctx context.Context, s Stream, n int) ([]*big.Int, error) {
	out := make([]*big.Int, 0, n)
	for i := 0; i < n; i++ {
		v, err := s.Next(ctx)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
