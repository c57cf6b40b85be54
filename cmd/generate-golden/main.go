// Command generate-golden regenerates the golden test data consumed by the
// package tests. Every value is produced by a deliberately simple oracle,
// independent of the library's own algorithms: a bounded boolean sieve for
// primes and plain iterative addition for the recurrences.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
)

// GoldenTerm represents a single indexed test case in a golden file.
type GoldenTerm struct {
	N      int64  `json:"n"`
	Result string `json:"result"`
}

// recurrenceGolden is the layout of recurrence/testdata/recurrence_golden.json.
type recurrenceGolden struct {
	Fibonacci []GoldenTerm `json:"fibonacci"`
	Pell      []GoldenTerm `json:"pell"`
}

// goldenIndices are the recurrence indices captured in the golden file:
// small values, powers of two, and a few large targets.
var goldenIndices = []int64{0, 1, 2, 3, 5, 10, 20, 50, 92, 93, 94, 100, 128, 256, 500, 1000}

func main() {
	primeOut := flag.String("prime-out", "prime/testdata", "Output directory for the prime golden file")
	recOut := flag.String("recurrence-out", "recurrence/testdata", "Output directory for the recurrence golden file")
	count := flag.Int("primes", 1000, "Number of primes to capture")
	flag.Parse()

	if err := writeJSON(*primeOut, "primes_golden.json", sieveOracle(*count)); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing prime golden file: %v\n", err)
		os.Exit(1)
	}

	golden := recurrenceGolden{
		Fibonacci: captureLinear(big.NewInt(0), big.NewInt(1), fibStep),
		Pell:      captureLinear(big.NewInt(0), big.NewInt(1), pellStep),
	}
	if err := writeJSON(*recOut, "recurrence_golden.json", golden); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing recurrence golden file: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Golden files regenerated.")
}

// writeJSON creates dir/name and encodes v into it with indentation.
func writeJSON(dir, name string, v any) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	file, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// sieveOracle returns the first count primes using a bounded Eratosthenes
// sieve, grown until it holds enough primes. This is the reference the
// incremental wheel sieve is validated against.
func sieveOracle(count int) []uint64 {
	limit := 16
	for {
		composite := make([]bool, limit)
		primes := make([]uint64, 0, count)
		for i := 2; i < limit && len(primes) < count; i++ {
			if composite[i] {
				continue
			}
			primes = append(primes, uint64(i))
			for j := i * i; j < limit; j += i {
				composite[j] = true
			}
		}
		if len(primes) == count {
			return primes
		}
		limit *= 2
	}
}

// fibStep advances (a, b) one Fibonacci step: returns (b, a+b).
func fibStep(a, b *big.Int) (*big.Int, *big.Int) {
	return b, new(big.Int).Add(a, b)
}

// pellStep advances (a, b) one Pell step: returns (b, 2b+a).
func pellStep(a, b *big.Int) (*big.Int, *big.Int) {
	next := new(big.Int).Lsh(b, 1)
	return b, next.Add(next, a)
}

// captureLinear iterates a two-term recurrence from the given seed and
// records the terms at goldenIndices.
func captureLinear(a, b *big.Int, step func(a, b *big.Int) (*big.Int, *big.Int)) []GoldenTerm {
	last := goldenIndices[len(goldenIndices)-1]
	byIndex := make(map[int64]string, len(goldenIndices))
	for n := int64(0); n <= last; n++ {
		byIndex[n] = a.String()
		a, b = step(a, b)
	}

	out := make([]GoldenTerm, 0, len(goldenIndices))
	for _, n := range goldenIndices {
		out = append(out, GoldenTerm{N: n, Result: byIndex[n]})
	}
	return out
}
