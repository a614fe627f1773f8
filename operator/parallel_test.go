// SPDX-License-Identifier: MIT
package operator_test

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/katalvlaran/qsym/operator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMul_ParallelMatchesSerial asserts the fork-join kernel is bit-identical
// to the serial one for several worker counts.
func TestMul_ParallelMatchesSerial(t *testing.T) {
	rng := rand.New(rand.NewSource(31))
	a, b := randomSum(rng, 60, 6), randomSum(rng, 50, 6)

	serial := operator.MustOptions(operator.WithSerial())
	want := serial.Mul(a, b)

	for _, workers := range []int{2, 3, 7, 64} {
		o := operator.MustOptions(operator.WithWorkers(workers), operator.WithParallelThreshold(0))
		got := o.Mul(a, b)
		require.Equal(t, want.Len(), got.Len(), "workers=%d", workers)
		for i := 0; i < want.Len(); i++ {
			w, g := termAt(t, want, i), termAt(t, got, i)
			assert.True(t, w.SameSupport(g))
			assert.Equal(t, w.Coefficient(), g.Coefficient(), "workers=%d term=%d", workers, i)
		}
		assert.True(t, o.Commutator(a, b).Add(o.Mul(b, a)).Equal(want))
	}
}

// TestSum_ConcurrentReaders exercises shared read-only use of one Sum.
func TestSum_ConcurrentReaders(t *testing.T) {
	rng := rand.New(rand.NewSource(37))
	s := randomSum(rng, 40, 5)
	want := s.Mul(s).String()

	var wg sync.WaitGroup
	results := make([]string, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = s.Mul(s).String()
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, want, r)
	}
}
