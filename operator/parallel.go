// SPDX-License-Identifier: MIT

package operator

import "sync"

// crossProducts returns every a[i]·b[j] at index i·len(b)+j.
//
// When the product count reaches o.threshold and o.workers > 1, rows of a
// are partitioned into contiguous blocks, one goroutine per block. Each
// worker writes only its own disjoint slots of the pre-allocated output, so
// there is no shared accumulator and no locking; the caller merges the
// slice in index order, which makes the parallel result bit-identical to
// the serial one.
func (o Options) crossProducts(a, b []Term) []Term {
	n := len(a) * len(b)
	out := make([]Term, n)
	if n == 0 {
		return out
	}

	workers := min(o.workers, len(a))
	if workers <= 1 || n < o.threshold {
		for i := range a {
			row := out[i*len(b) : (i+1)*len(b)]
			for j := range b {
				row[j] = MulTerms(a[i], b[j])
			}
		}

		return out
	}

	block := (len(a) + workers - 1) / workers
	o.log.V(1).Info("parallel term products", "products", n, "workers", workers, "rowsPerWorker", block)

	var wg sync.WaitGroup
	for lo := 0; lo < len(a); lo += block {
		hi := min(lo+block, len(a))
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				row := out[i*len(b) : (i+1)*len(b)]
				for j := range b {
					row[j] = MulTerms(a[i], b[j])
				}
			}
		}(lo, hi)
	}
	wg.Wait()

	return out
}
