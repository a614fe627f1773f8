package operator_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/qsym/operator"
)

// benchmarkMul multiplies two random sums of n terms on 10 sites with opts.
func benchmarkMul(b *testing.B, n int, opts ...operator.Option) {
	rng := rand.New(rand.NewSource(1))
	x, y := randomSum(rng, n, 10), randomSum(rng, n, 10)
	o := operator.MustOptions(opts...)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = o.Mul(x, y)
	}
}

func BenchmarkMul_Serial100(b *testing.B)   { benchmarkMul(b, 100, operator.WithSerial()) }
func BenchmarkMul_Serial400(b *testing.B)   { benchmarkMul(b, 400, operator.WithSerial()) }
func BenchmarkMul_Parallel400(b *testing.B) { benchmarkMul(b, 400) }

// BenchmarkFromTerms_Merge measures the reducer on heavily duplicated input.
func BenchmarkFromTerms_Merge(b *testing.B) {
	rng := rand.New(rand.NewSource(2))
	terms := make([]operator.Term, 10000)
	for i := range terms {
		terms[i] = randomTerm(rng, 4)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = operator.FromTerms(terms...)
	}
}
