package arith

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/hwyarray/hwy"
)

func naiveDot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

func TestDot(t *testing.T) {
	tests := []struct {
		name string
		a    []float64
		b    []float64
		want float64
	}{
		{
			name: "concrete scenario",
			a:    []float64{1, 2, 3, 4, 5},
			b:    []float64{5, 4, 3, 2, 1},
			want: 35, // 5 + 8 + 9 + 8 + 5
		},
		{
			name: "exact AVX2 width (4 float64 lanes)",
			a:    []float64{1, 2, 3, 4},
			b:    []float64{4, 3, 2, 1},
			want: 20,
		},
		{
			name: "shorter than a lane",
			a:    []float64{1, 2, 3},
			b:    []float64{4, 5, 6},
			want: 32,
		},
		{
			name: "empty slices",
			a:    []float64{},
			b:    []float64{},
			want: 0,
		},
		{
			name: "negative values",
			a:    []float64{-1, -2, -3, -4, -5, -6, -7, -8, -9},
			b:    []float64{1, 1, 1, 1, 1, 1, 1, 1, 1},
			want: -45,
		},
	}

	for _, target := range targets() {
		e := New[float64](WithTarget(target), WithParallelism(3))
		for _, tt := range tests {
			t.Run(target.Name+"/"+tt.name, func(t *testing.T) {
				got, err := e.Dot(tt.a, tt.b)
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)

				got, err = e.DotParallel(tt.a, tt.b)
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			})
		}
	}
}

func TestDotPackageLevel(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5}
	b := []float64{5, 4, 3, 2, 1}

	got, err := Dot(a, b)
	require.NoError(t, err)
	assert.Equal(t, 35.0, got)

	got, err = DotParallel(a, b)
	require.NoError(t, err)
	assert.Equal(t, 35.0, got)

	zero, err := DotParallel([]float32{}, []float32{})
	require.NoError(t, err)
	assert.Zero(t, zero)
}

func TestDotWithinToleranceOfNaive(t *testing.T) {
	rng := rand.New(rand.NewSource(10))

	for _, target := range targets() {
		e := New[float64](WithTarget(target))
		for _, n := range []int{1, 2, 3, 7, 8, 9, 63, 64, 65, 1000, 4099} {
			a, b := randomPair[float64](rng, n)
			got, err := e.Dot(a, b)
			require.NoError(t, err)
			want := naiveDot(a, b)
			assert.InDelta(t, want, got, float64(DotTolerance(a, b)), "%s n=%d", target.Name, n)
		}
	}
}

func TestDotParallelWithinTolerance(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	pool := newTestPool(t, 4)

	for _, target := range targets() {
		for _, p := range []int{1, 2, 3, 4, 8, 13} {
			for _, n := range []int{0, 1, 5, 10, 100, 1001, 10000} {
				a, b := randomPair[float64](rng, n)
				seq, err := New[float64](WithTarget(target)).Dot(a, b)
				require.NoError(t, err)

				tol := float64(DotTolerance(a, b))
				for _, e := range []*Engine[float64]{
					New[float64](WithTarget(target), WithParallelism(p)),
					New[float64](WithTarget(target), WithParallelism(p), WithPool(pool)),
				} {
					par, err := e.DotParallel(a, b)
					require.NoError(t, err)
					if math.Abs(par-seq) > tol {
						t.Fatalf("%s p=%d n=%d: |%v - %v| > %v", target.Name, p, n, par, seq, tol)
					}
				}
			}
		}
	}
}

func TestDotParallelSingleRangeMatchesSequential(t *testing.T) {
	rng := rand.New(rand.NewSource(12))
	a, b := randomPair[float64](rng, 777)

	e := New[float64](WithParallelism(1))
	seq, err := e.Dot(a, b)
	require.NoError(t, err)
	par, err := e.DotParallel(a, b)
	require.NoError(t, err)

	// One range means one chunk over [0, n), the same summation order.
	assert.Equal(t, seq, par)
}

func TestDotFloat32(t *testing.T) {
	rng := rand.New(rand.NewSource(13))

	for _, n := range []int{3, 16, 17, 500, 5000} {
		t.Run(fmt.Sprint(n), func(t *testing.T) {
			a, b := randomPair[float32](rng, n)

			var want float64
			for i := range a {
				want += float64(a[i]) * float64(b[i])
			}

			e := New[float32](WithTarget(hwy.NewTarget(hwy.DispatchAVX512, 0)), WithParallelism(4))
			require.Equal(t, 16, e.Lanes())

			seq, err := e.Dot(a, b)
			require.NoError(t, err)
			par, err := e.DotParallel(a, b)
			require.NoError(t, err)

			tol := float64(DotTolerance(a, b))
			assert.InDelta(t, want, float64(seq), tol)
			assert.InDelta(t, float64(seq), float64(par), tol)
		})
	}
}

func TestDotTolerance(t *testing.T) {
	assert.Zero(t, DotTolerance([]float64{}, []float64{}))
	assert.Zero(t, DotTolerance([]float64{0, 0}, []float64{1, 2}))

	// 2 * n * eps * sum|a*b| = 2 * 2 * 2^-52 * 7
	got := DotTolerance([]float64{1, -2}, []float64{3, 2})
	assert.Equal(t, 28*0x1p-52, got)

	got32 := DotTolerance([]float32{1, -2}, []float32{3, 2})
	assert.Equal(t, float32(28*0x1p-23), got32)
}
