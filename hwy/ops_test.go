package hwy

import (
	"testing"
)

func TestLoadFullIsView(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6}
	v := LoadFull(data, 4)

	if v.NumLanes() != 4 {
		t.Fatalf("NumLanes() = %d, want 4", v.NumLanes())
	}
	for i := range 4 {
		if v.data[i] != data[i] {
			t.Errorf("LoadFull: lane %d: got %v, want %v", i, v.data[i], data[i])
		}
	}

	v.data[0] = 42
	if data[0] != 42 {
		t.Errorf("LoadFull should view the source slice, data[0] = %v", data[0])
	}
	if cap(v.data) != 4 {
		t.Errorf("LoadFull capacity = %d, want 4", cap(v.data))
	}
}

func TestZero(t *testing.T) {
	v := Zero[float32](8)

	if v.NumLanes() != 8 {
		t.Errorf("Zero: NumLanes() = %d, want 8", v.NumLanes())
	}
	for i := 0; i < v.NumLanes(); i++ {
		if v.data[i] != 0 {
			t.Errorf("Zero: lane %d: got %v, want 0", i, v.data[i])
		}
	}
}

func TestArithmetic(t *testing.T) {
	a := []float32{10, 20, 30, 40}
	b := []float32{1, 2, 3, 4}

	tests := []struct {
		name string
		op   func(dst, a, b Vec[float32])
		want []float32
	}{
		{"Add", Add[float32], []float32{11, 22, 33, 44}},
		{"Sub", Sub[float32], []float32{9, 18, 27, 36}},
		{"Mul", Mul[float32], []float32{10, 40, 90, 160}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := Zero[float32](4)
			tt.op(dst, LoadFull(a, 4), LoadFull(b, 4))
			for i, got := range dst.Data() {
				if got != tt.want[i] {
					t.Errorf("%s: lane %d: got %v, want %v", tt.name, i, got, tt.want[i])
				}
			}
		})
	}
}

func TestAddAliasesDestination(t *testing.T) {
	a := []float64{1, 2, 3, 4}
	b := []float64{4, 3, 2, 1}
	va := LoadFull(a, 4)

	Add(va, va, LoadFull(b, 4))

	for i, got := range a {
		if got != 5 {
			t.Errorf("Add in place: lane %d: got %v, want 5", i, got)
		}
	}
}

func TestReduceSum(t *testing.T) {
	v := LoadFull([]float64{1, 2, 3, 4}, 4)
	if got := ReduceSum(v); got != 10 {
		t.Errorf("ReduceSum() = %v, want 10", got)
	}

	if got := ReduceSum(Zero[float64](0)); got != 0 {
		t.Errorf("ReduceSum(empty) = %v, want 0", got)
	}
}

func TestStoreFull(t *testing.T) {
	dst := make([]float32, 6)
	StoreFull(LoadFull([]float32{1, 2, 3, 4}, 4), dst[1:])

	want := []float32{0, 1, 2, 3, 4, 0}
	for i, got := range dst {
		if got != want[i] {
			t.Errorf("StoreFull: index %d: got %v, want %v", i, got, want[i])
		}
	}
}
