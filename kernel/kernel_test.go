package kernel

import (
	"errors"
	"math"
	"testing"
)

func requireUnitSum(t *testing.T, k []float64) {
	t.Helper()
	if s := Sum(k); math.Abs(s-1) > 1e-12 {
		t.Fatalf("sum = %v, want 1", s)
	}
}

func TestBox1D(t *testing.T) {
	k, err := Box1D(5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	requireUnitSum(t, k)
	for i, v := range k {
		if v != 0.2 {
			t.Errorf("tap %d: got %v, want 0.2", i, v)
		}
	}

	if _, err := Box1D(4); !errors.Is(err, ErrEvenSize) {
		t.Errorf("even size: got %v", err)
	}
	if _, err := Box1D(0); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("zero size: got %v", err)
	}
}

func TestBox3D(t *testing.T) {
	k, err := Box3D(3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(k) != 27 {
		t.Fatalf("length: got %d, want 27", len(k))
	}
	requireUnitSum(t, k)
}

func TestTophat2D(t *testing.T) {
	k, err := Tophat2D(2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	size := 5
	if len(k) != size*size {
		t.Fatalf("length: got %d, want %d", len(k), size*size)
	}
	requireUnitSum(t, k)

	// Corners lie outside the disk, center inside.
	if k[0] != 0 || k[size-1] != 0 || k[size*size-1] != 0 {
		t.Error("corner taps should be zero")
	}
	if k[2*size+2] == 0 {
		t.Error("center tap should be nonzero")
	}

	if _, err := Tophat2D(0); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("zero radius: got %v", err)
	}
}

func TestGaussian1D(t *testing.T) {
	k, err := Gaussian1D(1.5, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	requireUnitSum(t, k)

	// Symmetric with the peak at the center.
	for i := 0; i < 3; i++ {
		if math.Abs(k[i]-k[6-i]) > 1e-15 {
			t.Errorf("asymmetry at tap %d: %v vs %v", i, k[i], k[6-i])
		}
	}
	for i := 0; i < 6; i++ {
		lo, hi := i, i+1
		if lo < 3 && k[lo] >= k[hi] {
			t.Errorf("taps %d..%d not increasing toward center", lo, hi)
		}
	}

	if _, err := Gaussian1D(0, 7); !errors.Is(err, ErrInvalidStdDev) {
		t.Errorf("zero stddev: got %v", err)
	}
	if _, err := Gaussian1D(1, 6); !errors.Is(err, ErrEvenSize) {
		t.Errorf("even size: got %v", err)
	}
}

func TestGaussian2DSeparableProduct(t *testing.T) {
	size := 5
	row, err := Gaussian1D(1.2, size)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	k, err := Gaussian2D(1.2, size)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	requireUnitSum(t, k)

	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			want := row[i] * row[j]
			if math.Abs(k[i*size+j]-want) > 1e-12 {
				t.Errorf("(%d,%d): got %v, want %v", i, j, k[i*size+j], want)
			}
		}
	}
}

func TestGaussian3D(t *testing.T) {
	size := 3
	k, err := Gaussian3D(1.0, size)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(k) != size*size*size {
		t.Fatalf("length: got %d, want %d", len(k), size*size*size)
	}
	requireUnitSum(t, k)

	// Center tap dominates.
	center := k[(1*size+1)*size+1]
	for i, v := range k {
		if v > center {
			t.Errorf("tap %d (%v) exceeds center (%v)", i, v, center)
		}
	}
}

func TestRicker1D(t *testing.T) {
	k, err := Ricker1D(1.0, 11)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Positive peak at the center, negative side lobes, near-zero sum.
	if k[5] <= 0 {
		t.Errorf("center: got %v, want > 0", k[5])
	}
	if k[3] >= 0 || k[7] >= 0 {
		t.Errorf("side lobes: got %v, %v, want < 0", k[3], k[7])
	}
	if s := Sum(k); math.Abs(s) > 1e-3 {
		t.Errorf("sum = %v, want near 0", s)
	}

	if _, err := Ricker1D(-1, 11); !errors.Is(err, ErrInvalidStdDev) {
		t.Errorf("negative stddev: got %v", err)
	}
}

func TestNormalize(t *testing.T) {
	k := []float64{2, 2, 4}
	if err := Normalize(k); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	requireUnitSum(t, k)

	if err := Normalize([]float64{-1, 1}); !errors.Is(err, ErrZeroSum) {
		t.Errorf("zero-sum: got %v", err)
	}
}

func TestValidate(t *testing.T) {
	if err := Validate([]int{3, 5, 7}); err != nil {
		t.Errorf("valid shape rejected: %v", err)
	}
	if err := Validate([]int{3, 4}); !errors.Is(err, ErrEvenSize) {
		t.Errorf("even extent: got %v", err)
	}
	if err := Validate([]int{0}); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("zero extent: got %v", err)
	}
}
