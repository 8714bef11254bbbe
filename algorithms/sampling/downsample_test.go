package sampling

import "testing"

func sequence(n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = float64(i)
	}
	return s
}

func TestDownsampleStride(t *testing.T) {
	series := sequence(1000)
	out := Downsample(series, 500)

	if len(out) != 500 {
		t.Fatalf("len = %d, want 500", len(out))
	}
	// Every 2nd element: 0, 2, 4, ..., 998.
	for i, v := range out {
		if v != float64(2*i) {
			t.Fatalf("out[%d] = %v, want %v", i, v, 2*i)
		}
	}
	if out[0] != 0 {
		t.Error("first element must be preserved (index 0 aligns with any stride)")
	}
	if out[len(out)-1] == 999 {
		t.Error("last element index 999 does not align with stride 2")
	}
}

func TestDownsampleUnderLimitUnchanged(t *testing.T) {
	series := sequence(10)
	out := Downsample(series, 500)
	if len(out) != 10 {
		t.Fatalf("len = %d, want 10", len(out))
	}
	for i := range series {
		if out[i] != series[i] {
			t.Fatal("series under the limit must be returned unchanged")
		}
	}
}

func TestDownsampleIdempotentOnceUnderLimit(t *testing.T) {
	series := sequence(1234)
	once := Downsample(series, 100)
	twice := Downsample(once, 100)

	if len(once) > 100 {
		t.Fatalf("len = %d, want <= 100", len(once))
	}
	if len(once) != len(twice) {
		t.Fatalf("second pass changed length: %d -> %d", len(once), len(twice))
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Fatal("downsample must be idempotent once under the limit")
		}
	}
}

func TestDownsampleDefaults(t *testing.T) {
	series := sequence(1200)
	out := Downsample(series, 0)
	if len(out) > DefaultLimit {
		t.Fatalf("len = %d, want <= %d", len(out), DefaultLimit)
	}

	if got := Downsample(nil, 5); len(got) != 0 {
		t.Errorf("empty series should stay empty, got %v", got)
	}
}
