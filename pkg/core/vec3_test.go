package core

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    Vec3
		expected Vec3
	}{
		{"unit x", NewVec3(5, 0, 0), NewVec3(1, 0, 0)},
		{"diagonal", NewVec3(3, 4, 0), NewVec3(0.6, 0.8, 0)},
		{"zero stays zero", NewVec3(0, 0, 0), NewVec3(0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Normalize(tt.input)
			if !vecNear(result, tt.expected, 1e-6) {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
			if !IsFinite(result) {
				t.Errorf("Expected finite result, got %v", result)
			}
		})
	}
}

func TestReflect(t *testing.T) {
	// Ray heading down at 45 degrees onto a floor
	d := Normalize(NewVec3(1, -1, 0))
	n := NewVec3(0, 1, 0)

	r := Reflect(d, n)
	expected := Normalize(NewVec3(1, 1, 0))

	if !vecNear(r, expected, 1e-6) {
		t.Errorf("Expected %v, got %v", expected, r)
	}
	if math32.Abs(r.Len()-1) > 1e-6 {
		t.Errorf("Reflection of a unit vector should be unit length, got %f", r.Len())
	}
}

func TestLerpAndMulVec(t *testing.T) {
	a := NewVec3(0, 0, 0)
	b := NewVec3(2, 4, 6)

	if mid := Lerp(a, b, 0.5); !vecNear(mid, NewVec3(1, 2, 3), 1e-6) {
		t.Errorf("Expected midpoint (1,2,3), got %v", mid)
	}
	if start := Lerp(a, b, 0); start != a {
		t.Errorf("Expected Lerp at 0 to return a, got %v", start)
	}

	product := MulVec(NewVec3(0.5, 2, -1), NewVec3(2, 0.25, 3))
	if product != NewVec3(1, 0.5, -3) {
		t.Errorf("Expected (1,0.5,-3), got %v", product)
	}
}

func TestClamp(t *testing.T) {
	v := Clamp(NewVec3(-0.5, 0.5, 1.5), 0, 1)
	if v != NewVec3(0, 0.5, 1) {
		t.Errorf("Expected (0,0.5,1), got %v", v)
	}
}

func TestIsFinite(t *testing.T) {
	if IsFinite(NewVec3(math32.Inf(1), 0, 0)) {
		t.Error("Expected +Inf component to be reported as not finite")
	}
	if IsFinite(NewVec3(0, math32.NaN(), 0)) {
		t.Error("Expected NaN component to be reported as not finite")
	}
	if !IsFinite(NewVec3(1, 2, 3)) {
		t.Error("Expected finite vector to be reported as finite")
	}
}

func TestRayAt(t *testing.T) {
	ray := NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, -1))
	if p := ray.At(4); p != NewVec3(0, 0, 1) {
		t.Errorf("Expected (0,0,1), got %v", p)
	}
}

// vecNear reports whether every component of a and b differs by at most eps
func vecNear(a, b Vec3, eps float32) bool {
	for i := range a {
		if d := a[i] - b[i]; !(d <= eps && d >= -eps) {
			return false
		}
	}
	return true
}
