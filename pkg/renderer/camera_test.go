package renderer

import (
	"math"
	"testing"

	"github.com/adrianap0607/Diorama/pkg/core"
)

const eps = 1e-4

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < eps
}

func defaultTestCamera() *Camera {
	return NewCamera(core.NewVec3(2.2, 1.6, 5), core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))
}

func TestNewCamera_Basis(t *testing.T) {
	camera := defaultTestCamera()

	for name, v := range map[string]core.Vec3{"forward": camera.Forward, "right": camera.Right, "up": camera.Up} {
		if !near(v.Len(), 1) {
			t.Errorf("Expected unit %s, got length %f", name, v.Len())
		}
	}
	if !near(camera.Forward.Dot(camera.Right), 0) || !near(camera.Forward.Dot(camera.Up), 0) || !near(camera.Right.Dot(camera.Up), 0) {
		t.Errorf("Expected orthogonal basis, got f=%v r=%v u=%v", camera.Forward, camera.Right, camera.Up)
	}
	// Right-handed: right x up = -forward
	if !vecNear(camera.Right.Cross(camera.Up), core.Negate(camera.Forward), eps) {
		t.Errorf("Expected right-handed basis")
	}
}

func TestCamera_BasisChange(t *testing.T) {
	camera := defaultTestCamera()

	tests := []struct {
		name     string
		input    core.Vec3
		expected core.Vec3
	}{
		{"Forward", core.NewVec3(0, 0, -1), camera.Forward},
		{"Right", core.NewVec3(1, 0, 0), camera.Right},
		{"Up", core.NewVec3(0, 1, 0), camera.Up},
		{"Backward", core.NewVec3(0, 0, 1), core.Negate(camera.Forward)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := camera.BasisChange(tt.input)
			if !vecNear(got, tt.expected, eps) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestCamera_OrbitPreservesRadius(t *testing.T) {
	camera := defaultTestCamera()
	radius := camera.Distance()

	deltas := [][2]float32{{0.3, 0}, {0, 0.2}, {-1.1, 0.4}, {2.5, -0.9}, {0.01, 3}}
	for _, d := range deltas {
		camera.Orbit(d[0], d[1])
		if !near(camera.Distance(), radius) {
			t.Errorf("Orbit(%f, %f): expected radius %f, got %f", d[0], d[1], radius, camera.Distance())
		}
		if camera.Center != core.NewVec3(0, 0, 0) {
			t.Errorf("Orbit moved the center to %v", camera.Center)
		}
	}
}

func TestCamera_OrbitZeroIsNoop(t *testing.T) {
	camera := defaultTestCamera()
	before := *camera

	camera.Orbit(0, 0)

	if !vecNear(camera.Eye, before.Eye, eps) {
		t.Errorf("Expected eye %v, got %v", before.Eye, camera.Eye)
	}
	if !vecNear(camera.Forward, before.Forward, eps) {
		t.Errorf("Expected forward %v, got %v", before.Forward, camera.Forward)
	}
}

func TestCamera_OrbitClampsPitch(t *testing.T) {
	camera := defaultTestCamera()
	radius := camera.Distance()

	camera.Orbit(0, 10)

	pitch := math.Asin(float64(camera.Eye[1] / radius))
	if math.Abs(pitch-1.5) > eps {
		t.Errorf("Expected pitch clamped to 1.5, got %f", pitch)
	}
}

func TestCamera_OrbitDegenerateRadius(t *testing.T) {
	camera := NewCamera(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))
	camera.Orbit(0.5, 0.5)

	if camera.Eye != core.NewVec3(0, 0, 0) {
		t.Errorf("Expected eye unchanged, got %v", camera.Eye)
	}
}

func TestCamera_Pan(t *testing.T) {
	camera := NewCamera(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))
	forward := camera.Forward

	camera.Pan(1, 2)

	if !vecNear(camera.Eye, core.NewVec3(1, 2, 5), eps) {
		t.Errorf("Expected eye (1,2,5), got %v", camera.Eye)
	}
	if !vecNear(camera.Center, core.NewVec3(1, 2, 0), eps) {
		t.Errorf("Expected center (1,2,0), got %v", camera.Center)
	}
	if !vecNear(camera.Forward, forward, eps) {
		t.Errorf("Expected pan to keep the view direction")
	}
}

func TestCamera_Zoom(t *testing.T) {
	tests := []struct {
		name     string
		amount   float32
		expected float32
	}{
		{"Closer", 1, 4},
		{"Farther", -2, 7},
		{"Clamped near", 10, 1.5},
		{"Clamped far", -100, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			camera := NewCamera(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))
			camera.Zoom(tt.amount, 1.5, 40)

			if !near(camera.Distance(), tt.expected) {
				t.Errorf("Expected distance %f, got %f", tt.expected, camera.Distance())
			}
			if !vecNear(camera.Forward, core.NewVec3(0, 0, -1), eps) {
				t.Errorf("Expected zoom to keep the view direction, got %v", camera.Forward)
			}
		})
	}
}

func TestCamera_RayDirection(t *testing.T) {
	camera := defaultTestCamera()

	center := camera.RayDirection(50, 40, 100, 80, DefaultFOV)
	if !vecNear(center, camera.Forward, eps) {
		t.Errorf("Expected center pixel along forward %v, got %v", camera.Forward, center)
	}

	corners := [][2]int{{0, 0}, {99, 0}, {0, 79}, {99, 79}}
	for _, p := range corners {
		dir := camera.RayDirection(p[0], p[1], 100, 80, DefaultFOV)
		if !near(dir.Len(), 1) {
			t.Errorf("Pixel %v: expected unit direction, got length %f", p, dir.Len())
		}
	}

	// Top-left looks left of and above the view direction
	topLeft := camera.RayDirection(0, 0, 100, 80, DefaultFOV)
	if topLeft.Dot(camera.Right) >= 0 || topLeft.Dot(camera.Up) <= 0 {
		t.Errorf("Expected top-left ray to point left and up, got %v", topLeft)
	}
}

func TestCamera_RayDirectionFOV(t *testing.T) {
	camera := NewCamera(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), core.NewVec3(0, 1, 0))

	// Top edge of a square image spans half the vertical FOV
	dir := camera.RayDirection(50, 0, 100, 100, DefaultFOV)
	angle := math.Atan2(float64(dir[1]), float64(-dir[2]))
	if math.Abs(angle-math.Pi/6) > eps {
		t.Errorf("Expected half-FOV angle %f, got %f", math.Pi/6, angle)
	}
}

// vecNear reports whether every component of a and b differs by at most eps
func vecNear(a, b core.Vec3, eps float32) bool {
	for i := range a {
		if d := a[i] - b[i]; !(d <= eps && d >= -eps) {
			return false
		}
	}
	return true
}
