package renderer

import "github.com/chewxy/math32"

// ControlConfig contains camera control speeds and limits
type ControlConfig struct {
	OrbitSpeed       float32 // Radians per frame while an arrow key is held
	MouseSensitivity float32 // Radians per pixel of left-drag
	PanSpeed         float32 // World units per pixel of middle-drag
	ZoomSpeed        float32 // World units per wheel notch
	MinDistance      float32 // Closest the eye may zoom to the center
	MaxDistance      float32 // Farthest the eye may zoom from the center
}

// DefaultControlConfig returns the default control tuning
func DefaultControlConfig() ControlConfig {
	return ControlConfig{
		OrbitSpeed:       math32.Pi / 100,
		MouseSensitivity: 0.005,
		PanSpeed:         0.01,
		ZoomSpeed:        0.5,
		MinDistance:      1.5,
		MaxDistance:      40,
	}
}

// Input is one frame of polled user input.
// Keeping it free of any windowing types lets the camera logic be tested headless.
type Input struct {
	Left, Right, Up, Down bool    // Arrow keys held
	OrbitDrag             bool    // Left mouse button held
	PanDrag               bool    // Middle mouse button held
	MouseDX, MouseDY      float32 // Cursor movement since last frame, in pixels
	Wheel                 float32 // Wheel notches, positive toward the screen
}

// ApplyInput updates the camera from one frame of input and reports whether it moved
func ApplyInput(c *Camera, in Input, cfg ControlConfig) bool {
	moved := false

	if in.Left {
		c.Orbit(cfg.OrbitSpeed, 0)
		moved = true
	}
	if in.Right {
		c.Orbit(-cfg.OrbitSpeed, 0)
		moved = true
	}
	if in.Up {
		c.Orbit(0, -cfg.OrbitSpeed)
		moved = true
	}
	if in.Down {
		c.Orbit(0, cfg.OrbitSpeed)
		moved = true
	}

	hasDelta := in.MouseDX != 0 || in.MouseDY != 0
	if in.OrbitDrag && hasDelta {
		c.Orbit(-in.MouseDX*cfg.MouseSensitivity, -in.MouseDY*cfg.MouseSensitivity)
		moved = true
	}
	if in.PanDrag && hasDelta {
		c.Pan(-in.MouseDX*cfg.PanSpeed, in.MouseDY*cfg.PanSpeed)
		moved = true
	}

	if in.Wheel != 0 {
		c.Zoom(in.Wheel*cfg.ZoomSpeed, cfg.MinDistance, cfg.MaxDistance)
		moved = true
	}

	return moved
}
