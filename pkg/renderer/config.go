package renderer

// Config contains rendering configuration
type Config struct {
	Width      int     // Image width in pixels
	Height     int     // Image height in pixels
	MaxDepth   int     // Recursion budget for primary rays
	NumWorkers int     // Number of parallel workers (0 = use CPU count)
	FOV        float32 // Vertical field of view in radians
	Shading    ShadingConfig
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:      1300,
		Height:     900,
		MaxDepth:   DefaultMaxDepth,
		NumWorkers: 0,
		FOV:        DefaultFOV,
	}
}

// MergeConfig merges override values into a base config.
// Zero values in override keep the base value. ShadowTwoLevel and
// TransmissionAlpha are the zero shading modes, so an override cannot switch
// a binary or refracting base back to them; use Raytracer.SetShading for that.
func MergeConfig(base, override Config) Config {
	result := base

	if override.Width > 0 {
		result.Width = override.Width
	}
	if override.Height > 0 {
		result.Height = override.Height
	}
	if override.MaxDepth > 0 {
		result.MaxDepth = override.MaxDepth
	}
	if override.NumWorkers > 0 {
		result.NumWorkers = override.NumWorkers
	}
	if override.FOV > 0 {
		result.FOV = override.FOV
	}
	if override.Shading.Shadow != ShadowTwoLevel {
		result.Shading.Shadow = override.Shading.Shadow
	}
	if override.Shading.Transmission != TransmissionAlpha {
		result.Shading.Transmission = override.Shading.Transmission
	}

	return result
}
