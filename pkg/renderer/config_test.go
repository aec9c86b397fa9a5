package renderer

import "testing"

func TestMergeConfig(t *testing.T) {
	base := DefaultConfig()

	t.Run("Empty override keeps base", func(t *testing.T) {
		if got := MergeConfig(base, Config{}); got != base {
			t.Errorf("Expected %+v, got %+v", base, got)
		}
	})

	t.Run("Set fields win", func(t *testing.T) {
		override := Config{
			Width:    320,
			MaxDepth: 2,
			Shading:  ShadingConfig{Shadow: ShadowBinary, Transmission: TransmissionRefract},
		}
		got := MergeConfig(base, override)

		if got.Width != 320 || got.Height != base.Height {
			t.Errorf("Expected 320x%d, got %dx%d", base.Height, got.Width, got.Height)
		}
		if got.MaxDepth != 2 {
			t.Errorf("Expected depth 2, got %d", got.MaxDepth)
		}
		if got.FOV != DefaultFOV {
			t.Errorf("Expected default FOV, got %f", got.FOV)
		}
		if got.Shading.Shadow != ShadowBinary || got.Shading.Transmission != TransmissionRefract {
			t.Errorf("Expected shading override, got %+v", got.Shading)
		}
	})

	t.Run("Zero shading modes keep base", func(t *testing.T) {
		custom := base
		custom.Shading = ShadingConfig{Shadow: ShadowBinary, Transmission: TransmissionRefract}

		got := MergeConfig(custom, Config{Shading: ShadingConfig{Shadow: ShadowTwoLevel, Transmission: TransmissionAlpha}})
		if got.Shading != custom.Shading {
			t.Errorf("Expected base shading %+v, got %+v", custom.Shading, got.Shading)
		}

		rt := NewRaytracer(custom, nil)
		rt.SetShading(ShadingConfig{})
		if rt.Config().Shading != (ShadingConfig{}) {
			t.Errorf("Expected SetShading to restore defaults, got %+v", rt.Config().Shading)
		}
	})
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	if config.MaxDepth != 4 {
		t.Errorf("Expected default depth 4, got %d", config.MaxDepth)
	}
	if config.Shading.Shadow != ShadowTwoLevel || config.Shading.Transmission != TransmissionAlpha {
		t.Errorf("Expected two-level shadows with alpha transmission, got %+v", config.Shading)
	}
}

func TestRenderStats(t *testing.T) {
	stats := RenderStats{Width: 10, Height: 4, Rows: 4, Workers: 2}
	if stats.Pixels() != 40 {
		t.Errorf("Expected 40 pixels, got %d", stats.Pixels())
	}
	if stats.String() == "" {
		t.Error("Expected a summary string")
	}
}

func TestGetSystemInfo(t *testing.T) {
	info := GetSystemInfo()
	if info.LogicalCores <= 0 {
		t.Errorf("Expected at least one core, got %d", info.LogicalCores)
	}
	if DefaultWorkerCount() <= 0 {
		t.Error("Expected a positive default worker count")
	}
}
