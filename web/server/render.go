package server

import (
	"bytes"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adrianap0607/Diorama/pkg/framebuffer"
	"github.com/adrianap0607/Diorama/pkg/renderer"
)

// RenderRequest represents the parameters for a render request
type RenderRequest struct {
	Scene   string
	Width   int
	Height  int
	Depth   int
	Yaw     float64
	Pitch   float64
	Shadow  renderer.ShadowMode
	Refract bool
}

// parseRenderRequest parses and validates the query parameters of a render or inspect request
func (s *Server) parseRenderRequest(c echo.Context) (*RenderRequest, error) {
	query := c.QueryParams()
	req := &RenderRequest{
		Scene: query.Get("scene"),
		Depth: renderer.DefaultMaxDepth,
	}
	if req.Scene == "" {
		req.Scene = defaultSceneName
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", defaultWidth, minSize, maxSize); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(query, "height", defaultHeight, minSize, maxSize); err != nil {
		return nil, err
	}
	if req.Depth, err = parseIntParam(query, "depth", req.Depth, 1, maxDepthLimit); err != nil {
		return nil, err
	}
	if req.Yaw, err = parseFloatParam(query, "yaw", 0, -maxOrbit, maxOrbit); err != nil {
		return nil, err
	}
	if req.Pitch, err = parseFloatParam(query, "pitch", 0, -maxOrbit, maxOrbit); err != nil {
		return nil, err
	}
	if req.Shadow, err = renderer.ParseShadowMode(query.Get("shadow")); err != nil {
		return nil, err
	}
	if req.Refract, err = parseBoolParam(query, "refract", false); err != nil {
		return nil, err
	}

	return req, nil
}

// config converts the request to a renderer configuration
func (req *RenderRequest) config() renderer.Config {
	config := renderer.Config{
		Width:    req.Width,
		Height:   req.Height,
		MaxDepth: req.Depth,
	}
	config.Shading.Shadow = req.Shadow
	if req.Refract {
		config.Shading.Transmission = renderer.TransmissionRefract
	}
	return config
}

// handleRender renders the requested scene and responds with a PNG
func (s *Server) handleRender(c echo.Context) error {
	req, err := s.parseRenderRequest(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sceneObj, err := s.createScene(req.Scene)
	if err != nil {
		return err
	}
	if req.Yaw != 0 || req.Pitch != 0 {
		sceneObj.Camera.Orbit(float32(req.Yaw), float32(req.Pitch))
	}

	logger := NewWebLogger("render", s.console)
	logger.Printf("Rendering %s at %dx%d (depth %d)\n", req.Scene, req.Width, req.Height, req.Depth)

	rt := renderer.NewRaytracer(req.config(), logger)
	canvas := framebuffer.NewCanvas(req.Width, req.Height)
	stats := rt.Render(sceneObj, canvas)

	var buf bytes.Buffer
	if err := canvas.EncodePNG(&buf); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to encode image: "+err.Error())
	}

	c.Response().Header().Set("X-Render-Time", stats.Duration.String())
	return c.Blob(http.StatusOK, "image/png", buf.Bytes())
}
