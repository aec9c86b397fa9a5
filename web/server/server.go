package server

import (
	"errors"
	"fmt"
	"log"
	"math"
	"net/http"
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/adrianap0607/Diorama/pkg/renderer"
	"github.com/adrianap0607/Diorama/pkg/scene"
)

// Request limits shared by render and inspect
const (
	minSize, maxSize = 16, 2000
	defaultWidth     = 400
	defaultHeight    = 300
	maxDepthLimit    = 16
	defaultSceneName = "diorama"
	maxOrbit         = 2 * math.Pi
)

// Server handles web requests for the raytracer
type Server struct {
	port       int
	textureDir string
	echo       *echo.Echo
	console    *Console
}

// NewServer creates a new web server with its routes registered
func NewServer(port int, textureDir string) *Server {
	s := &Server{
		port:       port,
		textureDir: textureDir,
		echo:       echo.New(),
		console:    NewConsole(defaultConsoleLimit),
	}

	s.echo.HideBanner = true
	s.echo.Use(middleware.Recover())
	s.echo.Use(middleware.CORS())

	// API endpoints
	s.echo.GET("/api/health", s.handleHealth)
	s.echo.GET("/api/scenes", s.handleScenes)
	s.echo.GET("/api/scene-config", s.handleSceneConfig)
	s.echo.GET("/api/render", s.handleRender)
	s.echo.GET("/api/inspect", s.handleInspect)
	s.echo.GET("/api/console", s.handleConsole)

	return s
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start starts the web server and blocks until it stops
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists the built-in scenes
func (s *Server) handleScenes(c echo.Context) error {
	return c.JSON(http.StatusOK, scene.ListScenes())
}

// handleSceneConfig returns the default request values and limits for a scene
func (s *Server) handleSceneConfig(c echo.Context) error {
	sceneName := c.QueryParam("scene")
	if sceneName == "" {
		sceneName = defaultSceneName
	}

	sceneObj, err := s.createScene(sceneName)
	if err != nil {
		return err
	}

	defaults := renderer.DefaultConfig()
	response := map[string]interface{}{
		"scene":   sceneName,
		"objects": sceneObj.GetPrimitiveCount(),
		"defaults": map[string]interface{}{
			"width":   defaultWidth,
			"height":  defaultHeight,
			"depth":   defaults.MaxDepth,
			"shadow":  defaults.Shading.Shadow.String(),
			"refract": false,
		},
		"limits": map[string]interface{}{
			"width":  map[string]int{"min": minSize, "max": maxSize},
			"height": map[string]int{"min": minSize, "max": maxSize},
			"depth":  map[string]int{"min": 1, "max": maxDepthLimit},
		},
	}

	return c.JSON(http.StatusOK, response)
}

// handleConsole returns recent server messages
func (s *Server) handleConsole(c echo.Context) error {
	return c.JSON(http.StatusOK, s.console.Messages())
}

// createScene builds a scene, mapping failures to HTTP errors
func (s *Server) createScene(name string) (*scene.Scene, error) {
	sceneObj, err := scene.Create(name, scene.Options{TextureDir: s.textureDir})
	if errors.Is(err, scene.ErrUnknownScene) {
		return nil, echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return sceneObj, nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseFloatParam parses a float parameter from URL query with validation
func parseFloatParam(values url.Values, key string, defaultValue, min, max float64) (float64, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil || math.IsNaN(parsed) {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %g and %g, got: %g", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseBoolParam parses a boolean parameter from URL query
func parseBoolParam(values url.Values, key string, defaultValue bool) (bool, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			return false, fmt.Errorf("invalid %s: %s", key, value)
		}
		return parsed, nil
	}
	return defaultValue, nil
}
