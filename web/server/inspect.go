package server

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adrianap0607/Diorama/pkg/core"
	"github.com/adrianap0607/Diorama/pkg/geometry"
	"github.com/adrianap0607/Diorama/pkg/material"
	"github.com/adrianap0607/Diorama/pkg/renderer"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	GeometryType string                 `json:"geometryType"`
	Index        int                    `json:"index"`
	Point        [3]float32             `json:"point"`
	Normal       [3]float32             `json:"normal"`
	Distance     float32                `json:"distance"`
	Properties   map[string]interface{} `json:"properties"`
}

// extractMaterialInfo describes the shading parameters at a hit
func extractMaterialInfo(mat material.Material) map[string]interface{} {
	rgba := renderer.ToRGBA(mat.Diffuse)
	return map[string]interface{}{
		"diffuse":          vecArray(mat.Diffuse),
		"color":            fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B),
		"albedo":           mat.Albedo,
		"specularExponent": mat.SpecularExponent,
		"refractiveIndex":  mat.RefractiveIndex,
		"alpha":            mat.Alpha,
		"opaque":           mat.IsOpaque(),
	}
}

func vecArray(v core.Vec3) [3]float32 {
	return [3]float32{v[0], v[1], v[2]}
}

// handleInspect reports what the primary ray through pixel (x, y) hits
func (s *Server) handleInspect(c echo.Context) error {
	req, err := s.parseRenderRequest(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	query := c.QueryParams()
	x, err := parseIntParam(query, "x", -1, 0, req.Width-1)
	if err == nil && x < 0 {
		err = fmt.Errorf("missing x")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	y, err := parseIntParam(query, "y", -1, 0, req.Height-1)
	if err == nil && y < 0 {
		err = fmt.Errorf("missing y")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sceneObj, err := s.createScene(req.Scene)
	if err != nil {
		return err
	}
	camera := sceneObj.GetCamera()
	if req.Yaw != 0 || req.Pitch != 0 {
		camera.Orbit(float32(req.Yaw), float32(req.Pitch))
	}

	ray := camera.GetRay(x, y, req.Width, req.Height, renderer.DefaultFOV)
	hit, index := geometry.NearestHit(sceneObj.GetObjects(), ray.Origin, ray.Direction)

	response := InspectResponse{Index: index}
	if index >= 0 {
		// Distance stays zero on a miss; JSON cannot carry +Inf
		response.Hit = true
		response.GeometryType = sceneObj.Objects[index].Kind.String()
		response.Point = vecArray(hit.Point)
		response.Normal = vecArray(hit.Normal)
		response.Distance = hit.Distance
		response.Properties = extractMaterialInfo(hit.Material)
	}

	return c.JSON(http.StatusOK, response)
}
