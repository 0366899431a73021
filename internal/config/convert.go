package config

import (
	"strings"

	"github.com/danmuck/meshghost/internal/meshapi"
	"github.com/danmuck/meshghost/internal/meshmem"
)

// ResolveGeometry builds the Geometry collaborator named by cfg.Geometry.
// Any name other than "cylinder" (validated config allows only "planar")
// yields PlanarGeometry.
func ResolveGeometry(cfg RunConfig) meshapi.Geometry {
	switch strings.ToLower(strings.TrimSpace(cfg.Geometry)) {
	case "cylinder":
		return meshmem.CylinderGeometry{Radius: cfg.CylinderRadius}
	default:
		return meshmem.PlanarGeometry{}
	}
}
