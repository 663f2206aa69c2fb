package main

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/arruler/pkg/geometry"
	"github.com/philipparndt/arruler/pkg/stl"
)

// worldMesh uploads the world as a mesh with lighting baked into vertex colors
func worldMesh(model *stl.Model) rl.Mesh {
	vertexCount := len(model.Triangles) * 3
	mesh := rl.Mesh{
		VertexCount:   int32(vertexCount),
		TriangleCount: int32(len(model.Triangles)),
	}

	vertices := make([]float32, 0, vertexCount*3)
	normals := make([]float32, 0, vertexCount*3)
	colors := make([]uint8, 0, vertexCount*4)

	lightDir := geometry.NewVector3(-0.5, -1.0, -0.5).Normalize()

	for _, triangle := range model.Triangles {
		normal := triangle.CalculateNormal()
		// Floors are lit from either side
		intensity := math.Max(0.3, math.Abs(normal.Dot(lightDir)))
		shade := uint8(200 * intensity)

		nx, ny, nz := normal.Float32()
		for _, v := range [3]geometry.Vector3{triangle.V1, triangle.V2, triangle.V3} {
			x, y, z := v.Float32()
			vertices = append(vertices, x, y, z)
			normals = append(normals, nx, ny, nz)
			colors = append(colors, shade, shade, shade, 255)
		}
	}

	if vertexCount > 0 {
		mesh.Vertices = &vertices[0]
		mesh.Normals = &normals[0]
		mesh.Colors = &colors[0]
	}

	rl.UploadMesh(&mesh, false)
	return mesh
}
