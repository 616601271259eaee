package meshtree

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

const ErrorUnsupportedMeshFormat = "error: unsupported mesh file format"

// ErrUnsupportedMeshFormat is returned (wrapped) by LoadMeshFile for files it has no loader for; match it with errors.Is.
var ErrUnsupportedMeshFormat = errors.New(ErrorUnsupportedMeshFormat)

// MeshData is a triangle mesh as loaded from a file: a flat buffer of vertex positions, an index buffer with three indices per triangle,
// and a source ID for each triangle (for loaded files, the index of the primitive or object the triangle came from).
type MeshData struct {
	Name      string
	Vertices  []float32 // Vertex positions, three floats per vertex
	Indices   []uint32  // Vertex indices, three per triangle
	SourceIDs []uint32  // Source IDs, one per triangle
}

// NewMeshData creates a new, empty MeshData with the given name.
func NewMeshData(name string) *MeshData {
	return &MeshData{
		Name:      name,
		Vertices:  []float32{},
		Indices:   []uint32{},
		SourceIDs: []uint32{},
	}
}

// AddTriangles appends the vertices and triangles given to the MeshData. The indices are relative to the vertices passed in, and are
// offset as necessary. Each new triangle is assigned the sourceID provided.
// AddTriangles will panic if the number of vertex components isn't divisible by 3, or if the number of indices isn't divisible by 3.
func (md *MeshData) AddTriangles(vertices []float32, indices []uint32, sourceID uint32) {

	if len(vertices)%3 != 0 || len(indices)%3 != 0 {
		panic("Error: MeshData.AddTriangles() has not been given a correct number of vertex components or indices (both need to be divisible by 3).")
	}

	offset := uint32(len(md.Vertices) / 3)

	md.Vertices = append(md.Vertices, vertices...)

	for _, index := range indices {
		md.Indices = append(md.Indices, index+offset)
	}

	for i := 0; i < len(indices)/3; i++ {
		md.SourceIDs = append(md.SourceIDs, sourceID)
	}

}

// Buffers returns the MeshData's vertex and index buffers, ready for building a Tree or querying one.
func (md *MeshData) Buffers() MeshBuffers[uint32] {
	return NewMeshBuffers(md.Vertices, md.Indices)
}

// VertexCount returns the number of vertices in the MeshData.
func (md *MeshData) VertexCount() int {
	return len(md.Vertices) / 3
}

// TriangleCount returns the number of triangles in the MeshData.
func (md *MeshData) TriangleCount() int {
	return len(md.Indices) / 3
}

// Library represents a collection of MeshData, as loaded from a file (.gltf / .glb or .obj).
type Library struct {
	Meshes map[string]*MeshData // A Map of MeshData to their names
	Order  []string             // The names of the meshes, in the order they were loaded
}

// NewLibrary creates a new Library.
func NewLibrary() *Library {
	return &Library{
		Meshes: map[string]*MeshData{},
		Order:  []string{},
	}
}

// AddMesh adds the MeshData to the Library, replacing any previously added MeshData of the same name.
func (lib *Library) AddMesh(mesh *MeshData) {
	if _, exists := lib.Meshes[mesh.Name]; !exists {
		lib.Order = append(lib.Order, mesh.Name)
	}
	lib.Meshes[mesh.Name] = mesh
}

// FindMesh returns the MeshData with the provided name. If a mesh with the given name isn't found, FindMesh will return nil.
func (lib *Library) FindMesh(name string) *MeshData {
	return lib.Meshes[name]
}

// Merged returns a single MeshData combining every mesh in the Library, in load order. Each mesh keeps its own source IDs, offset past
// the highest source ID of the meshes merged before it, so sources stay distinct across meshes. Triangles without a source ID are
// assigned source 0 of their mesh.
func (lib *Library) Merged(name string) *MeshData {

	merged := NewMeshData(name)
	sourceOffset := uint32(0)

	for _, meshName := range lib.Order {

		mesh := lib.Meshes[meshName]
		vertexOffset := uint32(merged.VertexCount())

		merged.Vertices = append(merged.Vertices, mesh.Vertices...)

		for _, index := range mesh.Indices {
			merged.Indices = append(merged.Indices, index+vertexOffset)
		}

		sourceCount := uint32(1)

		for triangleID := 0; triangleID < mesh.TriangleCount(); triangleID++ {
			sourceID := uint32(0)
			if triangleID < len(mesh.SourceIDs) {
				sourceID = mesh.SourceIDs[triangleID]
			}
			merged.SourceIDs = append(merged.SourceIDs, sourceID+sourceOffset)
			if sourceID+1 > sourceCount {
				sourceCount = sourceID + 1
			}
		}

		sourceOffset += sourceCount

	}

	return merged

}

// LoadMeshFile loads the mesh file at the path given, choosing the loader from the file's extension (.gltf, .glb, or .obj).
// For glTF files, every mesh in the document is merged into a single MeshData, keeping per-primitive sources (see Library.Merged).
func LoadMeshFile(path string) (*MeshData, error) {

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	switch strings.ToLower(filepath.Ext(path)) {

	case ".gltf", ".glb":
		lib, err := LoadGLTFFile(path, nil)
		if err != nil {
			return nil, err
		}
		return lib.Merged(name), nil

	case ".obj":
		return LoadOBJFile(path)

	}

	return nil, fmt.Errorf("%w (%s)", ErrUnsupportedMeshFormat, path)

}
