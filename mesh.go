package meshtree

// Index is the set of integer types an index buffer may be made of.
type Index interface {
	~uint16 | ~uint32
}

// MeshBuffers wraps the raw, caller-owned buffers of a triangle mesh.
// Vertices is a flat buffer of position triples (x0, y0, z0, x1, y1, z1, ...), and Indices holds one vertex index per triangle corner,
// three per triangle. Neither buffer is copied or modified by anything in this package; they must stay unchanged for as long as a Tree
// built from them is queried.
type MeshBuffers[I Index] struct {
	Vertices []float32
	Indices  []I
}

// NewMeshBuffers returns a MeshBuffers wrapping the provided vertex and index buffers.
func NewMeshBuffers[I Index](vertices []float32, indices []I) MeshBuffers[I] {
	return MeshBuffers[I]{Vertices: vertices, Indices: indices}
}

// TriangleCount returns the number of triangles described by the index buffer.
func (mesh MeshBuffers[I]) TriangleCount() int {
	return len(mesh.Indices) / 3
}

// Triangle returns the three vertex positions of the triangle with the given ID.
func (mesh MeshBuffers[I]) Triangle(triangleID uint32) (a, b, c Vector3) {
	i := triangleID * 3
	a = NewVector3FromBuffer(mesh.Vertices, uint32(mesh.Indices[i]))
	b = NewVector3FromBuffer(mesh.Vertices, uint32(mesh.Indices[i+1]))
	c = NewVector3FromBuffer(mesh.Vertices, uint32(mesh.Indices[i+2]))
	return
}

// Triangle is the build-time description of a single triangle of the mesh: its bounding box, and the center of that box.
// Note that Center is the midpoint of the triangle's bounding box, not the triangle's centroid; the split heuristic relies on this.
type Triangle struct {
	Min              Vector3 // The minimum corner of the triangle's bounding box
	Max              Vector3 // The maximum corner of the triangle's bounding box
	Center           Vector3 // The midpoint of the triangle's bounding box
	FirstVertexIndex uint32  // The offset of the triangle's first index in the index buffer
	SourceID         uint32  // The source object the triangle belongs to
}

// extractTriangles fills the scratch triangle pool with one Triangle per index triple of the mesh.
// If sourceIDs is nil, each triangle's SourceID is its own triangle ID.
func extractTriangles[I Index](mesh MeshBuffers[I], sourceIDs []uint32, scratch *Scratch) []Triangle {

	triangleCount := mesh.TriangleCount()

	triangles := scratch.triangles[:0]

	for triangleID := 0; triangleID < triangleCount; triangleID++ {

		a, b, c := mesh.Triangle(uint32(triangleID))

		tri := Triangle{
			Min:              a.Min(b).Min(c),
			Max:              a.Max(b).Max(c),
			FirstVertexIndex: uint32(triangleID * 3),
			SourceID:         uint32(triangleID),
		}
		tri.Center = tri.Max.Add(tri.Min).Scale(0.5)

		if sourceIDs != nil {
			tri.SourceID = sourceIDs[triangleID]
		}

		triangles = append(triangles, tri)

	}

	scratch.triangles = triangles

	return triangles

}
