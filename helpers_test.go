package meshtree

import "math/rand"

// cubeMesh returns a closed cube centered on the origin with a half-extent of 1, made of 12 outward-facing triangles.
// Vertex i lies at (±1, ±1, ±1), with bit 0 of i selecting +X, bit 1 +Y and bit 2 +Z.
func cubeMesh() MeshBuffers[uint32] {

	vertices := make([]float32, 0, 24)

	for i := 0; i < 8; i++ {
		corner := [3]float32{-1, -1, -1}
		for axis := 0; axis < 3; axis++ {
			if i&(1<<axis) > 0 {
				corner[axis] = 1
			}
		}
		vertices = append(vertices, corner[:]...)
	}

	indices := []uint32{
		1, 3, 7, 1, 7, 5, // +X
		0, 4, 6, 0, 6, 2, // -X
		2, 6, 7, 2, 7, 3, // +Y
		0, 1, 5, 0, 5, 4, // -Y
		4, 5, 7, 4, 7, 6, // +Z
		0, 2, 3, 0, 3, 1, // -Z
	}

	return NewMeshBuffers(vertices, indices)

}

// randomMesh returns a soup of small, randomly placed triangles; the same seed always produces the same mesh.
func randomMesh(seed int64, triangleCount int) MeshBuffers[uint32] {

	r := rand.New(rand.NewSource(seed))

	vertices := make([]float32, 0, triangleCount*9)
	indices := make([]uint32, 0, triangleCount*3)

	for i := 0; i < triangleCount; i++ {

		center := Vector3{r.Float32()*20 - 10, r.Float32()*20 - 10, r.Float32()*20 - 10}

		for corner := 0; corner < 3; corner++ {
			v := center.Add(Vector3{r.Float32() - 0.5, r.Float32() - 0.5, r.Float32() - 0.5})
			vertices = append(vertices, v.X, v.Y, v.Z)
			indices = append(indices, uint32(i*3+corner))
		}

	}

	return NewMeshBuffers(vertices, indices)

}

func randomPoints(seed int64, count int, extent float32) []Vector3 {
	r := rand.New(rand.NewSource(seed))
	points := make([]Vector3, count)
	for i := range points {
		points[i] = Vector3{(r.Float32()*2 - 1) * extent, (r.Float32()*2 - 1) * extent, (r.Float32()*2 - 1) * extent}
	}
	return points
}

func buildCube() (*Tree, MeshBuffers[uint32]) {
	mesh := cubeMesh()
	tree := NewTree()
	BuildTree(tree, mesh, nil)
	return tree, mesh
}
