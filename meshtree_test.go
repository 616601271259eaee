package meshtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cubeMeshData() *MeshData {
	cube := cubeMesh()
	md := NewMeshData("cube")
	for face := 0; face < 6; face++ {
		// Each face is its own source
		md.AddTriangles(cube.Vertices, cube.Indices[face*6:face*6+6], uint32(face))
	}
	return md
}

func TestRayTestSorted(t *testing.T) {

	tree, mesh := buildCube()

	hits := RayTest(tree, Vector3{0, 0, -5}, Vector3{0.05, 0.1, 1}, mesh, nil, nil)
	require.Len(t, hits, 2)

	assert.InDelta(t, 4, hits[0].T, 1e-4)
	assert.InDelta(t, 6, hits[1].T, 1e-4)
	assert.True(t, hits[0].Position.Equals(Vector3{0.2, 0.4, -1}), hits[0].Position.String())
	assert.True(t, hits[0].Normal.Equals(Vector3{0, 0, -1}), hits[0].Normal.String())
	assert.True(t, hits[1].Normal.Equals(Vector3{0, 0, 1}), hits[1].Normal.String())

	// Existing hits are kept, and only the new ones are sorted
	more := RayTest(tree, Vector3{0, 0, 5}, Vector3{0.05, 0.1, -1}, mesh, hits, nil)
	require.Len(t, more, 4)
	assert.InDelta(t, 4, more[2].T, 1e-4)
	assert.InDelta(t, 6, more[3].T, 1e-4)

}

func TestMeshTree(t *testing.T) {

	md := cubeMeshData()
	require.Equal(t, 12, md.TriangleCount())
	require.Equal(t, 48, md.VertexCount())

	mt := NewMeshTree(md)

	assert.True(t, mt.PointInside(Vector3{}))
	assert.False(t, mt.PointInside(Vector3{3, 0, 0}))

	hit := mt.ClosestPoint(Vector3{5, 0, 0})
	assert.InDelta(t, 16, hit.DistanceSquared, 1e-4)
	assert.Equal(t, uint32(0), hit.SourceID) // The +X face

	hit, inside := mt.ClosestPointInside(Vector3{0, 0, -0.75})
	assert.True(t, inside)
	assert.Equal(t, uint32(5), hit.SourceID) // The -Z face

	visible := mt.SourcesInFrustum(FrustumFromBox(Vector3{0.5, -2, -2}, Vector3{2, 2, 2}))
	require.Len(t, visible, 6)
	assert.True(t, visible[0])
	assert.False(t, visible[1]) // The -X face lies entirely outside

}

func TestMeshTreeRayTest(t *testing.T) {

	mt := NewMeshTree(cubeMeshData())

	from := Vector3{0, 0, -5}
	to := from.Add(Vector3{0.05, 0.1, 1}.Scale(5))

	count := 0
	options := RayTestOptions{From: from, To: to}.WithOnHit(func(hit RayHit, index, hitCount int) bool {
		count = hitCount
		return true
	})

	hit := mt.RayTest(options)
	require.NotNil(t, hit)
	assert.Equal(t, 1, count) // The +Z face is beyond To
	assert.Equal(t, uint32(5), hit.SourceID)
	assert.InDelta(t, 0.8, hit.T, 1e-4)

	assert.Nil(t, mt.RayTest(RayTestOptions{From: Vector3{5, 5, 5}, To: Vector3{6, 6, 6}}))

	// Returning false from OnHit stops the iteration
	calls := 0
	mt.RayTest(RayTestOptions{From: Vector3{0, 0, -5}, To: Vector3{0.5, 1, 5}}.WithOnHit(func(hit RayHit, index, hitCount int) bool {
		calls++
		return false
	}))
	assert.Equal(t, 1, calls)

}

func TestMeshTreeRebuild(t *testing.T) {

	md := NewMeshData("grow")
	mt := NewMeshTree(md)
	assert.True(t, mt.Tree.Empty())
	assert.False(t, mt.ClosestPoint(Vector3{}).Found)

	md.AddTriangles([]float32{0, 0, 0, 1, 0, 0, 0, 1, 0}, []uint32{0, 1, 2}, 7)
	mt.Rebuild()

	hit := mt.ClosestPoint(Vector3{0.25, 0.25, 1})
	assert.True(t, hit.Found)
	assert.Equal(t, uint32(7), hit.SourceID)

}
