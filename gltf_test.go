package meshtree

import (
	"bytes"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// encodeGLB builds a binary glTF document holding a cube mesh (one primitive per pair of faces) plus a mesh made of lines.
func encodeGLB(t *testing.T) []byte {

	cube := cubeMesh()

	positions := make([][3]float32, 0, 8)
	for i := 0; i < len(cube.Vertices); i += 3 {
		positions = append(positions, [3]float32{cube.Vertices[i], cube.Vertices[i+1], cube.Vertices[i+2]})
	}

	doc := gltf.NewDocument()

	box := &gltf.Mesh{Name: "Cube"}

	for pair := 0; pair < 3; pair++ {
		indices := make([]uint16, 0, 12)
		for _, index := range cube.Indices[pair*12 : pair*12+12] {
			indices = append(indices, uint16(index))
		}
		box.Primitives = append(box.Primitives, &gltf.Primitive{
			Attributes: gltf.PrimitiveAttributes{gltf.POSITION: modeler.WritePosition(doc, positions)},
			Indices:    gltf.Index(modeler.WriteIndices(doc, indices)),
		})
	}

	lineMesh := &gltf.Mesh{
		Name: "Lines",
		Primitives: []*gltf.Primitive{
			{
				Mode:       gltf.PrimitiveLines,
				Attributes: gltf.PrimitiveAttributes{gltf.POSITION: modeler.WritePosition(doc, positions[:2])},
			},
		},
	}

	doc.Meshes = append(doc.Meshes, box, lineMesh)

	buf := &bytes.Buffer{}
	encoder := gltf.NewEncoder(buf)
	encoder.AsBinary = true
	require.NoError(t, encoder.Encode(doc))

	return buf.Bytes()

}

func TestLoadGLTFData(t *testing.T) {

	library, err := LoadGLTFData(bytes.NewReader(encodeGLB(t)), nil)
	require.NoError(t, err)

	// The line mesh has no triangles, so it isn't loaded
	assert.Equal(t, []string{"Cube"}, library.Order)
	assert.Nil(t, library.FindMesh("Lines"))

	cube := library.FindMesh("Cube")
	require.NotNil(t, cube)
	assert.Equal(t, 12, cube.TriangleCount())
	assert.Equal(t, 24, cube.VertexCount())

	// Source IDs follow the primitives, two faces each
	for triangleID, sourceID := range cube.SourceIDs {
		assert.Equal(t, uint32(triangleID/4), sourceID)
	}

	mt := NewMeshTree(cube)
	assert.True(t, mt.PointInside(Vector3{}))
	assert.InDelta(t, 16, mt.ClosestPoint(Vector3{5, 0, 0}).DistanceSquared, 1e-4)

}

func TestLoadGLTFDataOptions(t *testing.T) {

	data := encodeGLB(t)

	options := DefaultGLTFLoadOptions()
	options.SourcePerPrimitive = false

	library, err := LoadGLTFData(bytes.NewReader(data), options)
	require.NoError(t, err)
	for _, sourceID := range library.FindMesh("Cube").SourceIDs {
		assert.Equal(t, uint32(0), sourceID)
	}

	// Filtering out every triangle mesh leaves nothing to load
	_, err = LoadGLTFData(bytes.NewReader(data), DefaultGLTFLoadOptions().WithMeshFilter(func(name string) bool { return name != "Cube" }))
	require.Error(t, err)
	assert.Equal(t, ErrorGLTFNoMeshes, err.Error())

}

func TestLoadGLTFDataInvalid(t *testing.T) {
	_, err := LoadGLTFData(bytes.NewReader([]byte("not a gltf file")), nil)
	assert.Error(t, err)
}
