package meshtree

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

const ErrorGLTFNoMeshes = "error: glTF document contains no triangle meshes"

// GLTFLoadOptions controls how meshes are read out of a glTF document.
type GLTFLoadOptions struct {
	// If SourcePerPrimitive is true, each triangle's source ID is the index of the primitive it came from within its mesh.
	// Otherwise, every triangle of a mesh is assigned source ID 0.
	SourcePerPrimitive bool

	// MeshFilter, if set, is called with the name of each mesh in the document; only meshes for which it returns true are loaded.
	MeshFilter func(meshName string) bool
}

// DefaultGLTFLoadOptions creates an instance of GLTFLoadOptions with some sensible defaults.
func DefaultGLTFLoadOptions() *GLTFLoadOptions {
	return &GLTFLoadOptions{
		SourcePerPrimitive: true,
	}
}

// WithMeshFilter returns a copy of the GLTFLoadOptions that only loads meshes for which the filter returns true.
func (options GLTFLoadOptions) WithMeshFilter(filter func(meshName string) bool) *GLTFLoadOptions {
	options.MeshFilter = filter
	return &options
}

// LoadGLTFFile loads a .gltf or .glb file from the filepath given, using a provided GLTFLoadOptions struct to alter how the file is loaded.
// Passing nil for loadOptions will load the file using default load options.
// LoadGLTFFile will return a Library, and an error if the process fails.
func LoadGLTFFile(path string, loadOptions *GLTFLoadOptions) (*Library, error) {

	fileData, err := os.ReadFile(path)

	if err != nil {
		return nil, err
	}

	return LoadGLTFData(bytes.NewReader(fileData), loadOptions)

}

// LoadGLTFData loads a .gltf or .glb file from the reader given, using a provided GLTFLoadOptions struct to alter how the file is loaded.
// Passing nil for loadOptions will load the file using default load options. Only the POSITION attribute and indices of each triangle
// primitive are read; all primitives of a glTF mesh are merged into a single MeshData, named after the mesh. Meshes without a name are
// named "mesh<index>". Node transforms are not applied.
// LoadGLTFData will return a Library, and an error if the process fails.
func LoadGLTFData(data io.Reader, gltfLoadOptions *GLTFLoadOptions) (*Library, error) {

	decoder := gltf.NewDecoder(data)

	doc := gltf.NewDocument()

	err := decoder.Decode(doc)

	if err != nil {
		return nil, err
	}

	if gltfLoadOptions == nil {
		gltfLoadOptions = DefaultGLTFLoadOptions()
	}

	library := NewLibrary()

	for meshIndex, mesh := range doc.Meshes {

		name := mesh.Name
		if name == "" {
			name = fmt.Sprintf("mesh%d", meshIndex)
		}

		if gltfLoadOptions.MeshFilter != nil && !gltfLoadOptions.MeshFilter(name) {
			continue
		}

		newMesh := NewMeshData(name)

		for primitiveIndex, v := range mesh.Primitives {

			if v.Mode != gltf.PrimitiveTriangles {
				log.Printf("Warning: primitive %d of mesh %s isn't made of triangles and will be skipped.\n", primitiveIndex, name)
				continue
			}

			positionAccessor, positionExists := v.Attributes[gltf.POSITION]
			if !positionExists {
				log.Printf("Warning: primitive %d of mesh %s has no POSITION attribute and will be skipped.\n", primitiveIndex, name)
				continue
			}

			posBuffer := [][3]float32{}
			vertPos, err := modeler.ReadPosition(doc, doc.Accessors[positionAccessor], posBuffer)

			if err != nil {
				return nil, fmt.Errorf("reading positions of mesh %s: %w", name, err)
			}

			vertices := make([]float32, 0, len(vertPos)*3)
			for _, v := range vertPos {
				vertices = append(vertices, v[0], v[1], v[2])
			}

			var indices []uint32

			if v.Indices != nil {

				indexBuffer := []uint32{}

				indices, err = modeler.ReadIndices(doc, doc.Accessors[*v.Indices], indexBuffer)

				if err != nil {
					return nil, fmt.Errorf("reading indices of mesh %s: %w", name, err)
				}

			} else {

				// Non-indexed primitives list their vertices in triangle order
				indices = make([]uint32, len(vertPos))
				for i := range indices {
					indices[i] = uint32(i)
				}

			}

			if len(indices)%3 != 0 {
				log.Printf("Warning: primitive %d of mesh %s has an index count not divisible by 3 and will be skipped.\n", primitiveIndex, name)
				continue
			}

			sourceID := uint32(0)
			if gltfLoadOptions.SourcePerPrimitive {
				sourceID = uint32(primitiveIndex)
			}

			newMesh.AddTriangles(vertices, indices, sourceID)

		}

		if newMesh.TriangleCount() > 0 {
			library.AddMesh(newMesh)
		}

	}

	if len(library.Order) == 0 {
		return nil, errors.New(ErrorGLTFNoMeshes)
	}

	return library, nil

}
