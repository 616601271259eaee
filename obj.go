package meshtree

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadOBJFile loads the triangles of a Wavefront .obj file from the filepath given. See LoadOBJData for details.
func LoadOBJFile(path string) (*MeshData, error) {

	fileData, err := os.ReadFile(path)

	if err != nil {
		return nil, err
	}

	return LoadOBJData(bytes.NewReader(fileData), path)

}

// LoadOBJData loads the triangles of a Wavefront .obj file from the reader given into a single MeshData with the name provided.
// Only vertex positions ("v") and faces ("f") are read; faces with more than three vertices are triangulated as a fan. Face
// arguments may use any of the "v", "v/vt", "v//vn" or "v/vt/vn" forms, with 1-based or negative (relative) vertex indices.
// Each "o" or "g" statement starts a new source; every triangle's source ID is the index of the object or group it was declared in,
// starting at 0 for faces declared before any object or group.
func LoadOBJData(data io.Reader, name string) (*MeshData, error) {

	mesh := NewMeshData(name)
	vertexCount := 0
	sourceID := uint32(0)
	objectSeen := false

	lineNum := 0
	scanner := bufio.NewScanner(data)

	for scanner.Scan() {

		lineNum++
		lineTokens := strings.Fields(scanner.Text())
		if len(lineTokens) == 0 || strings.HasPrefix(lineTokens[0], "#") {
			continue
		}

		switch lineTokens[0] {
		case "v":
			if len(lineTokens) < 4 {
				return nil, fmt.Errorf("%s:%d: unsupported syntax for 'v'; expected 3 arguments; got %d", name, lineNum, len(lineTokens)-1)
			}
			for tokIdx := 1; tokIdx <= 3; tokIdx++ {
				coord, err := strconv.ParseFloat(lineTokens[tokIdx], 32)
				if err != nil {
					return nil, fmt.Errorf("%s:%d: %w", name, lineNum, err)
				}
				mesh.Vertices = append(mesh.Vertices, float32(coord))
			}
			vertexCount++
		case "o", "g":
			// The first object only claims source 0 if no faces were declared before it
			if objectSeen || len(mesh.Indices) > 0 {
				sourceID++
			}
			objectSeen = true
		case "f":
			if len(lineTokens) < 4 {
				return nil, fmt.Errorf("%s:%d: unsupported syntax for 'f'; expected at least 3 arguments; got %d", name, lineNum, len(lineTokens)-1)
			}
			corners := make([]uint32, 0, len(lineTokens)-1)
			for arg, token := range lineTokens[1:] {
				index, err := selectFaceVertexIndex(token, vertexCount)
				if err != nil {
					return nil, fmt.Errorf("%s:%d: could not parse vertex index for face argument %d: %w", name, lineNum, arg, err)
				}
				corners = append(corners, index)
			}
			for i := 1; i < len(corners)-1; i++ {
				mesh.Indices = append(mesh.Indices, corners[0], corners[i], corners[i+1])
				mesh.SourceIDs = append(mesh.SourceIDs, sourceID)
			}
		}

	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return mesh, nil

}

func selectFaceVertexIndex(token string, vertexCount int) (uint32, error) {

	// Only the vertex index matters; texture coordinate and normal indices are ignored
	vertexToken, _, _ := strings.Cut(token, "/")

	index, err := strconv.ParseInt(vertexToken, 10, 32)
	if err != nil {
		return 0, err
	}

	offset := int(index - 1)
	if index < 0 {
		offset = vertexCount + int(index)
	}

	if offset < 0 || offset >= vertexCount {
		return 0, fmt.Errorf("index %d out of bounds", index)
	}

	return uint32(offset), nil

}

// ReadPoints reads a list of points from the reader given, one point per line as three whitespace-separated numbers ("x y z").
// Blank lines and lines starting with '#' are skipped.
func ReadPoints(data io.Reader) ([]Vector3, error) {

	points := []Vector3{}

	lineNum := 0
	scanner := bufio.NewScanner(data)

	for scanner.Scan() {

		lineNum++
		lineTokens := strings.Fields(scanner.Text())
		if len(lineTokens) == 0 || strings.HasPrefix(lineTokens[0], "#") {
			continue
		}

		if len(lineTokens) != 3 {
			return nil, fmt.Errorf("line %d: expected 3 coordinates; got %d", lineNum, len(lineTokens))
		}

		var coords [3]float32
		for i, token := range lineTokens {
			coord, err := strconv.ParseFloat(token, 32)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNum, err)
			}
			coords[i] = float32(coord)
		}

		points = append(points, Vector3{coords[0], coords[1], coords[2]})

	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return points, nil

}

// WritePoints writes the points given to the writer, one point per line, in the format read by ReadPoints.
func WritePoints(w io.Writer, points []Vector3) error {

	buffered := bufio.NewWriter(w)

	for _, p := range points {
		if _, err := fmt.Fprintf(buffered, "%f %f %f\n", p.X, p.Y, p.Z); err != nil {
			return err
		}
	}

	return buffered.Flush()

}
