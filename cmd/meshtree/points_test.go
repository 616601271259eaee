package main

import (
	"testing"

	"github.com/solarlune/meshtree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVector(t *testing.T) {
	v, err := parseVector("1, -2.5,3")
	require.NoError(t, err)
	assert.Equal(t, meshtree.NewVector3(1, -2.5, 3), v)

	_, err = parseVector("1,2")
	assert.Error(t, err)

	_, err = parseVector("1,a,2")
	assert.Error(t, err)
}

func TestStatsTable(t *testing.T) {
	mesh := meshtree.NewMeshData("tri")
	mesh.AddTriangles([]float32{0, 0, 0, 1, 0, 0, 0, 1, 0}, []uint32{0, 1, 2}, 0)

	tree := meshtree.NewMeshTree(mesh)
	table := statsTable(mesh, tree.Tree.Stats(), 0)

	assert.Contains(t, table, "Triangles")
	assert.Contains(t, table, "tri")
	assert.Contains(t, table, "Leaves")
}
