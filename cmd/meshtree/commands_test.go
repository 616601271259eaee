package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/solarlune/meshtree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cubeOBJ = `v -1 -1 -1
v 1 -1 -1
v -1 1 -1
v 1 1 -1
v -1 -1 1
v 1 -1 1
v -1 1 1
v 1 1 1
f 2 4 8 6
f 1 5 7 3
f 3 7 8 4
f 1 2 6 5
f 5 6 8 7
f 1 3 4 2
`

func writeFile(t *testing.T, dir, name, contents string) string {
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func readPoints(t *testing.T, path string) []meshtree.Vector3 {
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	points, err := meshtree.ReadPoints(f)
	require.NoError(t, err)
	return points
}

func TestStatsCommand(t *testing.T) {
	dir := t.TempDir()
	mesh := writeFile(t, dir, "cube.obj", cubeOBJ)

	assert.NoError(t, newApp().Run([]string{"meshtree", "stats", mesh}))
	assert.Error(t, newApp().Run([]string{"meshtree", "stats"}))
	assert.Error(t, newApp().Run([]string{"meshtree", "stats", filepath.Join(dir, "cube.stl")}))
}

func TestProjectCommand(t *testing.T) {
	dir := t.TempDir()
	mesh := writeFile(t, dir, "cube.obj", cubeOBJ)
	points := writeFile(t, dir, "points.txt", "0 0 0\n5 0 0\n1 0.3 0.2\n")
	out := filepath.Join(dir, "out.txt")

	require.NoError(t, newApp().Run([]string{"meshtree", "project", "--out", out, mesh, points}))

	projected := readPoints(t, out)
	require.Len(t, projected, 3)
	assert.InDelta(t, 1, projected[0].Magnitude(), 1e-4)
	assert.True(t, projected[1].Equals(meshtree.Vector3{X: 1}), projected[1].String())
	assert.True(t, projected[2].Equals(meshtree.Vector3{X: 1, Y: 0.3, Z: 0.2}), projected[2].String())

	// Points outside (or exactly on) the surface are dropped
	require.NoError(t, newApp().Run([]string{"meshtree", "project", "--inside-only", "--out", out, mesh, points}))
	assert.Len(t, readPoints(t, out), 1)

	assert.Error(t, newApp().Run([]string{"meshtree", "project", mesh}))
}

func TestInsideCommand(t *testing.T) {
	dir := t.TempDir()
	mesh := writeFile(t, dir, "cube.obj", cubeOBJ)
	points := writeFile(t, dir, "points.txt", "0 0 0\n5 0 0\n0.5 -0.2 0.1\n")
	out := filepath.Join(dir, "out.txt")

	require.NoError(t, newApp().Run([]string{"meshtree", "inside", "--out", out, mesh, points}))
	inside := readPoints(t, out)
	require.Len(t, inside, 2)
	assert.Equal(t, meshtree.Vector3{}, inside[0])

	require.NoError(t, newApp().Run([]string{"meshtree", "inside", "--bias", "0.3,-0.8,0.45", "--out", out, mesh, points}))
	assert.Len(t, readPoints(t, out), 2)

	err := newApp().Run([]string{"meshtree", "inside", "--bias", "0,0,0", mesh, points})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "bias"))
}
