package main

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/solarlune/meshtree"
	"github.com/urfave/cli"
)

// ShowStats builds a tree over the mesh given and displays its statistics.
func ShowStats(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 1 {
		return errors.New("missing mesh file argument")
	}

	mesh, err := meshtree.LoadMeshFile(ctx.Args().First())
	if err != nil {
		return err
	}

	tree, buildTime := buildTree(mesh)

	logger.Noticef("tree statistics\n%s", statsTable(mesh, tree.Tree.Stats(), buildTime))

	return nil
}

func buildTree(mesh *meshtree.MeshData) (*meshtree.MeshTree, time.Duration) {
	logger.Infof("building tree over %d triangles (%d vertices)", mesh.TriangleCount(), mesh.VertexCount())
	start := time.Now()
	tree := meshtree.NewMeshTree(mesh)
	buildTime := time.Since(start)
	logger.Debugf("tree built in %s", buildTime)
	return tree, buildTime
}

func statsTable(mesh *meshtree.MeshData, stats meshtree.TreeStats, buildTime time.Duration) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Statistic", "Value"})
	table.Append([]string{"Mesh", mesh.Name})
	table.Append([]string{"Vertices", fmt.Sprintf("%d", mesh.VertexCount())})
	table.Append([]string{"Triangles", fmt.Sprintf("%d", mesh.TriangleCount())})
	table.Append([]string{"Nodes", fmt.Sprintf("%d", stats.NodeCount)})
	table.Append([]string{"Leaves", fmt.Sprintf("%d", stats.LeafCount)})
	table.Append([]string{"Max depth", fmt.Sprintf("%d", stats.MaxDepth)})
	table.Append([]string{"Avg. leaf depth", fmt.Sprintf("%.2f", stats.AverageLeafDepth)})
	table.Append([]string{"Bounds min", stats.Min.String()})
	table.Append([]string{"Bounds max", stats.Max.String()})
	table.SetFooter([]string{"Build time", buildTime.String()})
	table.Render()
	return buf.String()
}
