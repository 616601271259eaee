package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/solarlune/meshtree"
	"github.com/urfave/cli"
)

// ProjectPoints replaces each point of a points file with the closest point on a mesh's surface.
func ProjectPoints(ctx *cli.Context) error {
	setupLogging(ctx)

	mesh, points, err := loadMeshAndPoints(ctx)
	if err != nil {
		return err
	}

	tree, _ := buildTree(mesh)

	insideOnly := ctx.Bool("inside-only")
	projected := make([]meshtree.Vector3, 0, len(points))

	for _, point := range points {
		hit, inside := tree.ClosestPointInside(point)
		if !hit.Found {
			continue
		}
		if insideOnly && !inside {
			logger.Debugf("dropping %s; it lies outside the mesh", point)
			continue
		}
		projected = append(projected, hit.Position)
	}

	logger.Infof("projected %d of %d points", len(projected), len(points))

	return writeOutput(ctx.String("out"), projected)
}

// InsidePoints outputs the points of a points file that lie inside a closed mesh.
func InsidePoints(ctx *cli.Context) error {
	setupLogging(ctx)

	mesh, points, err := loadMeshAndPoints(ctx)
	if err != nil {
		return err
	}

	tree, _ := buildTree(mesh)

	if bias := ctx.String("bias"); bias != "" {
		if tree.BiasDirection, err = parseVector(bias); err != nil {
			return fmt.Errorf("invalid bias direction: %w", err)
		}
		if tree.BiasDirection.IsZero() {
			return errors.New("invalid bias direction: it must not be zero")
		}
	}

	inside := make([]meshtree.Vector3, 0, len(points))

	for _, point := range points {
		if tree.PointInside(point) {
			inside = append(inside, point)
		}
	}

	logger.Infof("%d of %d points lie inside the mesh", len(inside), len(points))

	return writeOutput(ctx.String("out"), inside)
}

func loadMeshAndPoints(ctx *cli.Context) (*meshtree.MeshData, []meshtree.Vector3, error) {
	if ctx.NArg() != 2 {
		return nil, nil, errors.New("expected a mesh file and a points file argument")
	}

	mesh, err := meshtree.LoadMeshFile(ctx.Args().Get(0))
	if err != nil {
		return nil, nil, err
	}

	f, err := os.Open(ctx.Args().Get(1))
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	points, err := meshtree.ReadPoints(f)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ctx.Args().Get(1), err)
	}

	logger.Debugf("read %d points", len(points))

	return mesh, points, nil
}

func writeOutput(path string, points []meshtree.Vector3) error {
	var out io.Writer = os.Stdout

	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	return meshtree.WritePoints(out, points)
}

// parseVector parses a vector given as "x,y,z".
func parseVector(s string) (meshtree.Vector3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return meshtree.Vector3{}, fmt.Errorf("expected 3 comma-separated components; got %d", len(parts))
	}

	var components [3]float32
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 32)
		if err != nil {
			return meshtree.Vector3{}, err
		}
		components[i] = float32(f)
	}

	return meshtree.NewVector3(components[0], components[1], components[2]), nil
}
