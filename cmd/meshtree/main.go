package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err.Error())
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "meshtree"
	app.Usage = "build bounding volume hierarchies over triangle meshes and query them"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "stats",
			Usage:     "build a tree over a mesh and display its statistics",
			ArgsUsage: "mesh_file.(obj|gltf|glb)",
			Action:    ShowStats,
		},
		{
			Name:  "project",
			Usage: "project points onto the closest point of a mesh's surface",
			Description: `
Read a list of points (one "x y z" triple per line) and replace each one with the
closest point on the surface of the mesh. With --inside-only, points lying outside
the mesh are dropped instead of projected.`,
			ArgsUsage: "mesh_file.(obj|gltf|glb) points_file",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "inside-only",
					Usage: "only keep points lying inside the mesh",
				},
				cli.StringFlag{
					Name:  "out, o",
					Usage: "write the projected points to this file instead of stdout",
				},
			},
			Action: ProjectPoints,
		},
		{
			Name:  "inside",
			Usage: "output the points lying inside a closed mesh",
			Description: `
Read a list of points (one "x y z" triple per line) and output the ones lying inside
the mesh, using a ray cast along the bias direction for each point.`,
			ArgsUsage: "mesh_file.(obj|gltf|glb) points_file",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "bias",
					Usage: "the direction of the containment rays, as x,y,z",
				},
				cli.StringFlag{
					Name:  "out, o",
					Usage: "write the inside points to this file instead of stdout",
				},
			},
			Action: InsidePoints,
		},
	}

	return app
}
