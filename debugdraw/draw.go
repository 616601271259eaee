// Package debugdraw draws a meshtree.Tree and query results onto an ebiten.Image using a simple orthographic Projection.
// It's meant for visualizing how a Tree partitions a mesh, and for checking query results by eye.
package debugdraw

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/meshtree"
	"golang.org/x/image/font/basicfont"
)

// DrawTreeOptions controls how Drawer.DrawTree draws a Tree.
type DrawTreeOptions struct {
	Depth          int     // The depth of the nodes to draw; leaves shallower than this are drawn too
	ColorByDepth   bool    // Whether to color each box by its node's depth (see DepthColor), rather than using Color
	Color          Color   // The color of the boxes if ColorByDepth is false
	LineThickness  float32 // The thickness of the drawn lines, in pixels
	DrawTriangles  bool    // Whether to draw the outlines of the mesh's triangles under the boxes
	TriangleColor  Color   // The color of the triangle outlines
	HighlightLeaf  bool    // Whether to highlight the leaf for HighlightID
	HighlightID    uint32  // The triangle ID of the leaf to highlight
	HighlightColor Color   // The color of the highlighted leaf's box
}

// DefaultDrawTreeOptions returns the default options for drawing a Tree: the root's children, colored by depth, with thin lines.
func DefaultDrawTreeOptions() DrawTreeOptions {
	return DrawTreeOptions{
		Depth:          1,
		ColorByDepth:   true,
		Color:          NewColor(1, 1, 1, 1),
		LineThickness:  1,
		TriangleColor:  NewColor(0.3, 0.3, 0.3, 1),
		HighlightColor: NewColor(1, 1, 1, 1),
	}
}

// WithDepth returns a copy of the options with the depth set to the value given.
func (opt DrawTreeOptions) WithDepth(depth int) DrawTreeOptions {
	opt.Depth = depth
	return opt
}

// WithHighlight returns a copy of the options highlighting the leaf of the triangle given.
func (opt DrawTreeOptions) WithHighlight(triangleID uint32) DrawTreeOptions {
	opt.HighlightLeaf = true
	opt.HighlightID = triangleID
	return opt
}

// WithTriangles returns a copy of the options with triangle outlines enabled or disabled.
func (opt DrawTreeOptions) WithTriangles(draw bool) DrawTreeOptions {
	opt.DrawTriangles = draw
	return opt
}

// Drawer draws debug views of Trees through a Projection.
type Drawer struct {
	Projection       Projection
	debugTextTexture *ebiten.Image
}

// NewDrawer returns a new Drawer using the Projection given.
func NewDrawer(projection Projection) *Drawer {
	return &Drawer{Projection: projection}
}

// DrawLine draws a line between two world positions.
func (d *Drawer) DrawLine(screen *ebiten.Image, start, end meshtree.Vector3, thickness float32, color Color) {
	x0, y0 := d.Projection.Project(start)
	x1, y1 := d.Projection.Project(end)
	vector.StrokeLine(screen, x0, y0, x1, y1, thickness, color.ToNRGBA64(), false)
}

// DrawPoint draws a filled circle of the given radius (in pixels) at a world position.
func (d *Drawer) DrawPoint(screen *ebiten.Image, point meshtree.Vector3, radius float32, color Color) {
	x, y := d.Projection.Project(point)
	vector.DrawFilledCircle(screen, x, y, radius, color.ToNRGBA64(), true)
}

// DrawBox draws the twelve edges of the axis-aligned box given by min and max.
func (d *Drawer) DrawBox(screen *ebiten.Image, min, max meshtree.Vector3, thickness float32, color Color) {

	ufr := meshtree.Vector3{X: max.X, Y: max.Y, Z: max.Z}
	ufl := meshtree.Vector3{X: min.X, Y: max.Y, Z: max.Z}
	ubr := meshtree.Vector3{X: max.X, Y: max.Y, Z: min.Z}
	ubl := meshtree.Vector3{X: min.X, Y: max.Y, Z: min.Z}

	dfr := meshtree.Vector3{X: max.X, Y: min.Y, Z: max.Z}
	dfl := meshtree.Vector3{X: min.X, Y: min.Y, Z: max.Z}
	dbr := meshtree.Vector3{X: max.X, Y: min.Y, Z: min.Z}
	dbl := meshtree.Vector3{X: min.X, Y: min.Y, Z: min.Z}

	edges := [12][2]meshtree.Vector3{
		{ufr, ufl}, {ufl, ubl}, {ubl, ubr}, {ubr, ufr},
		{dfr, dfl}, {dfl, dbl}, {dbl, dbr}, {dbr, dfr},
		{ufr, dfr}, {ufl, dfl}, {ubl, dbl}, {ubr, dbr},
	}

	for _, edge := range edges {
		d.DrawLine(screen, edge[0], edge[1], thickness, color)
	}

}

// DrawTriangle draws the outline of the triangle (a, b, c).
func (d *Drawer) DrawTriangle(screen *ebiten.Image, a, b, c meshtree.Vector3, thickness float32, color Color) {
	d.DrawLine(screen, a, b, thickness, color)
	d.DrawLine(screen, b, c, thickness, color)
	d.DrawLine(screen, c, a, thickness, color)
}

// DrawTree draws the bounding boxes of the Tree's nodes at the depth given in the options (see Tree.NodesAtDepth).
// The mesh is only used to draw triangle outlines, if the options ask for them.
func DrawTree[I meshtree.Index](d *Drawer, screen *ebiten.Image, tree *meshtree.Tree, mesh meshtree.MeshBuffers[I], options DrawTreeOptions) {

	if options.DrawTriangles {
		for triangleID := 0; triangleID < mesh.TriangleCount(); triangleID++ {
			a, b, c := mesh.Triangle(uint32(triangleID))
			d.DrawTriangle(screen, a, b, c, options.LineThickness, options.TriangleColor)
		}
	}

	for _, nodeID := range tree.NodesAtDepth(options.Depth) {

		node := tree.Nodes[nodeID]

		color := options.Color
		if options.ColorByDepth {
			color = DepthColor(options.Depth)
		}

		d.DrawBox(screen, node.Min, node.Max, options.LineThickness, color)

	}

	if options.HighlightLeaf {
		for _, node := range tree.Nodes {
			if node.IsLeaf && node.TriangleID == options.HighlightID {
				d.DrawBox(screen, node.Min, node.Max, options.LineThickness+1, options.HighlightColor)
				break
			}
		}
	}

}

// textTextureSize returns the size of the texture DrawText renders txt into, with the baseline 13 pixels down; ok is false if the
// text has no extent.
func textTextureSize(txt string) (w, h int, ok bool) {
	size := text.BoundString(basicfont.Face7x13, txt).Size()
	if size.X <= 0 || size.Y <= 0 {
		return 0, 0, false
	}
	return size.X, size.Y + 13, true
}

// DrawText draws the text provided at the screen position given, with a black outline for readability.
func (d *Drawer) DrawText(screen *ebiten.Image, txtStr string, posX, posY, textScale float64, color Color) {

	w, h, ok := textTextureSize(txtStr)
	if !ok {
		return
	}

	if d.debugTextTexture == nil || w > d.debugTextTexture.Bounds().Dx() || h > d.debugTextTexture.Bounds().Dy() {
		d.debugTextTexture = ebiten.NewImage(w, h)
	}

	d.debugTextTexture.Clear()

	opt := &ebiten.DrawImageOptions{}
	opt.GeoM.Translate(0, 13)
	text.DrawWithOptions(d.debugTextTexture, txtStr, basicfont.Face7x13, opt)

	dr := &ebiten.DrawImageOptions{}
	dr.ColorScale.Scale(0, 0, 0, 1)

	for y := -1; y < 2; y++ {

		for x := -1; x < 2; x++ {

			dr.GeoM.Reset()
			dr.GeoM.Translate(posX+float64(x), posY+float64(y))
			dr.GeoM.Scale(textScale, textScale)

			screen.DrawImage(d.debugTextTexture, dr)
		}

	}

	dr.ColorScale.Reset()
	dr.ColorScale.ScaleWithColor(color.ToNRGBA64())

	dr.GeoM.Reset()
	dr.GeoM.Translate(posX, posY)
	dr.GeoM.Scale(textScale, textScale)

	screen.DrawImage(d.debugTextTexture, dr)

}
