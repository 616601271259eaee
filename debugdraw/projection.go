package debugdraw

import (
	"github.com/solarlune/meshtree"
	"github.com/solarlune/meshtree/math32"
)

// ViewPlane indicates which pair of world axes a Projection maps onto the screen.
type ViewPlane int

const (
	ViewXY ViewPlane = iota // Looking down the Z axis; X goes right, Y goes up
	ViewXZ                  // Looking down the Y axis; X goes right, Z goes down
	ViewZY                  // Looking down the X axis; Z goes right, Y goes up
)

// Projection is a simple orthographic projection from world space to screen pixels.
type Projection struct {
	Plane   ViewPlane
	Scale   float32 // How many pixels a world unit spans
	OffsetX float32 // The screen position of the world origin
	OffsetY float32
}

// NewProjection returns a Projection that fits the box given by min and max into a screen of the given size, leaving a small margin.
func NewProjection(plane ViewPlane, min, max meshtree.Vector3, screenWidth, screenHeight int) Projection {

	p := Projection{Plane: plane}

	// Project the box's extents with a unit scale to find its on-screen size
	p.Scale = 1
	x0, y0 := p.Project(min)
	x1, y1 := p.Project(max)

	w := math32.Abs(x1 - x0)
	h := math32.Abs(y1 - y0)

	margin := float32(0.8)

	scaleX := float32(screenWidth) * margin / w
	scaleY := float32(screenHeight) * margin / h

	switch {
	case w == 0 && h == 0:
		p.Scale = 1
	case w == 0:
		p.Scale = scaleY
	case h == 0:
		p.Scale = scaleX
	default:
		p.Scale = math32.Min(scaleX, scaleY)
	}

	// Center the box's midpoint on the screen
	cx, cy := p.Project(min.Add(max).Scale(0.5))
	p.OffsetX = float32(screenWidth)/2 - cx
	p.OffsetY = float32(screenHeight)/2 - cy

	return p

}

// Project returns the screen position of the point given.
func (p Projection) Project(point meshtree.Vector3) (float32, float32) {

	var x, y float32

	switch p.Plane {
	case ViewXZ:
		x, y = point.X, point.Z
	case ViewZY:
		x, y = point.Z, -point.Y
	default:
		x, y = point.X, -point.Y
	}

	return x*p.Scale + p.OffsetX, y*p.Scale + p.OffsetY

}

// Unproject returns the world position of the screen position given; the axis the Projection looks down is set to depth.
func (p Projection) Unproject(x, y, depth float32) meshtree.Vector3 {

	wx := (x - p.OffsetX) / p.Scale
	wy := (y - p.OffsetY) / p.Scale

	switch p.Plane {
	case ViewXZ:
		return meshtree.Vector3{X: wx, Y: depth, Z: wy}
	case ViewZY:
		return meshtree.Vector3{X: depth, Y: -wy, Z: wx}
	}

	return meshtree.Vector3{X: wx, Y: -wy, Z: depth}

}
