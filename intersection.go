package meshtree

import "github.com/solarlune/meshtree/math32"

// RayIntersectsBox tests the ray starting at origin and heading along dir against the axis-aligned box given by boxMin and boxMax,
// using the slab method. It returns whether the ray strikes the box, and the distance along the ray (in multiples of dir) to the point
// the ray enters the box, or leaves it if origin lies inside the box. For a miss, the returned distance is the exit distance of the
// ray's line, which is negative when the box lies behind the origin.
// Zero components in dir produce infinite slab distances, which still combine correctly.
func RayIntersectsBox(origin, dir, boxMin, boxMax Vector3) (bool, float32) {

	// For each axis, find the distances along the ray where it crosses the two planes of that axis' slab
	dirfrac := dir.Reciprocal()

	t1 := (boxMin.X - origin.X) * dirfrac.X
	t2 := (boxMax.X - origin.X) * dirfrac.X
	t3 := (boxMin.Y - origin.Y) * dirfrac.Y
	t4 := (boxMax.Y - origin.Y) * dirfrac.Y
	t5 := (boxMin.Z - origin.Z) * dirfrac.Z
	t6 := (boxMax.Z - origin.Z) * dirfrac.Z

	minT := math32.Max(math32.Max(math32.Min(t1, t2), math32.Min(t3, t4)), math32.Min(t5, t6))
	maxT := math32.Min(math32.Min(math32.Max(t1, t2), math32.Max(t3, t4)), math32.Max(t5, t6))

	// The box is behind the ray
	if maxT < 0 {
		return false, maxT
	}

	// The ray misses the box
	if minT > maxT {
		return false, maxT
	}

	// The ray starts inside the box, so the next crossing is on the way out
	if minT < 0 {
		return true, maxT
	}

	return true, minT

}

// RayIntersectsTriangle tests the ray starting at origin and heading along dir against the triangle (a, b, c) using the Möller–Trumbore
// barycentric formulation. It returns whether the ray strikes the triangle in front of the origin, and the distance along the ray
// (in multiples of dir) to the struck point. Both faces of the triangle can be struck; rays parallel to the triangle's plane never strike it.
// Degenerate (zero-area) triangles are not detected, and give unreliable results.
func RayIntersectsTriangle(origin, dir, a, b, c Vector3) (bool, float32) {

	ba := b.Sub(a)
	ca := c.Sub(a)
	pa := origin.Sub(a)
	n := ba.Cross(ca)
	q := pa.Cross(dir)

	d := 1 / dir.Dot(n)
	u := d * q.Invert().Dot(ca)
	v := d * q.Dot(ba)
	t := d * n.Invert().Dot(pa)

	// Written so that NaNs (from rays parallel to the triangle's plane) are rejected as well
	if !(u >= 0 && v >= 0 && u+v <= 1) {
		return false, -1
	}

	return t > 0, t

}

// ClosestPointOnTriangleSq returns the point on the triangle (a, b, c) closest to point, as well as the squared distance between the two.
// If point lies inside the prism formed by extruding the triangle along its normal, the result is point projected onto the triangle's plane;
// otherwise, the result lies on whichever of the triangle's edges is closest.
func ClosestPointOnTriangleSq(point, a, b, c Vector3) (Vector3, float32) {

	ba := b.Sub(a)
	pa := point.Sub(a)
	cb := c.Sub(b)
	pb := point.Sub(b)
	ac := a.Sub(c)
	pc := point.Sub(c)
	n := ba.Cross(ac)

	// Is the point on the inner side of the half space for each edge?
	insideBA := ba.Cross(n).Dot(pa) > 0
	insideCB := cb.Cross(n).Dot(pb) > 0
	insideAC := ac.Cross(n).Dot(pc) > 0

	if insideBA && insideCB && insideAC {
		// distance = dot(pa, n) / |n|, so distanceSq = dot(pa, n)^2 / dot(n, n), and the projected point is point - n * dot(pa, n) / dot(n, n)
		pan := pa.Dot(n)
		nn := n.Dot(n)
		return point.Sub(n.Scale(pan / nn)), pan * pan / nn
	}

	// Vectors from point to the closest point along each edge, clamped to the edge's ends
	toBA := ba.Scale(math32.Clamp(ba.Dot(pa)/ba.Dot(ba), 0, 1)).Sub(pa)
	toCB := cb.Scale(math32.Clamp(cb.Dot(pb)/cb.Dot(cb), 0, 1)).Sub(pb)
	toAC := ac.Scale(math32.Clamp(ac.Dot(pc)/ac.Dot(ac), 0, 1)).Sub(pc)

	distanceSqBA := toBA.MagnitudeSquared()
	distanceSqCB := toCB.MagnitudeSquared()
	distanceSqAC := toAC.MagnitudeSquared()

	// Ties go to BA, then CB
	if distanceSqBA <= distanceSqCB && distanceSqBA <= distanceSqAC {
		return point.Add(toBA), distanceSqBA
	} else if distanceSqCB <= distanceSqAC {
		return point.Add(toCB), distanceSqCB
	}

	return point.Add(toAC), distanceSqAC

}

// DistanceToBoxSq returns the squared distance from point to the closest point of the axis-aligned box given by boxMin and boxMax.
// It returns 0 if the point lies inside the box.
func DistanceToBoxSq(point, boxMin, boxMax Vector3) float32 {
	return point.Clamp(boxMin, boxMax).DistanceSquaredTo(point)
}
