package meshtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRayIntersectsBox(t *testing.T) {

	min := Vector3{-1, -1, -1}
	max := Vector3{1, 1, 1}

	hit, dist := RayIntersectsBox(Vector3{-5, 0, 0}, Vector3{1, 0, 0}, min, max)
	assert.True(t, hit)
	assert.InDelta(t, 4, dist, 1e-5)

	// The distance is in multiples of the direction's length
	hit, dist = RayIntersectsBox(Vector3{-5, 0, 0}, Vector3{2, 0, 0}, min, max)
	assert.True(t, hit)
	assert.InDelta(t, 2, dist, 1e-5)

	// Starting inside the box reports the exit distance
	hit, dist = RayIntersectsBox(Vector3{0, 0, 0}, Vector3{0, 1, 0}, min, max)
	assert.True(t, hit)
	assert.InDelta(t, 1, dist, 1e-5)

	// Behind the origin
	hit, _ = RayIntersectsBox(Vector3{5, 0, 0}, Vector3{1, 0, 0}, min, max)
	assert.False(t, hit)

	// Passing beside the box
	hit, _ = RayIntersectsBox(Vector3{-5, 3, 0}, Vector3{1, 0, 0}, min, max)
	assert.False(t, hit)

	// Diagonal
	hit, dist = RayIntersectsBox(Vector3{-5, -5, -5}, Vector3{1, 1, 1}, min, max)
	assert.True(t, hit)
	assert.InDelta(t, 4, dist, 1e-5)

}

func TestRayIntersectsTriangle(t *testing.T) {

	a := Vector3{0, 0, 0}
	b := Vector3{1, 0, 0}
	c := Vector3{0, 1, 0}

	hit, dist := RayIntersectsTriangle(Vector3{0.25, 0.25, 5}, Vector3{0, 0, -1}, a, b, c)
	assert.True(t, hit)
	assert.InDelta(t, 5, dist, 1e-5)

	// Back faces are struck too
	hit, dist = RayIntersectsTriangle(Vector3{0.25, 0.25, -2}, Vector3{0, 0, 1}, a, b, c)
	assert.True(t, hit)
	assert.InDelta(t, 2, dist, 1e-5)

	// Outside of the triangle
	hit, dist = RayIntersectsTriangle(Vector3{0.75, 0.75, 5}, Vector3{0, 0, -1}, a, b, c)
	assert.False(t, hit)
	assert.Equal(t, float32(-1), dist)

	// Behind the origin; the distance is still reported
	hit, dist = RayIntersectsTriangle(Vector3{0.25, 0.25, 5}, Vector3{0, 0, 1}, a, b, c)
	assert.False(t, hit)
	assert.InDelta(t, -5, dist, 1e-5)

	// Parallel to the triangle's plane
	hit, _ = RayIntersectsTriangle(Vector3{-1, 0.25, 0}, Vector3{1, 0, 0}, a, b, c)
	assert.False(t, hit)

}

func TestClosestPointOnTriangle(t *testing.T) {

	a := Vector3{0, 0, 0}
	b := Vector3{2, 0, 0}
	c := Vector3{0, 2, 0}

	// Above the face, so the point is projected straight down
	p, distSq := ClosestPointOnTriangleSq(Vector3{0.5, 0.5, 3}, a, b, c)
	assert.True(t, p.Equals(Vector3{0.5, 0.5, 0}), p.String())
	assert.InDelta(t, 9, distSq, 1e-4)

	// On the face itself
	p, distSq = ClosestPointOnTriangleSq(Vector3{0.5, 0.5, 0}, a, b, c)
	assert.Equal(t, Vector3{0.5, 0.5, 0}, p)
	assert.Equal(t, float32(0), distSq)

	// On each vertex; for b, the BA and CB edges tie
	for _, vertex := range []Vector3{a, b, c} {
		p, distSq = ClosestPointOnTriangleSq(vertex, a, b, c)
		assert.True(t, p.Equals(vertex), p.String())
		assert.InDelta(t, 0, distSq, 1e-6)
	}

	// Beside the AB edge
	p, distSq = ClosestPointOnTriangleSq(Vector3{1, -1, 0}, a, b, c)
	assert.True(t, p.Equals(Vector3{1, 0, 0}), p.String())
	assert.InDelta(t, 1, distSq, 1e-5)

	// Past vertex c, clamped to it
	p, distSq = ClosestPointOnTriangleSq(Vector3{-1, 4, 0}, a, b, c)
	assert.True(t, p.Equals(c), p.String())
	assert.InDelta(t, 5, distSq, 1e-4)

	// Beyond the hypotenuse
	p, distSq = ClosestPointOnTriangleSq(Vector3{2, 2, 0}, a, b, c)
	assert.True(t, p.Equals(Vector3{1, 1, 0}), p.String())
	assert.InDelta(t, 2, distSq, 1e-4)

}

func TestDistanceToBoxSq(t *testing.T) {
	min := Vector3{-1, -1, -1}
	max := Vector3{1, 1, 1}
	assert.Equal(t, float32(0), DistanceToBoxSq(Vector3{0.5, 0, 0}, min, max))
	assert.InDelta(t, 16, DistanceToBoxSq(Vector3{5, 0, 0}, min, max), 1e-5)
	assert.InDelta(t, 3, DistanceToBoxSq(Vector3{2, 2, 2}, min, max), 1e-5)
}
