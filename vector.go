package meshtree

import (
	"fmt"

	"github.com/solarlune/meshtree/math32"
)

// Vector3 represents a 3D Vector, used for positions, directions and the corners of bounding boxes.
// Any Vector3 functions that modify the calling Vector3 return copies of the modified Vector3, meaning you can do method-chaining easily.
// Vectors are most efficient when copied (so try not to store pointers to them if possible, as dereferencing pointers
// can be more inefficient than directly acting on data, and storing pointers moves variables to heap).
type Vector3 struct {
	X float32 // The X (1st) component of the Vector3
	Y float32 // The Y (2nd) component of the Vector3
	Z float32 // The Z (3rd) component of the Vector3
}

// NewVector3 creates a new Vector3 with the specified x, y, and z components.
func NewVector3(x, y, z float32) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// NewVector3FromBuffer reads the vertex at the given vertex index out of a flat buffer of position triples.
func NewVector3FromBuffer(buffer []float32, vertexIndex uint32) Vector3 {
	i := vertexIndex * 3
	return Vector3{buffer[i], buffer[i+1], buffer[i+2]}
}

func (vec Vector3) String() string {
	return fmt.Sprintf("{%.2f, %.2f, %.2f}", vec.X, vec.Y, vec.Z)
}

// Add returns a copy of the calling vector, added together with the other Vector3 provided.
func (vec Vector3) Add(other Vector3) Vector3 {
	vec.X += other.X
	vec.Y += other.Y
	vec.Z += other.Z
	return vec
}

// Sub returns a copy of the calling Vector3, with the other Vector3 subtracted from it.
func (vec Vector3) Sub(other Vector3) Vector3 {
	vec.X -= other.X
	vec.Y -= other.Y
	vec.Z -= other.Z
	return vec
}

// Cross returns a new Vector3, indicating the cross product of the calling Vector3 and the provided Other Vector3.
func (vec Vector3) Cross(other Vector3) Vector3 {

	ogVecY := vec.Y
	ogVecZ := vec.Z

	vec.Z = vec.X*other.Y - other.X*vec.Y
	vec.Y = ogVecZ*other.X - other.Z*vec.X
	vec.X = ogVecY*other.Z - other.Y*ogVecZ

	return vec

}

// Invert returns a copy of the Vector3 with all components negated.
func (vec Vector3) Invert() Vector3 {
	vec.X = -vec.X
	vec.Y = -vec.Y
	vec.Z = -vec.Z
	return vec
}

// Magnitude returns the length of the Vector3.
func (vec Vector3) Magnitude() float32 {
	return math32.Sqrt(vec.X*vec.X + vec.Y*vec.Y + vec.Z*vec.Z)
}

// MagnitudeSquared returns the squared length of the Vector3; this is faster than Magnitude() as it avoids using math32.Sqrt().
func (vec Vector3) MagnitudeSquared() float32 {
	return vec.X*vec.X + vec.Y*vec.Y + vec.Z*vec.Z
}

// DistanceTo returns the distance from the calling Vector3 to the other Vector3 provided.
func (vec Vector3) DistanceTo(other Vector3) float32 {
	return vec.Sub(other).Magnitude()
}

// DistanceSquaredTo returns the squared distance from the calling Vector3 to the other Vector3 provided.
func (vec Vector3) DistanceSquaredTo(other Vector3) float32 {
	return vec.Sub(other).MagnitudeSquared()
}

// Unit returns a copy of the Vector3, normalized (set to be of unit length).
func (vec Vector3) Unit() Vector3 {
	l := vec.Magnitude()
	if l < 1e-8 {
		// If it's 0, then don't modify the vector
		return vec
	}
	vec.X, vec.Y, vec.Z = vec.X/l, vec.Y/l, vec.Z/l
	return vec
}

// Scale scales a Vector3 by the given scalar.
func (vec Vector3) Scale(scalar float32) Vector3 {
	vec.X *= scalar
	vec.Y *= scalar
	vec.Z *= scalar
	return vec
}

// Reciprocal returns a copy of the Vector3 with each component replaced by 1 divided by it.
// Zero components become ±Inf, following IEEE semantics.
func (vec Vector3) Reciprocal() Vector3 {
	vec.X = 1 / vec.X
	vec.Y = 1 / vec.Y
	vec.Z = 1 / vec.Z
	return vec
}

// Dot returns the dot product of a Vector3 and another Vector3.
func (vec Vector3) Dot(other Vector3) float32 {
	return vec.X*other.X + vec.Y*other.Y + vec.Z*other.Z
}

// Min returns the component-wise minimum of the calling Vector3 and the other Vector3 provided.
func (vec Vector3) Min(other Vector3) Vector3 {
	vec.X = math32.Min(vec.X, other.X)
	vec.Y = math32.Min(vec.Y, other.Y)
	vec.Z = math32.Min(vec.Z, other.Z)
	return vec
}

// Max returns the component-wise maximum of the calling Vector3 and the other Vector3 provided.
func (vec Vector3) Max(other Vector3) Vector3 {
	vec.X = math32.Max(vec.X, other.X)
	vec.Y = math32.Max(vec.Y, other.Y)
	vec.Z = math32.Max(vec.Z, other.Z)
	return vec
}

// Clamp returns a copy of the Vector3 with each component clamped between the respective components of min and max.
func (vec Vector3) Clamp(min, max Vector3) Vector3 {
	vec.X = math32.Clamp(vec.X, min.X, max.X)
	vec.Y = math32.Clamp(vec.Y, min.Y, max.Y)
	vec.Z = math32.Clamp(vec.Z, min.Z, max.Z)
	return vec
}

// Lerp performs a linear interpolation between the starting Vector3 and the provided other Vector3, to the given percentage.
func (vec Vector3) Lerp(other Vector3, percentage float32) Vector3 {
	return vec.Add(other.Sub(vec).Scale(percentage))
}

// Axis returns the component of the Vector3 indicated by the axis index (0 for X, 1 for Y, 2 for Z).
func (vec Vector3) Axis(axis int) float32 {
	switch axis {
	case 0:
		return vec.X
	case 1:
		return vec.Y
	}
	return vec.Z
}

// Equals returns true if the two Vectors are close enough in all values.
func (vec Vector3) Equals(other Vector3) bool {

	eps := float32(1e-4)

	if math32.Abs(vec.X-other.X) > eps || math32.Abs(vec.Y-other.Y) > eps || math32.Abs(vec.Z-other.Z) > eps {
		return false
	}

	return true

}

// IsZero returns true if the values in the Vector3 are extremely close to 0.
func (vec Vector3) IsZero() bool {
	return vec.Equals(Vector3{})
}
