package meshtree

// Plane represents a plane as a normal and a signed offset; a point p lies on the plane's inner (visible) side if Normal.Dot(p) + D >= 0.
type Plane struct {
	Normal Vector3
	D      float32
}

// NewPlane returns a Plane passing through point, with the given normal pointing towards its inner side.
func NewPlane(normal, point Vector3) Plane {
	return Plane{Normal: normal, D: -normal.Dot(point)}
}

// Distance returns the signed distance (in multiples of the Plane's normal length) from the Plane to the point; it's negative for points
// on the outer side of the Plane.
func (plane Plane) Distance(point Vector3) float32 {
	return plane.Normal.Dot(point) + plane.D
}

// FrustumFromBox returns the six planes bounding the box given by min and max, with their normals pointing inwards.
// It's mostly useful as a simple orthographic view volume.
func FrustumFromBox(min, max Vector3) []Plane {
	return []Plane{
		NewPlane(Vector3{1, 0, 0}, min),
		NewPlane(Vector3{-1, 0, 0}, max),
		NewPlane(Vector3{0, 1, 0}, min),
		NewPlane(Vector3{0, -1, 0}, max),
		NewPlane(Vector3{0, 0, 1}, min),
		NewPlane(Vector3{0, 0, -1}, max),
	}
}

// FrustumStatus indicates how a bounding box lies relative to a set of planes.
type FrustumStatus int

const (
	FrustumIn           FrustumStatus = iota // The box lies fully inside all of the planes
	FrustumIntersecting                      // The box straddles at least one of the planes
	FrustumOut                               // The box lies fully outside at least one of the planes
)

func (status FrustumStatus) String() string {
	switch status {
	case FrustumIn:
		return "In"
	case FrustumIntersecting:
		return "Intersecting"
	}
	return "Out"
}

// BoxInFrustum tests the eight corners of the box given by min and max against each of the planes.
// If every corner is outside any single plane, the box is Out; otherwise, if any corner is outside any plane, it's Intersecting.
// Note that, like most corner-based tests, boxes lying outside the frustum near its corners may be reported as Intersecting.
func BoxInFrustum(planes []Plane, min, max Vector3) FrustumStatus {

	corners := [8]Vector3{
		{min.X, min.Y, min.Z},
		{max.X, min.Y, min.Z},
		{min.X, max.Y, min.Z},
		{max.X, max.Y, min.Z},
		{min.X, min.Y, max.Z},
		{max.X, min.Y, max.Z},
		{min.X, max.Y, max.Z},
		{max.X, max.Y, max.Z},
	}

	status := FrustumIn

	for _, plane := range planes {

		out := 0

		for _, corner := range corners {
			if plane.Distance(corner) < 0 {
				out++
			}
		}

		if out == len(corners) {
			return FrustumOut
		} else if out > 0 {
			status = FrustumIntersecting
		}

	}

	return status

}

type frustumTask struct {
	nodeID uint32
	status FrustumStatus
}

// FindSourcesInFrustum sets visible[sourceID] to true for the source ID of every leaf of the Tree whose bounding box isn't fully outside
// the planes given. Entries for sources that aren't visible are left untouched, so the caller should clear visible beforehand as needed.
// The visible slice must be long enough to be indexed by every source ID in the Tree.
// Once a node is found to be fully inside the planes, its children are accepted without testing them again.
func FindSourcesInFrustum(tree *Tree, planes []Plane, visible []bool, scratch *Scratch) {

	if tree.Empty() {
		return
	}

	scratch = orNewScratch(scratch)

	stack := append(scratch.frustumStack[:0], frustumTask{nodeID: 0, status: BoxInFrustum(planes, tree.Nodes[0].Min, tree.Nodes[0].Max)})

	for len(stack) > 0 {

		task := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if task.status == FrustumOut {
			continue
		}

		node := tree.Nodes[task.nodeID]

		if node.IsLeaf {
			visible[node.SourceID] = true
			continue
		}

		lchild := tree.Nodes[node.LChildID]
		rchild := tree.Nodes[node.RChildID()]

		// If the parent node was fully visible, its children are too
		lstatus, rstatus := task.status, task.status

		if task.status != FrustumIn {
			lstatus = BoxInFrustum(planes, lchild.Min, lchild.Max)
			rstatus = BoxInFrustum(planes, rchild.Min, rchild.Max)
		}

		stack = append(stack,
			frustumTask{nodeID: node.LChildID, status: lstatus},
			frustumTask{nodeID: node.RChildID(), status: rstatus},
		)

	}

	scratch.frustumStack = stack

}
