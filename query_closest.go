package meshtree

import (
	"container/heap"

	"github.com/solarlune/meshtree/math32"
)

// SurfaceHit is the result of a closest point query against a Tree.
type SurfaceHit struct {
	Position        Vector3 // The closest point on the mesh's surface
	DistanceSquared float32 // The squared distance from the query point to Position
	TriangleID      uint32  // The triangle Position lies on
	SourceID        uint32  // The source object of the triangle Position lies on
	Normal          Vector3 // The unnormalized face normal of the triangle, following its winding order ((b-a) x (c-a))
	Found           bool    // Whether a closest point was found at all; this is only false for empty Trees
}

// Distance returns the distance from the query point to the closest point found.
func (hit SurfaceHit) Distance() float32 {
	return math32.Sqrt(hit.DistanceSquared)
}

// Inside returns if the point lies behind the face of the triangle the SurfaceHit lies on; for a closed, consistently-wound mesh
// whose triangles face outwards, this means the point is inside the mesh. The point should be the point the SurfaceHit was queried for.
// Points lying exactly on the surface are considered outside.
func (hit SurfaceHit) Inside(point Vector3) bool {
	return hit.Found && point.Sub(hit.Position).Dot(hit.Normal) < 0
}

type queryNode struct {
	nodeID uint32
	// The distance to the node's bounding box; the minimum possible distance from the query point to a triangle inside the node
	distanceSq float32
}

// nodeHeap is a container/heap min-heap of queryNodes, keeping the node with the shortest candidate distance on top.
type nodeHeap []queryNode

func (h nodeHeap) Len() int           { return len(h) }
func (h nodeHeap) Less(i, j int) bool { return h[i].distanceSq < h[j].distanceSq }
func (h nodeHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *nodeHeap) Push(x any) {
	*h = append(*h, x.(queryNode))
}

func (h *nodeHeap) Pop() any {
	old := *h
	n := old[len(old)-1]
	*h = old[:len(old)-1]
	return n
}

// FindClosestPoint returns the point on the surface of the mesh the Tree was built from that's closest to the point given.
// The search is best-first: nodes are visited in order of the distance from the point to their bounding boxes, and any node whose box
// is no closer than the best triangle found so far is skipped, along with everything beneath it.
// The returned SurfaceHit's Found field is false only if the Tree is empty.
func FindClosestPoint[I Index](tree *Tree, point Vector3, mesh MeshBuffers[I], scratch *Scratch) SurfaceHit {

	result := SurfaceHit{DistanceSquared: math32.Inf(1)}

	if tree.Empty() {
		return result
	}

	scratch = orNewScratch(scratch)

	nodes := &scratch.heap
	*nodes = (*nodes)[:0]
	heap.Push(nodes, queryNode{nodeID: 0, distanceSq: 0})

	// Traverse the heap until the node with the shortest possible distance can't get any better than the current candidate
	for nodes.Len() > 0 && (*nodes)[0].distanceSq < result.DistanceSquared {

		n := heap.Pop(nodes).(queryNode)
		node := tree.Nodes[n.nodeID]

		if node.IsLeaf {

			a, b, c := mesh.Triangle(node.TriangleID)

			if closest, distanceSq := ClosestPointOnTriangleSq(point, a, b, c); distanceSq < result.DistanceSquared {
				result.Position = closest
				result.DistanceSquared = distanceSq
				result.TriangleID = node.TriangleID
				result.SourceID = node.SourceID
				result.Normal = b.Sub(a).Cross(c.Sub(a))
				result.Found = true
			}

		} else {

			lchild := tree.Nodes[node.LChildID]
			rchild := tree.Nodes[node.RChildID()]

			// Consider each child as long as its minimum possible distance is smaller than our candidate
			if distanceSq := DistanceToBoxSq(point, lchild.Min, lchild.Max); distanceSq < result.DistanceSquared {
				heap.Push(nodes, queryNode{nodeID: node.LChildID, distanceSq: distanceSq})
			}

			if distanceSq := DistanceToBoxSq(point, rchild.Min, rchild.Max); distanceSq < result.DistanceSquared {
				heap.Push(nodes, queryNode{nodeID: node.RChildID(), distanceSq: distanceSq})
			}

		}

	}

	*nodes = (*nodes)[:0]

	return result

}

// FindClosestPointInside works like FindClosestPoint, but also reports whether the point lies inside the mesh, judging by which side
// of the closest triangle the point is on (see SurfaceHit.Inside). This is much cheaper than IsPointInside, but less robust; points
// whose closest feature is an edge or vertex shared by triangles facing very different directions may be misjudged.
func FindClosestPointInside[I Index](tree *Tree, point Vector3, mesh MeshBuffers[I], scratch *Scratch) (SurfaceHit, bool) {
	hit := FindClosestPoint(tree, point, mesh, scratch)
	return hit, hit.Inside(point)
}
