package meshtree

import "sort"

// RayHit represents a single triangle struck by a ray test.
type RayHit struct {
	Position   Vector3 // Position is the position along the ray that struck the triangle.
	T          float32 // T is the distance along the ray to Position, in multiples of the ray's direction.
	TriangleID uint32  // The ID of the triangle struck.
	SourceID   uint32  // The source ID of the triangle struck.
	Normal     Vector3 // Normal is the unit normal of the triangle struck, following its winding order.
}

// RayTest casts the ray starting at origin and heading along dir through the Tree, appending a RayHit for every triangle the ray strikes
// to hits and returning the result. The hits appended are sorted by distance from the origin. Only the nodes whose bounding boxes the ray
// strikes are visited.
func RayTest[I Index](tree *Tree, origin, dir Vector3, mesh MeshBuffers[I], hits []RayHit, scratch *Scratch) []RayHit {

	if tree.Empty() {
		return hits
	}

	scratch = orNewScratch(scratch)

	start := len(hits)
	queue := append(scratch.queue[:0], 0)

	for head := 0; head < len(queue); head++ {

		node := tree.Nodes[queue[head]]

		if node.IsLeaf {

			a, b, c := mesh.Triangle(node.TriangleID)

			if hit, t := RayIntersectsTriangle(origin, dir, a, b, c); hit {
				hits = append(hits, RayHit{
					Position:   origin.Add(dir.Scale(t)),
					T:          t,
					TriangleID: node.TriangleID,
					SourceID:   node.SourceID,
					Normal:     b.Sub(a).Cross(c.Sub(a)).Unit(),
				})
			}

			continue

		}

		for _, childID := range [2]uint32{node.LChildID, node.RChildID()} {
			child := tree.Nodes[childID]
			if hit, _ := RayIntersectsBox(origin, dir, child.Min, child.Max); hit {
				queue = append(queue, childID)
			}
		}

	}

	scratch.queue = queue[:0]

	sorted := hits[start:]
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].T < sorted[j].T })

	return hits

}
