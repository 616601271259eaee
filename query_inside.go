package meshtree

// IsPointInside returns if the point lies inside the closed mesh the Tree was built from. It casts a single ray from point along
// biasDirection, and counts how many triangles the ray crosses; an odd count means the point is inside.
// The Tree is traversed breadth-first, only descending into nodes whose bounding boxes the ray strikes.
//
// If hits is not nil, the distance along the ray of every crossing is appended to it, in traversal order (not sorted).
// The caller owns the hits slice and may truncate and reuse it between calls.
//
// The answer is only meaningful for watertight, consistently-wound meshes; open meshes aren't detected and produce an answer of
// unspecified correctness. biasDirection should be chosen so the ray doesn't pass exactly through any edge or vertex of the mesh,
// as grazing hits may be counted twice or not at all.
func IsPointInside[I Index](tree *Tree, point, biasDirection Vector3, mesh MeshBuffers[I], hits *[]float32, scratch *Scratch) bool {

	if tree.Empty() {
		return false
	}

	scratch = orNewScratch(scratch)

	queue := append(scratch.queue[:0], 0)
	intersections := 0

	// The queue is consumed from the front; it only grows, and is reset once the traversal is done
	for head := 0; head < len(queue); head++ {

		node := tree.Nodes[queue[head]]

		if node.IsLeaf {

			a, b, c := mesh.Triangle(node.TriangleID)

			if hit, t := RayIntersectsTriangle(point, biasDirection, a, b, c); hit {
				intersections++
				if hits != nil {
					*hits = append(*hits, t)
				}
			}

		} else {

			lchild := tree.Nodes[node.LChildID]
			rchild := tree.Nodes[node.RChildID()]

			if hit, _ := RayIntersectsBox(point, biasDirection, lchild.Min, lchild.Max); hit {
				queue = append(queue, node.LChildID)
			}

			if hit, _ := RayIntersectsBox(point, biasDirection, rchild.Min, rchild.Max); hit {
				queue = append(queue, node.RChildID())
			}

		}

	}

	scratch.queue = queue[:0]

	return intersections%2 == 1

}
