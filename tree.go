package meshtree

import (
	"github.com/solarlune/meshtree/math32"
)

// Node is a single node of a Tree. Every node has a bounding box covering all of the triangles underneath it.
// A leaf node references exactly one triangle of the mesh it was built from (TriangleID); an internal node references its two children,
// which are always stored next to each other in the Tree's node array (LChildID, and LChildID+1 for the right child).
// Nodes hold no pointers, only indices into the Tree's flat node slice.
type Node struct {
	Min        Vector3 // The minimum corner of the node's bounding box
	Max        Vector3 // The maximum corner of the node's bounding box
	IsLeaf     bool    // Whether the node is a leaf (references a triangle) or an internal node (references two children)
	TriangleID uint32  // The ID of the triangle the leaf references; only valid if IsLeaf is true
	LChildID   uint32  // The index of the node's left child; the right child is at LChildID+1. Only valid if IsLeaf is false
	SourceID   uint32  // The source object the leaf's triangle belongs to; only valid if IsLeaf is true
}

func emptyNode() Node {
	return Node{
		Min: Vector3{math32.MaxFloat32, math32.MaxFloat32, math32.MaxFloat32},
		Max: Vector3{-math32.MaxFloat32, -math32.MaxFloat32, -math32.MaxFloat32},
	}
}

func (node *Node) expand(tri Triangle) {
	node.Min = node.Min.Min(tri.Min)
	node.Max = node.Max.Max(tri.Max)
}

// RChildID returns the index of the node's right child. It's only valid if the node is not a leaf.
func (node Node) RChildID() uint32 {
	return node.LChildID + 1
}

// Center returns the center of the node's bounding box.
func (node Node) Center() Vector3 {
	return node.Max.Add(node.Min).Scale(0.5)
}

// Size returns the extents of the node's bounding box on each axis.
func (node Node) Size() Vector3 {
	return node.Max.Sub(node.Min)
}

// WidestAxis returns the axis (0 for X, 1 for Y, 2 for Z) along which the node's bounding box is the widest.
// Y or Z is only chosen if it's strictly wider than both other axes; in any tie for the widest (including Y and Z tying above X), X is chosen.
func (node Node) WidestAxis() int {
	extents := node.Size()
	if extents.Y > math32.Max(extents.X, extents.Z) {
		return 1
	} else if extents.Z > math32.Max(extents.X, extents.Y) {
		return 2
	}
	return 0
}

// ContainsPoint returns if the point lies inside or on the surface of the node's bounding box.
func (node Node) ContainsPoint(point Vector3) bool {
	return point.X >= node.Min.X && point.X <= node.Max.X &&
		point.Y >= node.Min.Y && point.Y <= node.Max.Y &&
		point.Z >= node.Min.Z && point.Z <= node.Max.Z
}

// ContainsBox returns if the box given by min and max lies completely inside the node's bounding box.
func (node Node) ContainsBox(min, max Vector3) bool {
	return node.ContainsPoint(min) && node.ContainsPoint(max)
}

// Tree is a bounding volume hierarchy built over the triangles of a mesh. It's a flat, ordered slice of Nodes, where node 0 is the root.
// A Tree is built once with BuildTree and is read-only afterwards; any number of goroutines may query it at the same time, provided
// nothing rebuilds it while they do. Rebuilding replaces the whole structure.
type Tree struct {
	Nodes []Node
}

// NewTree returns a new, empty Tree.
func NewTree() *Tree {
	return &Tree{}
}

// Empty returns true if the Tree has no nodes, either because it hasn't been built, or because it was built from a mesh with no triangles.
func (tree *Tree) Empty() bool {
	return len(tree.Nodes) == 0
}

// Root returns the Tree's root node. The Tree must not be empty.
func (tree *Tree) Root() Node {
	return tree.Nodes[0]
}

type buildTask struct {
	nodeID     uint32
	start, end uint32 // The range of the scratch triangle ID list assigned to the node
}

// BuildTree builds the Tree from the mesh provided, replacing anything the Tree held before.
// Each leaf of the resulting Tree references exactly one triangle, and each leaf's SourceID is its triangle ID.
// The scratch argument provides the temporary memory for the build; pass nil to have it allocated for this call only.
// BuildTree will panic if the number of indices in the mesh is not divisible by 3. A mesh without any triangles produces an empty Tree.
func BuildTree[I Index](tree *Tree, mesh MeshBuffers[I], scratch *Scratch) {
	buildTree(tree, mesh, nil, scratch)
}

// BuildTreeWithSources builds the Tree the same way as BuildTree, but assigns each leaf the source ID found at its triangle's index
// in sourceIDs. This allows several triangles to map back to a single object (a quad made of two triangles, for example).
// BuildTreeWithSources will panic if there are fewer source IDs than triangles.
func BuildTreeWithSources[I Index](tree *Tree, mesh MeshBuffers[I], sourceIDs []uint32, scratch *Scratch) {
	if len(sourceIDs) < mesh.TriangleCount() {
		panic("Error: BuildTreeWithSources() has been given fewer source IDs than there are triangles in the mesh.")
	}
	buildTree(tree, mesh, sourceIDs, scratch)
}

func buildTree[I Index](tree *Tree, mesh MeshBuffers[I], sourceIDs []uint32, scratch *Scratch) {

	if len(mesh.Indices)%3 != 0 {
		panic("Error: BuildTree() has not been given a correct number of indices to constitute triangles (it needs to be divisible by 3).")
	}

	scratch = orNewScratch(scratch)

	tree.Nodes = tree.Nodes[:0]

	triangles := extractTriangles(mesh, sourceIDs, scratch)

	if len(triangles) == 0 {
		return
	}

	root := emptyNode()
	triangleIDs := scratch.triangleIDs[:0]

	for triangleID, tri := range triangles {
		root.expand(tri)
		triangleIDs = append(triangleIDs, uint32(triangleID))
	}

	scratch.triangleIDs = triangleIDs

	tree.Nodes = append(tree.Nodes, root)

	// The stack is processed left child first, so nodes end up in the same order a depth-first recursive build would produce.
	stack := append(scratch.buildStack[:0], buildTask{nodeID: 0, start: 0, end: uint32(len(triangleIDs))})

	for len(stack) > 0 {
		task := stack[len(stack)-1]
		stack = tree.split(task, triangles, triangleIDs, scratch, stack[:len(stack)-1])
	}

	scratch.buildStack = stack

}

// split turns the task's node into a leaf if it has a single triangle, or partitions its triangles between two new child nodes,
// pushing a task for each child onto the stack.
func (tree *Tree) split(task buildTask, triangles []Triangle, triangleIDs []uint32, scratch *Scratch, stack []buildTask) []buildTask {

	ids := triangleIDs[task.start:task.end]

	if len(ids) == 1 {
		tri := triangles[ids[0]]
		node := &tree.Nodes[task.nodeID]
		node.IsLeaf = true
		node.Min = tri.Min
		node.Max = tri.Max
		node.TriangleID = ids[0]
		node.SourceID = tri.SourceID
		return stack
	}

	node := tree.Nodes[task.nodeID]

	// Split the triangles on each side of the middle of the widest axis
	axis := node.WidestAxis()
	widestAxisCenter := (node.Max.Axis(axis) + node.Min.Axis(axis)) * 0.5

	lchild := emptyNode()
	rchild := emptyNode()
	left := scratch.left[:0]
	right := scratch.right[:0]

	for _, id := range ids {
		tri := triangles[id]
		if tri.Center.Axis(axis) < widestAxisCenter {
			lchild.expand(tri)
			left = append(left, id)
		} else {
			rchild.expand(tri)
			right = append(right, id)
		}
	}

	// One of the sides is empty; this can happen since the split point comes from the node's bounding box,
	// but the center of every triangle may lie on one side of it. Alternate sides instead.
	if len(left) == 0 || len(right) == 0 {

		lchild = emptyNode()
		rchild = emptyNode()
		left = left[:0]
		right = right[:0]

		for i, id := range ids {
			tri := triangles[id]
			if i&1 == 0 {
				lchild.expand(tri)
				left = append(left, id)
			} else {
				rchild.expand(tri)
				right = append(right, id)
			}
		}

	}

	copy(ids, left)
	copy(ids[len(left):], right)

	scratch.left = left
	scratch.right = right

	lchildID := uint32(len(tree.Nodes))
	tree.Nodes[task.nodeID].LChildID = lchildID
	tree.Nodes = append(tree.Nodes, lchild, rchild)

	mid := task.start + uint32(len(left))

	return append(stack,
		buildTask{nodeID: lchildID + 1, start: mid, end: task.end},
		buildTask{nodeID: lchildID, start: task.start, end: mid},
	)

}

// TreeStats holds some general information about the shape of a Tree.
type TreeStats struct {
	NodeCount        int     // The total number of nodes in the Tree
	LeafCount        int     // The number of leaves in the Tree; this equals the number of triangles it was built from
	MaxDepth         int     // The depth of the deepest leaf, where the root is at depth 0
	AverageLeafDepth float32 // The mean depth of all leaves
	Min              Vector3 // The minimum corner of the root's bounding box
	Max              Vector3 // The maximum corner of the root's bounding box
}

type depthEntry struct {
	nodeID uint32
	depth  int
}

// Stats walks the Tree and returns a TreeStats describing it.
func (tree *Tree) Stats() TreeStats {

	stats := TreeStats{NodeCount: len(tree.Nodes)}

	if tree.Empty() {
		return stats
	}

	stats.Min = tree.Nodes[0].Min
	stats.Max = tree.Nodes[0].Max

	depthSum := 0

	tree.walk(func(nodeID uint32, depth int) bool {
		node := tree.Nodes[nodeID]
		if node.IsLeaf {
			stats.LeafCount++
			depthSum += depth
			stats.MaxDepth = math32.Max(stats.MaxDepth, depth)
		}
		return true
	})

	stats.AverageLeafDepth = float32(depthSum) / float32(stats.LeafCount)

	return stats

}

// NodesAtDepth returns the IDs of the nodes found at the given depth (where the root is at depth 0), as well as the IDs of any leaves
// shallower than that depth. The returned boxes cover every triangle of the mesh, which makes this useful for visualizing a level of
// the Tree.
func (tree *Tree) NodesAtDepth(depth int) []uint32 {

	ids := []uint32{}

	tree.walk(func(nodeID uint32, nodeDepth int) bool {
		if nodeDepth == depth || tree.Nodes[nodeID].IsLeaf {
			ids = append(ids, nodeID)
			return false
		}
		return true
	})

	return ids

}

// walk visits every node depth-first, left child first. Returning false from forEach skips the children of the visited node.
func (tree *Tree) walk(forEach func(nodeID uint32, depth int) bool) {

	if tree.Empty() {
		return
	}

	stack := []depthEntry{{nodeID: 0, depth: 0}}

	for len(stack) > 0 {

		entry := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		node := tree.Nodes[entry.nodeID]

		if forEach(entry.nodeID, entry.depth) && !node.IsLeaf {
			stack = append(stack,
				depthEntry{nodeID: node.RChildID(), depth: entry.depth + 1},
				depthEntry{nodeID: node.LChildID, depth: entry.depth + 1},
			)
		}

	}

}
