package meshtree

// DefaultBiasDirection is the ray direction MeshTree uses for containment tests. It is skewed away from the axes and
// diagonals, so that rays are unlikely to graze the edges of axis-aligned geometry.
var DefaultBiasDirection = Vector3{0.5347, 0.7125, 0.4545}

// MeshTree bundles a MeshData together with the Tree built over it, along with scratch memory for queries.
// Because of the shared scratch memory, a MeshTree's query methods must not be called from several goroutines at the same time;
// to query a single Tree concurrently, use the package-level query functions with one Scratch per goroutine.
type MeshTree struct {
	Mesh          *MeshData
	Tree          *Tree
	BiasDirection Vector3 // The direction of the rays cast by PointInside; defaults to DefaultBiasDirection
	scratch       *Scratch
	rayHits       []RayHit
}

// NewMeshTree builds a Tree over the MeshData provided and returns a MeshTree wrapping the two. The MeshData's source IDs are assigned
// to the Tree's leaves if there's one for every triangle.
func NewMeshTree(mesh *MeshData) *MeshTree {

	mt := &MeshTree{
		Mesh:          mesh,
		Tree:          NewTree(),
		BiasDirection: DefaultBiasDirection,
		scratch:       NewScratch(),
	}

	mt.Rebuild()

	return mt

}

// Rebuild rebuilds the MeshTree's Tree from its MeshData; call this after altering the MeshData.
func (mt *MeshTree) Rebuild() {

	if len(mt.Mesh.SourceIDs) == mt.Mesh.TriangleCount() {
		BuildTreeWithSources(mt.Tree, mt.Mesh.Buffers(), mt.Mesh.SourceIDs, mt.scratch)
	} else {
		BuildTree(mt.Tree, mt.Mesh.Buffers(), mt.scratch)
	}

	mt.scratch.Reset()

}

// PointInside returns true if the point lies inside the mesh, which should be closed. See IsPointInside.
func (mt *MeshTree) PointInside(point Vector3) bool {
	return IsPointInside(mt.Tree, point, mt.BiasDirection, mt.Mesh.Buffers(), nil, mt.scratch)
}

// ClosestPoint returns the closest point on the mesh's surface to the point given. See FindClosestPoint.
func (mt *MeshTree) ClosestPoint(point Vector3) SurfaceHit {
	return FindClosestPoint(mt.Tree, point, mt.Mesh.Buffers(), mt.scratch)
}

// ClosestPointInside returns the closest point on the mesh's surface to the point given, and whether the point lies behind that part of the
// surface. See FindClosestPointInside.
func (mt *MeshTree) ClosestPointInside(point Vector3) (SurfaceHit, bool) {
	return FindClosestPointInside(mt.Tree, point, mt.Mesh.Buffers(), mt.scratch)
}

// SourcesInFrustum returns a slice indicating, for each source ID up to the largest one in the mesh, whether any of its triangles may
// be visible within the planes given. See FindSourcesInFrustum.
func (mt *MeshTree) SourcesInFrustum(planes []Plane) []bool {

	sourceCount := uint32(0)
	for _, node := range mt.Tree.Nodes {
		if node.IsLeaf && node.SourceID+1 > sourceCount {
			sourceCount = node.SourceID + 1
		}
	}

	visible := make([]bool, sourceCount)
	FindSourcesInFrustum(mt.Tree, planes, visible, mt.scratch)
	return visible

}

// RayTestOptions is a struct designed to control what options to use when performing a ray test against a MeshTree.
type RayTestOptions struct {
	From Vector3 // The position to cast rays from.
	To   Vector3 // The position to cast rays to. Triangles beyond To are not struck.

	// OnHit is a callback called for each hit the cast ray returns, sorted by distance from the starting point.
	// index is the index of the hit out of the maximum number of hits found by the function (count).
	// The returned boolean indicates whether to keep iterating through all found rayhits, or to stop after the current one.
	OnHit func(hit RayHit, index, count int) bool
}

// WithOnHit sets the callback to be called for each hit a cast Ray returns, sorted by distance from the starting point.
func (r RayTestOptions) WithOnHit(onHit func(hit RayHit, index, count int) bool) RayTestOptions {
	r.OnHit = onHit
	return r
}

// RayTest casts a ray from the options' From position to its To position against the MeshTree's triangles.
// The function returns the first struck triangle; if none were struck, it returns nil.
func (mt *MeshTree) RayTest(options RayTestOptions) *RayHit {

	// The ray's direction spans the whole segment, so hits past To have a T greater than 1
	hits := RayTest(mt.Tree, options.From, options.To.Sub(options.From), mt.Mesh.Buffers(), mt.rayHits[:0], mt.scratch)

	for i, hit := range hits {
		if hit.T > 1 {
			hits = hits[:i]
			break
		}
	}

	mt.rayHits = hits

	if options.OnHit != nil {
		for i, r := range hits {
			if !options.OnHit(r, i, len(hits)) {
				break
			}
		}
	}

	if len(hits) > 0 {
		first := hits[0]
		return &first
	}
	return nil

}
