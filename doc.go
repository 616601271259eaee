// Package meshtree builds a bounding volume hierarchy over the triangles of a static mesh and answers spatial queries against it:
// whether a point lies inside a closed mesh, the closest point on the mesh's surface, ray tests, and which source objects lie within a
// set of planes.
//
// A Tree is a flat slice of Nodes built once by BuildTree from caller-owned vertex and index buffers (see MeshBuffers), and is read-only
// afterwards. Temporary memory for builds and queries comes from a Scratch, which can be kept and reused to avoid allocating.
// MeshTree bundles a loaded MeshData with its Tree for convenience.
package meshtree
