package meshtree

// Scratch holds the temporary buffers used while building a Tree or querying one: the triangle pool, the triangle ID worklists,
// the breadth-first queue, the priority queue, and the frustum traversal stack.
// Buffers only ever grow; nothing is freed individually. Passing the same Scratch into many builds or queries lets them reuse the
// memory allocated by earlier calls, so a Scratch can be kept around and reset between frames.
// A Scratch must not be shared between goroutines; give each querying goroutine its own.
// Every function that takes a *Scratch also accepts nil, in which case a temporary Scratch is allocated for that call.
type Scratch struct {
	triangles    []Triangle
	triangleIDs  []uint32
	left         []uint32
	right        []uint32
	buildStack   []buildTask
	queue        []uint32
	heap         nodeHeap
	frustumStack []frustumTask
}

// NewScratch returns a new, empty Scratch.
func NewScratch() *Scratch {
	return &Scratch{}
}

// Reset truncates every buffer in the Scratch while keeping the allocated memory for reuse.
func (s *Scratch) Reset() {
	s.triangles = s.triangles[:0]
	s.triangleIDs = s.triangleIDs[:0]
	s.left = s.left[:0]
	s.right = s.right[:0]
	s.buildStack = s.buildStack[:0]
	s.queue = s.queue[:0]
	s.heap = s.heap[:0]
	s.frustumStack = s.frustumStack[:0]
}

// Size returns the combined capacity, in elements, of all of the Scratch's buffers.
func (s *Scratch) Size() int {
	return cap(s.triangles) + cap(s.triangleIDs) + cap(s.left) + cap(s.right) + cap(s.buildStack) + cap(s.queue) + cap(s.heap) + cap(s.frustumStack)
}

func orNewScratch(scratch *Scratch) *Scratch {
	if scratch == nil {
		return NewScratch()
	}
	return scratch
}
