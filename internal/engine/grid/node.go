package grid

// Tree structure constants
const (
	// MaxCellsPerLeaf is the number of cells a full leaf node holds.
	MaxCellsPerLeaf = 64

	// MaxChildren is the number of children a full internal node holds.
	MaxChildren = 8
)

// node is one node in the grid tree.
// Leaf nodes (height == 0) hold cell chunks.
// Internal nodes (height > 0) hold child node references.
//
// Children are packed left-full: every child except possibly the last is
// at full capacity for its height, so cell offsets map to children by
// arithmetic rather than stored summaries.
type node struct {
	height uint8
	count  int // cells in this subtree

	children []*node // internal node fields (height > 0)
	cells    []Color // leaf node fields (height == 0)
}

// capacityForHeight returns the maximum cell count of a full subtree at
// the given height.
func capacityForHeight(height uint8) int {
	c := MaxCellsPerLeaf
	for h := uint8(0); h < height; h++ {
		c *= MaxChildren
	}
	return c
}

// newLeafNode creates a leaf node holding the given cells.
func newLeafNode(cells []Color) *node {
	return &node{
		height: 0,
		count:  len(cells),
		cells:  cells,
	}
}

// newInternalNode creates an internal node with the given children.
func newInternalNode(children []*node) *node {
	count := 0
	for _, child := range children {
		count += child.count
	}
	return &node{
		height:   children[0].height + 1,
		count:    count,
		children: children,
	}
}

// isLeaf returns true if this is a leaf node.
func (n *node) isLeaf() bool {
	return n.height == 0
}

// at returns the cell at the given offset within this subtree.
func (n *node) at(offset int) Color {
	if n.isLeaf() {
		return n.cells[offset]
	}
	childCap := capacityForHeight(n.height - 1)
	return n.children[offset/childCap].at(offset % childCap)
}

// set returns a copy of this subtree with the cell at offset replaced.
// Only nodes on the root-to-leaf path are copied; siblings are shared
// with the original.
func (n *node) set(offset int, c Color) *node {
	if n.isLeaf() {
		cells := make([]Color, len(n.cells))
		copy(cells, n.cells)
		cells[offset] = c
		return newLeafNode(cells)
	}

	childCap := capacityForHeight(n.height - 1)
	children := make([]*node, len(n.children))
	copy(children, n.children)
	i := offset / childCap
	children[i] = children[i].set(offset%childCap, c)
	return newInternalNode(children)
}

// appendBytes appends the RGB bytes of every cell in this subtree to dst.
func (n *node) appendBytes(dst []byte) []byte {
	if n.isLeaf() {
		for _, c := range n.cells {
			dst = append(dst, c.R, c.G, c.B)
		}
		return dst
	}
	for _, child := range n.children {
		dst = child.appendBytes(dst)
	}
	return dst
}

// appendCells appends every cell in this subtree to dst.
func (n *node) appendCells(dst []Color) []Color {
	if n.isLeaf() {
		return append(dst, n.cells...)
	}
	for _, child := range n.children {
		dst = child.appendCells(dst)
	}
	return dst
}

// buildTree builds a packed tree holding count copies of the fill color.
func buildTree(count int, fill Color) *node {
	// Build leaf nodes
	var leaves []*node
	for remaining := count; remaining > 0; remaining -= MaxCellsPerLeaf {
		size := MaxCellsPerLeaf
		if remaining < size {
			size = remaining
		}
		cells := make([]Color, size)
		for i := range cells {
			cells[i] = fill
		}
		leaves = append(leaves, newLeafNode(cells))
	}

	// Build tree bottom-up
	nodes := leaves
	for len(nodes) > 1 {
		var parents []*node
		for i := 0; i < len(nodes); i += MaxChildren {
			end := i + MaxChildren
			if end > len(nodes) {
				end = len(nodes)
			}
			children := make([]*node, end-i)
			copy(children, nodes[i:end])
			parents = append(parents, newInternalNode(children))
		}
		nodes = parents
	}

	return nodes[0]
}
