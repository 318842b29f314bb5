// Package merkle builds n-ary Merkle trees over an ordered sequence of
// opaque byte blocks and produces/verifies inclusion proofs against them.
//
// The core is deliberately narrow: it performs no I/O, installs no signal
// handlers, and returns every error as a value. Instrumentation (logging,
// metrics) lives one layer up, in the observe package.
package merkle

import "github.com/galsterGH/merkletree/hashalgo"

// Digest is the fixed-width hash output used throughout the tree. It is an
// alias of hashalgo.Digest so the digest primitive (C1) and the tree
// (C3) share one concrete type without conversions at the boundary.
type Digest = hashalgo.Digest

// NodeHandle addresses a node inside a Tree's arena. It is only meaningful
// in combination with the Tree that produced it; handles do not outlive
// their tree.
type NodeHandle int

// nodeID is the internal arena index type. It is distinct from NodeHandle
// only in name, kept separate so the public accessor surface in this file
// reads as the contract from the design rather than as raw slice indexing.
type nodeID = NodeHandle

const noParent nodeID = -1

// node is an arena-held tree element: a leaf (payload set, no children) or
// an interior node (children set, no payload).
type node struct {
	digest        Digest
	payload       []byte // non-nil, non-empty iff leaf
	children      []nodeID
	parent        nodeID
	indexInParent int // -1 iff parent == noParent
}

func (n *node) isLeaf() bool { return len(n.children) == 0 }

// Tree is the fully built, shared-immutable result of Build. All nodes and
// payloads are owned by the Tree; there is no way to mutate a leaf or
// rebuild part of the tree after construction (see the design's Non-goals).
type Tree struct {
	nodes  []node
	leaves []nodeID
	root   nodeID
	k      int
	depth  int
	hash   hashalgo.HashFunc
}

func (t *Tree) addNode(n node) nodeID {
	id := nodeID(len(t.nodes))
	t.nodes = append(t.nodes, n)
	return id
}

// Root returns a handle to the tree's unique parentless node.
func (t *Tree) Root() NodeHandle { return t.root }

// Leaves returns handles to every leaf, in the insertion order blocks were
// supplied to Build. The returned slice must not be mutated by callers.
func (t *Tree) Leaves() []NodeHandle {
	out := make([]NodeHandle, len(t.leaves))
	copy(out, t.leaves)
	return out
}

// K returns the branching factor fixed at construction.
func (t *Tree) K() int { return t.k }

// Depth returns the number of non-leaf levels collapsed during
// construction. Depth is 0 iff there is exactly one leaf.
func (t *Tree) Depth() int { return t.depth }

// LeafCount returns the number of leaves in the tree.
func (t *Tree) LeafCount() int { return len(t.leaves) }

// DigestOf returns the digest stored at handle h.
func (t *Tree) DigestOf(h NodeHandle) Digest { return t.nodes[h].digest }

// RootDigest returns the digest of the tree's root.
func (t *Tree) RootDigest() Digest { return t.nodes[t.root].digest }

// ParentOf returns the parent of h and true, or the zero handle and false
// if h is the root.
func (t *Tree) ParentOf(h NodeHandle) (NodeHandle, bool) {
	p := t.nodes[h].parent
	if p == noParent {
		return 0, false
	}
	return p, true
}

// IndexInParent returns the position h occupies among its parent's
// children, and true, or 0 and false if h is the root.
func (t *Tree) IndexInParent(h NodeHandle) (int, bool) {
	n := &t.nodes[h]
	if n.parent == noParent {
		return 0, false
	}
	return n.indexInParent, true
}

// ChildrenOf returns handles to h's children, in left-to-right order. A
// leaf returns an empty slice.
func (t *Tree) ChildrenOf(h NodeHandle) []NodeHandle {
	children := t.nodes[h].children
	out := make([]NodeHandle, len(children))
	copy(out, children)
	return out
}

// IsLeaf reports whether h has no children.
func (t *Tree) IsLeaf(h NodeHandle) bool { return t.nodes[h].isLeaf() }

// PayloadOf returns the owned payload bytes of leaf h. The returned slice
// must not be mutated; it aliases the tree's internal storage. Calling
// PayloadOf on an interior node returns nil.
func (t *Tree) PayloadOf(h NodeHandle) []byte { return t.nodes[h].payload }

// pathVector returns the sequence of child-position indices from the root
// down to id, uniquely addressing id within this tree. The root's own path
// vector is the empty slice.
func (t *Tree) pathVector(id nodeID) []int {
	var reversed []int
	cur := id
	for t.nodes[cur].parent != noParent {
		reversed = append(reversed, t.nodes[cur].indexInParent)
		cur = t.nodes[cur].parent
	}
	for i, j := 0, len(reversed)-1; i < j; i, j = i+1, j-1 {
		reversed[i], reversed[j] = reversed[j], reversed[i]
	}
	return reversed
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
