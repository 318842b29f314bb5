package merkle

import (
	"sort"
	"strconv"
	"strings"
)

// MultiProof is an inclusion proof for several leaves at once. It shares
// sibling digests that cover more than one requested leaf instead of
// repeating them per leaf, the same space saving the generalized-index
// multiproof makes for binary trees; here the addressing is a path vector
// (child positions from the root) rather than a single integer, since a
// k-ary tree's structure cannot be recovered from a bit-length alone.
type MultiProof struct {
	K int
	// Indices are the leaf indices being proven, in ascending order with
	// duplicates removed.
	Indices []int
	// Digests maps a node's path key (see pathKey) to its digest, for every
	// node needed to recompute the root that is not itself an ancestor of a
	// requested leaf.
	Digests map[string]Digest
	// Arity maps an internal node's path key to its number of children.
	// Required because trailing groups may have fewer than K children and
	// that cannot be inferred from the path vector alone.
	Arity map[string]int
	// LeafPaths maps a requested leaf index to its path key, since trailing
	// short groups mean a leaf's position cannot be recovered from its
	// index and K alone.
	LeafPaths map[int]string
}

func pathKey(vec []int) string {
	parts := make([]string, len(vec))
	for i, v := range vec {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ".")
}

// ProveMulti builds a MultiProof covering every leaf index in indices.
// Indices may be given in any order and must be within [0, LeafCount());
// duplicates are accepted and deduplicated. It returns IndexOutOfRange if
// any index is invalid, or BadArgument if indices is empty.
func (t *Tree) ProveMulti(indices []int) (*MultiProof, error) {
	if len(indices) == 0 {
		return nil, newError(BadArgument, "indices must contain at least one element")
	}

	needed := make(map[nodeID]bool)
	ordered := make([]int, 0, len(indices))
	seen := make(map[int]bool)
	for _, i := range indices {
		if i < 0 || i >= len(t.leaves) {
			return nil, newError(IndexOutOfRange, "leaf index %d out of range [0,%d)", i, len(t.leaves))
		}
		if seen[i] {
			continue
		}
		seen[i] = true
		ordered = append(ordered, i)

		cur := t.leaves[i]
		for {
			needed[cur] = true
			if t.nodes[cur].parent == noParent {
				break
			}
			cur = t.nodes[cur].parent
		}
	}
	sort.Ints(ordered)

	mp := &MultiProof{
		K:         t.k,
		Indices:   ordered,
		Digests:   make(map[string]Digest),
		Arity:     make(map[string]int),
		LeafPaths: make(map[int]string),
	}
	for _, i := range ordered {
		mp.LeafPaths[i] = pathKey(t.pathVector(t.leaves[i]))
	}

	for id := range needed {
		n := &t.nodes[id]
		if n.isLeaf() {
			continue
		}
		vec := t.pathVector(id)
		key := pathKey(vec)
		mp.Arity[key] = len(n.children)

		for pos, c := range n.children {
			if needed[c] {
				continue
			}
			childVec := append(append([]int(nil), vec...), pos)
			mp.Digests[pathKey(childVec)] = t.nodes[c].digest
		}
	}

	return mp, nil
}

// VerifyMulti recomputes a root from leaves (keyed by leaf index) and mp,
// reporting whether it matches expectedRoot. leaves must supply exactly the
// payloads for mp.Indices. It returns BadProof if mp is structurally
// inconsistent or leaves does not match mp.Indices.
func VerifyMulti(mp *MultiProof, expectedRoot Digest, leaves map[int][]byte, opts ...Options) (bool, error) {
	var o Options
	if len(opts) > 0 {
		o = opts[0]
	}
	hash := o.hashFunc()

	if mp == nil {
		return false, newError(BadArgument, "multiproof must not be nil")
	}
	if len(leaves) != len(mp.Indices) {
		return false, newError(BadProof, "expected %d leaves, got %d", len(mp.Indices), len(leaves))
	}

	known := make(map[string]Digest)
	for _, i := range mp.Indices {
		payload, ok := leaves[i]
		if !ok {
			return false, newError(BadProof, "missing leaf payload for index %d", i)
		}
		key, ok := mp.LeafPaths[i]
		if !ok {
			return false, newError(BadProof, "multiproof missing path for leaf index %d", i)
		}
		known[key] = hash.HashBytes(payload)
	}
	for key, d := range mp.Digests {
		known[key] = d
	}

	// Work level by level from the deepest known key upward, folding each
	// node's children into its parent's slot once all of them resolve.
	for {
		// Find a node whose children are all resolved but the node itself
		// isn't, and fold it. Repeat until only the root key ("") remains
		// or no progress can be made.
		if _, ok := known[""]; ok {
			break
		}

		progressed := false
		for key, arity := range mp.Arity {
			if _, already := known[key]; already {
				continue
			}
			children := make([]Digest, arity)
			complete := true
			for pos := 0; pos < arity; pos++ {
				var childKey string
				if key == "" {
					childKey = strconv.Itoa(pos)
				} else {
					childKey = key + "." + strconv.Itoa(pos)
				}
				d, ok := known[childKey]
				if !ok {
					complete = false
					break
				}
				children[pos] = d
			}
			if !complete {
				continue
			}
			known[key] = hash.HashConcat(children)
			progressed = true
		}

		if !progressed {
			return false, newError(BadProof, "multiproof does not resolve to a single root")
		}
	}

	return known[""] == expectedRoot, nil
}
