package merkle

// ProofEntry describes one level of an inclusion proof's path: the
// digests of the proven ancestor's siblings at that level (in left-to-right
// order, excluding the ancestor itself) and the position the ancestor
// occupied among its parent's children.
type ProofEntry struct {
	Siblings []Digest
	Position int
}

// Proof is the minimum data needed, alongside a leaf's bytes, to recompute
// a tree's root. Path runs from the leaf level upward; Path[0] describes
// the leaf's immediate parent and Path[len(Path)-1] describes the root's
// direct children.
type Proof struct {
	LeafIndex int
	K         int
	Path      []ProofEntry
}

// Prove walks from the leaf at leafIndex to the root, recording the
// sibling digests and position at each level. It returns IndexOutOfRange
// if leafIndex is not a valid leaf position.
func (t *Tree) Prove(leafIndex int) (*Proof, error) {
	if leafIndex < 0 || leafIndex >= len(t.leaves) {
		return nil, newError(IndexOutOfRange, "leaf index %d out of range [0,%d)", leafIndex, len(t.leaves))
	}

	proof := &Proof{
		LeafIndex: leafIndex,
		K:         t.k,
		Path:      make([]ProofEntry, 0, t.depth),
	}

	cur := t.leaves[leafIndex]
	for t.nodes[cur].parent != noParent {
		parent := t.nodes[cur].parent
		position := t.nodes[cur].indexInParent
		children := t.nodes[parent].children

		siblings := make([]Digest, 0, len(children)-1)
		for i, c := range children {
			if i == position {
				continue
			}
			siblings = append(siblings, t.nodes[c].digest)
		}

		proof.Path = append(proof.Path, ProofEntry{Siblings: siblings, Position: position})
		cur = parent
	}

	return proof, nil
}

// ProveFirstMatching returns a proof for the first leaf (in ascending
// index order) whose payload satisfies predicate. It returns NotFound if no
// leaf matches. predicate must be pure; behavior is unspecified otherwise.
func (t *Tree) ProveFirstMatching(predicate func(payload []byte) bool) (*Proof, error) {
	for i, id := range t.leaves {
		if predicate(t.nodes[id].payload) {
			return t.Prove(i)
		}
	}
	return nil, newError(NotFound, "no leaf payload satisfied the predicate")
}
