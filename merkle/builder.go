package merkle

import "github.com/galsterGH/merkletree/hashalgo"

// Options configures a Build, Verify, or VerifyMulti call. The
// zero value selects the default: SHA-256 hashing.
type Options struct {
	// Hash is the digest primitive. Defaults to hashalgo.SHA256 when nil.
	Hash hashalgo.HashFunc
}

func (o Options) hashFunc() hashalgo.HashFunc {
	if o.Hash != nil {
		return o.Hash
	}
	return hashalgo.SHA256
}

// Build constructs a Tree from an ordered sequence of blocks with branching
// factor k, following the level-synchronous algorithm from the design: a
// leaf pass over every block, then repeated level draining of a FIFO work
// queue until one node -- the root -- remains.
//
// Every block is copied; the caller's backing storage is not assumed to
// outlive the returned Tree. Build returns BadArgument if blocks is empty,
// k < 2, or any block is empty. No partial tree is observable on error.
func Build(blocks [][]byte, k int, opts ...Options) (*Tree, error) {
	var o Options
	if len(opts) > 0 {
		o = opts[0]
	}
	hash := o.hashFunc()

	if len(blocks) == 0 {
		return nil, newError(BadArgument, "blocks must contain at least one element")
	}
	if k < 2 {
		return nil, newError(BadArgument, "branching factor k must be >= 2, got %d", k)
	}
	for i, b := range blocks {
		if len(b) == 0 {
			return nil, newError(BadArgument, "block %d is empty", i)
		}
	}

	t := &Tree{
		nodes:  make([]node, 0, estimateNodeCount(len(blocks), k)),
		leaves: make([]nodeID, 0, len(blocks)),
		k:      k,
		hash:   hash,
	}

	q := newNodeQueue(len(blocks))
	for _, b := range blocks {
		payload := append([]byte(nil), b...)
		leaf := node{
			digest:        hash.HashBytes(payload),
			payload:       payload,
			parent:        noParent,
			indexInParent: -1,
		}
		id := t.addNode(leaf)
		t.leaves = append(t.leaves, id)
		q.push(id)
	}

	for q.len() > 1 {
		level := q.len()
		parentsThisLevel := ceilDiv(level, k)
		t.depth++

		for p := 0; p < parentsThisLevel; p++ {
			group := q.drain(k)

			childDigests := make([]Digest, len(group))
			for j, c := range group {
				childDigests[j] = t.nodes[c].digest
			}

			parent := node{
				digest:        hash.HashConcat(childDigests),
				children:      group,
				parent:        noParent,
				indexInParent: -1,
			}
			pid := t.addNode(parent)

			for j, c := range group {
				t.nodes[c].parent = pid
				t.nodes[c].indexInParent = j
			}

			q.push(pid)
		}
	}

	root, ok := q.pop()
	if !ok {
		// Unreachable given the pre-condition check above (len(blocks) >= 1
		// guarantees the queue starts non-empty and the loop above only
		// terminates with exactly one entry left).
		return nil, newError(AllocationFailed, "internal: build produced no root")
	}
	t.root = root
	return t, nil
}

// estimateNodeCount gives the arena a reasonable initial capacity: n leaves
// plus, in the worst case (k=2), roughly n more interior nodes.
func estimateNodeCount(n, k int) int {
	interior := n / (k - 1)
	return n + interior + 1
}
