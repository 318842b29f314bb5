package merkle

import "sync"

// SafeTree wraps a fully built Tree with the reader-writer discipline (C7):
// any number of concurrent readers may call Read, but Destroy blocks until
// every in-flight reader has finished and then releases the tree exactly
// once. There is no in-place mutation; a SafeTree only ever wraps one Tree
// for its whole lifetime.
type SafeTree struct {
	mu        sync.RWMutex
	tree      *Tree
	destroyed bool
}

// NewSafeTree wraps an already built tree for concurrent access.
func NewSafeTree(t *Tree) *SafeTree {
	return &SafeTree{tree: t}
}

// Read runs fn with shared access to the wrapped tree. It returns
// NotFound if the tree has already been destroyed.
func (s *SafeTree) Read(fn func(t *Tree) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.destroyed {
		return newError(NotFound, "tree has been destroyed")
	}
	return fn(s.tree)
}

// Destroy releases the wrapped tree. It waits for any in-flight readers to
// finish, then drops the reference. Destroy is idempotent: calling it more
// than once is a no-op and never errors.
func (s *SafeTree) Destroy() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.destroyed {
		return
	}
	s.destroyed = true
	s.tree = nil
}

// RootDigest is a convenience wrapper for the common case of reading just
// the root digest.
func (s *SafeTree) RootDigest() (Digest, error) {
	var d Digest
	err := s.Read(func(t *Tree) error {
		d = t.RootDigest()
		return nil
	})
	return d, err
}

// Prove is a convenience wrapper around Tree.Prove under a read lock.
func (s *SafeTree) Prove(leafIndex int) (*Proof, error) {
	var p *Proof
	err := s.Read(func(t *Tree) error {
		var proveErr error
		p, proveErr = t.Prove(leafIndex)
		return proveErr
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// ProveFirstMatching is a convenience wrapper around
// Tree.ProveFirstMatching under a read lock.
func (s *SafeTree) ProveFirstMatching(predicate func(payload []byte) bool) (*Proof, error) {
	var p *Proof
	err := s.Read(func(t *Tree) error {
		var proveErr error
		p, proveErr = t.ProveFirstMatching(predicate)
		return proveErr
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}
