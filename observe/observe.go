// Package observe wraps the merkle package's pure core with logging and
// metrics. The core itself never imports log or metrics -- it stays silent
// on I/O channels, as a library core should; this package is where an
// application opts into observability around it.
package observe

import (
	"github.com/galsterGH/merkletree/hashalgo"
	"github.com/galsterGH/merkletree/log"
	"github.com/galsterGH/merkletree/merkle"
	"github.com/galsterGH/merkletree/metrics"
)

var (
	buildDuration = metrics.DefaultRegistry.Histogram("merkletree.build.duration_ms")
	// buildCount is broken down by hash algorithm so an operator can tell
	// -hash sha256 traffic from -hash keccak256 traffic at a glance, rather
	// than needing a flat total that hides the split.
	buildCount = metrics.DefaultRegistry.LabeledCounter("merkletree.build.count")
	// buildFailures is broken down by merkle.ErrorKind, so caller errors
	// (BadArgument) are counted apart from any other kind of failure.
	buildFailures  = metrics.DefaultRegistry.LabeledCounter("merkletree.build.failures")
	proveDuration  = metrics.DefaultRegistry.Histogram("merkletree.prove.duration_ms")
	verifyDuration = metrics.DefaultRegistry.Histogram("merkletree.verify.duration_ms")
	verifyInvalid  = metrics.DefaultRegistry.Counter("merkletree.verify.invalid")
	treeLeafCount  = metrics.DefaultRegistry.Gauge("merkletree.tree.leaf_count")
)

var (
	buildLogger  = log.Default().Scope(log.OpBuild)
	proveLogger  = log.Default().Scope(log.OpProve)
	verifyLogger = log.Default().Scope(log.OpVerify)
)

// Tree is an instrumented wrapper around merkle.Tree. It exposes
// RootDigest, LeafCount, Depth and Prove, timing and logging Prove; the
// core's other read operations are reached through Unwrap.
type Tree struct {
	inner *merkle.Tree
}

func hashName(opts []merkle.Options) string {
	if len(opts) > 0 && opts[0].Hash != nil {
		return opts[0].Hash.Name()
	}
	return hashalgo.SHA256.Name()
}

// Build constructs a Tree, recording build latency, a per-hash-algorithm
// build count, and (on failure) a per-ErrorKind failure count.
func Build(blocks [][]byte, k int, opts ...merkle.Options) (*Tree, error) {
	timer := metrics.NewTimer(buildDuration)
	defer timer.Stop()
	buildCount.Inc(hashName(opts))

	t, err := merkle.Build(blocks, k, opts...)
	if err != nil {
		kind, _ := merkle.KindOf(err)
		buildFailures.Inc(kind.String())
		buildLogger.Error("build failed", "k", k, "block_count", len(blocks), "err", err)
		return nil, err
	}

	treeLeafCount.Set(int64(t.LeafCount()))
	buildLogger.Info("tree built", "k", k, "leaf_count", t.LeafCount(), "depth", t.Depth())
	return &Tree{inner: t}, nil
}

// RootDigest returns the tree's root digest.
func (t *Tree) RootDigest() merkle.Digest { return t.inner.RootDigest() }

// LeafCount returns the number of leaves in the tree.
func (t *Tree) LeafCount() int { return t.inner.LeafCount() }

// Depth returns the tree's depth.
func (t *Tree) Depth() int { return t.inner.Depth() }

// Unwrap returns the underlying merkle.Tree for operations this wrapper
// does not cover.
func (t *Tree) Unwrap() *merkle.Tree { return t.inner }

// Prove generates an inclusion proof, recording latency and logging
// failures.
func (t *Tree) Prove(leafIndex int) (*merkle.Proof, error) {
	timer := metrics.NewTimer(proveDuration)
	defer timer.Stop()

	proof, err := t.inner.Prove(leafIndex)
	if err != nil {
		proveLogger.Warn("prove failed", "leaf_index", leafIndex, "err", err)
		return nil, err
	}
	return proof, nil
}

// Verify checks a proof against an expected root, recording latency and
// counting negative verdicts.
func Verify(proof *merkle.Proof, expectedRoot merkle.Digest, leafBytes []byte, opts ...merkle.Options) (bool, error) {
	timer := metrics.NewTimer(verifyDuration)
	defer timer.Stop()

	ok, err := merkle.Verify(proof, expectedRoot, leafBytes, opts...)
	if err != nil {
		verifyLogger.Warn("verify errored", "err", err)
		return false, err
	}
	if !ok {
		verifyInvalid.Inc()
		verifyLogger.Info("verify rejected proof")
	}
	return ok, nil
}
