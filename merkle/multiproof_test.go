package merkle

import "testing"

func TestProveMultiVerifiesAllRequestedLeaves(t *testing.T) {
	blks := blocks("a", "b", "c", "d", "e", "f", "g")
	tr, err := Build(blks, 3)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	indices := []int{1, 4, 6}
	mp, err := tr.ProveMulti(indices)
	if err != nil {
		t.Fatalf("ProveMulti: %v", err)
	}

	leaves := map[int][]byte{1: []byte("b"), 4: []byte("e"), 6: []byte("g")}
	ok, err := VerifyMulti(mp, tr.RootDigest(), leaves)
	if err != nil {
		t.Fatalf("VerifyMulti: %v", err)
	}
	if !ok {
		t.Fatal("VerifyMulti rejected a valid multiproof")
	}
}

func TestProveMultiSingleLeafMatchesProve(t *testing.T) {
	blks := blocks("Hello", "World", "Merkle", "Tree")
	tr, err := Build(blks, 2)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	mp, err := tr.ProveMulti([]int{2})
	if err != nil {
		t.Fatalf("ProveMulti: %v", err)
	}
	ok, err := VerifyMulti(mp, tr.RootDigest(), map[int][]byte{2: []byte("Merkle")})
	if err != nil || !ok {
		t.Fatalf("VerifyMulti: ok=%v err=%v", ok, err)
	}
}

func TestProveMultiWholeTree(t *testing.T) {
	blks := blocks("Hello", "World", "Test", "Data", "Hello")
	tr, err := Build(blks, 10)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	mp, err := tr.ProveMulti([]int{0, 1, 2, 3, 4})
	if err != nil {
		t.Fatalf("ProveMulti: %v", err)
	}
	leaves := map[int][]byte{0: []byte("Hello"), 1: []byte("World"), 2: []byte("Test"), 3: []byte("Data"), 4: []byte("Hello")}
	ok, err := VerifyMulti(mp, tr.RootDigest(), leaves)
	if err != nil || !ok {
		t.Fatalf("VerifyMulti: ok=%v err=%v", ok, err)
	}
}

func TestVerifyMultiRejectsTamperedLeaf(t *testing.T) {
	blks := blocks("a", "b", "c", "d", "e", "f", "g")
	tr, err := Build(blks, 3)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	mp, err := tr.ProveMulti([]int{0, 6})
	if err != nil {
		t.Fatalf("ProveMulti: %v", err)
	}
	leaves := map[int][]byte{0: []byte("a"), 6: []byte("tampered")}
	ok, err := VerifyMulti(mp, tr.RootDigest(), leaves)
	if err != nil {
		t.Fatalf("VerifyMulti: %v", err)
	}
	if ok {
		t.Fatal("VerifyMulti accepted a tampered leaf")
	}
}

func TestProveMultiRejectsOutOfRangeIndex(t *testing.T) {
	tr, err := Build(blocks("a", "b"), 2)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	_, err = tr.ProveMulti([]int{5})
	assertKind(t, err, IndexOutOfRange)
}

func TestProveMultiRejectsEmptyIndices(t *testing.T) {
	tr, err := Build(blocks("a", "b"), 2)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	_, err = tr.ProveMulti(nil)
	assertKind(t, err, BadArgument)
}

func TestVerifyMultiRejectsMissingLeaf(t *testing.T) {
	tr, err := Build(blocks("a", "b", "c"), 2)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	mp, err := tr.ProveMulti([]int{0, 2})
	if err != nil {
		t.Fatalf("ProveMulti: %v", err)
	}
	_, err = VerifyMulti(mp, tr.RootDigest(), map[int][]byte{0: []byte("a")})
	assertKind(t, err, BadProof)
}
