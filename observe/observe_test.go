package observe

import "testing"

func TestBuildAndProveRoundTrip(t *testing.T) {
	blocks := [][]byte{[]byte("Hello"), []byte("World"), []byte("Merkle"), []byte("Tree")}

	tr, err := Build(blocks, 2)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if tr.LeafCount() != 4 {
		t.Fatalf("LeafCount() = %d, want 4", tr.LeafCount())
	}

	proof, err := tr.Prove(2)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}

	ok, err := Verify(proof, tr.RootDigest(), []byte("Merkle"))
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !ok {
		t.Fatal("Verify rejected a valid proof produced by the instrumented wrapper")
	}
}

func TestBuildRecordsMetrics(t *testing.T) {
	before := buildCount.Value("sha256")

	_, err := Build([][]byte{[]byte("a")}, 2)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if buildCount.Value("sha256") != before+1 {
		t.Errorf("build count[sha256] = %d, want %d", buildCount.Value("sha256"), before+1)
	}
	if buildDuration.Count() == 0 {
		t.Error("expected at least one recorded build duration observation")
	}
}

func TestBuildFailureIsCountedByKind(t *testing.T) {
	before := buildFailures.Value("bad_argument")

	_, err := Build(nil, 2)
	if err == nil {
		t.Fatal("expected Build to fail on empty input")
	}
	if buildFailures.Value("bad_argument") != before+1 {
		t.Errorf("build failures[bad_argument] = %d, want %d", buildFailures.Value("bad_argument"), before+1)
	}
}

func TestVerifyRecordsInvalidCount(t *testing.T) {
	tr, err := Build([][]byte{[]byte("a"), []byte("b")}, 2)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	proof, err := tr.Prove(0)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}

	before := verifyInvalid.Value()
	ok, err := Verify(proof, tr.RootDigest(), []byte("tampered"))
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if ok {
		t.Fatal("Verify accepted a tampered leaf")
	}
	if verifyInvalid.Value() != before+1 {
		t.Errorf("verify invalid count = %d, want %d", verifyInvalid.Value(), before+1)
	}
}
