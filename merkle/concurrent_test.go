package merkle

import (
	"sync"
	"testing"
)

func TestSafeTreeConcurrentReads(t *testing.T) {
	blks := blocks("a", "b", "c", "d", "e", "f", "g", "h")
	tr, err := Build(blks, 2)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	st := NewSafeTree(tr)
	defer st.Destroy()

	root, err := st.RootDigest()
	if err != nil {
		t.Fatalf("RootDigest: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < len(blks); i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			proof, err := st.Prove(i)
			if err != nil {
				t.Errorf("Prove(%d): %v", i, err)
				return
			}
			ok, err := Verify(proof, root, blks[i])
			if err != nil || !ok {
				t.Errorf("Verify(%d): ok=%v err=%v", i, ok, err)
			}
		}()
	}
	wg.Wait()
}

func TestSafeTreeDestroyIsIdempotent(t *testing.T) {
	tr, err := Build(blocks("a"), 2)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	st := NewSafeTree(tr)

	st.Destroy()
	st.Destroy() // must not panic or error

	_, err = st.RootDigest()
	assertKind(t, err, NotFound)
}

func TestSafeTreeReadAfterDestroyFails(t *testing.T) {
	tr, err := Build(blocks("a", "b"), 2)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	st := NewSafeTree(tr)
	st.Destroy()

	_, err = st.Prove(0)
	assertKind(t, err, NotFound)
}
