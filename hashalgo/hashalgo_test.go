package hashalgo

import (
	"encoding/hex"
	"testing"
)

func TestSHA256HashBytes(t *testing.T) {
	d := SHA256.HashBytes([]byte("Hello"))
	if d.IsZero() {
		t.Fatal("hash of non-empty input must not be zero")
	}
	if len(d.Bytes()) != Size {
		t.Fatalf("expected %d-byte digest, got %d", Size, len(d.Bytes()))
	}
}

func TestSHA256Deterministic(t *testing.T) {
	a := SHA256.HashBytes([]byte("Test"))
	b := SHA256.HashBytes([]byte("Test"))
	if a != b {
		t.Fatalf("hashing the same input twice produced different digests: %x vs %x", a, b)
	}
}

func TestSHA256HashConcatMatchesHashBytesOfConcatenation(t *testing.T) {
	d0 := SHA256.HashBytes([]byte("a"))
	d1 := SHA256.HashBytes([]byte("b"))
	got := SHA256.HashConcat([]Digest{d0, d1})

	var buf []byte
	buf = append(buf, d0[:]...)
	buf = append(buf, d1[:]...)
	want := SHA256.HashBytes(buf)

	if got != want {
		t.Fatalf("HashConcat diverged from HashBytes(concat): %x vs %x", got, want)
	}
}

func TestKeccak256DiffersFromSHA256(t *testing.T) {
	a := SHA256.HashBytes([]byte("payload"))
	b := Keccak256.HashBytes([]byte("payload"))
	if a == b {
		t.Fatal("sha256 and keccak256 of the same input should not collide")
	}
}

func TestDomainSeparatedDiffersFromPlain(t *testing.T) {
	plainLeaf := SHA256.HashBytes([]byte("x"))
	sep := DomainSeparated(SHA256)
	sepLeaf := sep.HashBytes([]byte("x"))
	if plainLeaf == sepLeaf {
		t.Fatal("domain-separated leaf hash should differ from the plain hash")
	}

	d0 := SHA256.HashBytes([]byte("c0"))
	d1 := SHA256.HashBytes([]byte("c1"))
	plainInternal := SHA256.HashConcat([]Digest{d0, d1})
	sepInternal := sep.HashConcat([]Digest{d0, d1})
	if plainInternal == sepInternal {
		t.Fatal("domain-separated internal hash should differ from the plain hash")
	}
	if sepLeaf == sepInternal {
		t.Fatal("domain-separated leaf and internal hashing must not collide with the same tag")
	}
}

func TestDigestBytesRoundTrip(t *testing.T) {
	d := SHA256.HashBytes([]byte("round-trip"))
	if hex.EncodeToString(d.Bytes()) != hex.EncodeToString(d[:]) {
		t.Fatal("Bytes() must expose the same bytes as the array")
	}
}
