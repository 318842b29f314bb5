// Package hashalgo supplies the digest primitive (C1 in the design) that the
// merkle package builds on: a fixed-width cryptographic hash over byte
// ranges, plus the equivalent hash over a concatenation of child digests.
//
// Two implementations are provided. SHA256 is the default used by Build and
// Verify and is the primitive the published test vectors are defined
// against. Keccak256 is offered as an alternative for callers that want
// Ethereum-style hashing. DomainSeparated wraps either one to add a leaf/internal prefix
// byte, addressing the second-preimage concern called out as an open
// design decision: the default construction leaves domain separation off
// so the SHA-256 test vectors hold unchanged.
package hashalgo

import (
	"crypto/sha256"

	"golang.org/x/crypto/sha3"
)

// Size is the fixed digest width in bytes (H in the design).
const Size = 32

// Digest is a fixed-width opaque hash output. Digests are values and are
// freely copyable; equality is byte equality.
type Digest [Size]byte

// Bytes returns the digest's bytes as a slice. The receiver is a value, so
// the slice refers to a copy: writing to it does not change the Digest it
// was called on.
func (d Digest) Bytes() []byte { return d[:] }

// IsZero reports whether the digest is the all-zero value.
func (d Digest) IsZero() bool { return d == Digest{} }

// HashFunc is the digest primitive contract: a deterministic,
// collision-resistant hash of a finite byte range, plus an equivalent hash
// over concatenated child digests.
type HashFunc interface {
	// HashBytes hashes a finite byte range.
	HashBytes(data []byte) Digest
	// HashConcat hashes the concatenation of child digests in order. For
	// SHA256 and Keccak256 it equals HashBytes(d0 || d1 || ... || dn-1);
	// DomainSeparated tags leaf and internal input differently, so for it
	// the two differ.
	HashConcat(children []Digest) Digest
	// Name identifies the algorithm, used for diagnostics and metrics labels.
	Name() string
}

type sha256Func struct{}

func (sha256Func) HashBytes(data []byte) Digest {
	return Digest(sha256.Sum256(data))
}

func (sha256Func) HashConcat(children []Digest) Digest {
	h := sha256.New()
	for _, c := range children {
		h.Write(c[:])
	}
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

func (sha256Func) Name() string { return "sha256" }

// SHA256 is the default HashFunc used by Build and Verify.
var SHA256 HashFunc = sha256Func{}

type keccak256Func struct{}

func (keccak256Func) HashBytes(data []byte) Digest {
	d := sha3.NewLegacyKeccak256()
	d.Write(data)
	var out Digest
	copy(out[:], d.Sum(nil))
	return out
}

func (keccak256Func) HashConcat(children []Digest) Digest {
	d := sha3.NewLegacyKeccak256()
	for _, c := range children {
		d.Write(c[:])
	}
	var out Digest
	copy(out[:], d.Sum(nil))
	return out
}

func (keccak256Func) Name() string { return "keccak256" }

// Keccak256 hashes with the Keccak-256 construction used throughout the
// Ethereum stack, via golang.org/x/crypto/sha3.
var Keccak256 HashFunc = keccak256Func{}

const (
	leafDomainTag     = 0x00
	internalDomainTag = 0x01
)

type domainSeparated struct {
	inner HashFunc
}

// DomainSeparated wraps inner so that leaf hashing and internal-node hashing
// draw from disjoint input spaces (a 0x00 prefix for leaves, 0x01 for
// internal nodes), closing the second-preimage gap between leaf and
// internal digests. It is opt-in: Build and Verify default to the
// non-separated primitive so published SHA-256 test vectors for this
// construction are reproduced exactly.
func DomainSeparated(inner HashFunc) HashFunc {
	return domainSeparated{inner: inner}
}

func (d domainSeparated) HashBytes(data []byte) Digest {
	buf := make([]byte, 0, len(data)+1)
	buf = append(buf, leafDomainTag)
	buf = append(buf, data...)
	return d.inner.HashBytes(buf)
}

func (d domainSeparated) HashConcat(children []Digest) Digest {
	buf := make([]byte, 0, len(children)*Size+1)
	buf = append(buf, internalDomainTag)
	for _, c := range children {
		buf = append(buf, c[:]...)
	}
	return d.inner.HashBytes(buf)
}

func (d domainSeparated) Name() string { return "domain-separated(" + d.inner.Name() + ")" }
