package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/galsterGH/merkletree/merkle"
)

// encodedEntry is the JSON-friendly form of merkle.ProofEntry: digests are
// hex strings rather than raw byte arrays.
type encodedEntry struct {
	Siblings []string `json:"siblings"`
	Position int      `json:"position"`
}

// encodedProof is the JSON-friendly form of merkle.Proof, used as the CLI's
// on-disk proof format. A proof is a small, flat structure with no
// performance-sensitive encode/decode path, so plain encoding/json is
// sufficient without a third-party serialization library.
type encodedProof struct {
	LeafIndex int            `json:"leaf_index"`
	K         int            `json:"k"`
	Path      []encodedEntry `json:"path"`
}

func encodeProof(p *merkle.Proof) ([]byte, error) {
	ep := encodedProof{LeafIndex: p.LeafIndex, K: p.K, Path: make([]encodedEntry, len(p.Path))}
	for i, entry := range p.Path {
		siblings := make([]string, len(entry.Siblings))
		for j, d := range entry.Siblings {
			siblings[j] = hex.EncodeToString(d.Bytes())
		}
		ep.Path[i] = encodedEntry{Siblings: siblings, Position: entry.Position}
	}
	return json.MarshalIndent(ep, "", "  ")
}

func decodeProof(data []byte) (*merkle.Proof, error) {
	var ep encodedProof
	if err := json.Unmarshal(data, &ep); err != nil {
		return nil, fmt.Errorf("decode proof: %w", err)
	}

	p := &merkle.Proof{LeafIndex: ep.LeafIndex, K: ep.K, Path: make([]merkle.ProofEntry, len(ep.Path))}
	for i, entry := range ep.Path {
		siblings := make([]merkle.Digest, len(entry.Siblings))
		for j, s := range entry.Siblings {
			b, err := hex.DecodeString(s)
			if err != nil {
				return nil, fmt.Errorf("decode sibling %d of path entry %d: %w", j, i, err)
			}
			var d merkle.Digest
			copy(d[:], b)
			siblings[j] = d
		}
		p.Path[i] = merkle.ProofEntry{Siblings: siblings, Position: entry.Position}
	}
	return p, nil
}
