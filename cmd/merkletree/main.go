// Command merkletree builds n-ary Merkle trees over a sequence of input
// files and generates or verifies inclusion proofs against them.
//
// Usage:
//
//	merkletree build  [-k N] [-hash sha256|keccak256] [-out file] FILE...
//	merkletree prove  [-k N] [-hash sha256|keccak256] -leaf N [-out file] FILE...
//	merkletree verify -root HEX -proof file -leaf file [-hash sha256|keccak256]
//
// Each positional FILE argument becomes one leaf block, in the order
// given. This front-end is a thin consumer of the merkle library; it
// contains no tree-construction or proof logic of its own.
package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/galsterGH/merkletree/hashalgo"
	"github.com/galsterGH/merkletree/log"
	"github.com/galsterGH/merkletree/merkle"
	"github.com/galsterGH/merkletree/observe"
)

var (
	version = "v0.1.0-dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run is the actual entry point, returning an exit code. It accepts CLI
// arguments (without the program name) so it can be tested in isolation.
func run(args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "usage: merkletree <build|prove|verify|version> [flags] [files...]")
		return 2
	}

	switch args[0] {
	case "version":
		fmt.Printf("merkletree %s (commit %s)\n", version, commit)
		return 0
	case "build":
		return runBuild(args[1:])
	case "prove":
		return runProve(args[1:])
	case "verify":
		return runVerify(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "unknown subcommand %q\n", args[0])
		return 2
	}
}

func hashFuncByName(name string) (hashalgo.HashFunc, error) {
	switch name {
	case "sha256", "":
		return hashalgo.SHA256, nil
	case "keccak256":
		return hashalgo.Keccak256, nil
	default:
		return nil, fmt.Errorf("unknown hash function %q", name)
	}
}

func readBlocks(paths []string) ([][]byte, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("at least one input file is required")
	}
	blocks := make([][]byte, len(paths))
	for i, p := range paths {
		b, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", p, err)
		}
		blocks[i] = b
	}
	return blocks, nil
}

func runBuild(args []string) int {
	var f buildFlags
	fs := newBuildFlagSet(&f)
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}

	log.SetDefault(log.New(verbosityToLevel(f.verbosity)))

	hash, err := hashFuncByName(f.hash)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}

	blocks, err := readBlocks(fs.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	tr, err := observe.Build(blocks, f.k, merkle.Options{Hash: hash})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	rootHex := hex.EncodeToString(tr.RootDigest().Bytes())
	if f.outRoot != "" {
		if err := os.WriteFile(f.outRoot, []byte(rootHex+"\n"), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
	}
	fmt.Println(rootHex)
	return 0
}

func runProve(args []string) int {
	var f proveFlags
	fs := newProveFlagSet(&f)
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}

	hash, err := hashFuncByName(f.hash)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}

	blocks, err := readBlocks(fs.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	tr, err := observe.Build(blocks, f.k, merkle.Options{Hash: hash})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	proof, err := tr.Prove(f.leafIndex)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	encoded, err := encodeProof(proof)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	if f.out != "" {
		if err := os.WriteFile(f.out, encoded, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
		return 0
	}
	fmt.Println(string(encoded))
	return 0
}

func runVerify(args []string) int {
	var f verifyFlags
	fs := newVerifyFlagSet(&f)
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}

	if f.root == "" || f.proof == "" || f.leafFile == "" {
		fmt.Fprintln(os.Stderr, "error: -root, -proof, and -leaf are all required")
		return 2
	}

	hash, err := hashFuncByName(f.hash)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}

	rootBytes, err := hex.DecodeString(f.root)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: invalid -root: %v\n", err)
		return 2
	}
	var root merkle.Digest
	copy(root[:], rootBytes)

	proofData, err := os.ReadFile(f.proof)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	proof, err := decodeProof(proofData)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	leafBytes, err := os.ReadFile(f.leafFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	ok, err := observe.Verify(proof, root, leafBytes, merkle.Options{Hash: hash})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	if ok {
		fmt.Println("OK")
		return 0
	}
	fmt.Println("INVALID")
	return 1
}
