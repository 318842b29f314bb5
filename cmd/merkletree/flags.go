package main

import "flag"

// flagSet wraps flag.FlagSet with this command's conventions: subcommands
// parse their own arguments with ContinueOnError so callers control error
// handling rather than flag's default os.Exit.
type flagSet struct {
	*flag.FlagSet
}

func newCustomFlagSet(name string) *flagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	return &flagSet{FlagSet: fs}
}

// buildFlags holds the parsed arguments for the "build" subcommand.
type buildFlags struct {
	k         int
	hash      string
	outRoot   string
	verbosity int
}

func newBuildFlagSet(f *buildFlags) *flagSet {
	fs := newCustomFlagSet("build")
	fs.IntVar(&f.k, "k", 2, "branching factor (>= 2)")
	fs.StringVar(&f.hash, "hash", "sha256", "digest primitive: sha256 or keccak256")
	fs.StringVar(&f.outRoot, "out", "", "optional file to write the hex root digest to")
	fs.IntVar(&f.verbosity, "verbosity", 3, "log level 0-5 (0=errors only, 5=debug)")
	return fs
}

// proveFlags holds the parsed arguments for the "prove" subcommand.
type proveFlags struct {
	k         int
	hash      string
	leafIndex int
	out       string
}

func newProveFlagSet(f *proveFlags) *flagSet {
	fs := newCustomFlagSet("prove")
	fs.IntVar(&f.k, "k", 2, "branching factor (>= 2)")
	fs.StringVar(&f.hash, "hash", "sha256", "digest primitive: sha256 or keccak256")
	fs.IntVar(&f.leafIndex, "leaf", 0, "0-based index of the leaf to prove")
	fs.StringVar(&f.out, "out", "", "file to write the encoded proof to (default stdout)")
	return fs
}

// verifyFlags holds the parsed arguments for the "verify" subcommand.
type verifyFlags struct {
	hash     string
	root     string
	proof    string
	leafFile string
}

func newVerifyFlagSet(f *verifyFlags) *flagSet {
	fs := newCustomFlagSet("verify")
	fs.StringVar(&f.hash, "hash", "sha256", "digest primitive: sha256 or keccak256")
	fs.StringVar(&f.root, "root", "", "hex-encoded expected root digest")
	fs.StringVar(&f.proof, "proof", "", "file containing an encoded proof")
	fs.StringVar(&f.leafFile, "leaf", "", "file containing the candidate leaf bytes")
	return fs
}
