package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dacite/dacite/fuse"
	"github.com/dacite/dacite/hash"
)

// FuseCmd applies the fuse mixer to two hex-encoded hashes, surfacing
// ErrLowEntropy (spec §4.4) as a distinct, non-zero exit rather than
// printing a misleading all-zero result.
var FuseCmd = &cobra.Command{
	Use:   "fuse <hex-a> <hex-b>",
	Short: "fuse two 256-bit hashes",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		a, err := hash.Parse(args[0])
		if err != nil {
			fatalf("parsing first hash: %v", err)
		}
		b, err := hash.Parse(args[1])
		if err != nil {
			fatalf("parsing second hash: %v", err)
		}

		out, err := fuse.Fuse(a, b)
		if err != nil {
			fatalf("fuse: %v", err)
		}
		fmt.Println(out.Hex())
	},
}
