package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dacite/dacite/value"
)

// PutCmd hashes a file's bytes as a Blob and writes the bytes to the
// configured store.Blob under that hash, the minimal "address then
// store" pairing sync.Diff's Fetched events are meant to drive (§6).
var PutCmd = &cobra.Command{
	Use:   "put <file|->",
	Short: "hash a file's bytes and write them to the configured store",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfiguration()
		if err != nil {
			fatalf("loading configuration: %v", err)
		}
		blobs, err := openStore(cfg)
		if err != nil {
			fatalf("opening store: %v", err)
		}

		data, err := readInput(args[0])
		if err != nil {
			fatalf("reading input: %v", err)
		}

		h, err := value.Blob(data).Hash()
		if err != nil {
			fatalf("hashing: %v", err)
		}

		ctx := cliContext()
		if err := blobs.Put(ctx, h, data); err != nil {
			fatalf("writing to store: %v", err)
		}
		fmt.Println(h.Hex())
	},
}
