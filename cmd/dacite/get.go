package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dacite/dacite/hash"
)

// GetCmd reads the bytes stored under a hex-encoded hash from the
// configured store.Blob and writes them to stdout.
var GetCmd = &cobra.Command{
	Use:   "get <hex-hash>",
	Short: "read bytes for a hash from the configured store",
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

		h, err := hash.Parse(args[0])
		if err != nil {
			fatalf("parsing hash: %v", err)
		}

		data, err := blobs.Get(cliContext(), h)
		if err != nil {
			fatalf("reading from store: %v", err)
		}
		os.Stdout.Write(data)
	},
}
