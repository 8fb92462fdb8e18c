package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dacite/dacite/value"
)

// HashCmd computes the value_hash of a Blob value built from raw bytes
// (spec §4.7's "Blob is a sequence of Uint8 leaves"), read from a file
// argument or from stdin when the argument is "-".
var HashCmd = &cobra.Command{
	Use:   "hash <file|->",
	Short: "compute the content hash of a file's bytes",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		data, err := readInput(args[0])
		if err != nil {
			fatalf("reading input: %v", err)
		}

		h, err := value.Blob(data).Hash()
		if err != nil {
			fatalf("hashing: %v", err)
		}
		fmt.Println(h.Hex())
	},
}

func readInput(arg string) ([]byte, error) {
	if arg == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(arg)
}
