package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dacite/dacite/typeid"
)

// TypeHashCmd prints the TypeHash of a type name (spec §2: "TypeHash =
// SHA256(utf8(canonical_type_name))"), resolving built-ins by name and
// falling back to computing the hash directly for extension types.
var TypeHashCmd = &cobra.Command{
	Use:   "type-hash <name>",
	Short: "compute the type hash of a canonical type name",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(typeid.Hash(args[0]).Hex())
	},
}
