// Delete command removes entries and prints the survivors.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/roster/pkg/roster"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <key>...",
	Short: "Delete entries and print the surviving set",
	Long: `Delete resolves each key, removes the matching entries, and prints the
entries that remain. The input file itself is never modified; the result
shows what the set would look like.

Example:
  roster delete Alice
  roster delete Alice 01921fd2-9d7e-7cc8-b6a2-3e7f24d9a1b0`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := loadRegistry()
		if err != nil {
			return err
		}

		keys := make([]roster.Key, len(args))
		for i, arg := range args {
			keys[i] = parseKey(arg)
		}
		if err := reg.Delete(keys...); err != nil {
			return err
		}
		return printEntries(reg.Records())
	},
}
