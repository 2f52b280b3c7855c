// Get command looks entries up by name, UUID, or position.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/roster/pkg/roster"
)

// flagIndex selects positional lookup instead of key lookup.
var flagIndex int

var getCmd = &cobra.Command{
	Use:   "get <key>...",
	Short: "Look entries up by name or UUID",
	Long: `Get resolves each argument against the registry and prints the matching
entries in argument order. A UUID argument resolves through the ids key,
anything else through the names key. With --index, a single entry is
fetched by position instead and no arguments are accepted.

Example:
  roster get Alice
  roster get Alice Bob 01921fd2-9d7e-7cc8-b6a2-3e7f24d9a1b0
  roster get --index 0`,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := loadRegistry()
		if err != nil {
			return err
		}

		if cmd.Flags().Changed("index") {
			if len(args) > 0 {
				return errUsage("--index does not take key arguments")
			}
			entry, err := reg.Get(roster.Index(flagIndex))
			if err != nil {
				return err
			}
			return printEntries([]Entry{entry})
		}

		if len(args) == 0 {
			return errUsage("at least one key is required")
		}
		keys := make([]roster.Key, len(args))
		for i, arg := range args {
			keys[i] = parseKey(arg)
		}
		entries, err := reg.Fetch(keys...)
		if err != nil {
			return err
		}
		return printEntries(entries)
	},
}

func init() {
	getCmd.Flags().IntVar(&flagIndex, "index", 0, "look up by position instead of key")
}
