// List command prints every entry in store order.
package main

import "github.com/spf13/cobra"

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all entries in store order",
	Long: `List loads the input file and prints every entry in insertion order.

Example:
  roster list
  roster --input team.yaml list --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := loadRegistry()
		if err != nil {
			return err
		}
		return printEntries(reg.Records())
	},
}
