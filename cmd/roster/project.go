// Project command prints one pluralized attribute column.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var projectCmd = &cobra.Command{
	Use:   "project <name>",
	Short: "Print one attribute across all entries",
	Long: `Project prints a single attribute's value for every entry, in store
order. Attributes are addressed by their pluralized name: ids, names,
notes.

Example:
  roster project names
  roster project ids --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := loadRegistry()
		if err != nil {
			return err
		}

		values, err := reg.Project(args[0])
		if err != nil {
			return fmt.Errorf("%w (available: %v)", err, reg.ProjectionNames())
		}

		if flagJSON {
			return printJSON(values)
		}
		for _, v := range values {
			fmt.Println(v)
		}
		return nil
	},
}
