// Check command validates the input set and prints a summary.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the input set and print a summary",
	Long: `Check loads the input file through the full schema and uniqueness
validation and prints the registry summary. A duplicate name or a
malformed entry fails here with a nonzero exit code.

Example:
  roster check
  roster --input team.yaml check`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := loadRegistry()
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(map[string]any{
				"records":     reg.Len(),
				"projections": reg.ProjectionNames(),
			})
		}
		fmt.Println(reg)
		fmt.Printf("projections: %v\n", reg.ProjectionNames())
		return nil
	},
}
