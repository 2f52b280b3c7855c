// Shared output helpers for roster CLI commands.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"
)

// errBadUsage marks command-line misuse for exit-code classification.
var errBadUsage = errors.New("bad usage")

// errUsage wraps a message as a user error.
func errUsage(msg string) error {
	return fmt.Errorf("%w: %s", errBadUsage, msg)
}

// printEntries writes entries to stdout, as indented JSON with --json
// or as an aligned text table otherwise.
func printEntries(entries []Entry) error {
	if flagJSON {
		return printJSON(entries)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tNOTE")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\n", e.ID, e.Name, e.Note)
	}
	return w.Flush()
}

// printJSON writes any value to stdout as indented JSON.
func printJSON(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(output))
	return nil
}
