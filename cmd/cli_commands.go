package cmd

import (
	"fmt"
	"io"
)

// cliHelpEntry describes one operator for the interactive help command.
type cliHelpEntry struct {
	name    string
	args    string
	summary string
}

var helpEntries = []cliHelpEntry{
	{"contains", "<set> <element>", "true if the element is in the set"},
	{"contains-all", "<a> <b>", "true if a is a superset of b"},
	{"contains-only", "<a> <b>", "true if a is a subset of b"},
	{"equal", "<a> <b>", "true if a and b hold the same elements"},
	{"not-equal", "<a> <b>", "negation of equal"},
	{"union", "<a> <b>", "elements in a or b"},
	{"intersection", "<a> <b>", "elements in both a and b"},
	{"difference", "<a> <b>", "elements of a not in b"},
	{"symmetric-difference", "<a> <b>", "elements in exactly one of a and b"},
	{"cardinality", "<set>", "number of elements"},
	{"help", "", "show this help"},
	{"clear", "", "clear the screen"},
	{"quit", "", "leave the shell (also: exit, ctrl-d)"},
}

func printHelp(out io.Writer) {
	fmt.Fprintf(out, "Set literals are written {1,2,3}; spaces inside braces are allowed.\n\n")
	for _, e := range helpEntries {
		fmt.Fprintf(out, "  %-22s %-16s %s\n", e.name, e.args, e.summary)
	}
}
