package base

import (
	"bytes"
	"flag"
	"fmt"
	"strings"
)

// FlagSet wraps flag.FlagSet with help rendering for cli.Command.Help.
type FlagSet struct {
	*flag.FlagSet
}

// NewFlagSet wraps f. Output is silenced so parse errors go through the UI.
func NewFlagSet(f *flag.FlagSet) *FlagSet {
	f.SetOutput(&bytes.Buffer{})
	return &FlagSet{FlagSet: f}
}

// Help renders the flags as an indented "Options:" section.
func (f *FlagSet) Help() string {
	var b strings.Builder
	f.VisitAll(func(fl *flag.Flag) {
		if b.Len() == 0 {
			b.WriteString("\n\nOptions:\n")
		}
		fmt.Fprintf(&b, "\n  -%s", fl.Name)
		if fl.DefValue != "" && fl.DefValue != "false" {
			fmt.Fprintf(&b, "=%s", fl.DefValue)
		}
		fmt.Fprintf(&b, "\n      %s\n", fl.Usage)
	})
	return b.String()
}
