package cmd

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/remote-input/hidinject/keymap"
)

// Keys lists the key names the receiver understands.
type Keys struct {
	Unmapped bool `help:"Also list names that are recognized but never injected"`
}

func (k *Keys) Run() error {
	return k.write(os.Stdout)
}

func (k *Keys) write(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tUSAGE")
	for _, name := range keymap.Names() {
		u, _ := keymap.Resolve(name)
		fmt.Fprintf(tw, "%s\t%s\n", name, u)
	}
	if k.Unmapped {
		for _, name := range keymap.UnmappedNames() {
			fmt.Fprintf(tw, "%s\t%s\n", name, "unmapped")
		}
	}
	return tw.Flush()
}
