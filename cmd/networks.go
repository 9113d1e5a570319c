/*
Copyright © 2025 blacktop

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/blacktop/socialshare/internal/placeholder"
	"github.com/blacktop/socialshare/internal/share"
	"github.com/spf13/cobra"
)

func newNetworksCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "networks",
		Short: "List supported networks and their templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			builder := share.NewBuilder()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NETWORK\tPARAMETERS\tTEMPLATE")
			for _, n := range builder.Networks() {
				tmpl, _ := builder.Template(n)
				fmt.Fprintf(w, "%s\t%s\t%s\n", n, describeParams(tmpl, builder.Defaults(n)), tmpl)
			}
			return w.Flush()
		},
	}
}

// describeParams lists a template's references, marking optional ones.
func describeParams(tmpl string, defaults *share.Params) string {
	refs := placeholder.References(tmpl)
	out := make([]string, 0, len(refs))
	for _, ref := range refs {
		if _, ok := defaults.Get(ref); ok {
			ref += "?"
		}
		out = append(out, ref)
	}
	return strings.Join(out, ",")
}
