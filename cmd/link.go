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

	"github.com/blacktop/socialshare/internal/logutil"
	"github.com/blacktop/socialshare/internal/share"
	"github.com/blacktop/socialshare/internal/share/printer"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"
)

var (
	linkURL      string
	linkTitle    string
	linkHashtags string
	openFlag     bool
	quietFlag    bool
)

// openURL is swapped out in tests.
var openURL = browser.OpenURL

func newLinkCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "link <network> [key=value ...]",
		Short: "Print the share link for a network",
		Long: "Build the share link for a network from --url, --title, --hashtags and any extra " +
			"key=value parameters, in that order. Supported networks: " + joinNetworks() + ".",
		Args: cobra.MinimumNArgs(1),
		RunE: runLink,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			names := make([]string, 0, len(share.Networks()))
			for _, n := range share.Networks() {
				names = append(names, n.String())
			}
			return names, cobra.ShellCompDirectiveNoFileComp
		},
	}

	cmd.Flags().StringVarP(&linkURL, "url", "u", "", "Link to share")
	cmd.Flags().StringVarP(&linkTitle, "title", "t", "", "Title or text for the post")
	cmd.Flags().StringVar(&linkHashtags, "hashtags", "", "Comma separated hashtags (twitter)")
	cmd.Flags().BoolVar(&openFlag, "open", false, "Open the link in the default browser")
	cmd.Flags().BoolVarP(&quietFlag, "quiet", "q", false, "Do not print errors")
	cmd.Flags().SortFlags = false

	return cmd
}

func runLink(cmd *cobra.Command, args []string) error {
	network := share.ParseNetwork(args[0])

	params, err := resolveParams(cmd, args[1:])
	if err != nil {
		return err
	}
	logutil.Debugf("building link: network=%s params=%d", network, params.Len())

	link, err := share.Build(network, params)

	p := printer.New(cmd.OutOrStdout(), cmd.ErrOrStderr())
	p.Quiet = quietFlag
	if err := p.Print(link, err); err != nil {
		return reportedError{err}
	}

	if openFlag {
		browser.Stdout = cmd.ErrOrStderr()
		browser.Stderr = cmd.ErrOrStderr()
		if err := openURL(link); err != nil {
			return fmt.Errorf("open browser: %w", err)
		}
	}
	return nil
}

// resolveParams collects flag parameters first, then key=value arguments.
func resolveParams(cmd *cobra.Command, assignments []string) (*share.Params, error) {
	params := &share.Params{}
	if cmd.Flags().Changed("url") {
		params.Set("url", linkURL)
	}
	if cmd.Flags().Changed("title") {
		params.Set("title", linkTitle)
	}
	if cmd.Flags().Changed("hashtags") {
		params.Set("hashtags", linkHashtags)
	}

	extra, err := share.ParseAssignments(assignments)
	if err != nil {
		return nil, err
	}
	for _, k := range extra.Keys() {
		v, _ := extra.Get(k)
		params.Set(k, v)
	}
	return params, nil
}

func joinNetworks() string {
	names := make([]string, 0, len(share.Networks()))
	for _, n := range share.Networks() {
		names = append(names, n.String())
	}
	return strings.Join(names, ", ")
}
