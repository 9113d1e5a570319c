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
	"errors"

	"github.com/blacktop/socialshare/internal/logutil"
	"github.com/spf13/cobra"
)

var (
	verboseFlag bool
	configPath  string
)

// reportedError marks an error that has already been shown to the user.
type reportedError struct{ error }

func (e reportedError) Unwrap() error { return e.error }

// Execute runs the root command.
func Execute() error {
	err := newRootCommand().Execute()
	if err != nil {
		var reported reportedError
		if !errors.As(err, &reported) {
			logutil.Errorf("%v", err)
		}
	}
	return err
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "socialshare",
		Short: "Build social network share links",
		Long: "socialshare builds share links for Facebook, Twitter and Google from a URL, " +
			"a title and optional hashtags. It prints them, opens them, or serves them as redirects.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verboseFlag {
				logutil.SetVerbose(true)
			}
		},
		Example: `  socialshare link twitter --url https://example.com --title "Hello World"
  socialshare link facebook url=https://example.com title=Hi --open
  socialshare serve --addr :8080`,
	}

	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "V", false, "Enable debug logging")
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a YAML config file")

	cmd.AddCommand(newLinkCommand())
	cmd.AddCommand(newServeCommand())
	cmd.AddCommand(newNetworksCommand())
	cmd.AddCommand(newCompletionCommand())

	return cmd
}
