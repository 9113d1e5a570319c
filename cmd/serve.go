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
	"os"
	"os/signal"
	"syscall"

	"github.com/blacktop/socialshare/internal/config"
	"github.com/blacktop/socialshare/internal/logutil"
	"github.com/blacktop/socialshare/internal/server"
	"github.com/spf13/cobra"
)

var (
	addrFlag       string
	diagnosticFlag bool
	rateLimitFlag  float64
	trustProxyFlag bool
)

func newServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve share links as HTTP redirects",
		Long: "Serve GET /share/{network}?url=...&title=... as a 302 redirect to the share link. " +
			"GET /link/{network} returns the link as text instead.",
		Args: cobra.NoArgs,
		RunE: runServe,
	}

	cmd.Flags().StringVar(&addrFlag, "addr", "", "Listen address (default :8080)")
	cmd.Flags().BoolVar(&diagnosticFlag, "diagnostic", false, "Include error messages in responses")
	cmd.Flags().Float64Var(&rateLimitFlag, "rate-limit", 0, "Requests per second per client (0 disables limiting)")
	cmd.Flags().BoolVar(&trustProxyFlag, "trust-proxy", false, "Take client addresses from X-Forwarded-For/X-Real-IP")

	return cmd
}

// serveConfig loads the configuration and applies any flags set on cmd.
func serveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, err
	}
	if addrFlag != "" {
		cfg.Server.Addr = addrFlag
	}
	if cmd.Flags().Changed("diagnostic") {
		cfg.Server.Diagnostic = diagnosticFlag
	}
	if cmd.Flags().Changed("rate-limit") {
		cfg.Server.RateLimit = rateLimitFlag
	}
	if cmd.Flags().Changed("trust-proxy") {
		cfg.Server.TrustProxy = trustProxyFlag
	}
	return cfg, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := serveConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.Verbose {
		logutil.SetVerbose(true)
	}

	srv, err := server.New(cfg, nil)
	if err != nil {
		return err
	}
	if cfg.Server.RateLimit == 0 {
		logutil.Warnf("rate limiting disabled")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return srv.Run(ctx)
}
