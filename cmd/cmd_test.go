package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blacktop/socialshare/internal/share"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestLinkCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "flags",
			args: []string{"link", "twitter", "--url", "http://x.co", "--title", "Hello World"},
			want: "http://twitter.com/share?text=Hello+World&url=http%3A%2F%2Fx.co&hashtags=\n",
		},
		{
			name: "assignments",
			args: []string{"link", "google", "url=https://example.com"},
			want: "https://plus.google.com/share?url=https%3A%2F%2Fexample.com\n",
		},
		{
			name: "assignments override flags",
			args: []string{"link", "Facebook", "--url", "a", "--title", "t", "title=Override"},
			want: "https://www.facebook.com/share.php?src=bm&v=4&i=1407332352&u=a&t=Override\n",
		},
		{
			name: "hashtags flag",
			args: []string{"link", "twitter", "-u", "a", "-t", "b", "--hashtags", "go"},
			want: "http://twitter.com/share?text=b&url=a&hashtags=go\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, errOut, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
			assert.Empty(t, errOut)
		})
	}
}

func TestLinkCommandErrors(t *testing.T) {
	out, errOut, err := run(t, "link", "myspace", "url=a")
	require.Error(t, err)
	assert.Empty(t, out)
	assert.Contains(t, errOut, `unsupported network "myspace"`)

	var reported reportedError
	assert.True(t, errors.As(err, &reported))
	var networkErr share.UnknownNetworkError
	assert.True(t, errors.As(err, &networkErr))
}

func TestLinkCommandQuiet(t *testing.T) {
	out, errOut, err := run(t, "link", "twitter", "--quiet")
	require.Error(t, err)
	assert.Empty(t, out)
	assert.Empty(t, errOut)

	var emptyErr share.EmptyParametersError
	assert.True(t, errors.As(err, &emptyErr))
}

func TestLinkCommandBadAssignment(t *testing.T) {
	_, _, err := run(t, "link", "twitter", "title")
	var queryErr share.QueryError
	assert.True(t, errors.As(err, &queryErr))
}

func TestLinkCommandOpen(t *testing.T) {
	var opened string
	orig := openURL
	openURL = func(u string) error {
		opened = u
		return nil
	}
	t.Cleanup(func() { openURL = orig })

	out, _, err := run(t, "link", "google", "--url", "a", "--open")
	require.NoError(t, err)
	assert.Equal(t, "https://plus.google.com/share?url=a", opened)
	assert.Equal(t, opened+"\n", out)
}

func TestNetworksCommand(t *testing.T) {
	out, _, err := run(t, "networks")
	require.NoError(t, err)
	assert.Contains(t, out, "NETWORK")
	assert.Contains(t, out, "title,url,hashtags?")
	assert.Contains(t, out, "https://plus.google.com/share?url=%url$s")
}

func TestCompletionCommand(t *testing.T) {
	out, _, err := run(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "socialshare")

	_, _, err = run(t, "completion", "tcsh")
	assert.Error(t, err)
}

func TestServeRejectsBadConfig(t *testing.T) {
	t.Setenv("SOCIALSHARE_CONFIG", "")
	t.Setenv("SOCIALSHARE_RATE_BURST", "nope")
	_, _, err := run(t, "serve")
	assert.ErrorContains(t, err, "SOCIALSHARE_RATE_BURST")
}

func TestServeFlagsOverrideConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "socialshare.yml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  rate_limit: 5\n  diagnostic: true\n"), 0o644))
	t.Setenv("SOCIALSHARE_CONFIG", "")
	t.Setenv("SOCIALSHARE_RATE_LIMIT", "")

	tests := []struct {
		name      string
		args      []string
		wantRate  float64
		wantDiag  bool
		wantProxy bool
	}{
		{"config values kept", nil, 5, true, false},
		{"zero rate limit disables limiting", []string{"--rate-limit", "0"}, 0, true, false},
		{"explicit rate limit", []string{"--rate-limit", "2.5"}, 2.5, true, false},
		{"diagnostic turned off", []string{"--diagnostic=false"}, 5, false, false},
		{"trust proxy", []string{"--trust-proxy"}, 5, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := newRootCommand()
			serve, _, err := root.Find([]string{"serve"})
			require.NoError(t, err)
			require.NoError(t, root.PersistentFlags().Parse([]string{"--config", path}))
			require.NoError(t, serve.Flags().Parse(tt.args))

			cfg, err := serveConfig(serve)
			require.NoError(t, err)
			assert.Equal(t, tt.wantRate, cfg.Server.RateLimit)
			assert.Equal(t, tt.wantDiag, cfg.Server.Diagnostic)
			assert.Equal(t, tt.wantProxy, cfg.Server.TrustProxy)
		})
	}
}
