package health

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

// newAppManager starts a stub app manager returning the given status and
// recording the paths it was asked for
func newAppManager(t *testing.T, status int) (host string, port string, paths *[]string) {
	t.Helper()

	var seen []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.URL.Path)
		w.WriteHeader(status)
	}))
	t.Cleanup(server.Close)

	u, err := url.Parse(server.URL)
	require.NoError(t, err)
	return u.Hostname(), u.Port(), &seen
}

func runCommand(t *testing.T, host, port string, args ...string) error {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	root := &cli.Command{
		Name: "appmgrcli",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "host"},
			&cli.IntFlag{Name: "port"},
			&cli.BoolFlag{Name: "verbose"},
			&cli.StringFlag{Name: "client"},
			&cli.StringFlag{Name: "config"},
		},
		Commands: []*cli.Command{Command},
	}

	argv := []string{"appmgrcli", "--host", host, "--port", port, "health"}
	argv = append(argv, args...)
	return root.Run(context.Background(), argv)
}

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	fn()

	require.NoError(t, w.Close())
	os.Stdout = old
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out)
}

func TestAliveSucceedsOnAnyResponse(t *testing.T) {
	for _, status := range []int{http.StatusOK, http.StatusServiceUnavailable, http.StatusInternalServerError} {
		host, port, paths := newAppManager(t, status)

		var err error
		out := captureStdout(t, func() {
			err = runCommand(t, host, port, "alive")
		})
		require.NoError(t, err, "status %d", status)
		assert.Contains(t, out, "app manager is alive")
		assert.Equal(t, []string{"/ric/v1/health/alive"}, *paths)
	}
}

func TestAliveFailsWhenUnreachable(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := strconv.Itoa(ln.Addr().(*net.TCPAddr).Port)
	require.NoError(t, ln.Close())

	err = runCommand(t, "127.0.0.1", port, "alive")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "request to app manager failed")
}

func TestReady(t *testing.T) {
	tests := []struct {
		name   string
		status int
		errMsg string
	}{
		{name: "ready", status: http.StatusOK},
		{name: "not ready", status: http.StatusServiceUnavailable, errMsg: "not ready"},
		{name: "internal error", status: http.StatusInternalServerError, errMsg: "internal error"},
		{name: "unknown status", status: http.StatusTeapot, errMsg: "unexpected status 418"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host, port, paths := newAppManager(t, tt.status)

			var err error
			out := captureStdout(t, func() {
				err = runCommand(t, host, port, "ready")
			})
			assert.Equal(t, []string{"/ric/v1/health/ready"}, *paths)
			if tt.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, out, "app manager is ready")
		})
	}
}
