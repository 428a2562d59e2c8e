package xapp

import (
	"bytes"
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

// capturedRequest records what the test server saw
type capturedRequest struct {
	Method string
	Path   string
	Body   []byte
}

// newAppManager starts a stub app manager returning the given status and body
func newAppManager(t *testing.T, status int, respBody string) (host string, port string, requests *[]capturedRequest) {
	t.Helper()

	var reqs []capturedRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		reqs = append(reqs, capturedRequest{Method: r.Method, Path: r.URL.Path, Body: body})
		w.WriteHeader(status)
		w.Write([]byte(respBody))
	}))
	t.Cleanup(server.Close)

	host, port, err := net.SplitHostPort(server.Listener.Addr().String())
	require.NoError(t, err)
	return host, port, &reqs
}

// runCommand executes one xapp command under a root carrying the global flags
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
		Commands: []*cli.Command{DeployCommand, UndeployCommand, StatusCommand},
	}

	argv := []string{"appmgrcli", "--host", host, "--port", port}
	argv = append(argv, args...)
	return root.Run(context.Background(), argv)
}

// captureStdout collects what fn prints to stdout
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = old
	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String()
}
